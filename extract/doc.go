// Package extract reads text and numeric values out of cropped game-screen
// UI regions.
//
// Each field type (free text, pure digits, turn counters, mood labels,
// failure-rate text) has its own predefined set of recognition profiles,
// tuned for how that field renders on screen. Profiles are tried in a fixed
// priority order; a per-field acceptance policy decides when a result is
// usable and stops the ladder.
//
// # Retry Ladders
//
// Different segmentation assumptions (single word, single line, uniform
// block) suit different captures of the same field, so segmentation-
// sensitive fields try several in order. The ladder generally starts from
// the narrowest assumption, except for failure-rate text where the
// uniform-block assumption has proven most reliable on noisy compound
// crops. Free-text and plain-number fields use one profile and no retry.
//
// # Failure Semantics
//
// Extraction is best effort. Any engine error is logged at warning level
// and treated as an empty result; no error ever reaches the caller. A
// caller therefore cannot distinguish "nothing was there" from "the engine
// failed", which keeps a batch of field reads alive when one of them goes
// wrong.
//
// All operations are stateless: the extractor holds only its engine, its
// logger and an optional preprocessing step, all fixed at construction.
package extract
