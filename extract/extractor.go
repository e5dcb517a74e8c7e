package extract

import (
	"image"
	"log/slog"
	"strings"

	"github.com/haldris/fieldread/engine"
)

// Extractor reads typed UI fields from cropped screen regions. It is
// immutable after construction and safe for sequential reuse across any
// number of fields; it keeps no state between calls.
type Extractor struct {
	eng  engine.Engine
	log  *slog.Logger
	prep func(image.Image) image.Image
}

// Option configures an Extractor at construction time.
type Option func(*Extractor)

// WithLogger sets the logger used for engine-failure warnings. Defaults to
// slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(x *Extractor) { x.log = log }
}

// WithPreprocess installs an image transform applied to every region before
// recognition, such as a prep.Chain of upscale and threshold steps. The
// transform must not mutate its input.
func WithPreprocess(step func(image.Image) image.Image) Option {
	return func(x *Extractor) { x.prep = step }
}

// New constructs an Extractor backed by the given engine.
func New(eng engine.Engine, opts ...Option) *Extractor {
	x := &Extractor{
		eng: eng,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// ExtractText reads a free-text field. The result is trimmed and possibly
// empty; there is no retry.
func (x *Extractor) ExtractText(img image.Image) string {
	return x.run("text", img, textProfiles, acceptAny, nil)
}

// ExtractNumber reads a pure-numeric field. The result is trimmed, contains
// only digits when non-empty, and there is no retry.
func (x *Extractor) ExtractNumber(img image.Image) string {
	return x.run("number", img, numberProfiles, acceptAny, nil)
}

// ExtractTurnNumber reads a turn counter. Profiles are tried in priority
// order and the first non-empty all-digit result wins. If no profile
// produces one, the first non-empty result of any shape is returned
// instead; a single stray character is still informative to the caller.
// Returns "" when every profile comes up empty.
func (x *Extractor) ExtractTurnNumber(img image.Image) string {
	return x.run("turn", img, turnProfiles, allDigits, nonEmpty)
}

// ExtractMoodText reads a short alphabetic status label. The first profile
// producing a non-empty result wins; returns "" when none does.
func (x *Extractor) ExtractMoodText(img image.Image) string {
	return x.run("mood", img, moodProfiles, nonEmpty, nil)
}

// ExtractFailureText reads a failure-rate text field. The first profile
// producing a non-empty result wins; returns "" when none does.
func (x *Extractor) ExtractFailureText(img image.Image) string {
	return x.run("failure", img, failureProfiles, nonEmpty, nil)
}

// ExtractFailureTextWithConfidence reads a failure-rate field through
// token-level recognition and reports an aggregate confidence in [0,1].
// Tokens whose trimmed text is empty are discarded; the remaining raw
// fragments are joined with single spaces and trimmed, and the confidence
// is the arithmetic mean of their scores divided by 100. Returns ("", 0)
// when no non-empty token exists or the engine fails.
func (x *Extractor) ExtractFailureTextWithConfidence(img image.Image) (string, float64) {
	img = x.preprocess(img)

	tokens, err := x.eng.RecognizeTokens(img, failureTokenProfile)
	if err != nil {
		x.warn("failure", failureTokenProfile, err)
		return "", 0
	}

	parts := make([]string, 0, len(tokens))
	sum := 0
	for _, tok := range tokens {
		if strings.TrimSpace(tok.Text) == "" {
			continue
		}
		parts = append(parts, tok.Text)
		sum += tok.Confidence
	}
	if len(parts) == 0 {
		return "", 0
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	confidence := float64(sum) / float64(len(parts)) / 100.0
	return text, confidence
}

// run invokes the engine once per profile in priority order and returns the
// first trimmed result that accept allows. If none is accepted and fallback
// is non-nil, fallback is applied to the recorded results in the same
// order; with a deterministic engine this matches re-running the ladder
// while keeping the number of engine calls bounded by the profile count.
// Engine failures are logged and recorded as empty results.
func (x *Extractor) run(field string, img image.Image, profiles []engine.Config, accept, fallback func(string) bool) string {
	img = x.preprocess(img)

	results := make([]string, 0, len(profiles))
	for _, cfg := range profiles {
		raw, err := x.eng.Recognize(img, cfg)
		if err != nil {
			x.warn(field, cfg, err)
			results = append(results, "")
			continue
		}
		text := strings.TrimSpace(raw)
		if accept(text) {
			return text
		}
		results = append(results, text)
	}

	if fallback != nil {
		for _, text := range results {
			if fallback(text) {
				return text
			}
		}
	}
	return ""
}

func (x *Extractor) preprocess(img image.Image) image.Image {
	if x.prep == nil {
		return img
	}
	return x.prep(img)
}

func (x *Extractor) warn(field string, cfg engine.Config, err error) {
	x.log.Warn("field recognition failed",
		"field", field,
		"seg_mode", int(cfg.Seg),
		"error", err,
	)
}

// acceptAny stops the ladder on the first profile regardless of content.
func acceptAny(string) bool { return true }

func nonEmpty(s string) bool { return s != "" }

// allDigits reports whether s is non-empty and contains only ASCII digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
