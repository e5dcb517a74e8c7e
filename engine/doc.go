// Package engine defines the recognition capability that field extraction
// depends on.
//
// The interface is intentionally small: one image and one configuration in,
// plain text or token-level text out. Implementations may shell out to a
// local Tesseract installation (see the tesseract subpackage), call a remote
// service, or return scripted results in tests. Nothing in this package
// touches a real OCR engine.
//
// # Configurations
//
// A Config is an immutable recognition profile: engine mode, page
// segmentation assumption, character whitelist, and language. Profiles are
// value types; callers hold predefined profiles and pass them per call.
// Implementations must not retain or mutate them.
//
// # Confidence
//
// Token confidences are integers in the 0-100 range as reported by the
// underlying engine. Aggregation into a [0,1] score is the caller's
// concern, not the engine's.
package engine
