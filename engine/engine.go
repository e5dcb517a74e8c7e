package engine

import "image"

// Mode selects the recognition engine variant, mirroring Tesseract's OEM
// numbering.
type Mode int

const (
	// ModeLegacy is the classic Tesseract recognizer.
	ModeLegacy Mode = 0

	// ModeLSTM is the neural-network recognizer.
	ModeLSTM Mode = 1

	// ModeCombined runs both recognizers.
	ModeCombined Mode = 2

	// ModeDefault lets the engine pick, which on Tesseract 4+ means LSTM.
	// All predefined field profiles use this mode.
	ModeDefault Mode = 3
)

// SegMode is the page segmentation assumption the engine applies when
// locating text, mirroring Tesseract's PSM numbering. Small cropped UI
// fields vary in how many glyph clusters they contain, so no single
// assumption is reliable across all captures.
type SegMode int

const (
	// SegUniformBlock assumes a single uniform block of text (PSM 6).
	SegUniformBlock SegMode = 6

	// SegSingleLine assumes a single line of text (PSM 7).
	SegSingleLine SegMode = 7

	// SegSingleWord assumes a single word (PSM 8).
	SegSingleWord SegMode = 8

	// SegRawLine treats the image as a raw line, bypassing most layout
	// analysis (PSM 13).
	SegRawLine SegMode = 13
)

// Config is a single recognition profile. The whitelist restricts output to
// the characters expected for a field type; an empty whitelist places no
// restriction.
type Config struct {
	Mode      Mode
	Seg       SegMode
	Whitelist string
	Language  string
}

// Token is one recognized text fragment with the engine's integer
// confidence for it (0-100).
type Token struct {
	Text       string
	Confidence int
}

// Engine is the recognition capability. Both methods read the image without
// retaining a reference and perform exactly one recognition pass per call.
type Engine interface {
	// Recognize returns the raw recognized text for the image under the
	// given profile. The text is not trimmed; callers own whitespace policy.
	Recognize(img image.Image, cfg Config) (string, error)

	// RecognizeTokens returns token-level output for the image under the
	// given profile, in reading order. Tokens with empty text may be
	// present; filtering is the caller's concern.
	RecognizeTokens(img image.Image, cfg Config) ([]Token, error)
}
