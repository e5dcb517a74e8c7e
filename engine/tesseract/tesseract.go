// Package tesseract implements the engine capability with a local Tesseract
// installation via gosseract/v2.
//
// # Prerequisites
//
// Tesseract and its English training data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Client Lifecycle
//
// A fresh gosseract client is created and closed for every recognition
// call. Calls are independent and stateless; no handle is retained between
// them. The only construction-time state is the data-path configuration,
// which is immutable after New.
package tesseract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/otiai10/gosseract/v2"

	"github.com/haldris/fieldread/engine"
)

// Engine recognizes text using gosseract. The zero value is not usable;
// construct with New.
type Engine struct {
	dataPrefix string
	language   string

	// clientFactory is replaced in tests to intercept client construction.
	clientFactory func() *gosseract.Client
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithDataPrefix points the engine at a tessdata directory. When unset,
// Tesseract falls back to the TESSDATA_PREFIX environment variable and its
// compiled-in default path.
func WithDataPrefix(dir string) Option {
	return func(e *Engine) { e.dataPrefix = dir }
}

// WithLanguage sets the language used when a profile does not name one.
// The default is "eng".
func WithLanguage(lang string) Option {
	return func(e *Engine) { e.language = lang }
}

// New constructs a Tesseract-backed engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		language:      "eng",
		clientFactory: gosseract.NewClient,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recognize performs a single recognition pass and returns the raw text.
func (e *Engine) Recognize(img image.Image, cfg engine.Config) (string, error) {
	seg, err := validate(cfg)
	if err != nil {
		return "", err
	}

	client := e.clientFactory()
	defer client.Close()

	if err := e.configure(client, img, cfg, seg); err != nil {
		return "", err
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

// RecognizeTokens performs a single recognition pass and returns word-level
// tokens with integer confidences (0-100), in reading order.
func (e *Engine) RecognizeTokens(img image.Image, cfg engine.Config) ([]engine.Token, error) {
	seg, err := validate(cfg)
	if err != nil {
		return nil, err
	}

	client := e.clientFactory()
	defer client.Close()

	if err := e.configure(client, img, cfg, seg); err != nil {
		return nil, err
	}

	// Run recognition before asking for boxes; GetBoundingBoxes alone does
	// not populate word confidences on all Tesseract versions.
	if _, err := client.Text(); err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("get word boxes: %w", err)
	}

	tokens := make([]engine.Token, 0, len(boxes))
	for _, box := range boxes {
		tokens = append(tokens, engine.Token{
			Text:       box.Word,
			Confidence: int(math.Round(float64(box.Confidence))),
		})
	}
	return tokens, nil
}

// validate rejects profiles this adapter cannot express before any client
// is created.
func validate(cfg engine.Config) (gosseract.PageSegMode, error) {
	if cfg.Mode != engine.ModeDefault {
		return 0, fmt.Errorf("unsupported engine mode %d: gosseract fixes the mode at initialization", cfg.Mode)
	}
	return segMode(cfg.Seg)
}

// configure applies the data path, image and profile to a fresh client.
func (e *Engine) configure(client *gosseract.Client, img image.Image, cfg engine.Config, seg gosseract.PageSegMode) error {
	if e.dataPrefix != "" {
		if err := client.SetTessdataPrefix(e.dataPrefix); err != nil {
			return fmt.Errorf("set tessdata prefix: %w", err)
		}
	}

	lang := cfg.Language
	if lang == "" {
		lang = e.language
	}
	if err := client.SetLanguage(lang); err != nil {
		return fmt.Errorf("set language %q: %w", lang, err)
	}

	if err := client.SetPageSegMode(seg); err != nil {
		return fmt.Errorf("set segmentation mode %d: %w", cfg.Seg, err)
	}

	if cfg.Whitelist != "" {
		if err := client.SetWhitelist(cfg.Whitelist); err != nil {
			return fmt.Errorf("set whitelist: %w", err)
		}
	}

	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return fmt.Errorf("set image: %w", err)
	}
	return nil
}

// segMode maps the capability's segmentation assumption onto gosseract's
// constants.
func segMode(seg engine.SegMode) (gosseract.PageSegMode, error) {
	switch seg {
	case engine.SegUniformBlock:
		return gosseract.PSM_SINGLE_BLOCK, nil
	case engine.SegSingleLine:
		return gosseract.PSM_SINGLE_LINE, nil
	case engine.SegSingleWord:
		return gosseract.PSM_SINGLE_WORD, nil
	case engine.SegRawLine:
		return gosseract.PSM_RAW_LINE, nil
	default:
		return 0, fmt.Errorf("unsupported segmentation mode %d", seg)
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Info describes the availability of the local Tesseract installation.
type Info struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Probe reports whether Tesseract can be used, and its version when it can.
// Useful for front ends that want a clear failure before attempting
// extraction.
func (e *Engine) Probe() Info {
	client := e.clientFactory()
	defer client.Close()

	version := client.Version()
	if version == "" {
		return Info{Available: false, Error: "tesseract library not available"}
	}
	return Info{Available: true, Version: version}
}
