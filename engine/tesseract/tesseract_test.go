package tesseract

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/haldris/fieldread/engine"
)

// createImageWithText renders text with basicfont on a white canvas, scaled
// up for better recognition.
// Note: Real OCR accuracy tests need real captures; these exercise the
// adapter plumbing.
func createImageWithText(t *testing.T, text string, scale int) image.Image {
	t.Helper()

	width := len(text)*7 + 20
	height := 30

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(10), Y: fixed.I(20)},
	}
	d.DrawString(text)

	if scale <= 1 {
		return small
	}

	big := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for y := 0; y < height*scale; y++ {
		for x := 0; x < width*scale; x++ {
			big.Set(x, y, small.At(x/scale, y/scale))
		}
	}
	return big
}

func skipIfUnavailable(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	msg := err.Error()
	if strings.Contains(msg, "tesseract") || strings.Contains(msg, "library") ||
		strings.Contains(msg, "tessdata") || strings.Contains(msg, "language") ||
		strings.Contains(msg, "init") {
		t.Skip("Tesseract not available")
	}
}

func digitProfile(seg engine.SegMode) engine.Config {
	return engine.Config{
		Mode:      engine.ModeDefault,
		Seg:       seg,
		Whitelist: "0123456789",
		Language:  "eng",
	}
}

func TestValidate_SegModes(t *testing.T) {
	supported := []engine.SegMode{
		engine.SegUniformBlock,
		engine.SegSingleLine,
		engine.SegSingleWord,
		engine.SegRawLine,
	}

	for _, seg := range supported {
		cfg := engine.Config{Mode: engine.ModeDefault, Seg: seg, Language: "eng"}
		if _, err := validate(cfg); err != nil {
			t.Errorf("seg mode %d: unexpected error: %v", seg, err)
		}
	}

	cfg := engine.Config{Mode: engine.ModeDefault, Seg: engine.SegMode(99), Language: "eng"}
	if _, err := validate(cfg); err == nil {
		t.Error("seg mode 99: expected error")
	}
}

func TestValidate_RejectsNonDefaultMode(t *testing.T) {
	for _, mode := range []engine.Mode{engine.ModeLegacy, engine.ModeLSTM, engine.ModeCombined} {
		cfg := engine.Config{Mode: mode, Seg: engine.SegSingleLine, Language: "eng"}
		if _, err := validate(cfg); err == nil {
			t.Errorf("mode %d: expected error", mode)
		}
	}
}

func TestRecognize_UnsupportedModeFailsWithoutClient(t *testing.T) {
	// The factory must never run for a profile validation failure.
	e := New()
	e.clientFactory = nil

	cfg := engine.Config{Mode: engine.ModeLegacy, Seg: engine.SegSingleLine, Language: "eng"}
	if _, err := e.Recognize(image.NewRGBA(image.Rect(0, 0, 8, 8)), cfg); err == nil {
		t.Error("expected error for unsupported mode")
	}
}

func TestRecognize_RespectsWhitelist(t *testing.T) {
	e := New()
	img := createImageWithText(t, "123", 4)

	text, err := e.Recognize(img, digitProfile(engine.SegSingleLine))
	skipIfUnavailable(t, err)
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}

	for _, r := range strings.TrimSpace(text) {
		if r < '0' || r > '9' {
			t.Errorf("whitelisted recognition produced %q", r)
		}
	}
}

func TestRecognizeTokens_ConfidenceRange(t *testing.T) {
	e := New()
	img := createImageWithText(t, "12 34", 4)

	tokens, err := e.RecognizeTokens(img, digitProfile(engine.SegSingleLine))
	skipIfUnavailable(t, err)
	if err != nil {
		t.Fatalf("RecognizeTokens failed: %v", err)
	}

	for i, tok := range tokens {
		if tok.Confidence < 0 || tok.Confidence > 100 {
			t.Errorf("token %d: confidence %d out of range", i, tok.Confidence)
		}
	}
}

func TestRecognize_BlankImage(t *testing.T) {
	e := New()
	img := image.NewRGBA(image.Rect(0, 0, 60, 30))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	text, err := e.Recognize(img, digitProfile(engine.SegSingleWord))
	skipIfUnavailable(t, err)
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Logf("blank image produced %q (tolerated, engine-dependent)", text)
	}
}

func TestProbe(t *testing.T) {
	info := New().Probe()
	if info.Available && info.Version == "" {
		t.Error("available engine must report a version")
	}
	if !info.Available && info.Error == "" {
		t.Error("unavailable engine must report an error")
	}
}
