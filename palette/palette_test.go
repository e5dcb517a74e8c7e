package palette

import (
	"image"
	"image/color"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func createSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func testSwatches() []Swatch {
	return []Swatch{
		{Name: "orange", Color: colorful.Color{R: 1.0, G: 0.55, B: 0.1}},
		{Name: "yellow", Color: colorful.Color{R: 1.0, G: 0.9, B: 0.2}},
		{Name: "green", Color: colorful.Color{R: 0.2, G: 0.8, B: 0.3}},
		{Name: "blue", Color: colorful.Color{R: 0.2, G: 0.4, B: 0.9}},
	}
}

func TestDominant_SolidImage(t *testing.T) {
	img := createSolidImage(20, 10, color.RGBA{224, 128, 16, 255})

	dom, ok := Dominant(img)
	if !ok {
		t.Fatal("Dominant returned no color for a non-empty image")
	}

	// Quantization keeps the channel values within one step.
	if dom.R < 0.8 || dom.G < 0.4 || dom.G > 0.6 || dom.B > 0.1 {
		t.Errorf("dominant color off: got %+v", dom)
	}
}

func TestDominant_MajorityWins(t *testing.T) {
	img := createSolidImage(10, 10, color.RGBA{0, 0, 255, 255})
	// A minority patch of red.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.RGBA{255, 0, 0, 255})
		}
	}

	dom, ok := Dominant(img)
	if !ok {
		t.Fatal("Dominant returned no color")
	}
	if dom.B < dom.R {
		t.Errorf("expected blue majority, got %+v", dom)
	}
}

func TestDominant_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, ok := Dominant(img); ok {
		t.Error("Dominant should report false for an empty image")
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name string
		c    colorful.Color
		want string
	}{
		{"pure orange", colorful.Color{R: 1.0, G: 0.5, B: 0.0}, "orange"},
		{"pure blue", colorful.Color{R: 0.1, G: 0.3, B: 1.0}, "blue"},
		{"greenish", colorful.Color{R: 0.3, G: 0.7, B: 0.35}, "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dist, ok := Nearest(tt.c, testSwatches())
			if !ok {
				t.Fatal("Nearest returned no swatch")
			}
			if got.Name != tt.want {
				t.Errorf("got %q (distance %v), want %q", got.Name, dist, tt.want)
			}
		})
	}
}

func TestNearest_NoSwatches(t *testing.T) {
	if _, _, ok := Nearest(colorful.Color{R: 1}, nil); ok {
		t.Error("Nearest should report false for an empty swatch set")
	}
}

func TestClassify(t *testing.T) {
	img := createSolidImage(16, 16, color.RGBA{48, 96, 232, 255})

	got, _, ok := Classify(img, testSwatches())
	if !ok {
		t.Fatal("Classify returned no swatch")
	}
	if got.Name != "blue" {
		t.Errorf("got %q, want blue", got.Name)
	}
}
