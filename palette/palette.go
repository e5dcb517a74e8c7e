// Package palette classifies the dominant tint of a UI region against a
// caller-supplied set of named swatches.
//
// Mood badges and similar status chips are color-coded as well as labeled,
// so the dominant tint gives callers an independent cross-check on the OCR
// reading of the same region. Matching happens in CIE Lab space, where
// Euclidean distance tracks perceived color difference far better than RGB.
package palette

import (
	"image"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Swatch is a named reference color.
type Swatch struct {
	Name  string
	Color colorful.Color
}

// quantize groups colors within 16 units per 8-bit channel, collapsing
// anti-aliasing noise so the badge's fill color dominates the count.
const quantizeStep = 16

// Dominant returns the most frequent quantized color in the image. The
// second return value is false for images with no pixels.
func Dominant(img image.Image) (colorful.Color, bool) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return colorful.Color{}, false
	}

	type rgb struct{ r, g, b uint8 }
	counts := make(map[rgb]int)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := rgb{
				r: uint8(r>>8) / quantizeStep * quantizeStep,
				g: uint8(g>>8) / quantizeStep * quantizeStep,
				b: uint8(b>>8) / quantizeStep * quantizeStep,
			}
			counts[key]++
		}
	}

	keys := make([]rgb, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		// Stable order for equal counts.
		a, b := keys[i], keys[j]
		if a.r != b.r {
			return a.r < b.r
		}
		if a.g != b.g {
			return a.g < b.g
		}
		return a.b < b.b
	})

	top := keys[0]
	return colorful.Color{
		R: float64(top.r) / 255.0,
		G: float64(top.g) / 255.0,
		B: float64(top.b) / 255.0,
	}, true
}

// Nearest returns the swatch closest to c in Lab space along with the
// distance. Returns false when no swatches are given.
func Nearest(c colorful.Color, swatches []Swatch) (Swatch, float64, bool) {
	if len(swatches) == 0 {
		return Swatch{}, 0, false
	}

	best := swatches[0]
	bestDist := c.DistanceLab(best.Color)
	for _, s := range swatches[1:] {
		if d := c.DistanceLab(s.Color); d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best, bestDist, true
}

// Classify samples the dominant tint of the region and matches it against
// the swatches. Returns false for empty images or an empty swatch set.
func Classify(img image.Image, swatches []Swatch) (Swatch, float64, bool) {
	dom, ok := Dominant(img)
	if !ok {
		return Swatch{}, 0, false
	}
	return Nearest(dom, swatches)
}
