// Package prep provides optional image preprocessing for small UI crops.
//
// Game-screen field regions are often only a few dozen pixels tall, which
// is below what Tesseract handles well. Upscaling, grayscale conversion,
// thresholding and inversion can substantially improve recognition on such
// crops. Steps compose with Chain and plug into an extractor via
// extract.WithPreprocess.
//
// All steps return a new image and never mutate their input.
package prep

import (
	"image"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Step is a single image transform.
type Step func(image.Image) image.Image

// Chain composes steps into one transform applied left to right.
func Chain(steps ...Step) Step {
	return func(img image.Image) image.Image {
		for _, step := range steps {
			img = step(img)
		}
		return img
	}
}

// Upscale enlarges the image by the given factor using Lanczos resampling.
// Factors at or below zero leave the image unchanged.
func Upscale(factor float64) Step {
	return func(img image.Image) image.Image {
		if factor <= 0 || factor == 1 {
			return img
		}
		width := int(float64(img.Bounds().Dx()) * factor)
		return imaging.Resize(img, width, 0, imaging.Lanczos)
	}
}

// Grayscale removes color information, leaving luminance only.
func Grayscale() Step {
	return func(img image.Image) image.Image {
		return imaging.Grayscale(img)
	}
}

// Binarize thresholds the image to pure black and white. Pixels brighter
// than level become white.
func Binarize(level uint8) Step {
	return func(img image.Image) image.Image {
		return segment.Threshold(img, level)
	}
}

// Invert flips every channel, turning light-on-dark UI text into the
// dark-on-light form Tesseract is trained on.
func Invert() Step {
	return func(img image.Image) image.Image {
		return imaging.Invert(img)
	}
}

// SmallField is the chain that works well for tiny light-on-dark UI
// badges: grayscale, upscale, threshold, invert.
func SmallField(factor float64, level uint8) Step {
	return Chain(Grayscale(), Upscale(factor), Binarize(level), Invert())
}
