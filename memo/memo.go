// Package memo avoids redundant OCR work for callers that re-capture the
// same UI fields every frame.
//
// A perceptual hash of each field region is compared against the hash of
// the region's previous capture; within a Hamming-distance threshold the
// cached result is returned without touching the engine. Recognition is by
// far the most expensive step in a capture loop, and most frames leave most
// fields unchanged.
package memo

import (
	"image"
	"sync"

	"github.com/corona10/goimagehash"

	"github.com/haldris/fieldread/extract"
)

// Result is a cached extraction outcome.
type Result struct {
	Text       string
	Confidence float64
}

type entry struct {
	hash *goimagehash.ImageHash
	res  Result
}

// Cache holds one previous result per field name. It is safe for
// concurrent use.
type Cache struct {
	mu          sync.Mutex
	maxDistance int
	entries     map[string]entry
}

// NewCache creates a cache that treats two captures of a field as
// identical when their perceptual hashes are within maxDistance bits.
// A distance of 0 requires an exact hash match.
func NewCache(maxDistance int) *Cache {
	return &Cache{
		maxDistance: maxDistance,
		entries:     make(map[string]entry),
	}
}

// Lookup returns the cached result for the field when the region hashes
// close enough to the previous capture. Hashing failures count as misses.
func (c *Cache) Lookup(field string, img image.Image) (Result, bool) {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return Result{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[field]
	if !ok {
		return Result{}, false
	}
	dist, err := e.hash.Distance(hash)
	if err != nil || dist > c.maxDistance {
		return Result{}, false
	}
	return e.res, true
}

// Store records the result for the field's current capture, replacing any
// previous entry. Hashing failures are ignored; the next lookup simply
// misses.
func (c *Cache) Store(field string, img image.Image, res Result) {
	hash, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return
	}

	c.mu.Lock()
	c.entries[field] = entry{hash: hash, res: res}
	c.mu.Unlock()
}

// Clear drops every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Extractor wraps an extract.Extractor with per-field memoization. Empty
// results are never cached: the public contract cannot distinguish "nothing
// there" from an engine failure, and a failure must not be replayed once
// the engine recovers.
type Extractor struct {
	inner *extract.Extractor
	cache *Cache
}

// Wrap builds a memoizing front for the extractor.
func Wrap(inner *extract.Extractor, cache *Cache) *Extractor {
	return &Extractor{inner: inner, cache: cache}
}

// ExtractText reads a free-text field, reusing the previous result for a
// visually unchanged region.
func (e *Extractor) ExtractText(img image.Image) string {
	return e.memoized("text", img, e.inner.ExtractText)
}

// ExtractNumber reads a pure-numeric field with memoization.
func (e *Extractor) ExtractNumber(img image.Image) string {
	return e.memoized("number", img, e.inner.ExtractNumber)
}

// ExtractTurnNumber reads a turn counter with memoization.
func (e *Extractor) ExtractTurnNumber(img image.Image) string {
	return e.memoized("turn", img, e.inner.ExtractTurnNumber)
}

// ExtractMoodText reads a mood label with memoization.
func (e *Extractor) ExtractMoodText(img image.Image) string {
	return e.memoized("mood", img, e.inner.ExtractMoodText)
}

// ExtractFailureText reads a failure-rate field with memoization.
func (e *Extractor) ExtractFailureText(img image.Image) string {
	return e.memoized("failure", img, e.inner.ExtractFailureText)
}

// ExtractFailureTextWithConfidence reads a failure-rate field with
// confidence, with memoization.
func (e *Extractor) ExtractFailureTextWithConfidence(img image.Image) (string, float64) {
	if res, ok := e.cache.Lookup("failure_conf", img); ok {
		return res.Text, res.Confidence
	}
	text, conf := e.inner.ExtractFailureTextWithConfidence(img)
	if text != "" {
		e.cache.Store("failure_conf", img, Result{Text: text, Confidence: conf})
	}
	return text, conf
}

func (e *Extractor) memoized(field string, img image.Image, fn func(image.Image) string) string {
	if res, ok := e.cache.Lookup(field, img); ok {
		return res.Text
	}
	text := fn(img)
	if text != "" {
		e.cache.Store(field, img, Result{Text: text})
	}
	return text
}
