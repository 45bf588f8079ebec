package colour

import "fmt"

// PixelSource supplies decoded pixel data to the classifier. Implementations
// are expected to be fully resident in memory: PixelAt must be cheap,
// synchronous and side-effect free. The classifier never learns which decode
// backend produced the pixels.
type PixelSource interface {
	// Width returns the image width in pixels.
	Width() int

	// Height returns the image height in pixels.
	Height() int

	// PixelAt returns the colour at (x, y) with straight alpha.
	// Coordinates are zero-based and must be within the image bounds.
	PixelAt(x, y int) RGBA
}

// Default configuration values for the dominant colour extractor.
const (
	// DefaultPrecision is the default sampling stride in pixels.
	DefaultPrecision = 10

	// DefaultLength is the default number of colours returned by
	// RankedPalette.TopColours when no explicit count is given.
	DefaultLength = 5
)

// DominantExtractor classifies sampled pixels against a fixed whitelist and
// ranks the whitelist by hit frequency.
//
// The zero value is not usable; construct instances with NewDominantExtractor
// or NewExtractor.
type DominantExtractor struct {
	// Precision is the sampling stride: the classifier inspects every
	// Precision-th pixel along each axis. 1 means a full scan.
	Precision int

	// Whitelist is the ordered candidate palette. It is read-only for the
	// lifetime of the extractor.
	Whitelist []Packed

	// DefaultLength is the top-N fall-back used by the resulting
	// RankedPalette when a view request carries no valid count.
	DefaultLength int
}

// NewDominantExtractor creates an extractor with the default whitelist,
// precision and palette length.
func NewDominantExtractor() *DominantExtractor {
	return &DominantExtractor{
		Precision:     DefaultPrecision,
		Whitelist:     DefaultWhitelist(),
		DefaultLength: DefaultLength,
	}
}

// Classify samples src on the configured stride grid, matches every opaque
// sample to its nearest whitelist colour, and returns the whitelist ranked by
// descending hit count. The ranking is stable: colours with equal counts keep
// their whitelist definition order, including colours that were never hit.
//
// Fully transparent samples (alpha 0) are skipped entirely: they are neither
// counted nor classified. Partially transparent samples are classified
// normally.
func (e *DominantExtractor) Classify(src PixelSource) (*RankedPalette, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	// Unpack the whitelist once; the matcher runs per sample.
	entries := make([]RGB, len(e.Whitelist))
	for i, p := range e.Whitelist {
		entries[i] = p.RGB()
	}

	counts := make([]int, len(e.Whitelist))
	for x := 0; x < width; x += e.Precision {
		for y := 0; y < height; y += e.Precision {
			px := src.PixelAt(x, y)
			if px.A == 0 {
				continue
			}
			idx := closestIndex(int(px.R), int(px.G), int(px.B), entries)
			counts[idx]++
		}
	}

	return newRankedPalette(e.Whitelist, counts, e.DefaultLength), nil
}

// validate checks the extractor configuration for programmer errors.
func (e *DominantExtractor) validate() error {
	if e.Precision < 1 {
		return fmt.Errorf("precision must be at least 1, got %d", e.Precision)
	}
	if len(e.Whitelist) == 0 {
		return ErrEmptyPalette
	}
	if e.DefaultLength < 0 {
		return fmt.Errorf("default palette length cannot be negative, got %d", e.DefaultLength)
	}
	return nil
}
