package colour

import (
	"errors"
	"math"
)

// ErrEmptyPalette is returned when a match is requested against a palette
// with no candidate colours. The whitelist must never be empty, so hitting
// this indicates a bug in the surrounding setup.
var ErrEmptyPalette = errors.New("palette contains no colours")

// Closest returns the palette colour nearest to c by squared Euclidean
// distance in RGB space. When two candidates are equidistant, the one
// appearing earlier in the palette wins.
func Closest(c RGB, palette []Packed) (Packed, error) {
	if len(palette) == 0 {
		return 0, ErrEmptyPalette
	}

	entries := make([]RGB, len(palette))
	for i, p := range palette {
		entries[i] = p.RGB()
	}

	idx := closestIndex(int(c.R), int(c.G), int(c.B), entries)
	return palette[idx], nil
}

// closestIndex finds the index of the nearest entry to (r, g, b).
// Callers must guarantee entries is non-empty.
//
// The whole palette is scanned every time: entries are unordered in colour
// space, so no early exit is possible. Strict less-than keeps the first
// entry reaching the minimum distance, which makes ties deterministic.
func closestIndex(r, g, b int, entries []RGB) int {
	best := 0
	bestDist := math.MaxInt

	for i, e := range entries {
		dr := r - int(e.R)
		dg := g - int(e.G)
		db := b - int(e.B)
		dist := dr*dr + dg*dg + db*db
		if dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	return best
}
