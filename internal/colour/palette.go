package colour

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RankedColour is a whitelist colour together with the number of samples it
// attracted during classification.
type RankedColour struct {
	Colour Packed
	Count  int
}

// RankedPalette is the whitelist reordered by descending hit count. It is
// produced once per image and is immutable afterwards; all accessors are pure
// reads and safe for concurrent use.
type RankedPalette struct {
	entries       []RankedColour
	defaultLength int
}

// newRankedPalette ranks whitelist by the parallel counts slice. The sort is
// stable so equal counts preserve whitelist definition order.
func newRankedPalette(whitelist []Packed, counts []int, defaultLength int) *RankedPalette {
	entries := make([]RankedColour, len(whitelist))
	for i, c := range whitelist {
		entries[i] = RankedColour{Colour: c, Count: counts[i]}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return &RankedPalette{
		entries:       entries,
		defaultLength: defaultLength,
	}
}

// Len returns the number of colours in the palette.
func (p *RankedPalette) Len() int {
	return len(p.entries)
}

// Get returns the ranked entry at the specified index.
// Returns an error if the index is out of bounds.
func (p *RankedPalette) Get(index int) (RankedColour, error) {
	if index < 0 || index >= len(p.entries) {
		return RankedColour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.entries))
	}
	return p.entries[index], nil
}

// TopColours returns the first n ranked entries. A non-positive n falls back
// to the palette's configured default length; an n larger than the palette
// returns the whole palette without error.
func (p *RankedPalette) TopColours(n int) []RankedColour {
	if n <= 0 {
		n = p.defaultLength
	}
	if n > len(p.entries) {
		n = len(p.entries)
	}

	top := make([]RankedColour, n)
	copy(top, p.entries[:n])
	return top
}

// ToInts returns the top n colours in packed integer form.
func (p *RankedPalette) ToInts(n int) []Packed {
	top := p.TopColours(n)
	packed := make([]Packed, len(top))
	for i, e := range top {
		packed[i] = e.Colour
	}
	return packed
}

// ToRGBSlice returns the top n colours as RGB structs.
func (p *RankedPalette) ToRGBSlice(n int) []RGB {
	top := p.TopColours(n)
	rgbColours := make([]RGB, len(top))
	for i, e := range top {
		rgbColours[i] = e.Colour.RGB()
	}
	return rgbColours
}

// ToHex returns the top n colours as hex strings (e.g., ["#1a2b3c", "#4d5e6f"]).
func (p *RankedPalette) ToHex(n int) []string {
	top := p.TopColours(n)
	hexColours := make([]string, len(top))
	for i, e := range top {
		hexColours[i] = e.Colour.Hex()
	}
	return hexColours
}

// Counts returns the hit counts of the top n colours, in ranked order.
func (p *RankedPalette) Counts(n int) []int {
	top := p.TopColours(n)
	counts := make([]int, len(top))
	for i, e := range top {
		counts[i] = e.Count
	}
	return counts
}

// TotalHits returns the total number of classified samples across the whole
// palette, regardless of any top-N view.
func (p *RankedPalette) TotalHits() int {
	total := 0
	for _, e := range p.entries {
		total += e.Count
	}
	return total
}

// ColourJSON represents a single ranked colour in JSON output format.
type ColourJSON struct {
	Hex   string  `json:"hex"`
	RGB   RGB     `json:"rgb"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
}

// PaletteJSON represents the ranked palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the top n colours to indented JSON.
func (p *RankedPalette) ToJSON(n int) ([]byte, error) {
	top := p.TopColours(n)
	total := p.TotalHits()

	colours := make([]ColourJSON, len(top))
	for i, e := range top {
		share := 0.0
		if total > 0 {
			share = float64(e.Count) / float64(total)
		}
		colours[i] = ColourJSON{
			Hex:   e.Colour.Hex(),
			RGB:   e.Colour.RGB(),
			Count: e.Count,
			Share: share,
		}
	}

	paletteJSON := PaletteJSON{
		Count:   len(colours),
		Colours: colours,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable representation of the full ranked palette,
// one colour per line.
func (p *RankedPalette) String() string {
	if len(p.entries) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Ranked palette with %d colours:\n", len(p.entries))
	for i, e := range p.entries {
		rgb := e.Colour.RGB()
		fmt.Fprintf(&b, "  %2d: %s (%s) hits=%d\n", i+1, rgb.Hex(), rgb.String(), e.Count)
	}
	return b.String()
}

// All returns an iterator over the ranked entries in ranked order.
func (p *RankedPalette) All() func(func(int, RankedColour) bool) {
	return func(yield func(int, RankedColour) bool) {
		for i, e := range p.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}
