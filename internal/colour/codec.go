// Package colour provides whitelist-based dominant colour classification.
package colour

import (
	"fmt"
	"strings"
)

// Packed is a colour packed into a single 24-bit integer, with red in the
// high byte, green in the middle byte and blue in the low byte.
type Packed int

// Pack combines three 8-bit channels into a Packed colour.
func Pack(r, g, b uint8) Packed {
	return Packed(int(r)<<16 | int(g)<<8 | int(b))
}

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB unpacks the colour into its red, green and blue components.
func (p Packed) RGB() RGB {
	return RGB{
		R: uint8(p >> 16 & 0xff),
		G: uint8(p >> 8 & 0xff),
		B: uint8(p & 0xff),
	}
}

// Hex returns the colour as a hex string (e.g., "#1a2b3c").
func (p Packed) Hex() string {
	return p.RGB().Hex()
}

// String returns the colour as a string in the format "rgb(r, g, b)".
func (p Packed) String() string {
	return p.RGB().String()
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Packed packs the RGB colour back into its 24-bit integer form.
func (rgb RGB) Packed() Packed {
	return Pack(rgb.R, rgb.G, rgb.B)
}

// RGBA represents a colour sample with an alpha channel.
// Alpha is straight (not premultiplied); 0 means fully transparent.
type RGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// ParseHex parses a hex colour string into a Packed colour.
// Accepts "#rrggbb", "rrggbb" and the short "#rgb" form.
func ParseHex(s string) (Packed, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		// Expand short form: "f0c" -> "ff00cc".
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[i*2] = hex[i]
			expanded[i*2+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
		// Full form, nothing to do.
	default:
		return 0, fmt.Errorf("invalid hex colour %q: expected 3 or 6 hex digits", s)
	}

	var value int
	for i := 0; i < len(hex); i++ {
		d, err := hexDigit(hex[i])
		if err != nil {
			return 0, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		value = value<<4 | d
	}

	return Packed(value), nil
}

// hexDigit converts a single hex character to its numeric value.
func hexDigit(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", string(c))
	}
}
