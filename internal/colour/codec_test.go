package colour

import (
	"testing"
)

func TestPack(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Packed
	}{
		{
			name: "black",
			r:    0, g: 0, b: 0,
			want: 0x000000,
		},
		{
			name: "white",
			r:    255, g: 255, b: 255,
			want: 0xffffff,
		},
		{
			name: "mid blue",
			r:    0x33, g: 0x66, b: 0x99,
			want: 0x336699,
		},
		{
			name: "red only",
			r:    0xcc, g: 0, b: 0,
			want: 0xcc0000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pack(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Pack(%d, %d, %d) = %#x, want %#x", tt.r, tt.g, tt.b, int(got), int(tt.want))
			}
		})
	}
}

func TestPackedRGBRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
	}{
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}},
		{name: "channel boundaries", rgb: RGB{R: 255, G: 0, B: 255}},
		{name: "arbitrary", rgb: RGB{R: 51, G: 102, B: 153}},
		{name: "single bit per channel", rgb: RGB{R: 1, G: 1, B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed := Pack(tt.rgb.R, tt.rgb.G, tt.rgb.B)
			if got := packed.RGB(); got != tt.rgb {
				t.Errorf("Pack().RGB() = %+v, want %+v", got, tt.rgb)
			}
			if got := tt.rgb.Packed(); got != packed {
				t.Errorf("RGB.Packed() = %#x, want %#x", int(got), int(packed))
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00ff00"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000ff"},
		{name: "zero padded", rgb: RGB{R: 1, G: 2, B: 3}, want: "#010203"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "rgb(255, 0, 0)"},
		{name: "mixed", rgb: RGB{R: 51, G: 102, B: 153}, want: "rgb(51, 102, 153)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPackedHex(t *testing.T) {
	if got := Packed(0x336699).Hex(); got != "#336699" {
		t.Errorf("Hex() = %s, want #336699", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Packed
		wantErr bool
	}{
		{
			name:  "full form with hash",
			input: "#336699",
			want:  0x336699,
		},
		{
			name:  "full form without hash",
			input: "cc0000",
			want:  0xcc0000,
		},
		{
			name:  "uppercase",
			input: "#CC3333",
			want:  0xcc3333,
		},
		{
			name:  "short form",
			input: "#f0c",
			want:  0xff00cc,
		},
		{
			name:  "surrounding whitespace",
			input: "  #ffffff ",
			want:  0xffffff,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "#12345",
			wantErr: true,
		},
		{
			name:    "invalid digit",
			input:   "#zzzzzz",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseHex(%q) = %#x, want %#x", tt.input, int(got), int(tt.want))
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, packed := range DefaultWhitelist() {
		got, err := ParseHex(packed.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", packed.Hex(), err)
		}
		if got != packed {
			t.Errorf("ParseHex(%q) = %#x, want %#x", packed.Hex(), int(got), int(packed))
		}
	}
}
