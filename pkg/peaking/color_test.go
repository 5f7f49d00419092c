package peaking

import (
	"errors"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want HighlightColor
	}{
		{"pure red", "#FF0000", HighlightColor{B: 0, G: 0, R: 255}},
		{"pure green", "#00FF00", HighlightColor{B: 0, G: 255, R: 0}},
		{"pure blue", "#0000FF", HighlightColor{B: 255, G: 0, R: 0}},
		{"mixed", "#123456", HighlightColor{B: 0x56, G: 0x34, R: 0x12}},
		{"no hash prefix", "FF8040", HighlightColor{B: 0x40, G: 0x80, R: 0xFF}},
		{"lowercase", "#ff8040", HighlightColor{B: 0x40, G: 0x80, R: 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, in := range []string{"zzzzzz", "#12345", "", "#GG0000", "red"} {
		if _, err := ParseHexColor(in); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("ParseHexColor(%q): got %v, want ErrInvalidColorFormat", in, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c, err := ParseHexColor("#00FF00")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0 || c.G != 255 || c.B != 0 {
		t.Fatalf("native channel order mismatch: %+v", c)
	}
	if got := c.Hex(); got != "#00FF00" {
		t.Errorf("Hex() = %q, want #00FF00", got)
	}
}
