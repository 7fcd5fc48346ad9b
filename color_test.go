package fb

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#323264", RGB(50, 50, 100)},
		{"66bfff", SkyBlue},
		{"#fff", White},
		{"#f008", RGBA(255, 0, 0, 136)},
		{"#0000ff80", RGBA(0, 0, 255, 128)},
		{"#AABBCC", RGB(0xaa, 0xbb, 0xcc)},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if err != nil {
			t.Errorf("ParseHex(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gggggg", "#1234567", "skyblue"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestHex_FallsBackToBlack(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %v, want Black", got)
	}
	if got := Hex("#ff0000"); got != Red {
		t.Errorf("Hex(#ff0000) = %v, want Red", got)
	}
}

func TestColor_String(t *testing.T) {
	if got := RGB(50, 50, 100).String(); got != "#323264ff" {
		t.Errorf("String() = %q, want #323264ff", got)
	}
}

func TestColor_TextRoundTrip(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	text, err := c.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back Color
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != c {
		t.Errorf("text round trip = %v, want %v", back, c)
	}
	if err := back.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) succeeded")
	}
}

func TestColor_ImplementsColorColor(t *testing.T) {
	var c color.Color = RGB(255, 128, 0)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 128*257 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want Color
	}{
		{color.NRGBA{R: 10, G: 20, B: 30, A: 255}, RGB(10, 20, 30)},
		{color.RGBA{R: 255, A: 255}, Red},
		{color.Gray{Y: 128}, RGB(128, 128, 128)},
		{RGBA(9, 8, 7, 200), RGBA(9, 8, 7, 200)},
	}
	for _, tt := range tests {
		if got := FromColor(tt.in); got != tt.want {
			t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
