package main

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestRGBAFlipped(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255}) // top-left red
	src.Set(1, 0, color.RGBA{0, 255, 0, 255}) // top-right green
	src.Set(0, 1, color.RGBA{0, 0, 255, 255}) // bottom-left blue
	src.Set(1, 1, color.RGBA{255, 255, 255, 255})

	dst := rgbaFlipped(src)

	// The top row of the source must end up on the bottom row.
	if got := dst.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("flipped (0,1): got %v, want red", got)
	}
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("flipped (0,0): got %v, want blue", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("flipped (1,0): got %v, want white", got)
	}
}

func TestRGBAFlippedOffsetBounds(t *testing.T) {
	// Subimages carry non-zero bounds; the flip must normalize them.
	base := image.NewRGBA(image.Rect(0, 0, 4, 4))
	base.Set(2, 2, color.RGBA{10, 20, 30, 255})
	sub := base.SubImage(image.Rect(2, 2, 4, 4))

	dst := rgbaFlipped(sub)

	if dst.Rect.Min.X != 0 || dst.Rect.Min.Y != 0 {
		t.Errorf("flipped bounds not normalized: %v", dst.Rect)
	}
	if got := dst.RGBAAt(0, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("flipped subimage pixel: got %v", got)
	}
}

func TestTintRGB(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		wantR uint8
		wantG uint8
		wantB uint8
	}{
		{name: "White", hex: "#FFFFFF", wantR: 255, wantG: 255, wantB: 255},
		{name: "MarsRed", hex: "#C1440E", wantR: 0xC1, wantG: 0x44, wantB: 0x0E},
		{name: "EmptyFallsBackToGray", hex: "", wantR: 128, wantG: 128, wantB: 128},
		{name: "MalformedFallsBackToGray", hex: "blue", wantR: 128, wantG: 128, wantB: 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b := tintRGB(tc.hex)
			if r != tc.wantR || g != tc.wantG || b != tc.wantB {
				t.Errorf("tintRGB(%q): got (%d,%d,%d), want (%d,%d,%d)",
					tc.hex, r, g, b, tc.wantR, tc.wantG, tc.wantB)
			}
		})
	}
}

func TestRingTint(t *testing.T) {
	// White dims to the dimming factor itself.
	c := ringTint("#FFFFFF")
	for i := 0; i < 3; i++ {
		if math.Abs(float64(c[i]-0.45)) > 1e-5 {
			t.Errorf("white ring channel %d: got %f, want 0.45", i, c[i])
		}
	}

	// A bad color dims the gray fallback.
	c = ringTint("nope")
	want := float32(128.0 / 255.0 * 0.45)
	for i := 0; i < 3; i++ {
		if math.Abs(float64(c[i]-want)) > 1e-5 {
			t.Errorf("fallback ring channel %d: got %f, want %f", i, c[i], want)
		}
	}

	// Channels stay proportional to the source color.
	c = ringTint("#FF0000")
	if c.Y() != 0 || c.Z() != 0 {
		t.Errorf("red ring has nonzero green/blue: %v", c)
	}
	if math.Abs(float64(c.X()-0.45)) > 1e-5 {
		t.Errorf("red ring red channel: got %f, want 0.45", c.X())
	}
}
