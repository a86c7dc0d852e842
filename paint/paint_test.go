// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/multicanvas"
	"github.com/gogpu/multicanvas/surface"
)

// render draws fns as consecutive layers on a fresh w x h surface.
func render(t *testing.T, w, h int, fns ...multicanvas.DrawFunc) *image.RGBA {
	t.Helper()
	s := surface.NewImageSurface(w, h)
	t.Cleanup(func() { _ = s.Close() })

	mc, err := multicanvas.New(multicanvas.Ref{Element: s})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i, fn := range fns {
		if err := mc.Push(multicanvas.NewLayer(string(rune('a'+i)), fn)); err != nil {
			t.Fatalf("Push() error = %v", err)
		}
	}
	if err := mc.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s.Snapshot()
}

func opaque(px color.RGBA, r, g, b uint8) bool {
	return px.R == r && px.G == g && px.B == b && px.A == 255
}

func TestFill(t *testing.T) {
	img := render(t, 16, 16, Fill(gg.Red))
	for _, p := range []image.Point{{0, 0}, {8, 8}, {15, 15}} {
		if px := img.RGBAAt(p.X, p.Y); !opaque(px, 255, 0, 0) {
			t.Errorf("pixel %v = %v, want red", p, px)
		}
	}
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name    string
		fn      multicanvas.DrawFunc
		inside  image.Point
		outside image.Point
	}{
		{"rect", Rect(10, 10, 20, 20, gg.Blue), image.Pt(20, 20), image.Pt(5, 5)},
		{"rounded rect", RoundedRect(10, 10, 30, 30, 4, gg.Blue), image.Pt(25, 25), image.Pt(45, 45)},
		{"circle", Circle(32, 32, 10, gg.Blue), image.Pt(32, 32), image.Pt(5, 5)},
		{"star", Star(32, 32, 20, 10, gg.Blue), image.Pt(32, 32), image.Pt(2, 60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := render(t, 64, 64, tt.fn)
			if px := img.RGBAAt(tt.inside.X, tt.inside.Y); !opaque(px, 0, 0, 255) {
				t.Errorf("inside pixel = %v, want blue", px)
			}
			if px := img.RGBAAt(tt.outside.X, tt.outside.Y); px.A != 0 {
				t.Errorf("outside pixel = %v, want transparent", px)
			}
		})
	}
}

func TestLayerOrderOverlap(t *testing.T) {
	img := render(t, 32, 32, Fill(gg.Red), Rect(8, 8, 16, 16, gg.Green))
	if px := img.RGBAAt(16, 16); !opaque(px, 0, 255, 0) {
		t.Errorf("overlap pixel = %v, want green", px)
	}
	if px := img.RGBAAt(2, 2); !opaque(px, 255, 0, 0) {
		t.Errorf("background pixel = %v, want red", px)
	}
}

func TestGrid(t *testing.T) {
	img := render(t, 40, 40, Grid(10, 2, gg.White))
	if px := img.RGBAAt(10, 5); px.A == 0 {
		t.Error("expected a grid line at x=10")
	}
	if px := img.RGBAAt(5, 5); px.A != 0 {
		t.Errorf("cell interior = %v, want transparent", px)
	}
}

func TestGridNonPositiveStep(t *testing.T) {
	img := render(t, 20, 20, Grid(0, 1, gg.White))
	if px := img.RGBAAt(10, 10); px.A != 0 {
		t.Errorf("pixel = %v, want transparent", px)
	}
}

func TestText(t *testing.T) {
	face := DefaultFace(24)
	if face == nil {
		t.Fatal("DefaultFace() = nil")
	}

	img := render(t, 200, 40, Text(face, "Layers", 4, 30, gg.White))
	painted := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).A > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("Text() painted no pixels")
	}
}

func TestTextNilFace(t *testing.T) {
	img := render(t, 20, 20, Text(nil, "x", 2, 15, gg.White))
	if px := img.RGBAAt(5, 10); px.A != 0 {
		t.Errorf("pixel = %v, want transparent", px)
	}
}

func TestDefaultFontSourceCached(t *testing.T) {
	a, err := DefaultFontSource()
	if err != nil {
		t.Fatalf("DefaultFontSource() error = %v", err)
	}
	b, _ := DefaultFontSource()
	if a != b {
		t.Error("DefaultFontSource() should parse the font once")
	}
}

func TestImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
		}
	}

	img := render(t, 16, 16, Image(src, 6, 6))
	if px := img.RGBAAt(7, 7); !opaque(px, 0, 255, 0) {
		t.Errorf("image pixel = %v, want green", px)
	}
	if px := img.RGBAAt(1, 1); px.A != 0 {
		t.Errorf("pixel outside image = %v, want transparent", px)
	}
}

func TestGroup(t *testing.T) {
	img := render(t, 32, 32, Group(Fill(gg.Red), nil, Rect(0, 0, 8, 8, gg.Blue)))
	if px := img.RGBAAt(4, 4); !opaque(px, 0, 0, 255) {
		t.Errorf("grouped pixel = %v, want blue", px)
	}
	if px := img.RGBAAt(20, 20); !opaque(px, 255, 0, 0) {
		t.Errorf("grouped background = %v, want red", px)
	}
}
