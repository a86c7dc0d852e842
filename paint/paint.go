// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package paint provides ready-made layer procedures built on gg.
//
// Each function returns a multicanvas.DrawFunc that can be wrapped in a
// layer:
//
//	bg := multicanvas.NewLayer("bg", paint.Fill(gg.Hex("#202030")))
//	ui := multicanvas.NewLayer("ui", paint.Text(paint.DefaultFace(18), "Score: 0", 12, 28, gg.White))
//
// Procedures set their own paint state before drawing and leave the
// transform untouched.
package paint

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/multicanvas"
	"github.com/gogpu/multicanvas/surface"
)

// Fill covers the whole surface with c.
func Fill(c gg.RGBA) multicanvas.DrawFunc {
	return func(s surface.Surface, dc *gg.Context) {
		setColor(dc, c)
		dc.DrawRectangle(0, 0, float64(s.Width()), float64(s.Height()))
		_ = dc.Fill()
	}
}

// Rect fills an axis-aligned rectangle.
func Rect(x, y, w, h float64, c gg.RGBA) multicanvas.DrawFunc {
	return func(_ surface.Surface, dc *gg.Context) {
		setColor(dc, c)
		dc.DrawRectangle(x, y, w, h)
		_ = dc.Fill()
	}
}

// RoundedRect fills a rectangle with corner radius r.
func RoundedRect(x, y, w, h, r float64, c gg.RGBA) multicanvas.DrawFunc {
	return func(_ surface.Surface, dc *gg.Context) {
		setColor(dc, c)
		dc.DrawRoundedRectangle(x, y, w, h, r)
		_ = dc.Fill()
	}
}

// Circle fills a circle centered at (x, y).
func Circle(x, y, r float64, c gg.RGBA) multicanvas.DrawFunc {
	return func(_ surface.Surface, dc *gg.Context) {
		setColor(dc, c)
		dc.DrawCircle(x, y, r)
		_ = dc.Fill()
	}
}

// Grid strokes horizontal and vertical lines every step pixels across the
// surface. A non-positive step draws nothing.
func Grid(step, lineWidth float64, c gg.RGBA) multicanvas.DrawFunc {
	return func(s surface.Surface, dc *gg.Context) {
		if step <= 0 {
			return
		}
		w, h := float64(s.Width()), float64(s.Height())
		setColor(dc, c)
		dc.SetLineWidth(lineWidth)
		for x := step; x < w; x += step {
			dc.DrawLine(x, 0, x, h)
		}
		for y := step; y < h; y += step {
			dc.DrawLine(0, y, w, y)
		}
		_ = dc.Stroke()
	}
}

// Star fills a five-pointed star centered at (x, y).
func Star(x, y, outer, inner float64, c gg.RGBA) multicanvas.DrawFunc {
	const points = 5
	return func(_ surface.Surface, dc *gg.Context) {
		setColor(dc, c)
		for i := 0; i < points*2; i++ {
			angle := float64(i) * math.Pi / points
			r := outer
			if i%2 == 1 {
				r = inner
			}
			px := x + r*math.Cos(angle-math.Pi/2)
			py := y + r*math.Sin(angle-math.Pi/2)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
		_ = dc.Fill()
	}
}

// Text draws s with its baseline at (x, y). A nil face draws nothing.
func Text(face text.Face, s string, x, y float64, c gg.RGBA) multicanvas.DrawFunc {
	return func(_ surface.Surface, dc *gg.Context) {
		if face == nil {
			return
		}
		setColor(dc, c)
		dc.SetFont(face)
		dc.DrawString(s, x, y)
	}
}

// Image draws img with its top-left corner at (x, y).
// The image is converted once, when the procedure is created.
func Image(img image.Image, x, y float64) multicanvas.DrawFunc {
	buf := gg.ImageBufFromImage(img)
	return func(_ surface.Surface, dc *gg.Context) {
		dc.DrawImage(buf, x, y)
	}
}

// Group runs procedures in order as a single layer.
func Group(fns ...multicanvas.DrawFunc) multicanvas.DrawFunc {
	return func(s surface.Surface, dc *gg.Context) {
		for _, fn := range fns {
			if fn != nil {
				fn(s, dc)
			}
		}
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
