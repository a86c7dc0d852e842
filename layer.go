// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/multicanvas/surface"
)

// DrawFunc draws one layer onto s using dc.
//
// dc is the surface's drawing context. Drawing state (color, line width,
// transform, clip) is shared by all layers of a render pass unless the
// canvas was created with WithStateIsolation.
type DrawFunc func(s surface.Surface, dc *gg.Context)

// Layer is a named drawing procedure.
// A Layer is immutable: to change what a layer draws, replace it with
// Canvas.UpdateLayer.
type Layer struct {
	id   string
	draw DrawFunc
}

// NewLayer creates a layer.
//
// Example:
//
//	bg := multicanvas.NewLayer("background", func(s surface.Surface, dc *gg.Context) {
//	    dc.SetRGB(0.1, 0.1, 0.2)
//	    dc.DrawRectangle(0, 0, float64(s.Width()), float64(s.Height()))
//	    _ = dc.Fill()
//	})
func NewLayer(id string, draw DrawFunc) *Layer {
	return &Layer{id: id, draw: draw}
}

// ID returns the layer identifier.
func (l *Layer) ID() string {
	return l.id
}

// Draw returns the layer's drawing procedure.
func (l *Layer) Draw() DrawFunc {
	return l.draw
}

// render invokes the procedure; a nil procedure draws nothing.
func (l *Layer) render(s surface.Surface, dc *gg.Context) {
	if l.draw == nil {
		return
	}
	l.draw(s, dc)
}
