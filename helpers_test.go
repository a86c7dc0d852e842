// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/multicanvas/surface"
)

// stubSurface is a canvas element whose drawing context can be withheld.
type stubSurface struct {
	width, height int
	dc            *gg.Context
}

func (s *stubSurface) Kind() string         { return surface.KindCanvas }
func (s *stubSurface) Width() int           { return s.width }
func (s *stubSurface) Height() int          { return s.height }
func (s *stubSurface) Context() *gg.Context { return s.dc }

func (s *stubSurface) SetWidth(w int) error {
	s.width = w
	return nil
}

func (s *stubSurface) SetHeight(h int) error {
	s.height = h
	return nil
}

// mislabeled reports a canvas kind without being drawable.
type mislabeled struct{}

func (mislabeled) Kind() string { return surface.KindCanvas }

// newTestCanvas returns a canvas over a fresh image surface.
func newTestCanvas(t *testing.T, w, h int, opts ...Option) (*Canvas, *surface.ImageSurface) {
	t.Helper()
	s := surface.NewImageSurface(w, h)
	t.Cleanup(func() { _ = s.Close() })

	c, err := New(Ref{Element: s}, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, s
}

// noop returns a layer that draws nothing.
func noop(id string) *Layer {
	return NewLayer(id, func(surface.Surface, *gg.Context) {})
}

// recorder returns a layer that appends its id to calls when drawn.
func recorder(id string, calls *[]string) *Layer {
	return NewLayer(id, func(surface.Surface, *gg.Context) {
		*calls = append(*calls, id)
	})
}

func rgbaAt(t *testing.T, s *surface.ImageSurface, x, y int) color.RGBA {
	t.Helper()
	img := s.Snapshot()
	if img == nil {
		t.Fatal("Snapshot returned nil")
	}
	return img.RGBAAt(x, y)
}
