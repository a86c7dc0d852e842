// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/gogpu/gg"
)

// ErrSurfaceClosed is returned when a closed surface is resized or encoded.
var ErrSurfaceClosed = errors.New("surface: surface is closed")

// ImageSurface is a CPU-based canvas element that renders into a gg pixmap.
//
// This is the default surface implementation for offscreen rendering,
// tests and image export.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	dc := s.Context()
//	dc.SetRGB(0, 0, 1)
//	dc.DrawRectangle(0, 0, 800, 600)
//	_ = dc.Fill()
//
//	img := s.Snapshot()
type ImageSurface struct {
	dc *gg.Context

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		dc: gg.NewContext(width, height),
	}
}

// NewImageSurfaceFromImage creates a surface initialized with a copy of img.
func NewImageSurfaceFromImage(img image.Image) *ImageSurface {
	return &ImageSurface{
		dc: gg.NewContextForImage(img),
	}
}

// Kind returns KindCanvas.
func (s *ImageSurface) Kind() string {
	return KindCanvas
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.dc.Height()
}

// SetWidth resizes the surface width, keeping the height.
// Resizing discards the current contents.
func (s *ImageSurface) SetWidth(width int) error {
	return s.resize(width, s.dc.Height())
}

// SetHeight resizes the surface height, keeping the width.
// Resizing discards the current contents.
func (s *ImageSurface) SetHeight(height int) error {
	return s.resize(s.dc.Width(), height)
}

func (s *ImageSurface) resize(width, height int) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if err := s.dc.Resize(width, height); err != nil {
		return fmt.Errorf("surface: resize failed: %w", err)
	}
	Logger().Debug("surface: image surface resized", "width", width, "height", height)
	return nil
}

// Context returns the drawing context, or nil once the surface is closed.
func (s *ImageSurface) Context() *gg.Context {
	if s.closed {
		return nil
	}
	return s.dc
}

// Snapshot returns a copy of the current surface contents.
// Returns nil if the surface is closed.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	_ = s.dc.FlushGPU()
	src := s.dc.Image()
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}

	result := image.NewRGBA(src.Bounds())
	draw.Draw(result, result.Bounds(), src, src.Bounds().Min, draw.Src)
	return result
}

// EncodePNG writes the surface contents to w in PNG format.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.dc.EncodePNG(w)
}

// SavePNG writes the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.dc.SavePNG(path)
}

// Close releases resources associated with the surface.
// Close is idempotent; multiple calls are safe.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}

var _ Surface = (*ImageSurface)(nil)
