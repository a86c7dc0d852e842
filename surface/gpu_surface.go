// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
)

// ErrNilProvider is returned when a GPUSurface is created without a device provider.
var ErrNilProvider = errors.New("surface: nil DeviceProvider")

// GPUSurface is a canvas element presented in a gogpu window.
//
// Drawing happens on the CPU through the gg context; Present uploads the
// pixels to a GPU texture and draws it onto the window. The device provider
// typically comes from gogpu.App.GPUContextProvider().
//
// Example:
//
//	s, err := surface.NewGPUSurface(app.GPUContextProvider(), 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    _ = mc.Render()
//	    _ = s.Present(dc.AsTextureDrawer())
//	})
type GPUSurface struct {
	canvas *ggcanvas.Canvas
}

// NewGPUSurface creates a GPU-presented surface with the given dimensions.
func NewGPUSurface(provider gpucontext.DeviceProvider, width, height int) (*GPUSurface, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("surface: gpu surface: %w", err)
	}
	Logger().Info("surface: gpu surface created", "width", width, "height", height)
	return &GPUSurface{canvas: c}, nil
}

// Kind returns KindCanvas.
func (s *GPUSurface) Kind() string {
	return KindCanvas
}

// Width returns the surface width in pixels.
func (s *GPUSurface) Width() int {
	return s.canvas.Width()
}

// Height returns the surface height in pixels.
func (s *GPUSurface) Height() int {
	return s.canvas.Height()
}

// SetWidth resizes the surface width, keeping the height.
func (s *GPUSurface) SetWidth(width int) error {
	return s.resize(width, s.canvas.Height())
}

// SetHeight resizes the surface height, keeping the width.
func (s *GPUSurface) SetHeight(height int) error {
	return s.resize(s.canvas.Width(), height)
}

func (s *GPUSurface) resize(width, height int) error {
	if err := s.canvas.Resize(width, height); err != nil {
		return fmt.Errorf("surface: resize failed: %w", err)
	}
	return nil
}

// Context returns the drawing context, or nil once the surface is closed.
func (s *GPUSurface) Context() *gg.Context {
	return s.canvas.Context()
}

// Present marks the surface dirty and draws it onto dc.
// Call it after each render pass.
func (s *GPUSurface) Present(dc gpucontext.TextureDrawer) error {
	s.canvas.MarkDirty()
	return s.canvas.RenderTo(dc)
}

// Close releases the GPU texture and the drawing context.
// Close is idempotent; multiple calls are safe.
func (s *GPUSurface) Close() error {
	return s.canvas.Close()
}

var _ Surface = (*GPUSurface)(nil)
