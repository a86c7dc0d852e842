// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"iter"

	"github.com/gogpu/gg"
	"github.com/gogpu/multicanvas/surface"
)

// Canvas composites an ordered set of layers onto one surface.
//
// Layers are drawn in insertion order, so later layers draw over earlier
// ones. Layer ids are unique within a Canvas. Every mutation is applied
// completely or not at all.
//
// Canvas is NOT safe for concurrent use. Drive it from a single goroutine,
// typically the host's frame loop, or use external synchronization.
type Canvas struct {
	surface surface.Surface
	dc      *gg.Context
	layers  []*Layer
	opts    options
}

// New creates a Canvas drawing onto the surface identified by target.
//
// A Selector target is resolved with the configured Resolver (the default
// document unless WithResolver is given); a Ref target is used as is.
// New returns an error wrapping ErrInvalidSurfaceReference if nothing is
// found or the element is not a drawable canvas. The error names the kind
// of element that was found.
//
// The drawing context is taken from the surface at construction and
// refreshed at the start of each Render. A surface without a context is
// accepted; Render reports ErrMissingDrawingContext until one becomes
// available.
func New(target Target, opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := resolveTarget(target, o.resolver)
	if err != nil {
		return nil, err
	}

	c := &Canvas{
		surface: s,
		dc:      s.Context(),
		opts:    o,
	}
	Logger().Info("multicanvas: canvas created",
		"width", s.Width(), "height", s.Height(), "context", c.dc != nil)
	return c, nil
}

// Push appends layers, in argument order, after the existing layers.
//
// Layers sharing an id within the same call are collapsed to the first
// occurrence. If any remaining id is already used by the canvas, Push
// returns an error wrapping ErrLayerAlreadyExists that names the first
// conflicting id, and no layer is added.
func (c *Canvas) Push(layers ...*Layer) error {
	batch := make([]*Layer, 0, len(layers))
	seen := make(map[string]struct{}, len(layers))
	for _, l := range layers {
		if l == nil {
			return ErrNilLayer
		}
		if _, dup := seen[l.id]; dup {
			continue
		}
		seen[l.id] = struct{}{}
		batch = append(batch, l)
	}

	for _, l := range batch {
		if c.FindIndex(l.id) != -1 {
			return &LayerExistsError{ID: l.id}
		}
	}

	start := len(c.layers)
	c.layers = append(c.layers, batch...)
	for k, l := range batch {
		Logger().Debug("multicanvas: layer pushed", "id", l.id, "index", start+k)
	}
	return nil
}

// Layer returns the layer with the given id, or nil.
func (c *Canvas) Layer(id string) *Layer {
	if i := c.FindIndex(id); i != -1 {
		return c.layers[i]
	}
	return nil
}

// At returns the layer at position index in render order, or nil if index
// is out of range.
func (c *Canvas) At(index int) *Layer {
	if index < 0 || index >= len(c.layers) {
		return nil
	}
	return c.layers[index]
}

// FindIndex returns the position of the layer with the given id, or -1.
func (c *Canvas) FindIndex(id string) int {
	for i, l := range c.layers {
		if l.id == id {
			return i
		}
	}
	return -1
}

// UpdateLayer replaces the layer identified by id with replacement, keeping
// its position. The replacement may carry a different id, as long as no
// other layer already uses it.
//
// Returns an error wrapping ErrLayerNotFound if id is unknown, or
// ErrLayerAlreadyExists if the new id belongs to another layer.
func (c *Canvas) UpdateLayer(id string, replacement *Layer) error {
	if replacement == nil {
		return ErrNilLayer
	}
	i := c.FindIndex(id)
	if i == -1 {
		return &LayerNotFoundError{ID: id}
	}
	if j := c.FindIndex(replacement.id); j != -1 && j != i {
		return &LayerExistsError{ID: replacement.id}
	}

	c.layers[i] = replacement
	Logger().Debug("multicanvas: layer updated", "id", id, "new_id", replacement.id, "index", i)
	return nil
}

// RemoveLayer removes the layer with the given id. The remaining layers
// keep their relative order.
//
// Returns an error wrapping ErrLayerNotFound if id is unknown.
func (c *Canvas) RemoveLayer(id string) error {
	i := c.FindIndex(id)
	if i == -1 {
		return &LayerNotFoundError{ID: id}
	}

	copy(c.layers[i:], c.layers[i+1:])
	c.layers[len(c.layers)-1] = nil
	c.layers = c.layers[:len(c.layers)-1]
	Logger().Debug("multicanvas: layer removed", "id", id, "index", i)
	return nil
}

// Render clears the surface and draws every layer in order.
//
// Render returns ErrMissingDrawingContext if the surface has no drawing
// context; the canvas is left untouched and Render may be retried.
// A panic raised by a layer procedure is not recovered: it aborts the pass
// and the remaining layers are not drawn.
func (c *Canvas) Render() error {
	dc := c.context()
	if dc == nil {
		return ErrMissingDrawingContext
	}

	dc.ClearWithColor(c.opts.clearColor)
	Logger().Debug("multicanvas: render pass",
		"layers", len(c.layers), "width", c.surface.Width(), "height", c.surface.Height())

	for _, l := range c.layers {
		if c.opts.isolate {
			c.renderIsolated(l, dc)
			continue
		}
		l.render(c.surface, dc)
	}
	return nil
}

// renderIsolated draws l between dc.Push and dc.Pop. The state is restored
// even when the layer panics.
func (c *Canvas) renderIsolated(l *Layer, dc *gg.Context) {
	dc.Push()
	defer dc.Pop()
	l.render(c.surface, dc)
}

// context refreshes the drawing context from the surface. Surfaces hand
// out nil once closed and may gain a context later.
func (c *Canvas) context() *gg.Context {
	c.dc = c.surface.Context()
	return c.dc
}

// Len returns the number of layers.
func (c *Canvas) Len() int {
	return len(c.layers)
}

// All returns an iterator over the layers in render order.
// The canvas must not be modified during iteration.
func (c *Canvas) All() iter.Seq2[int, *Layer] {
	return func(yield func(int, *Layer) bool) {
		for i, l := range c.layers {
			if !yield(i, l) {
				return
			}
		}
	}
}

// IDs returns the layer ids in render order.
func (c *Canvas) IDs() []string {
	ids := make([]string, len(c.layers))
	for i, l := range c.layers {
		ids[i] = l.id
	}
	return ids
}

// Surface returns the surface the canvas draws onto.
func (c *Canvas) Surface() surface.Surface {
	return c.surface
}

// Width returns the surface width in pixels.
func (c *Canvas) Width() int {
	return c.surface.Width()
}

// SetWidth resizes the surface width. The new size applies from the next
// Render.
func (c *Canvas) SetWidth(width int) error {
	return c.surface.SetWidth(width)
}

// Height returns the surface height in pixels.
func (c *Canvas) Height() int {
	return c.surface.Height()
}

// SetHeight resizes the surface height. The new size applies from the next
// Render.
func (c *Canvas) SetHeight(height int) error {
	return c.surface.SetHeight(height)
}
