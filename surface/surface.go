// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"reflect"

	"github.com/gogpu/gg"
)

// KindCanvas is the element kind reported by drawable surfaces.
const KindCanvas = "CANVAS"

// Element is a node of a document that can be resolved by selector.
//
// Kind reports the element's tag in upper case (for example "CANVAS" or
// "DIV"). Only elements of kind KindCanvas that also implement Surface
// can back a multi-layered canvas.
type Element interface {
	Kind() string
}

// Surface is a drawable canvas element.
//
// A Surface owns a 2D drawing context and its pixel dimensions. Setting a
// dimension resizes the backing store immediately; the new size is used
// by the next render pass.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	dc := s.Context()
//	dc.SetRGB(1, 0, 0)
//	dc.DrawCircle(400, 300, 100)
//	_ = dc.Fill()
type Surface interface {
	Element

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// SetWidth resizes the surface horizontally.
	// Returns an error if width is not positive.
	SetWidth(width int) error

	// SetHeight resizes the surface vertically.
	// Returns an error if height is not positive.
	SetHeight(height int) error

	// Context returns the 2D drawing context, or nil if the surface
	// cannot provide one (for example after Close).
	Context() *gg.Context
}

// Block is a plain, non-drawable element such as a DIV or SPAN.
// Documents use it for everything that is not a canvas.
type Block struct {
	tag string
}

// NewBlock returns an element with the given tag.
func NewBlock(tag string) *Block {
	return &Block{tag: normalizeKind(tag)}
}

// Kind returns the element tag.
func (b *Block) Kind() string {
	return b.tag
}

// IsNil reports whether el is nil or an interface holding a nil pointer,
// map, slice, func or channel.
func IsNil(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
