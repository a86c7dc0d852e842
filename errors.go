// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"errors"
	"fmt"
)

// Errors returned by Canvas operations.
var (
	// ErrInvalidSurfaceReference is returned by New when the target does not
	// resolve to a canvas element.
	ErrInvalidSurfaceReference = errors.New("multicanvas: invalid surface reference")

	// ErrLayerAlreadyExists is returned when an insert or rename would
	// duplicate a layer id.
	ErrLayerAlreadyExists = errors.New("multicanvas: layer already exists")

	// ErrLayerNotFound is returned when an update or removal names an
	// unknown layer id.
	ErrLayerNotFound = errors.New("multicanvas: layer not found")

	// ErrMissingDrawingContext is returned by Render when the surface
	// provides no drawing context.
	ErrMissingDrawingContext = errors.New("multicanvas: missing drawing context")

	// ErrNilLayer is returned when a nil *Layer is pushed or used as a
	// replacement.
	ErrNilLayer = errors.New("multicanvas: nil layer")
)

// InvalidSurfaceError describes why a target could not be used as a surface.
type InvalidSurfaceError struct {
	// Selector is the selector that was resolved, empty for direct references.
	Selector string

	// Kind is the kind of the element found, empty if nothing was found.
	Kind string

	// Target is the Go type of a target that is neither a Selector nor a
	// Ref, empty otherwise.
	Target string
}

func (e *InvalidSurfaceError) Error() string {
	if e.Kind == "" {
		if e.Selector != "" {
			return fmt.Sprintf("multicanvas: no element matches selector %q", e.Selector)
		}
		got := e.Target
		if got == "" {
			got = "<nil>"
		}
		return "multicanvas: expected a selector or a canvas element, got " + got
	}
	return "multicanvas: expected a " + surfaceKind + " element, got " + e.Kind
}

// Is reports whether target is ErrInvalidSurfaceReference.
func (e *InvalidSurfaceError) Is(target error) bool {
	return target == ErrInvalidSurfaceReference
}

// LayerExistsError reports the id that collided with an existing layer.
type LayerExistsError struct {
	ID string
}

func (e *LayerExistsError) Error() string {
	return fmt.Sprintf("multicanvas: layer with id %q already exists", e.ID)
}

// Is reports whether target is ErrLayerAlreadyExists.
func (e *LayerExistsError) Is(target error) bool {
	return target == ErrLayerAlreadyExists
}

// LayerNotFoundError reports the id that matched no layer.
type LayerNotFoundError struct {
	ID string
}

func (e *LayerNotFoundError) Error() string {
	return fmt.Sprintf("multicanvas: layer with id %q does not exist", e.ID)
}

// Is reports whether target is ErrLayerNotFound.
func (e *LayerNotFoundError) Is(target error) bool {
	return target == ErrLayerNotFound
}
