// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"fmt"

	"github.com/gogpu/multicanvas/surface"
)

const surfaceKind = surface.KindCanvas

// Resolver finds the element a selector refers to.
// *surface.Document implements Resolver.
type Resolver interface {
	Query(selector string) (surface.Element, bool)
}

// Target identifies the surface a Canvas draws onto.
// It is either a Selector or a Ref.
type Target interface {
	isTarget()
}

// Selector is a Target resolved through the canvas Resolver,
// for example "#stage" or "canvas".
type Selector string

func (Selector) isTarget() {}

// Ref is a Target that refers to an element directly.
type Ref struct {
	Element surface.Element
}

func (Ref) isTarget() {}

// resolveTarget turns t into a canvas surface, checking the element kind.
func resolveTarget(t Target, r Resolver) (surface.Surface, error) {
	var (
		el       surface.Element
		selector string
	)

	switch v := t.(type) {
	case *Selector:
		if v == nil {
			return nil, &InvalidSurfaceError{Target: fmt.Sprintf("%T", t)}
		}
		return resolveTarget(*v, r)
	case *Ref:
		if v == nil {
			return nil, &InvalidSurfaceError{Target: fmt.Sprintf("%T", t)}
		}
		return resolveTarget(*v, r)
	case Selector:
		selector = string(v)
		found, ok := r.Query(selector)
		if !ok || surface.IsNil(found) {
			return nil, &InvalidSurfaceError{Selector: selector}
		}
		el = found
	case Ref:
		el = v.Element
	case nil:
		return nil, &InvalidSurfaceError{}
	default:
		return nil, &InvalidSurfaceError{Target: fmt.Sprintf("%T", t)}
	}

	if surface.IsNil(el) {
		return nil, &InvalidSurfaceError{Selector: selector}
	}
	s, ok := el.(surface.Surface)
	if !ok || el.Kind() != surfaceKind {
		kind := el.Kind()
		if kind == surfaceKind {
			kind += " (not drawable)"
		}
		return nil, &InvalidSurfaceError{Selector: selector, Kind: kind}
	}
	return s, nil
}
