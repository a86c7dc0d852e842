// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/multicanvas/surface"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// Resolve "#stage" against the default document
//	mc, err := multicanvas.New(multicanvas.Selector("#stage"))
//
//	// Private document, opaque background, isolated layer state
//	mc, err := multicanvas.New(multicanvas.Selector("#stage"),
//	    multicanvas.WithResolver(doc),
//	    multicanvas.WithClearColor(gg.White),
//	    multicanvas.WithStateIsolation(),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	resolver   Resolver
	clearColor gg.RGBA
	isolate    bool
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		resolver:   surface.DefaultDocument(),
		clearColor: gg.Transparent,
	}
}

// WithResolver sets the resolver used for Selector targets.
// A nil resolver keeps the default document.
func WithResolver(r Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithClearColor sets the color the surface is cleared to at the start of
// every render pass. The default is fully transparent.
func WithClearColor(c gg.RGBA) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithStateIsolation wraps every layer procedure in dc.Push and dc.Pop, so
// transform and clip changes made by one layer are not seen by the next.
// Paint state such as color and line width is not saved by gg and still
// carries over.
func WithStateIsolation() Option {
	return func(o *options) {
		o.isolate = true
	}
}
