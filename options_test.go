// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package multicanvas

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/multicanvas/surface"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	if o.resolver != surface.DefaultDocument() {
		t.Error("default resolver should be the default document")
	}
	if o.clearColor != gg.Transparent {
		t.Errorf("clearColor = %v, want transparent", o.clearColor)
	}
	if o.isolate {
		t.Error("state isolation should be off by default")
	}
}

func TestOptions(t *testing.T) {
	doc := surface.NewDocument()

	tests := []struct {
		name  string
		opts  []Option
		check func(t *testing.T, o options)
	}{
		{
			name: "WithResolver",
			opts: []Option{WithResolver(doc)},
			check: func(t *testing.T, o options) {
				if o.resolver != doc {
					t.Error("resolver not applied")
				}
			},
		},
		{
			name: "WithResolver nil keeps default",
			opts: []Option{WithResolver(nil)},
			check: func(t *testing.T, o options) {
				if o.resolver != surface.DefaultDocument() {
					t.Error("nil resolver should keep the default document")
				}
			},
		},
		{
			name: "WithClearColor",
			opts: []Option{WithClearColor(gg.White)},
			check: func(t *testing.T, o options) {
				if o.clearColor != gg.White {
					t.Errorf("clearColor = %v, want white", o.clearColor)
				}
			},
		},
		{
			name: "last option wins",
			opts: []Option{WithClearColor(gg.White), WithClearColor(gg.Black)},
			check: func(t *testing.T, o options) {
				if o.clearColor != gg.Black {
					t.Errorf("clearColor = %v, want black", o.clearColor)
				}
			},
		},
		{
			name: "WithStateIsolation",
			opts: []Option{WithStateIsolation()},
			check: func(t *testing.T, o options) {
				if !o.isolate {
					t.Error("isolate not applied")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			tt.check(t, o)
		})
	}
}
