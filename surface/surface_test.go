// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSurfaceInterface verifies the Surface interface contract.
func TestSurfaceInterface(t *testing.T) {
	var _ Surface = (*ImageSurface)(nil)
	var _ Surface = (*GPUSurface)(nil)
	var _ Element = (*Block)(nil)
}

func TestBlockKind(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"div", "DIV"},
		{" Span ", "SPAN"},
		{"CANVAS", KindCanvas},
	}
	for _, tt := range tests {
		if got := NewBlock(tt.tag).Kind(); got != tt.want {
			t.Errorf("NewBlock(%q).Kind() = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestBlockIsNotSurface(t *testing.T) {
	var el Element = NewBlock("canvas")
	if _, ok := el.(Surface); ok {
		t.Error("Block must not implement Surface even with a canvas tag")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	doc := NewDocument()
	doc.Add("logged", NewBlock("div"))
	if !strings.Contains(buf.String(), "element added") {
		t.Errorf("expected debug record, got: %s", buf.String())
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil)")
	}
	buf.Reset()
	doc.Add("silent", NewBlock("div"))
	if buf.Len() != 0 {
		t.Errorf("expected no output after SetLogger(nil), got: %s", buf.String())
	}
}

func TestIsNil(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want bool
	}{
		{"nil interface", nil, true},
		{"typed nil image surface", (*ImageSurface)(nil), true},
		{"typed nil gpu surface", (*GPUSurface)(nil), true},
		{"typed nil block", (*Block)(nil), true},
		{"block", NewBlock("div"), false},
		{"image surface", NewImageSurface(1, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.el); got != tt.want {
				t.Errorf("IsNil() = %v, want %v", got, tt.want)
			}
		})
	}
}
