// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package paint

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	goRegularOnce sync.Once
	goRegular     *text.FontSource
	goRegularErr  error
)

// DefaultFontSource returns the Go Regular font, parsed on first use.
func DefaultFontSource() (*text.FontSource, error) {
	goRegularOnce.Do(func() {
		goRegular, goRegularErr = text.NewFontSource(goregular.TTF)
	})
	return goRegular, goRegularErr
}

// DefaultFace returns a Go Regular face of the given size in points,
// or nil if the font cannot be parsed.
func DefaultFace(size float64) text.Face {
	src, err := DefaultFontSource()
	if err != nil {
		return nil
	}
	return src.Face(size)
}
