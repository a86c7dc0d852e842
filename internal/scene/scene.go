// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene loads declarative layer scenes for the demo command.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/multicanvas"
	"github.com/gogpu/multicanvas/paint"
	"github.com/gogpu/multicanvas/surface"
)

//go:embed default.toml
var defaultScene string

// Layer kinds understood by Build.
const (
	KindFill   = "fill"
	KindRect   = "rect"
	KindCircle = "circle"
	KindStar   = "star"
	KindGrid   = "grid"
	KindText   = "text"
)

const (
	defaultWidth    = 640
	defaultHeight   = 360
	defaultTextSize = 16
)

// ErrInvalidScene is wrapped by every validation error returned by Parse.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene is a surface size plus an ordered list of layer specs.
type Scene struct {
	Width      int         `toml:"width"`
	Height     int         `toml:"height"`
	Background string      `toml:"background"`
	Layers     []LayerSpec `toml:"layer"`
}

// LayerSpec describes one layer. Which fields apply depends on Kind.
// DX and DY move the shape by that many pixels per frame.
type LayerSpec struct {
	ID        string  `toml:"id"`
	Kind      string  `toml:"kind"`
	Color     string  `toml:"color"`
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	W         float64 `toml:"w"`
	H         float64 `toml:"h"`
	R         float64 `toml:"r"`
	Inner     float64 `toml:"inner"`
	Step      float64 `toml:"step"`
	LineWidth float64 `toml:"line_width"`
	Text      string  `toml:"text"`
	Size      float64 `toml:"size"`
	DX        float64 `toml:"dx"`
	DY        float64 `toml:"dy"`
}

// Default returns the embedded demo scene.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default scene: %v", err))
	}
	return s
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a TOML scene and validates it.
// Unknown keys, unknown kinds, bad colors and duplicate ids are errors.
func Parse(data string) (*Scene, error) {
	s := &Scene{}
	md, err := toml.Decode(data, s)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalidScene, strings.Join(keys, ", "))
	}

	if !md.IsDefined("width") {
		s.Width = defaultWidth
	}
	if !md.IsDefined("height") {
		s.Height = defaultHeight
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if s.Background != "" && !validHex(s.Background) {
		return fmt.Errorf("%w: background color %q", ErrInvalidScene, s.Background)
	}

	seen := make(map[string]bool, len(s.Layers))
	for i, l := range s.Layers {
		if l.ID == "" {
			return fmt.Errorf("%w: layer %d has no id", ErrInvalidScene, i)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate layer id %q", ErrInvalidScene, l.ID)
		}
		seen[l.ID] = true

		switch l.Kind {
		case KindFill, KindRect, KindCircle, KindStar, KindGrid, KindText:
		default:
			return fmt.Errorf("%w: layer %q has unknown kind %q", ErrInvalidScene, l.ID, l.Kind)
		}
		if l.Color != "" && !validHex(l.Color) {
			return fmt.Errorf("%w: layer %q has bad color %q", ErrInvalidScene, l.ID, l.Color)
		}
	}
	return nil
}

// ClearColor returns the background color, transparent when unset.
func (s *Scene) ClearColor() gg.RGBA {
	if s.Background == "" {
		return gg.Transparent
	}
	return gg.Hex(s.Background)
}

// Clock counts rendered frames. Animated layers read it on every pass.
type Clock struct {
	Frame int
}

// Tick advances the clock by one frame.
func (c *Clock) Tick() {
	c.Frame++
}

// Build converts the layer specs into layers, in scene order.
// Layers with a velocity read their position from clock.
func (s *Scene) Build(clock *Clock) []*multicanvas.Layer {
	layers := make([]*multicanvas.Layer, 0, len(s.Layers))
	for _, spec := range s.Layers {
		layers = append(layers, multicanvas.NewLayer(spec.ID, spec.drawFunc(clock)))
	}
	return layers
}

func (l LayerSpec) drawFunc(clock *Clock) multicanvas.DrawFunc {
	c := gg.White
	if l.Color != "" {
		c = gg.Hex(l.Color)
	}

	var face text.Face
	if l.Kind == KindText {
		size := l.Size
		if size <= 0 {
			size = defaultTextSize
		}
		face = paint.DefaultFace(size)
	}

	if l.DX == 0 && l.DY == 0 {
		return l.shape(l.X, l.Y, c, face)
	}
	return func(s surface.Surface, dc *gg.Context) {
		f := float64(clock.Frame)
		l.shape(l.X+l.DX*f, l.Y+l.DY*f, c, face)(s, dc)
	}
}

// shape returns the paint procedure for the layer at position (x, y).
func (l LayerSpec) shape(x, y float64, c gg.RGBA, face text.Face) multicanvas.DrawFunc {
	switch l.Kind {
	case KindFill:
		return paint.Fill(c)
	case KindRect:
		return paint.Rect(x, y, l.W, l.H, c)
	case KindCircle:
		return paint.Circle(x, y, l.R, c)
	case KindStar:
		inner := l.Inner
		if inner == 0 {
			inner = l.R / 2
		}
		return paint.Star(x, y, l.R, inner, c)
	case KindGrid:
		width := l.LineWidth
		if width == 0 {
			width = 1
		}
		return paint.Grid(l.Step, width, c)
	case KindText:
		return paint.Text(face, l.Text, x, y, c)
	}
	return nil
}

func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}
