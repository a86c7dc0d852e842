// Command layerdemo renders a layered scene to a sequence of PNG frames.
//
// Usage:
//
//	layerdemo [-scene scene.toml] [-frames 24] [-output frame-%03d.png] [-v]
//
// Without -scene the embedded default scene is rendered.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/multicanvas"
	"github.com/gogpu/multicanvas/internal/scene"
	"github.com/gogpu/multicanvas/surface"
)

const stageID = "stage"

func main() {
	var (
		scenePath = flag.String("scene", "", "scene file (TOML); default scene if empty")
		frames    = flag.Int("frames", 12, "number of frames to render")
		output    = flag.String("output", "frame-%03d.png", "output file pattern; without a fmt verb the frame number is added before the extension")
		isolate   = flag.Bool("isolate", false, "isolate transform state between layers")
		verbose   = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		multicanvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*scenePath, *frames, *output, *isolate); err != nil {
		log.Fatalf("layerdemo: %v", err)
	}
}

func run(scenePath string, frames int, output string, isolate bool) error {
	sc := scene.Default()
	if scenePath != "" {
		loaded, err := scene.Load(scenePath)
		if err != nil {
			return err
		}
		sc = loaded
	}

	stage := surface.NewImageSurface(sc.Width, sc.Height)
	defer func() { _ = stage.Close() }()
	surface.Add(stageID, stage)
	defer surface.Remove(stageID)

	opts := []multicanvas.Option{multicanvas.WithClearColor(sc.ClearColor())}
	if isolate {
		opts = append(opts, multicanvas.WithStateIsolation())
	}
	mc, err := multicanvas.New(multicanvas.Selector("#"+stageID), opts...)
	if err != nil {
		return err
	}

	clock := &scene.Clock{}
	if err := mc.Push(sc.Build(clock)...); err != nil {
		return err
	}

	for i := 0; i < frames; i++ {
		if err := mc.Render(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		path := framePath(output, i, frames)
		if err := stage.SavePNG(path); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		clock.Tick()
	}

	log.Printf("Rendered %d frames of %d layers (%dx%d)\n", frames, mc.Len(), mc.Width(), mc.Height())
	return nil
}

// framePath returns the file name for frame i. A pattern without a fmt
// verb is used as is for a single frame; otherwise the zero-padded frame
// number is inserted before the extension.
func framePath(pattern string, i, frames int) string {
	if strings.Contains(strings.ReplaceAll(pattern, "%%", ""), "%") {
		return fmt.Sprintf(pattern, i)
	}
	if frames == 1 {
		return strings.ReplaceAll(pattern, "%%", "%")
	}
	ext := filepath.Ext(pattern)
	base := strings.TrimSuffix(pattern, ext)
	return strings.ReplaceAll(base, "%%", "%") + fmt.Sprintf("-%03d", i) + ext
}
