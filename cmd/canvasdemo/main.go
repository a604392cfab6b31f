// Command canvasdemo renders a scene of canvaslib helper shapes to a PNG.
//
// Usage:
//
//	canvasdemo [-scene scene.yaml] [-output out.png] [-labels] [-v]
//
// Without -scene a built-in scene is rendered.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/gogpu/canvaslib"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "YAML scene file (default: built-in scene)")
		output    = flag.String("output", "canvasdemo.png", "output PNG file")
		labels    = flag.Bool("labels", false, "draw shape labels")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	canvaslib.SetLogger(logger)

	sc := defaultScene()
	if *scenePath != "" {
		var err error
		if sc, err = readScene(*scenePath); err != nil {
			slog.Error("load scene", "err", err)
			os.Exit(1)
		}
	}

	out, err := render(sc, *labels)
	if err != nil {
		slog.Error("render", "err", err)
		os.Exit(1)
	}
	if err := out.SavePNG(*output); err != nil {
		slog.Error("save", "err", err)
		os.Exit(1)
	}
	slog.Info("rendered", "output", *output, "width", out.Width(), "height", out.Height(), "shapes", len(sc.Shapes))
}
