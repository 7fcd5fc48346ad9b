// Command polygons renders a polygon scene to a lossless image file.
//
// Without -scene it draws the stock 800x600 scene:
//
//	polygons -output out.png
//	polygons -scene shapes.toml -output shapes.bmp -workers 4 -v
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/fb"
	"github.com/gogpu/fb/scene"
)

func main() {
	var (
		output  = flag.String("output", "out.png", "output file (.png, .bmp, .tif, .tiff)")
		file    = flag.String("scene", "", "TOML scene file (default: built-in scene)")
		workers = flag.Int("workers", 0, "goroutines per polygon fill (0 or 1 = sequential)")
		dump    = flag.Bool("dump", false, "print the scene as TOML and exit")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fb.SetLogger(logger)

	if err := run(*file, *output, *workers, *dump); err != nil {
		logger.Error("polygons failed", "err", err)
		os.Exit(1)
	}
}

func run(file, output string, workers int, dump bool) error {
	s := scene.Default()
	if file != "" {
		var err error
		if s, err = scene.Load(file); err != nil {
			return err
		}
	}
	return render(s, output, workers, dump)
}

func render(s *scene.Scene, output string, workers int, dump bool) error {
	if dump {
		return s.Encode(os.Stdout)
	}

	f, err := s.NewFramebuffer(fb.WithWorkers(workers))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	// Skipped polygons are reported after the rest of the image is written.
	renderErr := s.Render(f)
	if err := f.Export(output); err != nil {
		return errors.Join(renderErr, err)
	}

	fb.Logger().Info("image written",
		"path", output, "size", fmt.Sprintf("%dx%d", f.Width(), f.Height()))
	return renderErr
}
