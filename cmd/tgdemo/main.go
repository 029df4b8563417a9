// Command tgdemo renders a scene file with tinygfx.
//
// The frame is written to an image file, shown in the terminal, or both:
//
//	tgdemo -scene scene.yaml -out frame.png -scale 4
//	tgdemo -preview
//
// Without -scene a built-in demo scene is drawn. Settings are read from
// the optional -config YAML file and TINYGFX_* environment variables;
// flags given on the command line win.
package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/tinygfx"
	"github.com/gogpu/tinygfx/framebuffer"
	"github.com/gogpu/tinygfx/internal/config"
	"github.com/gogpu/tinygfx/internal/export"
	applog "github.com/gogpu/tinygfx/internal/log"
	"github.com/gogpu/tinygfx/internal/preview"
	"github.com/gogpu/tinygfx/internal/scene"
	"github.com/gogpu/tinygfx/pixelcolor"
)

//go:embed demo.yaml
var demoScene []byte

type options struct {
	configPath string
	scenePath  string
	out        string
	width      uint
	height     uint
	scale      int
	preview    bool
	logLevel   string
	logFormat  string
	logFile    string
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "tgdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tgdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.scenePath, "scene", "", "YAML scene file (built-in demo if empty)")
	fs.StringVar(&o.out, "out", "", "output file (.png, .bmp, .tif, .pdf)")
	fs.UintVar(&o.width, "width", 0, "frame width in pixels")
	fs.UintVar(&o.height, "height", 0, "frame height in pixels")
	fs.IntVar(&o.scale, "scale", 0, "integer upscaling factor for the output file")
	fs.BoolVar(&o.preview, "preview", false, "print the frame to the terminal")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&o.logFormat, "log-format", "", "log format: text or json")
	fs.StringVar(&o.logFile, "log-file", "", "also log to a rotated file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	applyFlags(fs, &o, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	closer := applog.Init(stderr, applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	defer closer.Close()
	l := slog.With(slog.String("component", "tgdemo"))
	l.Debug("start", slog.String("version", tinygfx.Version))

	if o.out == "" && !cfg.Preview {
		return errors.New("nothing to do: set -out and/or -preview")
	}

	sc, err := loadScene(o.scenePath)
	if err != nil {
		return err
	}

	bg, err := scene.ParseColor(cfg.Render.Background)
	if err != nil {
		return err
	}
	fb := framebuffer.New(cfg.Render.Width, cfg.Render.Height, framebuffer.WithBackground(bg))
	if err := scene.Render[pixelcolor.Rgb888](sc, fb); err != nil {
		return err
	}
	l.Info("rendered", slog.Int("shapes", len(sc.Shapes)),
		slog.Int("width", fb.Width()), slog.Int("height", fb.Height()))

	if o.out != "" {
		if err := export.WriteFile(o.out, fb.Image(), cfg.Render.Scale); err != nil {
			return err
		}
		l.Info("saved", slog.String("path", o.out), slog.Int("scale", cfg.Render.Scale))
	}
	if cfg.Preview {
		fmt.Fprintln(stdout, preview.Render(fb.Image()))
	}
	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(fs *flag.FlagSet, o *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Render.Width = uint32(o.width)
		case "height":
			cfg.Render.Height = uint32(o.height)
		case "scale":
			cfg.Render.Scale = o.scale
		case "preview":
			cfg.Preview = o.preview
		case "log-level":
			cfg.Logging.Level = o.logLevel
		case "log-format":
			cfg.Logging.Format = o.logFormat
		case "log-file":
			cfg.Logging.File = o.logFile
		}
	})
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Parse(demoScene)
	}
	return scene.Load(path)
}
