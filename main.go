package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

type cliOptions struct {
	scene   string
	width   int
	height  int
	depth   int
	workers int
	format  string
	out     string
}

func main() {
	// Parse command line flags
	var opts cliOptions
	flag.StringVar(&opts.scene, "scene", "default", "Built-in scene id, 'file:<name>' or path to a .json scene")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", -1, "Maximum reflection/refraction depth (-1 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&opts.format, "format", "png", "Output format: 'png' or 'ppm'")
	flag.StringVar(&opts.out, "out", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s - %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListFileScenes(); err == nil {
		for _, info := range files {
			fmt.Printf("  %-14s - %s\n", info.ID, info.DisplayName)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func run(opts cliOptions) error {
	format := strings.ToLower(opts.format)
	if format != "png" && format != "ppm" {
		return fmt.Errorf("unknown format %q (want png or ppm)", opts.format)
	}

	fmt.Println("Starting Whitted Raytracer...")

	sc, err := createScene(opts.scene)
	if err != nil {
		return err
	}
	if err := applyOverrides(sc, opts); err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()
	r, err := sc.NewRenderer(logger)
	if err != nil {
		return err
	}

	// Ctrl-C stops the render between bands
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Printf("Rendering %s at %dx%d, max depth %d...\n",
		sc.Name, sc.CameraConfig.Width, sc.CameraConfig.Height, sc.RenderConfig.MaxDepth)

	lastPercent := -1
	canvas, stats, err := r.Render(ctx, func(p renderer.RowProgress) {
		percent := p.RowsCompleted * 100 / p.TotalRows
		if percent/10 != lastPercent/10 {
			lastPercent = percent
			logger.Printf("  %3d%% (%d/%d rows)\n", percent, p.RowsCompleted, p.TotalRows)
		}
	})
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d workers, %.0f pixels/sec)\n",
		stats.Elapsed, stats.Workers, stats.PixelsPerSecond())

	filename := opts.out
	if filename == "" {
		outputDir := createOutputDir(opts.scene)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	if err := saveCanvas(canvas, filename, format); err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene resolves a built-in id, a file scene id or a .json path
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("scene name is empty")
	}
	return scene.ResolveScene(name)
}

// applyOverrides replaces scene defaults with any flags the user set
func applyOverrides(sc *scene.Scene, opts cliOptions) error {
	if opts.width < 0 || opts.height < 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.width > 0 {
		sc.CameraConfig.Width = opts.width
	}
	if opts.height > 0 {
		sc.CameraConfig.Height = opts.height
	}
	if opts.depth >= 0 {
		sc.RenderConfig.MaxDepth = opts.depth
	}
	if opts.workers > 0 {
		sc.RenderConfig.NumWorkers = opts.workers
	}
	return nil
}

// createOutputDir returns output/<scene> using the file's base name for paths and file ids
func createOutputDir(sceneName string) string {
	base := strings.TrimPrefix(sceneName, "file:")
	base = strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base)
}

func saveCanvas(canvas *renderer.Canvas, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = canvas.WritePPM(file)
	default:
		err = png.Encode(file, canvas.ToImage())
	}
	if err != nil {
		return fmt.Errorf("saving %s: %w", strings.ToUpper(format), err)
	}
	return nil
}
