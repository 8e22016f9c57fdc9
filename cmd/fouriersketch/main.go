package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fouriersketch/pkg/config"
	"fouriersketch/pkg/edge"
	"fouriersketch/pkg/epicycle"
	"fouriersketch/pkg/render"
	"fouriersketch/pkg/sketch"
)

const version = "1.0.0"

func main() {
	// Parse command line arguments
	inputPath := flag.String("input", "", "Input image file (PNG or JPEG)")
	outputDir := flag.String("output", "", "Output directory for rendered artifacts")
	configPath := flag.String("config", "", "YAML config file to load")
	saveConfig := flag.String("saveconfig", "", "Write a default config file to the given path and exit")
	terms := flag.Int("terms", 0, "Number of epicycles to keep (0 = all)")
	minRadius := flag.Float64("min-radius", 0, "Drop epicycles smaller than this radius")
	convention := flag.String("convention", "", "Frequency numbering: symmetric or zero-based")
	frames := flag.Int("frames", 0, "Animation frame count")
	writeSVG := flag.Bool("svg", true, "Write an SVG still of the sketch")
	writePNG := flag.Bool("png", false, "Write PNG plots (contour overlay and spectrum)")
	writeGIF := flag.Bool("gif", true, "Write the animated GIF")
	writeHTML := flag.Bool("html", false, "Write an interactive HTML chart")
	preview := flag.Bool("preview", false, "Play the animation in the terminal")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("fouriersketch %s\n", version)
		return
	}

	if *saveConfig != "" {
		if err := config.CreateDefaultConfigFile(*saveConfig); err != nil {
			log.Fatalf("Failed to write config file: %v", err)
		}
		fmt.Printf("Default config written to: %s\n", *saveConfig)
		return
	}

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration, then let explicitly set flags override it
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output.Directory = *outputDir
		case "terms":
			cfg.Epicycles.Terms = *terms
		case "min-radius":
			cfg.Epicycles.MinRadius = *minRadius
		case "convention":
			cfg.Epicycles.FrequencyConvention = *convention
		case "frames":
			cfg.Animation.Frames = *frames
		}
	})

	conv, err := epicycle.ParseConvention(cfg.Epicycles.FrequencyConvention)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fmt.Println("================================")
	fmt.Println("FOURIER SKETCH: EPICYCLE DRAWING FROM IMAGE CONTOURS")
	fmt.Println("================================")

	// Initialize pipeline parameters
	params := &sketch.Params{
		InputPath: *inputPath,
		Edge: edge.Options{
			LowThreshold:  cfg.Edge.LowThreshold,
			HighThreshold: cfg.Edge.HighThreshold,
			DilateRadius:  cfg.Edge.DilateRadius,
			Thin:          cfg.Edge.Thin,
		},
		Terms:      cfg.Epicycles.Terms,
		MinRadius:  cfg.Epicycles.MinRadius,
		Convention: conv,
	}

	sketcher := sketch.NewSketcher(params)
	if !cfg.Output.Verbose {
		sketcher.SetProgressCallback(func(completed, total int, message string) {})
	}

	fmt.Println("Starting sketch pipeline...")
	startTime := time.Now()
	result, err := sketcher.Process()
	if err != nil {
		log.Fatalf("Sketch failed: %v", err)
	}
	processingTime := time.Since(startTime)

	metrics := result.Metrics
	fmt.Printf("\nSketch completed successfully in %.2f seconds!\n\n", processingTime.Seconds())
	fmt.Printf("Reconstruction Metrics:\n")
	fmt.Printf("=======================\n")
	fmt.Printf("Contour points (N): %d\n", metrics.PointCount)
	fmt.Printf("Epicycles kept (K): %d\n", metrics.TermCount)
	fmt.Printf("Compression ratio: %.4f\n", metrics.CompressionRatio)
	fmt.Printf("Root Mean Square Error (RMSE): %.6f px\n", metrics.RMSE)
	fmt.Printf("Max point error: %.6f px\n", metrics.MaxPointError)

	if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	base := strings.TrimSuffix(filepath.Base(*inputPath), filepath.Ext(*inputPath))
	samples := cfg.Animation.Frames

	if *writeSVG {
		svgPath := filepath.Join(cfg.Output.Directory, base+".svg")
		f, err := os.Create(svgPath)
		if err != nil {
			log.Fatalf("Failed to create SVG file: %v", err)
		}
		if err := render.WriteSVG(f, result.Path, result.Series, samples); err != nil {
			f.Close()
			log.Fatalf("Failed to write SVG: %v", err)
		}
		f.Close()
		fmt.Printf("SVG saved to: %s\n", svgPath)
	}

	if *writePNG {
		plotPath := filepath.Join(cfg.Output.Directory, base+"_contour.png")
		if err := render.SaveContourPlot(result.Path, result.Series, samples, plotPath); err != nil {
			log.Fatalf("Failed to write contour plot: %v", err)
		}
		fmt.Printf("Contour plot saved to: %s\n", plotPath)

		spectrumPath := filepath.Join(cfg.Output.Directory, base+"_spectrum.png")
		if err := render.SaveSpectrumPlot(result.Series, spectrumPath); err != nil {
			log.Fatalf("Failed to write spectrum plot: %v", err)
		}
		fmt.Printf("Spectrum plot saved to: %s\n", spectrumPath)
	}

	if *writeHTML {
		htmlPath := filepath.Join(cfg.Output.Directory, base+".html")
		f, err := os.Create(htmlPath)
		if err != nil {
			log.Fatalf("Failed to create HTML file: %v", err)
		}
		if err := render.WriteShapeChart(f, result.Path, result.Series, samples); err != nil {
			f.Close()
			log.Fatalf("Failed to write HTML chart: %v", err)
		}
		f.Close()
		fmt.Printf("HTML chart saved to: %s\n", htmlPath)
	}

	if *writeGIF {
		gifPath := filepath.Join(cfg.Output.Directory, base+".gif")
		animator := render.NewAnimator(render.AnimationOptions{
			Frames:      cfg.Animation.Frames,
			Width:       cfg.Animation.Width,
			Height:      cfg.Animation.Height,
			TrailPoints: cfg.Animation.TrailPoints,
			DelayCS:     cfg.Animation.DelayCS,
			Workers:     cfg.Animation.Workers,
		})
		if !cfg.Output.Verbose {
			animator.SetProgressCallback(func(completed, total int, message string) {})
		}
		if err := animator.SaveGIF(result.Series, gifPath); err != nil {
			log.Fatalf("Animation failed: %v", err)
		}
		fmt.Printf("Animation saved to: %s\n", gifPath)
	}

	if *preview {
		p, err := render.NewPreview(result.Series, cfg.Animation.Frames)
		if err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		p.Run()
	}
}
