package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/spritetools/spritepipe/internal/config"
	"github.com/spritetools/spritepipe/internal/gen"
	"github.com/spritetools/spritepipe/internal/sprite"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if os.Getenv("SPRITEPIPE_LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "chroma_key":
		err = runChromaKey(args)
	case "trim":
		err = runTrim(args)
	case "resize":
		err = runResize(args)
	case "slice":
		err = runSlice(args)
	case "mirror":
		err = runMirror(args)
	case "full_pipeline":
		err = runFullPipeline(args)
	case "mirror_directions":
		err = runMirrorDirections(args)
	case "palette":
		err = runPalette(args)
	case "info":
		err = runInfo(args)
	case "generate":
		err = runGenerate(args)
	case "--version", "-v", "version":
		fmt.Printf("spritepipe %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func printUsage() {
	fmt.Println("spritepipe - game asset pipeline for generated pixel-art sprites")
	fmt.Println()
	fmt.Println("Usage: spritepipe <command> [options] <args>")
	fmt.Println()
	fmt.Println("Post-processing commands:")
	fmt.Println("  chroma_key [-tolerance N] [-auto] <input> <output>")
	fmt.Println("        Remove the magenta background, producing alpha transparency")
	fmt.Println("  trim [-padding N] <input> <output>")
	fmt.Println("        Crop to the content bounding box plus padding")
	fmt.Println("  resize -width W -height H <input> <output>")
	fmt.Println("        Nearest-neighbor resample to exact dimensions")
	fmt.Println("  slice -frames N <sheet> <outdir> <base>")
	fmt.Println("        Slice a horizontal strip into N equal-width frames")
	fmt.Println("  mirror <input> <output>")
	fmt.Println("        Flip horizontally")
	fmt.Println("  full_pipeline -width W -height H [-tolerance N] [-padding N] <input> <output>")
	fmt.Println("        Chroma key, trim, and resize in one pass")
	fmt.Println("  mirror_directions <dir> <character> <action>")
	fmt.Println("        Derive ne/e/se sprites by mirroring nw/w/sw")
	fmt.Println()
	fmt.Println("Analysis commands:")
	fmt.Println("  palette [-colors K] [-method dominant|kmeans] [-o strip.png] <input>")
	fmt.Println("        Extract the sprite's color palette")
	fmt.Println("  info <input>")
	fmt.Println("        Print image dimensions, format, and alpha info")
	fmt.Println()
	fmt.Println("Generation:")
	fmt.Println("  generate [-character DESC | -prompt-file F] [-pose POSE] [-o out.png]")
	fmt.Println("        Call the Gemini API and save the generated sprite")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  GEMINI_API_KEY                API key (or set it in ./.env)")
	fmt.Println("  SPRITEPIPE_LOG_LEVEL=debug    Enable debug logging")
}

func runChromaKey(args []string) error {
	fs := flag.NewFlagSet("chroma_key", flag.ExitOnError)
	tolerance := fs.Int("tolerance", sprite.DefaultTolerance, "per-channel key tolerance (1-255)")
	auto := fs.Bool("auto", false, "detect the background color instead of assuming magenta")
	in, out, err := parseInOut(fs, args)
	if err != nil {
		return err
	}

	img, err := sprite.Load(in)
	if err != nil {
		return err
	}

	key := sprite.Magenta
	if *auto {
		key = sprite.DetectKeyColor(img)
		log.Infof("Detected key color: #%02X%02X%02X", key.R, key.G, key.B)
	}

	result, err := sprite.ChromaKey(img, key, *tolerance)
	if err != nil {
		return err
	}
	if err := sprite.Save(result.Image, out); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"transparent": result.TransparentPixels,
		"edge":        result.EdgePixels,
	}).Infof("Chroma key done: %s", out)
	return nil
}

func runTrim(args []string) error {
	fs := flag.NewFlagSet("trim", flag.ExitOnError)
	padding := fs.Int("padding", sprite.DefaultPadding, "padding around the content box in pixels")
	in, out, err := parseInOut(fs, args)
	if err != nil {
		return err
	}

	img, err := sprite.Load(in)
	if err != nil {
		return err
	}
	result, err := sprite.Trim(img, *padding)
	if err != nil {
		return err
	}
	if err := sprite.Save(result.Image, out); err != nil {
		return err
	}

	log.Infof("Trimmed to %dx%d: %s", result.Width, result.Height, out)
	return nil
}

func runResize(args []string) error {
	fs := flag.NewFlagSet("resize", flag.ExitOnError)
	width := fs.Int("width", 0, "target width in pixels")
	height := fs.Int("height", 0, "target height in pixels")
	in, out, err := parseInOut(fs, args)
	if err != nil {
		return err
	}

	img, err := sprite.Load(in)
	if err != nil {
		return err
	}
	result, err := sprite.ResizeNearest(img, *width, *height)
	if err != nil {
		return err
	}
	if err := sprite.Save(result.Image, out); err != nil {
		return err
	}

	log.Infof("Resized to %dx%d: %s", result.Width, result.Height, out)
	return nil
}

func runSlice(args []string) error {
	fs := flag.NewFlagSet("slice", flag.ExitOnError)
	frames := fs.Int("frames", 0, "number of frames in the strip")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("expected <sheet> <outdir> <base>, got %d args", fs.NArg())
	}

	sheet, err := sprite.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	result, err := sprite.SliceSheet(sheet, fs.Arg(1), fs.Arg(2), *frames)
	if err != nil {
		return err
	}

	log.Infof("Sliced into %d frames of %dx%d in %s",
		result.FrameCount, result.FrameWidth, result.FrameHeight, fs.Arg(1))
	return nil
}

func runMirror(args []string) error {
	fs := flag.NewFlagSet("mirror", flag.ExitOnError)
	in, out, err := parseInOut(fs, args)
	if err != nil {
		return err
	}

	img, err := sprite.Load(in)
	if err != nil {
		return err
	}
	if err := sprite.Save(sprite.Mirror(img), out); err != nil {
		return err
	}

	log.Infof("Mirrored: %s", out)
	return nil
}

func runFullPipeline(args []string) error {
	fs := flag.NewFlagSet("full_pipeline", flag.ExitOnError)
	width := fs.Int("width", 0, "target width in pixels")
	height := fs.Int("height", 0, "target height in pixels")
	tolerance := fs.Int("tolerance", sprite.DefaultTolerance, "chroma key tolerance")
	padding := fs.Int("padding", sprite.DefaultPadding, "trim padding in pixels")
	in, out, err := parseInOut(fs, args)
	if err != nil {
		return err
	}

	img, err := sprite.Load(in)
	if err != nil {
		return err
	}
	result, err := sprite.Pipeline(img, sprite.PipelineOptions{
		TargetWidth:  *width,
		TargetHeight: *height,
		Tolerance:    *tolerance,
		Padding:      *padding,
	})
	if err != nil {
		return err
	}
	if err := sprite.Save(result.Image, out); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"keyed_transparent": result.ChromaKey.TransparentPixels,
		"trimmed":           fmt.Sprintf("%dx%d", result.Trim.Width, result.Trim.Height),
		"final":             fmt.Sprintf("%dx%d", result.Resize.Width, result.Resize.Height),
	}).Infof("Pipeline complete: %s", out)
	return nil
}

func runMirrorDirections(args []string) error {
	fs := flag.NewFlagSet("mirror_directions", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("expected <dir> <character> <action>, got %d args", fs.NArg())
	}

	result, err := sprite.MirrorDirections(fs.Arg(0), fs.Arg(1), fs.Arg(2))
	if err != nil {
		return err
	}
	for _, m := range result.Mirrored {
		log.Infof("  Mirrored: %s -> %s", m.Source, m.Output)
	}
	log.Infof("Mirrored %d direction files", result.Count)
	return nil
}

func runPalette(args []string) error {
	fs := flag.NewFlagSet("palette", flag.ExitOnError)
	colors := fs.Int("colors", 8, "number of palette colors to extract")
	method := fs.String("method", "dominant", "extraction method: dominant or kmeans")
	out := fs.String("o", "", "optional path to write a palette strip PNG")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected <input>, got %d args", fs.NArg())
	}

	m, err := sprite.ParsePaletteMethod(*method)
	if err != nil {
		return err
	}
	img, err := sprite.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	result, err := sprite.ExtractPalette(img, *colors, m)
	if err != nil {
		return err
	}

	for _, c := range result.Colors {
		fmt.Println(c.Hex)
	}
	if *out != "" {
		strip, err := sprite.PaletteStrip(result, 32)
		if err != nil {
			return err
		}
		if err := sprite.Save(strip, *out); err != nil {
			return err
		}
		log.Infof("Palette strip written: %s", *out)
	}
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected <input>, got %d args", fs.NArg())
	}

	info, err := sprite.LoadInfo(fs.Arg(0))
	if err != nil {
		return err
	}
	fmt.Printf("%s: %dx%d %s %s alpha=%v %d bytes\n",
		filepath.Base(fs.Arg(0)), info.Width, info.Height,
		info.Format, info.ColorDepth, info.HasAlpha, info.FileSizeBytes)
	return nil
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	character := fs.String("character", "", "character description for the prompt builder")
	promptFile := fs.String("prompt-file", "", "file containing a complete prompt (overrides -character)")
	pose := fs.String("pose", "", "pose description, e.g. \"West-facing walk\"")
	out := fs.String("o", "sprite.png", "output path for the generated image")
	envFile := fs.String("env", config.DefaultEnvFile, "env file holding GEMINI_API_KEY")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	var prompt string
	switch {
	case *promptFile != "":
		data, err := os.ReadFile(*promptFile)
		if err != nil {
			return fmt.Errorf("failed to read prompt file: %w", err)
		}
		prompt = strings.TrimSpace(string(data))
	case *character != "":
		prompt, err = gen.BuildPrompt(gen.SpriteSpec{Character: *character, Pose: *pose})
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either -character or -prompt-file is required")
	}

	client, err := gen.NewClient(cfg.Endpoint, cfg.Model, cfg.APIKey, cfg.RequestTimeout, log)
	if err != nil {
		return err
	}

	log.Info("This may take 15-30 seconds...")
	result, err := client.Generate(context.Background(), prompt)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(*out, result.Data, 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}

	log.Infof("Saved sprite to: %s (%d bytes)", *out, len(result.Data))
	return nil
}

// parseInOut parses flags then expects exactly <input> <output> positionals.
func parseInOut(fs *flag.FlagSet, args []string) (in, out string, err error) {
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if fs.NArg() != 2 {
		return "", "", fmt.Errorf("expected <input> <output>, got %d args", fs.NArg())
	}
	return fs.Arg(0), fs.Arg(1), nil
}
