// Package sprites splits weapon level-up sprite sheets into one WebP per level.
//
// A sheet is a 1024x1024 PNG holding five sprites side by side. Its file name
// ends in the last level it covers ("weapon-levelup01_05.png" holds levels
// 1 to 5), and each sprite is written as "weapon-levelupNN.webp".
package sprites

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/codec"
	"github.com/ironsheep/asset-tools/internal/imaging"
)

const (
	// SheetSize is the expected width and height of a sprite sheet.
	SheetSize = 1024

	// SpritesPerSheet is the number of sprites laid out left to right.
	SpritesPerSheet = 5

	// OutputPattern names the file written for one level.
	OutputPattern = "weapon-levelup%02d.webp"
)

// Directories relative to the asset root.
var (
	SourceSubdir = filepath.Join("assets", "games", "weapon-levelup", "images", "png")
	OutputSubdir = filepath.Join("assets", "games", "weapon-levelup", "images", "webp")
)

// ErrSourceMissing is returned when the sprite sheet directory does not exist.
var ErrSourceMissing = errors.New("png directory not found")

// Config is the input of one splitter run.
type Config struct {
	// Root is the directory holding assets/. Empty means the working directory.
	Root string

	Options codec.WebPOptions
}

// SourceDir returns the sprite sheet directory under root.
func SourceDir(root string) string {
	return filepath.Join(root, SourceSubdir)
}

// OutputDir returns the WebP output directory under root.
func OutputDir(root string) string {
	return filepath.Join(root, OutputSubdir)
}

// ParseLevelRange derives the levels held by a sheet from its file name.
//
// The part after the last "_" of the base name is the end level and the start
// is four below it. Names without an "_" or with a non-numeric suffix fall
// back to levels 1 to 5.
func ParseLevelRange(name string) (start, end int) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	i := strings.LastIndex(stem, "_")
	if i < 0 {
		return 1, SpritesPerSheet
	}

	n, err := strconv.Atoi(strings.TrimSpace(stem[i+1:]))
	if err != nil {
		return 1, SpritesPerSheet
	}
	return n - (SpritesPerSheet - 1), n
}

// Sprite describes one file written by SplitSheet.
type Sprite struct {
	Level int
	Left  int
	Right int
	Path  string
	Size  int64
}

// SplitSheet cuts the sheet at path into SpritesPerSheet strips and writes
// each to outDir as WebP. Progress goes to out.
//
// A sheet that is not SheetSize square is split anyway after a warning.
func SplitSheet(path, outDir string, opts codec.WebPOptions, out io.Writer) ([]Sprite, error) {
	img, info, err := imaging.LoadImageInfo(path)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	width, height := info.Width, info.Height

	styles := batch.DefaultStyles()
	if width != SheetSize || height != SheetSize {
		fmt.Fprintln(out, styles.Warn.Render(
			fmt.Sprintf("Warning: %s is not %dx%d (actual: %dx%d)", name, SheetSize, SheetSize, width, height)))
	}

	strips, err := imaging.SplitStrips(imaging.EnsureAlpha(img), SpritesPerSheet)
	if err != nil {
		return nil, err
	}

	start, end := ParseLevelRange(name)

	fmt.Fprintf(out, "\nProcessing %s:\n", name)
	fmt.Fprintf(out, "  Image size: %dx%d\n", width, height)
	fmt.Fprintf(out, "  File size: %d bytes\n", info.FileSizeBytes)
	fmt.Fprintf(out, "  Sprite size: %.1fpx x %dpx\n", float64(width)/SpritesPerSheet, height)
	fmt.Fprintf(out, "  Level range: %d to %d\n", start, end)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	sprites := make([]Sprite, 0, len(strips))
	for _, strip := range strips {
		level := start + strip.Index
		filename := fmt.Sprintf(OutputPattern, level)
		dst := filepath.Join(outDir, filename)

		size, err := codec.SaveWebP(dst, strip.Image, opts)
		if err != nil {
			return sprites, fmt.Errorf("sprite %d (level %d): %w", strip.Index+1, level, err)
		}

		fmt.Fprintf(out, "  Sprite %d (Level %d): %dpx-%dpx -> %s (%d bytes)\n",
			strip.Index+1, level, strip.Left, strip.Right, filename, size)
		sprites = append(sprites, Sprite{
			Level: level,
			Left:  strip.Left,
			Right: strip.Right,
			Path:  dst,
			Size:  size,
		})
	}

	return sprites, nil
}

// Run splits every sheet in the source directory under cfg.Root.
//
// Returns ErrSourceMissing when the source directory does not exist and an
// error wrapping codec.ErrWebPUnavailable without a WebP encoder. A source
// directory without PNG files is not an error.
func Run(cfg Config, out io.Writer) (batch.Summary, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return batch.Summary{}, fmt.Errorf("failed to resolve root: %w", err)
	}

	srcDir := SourceDir(root)
	outDir := OutputDir(root)

	if stat, err := os.Stat(srcDir); err != nil || !stat.IsDir() {
		return batch.Summary{}, fmt.Errorf("%w: %s", ErrSourceMissing, srcDir)
	}
	if err := codec.Available(); err != nil {
		return batch.Summary{}, err
	}

	files, err := batch.FindPNGs(srcDir)
	if err != nil {
		return batch.Summary{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "No PNG files found in %s\n", srcDir)
		return batch.Summary{}, nil
	}

	fmt.Fprintf(out, "Found %d PNG file(s)\n", len(files))
	fmt.Fprintf(out, "Output directory: %s\n", outDir)

	styles := batch.DefaultStyles()
	runner := &batch.Runner{
		Out:   out,
		Trace: true,
		After: func(path string, err error) {
			if err != nil {
				fmt.Fprintln(out, styles.Fail.Render(fmt.Sprintf("Error processing %s: %v", path, err)))
			}
		},
	}

	summary := runner.Run(files, func(path string) error {
		_, err := SplitSheet(path, outDir, cfg.Options, out)
		return err
	})

	// PrintSummary terminates the rule line.
	fmt.Fprintf(out, "\n%s", strings.Repeat("=", 60))
	styles.PrintSummary(out, summary, batch.SummaryLabels{
		Title:   "Conversion complete!",
		Success: "Success: %d file(s)",
		Errors:  "Errors: %d file(s)",
	})
	fmt.Fprintf(out, "Total WebP files created: %d\n", summary.Success*SpritesPerSheet)
	return summary, nil
}
