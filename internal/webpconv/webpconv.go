// Package webpconv converts a directory of PNG images to lossy WebP.
//
// Outputs go to a "webp" subdirectory of the source directory and keep the
// source file stem: "images/hero.png" becomes "images/webp/hero.webp".
// Existing outputs are overwritten.
package webpconv

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/codec"
	"github.com/ironsheep/asset-tools/internal/imaging"
)

// OutputSubdir is the directory, inside the source directory, that receives the WebP files.
const OutputSubdir = "webp"

// ErrNotDirectory is returned when the source path is missing or not a directory.
var ErrNotDirectory = errors.New("source directory not found")

// Config is the input of one converter run.
type Config struct {
	SourceDir string
	Options   codec.WebPOptions

	// Debug logs per-file details such as added alpha channels.
	Debug bool
}

// Result is the outcome of a converter run.
type Result struct {
	SourceDir string
	OutputDir string
	Files     int
	Summary   batch.Summary
}

// Conversion describes one converted file.
type Conversion struct {
	Source     string
	Output     string
	SourceSize int64
	OutputSize int64

	// AddedAlpha is true when the source was fully opaque and was given an
	// opaque alpha channel.
	AddedAlpha bool
}

// Reduction returns the size saving in percent. Negative when the WebP is
// larger; 0 for an empty source.
func (c *Conversion) Reduction() float64 {
	if c.SourceSize == 0 {
		return 0
	}
	return (1 - float64(c.OutputSize)/float64(c.SourceSize)) * 100
}

// OutputPath returns the WebP path for src inside outDir.
func OutputPath(src, outDir string) string {
	base := filepath.Base(src)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, stem+".webp")
}

// ConvertFile decodes src, adds an opaque alpha channel if it has none, and
// writes it to outDir as WebP.
func ConvertFile(src, outDir string, opts codec.WebPOptions) (*Conversion, error) {
	img, info, err := imaging.LoadImageInfo(src)
	if err != nil {
		return nil, err
	}
	nrgba := imaging.EnsureAlpha(img)

	dst := OutputPath(src, outDir)
	outSize, err := codec.SaveWebP(dst, nrgba, opts)
	if err != nil {
		return nil, err
	}

	return &Conversion{
		Source:     src,
		Output:     dst,
		SourceSize: info.FileSizeBytes,
		OutputSize: outSize,
		AddedAlpha: !info.HasAlpha,
	}, nil
}

// Run converts every PNG in cfg.SourceDir and reports progress to out.
//
// Returns ErrNotDirectory when the source is unusable and a
// codec.ErrWebPUnavailable error when the encoder is missing; both mean no
// file was touched. Per-file failures are only counted.
func Run(cfg Config, out io.Writer) (*Result, error) {
	if err := codec.Available(); err != nil {
		return nil, err
	}

	src, err := filepath.Abs(cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source: %w", err)
	}
	stat, err := os.Stat(src)
	if err != nil || !stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	outDir := filepath.Join(src, OutputSubdir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{SourceDir: src, OutputDir: outDir}
	fmt.Fprintf(out, "Source directory: %s\n", src)
	fmt.Fprintf(out, "Output directory: %s\n", outDir)

	files, err := batch.FindPNGs(src)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No PNG files found in the source directory.")
		return result, nil
	}

	result.Files = len(files)
	fmt.Fprintf(out, "Found %d PNG file(s) to convert.\n\n", len(files))

	styles := batch.DefaultStyles()
	var last *Conversion
	runner := &batch.Runner{
		Out: out,
		After: func(path string, err error) {
			name := filepath.Base(path)
			if err != nil {
				fmt.Fprintln(out, styles.Fail.Render(fmt.Sprintf("✗ Error converting %s: %v", name, err)))
				return
			}
			fmt.Fprintln(out, styles.OK.Render(fmt.Sprintf("✓ %s → %s/%s (%.1f%% smaller)",
				name, OutputSubdir, filepath.Base(last.Output), last.Reduction())))
			if cfg.Debug {
				log.Printf("%s: %d -> %d bytes, added opaque alpha: %v",
					name, last.SourceSize, last.OutputSize, last.AddedAlpha)
			}
		},
	}

	result.Summary = runner.Run(files, func(path string) error {
		conv, err := ConvertFile(path, outDir, cfg.Options)
		last = conv
		return err
	})

	styles.PrintSummary(out, result.Summary, batch.SummaryLabels{
		Title:   "Conversion complete!",
		Success: "Success: %d file(s)",
		Errors:  "Errors: %d file(s)",
	})
	return result, nil
}
