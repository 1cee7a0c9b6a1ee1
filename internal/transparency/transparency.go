// Package transparency turns light pixels of PNG images transparent.
//
// A pixel whose red, green and blue channels all exceed the threshold is
// replaced with fully transparent white; all other pixels are kept as they
// are. Files are overwritten in place unless an output path is given.
package transparency

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/codec"
	"github.com/ironsheep/asset-tools/internal/imaging"
)

// Config is the input of one transparency run.
type Config struct {
	// Path is a PNG file or a directory of PNG files.
	Path string

	// Threshold is the channel cutoff; see imaging.ApplyBrightnessThreshold.
	Threshold int

	// Output is optional. For a file input it is the output file; for a
	// directory input it is the output directory. Empty means overwrite.
	Output string
}

// MakeTransparent applies the brightness threshold to src and writes the
// result as PNG to dst (which may equal src). Returns the number of pixels
// made transparent.
func MakeTransparent(src, dst string, threshold int) (int, error) {
	img, err := imaging.Load(src)
	if err != nil {
		return 0, err
	}

	nrgba := imaging.EnsureAlpha(img)
	matched := imaging.ApplyBrightnessThreshold(nrgba, threshold)

	if err := codec.SavePNG(dst, nrgba); err != nil {
		return 0, err
	}
	return matched, nil
}

// Run processes cfg.Path and reports progress to out.
//
// Returns batch.ErrNotFound or batch.ErrNotPNG for unusable inputs. An input
// without PNG files is not an error. A threshold outside 0-255 is used as
// given after a warning: above 255 nothing matches, below 0 every pixel does.
func Run(cfg Config, out io.Writer) (batch.Summary, error) {
	src, err := filepath.Abs(cfg.Path)
	if err != nil {
		return batch.Summary{}, fmt.Errorf("failed to resolve input: %w", err)
	}

	files, err := batch.CollectPNGs(src, batch.CollectOptions{})
	if err != nil {
		return batch.Summary{}, err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "PNG 파일을 찾을 수 없습니다.")
		return batch.Summary{}, nil
	}

	outputFor, err := outputResolver(src, cfg.Output)
	if err != nil {
		return batch.Summary{}, err
	}

	fmt.Fprintf(out, "처리할 파일: %d개\n", len(files))
	fmt.Fprintf(out, "밝기 임계값: %d (이 값보다 밝은 픽셀은 투명하게 됩니다)\n\n", cfg.Threshold)

	styles := batch.DefaultStyles()
	if cfg.Threshold < 0 || cfg.Threshold > 255 {
		fmt.Fprintln(out, styles.Warn.Render(
			fmt.Sprintf("Warning: threshold %d is outside 0-255 (임계값 범위를 벗어났습니다)", cfg.Threshold)))
	}
	runner := &batch.Runner{
		Out: out,
		Before: func(path string) {
			fmt.Fprintf(out, "처리 중: %s... ", filepath.Base(path))
		},
		After: func(path string, err error) {
			if err != nil {
				fmt.Fprintln(out, styles.Fail.Render("[FAIL]"))
				fmt.Fprintf(out, "  Error processing %s: %v\n", filepath.Base(path), err)
				return
			}
			fmt.Fprintln(out, styles.OK.Render("[OK]"))
		},
	}

	summary := runner.Run(files, func(path string) error {
		_, err := MakeTransparent(path, outputFor(path), cfg.Threshold)
		return err
	})

	styles.PrintSummary(out, summary, batch.SummaryLabels{
		Title:   "처리 완료!",
		Success: "성공: %d개",
		Errors:  "실패: %d개",
	})
	return summary, nil
}

// outputResolver maps each input file to its destination.
func outputResolver(src, output string) (func(string) string, error) {
	if output == "" {
		return func(path string) string { return path }, nil
	}

	output, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output: %w", err)
	}

	stat, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if !stat.IsDir() {
		return func(string) string { return output }, nil
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return func(path string) string {
		return filepath.Join(output, filepath.Base(path))
	}, nil
}
