// Package bgremove strips uniform or patterned backgrounds from PNG images.
//
// The background is inferred from the image borders (see
// imaging.RemoveBackground); matching pixels get alpha 0 and the file is
// overwritten in place. Directory inputs skip any path containing "webp" so
// generated outputs are never reprocessed.
package bgremove

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/codec"
	"github.com/ironsheep/asset-tools/internal/imaging"
)

// ExcludeSubstring marks paths skipped in directory mode.
const ExcludeSubstring = "webp"

// Config is the input of one background-removal run.
type Config struct {
	// Path is a PNG file or a directory of PNG files.
	Path string

	// Threshold is the maximum color distance to a background candidate.
	Threshold int

	// Debug logs the detected candidates for every file.
	Debug bool
}

// RemoveFile removes the background of the PNG at path and overwrites it.
func RemoveFile(path string, opts imaging.BackgroundOptions) (*imaging.RemovalResult, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}

	nrgba := imaging.EnsureAlpha(img)
	result := imaging.RemoveBackground(nrgba, opts)

	if err := codec.SavePNG(path, nrgba); err != nil {
		return nil, err
	}
	return result, nil
}

// Run processes cfg.Path and reports progress to out.
//
// Returns batch.ErrNotFound or batch.ErrNotPNG for unusable inputs. An input
// without PNG files is not an error.
func Run(cfg Config, out io.Writer) (batch.Summary, error) {
	src, err := filepath.Abs(cfg.Path)
	if err != nil {
		return batch.Summary{}, fmt.Errorf("failed to resolve input: %w", err)
	}

	files, err := batch.CollectPNGs(src, batch.CollectOptions{ExcludeSubstring: ExcludeSubstring})
	if err != nil {
		return batch.Summary{}, err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "PNG 파일을 찾을 수 없습니다.")
		return batch.Summary{}, nil
	}

	fmt.Fprintf(out, "처리할 파일: %d개\n", len(files))
	fmt.Fprintf(out, "임계값: %d\n\n", cfg.Threshold)

	opts := imaging.DefaultBackgroundOptions()
	opts.Threshold = cfg.Threshold

	styles := batch.DefaultStyles()
	runner := &batch.Runner{
		Out:   out,
		Trace: true,
		Before: func(path string) {
			fmt.Fprintf(out, "처리 중: %s... ", filepath.Base(path))
		},
		After: func(path string, err error) {
			if err != nil {
				fmt.Fprintln(out, styles.Fail.Render("[FAIL]"))
				fmt.Fprintf(out, "Error: %v\n", err)
				return
			}
			fmt.Fprintln(out, styles.OK.Render("[OK]"))
		},
	}

	summary := runner.Run(files, func(path string) error {
		result, err := RemoveFile(path, opts)
		if err != nil {
			return err
		}
		if cfg.Debug {
			logResult(path, result)
		}
		return nil
	})

	styles.PrintSummary(out, summary, batch.SummaryLabels{
		Title:   "처리 완료!",
		Success: "성공: %d개",
		Errors:  "실패: %d개",
	})
	return summary, nil
}

func logResult(path string, result *imaging.RemovalResult) {
	hexes := make([]string, 0, len(result.Profile.Candidates))
	for _, c := range result.Profile.Candidates {
		hexes = append(hexes, fmt.Sprintf("%s/a%d x%d", c.Color.Hex(), c.Color.A, c.Count))
	}
	log.Printf("%s: %d edge samples, candidates [%s], edge brightness %.1f (dark=%v), cleared %d/%d pixels",
		filepath.Base(path), result.Profile.Samples, strings.Join(hexes, " "),
		result.Profile.AverageEdgeBrightness, result.Profile.DarkBackground,
		result.Cleared, result.Total)
}
