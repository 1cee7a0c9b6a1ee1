package transparency

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/clone"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/imaging"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// writeGradientPNG writes a 256x2 opaque image: row 0 is gray x, row 1 is (x, x, 0).
func writeGradientPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 256, 2))
	for x := 0; x < 256; x++ {
		v := uint8(x)
		img.SetRGBA(x, 0, color.RGBA{v, v, v, 255})
		img.SetRGBA(x, 1, color.RGBA{v, v, 0, 255})
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

// loadNRGBA decodes path into an NRGBA image.
func loadNRGBA(t *testing.T, path string) *image.NRGBA {
	t.Helper()
	img, err := imaging.Load(path)
	if err != nil {
		t.Fatalf("failed to load %s: %v", path, err)
	}
	return imaging.EnsureAlpha(img)
}

func TestMakeTransparent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	writeGradientPNG(t, path)

	matched, err := MakeTransparent(path, path, 240)
	if err != nil {
		t.Fatalf("MakeTransparent failed: %v", err)
	}
	if matched != 15 {
		t.Errorf("matched: got %d, want 15", matched)
	}

	img := loadNRGBA(t, path)
	if img.Bounds().Dx() != 256 || img.Bounds().Dy() != 2 {
		t.Fatalf("dimensions changed: got %v", img.Bounds())
	}

	for x := 0; x < 256; x++ {
		v := uint8(x)
		got := img.NRGBAAt(x, 0)
		if x > 240 {
			if got != (color.NRGBA{255, 255, 255, 0}) {
				t.Errorf("gray %d: got %v, want transparent white", x, got)
			}
		} else if got != (color.NRGBA{v, v, v, 255}) {
			t.Errorf("gray %d: got %v, want unchanged", x, got)
		}

		if got := img.NRGBAAt(x, 1); got != (color.NRGBA{v, v, 0, 255}) {
			t.Errorf("row 1 pixel %d: got %v, want unchanged", x, got)
		}
	}
}

func TestMakeTransparent_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	writeGradientPNG(t, path)

	if _, err := MakeTransparent(path, path, 200); err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	first := clone.AsRGBA(loadNRGBA(t, path))

	if _, err := MakeTransparent(path, path, 200); err != nil {
		t.Fatalf("second pass failed: %v", err)
	}
	second := clone.AsRGBA(loadNRGBA(t, path))

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("second pass changed pixel data")
	}
}

func TestMakeTransparent_SeparateOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.png")
	dst := filepath.Join(dir, "out.png")
	writeGradientPNG(t, src)

	before, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("failed to read source: %v", err)
	}

	if _, err := MakeTransparent(src, dst, 240); err != nil {
		t.Fatalf("MakeTransparent failed: %v", err)
	}

	after, err := os.ReadFile(src)
	if err != nil {
		t.Fatalf("failed to read source: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("source file modified when an output path was given")
	}
	if got := loadNRGBA(t, dst).NRGBAAt(255, 0); got.A != 0 {
		t.Errorf("output pixel: got %v, want transparent", got)
	}
}

func TestMakeTransparent_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := MakeTransparent(path, path, 240); err == nil {
		t.Error("MakeTransparent should fail for invalid image data")
	}

	data, _ := os.ReadFile(path)
	if string(data) != "not a png" {
		t.Error("failed decode must not touch the file")
	}
}

func TestRun_Directory(t *testing.T) {
	dir := t.TempDir()
	writeGradientPNG(t, filepath.Join(dir, "a.png"))
	writeGradientPNG(t, filepath.Join(dir, "b.PNG"))
	if err := os.WriteFile(filepath.Join(dir, "c.png"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := Run(Config{Path: dir, Threshold: 240}, &out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Success != 2 || summary.Errors != 1 {
		t.Errorf("summary: got %+v, want 2 success, 1 error", summary)
	}

	text := out.String()
	for _, want := range []string{
		"처리할 파일: 3개",
		"밝기 임계값: 240",
		"처리 중: a.png... [OK]",
		"처리 중: c.png... [FAIL]",
		"Error processing c.png:",
		"처리 완료!",
		"성공: 2개",
		"실패: 1개",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}

	if got := loadNRGBA(t, filepath.Join(dir, "b.PNG")).NRGBAAt(250, 0); got.A != 0 {
		t.Errorf("b.PNG not processed: pixel %v", got)
	}
}

func TestRun_OutputDirectory(t *testing.T) {
	src := t.TempDir()
	writeGradientPNG(t, filepath.Join(src, "a.png"))
	outDir := filepath.Join(t.TempDir(), "out")

	var out bytes.Buffer
	summary, err := Run(Config{Path: src, Threshold: 240, Output: outDir}, &out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Success != 1 {
		t.Fatalf("summary: got %+v, want 1 success", summary)
	}

	if got := loadNRGBA(t, filepath.Join(outDir, "a.png")).NRGBAAt(250, 0); got.A != 0 {
		t.Errorf("output pixel: got %v, want transparent", got)
	}
	if got := loadNRGBA(t, filepath.Join(src, "a.png")).NRGBAAt(250, 0); got.A != 255 {
		t.Errorf("source pixel: got %v, want untouched", got)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txt, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"missing path", Config{Path: filepath.Join(dir, "missing"), Threshold: 240}, batch.ErrNotFound},
		{"not png", Config{Path: txt, Threshold: 240}, batch.ErrNotPNG},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			_, err := Run(tt.cfg, &out)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRun_OutOfRangeThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		wantAlpha uint8
	}{
		{"above 255 matches nothing", 300, 255},
		{"negative matches everything", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sprite.png")
			writeGradientPNG(t, path)

			var out bytes.Buffer
			summary, err := Run(Config{Path: path, Threshold: tt.threshold}, &out)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if summary.Success != 1 {
				t.Errorf("summary: got %+v, want 1 success", summary)
			}
			if !strings.Contains(out.String(), "is outside 0-255") {
				t.Errorf("missing range warning:\n%s", out.String())
			}

			img := loadNRGBA(t, path)
			for _, x := range []int{0, 128, 255} {
				if got := img.NRGBAAt(x, 0).A; got != tt.wantAlpha {
					t.Errorf("pixel %d alpha: got %d, want %d", x, got, tt.wantAlpha)
				}
			}
		})
	}
}

func TestRun_NoPNGs(t *testing.T) {
	var out bytes.Buffer
	summary, err := Run(Config{Path: t.TempDir(), Threshold: 240}, &out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary != (batch.Summary{}) {
		t.Errorf("summary: got %+v, want empty", summary)
	}
	if !strings.Contains(out.String(), "PNG 파일을 찾을 수 없습니다.") {
		t.Errorf("missing no-files message: %q", out.String())
	}
}
