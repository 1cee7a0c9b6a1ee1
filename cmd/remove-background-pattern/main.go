package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/bgremove"
	"github.com/ironsheep/asset-tools/internal/cli"
	"github.com/ironsheep/asset-tools/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Remove plain or checkerboard backgrounds from PNG images.

Background colors are sampled from the image borders. Matching pixels become
fully transparent and the file is overwritten. Paths containing "webp" are
skipped in folder mode.

예시:
  remove-background-pattern assets/games/gravity-run 40

threshold: 색상 거리 임계값 (기본값 40)`

type command struct {
	Path      string           `arg:"" help:"PNG file or folder (png_파일_또는_폴더)."`
	Threshold int              `arg:"" optional:"" default:"${threshold}" help:"Color distance threshold."`
	Debug     bool             `help:"Log detected background colors for each file."`
	Version   kong.VersionFlag `short:"v" help:"Print version information."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the process exit code.
func run(args []string, out io.Writer) int {
	app := cli.App{
		Name:        "remove-background-pattern",
		Description: description,
		Build:       cli.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Out:         out,
		Vars:        map[string]string{"threshold": strconv.Itoa(imaging.DefaultBackgroundOptions().Threshold)},
	}
	debug := cli.Init(app)

	var cmd command
	if err := cli.Parse(app, &cmd, args); err != nil {
		return 1
	}

	_, err := bgremove.Run(bgremove.Config{
		Path:      cmd.Path,
		Threshold: cmd.Threshold,
		Debug:     debug || cmd.Debug,
	}, out)

	switch {
	case err == nil:
		return 0
	case errors.Is(err, batch.ErrNotFound):
		fmt.Fprintf(out, "파일 또는 폴더를 찾을 수 없습니다: %s\n", cmd.Path)
	case errors.Is(err, batch.ErrNotPNG):
		fmt.Fprintf(out, "PNG 파일이 아닙니다: %s\n", cmd.Path)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return 1
}
