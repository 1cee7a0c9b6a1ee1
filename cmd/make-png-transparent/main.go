package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/asset-tools/internal/batch"
	"github.com/ironsheep/asset-tools/internal/cli"
	"github.com/ironsheep/asset-tools/internal/imaging"
	"github.com/ironsheep/asset-tools/internal/transparency"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Make light pixels of PNG images transparent.

A pixel whose red, green and blue values are all above the threshold becomes
fully transparent. Files are overwritten unless --output is given.

예시:
  make-png-transparent assets/games/gravity-run 240
  make-png-transparent assets/games/gravity-run/bg_tile.png

threshold: 밝기 임계값 (0-255, 기본값 240)
           이 값보다 밝은 픽셀은 투명하게 됩니다.`

type command struct {
	Path      string           `arg:"" help:"PNG file or folder (png_파일_또는_폴더)."`
	Threshold int              `arg:"" optional:"" default:"${threshold}" help:"Brightness threshold, 0-255."`
	Output    string           `short:"o" type:"path" help:"Output file, or output folder for a folder input."`
	Version   kong.VersionFlag `short:"v" help:"Print version information."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the process exit code.
func run(args []string, out io.Writer) int {
	app := cli.App{
		Name:        "make-png-transparent",
		Description: description,
		Build:       cli.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Out:         out,
		Vars:        map[string]string{"threshold": strconv.Itoa(imaging.DefaultBrightnessThreshold)},
	}
	cli.Init(app)

	var cmd command
	if err := cli.Parse(app, &cmd, args); err != nil {
		return 1
	}

	_, err := transparency.Run(transparency.Config{
		Path:      cmd.Path,
		Threshold: cmd.Threshold,
		Output:    cmd.Output,
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
