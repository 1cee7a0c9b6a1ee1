package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/asset-tools/internal/cli"
	"github.com/ironsheep/asset-tools/internal/codec"
	"github.com/ironsheep/asset-tools/internal/webpconv"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Convert every PNG in a folder to lossy WebP (quality 80).

Outputs are written to <source_dir>/webp/.

예시:
  png-to-webp assets/games/weapon-levelup/images

Environment variables:
  ASSET_TOOLS_LOG_LEVEL=debug    Enable debug logging`

type command struct {
	Source  string           `arg:"" name:"source_dir" help:"Folder containing the PNG files (png_폴더_경로)."`
	Version kong.VersionFlag `short:"v" help:"Print version information."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the process exit code.
func run(args []string, out io.Writer) int {
	app := cli.App{
		Name:        "png-to-webp",
		Description: description,
		Build:       cli.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Out:         out,
	}
	debug := cli.Init(app)

	var cmd command
	if err := cli.Parse(app, &cmd, args); err != nil {
		return 1
	}

	_, err := webpconv.Run(webpconv.Config{
		SourceDir: cmd.Source,
		Options:   codec.DefaultWebPOptions(),
		Debug:     debug,
	}, out)

	switch {
	case err == nil:
		return 0
	case errors.Is(err, codec.ErrWebPUnavailable):
		fmt.Fprintln(out, codec.InstallHint)
		log.Printf("WebP encoder unavailable: %v", err)
	case errors.Is(err, webpconv.ErrNotDirectory):
		fmt.Fprintln(out, "폴더를 찾을 수 없습니다:", cmd.Source)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return 1
}
