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
	"github.com/ironsheep/asset-tools/internal/sprites"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Split weapon level-up sprite sheets into one WebP per level.

Reads  <root>/assets/games/weapon-levelup/images/png/*.png
Writes <root>/assets/games/weapon-levelup/images/webp/weapon-levelupNN.webp

Each sheet is 1024x1024 with five sprites side by side. A sheet named
weapon-levelup01_05.png produces levels 01 to 05.`

type command struct {
	Root    string           `env:"ASSET_TOOLS_ROOT" default:"." type:"path" help:"Directory containing assets/."`
	Version kong.VersionFlag `short:"v" help:"Print version information."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and returns the process exit code.
func run(args []string, out io.Writer) int {
	app := cli.App{
		Name:        "split-sprites-to-webp",
		Description: description,
		Build:       cli.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit},
		Out:         out,
	}
	cli.Init(app)

	var cmd command
	if err := cli.Parse(app, &cmd, args); err != nil {
		return 1
	}

	_, err := sprites.Run(sprites.Config{
		Root:    cmd.Root,
		Options: codec.DefaultWebPOptions(),
	}, out)

	switch {
	case err == nil:
		return 0
	case errors.Is(err, sprites.ErrSourceMissing):
		fmt.Fprintf(out, "PNG directory not found: %s\n", sprites.SourceDir(cmd.Root))
	case errors.Is(err, codec.ErrWebPUnavailable):
		fmt.Fprintln(out, codec.InstallHint)
		log.Printf("WebP encoder unavailable: %v", err)
	default:
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return 1
}
