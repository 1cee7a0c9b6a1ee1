// Package cli holds the start-up plumbing shared by the command binaries:
// environment loading, logging, color selection, and argument parsing.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
)

// LogLevelEnv selects the log level; "debug" enables diagnostics.
const LogLevelEnv = "ASSET_TOOLS_LOG_LEVEL"

// BuildInfo is the version information injected with ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// String formats the build info for --version output.
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s\n  Build time: %s\n  Git commit: %s", b.Version, b.BuildTime, b.GitCommit)
}

// App describes one command binary.
type App struct {
	Name        string
	Description string
	Build       BuildInfo

	// Out receives usage and version text. Defaults to os.Stdout.
	Out io.Writer

	// Exit is called by --help and --version. Defaults to os.Exit.
	Exit func(int)

	// Vars are interpolated into the grammar tags, e.g. default:"${threshold}".
	Vars map[string]string
}

// Init loads an optional .env file from the working directory, routes the
// standard logger to stderr and applies NO_COLOR. It reports whether debug
// logging was requested.
//
// Variables already present in the environment win over the .env file.
func Init(app App) bool {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	debug := os.Getenv(LogLevelEnv) == "debug"
	if debug {
		log.Printf("%s v%s (built %s, commit %s)", app.Name, app.Build.Version, app.Build.BuildTime, app.Build.GitCommit)
	}
	return debug
}

// Parse fills grammar from args.
//
// Usage errors print the error and the usage text to app.Out and are
// returned; --help and --version print and call app.Exit(0).
func Parse(app App, grammar interface{}, args []string) error {
	out := app.Out
	if out == nil {
		out = os.Stdout
	}
	exit := app.Exit
	if exit == nil {
		exit = os.Exit
	}

	vars := kong.Vars{"version": app.Name + " " + app.Build.String()}
	for k, v := range app.Vars {
		vars[k] = v
	}

	parser, err := kong.New(grammar,
		kong.Name(app.Name),
		kong.Description(app.Description),
		kong.Writers(out, out),
		kong.Exit(exit),
		vars,
	)
	if err != nil {
		return fmt.Errorf("invalid command definition: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(out, "Error: %v\n\n", err)
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(false)
		}
		return err
	}
	return nil
}
