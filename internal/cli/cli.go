package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/amazego/internal/app"
	"github.com/vk/amazego/internal/nodeid"
)

// Process exit codes.
const (
	ExitRuntime = 1
	ExitUsage   = 2
	ExitNoPath  = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// ToExitError maps an application error onto an exit code.
func ToExitError(err error) *ExitError {
	var exitErr *ExitError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &exitErr):
		return exitErr
	case errors.Is(err, app.ErrNoPath):
		return &ExitError{Code: ExitNoPath, Message: err.Error()}
	default:
		return &ExitError{Code: ExitRuntime, Message: err.Error()}
	}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("amazego", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
amazego - A fork/join parallel maze solver.

Usage:
  amazego [options] [MAZE_PATH]

Arguments:
  MAZE_PATH
    An .hcl manifest, a directory of manifests, or a plain text layout.

Options:
`)
		flagSet.PrintDefaults()
	}

	mazeFlag := flagSet.String("maze", "", "Path to a manifest, manifest directory or text layout.")
	mFlag := flagSet.String("m", "", "Path to a manifest, manifest directory or text layout (shorthand).")
	nameFlag := flagSet.String("name", "", "Solve only the named maze or graph.")
	forkFlag := flagSet.Int("fork-after", -1, "Fork threshold. <=0 disables forking; -1 uses the manifest value, else 4.")
	startFlag := flagSet.String("start", "", "Search from this node instead of the maze start.")
	generateFlag := flagSet.String("generate", "", "Generate a WIDTHxHEIGHT maze instead of loading one.")
	seedFlag := flagSet.Uint64("seed", 1, "Seed for -generate.")
	renderFlag := flagSet.Bool("render", false, "Print each solved grid maze.")
	noColorFlag := flagSet.Bool("no-color", false, "Render without colours.")
	requireFlag := flagSet.Bool("require-path", false, "Exit with code 3 when any maze has no path.")
	socketFlag := flagSet.String("socketio-url", "", "socket.io server that receives player events.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the /health and /metrics server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	switch {
	case *mazeFlag != "":
		path = *mazeFlag
	case *mFlag != "":
		path = *mFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	slog.Debug("Maze path determined.", "path", path)

	if path == "" && *generateFlag == "" {
		slog.Debug("No maze provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	forkAfter := *forkFlag
	if forkAfter < -1 {
		forkAfter = 0
	}

	var start *nodeid.ID
	if *startFlag != "" {
		id, err := nodeid.Parse(*startFlag)
		if err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
		}
		start = &id
	}

	config, err := app.NewConfig(app.Config{
		MazePath:        path,
		Name:            *nameFlag,
		ForkAfter:       forkAfter,
		Start:           start,
		Generate:        *generateFlag,
		Seed:            *seedFlag,
		Render:          *renderFlag,
		NoColor:         *noColorFlag,
		RequirePath:     *requireFlag,
		SocketIOURL:     *socketFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
