package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/dialcount/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dialcount", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Dialcount - counts zero readings on a 100-position dial driven by rotation commands.

Usage:
  dialcount [options] [SESSION_PATH]

Arguments:
  SESSION_PATH
    Path to a single .hcl session file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	sessionFlag := flagSet.String("session", "", "Path to the session file or directory.")
	sFlag := flagSet.String("s", "", "Path to the session file or directory (shorthand).")
	modeFlag := flagSet.String("mode", "", "Override the counting mode for every puzzle. Options: 'end-of-rotation' or 'every-step'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *sessionFlag != "" {
		path = *sessionFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Session path determined.", "path", path)

	if path == "" {
		slog.Debug("No session path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	mode := strings.ToLower(*modeFlag)
	if mode != "" && mode != "end-of-rotation" && mode != "every-step" {
		return nil, false, &ExitError{Code: 2, Message: "invalid mode: must be 'end-of-rotation' or 'every-step'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SessionPath: path,
		Mode:        mode,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
