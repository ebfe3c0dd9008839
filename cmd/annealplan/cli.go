package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// Output formats.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// options is the parsed command line.
type options struct {
	level  zerolog.Level
	format string
	files  []string
}

// parseArgs processes the command line. It reports shouldExit for -h and for
// an empty file list, after printing the usage text to output.
func parseArgs(args []string, output io.Writer) (opts options, shouldExit bool, err error) {
	fs := flag.NewFlagSet("annealplan", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
annealplan - print the epsilon-scaling plan of Sinkhorn schedule files.

Usage:
  annealplan [options] FILE...

Arguments:
  FILE
    YAML schedule (diameter, p, blur, reach, n_iter, scaling, scales).

Options:
`)
		fs.PrintDefaults()
	}

	levelFlag := fs.String("log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	formatFlag := fs.String("format", formatText, "Output format: 'text' or 'yaml'.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, true, nil
		}

		return options{}, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() == 0 {
		fs.Usage()

		return options{}, true, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(*levelFlag))
	if err != nil || level == zerolog.NoLevel {
		return options{}, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}

	format := strings.ToLower(*formatFlag)
	if format != formatText && format != formatYAML {
		return options{}, false, &ExitError{Code: 2, Message: "invalid format: must be 'text' or 'yaml'"}
	}

	return options{level: level, format: format, files: fs.Args()}, false, nil
}
