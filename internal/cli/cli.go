package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/app"
	"github.com/specialistvlad/coursegrid/internal/requisite"
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

// stringList collects every occurrence of a repeatable flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("coursegrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
coursegrid - Track curriculum progress and course prerequisites.

Usage:
  coursegrid [options] [CATALOG_PATH]

Arguments:
  CATALOG_PATH
    Path to a .hcl or .yaml catalog file, or a directory containing them.

Session commands are read from standard input, one per line. Type "help"
in a session to list them.

Options:
`)
		flagSet.PrintDefaults()
	}

	var approve stringList
	catalogFlag := flagSet.String("catalog", "", "Path to the catalog file or directory.")
	cFlag := flagSet.String("c", "", "Path to the catalog file or directory (shorthand).")
	aliasesFlag := flagSet.String("aliases", "", "Additional file or directory with alias definitions.")
	flagSet.Var(&approve, "approve", "Course to approve before the session starts. Repeatable.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cacheSizeFlag := flagSet.Int("cache-size", requisite.DefaultCacheSize, "Number of parsed requisite texts to keep cached.")
	colorFlag := flagSet.Bool("color", false, "Colour course states in the output.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *catalogFlag != "" {
		path = *catalogFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Catalog path determined.", "path", path)

	if path == "" {
		slog.Debug("No catalog path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	paths := []string{path}
	if *aliasesFlag != "" {
		paths = append(paths, *aliasesFlag)
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
		CatalogPaths: paths,
		Approve:      approve,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		CacheSize:    *cacheSizeFlag,
		Color:        *colorFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
