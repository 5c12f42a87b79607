// Package cli implements the exprdag command-line interface.
//
// The CLI loads expression-DAG models from TOML files and runs interval
// bound propagation over their constraints. It is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - tighten: load a model and propagate its constraint bounds down to
//     the variables
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "exprdag"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Exprdag propagates interval bounds through expression DAGs",
		Long: `Exprdag is a CLI front end for interval constraint propagation: it loads
an expression model from TOML, computes an interval enclosure for every
expression bottom-up, and pushes the constraint bounds back down to the
variables until no bound improves anymore.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.tightenCommand())

	return root
}
