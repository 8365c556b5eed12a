// Package main provides the lexorank CLI, a thin shell over the lexorank
// package for inspecting and generating rank keys by hand.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Version is the current lexorank CLI version
var Version = "0.1.0"

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// cli carries the state shared by all subcommands of one invocation.
type cli struct {
	logLevel  string
	logFormat string
	rankOnly  bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "lexorank",
		Short: "Inspect and generate LexoRank keys",
		Long: `lexorank parses "bucket|rank" keys and computes successors, predecessors
and keys that sort between two existing keys.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), c.logFormat, c.logLevel)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.logLevel, "log-level", "warn", "Log level: debug/info/warn/error")
	flags.StringVar(&c.logFormat, "log-format", logFormatText, "Log handler type: text/json")
	flags.BoolVar(&c.rankOnly, "rank-only", false, "Print only the rank segment of results")

	rootCmd.AddCommand(
		c.parseCmd(),
		c.nextCmd(),
		c.prevCmd(),
		c.betweenCmd(),
		c.spreadCmd(),
		c.rotateCmd(),
		c.floatCmd(),
	)
	return rootCmd
}

// newLogger builds a slog logger writing to w with the given handler type
// and level.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("unsupported log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: slogLevel}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case logFormatText:
		handler = slog.NewTextHandler(w, opts)
	case logFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
	return slog.New(handler), nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}
