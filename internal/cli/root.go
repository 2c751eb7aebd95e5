// Package cli wires configuration, logging and the serve and tui subcommands.
package cli

import (
	"errors"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/config"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/content"
)

var errWatchEmbedded = errors.New("--watch needs --content or CONTENT_FILE")

// logger is the CLI logger, replaced once flags and environment are read.
var logger = zerolog.Nop() //nolint:gochecknoglobals // set in PersistentPreRunE

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRootCmd creates the portfolio command reading the process environment.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for tests.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio server and terminal viewer",
		Version:      ver,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(lookupEnv)
			if err != nil {
				return err
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loaded.LogLevel = zerolog.LevelDebugValue
				loaded.LogFormat = "console"
				loaded.GinMode = gin.DebugMode
			}
			*cfg = loaded

			logger = config.Component(config.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()), "cli")
			logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newServeCmd(cfg), newTUICmd(cfg))
	return cmd
}

// loadContent reads path, or the embedded portfolio when path is empty.
func loadContent(path string) (*content.Portfolio, error) {
	if path == "" {
		return content.Load()
	}
	return content.LoadFile(path)
}
