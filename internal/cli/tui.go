package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/config"
	"github.com/Sudhanshu-Shirgaonkar/portfolio/internal/tui"
)

var errNotTerminal = errors.New("tui needs an interactive terminal")

func newTUICmd(cfg *config.Config) *cobra.Command {
	var contentPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
				return errNotTerminal
			}
			path := cfg.ContentFile
			if contentPath != "" {
				path = contentPath
			}
			p, err := loadContent(path)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), p)
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file (overrides CONTENT_FILE)")
	return cmd
}
