package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wcw/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newRebaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "rebase [gitargs...]",
		Short:              "Rebase every tracked repository onto its upstream",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return zerr.With(domain.Categorize(domain.ErrNotImplemented, nil), "command", "rebase")
		},
	}
}

func (c *CLI) newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "test [cmd...]",
		Short:              "Run a test command in every tracked repository",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return zerr.With(domain.Categorize(domain.ErrNotImplemented, nil), "command", "test")
		},
	}
}
