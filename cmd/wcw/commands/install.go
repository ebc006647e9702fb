package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wcw/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install a package and its dependencies into the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, _ := cmd.Flags().GetString("repo")
			if repo == "" {
				_ = cmd.Help()
				return domain.ErrMissingDescriptor
			}
			return c.app.Install(cmd.Context(), repo)
		},
	}
	cmd.Flags().StringP("repo", "r", "", "Package descriptor to install (name, owner/repo or git URL)")
	return cmd
}
