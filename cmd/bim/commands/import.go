package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [packages...]",
		Short: "Import workspace packages as projects",
		Long: `Import discovers the Bazel packages of the workspace, loads their
dependency metadata through the aspect and creates one project per package,
ordered so that every project's dependencies exist before the project
itself. Without arguments every discovered package is imported.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Import(cmd.Context(), args)
		},
	}
}
