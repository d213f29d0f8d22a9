package cli

import (
	"github.com/keskad/solid/pkgs/app"
	"github.com/spf13/cobra"
)

func NewSRPCommand(app *app.SolidApp) *cobra.Command {
	type Args struct {
		Path    string
		Problem bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "srp",
		Short: "Single responsibility: read, save and log with separate components",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			if cmdArgs.Problem {
				return app.FilesProblemAction(cmdArgs.Path)
			}
			return app.FilesAction(cmdArgs.Path)
		},
	}

	command.Flags().StringVarP(&cmdArgs.Path, "file", "f", "", "File to process, defaults to files.path from the configuration")
	command.Flags().BoolVar(&cmdArgs.Problem, "problem", false, "Run the single FileHandler that does everything")

	return command
}
