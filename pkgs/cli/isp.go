package cli

import (
	"github.com/keskad/solid/pkgs/app"
	"github.com/spf13/cobra"
)

func NewISPCommand(app *app.SolidApp) *cobra.Command {
	type Args struct {
		Problem bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "isp",
		Short: "Interface segregation: a fax machine is not forced to scan",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			if cmdArgs.Problem {
				return app.DevicesProblemAction()
			}
			return app.DevicesAction()
		},
	}

	command.Flags().BoolVar(&cmdArgs.Problem, "problem", false, "Use one interface for every device")

	return command
}
