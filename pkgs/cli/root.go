package cli

import (
	"github.com/keskad/solid/pkgs/app"
	"github.com/spf13/cobra"
)

func NewRootCommand(app *app.SolidApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "solid",
		Short: "SOLID design principles, each shown as a rigid design and its fix",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.PersistentFlags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")

	command.AddCommand(NewSRPCommand(app))
	command.AddCommand(NewOCPCommand(app))
	command.AddCommand(NewLSPCommand(app))
	command.AddCommand(NewISPCommand(app))
	command.AddCommand(NewDIPCommand(app))
	return command
}
