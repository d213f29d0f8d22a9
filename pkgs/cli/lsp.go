package cli

import (
	"github.com/keskad/solid/pkgs/app"
	"github.com/keskad/solid/pkgs/syntax"
	"github.com/spf13/cobra"
)

func NewLSPCommand(app *app.SolidApp) *cobra.Command {
	type Args struct {
		Width   float64
		Height  float64
		Problem bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "lsp [SHAPE...]",
		Short: "Liskov substitution: any shape can be passed where a shape is expected",
		Long: `Prints area and drawing of each shape. Without arguments a rectangle of
--width x --height and a square of side --width are used.

With --problem a square inheriting from a rectangle is resized the way a
rectangle would be, and the broken expectation is reported.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			if cmdArgs.Problem {
				return app.ResizeProblemAction(cmdArgs.Width, cmdArgs.Height)
			}

			var entries []syntax.ShapeEntry
			if len(args) > 0 {
				parsed, parseErr := parseArgsAsShapes(args, command.InOrStdin())
				if parseErr != nil {
					return parseErr
				}
				entries = parsed
			}
			return app.ShapeInfoAction(entries, cmdArgs.Width, cmdArgs.Height)
		},
	}

	command.Flags().Float64VarP(&cmdArgs.Width, "width", "w", 5, "Rectangle width and square side")
	command.Flags().Float64VarP(&cmdArgs.Height, "height", "", 10, "Rectangle height")
	command.Flags().BoolVar(&cmdArgs.Problem, "problem", false, "Resize a square that inherits from a rectangle")

	return command
}
