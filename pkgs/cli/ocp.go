package cli

import (
	"errors"

	"github.com/keskad/solid/pkgs/app"
	"github.com/spf13/cobra"
)

func NewOCPCommand(app *app.SolidApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "ocp",
		Short: "Open/closed: compute shapes without a calculator that knows every shape",
		RunE: func(command *cobra.Command, args []string) error {
			return errors.New("please select a command")
		},
	}

	command.AddCommand(NewAreaCommand(app))
	command.AddCommand(NewPerimeterCommand(app))
	return command
}

func NewAreaCommand(app *app.SolidApp) *cobra.Command {
	type Args struct {
		Problem bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "area SHAPE...",
		Short: "Print the area of each shape and the total",
		Long: `Print the area of each shape and the total.

Shapes are given as kind=dimensions, dimensions separated by "x":
  rect=6x8 square=5 circle=5 triangle=3x4

Examples:
  solid ocp area rect=6x8 circle=5 triangle=3x4
  cat shapes.txt | solid ocp area -
  solid ocp area square=5 --problem            # the rigid calculator has no square`,
		Args: cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			entries, parseErr := parseArgsAsShapes(args, command.InOrStdin())
			if parseErr != nil {
				return parseErr
			}

			if cmdArgs.Problem {
				return app.AreaProblemAction(entries)
			}
			return app.AreaAction(entries)
		},
	}

	command.Flags().BoolVar(&cmdArgs.Problem, "problem", false, "Use the calculator with one method per shape")

	return command
}

func NewPerimeterCommand(app *app.SolidApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "perimeter SHAPE...",
		Short: "Print the perimeter of each shape and the total",
		Args:  cobra.ArbitraryArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			entries, parseErr := parseArgsAsShapes(args, command.InOrStdin())
			if parseErr != nil {
				return parseErr
			}
			return app.PerimeterAction(entries)
		},
	}

	return command
}
