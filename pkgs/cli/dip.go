package cli

import (
	"fmt"
	"strings"

	"github.com/keskad/solid/pkgs/app"
	"github.com/spf13/cobra"
)

func NewDIPCommand(app *app.SolidApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "dip",
		Short: "Dependency inversion: the logger gets its destination injected",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(NewLogCommand(app))
	return command
}

func NewLogCommand(app *app.SolidApp) *cobra.Command {
	type Args struct {
		Sink    string
		Problem bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "log MESSAGE...",
		Short: "Log a message to the chosen sink",
		Long: `Log a message to the chosen sink.

Examples:
  solid dip log hello
  solid dip log hello --sink file
  solid dip log hello --sink structured --problem   # the rigid logger has no such method`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			sink, sinkErr := validateSink(cmdArgs.Sink)
			if sinkErr != nil {
				return sinkErr
			}

			message := strings.Join(args, " ")
			if cmdArgs.Problem {
				return app.LogProblemAction(message, sink)
			}
			return app.LogAction(message, sink)
		},
	}

	command.Flags().StringVarP(&cmdArgs.Sink, "sink", "s", "", "Log sink: 'console', 'file', 'structured' or empty for logger.sink from the configuration")
	command.Flags().BoolVar(&cmdArgs.Problem, "problem", false, "Use the logger that creates its own destinations")

	return command
}

func validateSink(sink string) (string, error) {
	sink = strings.ToLower(strings.TrimSpace(sink))
	switch sink {
	case "", "console", "file", "structured":
		return sink, nil
	}
	return "", fmt.Errorf("invalid sink: %s. Must be either 'console', 'file', 'structured' or empty", sink)
}
