package app

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/keskad/solid/pkgs/logging"
	"github.com/keskad/solid/pkgs/rigid"
)

var sinkNames = []string{"console", "file", "structured"}

// newSink builds the destination named in configuration or on the command line
func (app *SolidApp) newSink(name string) (logging.Loggable, error) {
	switch name {
	case "console":
		return logging.NewConsoleLogger(app.P), nil
	case "file":
		return logging.NewFileLogger(app.Fs, app.Config.Logger.File), nil
	case "structured":
		return logging.NewStructuredLogger(app.Log), nil
	}
	return nil, fmt.Errorf("unknown log sink '%s', valid sinks: %v", name, sinkNames)
}

func (app *SolidApp) sinkOrDefault(sink string) string {
	if strings.TrimSpace(sink) == "" {
		sink = app.Config.Logger.Sink
	}
	return strings.ToLower(strings.TrimSpace(sink))
}

// LogAction sends a message through the configured sink
func (app *SolidApp) LogAction(message string, sink string) error {
	sink = app.sinkOrDefault(sink)
	logrus.Debugf("Using '%s' log sink", sink)

	destination, err := app.newSink(sink)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(destination)
	if err != nil {
		return err
	}
	if err := logger.Log(message); err != nil {
		return err
	}

	// the file lives in memory only, show what ended up in it
	if sink == "file" {
		content, readErr := afero.ReadFile(app.Fs, app.Config.Logger.File)
		if readErr != nil {
			return fmt.Errorf("cannot read back %s: %w", app.Config.Logger.File, readErr)
		}
		_, _ = app.P.Printf("%s", content)
	}
	return nil
}

// LogProblemAction runs the logger that hardcodes its destinations
func (app *SolidApp) LogProblemAction(message string, sink string) error {
	logger := rigid.NewLogger(app.P)

	sink = app.sinkOrDefault(sink)
	switch sink {
	case "console":
		logger.LogToConsole(message)
	case "file":
		logger.LogToFile(message)
	default:
		return fmt.Errorf("the rigid logger has no method for sink '%s', it has to be edited to support it", sink)
	}
	return nil
}
