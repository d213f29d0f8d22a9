package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/keskad/solid/pkgs/config"
	"github.com/keskad/solid/pkgs/output"
	"github.com/keskad/solid/pkgs/shapes"
)

// SolidApp is where concrete implementations are chosen and handed to the
// code that only knows their capabilities
type SolidApp struct {
	Config *config.Configuration
	P      output.Printer
	Fs     afero.Fs
	Log    logrus.FieldLogger
	Clock  func() time.Time
	Shapes *shapes.Registry

	// runtime parameters
	Debug bool
}

func New() *SolidApp {
	return &SolidApp{
		P:      output.ConsolePrinter{},
		Fs:     afero.NewMemMapFs(),
		Log:    logrus.StandardLogger(),
		Clock:  time.Now,
		Shapes: shapes.NewRegistry(),
	}
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *SolidApp) Initialize() error {
	// logging
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// configuration
	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig()
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %s", cfgErr)
	}
	return nil
}
