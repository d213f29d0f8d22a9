package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Logger struct {
	// Sink is one of: console, file, structured
	Sink string
	File string
}

type Files struct {
	Path string
}

// MaxPrecision is the most decimal places a float64 can meaningfully show
const MaxPrecision = 17

type Shapes struct {
	// Precision is the number of decimal places printed, -1 for the shortest exact form
	Precision int
}

type Configuration struct {
	Logger Logger
	Files  Files
	Shapes Shapes
}

// NewConfig reads .solid.yaml from $HOME or the current directory. The file is
// optional, SOLID_* environment variables override it.
func NewConfig() (*Configuration, error) {
	return newConfig(viper.New(), "$HOME/", ".")
}

func newConfig(v *viper.Viper, paths ...string) (*Configuration, error) {
	config := Configuration{}

	v.SetConfigType("yaml")
	v.SetConfigName(".solid")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("logger.sink", "console")
	v.SetDefault("logger.file", "solid.log")
	v.SetDefault("files.path", "example.txt")
	v.SetDefault("shapes.precision", 2)

	v.SetEnvPrefix("solid")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// make .solid.yaml fully optional
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
		}
	}
	if err := v.Unmarshal(&config); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	if config.Shapes.Precision < -1 || config.Shapes.Precision > MaxPrecision {
		return &config, fmt.Errorf("invalid config: shapes.precision must be between -1 and %d, got %d", MaxPrecision, config.Shapes.Precision)
	}

	return &config, nil
}
