// Package logging routes messages to a destination chosen by the caller.
//
// Logger only knows the Loggable capability. The concrete destinations
// (console, file, structured logrus output) are built by whoever constructs
// the Logger and injected into it, so a new destination never requires a
// change here.
package logging

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/keskad/solid/pkgs/output"
)

// ErrNoDestination is returned when a Logger has nothing to write to
var ErrNoDestination = errors.New("no log destination")

// Loggable is anything that can accept a single log message
type Loggable interface {
	Log(message string) error
}

var (
	_ Loggable = (*ConsoleLogger)(nil)
	_ Loggable = (*FileLogger)(nil)
	_ Loggable = (*StructuredLogger)(nil)
)

type ConsoleLogger struct {
	P output.Printer
}

func NewConsoleLogger(p output.Printer) *ConsoleLogger {
	return &ConsoleLogger{P: p}
}

func (c *ConsoleLogger) Log(message string) error {
	if c.P == nil {
		return fmt.Errorf("cannot write to console: %w", output.ErrNoPrinter)
	}
	if _, err := c.P.Printf("Console Log: %s\n", message); err != nil {
		return fmt.Errorf("cannot write to console: %w", err)
	}
	return nil
}

// FileLogger appends one line per message to Path on the given filesystem
type FileLogger struct {
	Fs   afero.Fs
	Path string
}

func NewFileLogger(fs afero.Fs, path string) *FileLogger {
	return &FileLogger{Fs: fs, Path: path}
}

func (f *FileLogger) Log(message string) error {
	file, err := f.Fs.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file %q: %w", f.Path, err)
	}
	if _, err := fmt.Fprintf(file, "File Log: %s\n", message); err != nil {
		_ = file.Close()
		return fmt.Errorf("cannot write to log file %q: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot close log file %q: %w", f.Path, err)
	}
	logrus.Debugf("Appended message to %s", f.Path)
	return nil
}

// StructuredLogger forwards messages to logrus with a sink field attached
type StructuredLogger struct {
	L logrus.FieldLogger
}

func NewStructuredLogger(l logrus.FieldLogger) *StructuredLogger {
	return &StructuredLogger{L: l}
}

func (s *StructuredLogger) Log(message string) error {
	s.L.WithField("sink", "structured").Info(message)
	return nil
}

// Logger depends on the Loggable capability only
type Logger struct {
	destination Loggable
}

func NewLogger(destination Loggable) (*Logger, error) {
	if destination == nil {
		return nil, fmt.Errorf("cannot create logger: %w", ErrNoDestination)
	}
	return &Logger{destination: destination}, nil
}

func (l *Logger) Log(message string) error {
	if l == nil || l.destination == nil {
		return fmt.Errorf("cannot log %q: %w", message, ErrNoDestination)
	}
	return l.destination.Log(message)
}
