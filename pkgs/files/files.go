// Package files splits file handling into three components with one job each:
// reading and transforming, saving, and recording what was done. None of them
// calls another; the caller sequences them.
package files

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/keskad/solid/pkgs/output"
)

// SampleData is what the demo file contains before processing
const SampleData = "Raw data from file"

// Seed writes SampleData to path
func Seed(fs afero.Fs, path string) error {
	if err := afero.WriteFile(fs, path, []byte(SampleData), 0o644); err != nil {
		return fmt.Errorf("cannot seed %q: %w", path, err)
	}
	return nil
}

// ReaderProcessor reads a file and upper-cases its contents
type ReaderProcessor struct {
	Fs afero.Fs
}

func NewReaderProcessor(fs afero.Fs) *ReaderProcessor {
	return &ReaderProcessor{Fs: fs}
}

func (r *ReaderProcessor) ReadAndProcess(path string) (string, error) {
	raw, err := afero.ReadFile(r.Fs, path)
	if err != nil {
		return "", fmt.Errorf("cannot read %q: %w", path, err)
	}
	return strings.ToUpper(string(raw)), nil
}

type Saver struct {
	Fs afero.Fs
	P  output.Printer
}

func NewSaver(fs afero.Fs, p output.Printer) *Saver {
	return &Saver{Fs: fs, P: p}
}

func (s *Saver) SaveToFile(path string, data string) error {
	if s.P == nil {
		return fmt.Errorf("cannot save %q: %w", path, output.ErrNoPrinter)
	}
	if err := afero.WriteFile(s.Fs, path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("cannot save %q: %w", path, err)
	}
	logrus.Debugf("Wrote %s to %s", humanize.Bytes(uint64(len(data))), path)
	_, err := s.P.Printf("Saving processed data to %s\n", path)
	return err
}

// Record describes a single file operation
type Record struct {
	ID        uuid.UUID
	Operation string
	File      string
	Timestamp time.Time
}

func (r Record) String() string {
	return fmt.Sprintf("Operation: %s, File: %s, Timestamp: %s", r.Operation, r.File, r.Timestamp.UTC().Format(time.RFC3339))
}

type OperationLogger struct {
	L     logrus.FieldLogger
	Clock func() time.Time
}

func NewOperationLogger(l logrus.FieldLogger, clock func() time.Time) *OperationLogger {
	if clock == nil {
		clock = time.Now
	}
	return &OperationLogger{L: l, Clock: clock}
}

func (o *OperationLogger) LogOperation(operation string, path string) Record {
	rec := Record{
		ID:        uuid.New(),
		Operation: operation,
		File:      path,
		Timestamp: o.Clock(),
	}
	o.L.WithFields(logrus.Fields{
		"id":        rec.ID.String(),
		"operation": rec.Operation,
		"file":      rec.File,
	}).Info(rec.String())
	return rec
}
