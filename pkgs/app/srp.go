package app

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/keskad/solid/pkgs/files"
	"github.com/keskad/solid/pkgs/rigid"
)

type readerProcessor interface {
	ReadAndProcess(path string) (string, error)
}

type saver interface {
	SaveToFile(path string, data string) error
}

type operationLogger interface {
	LogOperation(operation string, path string) files.Record
}

// runFilePipeline reads, saves and records, in that order
func runFilePipeline(reader readerProcessor, s saver, log operationLogger, path string) (files.Record, error) {
	data, err := reader.ReadAndProcess(path)
	if err != nil {
		return files.Record{}, err
	}
	if err := s.SaveToFile(path, data); err != nil {
		return files.Record{}, err
	}
	return log.LogOperation("Save", path), nil
}

func (app *SolidApp) filePath(path string) string {
	if path == "" {
		return app.Config.Files.Path
	}
	return path
}

// FilesAction processes a sample file with three independent components
func (app *SolidApp) FilesAction(path string) error {
	path = app.filePath(path)

	exists, err := afero.Exists(app.Fs, path)
	if err != nil {
		return fmt.Errorf("cannot check %q: %w", path, err)
	}
	if !exists {
		logrus.Debugf("Seeding %s with sample data", path)
		if err := files.Seed(app.Fs, path); err != nil {
			return err
		}
	}

	rec, err := runFilePipeline(
		files.NewReaderProcessor(app.Fs),
		files.NewSaver(app.Fs, app.P),
		files.NewOperationLogger(app.Log, app.Clock),
		path,
	)
	if err != nil {
		return err
	}
	_, _ = app.P.Printf("%s\n", rec)
	return nil
}

// FilesProblemAction does the same with one type doing everything
func (app *SolidApp) FilesProblemAction(path string) error {
	path = app.filePath(path)
	handler := rigid.FileHandler{P: app.P, Clock: app.Clock}

	data := handler.ReadAndProcess(path)
	handler.SaveToFile(path, data)
	handler.LogOperation("Save", path)
	return nil
}
