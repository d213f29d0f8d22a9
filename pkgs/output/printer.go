package output

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoPrinter is returned by consumers that were given nowhere to print
var ErrNoPrinter = errors.New("no printer given")

type Printer interface {
	Printf(format string, a ...any) (n int, err error)
}

type ConsolePrinter struct{}

func (c ConsolePrinter) Printf(format string, a ...any) (n int, err error) {
	return fmt.Printf(format, a...)
}

// WriterPrinter prints to an arbitrary writer, tests pass a bytes.Buffer here
type WriterPrinter struct {
	W io.Writer
}

func (w WriterPrinter) Printf(format string, a ...any) (n int, err error) {
	return fmt.Fprintf(w.W, format, a...)
}
