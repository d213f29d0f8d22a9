// Package devices models office equipment by what each device can actually do.
package devices

import (
	"errors"
	"fmt"

	"github.com/keskad/solid/pkgs/output"
)

var ErrNoDevice = errors.New("no device given")

type Printable interface {
	Print() string
}

type Scannable interface {
	Scan() string
}

// ElectronicDevice is only for devices that really do both
type ElectronicDevice interface {
	Printable
	Scannable
}

var (
	_ ElectronicDevice = AllInOnePrinter{}
	_ Printable        = FaxMachine{}
)

type AllInOnePrinter struct{}

func (AllInOnePrinter) Print() string {
	return "Printing..."
}

func (AllInOnePrinter) Scan() string {
	return "Scanning..."
}

// FaxMachine prints received faxes and nothing else
type FaxMachine struct{}

func (FaxMachine) Print() string {
	return "Printing fax..."
}

// Office runs jobs on whatever device it is handed
type Office struct {
	P output.Printer
}

func NewOffice(p output.Printer) *Office {
	return &Office{P: p}
}

func (o *Office) PrintWith(device Printable) error {
	if device == nil {
		return fmt.Errorf("cannot print: %w", ErrNoDevice)
	}
	if o.P == nil {
		return fmt.Errorf("cannot print: %w", output.ErrNoPrinter)
	}
	_, err := o.P.Printf("%s\n", device.Print())
	return err
}

func (o *Office) ScanWith(device Scannable) error {
	if device == nil {
		return fmt.Errorf("cannot scan: %w", ErrNoDevice)
	}
	if o.P == nil {
		return fmt.Errorf("cannot scan: %w", output.ErrNoPrinter)
	}
	_, err := o.P.Printf("%s\n", device.Scan())
	return err
}
