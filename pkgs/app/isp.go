package app

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/keskad/solid/pkgs/devices"
	"github.com/keskad/solid/pkgs/rigid"
)

// DevicesAction prints on every printing device and scans on every scanning one
func (app *SolidApp) DevicesAction() error {
	office := devices.NewOffice(app.P)

	printers := []devices.Printable{devices.AllInOnePrinter{}, devices.FaxMachine{}}
	scanners := []devices.Scannable{devices.AllInOnePrinter{}}

	for _, p := range printers {
		if err := office.PrintWith(p); err != nil {
			return err
		}
	}
	for _, s := range scanners {
		if err := office.ScanWith(s); err != nil {
			return err
		}
	}
	return nil
}

// DevicesProblemAction uses the one interface every device is forced to implement
func (app *SolidApp) DevicesProblemAction() error {
	all := []struct {
		name   string
		device rigid.ElectronicDevice
	}{
		{"all-in-one", rigid.AllInOnePrinter{}},
		{"fax", rigid.FaxMachine{}},
	}

	for _, d := range all {
		printed, err := d.device.Print()
		if err != nil {
			return fmt.Errorf("%s cannot print: %w", d.name, err)
		}
		_, _ = app.P.Printf("%s\n", printed)

		scanned, err := d.device.Scan()
		if errors.Is(err, rigid.ErrUnsupportedOperation) {
			logrus.Warnf("%s was forced to implement Scan", d.name)
			_, _ = app.P.Printf("%s: scan: %s\n", d.name, err)
			continue
		}
		if err != nil {
			return err
		}
		_, _ = app.P.Printf("%s\n", scanned)
	}
	return nil
}
