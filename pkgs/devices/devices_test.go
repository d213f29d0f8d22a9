package devices

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keskad/solid/pkgs/output"
)

// photocopier is a new scanner-only device that needed no change to Office
type photocopier struct{}

func (photocopier) Scan() string { return "Copying..." }

func TestOffice_PrintWith(t *testing.T) {
	buf := &bytes.Buffer{}
	office := NewOffice(output.WriterPrinter{W: buf})

	for _, device := range []Printable{AllInOnePrinter{}, FaxMachine{}} {
		require.NoError(t, office.PrintWith(device))
	}
	assert.Equal(t, "Printing...\nPrinting fax...\n", buf.String())
}

func TestOffice_ScanWith(t *testing.T) {
	buf := &bytes.Buffer{}
	office := NewOffice(output.WriterPrinter{W: buf})

	for _, device := range []Scannable{AllInOnePrinter{}, photocopier{}} {
		require.NoError(t, office.ScanWith(device))
	}
	assert.Equal(t, "Scanning...\nCopying...\n", buf.String())
}

func TestFaxMachine_IsNotScannable(t *testing.T) {
	var device any = FaxMachine{}
	_, scannable := device.(Scannable)
	assert.False(t, scannable, "fax machine must not carry a scan operation")

	_, printable := device.(Printable)
	assert.True(t, printable)
}

func TestOffice_NilDevice(t *testing.T) {
	office := NewOffice(output.WriterPrinter{W: &bytes.Buffer{}})
	assert.ErrorIs(t, office.PrintWith(nil), ErrNoDevice)
	assert.ErrorIs(t, office.ScanWith(nil), ErrNoDevice)
}

func TestOffice_NilPrinter(t *testing.T) {
	office := NewOffice(nil)
	assert.ErrorIs(t, office.PrintWith(FaxMachine{}), output.ErrNoPrinter)
	assert.ErrorIs(t, office.ScanWith(AllInOnePrinter{}), output.ErrNoPrinter)
}
