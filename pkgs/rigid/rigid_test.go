package rigid

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/keskad/solid/pkgs/output"
)

func TestResize_SquareBreaksRectangleContract(t *testing.T) {
	got, expected := Resize(&Rectangle{Width: 1, Height: 1}, 4, 5)
	assert.Equal(t, expected, got, "rectangle honours the contract")

	got, expected = Resize(NewSquare(1), 4, 5)
	assert.Equal(t, 20.0, expected)
	assert.Equal(t, 25.0, got, "square narrows the setters, substituting it changes the result")
}

func TestFaxMachine_ForcedScanStub(t *testing.T) {
	devices := []ElectronicDevice{AllInOnePrinter{}, FaxMachine{}}

	out, err := devices[0].Scan()
	assert.Nil(t, err)
	assert.Equal(t, "Scanning...", out)

	_, err = devices[1].Scan()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestShapeCalculator(t *testing.T) {
	calc := ShapeCalculator{}
	assert.Equal(t, 48.0, calc.RectangleArea(6, 8))
	assert.Equal(t, 28.0, calc.RectanglePerimeter(6, 8))
	assert.InDelta(t, 78.54, calc.CircleArea(5), 0.01)
	assert.InDelta(t, 31.42, calc.CirclePerimeter(5), 0.01)
	assert.Equal(t, 6.0, calc.TriangleArea(3, 4))
	assert.Equal(t, 12.0, calc.TrianglePerimeter(3, 4, 5))
}

func TestFileHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	handler := FileHandler{P: output.WriterPrinter{W: buf}, Clock: func() time.Time { return at }}

	data := handler.ReadAndProcess("example.txt")
	handler.SaveToFile("example.txt", data)
	handler.LogOperation("Save", "example.txt")

	assert.Equal(t, "RAW DATA FROM FILE", data)
	assert.Equal(t, "Saving processed data to example.txt\n"+
		"Operation: Save, File: example.txt, Timestamp: 2024-03-01T00:00:00Z\n", buf.String())
}

func TestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(output.WriterPrinter{W: buf})
	logger.LogToConsole("a")
	logger.LogToFile("b")
	assert.Equal(t, "Console Log: a\nFile Log: b\n", buf.String())
}
