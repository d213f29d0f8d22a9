// Package rigid keeps the tightly coupled designs that the other packages
// replace. They work, but every one of them has to be edited, stubbed or
// special-cased as soon as a new variant shows up.
package rigid

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/keskad/solid/pkgs/output"
)

// ErrUnsupportedOperation is what a device returns for a method it was forced to carry
var ErrUnsupportedOperation = errors.New("unsupported operation")

// FileHandler reads, saves and logs all by itself
type FileHandler struct {
	P     output.Printer
	Clock func() time.Time
}

func (f *FileHandler) ReadAndProcess(path string) string {
	return strings.ToUpper("Raw data from file")
}

func (f *FileHandler) SaveToFile(path string, data string) {
	_, _ = f.P.Printf("Saving processed data to %s\n", path)
}

func (f *FileHandler) LogOperation(operation string, path string) {
	now := time.Now
	if f.Clock != nil {
		now = f.Clock
	}
	_, _ = f.P.Printf("Operation: %s, File: %s, Timestamp: %s\n", operation, path, now().UTC().Format(time.RFC3339))
}

// ShapeCalculator grows a pair of methods for every new shape
type ShapeCalculator struct{}

func (ShapeCalculator) RectangleArea(width, height float64) float64 {
	return width * height
}

func (ShapeCalculator) RectanglePerimeter(width, height float64) float64 {
	return 2 * (width + height)
}

func (ShapeCalculator) CircleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

func (ShapeCalculator) CirclePerimeter(radius float64) float64 {
	return 2 * math.Pi * radius
}

func (ShapeCalculator) TriangleArea(base, height float64) float64 {
	return 0.5 * base * height
}

func (ShapeCalculator) TrianglePerimeter(a, b, c float64) float64 {
	return a + b + c
}

type Rectangle struct {
	Width  float64
	Height float64
}

func (r *Rectangle) SetWidth(w float64)  { r.Width = w }
func (r *Rectangle) SetHeight(h float64) { r.Height = h }

func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Resizable is the contract callers of Rectangle rely on
type Resizable interface {
	SetWidth(w float64)
	SetHeight(h float64)
	Area() float64
}

// Square reuses Rectangle and has to keep both sides in sync, so setting
// the width silently changes the height too.
type Square struct {
	Rectangle
}

func NewSquare(side float64) *Square {
	return &Square{Rectangle{Width: side, Height: side}}
}

func (s *Square) SetWidth(w float64) {
	s.Width = w
	s.Height = w
}

func (s *Square) SetHeight(h float64) {
	s.Width = h
	s.Height = h
}

// Resize sets both sides and returns the area the caller expects to get
func Resize(r Resizable, width, height float64) (got float64, expected float64) {
	r.SetWidth(width)
	r.SetHeight(height)
	return r.Area(), width * height
}

// ElectronicDevice bundles printing and scanning for every device
type ElectronicDevice interface {
	Print() (string, error)
	Scan() (string, error)
}

type AllInOnePrinter struct{}

func (AllInOnePrinter) Print() (string, error) { return "Printing...", nil }
func (AllInOnePrinter) Scan() (string, error)  { return "Scanning...", nil }

type FaxMachine struct{}

func (FaxMachine) Print() (string, error) { return "Printing fax...", nil }

// Scan exists only to satisfy ElectronicDevice
func (FaxMachine) Scan() (string, error) { return "", ErrUnsupportedOperation }

type ConsoleLogger struct{ P output.Printer }

func (c ConsoleLogger) Log(message string) { _, _ = c.P.Printf("Console Log: %s\n", message) }

type FileLogger struct{ P output.Printer }

func (f FileLogger) Log(message string) { _, _ = f.P.Printf("File Log: %s\n", message) }

// Logger builds its own destinations and needs a new method per destination
type Logger struct {
	console ConsoleLogger
	file    FileLogger
}

func NewLogger(p output.Printer) *Logger {
	return &Logger{console: ConsoleLogger{P: p}, file: FileLogger{P: p}}
}

func (l *Logger) LogToConsole(message string) { l.console.Log(message) }
func (l *Logger) LogToFile(message string)    { l.file.Log(message) }
