package shapes

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/keskad/solid/pkgs/output"
)

var (
	// ErrNoShape is returned when a consumer receives a nil capability
	ErrNoShape = errors.New("no shape given")
	// ErrNoPrinter is returned when a Reporter has nowhere to print
	ErrNoPrinter = output.ErrNoPrinter
)

// Reporter prints facts about figures. Precision below zero prints the
// shortest representation that round-trips.
type Reporter struct {
	P         output.Printer
	Precision int
}

func NewReporter(p output.Printer, precision int) *Reporter {
	return &Reporter{P: p, Precision: precision}
}

func (r *Reporter) format(value float64) string {
	return strconv.FormatFloat(value, 'f', r.Precision, 64)
}

func (r *Reporter) PrintArea(s Surface) error {
	if s == nil {
		return fmt.Errorf("cannot print area: %w", ErrNoShape)
	}
	if r.P == nil {
		return fmt.Errorf("cannot print area: %w", ErrNoPrinter)
	}
	_, err := r.P.Printf("Area: %s\n", r.format(s.Area()))
	return err
}

func (r *Reporter) PrintPerimeter(b Bounded) error {
	if b == nil {
		return fmt.Errorf("cannot print perimeter: %w", ErrNoShape)
	}
	if r.P == nil {
		return fmt.Errorf("cannot print perimeter: %w", ErrNoPrinter)
	}
	_, err := r.P.Printf("Perimeter: %s\n", r.format(b.Perimeter()))
	return err
}

// PrintShapeInfo prints the area followed by the drawing
func (r *Reporter) PrintShapeInfo(f Figure) error {
	if f == nil {
		return fmt.Errorf("cannot print shape info: %w", ErrNoShape)
	}
	if err := r.PrintArea(f); err != nil {
		return err
	}
	_, err := r.P.Printf("%s\n", f.Draw())
	return err
}

func PrintArea(p output.Printer, s Surface) error {
	return NewReporter(p, -1).PrintArea(s)
}

func PrintShapeInfo(p output.Printer, f Figure) error {
	return NewReporter(p, -1).PrintShapeInfo(f)
}

// Calculator aggregates over any number of figures
type Calculator struct{}

func (Calculator) TotalArea(surfaces ...Surface) (float64, error) {
	total := 0.0
	for i, s := range surfaces {
		if s == nil {
			return 0, fmt.Errorf("cannot sum areas, argument %d: %w", i, ErrNoShape)
		}
		total += s.Area()
	}
	logrus.Debugf("Summed area of %d shapes", len(surfaces))
	return total, nil
}

func (Calculator) TotalPerimeter(bounded ...Bounded) (float64, error) {
	total := 0.0
	for i, b := range bounded {
		if b == nil {
			return 0, fmt.Errorf("cannot sum perimeters, argument %d: %w", i, ErrNoShape)
		}
		total += b.Perimeter()
	}
	logrus.Debugf("Summed perimeter of %d shapes", len(bounded))
	return total, nil
}
