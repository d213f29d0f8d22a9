package shapes

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keskad/solid/pkgs/output"
)

// hexagon is defined outside the built-in set and used without changing any of them
type hexagon struct {
	side float64
}

func (h hexagon) Area() float64      { return 3 * math.Sqrt(3) / 2 * h.side * h.side }
func (h hexagon) Perimeter() float64 { return 6 * h.side }
func (h hexagon) Draw() string       { return "Drawing a hexagon" }

func mustShape(t *testing.T, s Shape, err error) Shape {
	t.Helper()
	require.NoError(t, err)
	return s
}

func TestArea(t *testing.T) {
	rect, rectErr := NewRectangle(6, 8)
	circle, circleErr := NewCircle(5)
	triangle, triangleErr := NewTriangle(3, 4)
	square, squareErr := NewSquare(5)

	cases := []struct {
		name     string
		shape    Shape
		expected float64
	}{
		{"rectangle", mustShape(t, rect, rectErr), 48},
		{"circle", mustShape(t, circle, circleErr), 78.53981633974483},
		{"triangle", mustShape(t, triangle, triangleErr), 6},
		{"square", mustShape(t, square, squareErr), 25},
		{"hexagon", hexagon{side: 2}, 10.392304845413264},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, c.shape.Area(), 1e-9)
		})
	}
}

func TestPerimeter(t *testing.T) {
	rect, _ := NewRectangle(6, 8)
	circle, _ := NewCircle(5)
	triangle, _ := NewTriangle(3, 4)
	square, _ := NewSquare(5)

	assert.Equal(t, 28.0, rect.Perimeter())
	assert.InDelta(t, 31.41592653589793, circle.Perimeter(), 1e-9)
	assert.Equal(t, 12.0, triangle.Perimeter())
	assert.Equal(t, 20.0, square.Perimeter())
}

func TestPrintArea_NoTypeBranching(t *testing.T) {
	rect, _ := NewRectangle(6, 8)
	circle, _ := NewCircle(5)
	triangle, _ := NewTriangle(3, 4)

	buf := &bytes.Buffer{}
	reporter := NewReporter(output.WriterPrinter{W: buf}, 2)
	for _, s := range []Surface{rect, circle, triangle} {
		require.NoError(t, reporter.PrintArea(s))
	}

	assert.Equal(t, "Area: 48.00\nArea: 78.54\nArea: 6.00\n", buf.String())
}

func TestPrintArea_ShortestFormat(t *testing.T) {
	rect, _ := NewRectangle(6, 8)
	buf := &bytes.Buffer{}

	require.NoError(t, PrintArea(output.WriterPrinter{W: buf}, rect))
	assert.Equal(t, "Area: 48\n", buf.String())
}

func TestPrintShapeInfo_SquareSubstitutesRectangle(t *testing.T) {
	rect, _ := NewRectangle(5, 10)
	square, _ := NewSquare(5)
	buf := &bytes.Buffer{}
	p := output.WriterPrinter{W: buf}

	require.NoError(t, PrintShapeInfo(p, rect))
	require.NoError(t, PrintShapeInfo(p, square))

	expected := "Area: 50\nDrawing a rectangle with width 5 and height 10\n" +
		"Area: 25\nDrawing a square with side length 5\n"
	assert.Equal(t, expected, buf.String())
}

func TestReporter_NilArguments(t *testing.T) {
	buf := &bytes.Buffer{}
	reporter := NewReporter(output.WriterPrinter{W: buf}, 2)

	assert.ErrorIs(t, reporter.PrintArea(nil), ErrNoShape)
	assert.ErrorIs(t, reporter.PrintPerimeter(nil), ErrNoShape)
	assert.ErrorIs(t, reporter.PrintShapeInfo(nil), ErrNoShape)

	square, _ := NewSquare(1)
	assert.ErrorIs(t, NewReporter(nil, 2).PrintArea(square), ErrNoPrinter)
	assert.Empty(t, buf.String())
}

func TestNewShapes_InvalidDimensions(t *testing.T) {
	_, err := NewRectangle(-1, 2)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewSquare(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewCircle(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidDimension)
	_, err = NewTriangle(3, -4)
	assert.ErrorIs(t, err, ErrInvalidDimension)

	zero, err := NewCircle(0)
	assert.NoError(t, err, "degenerate shapes are allowed")
	assert.Equal(t, 0.0, zero.Area())
}

func TestCalculator(t *testing.T) {
	rect, _ := NewRectangle(6, 8)
	triangle, _ := NewTriangle(3, 4)
	calc := Calculator{}

	area, err := calc.TotalArea(rect, triangle, hexagon{side: 0})
	require.NoError(t, err)
	assert.Equal(t, 54.0, area)

	perimeter, err := calc.TotalPerimeter(rect, triangle)
	require.NoError(t, err)
	assert.Equal(t, 40.0, perimeter)

	_, err = calc.TotalArea(rect, nil)
	assert.ErrorIs(t, err, ErrNoShape)

	empty, err := calc.TotalPerimeter()
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty)
}
