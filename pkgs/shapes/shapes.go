// Package shapes holds geometric figures and the code that reports on them.
//
// Each figure is an independent type. Reporting code depends on the narrow
// capabilities below, never on a concrete figure, so adding a new figure
// (in this package or anywhere else) needs no change to existing code.
package shapes

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned for negative, NaN or infinite dimensions
var ErrInvalidDimension = errors.New("invalid dimension")

// Surface can compute its area
type Surface interface {
	Area() float64
}

// Bounded can compute its perimeter
type Bounded interface {
	Perimeter() float64
}

// Drawer describes how the figure is drawn
type Drawer interface {
	Draw() string
}

// Figure is what PrintShapeInfo needs
type Figure interface {
	Surface
	Drawer
}

type Shape interface {
	Surface
	Bounded
	Drawer
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Triangle)(nil)
)

func validate(name string, value float64) error {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s=%v: %w", name, value, ErrInvalidDimension)
	}
	return nil
}

type Rectangle struct {
	width  float64
	height float64
}

func NewRectangle(width, height float64) (*Rectangle, error) {
	if err := validate("width", width); err != nil {
		return nil, err
	}
	if err := validate("height", height); err != nil {
		return nil, err
	}
	return &Rectangle{width: width, height: height}, nil
}

func (r *Rectangle) Area() float64 {
	return r.width * r.height
}

func (r *Rectangle) Perimeter() float64 {
	return 2 * (r.width + r.height)
}

func (r *Rectangle) Draw() string {
	return fmt.Sprintf("Drawing a rectangle with width %g and height %g", r.width, r.height)
}

// Square is not a Rectangle: it shares the capabilities, not the implementation
type Square struct {
	side float64
}

func NewSquare(side float64) (*Square, error) {
	if err := validate("side", side); err != nil {
		return nil, err
	}
	return &Square{side: side}, nil
}

func (s *Square) Area() float64 {
	return s.side * s.side
}

func (s *Square) Perimeter() float64 {
	return 4 * s.side
}

func (s *Square) Draw() string {
	return fmt.Sprintf("Drawing a square with side length %g", s.side)
}

type Circle struct {
	radius float64
}

func NewCircle(radius float64) (*Circle, error) {
	if err := validate("radius", radius); err != nil {
		return nil, err
	}
	return &Circle{radius: radius}, nil
}

func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c *Circle) Perimeter() float64 {
	return 2 * math.Pi * c.radius
}

func (c *Circle) Draw() string {
	return fmt.Sprintf("Drawing a circle with radius %g", c.radius)
}

// Triangle is a right triangle given by its two legs
type Triangle struct {
	base   float64
	height float64
}

func NewTriangle(base, height float64) (*Triangle, error) {
	if err := validate("base", base); err != nil {
		return nil, err
	}
	if err := validate("height", height); err != nil {
		return nil, err
	}
	return &Triangle{base: base, height: height}, nil
}

func (t *Triangle) Area() float64 {
	return 0.5 * t.base * t.height
}

// Perimeter adds the hypotenuse to both legs
func (t *Triangle) Perimeter() float64 {
	return t.base + t.height + math.Hypot(t.base, t.height)
}

func (t *Triangle) Draw() string {
	return fmt.Sprintf("Drawing a triangle with base %g and height %g", t.base, t.height)
}
