package app

import (
	"github.com/keskad/solid/pkgs/rigid"
	"github.com/keskad/solid/pkgs/syntax"
)

// ShapeInfoAction prints area and drawing for each shape. Without entries a
// rectangle and a square of the given size are used.
func (app *SolidApp) ShapeInfoAction(entries []syntax.ShapeEntry, width, height float64) error {
	if len(entries) == 0 {
		entries = []syntax.ShapeEntry{
			{Kind: "rectangle", Dims: []float64{width, height}},
			{Kind: "square", Dims: []float64{width}},
		}
	}

	built, err := app.buildShapes(entries)
	if err != nil {
		return err
	}

	reporter := app.reporter()
	for _, s := range built {
		if err := reporter.PrintShapeInfo(s); err != nil {
			return err
		}
	}
	return nil
}

// ResizeProblemAction resizes a rectangle and a square that inherits from it
// and shows where the square stops behaving like a rectangle
func (app *SolidApp) ResizeProblemAction(width, height float64) error {
	candidates := []struct {
		name  string
		shape rigid.Resizable
	}{
		{"rectangle", &rigid.Rectangle{Width: 1, Height: 1}},
		{"square", rigid.NewSquare(1)},
	}

	for _, c := range candidates {
		got, expected := rigid.Resize(c.shape, width, height)
		verdict := "ok"
		if got != expected {
			verdict = "contract broken"
		}
		_, _ = app.P.Printf("%s: SetWidth(%g) SetHeight(%g) expected area %g, got %g (%s)\n", c.name, width, height, expected, got, verdict)
	}
	return nil
}
