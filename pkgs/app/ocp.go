package app

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/keskad/solid/pkgs/rigid"
	"github.com/keskad/solid/pkgs/shapes"
	"github.com/keskad/solid/pkgs/syntax"
)

func (app *SolidApp) buildShapes(entries []syntax.ShapeEntry) ([]shapes.Shape, error) {
	result := make([]shapes.Shape, 0, len(entries))
	for _, entry := range entries {
		s, err := app.Shapes.New(entry.Kind, entry.Dims)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("Built %s from %v", entry.Kind, entry.Dims)
		result = append(result, s)
	}
	return result, nil
}

func (app *SolidApp) reporter() *shapes.Reporter {
	return shapes.NewReporter(app.P, app.Config.Shapes.Precision)
}

// AreaAction prints the area of every shape and their sum
func (app *SolidApp) AreaAction(entries []syntax.ShapeEntry) error {
	built, err := app.buildShapes(entries)
	if err != nil {
		return err
	}

	reporter := app.reporter()
	surfaces := make([]shapes.Surface, 0, len(built))
	for i, s := range built {
		_, _ = app.P.Printf("%s ", entries[i].Kind)
		if err := reporter.PrintArea(s); err != nil {
			return err
		}
		surfaces = append(surfaces, s)
	}

	total, err := shapes.Calculator{}.TotalArea(surfaces...)
	if err != nil {
		return err
	}
	_, _ = app.P.Printf("Total area: %s\n", strconv.FormatFloat(total, 'f', app.Config.Shapes.Precision, 64))
	return nil
}

// PerimeterAction prints the perimeter of every shape and their sum
func (app *SolidApp) PerimeterAction(entries []syntax.ShapeEntry) error {
	built, err := app.buildShapes(entries)
	if err != nil {
		return err
	}

	reporter := app.reporter()
	bounded := make([]shapes.Bounded, 0, len(built))
	for i, s := range built {
		_, _ = app.P.Printf("%s ", entries[i].Kind)
		if err := reporter.PrintPerimeter(s); err != nil {
			return err
		}
		bounded = append(bounded, s)
	}

	total, err := shapes.Calculator{}.TotalPerimeter(bounded...)
	if err != nil {
		return err
	}
	_, _ = app.P.Printf("Total perimeter: %s\n", strconv.FormatFloat(total, 'f', app.Config.Shapes.Precision, 64))
	return nil
}

// AreaProblemAction dispatches every kind to its own calculator method
func (app *SolidApp) AreaProblemAction(entries []syntax.ShapeEntry) error {
	calc := rigid.ShapeCalculator{}
	for _, entry := range entries {
		var area float64
		switch {
		case (entry.Kind == "rect" || entry.Kind == "rectangle") && len(entry.Dims) == 2:
			area = calc.RectangleArea(entry.Dims[0], entry.Dims[1])
		case entry.Kind == "circle" && len(entry.Dims) == 1:
			area = calc.CircleArea(entry.Dims[0])
		case entry.Kind == "triangle" && len(entry.Dims) == 2:
			area = calc.TriangleArea(entry.Dims[0], entry.Dims[1])
		default:
			return fmt.Errorf("ShapeCalculator has no method for %s%v, the calculator has to be edited to support it", entry.Kind, entry.Dims)
		}
		_, _ = app.P.Printf("%s Area: %s\n", entry.Kind, strconv.FormatFloat(area, 'f', app.Config.Shapes.Precision, 64))
	}
	return nil
}
