package shapes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrDuplicateShape = errors.New("shape already registered")
	ErrDimensionCount = errors.New("wrong number of dimensions")
	ErrNoFactory      = errors.New("no shape factory given")
)

func normalizeKind(kind string) string {
	return strings.ToLower(strings.TrimSpace(kind))
}

// Factory builds a Shape out of its dimensions
type Factory func(dims []float64) (Shape, error)

// Registry resolves shape kinds by name. Kinds defined outside this package
// are added with Register.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry with the built-in shapes
func NewRegistry() *Registry {
	r := &Registry{factories: map[string]Factory{}}
	rectangle := withDims(2, func(d []float64) (Shape, error) { return NewRectangle(d[0], d[1]) })
	_ = r.Register("rectangle", rectangle)
	_ = r.Register("rect", rectangle)
	_ = r.Register("square", withDims(1, func(d []float64) (Shape, error) { return NewSquare(d[0]) }))
	_ = r.Register("circle", withDims(1, func(d []float64) (Shape, error) { return NewCircle(d[0]) }))
	_ = r.Register("triangle", withDims(2, func(d []float64) (Shape, error) { return NewTriangle(d[0], d[1]) }))
	return r
}

func (r *Registry) Register(kind string, factory Factory) error {
	kind = normalizeKind(kind)
	if kind == "" {
		return fmt.Errorf("cannot register an empty kind: %w", ErrUnknownShape)
	}
	if factory == nil {
		return fmt.Errorf("cannot register %q: %w", kind, ErrNoFactory)
	}
	if r.factories == nil {
		r.factories = map[string]Factory{}
	}
	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%q: %w", kind, ErrDuplicateShape)
	}
	r.factories[kind] = factory
	return nil
}

func (r *Registry) New(kind string, dims []float64) (Shape, error) {
	factory, ok := r.factories[normalizeKind(kind)]
	if !ok {
		return nil, fmt.Errorf("%q (known: %s): %w", kind, strings.Join(r.Kinds(), ", "), ErrUnknownShape)
	}
	shape, err := factory(dims)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s: %w", kind, err)
	}
	return shape, nil
}

// Kinds lists registered names in alphabetical order
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// withDims guards a constructor against a wrong dimension count
func withDims(count int, build func(d []float64) (Shape, error)) Factory {
	return func(dims []float64) (Shape, error) {
		if len(dims) != count {
			return nil, fmt.Errorf("expected %d, got %d: %w", count, len(dims), ErrDimensionCount)
		}
		return build(dims)
	}
}
