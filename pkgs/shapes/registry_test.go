package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BuiltIns(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"circle", "rect", "rectangle", "square", "triangle"}, r.Kinds())

	s, err := r.New("Rect", []float64{6, 8})
	require.NoError(t, err)
	assert.Equal(t, 48.0, s.Area())
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()

	_, err := r.New("octagon", []float64{1})
	assert.ErrorIs(t, err, ErrUnknownShape)

	_, err = r.New("circle", []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionCount)

	_, err = r.New("square", []float64{-3})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	assert.ErrorIs(t, r.Register("circle", nil), ErrDuplicateShape)
}

func TestRegistry_RegisterNewKind(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("hexagon", func(dims []float64) (Shape, error) {
		return hexagon{side: dims[0]}, nil
	}))

	s, err := r.New("hexagon", []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.Perimeter())
}

func TestRegistry_Register(t *testing.T) {
	unit := func([]float64) (Shape, error) { return NewSquare(1) }

	tests := []struct {
		name    string
		kind    string
		factory Factory
		wantErr error
	}{
		{name: "new kind", kind: "unit", factory: unit},
		{name: "padded kind", kind: " Unit ", factory: unit},
		{name: "nil factory", kind: "blob", factory: nil, wantErr: ErrNoFactory},
		{name: "empty kind", kind: "  ", factory: unit, wantErr: ErrUnknownShape},
		{name: "duplicate", kind: "circle", factory: unit, wantErr: ErrDuplicateShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.kind, tt.factory)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegistry_NilFactoryIsNeverStored(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.Register("blob", nil))

	_, err := r.New("blob", nil)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestRegistry_KindIsNormalized(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(" Hex ", func(dims []float64) (Shape, error) {
		return hexagon{side: dims[0]}, nil
	}))

	s, err := r.New(" hex ", []float64{1})
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.Perimeter())
}

func TestRegistry_ZeroValue(t *testing.T) {
	var r Registry
	require.NoError(t, r.Register("square", withDims(1, func(d []float64) (Shape, error) { return NewSquare(d[0]) })))

	s, err := r.New("square", []float64{3})
	require.NoError(t, err)
	assert.Equal(t, 9.0, s.Area())
	assert.Equal(t, []string{"square"}, r.Kinds())
}
