package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		name    string
		art     []string
		wantErr error
		rows    int
		cols    int
		size    int
	}{
		{"single", []string{"#"}, nil, 1, 1, 1},
		{"ell", []string{"#.", "#.", "##"}, nil, 3, 2, 4},
		{"tee", []string{"###", ".#."}, nil, 2, 3, 4},
		{"empty art", nil, ErrEmptyShape, 0, 0, 0},
		{"all dots", []string{"..", ".."}, ErrEmptyShape, 0, 0, 0},
		{"ragged", []string{"##", "#"}, ErrRaggedShape, 0, 0, 0},
		{"loose top row", []string{"..", "##"}, ErrLooseBorder, 0, 0, 0},
		{"loose right column", []string{"#.", "#."}, ErrLooseBorder, 0, 0, 0},
		{"too wide", []string{"#########"}, ErrShapeTooLarge, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseShape(tt.art...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, s.Rows())
			assert.Equal(t, tt.cols, s.Cols())
			assert.Equal(t, tt.size, s.Size())
		})
	}
}

func TestParseShapeRejectsUnknownRune(t *testing.T) {
	_, err := ParseShape("#x")
	assert.Error(t, err)
}

func TestNewShapeCopiesInput(t *testing.T) {
	m := [][]bool{{true, true}}
	s, err := NewShape(m)
	require.NoError(t, err)

	m[0][1] = false
	assert.True(t, s.At(0, 1), "shape must not alias the caller's matrix")

	got := s.Matrix()
	got[0][0] = false
	assert.True(t, s.At(0, 0), "Matrix must return a copy")
}

func TestShapeCellsAndString(t *testing.T) {
	s := MustShape(".##", "##.")
	assert.Equal(t, []Offset{{0, 1}, {0, 2}, {1, 0}, {1, 1}}, s.Cells())
	assert.Equal(t, ".##|##.", s.String())
	assert.False(t, s.At(-1, 0))
	assert.False(t, s.At(0, 3))
}

func TestMustShapePanics(t *testing.T) {
	assert.Panics(t, func() { MustShape("#", "##") })
}

func TestCatalog(t *testing.T) {
	templates := AllShapeTemplates()
	require.NotEmpty(t, templates)
	assert.Equal(t, len(templates), len(Templates()))

	for _, tmpl := range Templates() {
		s := tmpl.Shape
		assert.Positive(t, s.Size(), tmpl.Name)
		assert.LessOrEqual(t, s.Rows(), BoardSize, tmpl.Name)
		assert.LessOrEqual(t, s.Cols(), BoardSize, tmpl.Name)
		assert.Equal(t, tmpl.Name, TemplateName(s))
	}

	// Mutating the returned slice must not affect later calls.
	templates[0] = MustShape("##")
	assert.Equal(t, "single", TemplateName(AllShapeTemplates()[0]))
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"single", []string{"#"}, []string{"#"}},
		{"horizontal bar", []string{"####"}, []string{"#", "#", "#", "#"}},
		{"vertical bar", []string{"#", "#", "#"}, []string{"###"}},
		{"ell", []string{"#.", "#.", "##"}, []string{"###", "#.."}},
		{"tee", []string{"###", ".#."}, []string{".#", "##", ".#"}},
		{"corner", []string{"#.", "##"}, []string{"##", "#."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateClockwise(MustShape(tt.in...))
			want := MustShape(tt.want...)
			assert.True(t, got.Equal(want), "RotateClockwise(%s) = %s, want %s", MustShape(tt.in...), got, want)
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, tmpl := range Templates() {
		s := tmpl.Shape
		r := s
		for i := 0; i < 4; i++ {
			r = RotateClockwise(r)
			assert.Equal(t, s.Size(), r.Size(), "%s: rotation must preserve cell count", tmpl.Name)
		}
		assert.True(t, s.Equal(r), "%s: four rotations = %s, want %s", tmpl.Name, r, s)

		once := RotateClockwise(s)
		assert.Equal(t, s.Rows(), once.Cols(), tmpl.Name)
		assert.Equal(t, s.Cols(), once.Rows(), tmpl.Name)
	}
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	s := MustShape("#.", "##")
	_ = RotateClockwise(s)
	assert.Equal(t, "#.|##", s.String())
}

func TestParseColor(t *testing.T) {
	for _, c := range append(ClassicPalette(), SpecialPalette()...) {
		got, ok := ParseColor(c.String())
		assert.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}

	got, ok := ParseColor("mauve")
	assert.False(t, ok)
	assert.Equal(t, ColorRed, got)

	assert.False(t, ColorPurple.IsSpecial())
	assert.True(t, ColorGold.IsSpecial())
}
