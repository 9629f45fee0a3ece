package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLines(t *testing.T) {
	tests := []struct {
		name      string
		board     []string
		wantCount int
		want      []string
	}{
		{
			name: "nothing complete",
			board: []string{
				"#######.",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
			wantCount: 0,
			want: []string{
				"#######.",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
		},
		{
			name: "one row, cells above stay put",
			board: []string{
				"..#.....",
				"########",
				"...#....",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
			wantCount: 1,
			want: []string{
				"..#.....",
				"........",
				"...#....",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
		},
		{
			name: "row and column share a cell",
			board: []string{
				"########",
				"#.......",
				"#.......",
				"#.......",
				"#.......",
				"#.......",
				"#......#",
				"#.......",
			},
			wantCount: 2,
			want: []string{
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				".......#",
				"........",
			},
		},
		{
			name: "two rows and one column",
			board: []string{
				"########",
				"########",
				"....#...",
				"....#...",
				"....#...",
				"....#...",
				"....#...",
				"##..#...",
			},
			wantCount: 3,
			want: []string{
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"##......",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := ResolveLines(boardFrom(t, tt.board...))
			assert.Equal(t, tt.wantCount, n)
			assert.Equal(t, boardFrom(t, tt.want...), got)
		})
	}
}

func TestResolveLinesFullBoard(t *testing.T) {
	var b Board
	for r := range BoardSize {
		for c := range BoardSize {
			b[r][c] = Occupied(ColorRed)
		}
	}
	got, n := ResolveLines(b)
	assert.Equal(t, 2*BoardSize, n)
	assert.True(t, got.IsEmpty())
}

func TestCompleteLines(t *testing.T) {
	b := boardFrom(t,
		"#.......",
		"########",
		"#.......",
		"#.......",
		"#.......",
		"#.......",
		"#.......",
		"#.......",
	)
	rows, cols := CompleteLines(b)
	assert.Equal(t, []int{1}, rows)
	assert.Equal(t, []int{0}, cols)
}
