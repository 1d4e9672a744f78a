package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func smallGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.Parse([][]string{
		{"S", " ", "#"},
		{" ", " ", "#"},
		{"#", " ", "E"},
	})
	require.NoError(t, err)

	return g
}

func TestPath_Accessors(t *testing.T) {
	var empty maze.Path
	assert.True(t, empty.Empty())
	_, ok := empty.Start()
	assert.False(t, ok)
	_, ok = empty.End()
	assert.False(t, ok)
	assert.Nil(t, empty.Clone())

	p := maze.Path{pos(0, 0), pos(0, 1)}
	assert.Equal(t, 2, p.Len())
	s, _ := p.Start()
	e, _ := p.End()
	assert.Equal(t, pos(0, 0), s)
	assert.Equal(t, pos(0, 1), e)
	assert.True(t, p.Contains(pos(0, 1)))
	assert.False(t, p.Contains(pos(1, 1)))

	c := p.Clone()
	c[0] = pos(9, 9)
	assert.Equal(t, pos(0, 0), p[0], "Clone must not alias")
}

func TestPath_Validate(t *testing.T) {
	g := smallGrid(t)
	good := maze.Path{pos(0, 0), pos(0, 1), pos(1, 1), pos(2, 1), pos(2, 2)}
	assert.NoError(t, good.Validate(g))

	cases := []struct {
		name string
		path maze.Path
		msg  string
	}{
		{"Empty", nil, "empty"},
		{"WrongStart", maze.Path{pos(0, 1), pos(1, 1), pos(2, 1), pos(2, 2)}, "not on the entry"},
		{"WrongEnd", maze.Path{pos(0, 0), pos(0, 1)}, "not on the exit"},
		{"Jump", maze.Path{pos(0, 0), pos(1, 1), pos(2, 1), pos(2, 2)}, "not a unit step"},
		{"Repeat", maze.Path{pos(0, 0), pos(0, 1), pos(0, 0), pos(0, 1), pos(1, 1), pos(2, 1), pos(2, 2)}, "repeated"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.path.Validate(g)
			assert.ErrorIs(t, err, maze.ErrInvalidPath)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestPath_Prefixes(t *testing.T) {
	p := maze.Path{pos(0, 0), pos(0, 1), pos(1, 1)}

	var got []maze.Path
	for prefix := range p.Prefixes() {
		got = append(got, prefix)
	}
	require.Len(t, got, 3)
	assert.Equal(t, maze.Path{pos(0, 0)}, got[0])
	assert.Equal(t, maze.Path{pos(0, 0), pos(0, 1)}, got[1])
	assert.Equal(t, p, got[2])

	// independent copies
	got[2][0] = pos(7, 7)
	assert.Equal(t, pos(0, 0), p[0])

	// replayable and stoppable
	n := 0
	for range p.Prefixes() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)

	var none maze.Path
	for range none.Prefixes() {
		t.Fatal("empty path must yield nothing")
	}
}
