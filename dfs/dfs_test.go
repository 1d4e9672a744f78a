package dfs_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/maze"
)

func pos(r, c int) maze.Position { return maze.Position{Row: r, Col: c} }

func mustLoad(t testing.TB, src string) (*maze.Grid, maze.Position, maze.Position) {
	t.Helper()
	g, err := maze.Load(strings.NewReader(src))
	require.NoError(t, err)
	entry, ok := g.Entry()
	require.True(t, ok)
	exit, ok := g.Exit()
	require.True(t, ok)

	return g, entry, exit
}

const small = "S, ,#\n , ,#\n#, ,E\n"

func TestSearch_NilGrid(t *testing.T) {
	res, err := dfs.Search(nil, pos(0, 0), pos(0, 1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGridNil)
}

func TestSearch_BadInput(t *testing.T) {
	g, entry, exit := mustLoad(t, small)
	_, err := dfs.Search(g, entry, pos(0, 3))
	assert.ErrorIs(t, err, dfs.ErrOutOfBounds)
	_, err = dfs.Search(g, entry, exit, dfs.WithMaxExpansions(-3))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

// TestSearch_SmallMaze pins the path DFS commits to: South first, because
// the last neighbor pushed is the first one popped.
func TestSearch_SmallMaze(t *testing.T) {
	g, entry, exit := mustLoad(t, small)
	res, err := dfs.Search(g, entry, exit)
	require.NoError(t, err)
	assert.Equal(t, maze.Path{pos(0, 0), pos(1, 0), pos(1, 1), pos(2, 1), pos(2, 2)}, res.Path)
	assert.Equal(t, []maze.Position{pos(0, 0), pos(1, 0), pos(1, 1), pos(0, 1), pos(2, 1)}, res.Visited)
	assert.Equal(t, 7, res.Pushes)
	assert.NoError(t, res.Path.Validate(g))
}

// TestSearch_DuplicatePushes reproduces the pop-time visited check: (0,1) is
// pushed twice and the returned path is longer than the shortest one.
func TestSearch_DuplicatePushes(t *testing.T) {
	g, entry, exit := mustLoad(t, "S, ,E\n , , \n")
	pushed := map[maze.Position]int{}
	res, err := dfs.Search(g, entry, exit, dfs.WithOnPush(func(p maze.Position, _ int) { pushed[p]++ }))
	require.NoError(t, err)
	assert.Equal(t, maze.Path{pos(0, 0), pos(1, 0), pos(1, 1), pos(0, 1), pos(0, 2)}, res.Path)
	assert.Equal(t, 2, pushed[pos(0, 1)])
	assert.Greater(t, res.Path.Len(), 3, "DFS is not shortest-path")
}

func TestSearch_Adjacent(t *testing.T) {
	g, entry, exit := mustLoad(t, "S,E\n")
	res, err := dfs.Search(g, entry, exit)
	require.NoError(t, err)
	assert.Equal(t, maze.Path{pos(0, 0), pos(0, 1)}, res.Path)
}

func TestSearch_EnclosedEntry(t *testing.T) {
	g, entry, exit := mustLoad(t, "#,#,#\n#,S,#\n#,#, \n , ,E\n")
	res, err := dfs.Search(g, entry, exit)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path)
}

func TestSearch_OnVisitAbort(t *testing.T) {
	g, entry, exit := mustLoad(t, small)
	boom := errors.New("boom")
	res, err := dfs.Search(g, entry, exit, dfs.WithOnVisit(func(p maze.Position, depth int) error {
		if depth == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "dfs: OnVisit error at (1,1)")
	require.NotNil(t, res)
	assert.Nil(t, res.Path)
}

func TestSearch_MaxExpansions(t *testing.T) {
	g, entry, exit := mustLoad(t, small)
	res, err := dfs.Search(g, entry, exit, dfs.WithMaxExpansions(3))
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.False(t, res.Found())
	assert.Len(t, res.Visited, 3)
}

func TestSearch_Cancellation(t *testing.T) {
	g, entry, exit := mustLoad(t, small)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Search(g, entry, exit, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
