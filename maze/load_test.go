package maze_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/maze"
)

func TestLoad_Comma(t *testing.T) {
	g, err := maze.Load(strings.NewReader("S, ,#\n , ,#\n#, ,E\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.True(t, g.IsOpen(pos(1, 0)), "leading space must survive loading")
	entry, _ := g.Entry()
	exit, _ := g.Exit()
	assert.Equal(t, pos(0, 0), entry)
	assert.Equal(t, pos(2, 2), exit)
}

func TestLoad_DelimiterAndComment(t *testing.T) {
	src := "; header\nS; ;E\n"
	g, err := maze.Load(strings.NewReader(src), maze.WithDelimiter(';'), maze.WithComment('%'))
	require.Error(t, err, "'; header' is a 2-cell row, ragged against the 3-cell row")
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
	assert.Nil(t, g)

	src = "% header\nS| |E\n"
	g, err = maze.Load(strings.NewReader(src), maze.WithDelimiter('|'), maze.WithComment('%'))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 3, g.Cols())
}

func TestLoad_Errors(t *testing.T) {
	_, err := maze.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	assert.ErrorIs(t, err, maze.ErrMalformedGrid)

	_, err = maze.Load(strings.NewReader("S, \n ,E,#\n"))
	assert.ErrorIs(t, err, maze.ErrNonRectangular)

	_, err = maze.Load(strings.NewReader("S E"), maze.WithDelimiter(' '))
	assert.ErrorIs(t, err, maze.ErrBadDelimiter)

	_, err = maze.Load(strings.NewReader("S,E"), maze.WithDelimiter('"'))
	assert.ErrorIs(t, err, maze.ErrBadDelimiter)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoad_ReadError(t *testing.T) {
	_, err := maze.Load(failingReader{})
	assert.ErrorIs(t, err, maze.ErrMalformedGrid)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestLoadFile(t *testing.T) {
	g, err := maze.LoadFile(filepath.Join("testdata", "small.csv"))
	require.NoError(t, err)
	assert.Equal(t, "S, ,#\n , ,#\n#, ,E\n", g.String())

	_, err = maze.LoadFile(filepath.Join("testdata", "missing.csv"))
	assert.ErrorIs(t, err, maze.ErrMalformedGrid)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("S,E\n#\n"), 0o600))
	_, err = maze.LoadFile(bad)
	assert.ErrorIs(t, err, maze.ErrNonRectangular)
	assert.Contains(t, err.Error(), "bad.csv")
}
