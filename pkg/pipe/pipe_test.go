package pipe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/kevgo/tertestrial/pkg/pipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	dir := t.TempDir()
	p := pipe.InDir(dir)

	require.NoError(t, p.Create())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "should create only the pipe")
	assert.Equal(t, pipe.DefaultName, entries[0].Name())

	info, err := os.Lstat(p.Path)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeNamedPipe, "should be a named pipe")
}

func TestCreate_AlreadyExists(t *testing.T) {
	p := pipe.InDir(t.TempDir())
	require.NoError(t, p.Create())

	err := p.Create()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPipeCreate))
}

func TestExists(t *testing.T) {
	p := pipe.InDir(t.TempDir())
	assert.False(t, p.Exists())
	require.NoError(t, p.Create())
	assert.True(t, p.Exists())
}

func TestDelete(t *testing.T) {
	p := pipe.InDir(t.TempDir())
	require.NoError(t, p.Create())
	require.True(t, p.Exists())

	require.NoError(t, p.Delete())
	assert.False(t, p.Exists())

	err := p.Delete()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPipeDelete))
}

func TestOpen_Missing(t *testing.T) {
	p := pipe.New(filepath.Join(t.TempDir(), "missing.pipe"))
	_, err := p.Open()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPipeOpen))
}

func writeRegularFile(t *testing.T, p *pipe.Pipe) {
	t.Helper()
	require.NoError(t, os.WriteFile(p.Path, []byte(`{"command":"testAll"}`+"\n"), 0644))
}

func TestIsFIFO(t *testing.T) {
	p := pipe.InDir(t.TempDir())
	assert.False(t, p.IsFIFO(), "missing path")

	writeRegularFile(t, p)
	assert.True(t, p.Exists())
	assert.False(t, p.IsFIFO(), "regular file")

	require.NoError(t, p.Delete())
	require.NoError(t, p.Create())
	assert.True(t, p.IsFIFO())
}

func TestEnsureFIFO(t *testing.T) {
	t.Run("creates a missing pipe", func(t *testing.T) {
		p := pipe.InDir(t.TempDir())
		created, err := p.EnsureFIFO()
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, p.IsFIFO())
	})

	t.Run("reuses an existing pipe", func(t *testing.T) {
		p := pipe.InDir(t.TempDir())
		require.NoError(t, p.Create())
		created, err := p.EnsureFIFO()
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("refuses a regular file", func(t *testing.T) {
		p := pipe.InDir(t.TempDir())
		writeRegularFile(t, p)
		_, err := p.EnsureFIFO()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPipeCreate))
		assert.Contains(t, errors.GetHint(err), "Please delete "+p.Path)
	})
}

func TestOpen_RegularFile(t *testing.T) {
	p := pipe.InDir(t.TempDir())
	writeRegularFile(t, p)

	reader, err := p.Open()
	require.Error(t, err)
	assert.Nil(t, reader)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPipeOpen))
}
