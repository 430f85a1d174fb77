package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockFS_ReadWrite(t *testing.T) {
	m := NewMockFS()

	require.NoError(t, m.WriteFile("/rules/signup.rules.yaml", []byte("rules: {}"), 0644))

	data, err := m.ReadFile("/rules/signup.rules.yaml")
	require.NoError(t, err)
	assert.Equal(t, "rules: {}", string(data))
	assert.True(t, m.DirExists("/rules"), "writes imply their parent directory")
}

func TestMockFS_ReadFile_NotFound(t *testing.T) {
	m := NewMockFS()

	_, err := m.ReadFile("/missing.yaml")

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMockFS_ReadFile_ReturnsCopy(t *testing.T) {
	m := NewMockFS()
	m.AddFile("a.txt", []byte("abc"))

	data, _ := m.ReadFile("a.txt")
	data[0] = 'z'

	again, _ := m.ReadFile("a.txt")
	assert.Equal(t, "abc", string(again))
}

func TestMockFS_MkdirAll(t *testing.T) {
	m := NewMockFS()

	require.NoError(t, m.MkdirAll(filepath.Join("a", "b", "c"), 0755))

	assert.True(t, m.DirExists("a"))
	assert.True(t, m.DirExists(filepath.Join("a", "b")))
	assert.True(t, m.DirExists(filepath.Join("a", "b", "c")))
}

func TestMockFS_Stat(t *testing.T) {
	m := NewMockFS()
	m.AddFile("/p/vetter.yaml", []byte("log_level: info"))

	info, err := m.Stat("/p/vetter.yaml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("log_level: info")), info.Size())
	assert.Equal(t, "vetter.yaml", info.Name())

	info, err = m.Stat("/p")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = m.Stat("/nope")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExists(t *testing.T) {
	m := NewMockFS()
	m.AddFile("/x.yaml", nil)

	assert.True(t, Exists(m, "/x.yaml"))
	assert.False(t, Exists(m, "/y.yaml"))
}

func TestRealFS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.txt")
	r := &RealFS{}

	require.NoError(t, r.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, r.WriteFile(path, []byte("hello"), 0644))

	data, err := r.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.True(t, Exists(r, path))
	assert.False(t, Exists(r, filepath.Join(dir, "missing")))
}
