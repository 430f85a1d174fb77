package fs

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// MockFileInfo implements os.FileInfo for MockFS entries.
type MockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *MockFileInfo) Name() string       { return m.name }
func (m *MockFileInfo) Size() int64        { return m.size }
func (m *MockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *MockFileInfo) IsDir() bool        { return m.isDir }
func (m *MockFileInfo) Sys() interface{}   { return nil }

// MockFS is an in-memory FS for tests. Parent directories are implied by
// writes.
type MockFS struct {
	mu    sync.RWMutex
	files map[string][]byte
	perms map[string]os.FileMode
	dirs  map[string]bool
}

// NewMockFS returns an empty MockFS.
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string][]byte),
		perms: make(map[string]os.FileMode),
		dirs:  make(map[string]bool),
	}
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, &os.PathError{Op: "read", Path: path, Err: os.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clean := filepath.Clean(path)
	m.addParents(filepath.Dir(clean))
	m.files[clean] = append([]byte(nil), data...)
	m.perms[clean] = perm
	return nil
}

func (m *MockFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addParents(filepath.Clean(path))
	return nil
}

func (m *MockFS) addParents(dir string) {
	for dir != "." && dir != string(filepath.Separator) {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

func (m *MockFS) Stat(path string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clean := filepath.Clean(path)
	if data, ok := m.files[clean]; ok {
		return &MockFileInfo{name: filepath.Base(clean), size: int64(len(data)), mode: m.perms[clean]}, nil
	}
	if m.dirs[clean] || clean == "." || clean == string(filepath.Separator) {
		return &MockFileInfo{name: filepath.Base(clean), mode: 0755 | os.ModeDir, isDir: true}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

// AddFile seeds a file.
func (m *MockFS) AddFile(path string, content []byte) {
	_ = m.WriteFile(path, content, 0644)
}

// FileExists reports whether a file was written at path.
func (m *MockFS) FileExists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

// DirExists reports whether path is a known directory.
func (m *MockFS) DirExists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirs[filepath.Clean(path)]
}
