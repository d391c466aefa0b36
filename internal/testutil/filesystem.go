package testutil

import (
	"bytes"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"pathx"
)

// MockFile represents a file in the mock filesystem.
type MockFile struct {
	Content     []byte
	Mode        fs.FileMode
	ModTime     time.Time
	IsDirectory bool
}

// MockFilesystem is an in-memory pathx.Filesystem for testing. Paths are
// cleaned but otherwise matched literally, so tests should use consistent
// absolute paths.
type MockFilesystem struct {
	mu    sync.Mutex
	files map[string]*MockFile
}

// NewMockFilesystem creates an empty mock filesystem.
func NewMockFilesystem() *MockFilesystem {
	return &MockFilesystem{files: make(map[string]*MockFile)}
}

// AddFile adds a file with the given content, creating parent directories.
func (m *MockFilesystem) AddFile(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.addParents(path)
	m.files[path] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
	}
}

// AddDirectory adds a directory, creating parents.
func (m *MockFilesystem) AddDirectory(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.addParents(path)
	m.addDir(path)
}

// SetModTime overrides the recorded modification time of a path.
func (m *MockFilesystem) SetModTime(path string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if f, ok := m.files[filepath.Clean(path)]; ok {
		f.ModTime = t
	}
}

// ReadFile returns the content of a file and whether it exists.
func (m *MockFilesystem) ReadFile(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[filepath.Clean(path)]
	if !ok || f.IsDirectory {
		return nil, false
	}
	return append([]byte(nil), f.Content...), true
}

// Paths returns all known paths, sorted.
func (m *MockFilesystem) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for k := range m.files {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}

func (m *MockFilesystem) addParents(path string) {
	dir := filepath.Dir(path)
	if dir == path {
		return
	}
	m.addParents(dir)
	m.addDir(dir)
}

func (m *MockFilesystem) addDir(path string) {
	if _, ok := m.files[path]; ok {
		return
	}
	m.files[path] = &MockFile{Mode: 0755, ModTime: time.Now(), IsDirectory: true}
}

func (m *MockFilesystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return newInfo(filepath.Base(name), f), nil
}

func (m *MockFilesystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	d, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	if !d.IsDirectory {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}

	var entries []fs.DirEntry
	for k, f := range m.files {
		if k != name && filepath.Dir(k) == name {
			entries = append(entries, mockDirEntry{info: newInfo(filepath.Base(k), f)})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MockFilesystem) Open(name string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	if f.IsDirectory {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return io.NopCloser(bytes.NewReader(f.Content)), nil
}

func (m *MockFilesystem) Create(name string) (io.WriteCloser, error) {
	return &mockWriter{fs: m, name: filepath.Clean(name)}, nil
}

func (m *MockFilesystem) Rename(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	oldname = filepath.Clean(oldname)
	newname = filepath.Clean(newname)
	f, ok := m.files[oldname]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldname, Err: fs.ErrNotExist}
	}

	if f.IsDirectory {
		prefix := oldname + string(filepath.Separator)
		for k, v := range m.files {
			if strings.HasPrefix(k, prefix) {
				m.files[newname+string(filepath.Separator)+k[len(prefix):]] = v
				delete(m.files, k)
			}
		}
	}
	m.files[newname] = f
	delete(m.files, oldname)
	return nil
}

func (m *MockFilesystem) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	if _, ok := m.files[name]; !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	delete(m.files, name)
	return nil
}

func (m *MockFilesystem) MkdirAll(name string, perm fs.FileMode) error {
	m.AddDirectory(name)
	return nil
}

func (m *MockFilesystem) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	name = filepath.Clean(name)
	f, ok := m.files[name]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	f.Mode = mode
	return nil
}

// mockWriter buffers writes and commits the file on Close.
type mockWriter struct {
	fs   *MockFilesystem
	name string
	buf  bytes.Buffer
}

func (w *mockWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *mockWriter) Close() error {
	w.fs.AddFile(w.name, w.buf.Bytes())
	return nil
}

// mockFileInfo implements fs.FileInfo for mock files.
type mockFileInfo struct {
	name string
	file *MockFile
}

func newInfo(name string, f *MockFile) mockFileInfo {
	return mockFileInfo{name: name, file: f}
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return int64(len(i.file.Content)) }
func (i mockFileInfo) Mode() fs.FileMode {
	if i.file.IsDirectory {
		return i.file.Mode | fs.ModeDir
	}
	return i.file.Mode
}
func (i mockFileInfo) ModTime() time.Time { return i.file.ModTime }
func (i mockFileInfo) IsDir() bool        { return i.file.IsDirectory }
func (i mockFileInfo) Sys() any           { return nil }

// mockDirEntry implements fs.DirEntry for mock files.
type mockDirEntry struct {
	info mockFileInfo
}

func (e mockDirEntry) Name() string               { return e.info.Name() }
func (e mockDirEntry) IsDir() bool                { return e.info.IsDir() }
func (e mockDirEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e mockDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// Compile-time check that MockFilesystem implements pathx.Filesystem.
var _ pathx.Filesystem = (*MockFilesystem)(nil)
