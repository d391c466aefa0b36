package pathx

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Filesystem abstracts the filesystem operations the Toolkit performs.
// It exists so operations can be tested against an in-memory
// implementation without touching the real filesystem.
type Filesystem interface {
	// Stat returns file info for a path.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists the entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Open opens a file for reading.
	Open(name string) (io.ReadCloser, error)

	// Create creates or truncates a file for writing.
	Create(name string) (io.WriteCloser, error)

	// Rename atomically replaces newname with oldname.
	Rename(oldname, newname string) error

	// Remove deletes a file or empty directory.
	Remove(name string) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(name string, perm fs.FileMode) error

	// Chmod changes the mode of a file.
	Chmod(name string, mode fs.FileMode) error
}

// OSFilesystem is the real filesystem implementation of Filesystem.
type OSFilesystem struct{}

// NewOSFilesystem creates a filesystem backed by the os package.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

func (*OSFilesystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (*OSFilesystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (*OSFilesystem) Open(name string) (io.ReadCloser, error) {
	info, err := os.Stat(name)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("cannot open directory as file: %s", name)
	}
	return os.Open(name)
}

func (*OSFilesystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

func (*OSFilesystem) Rename(oldname, newname string) error {
	return os.Rename(oldname, newname)
}

func (*OSFilesystem) Remove(name string) error {
	return os.Remove(name)
}

func (*OSFilesystem) MkdirAll(name string, perm fs.FileMode) error {
	return os.MkdirAll(name, perm)
}

func (*OSFilesystem) Chmod(name string, mode fs.FileMode) error {
	return os.Chmod(name, mode)
}

// Compile-time check that OSFilesystem implements the Filesystem interface.
var _ Filesystem = (*OSFilesystem)(nil)
