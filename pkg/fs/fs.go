package fs

import (
	"errors"
	"os"
)

// LocalFileSystem implements the read-side filesystem port against the
// host OS. Blocks arrive as ordinary files carved out of a pool by other
// tooling, so reading is all this needs.
type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Read file contents.
func (lfs *LocalFileSystem) ReadFile(filePath string) ([]byte, error) {
	contents, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return contents, err
}

// Open a file for streaming reads.
func (lfs *LocalFileSystem) Open(filePath string) (*os.File, error) {
	return os.Open(filePath)
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(file string) (bool, error) {
	_, err := os.Stat(file)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
