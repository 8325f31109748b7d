package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"clipjoin/domain/video"
)

// Checker implements the video file ports using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Move renames src to dst, falling back to copy and delete when a rename
// is not possible (e.g. across filesystems).
func (c *Checker) Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return os.Remove(src)
}

// RemoveIfExists deletes path, treating a missing file as success
func (c *Checker) RemoveIfExists(path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Ensure Checker implements the file ports
var (
	_ video.FileChecker = (*Checker)(nil)
	_ video.FileMover   = (*Checker)(nil)
	_ video.FileRemover = (*Checker)(nil)
)
