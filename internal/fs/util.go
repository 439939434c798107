package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/akeil/atlastool/internal/logging"
)

// ErrNotDir is returned when a directory was expected.
var ErrNotDir = errors.New("not a directory")

// HasExt tells if the file name has one of the given extensions.
// Extensions are given without the leading dot and compared case-insensitive.
func HasExt(name string, exts ...string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == strings.ToLower(strings.TrimPrefix(e, ".")) {
			return true
		}
	}
	return false
}

// Exists tells if something exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir tells if path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile tells if path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CheckDir returns an error if path exists but is not a directory.
// A path that does not exist is fine.
func CheckDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	if !info.IsDir() {
		return &iofs.PathError{Op: "check", Path: path, Err: ErrNotDir}
	}
	return nil
}

// EnsureDir creates the directory path and its parents
// unless they exist already.
func EnsureDir(path string) error {
	err := CheckDir(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(path, 0755)
}

// List returns the paths of all regular files in dir with one of the given
// extensions, sorted by name. Subdirectories are not searched.
func List(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !HasExt(e.Name(), exts...) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}

// Walk returns the paths of all regular files below root with one of the
// given extensions, sorted by path.
// Directories that cannot be read are skipped.
func Walk(root string, exts ...string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			logging.Warning("Skip %q: %v", p, err)
			return nil
		}
		if d.Type().IsRegular() && HasExt(d.Name(), exts...) {
			paths = append(paths, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	return paths, nil
}
