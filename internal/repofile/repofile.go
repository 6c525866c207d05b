// Package repofile manages the .resumecraft marker that pins a directory
// tree to a data directory.
package repofile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const FileName = ".resumecraft"

// Find walks up from startDir looking for a marker. It returns the data
// directory it names, resolved against the marker's directory, and the
// directory holding the marker. Both are empty when no marker exists.
func Find(startDir string) (dataDir, markerDir string, err error) {
	dir := startDir
	for {
		target, err := Read(dir)
		if err != nil {
			return "", "", err
		}
		if target != "" {
			if !filepath.IsAbs(target) {
				target = filepath.Join(dir, target)
			}
			return target, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", nil
		}
		dir = parent
	}
}

// Write points dir at dataDir.
func Write(dir, dataDir string) error {
	return os.WriteFile(filepath.Join(dir, FileName), []byte(dataDir+"\n"), 0644)
}

// Read returns the trimmed marker content in dir, or "" if there is none.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes the marker in dir. It reports whether one existed.
func Remove(dir string) (bool, error) {
	err := os.Remove(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}
