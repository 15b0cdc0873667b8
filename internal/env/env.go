package env

import (
	"os"
	"path/filepath"
)

// RootDir returns the absolute folder scripts and projects are placed
// under. An empty dir means the current working directory.
func RootDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return wd, nil
	}
	return filepath.Abs(dir)
}
