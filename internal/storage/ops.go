package storage

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/weatherrecap/weatherrecap/internal/constants"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, constants.DirPermissions)
}

// ListFilesWithExt returns the regular files in dir whose names end in ext,
// sorted by name. Subdirectories are not descended.
func ListFilesWithExt(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// FileSize returns the size of a regular file.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func IsNotExist(err error) bool {
	return os.IsNotExist(err)
}
