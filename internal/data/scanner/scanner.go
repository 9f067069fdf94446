package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/penwyp/go-portfolio-grid/internal/data/loader"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// FileScanner finds project files under a directory
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Scan walks the directory and returns every file the loader can decode,
// sorted by path so the merge order is stable. Unreadable entries are skipped.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string
	dirCount := 0
	totalCount := 0

	util.LogDebugf("Start scanning directory: %s", s.baseDir)

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebugf("Skip file (error): %s - %v", path, err)
			return nil
		}

		if info.IsDir() {
			dirCount++
			return nil
		}

		totalCount++
		if loader.Supported(path) {
			files = append(files, path)
		}
		return nil
	})

	sort.Strings(files)
	util.LogDebugf("File scan completed: duration %v, scanned %d directories, %d files, found %d project files",
		time.Since(start), dirCount, totalCount, len(files))

	return files, err
}
