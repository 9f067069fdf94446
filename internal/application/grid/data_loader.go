package grid

import (
	"sync"

	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/data/loader"
	"github.com/penwyp/go-portfolio-grid/internal/data/scanner"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// DataLoader loads the configured project files and remembers what it
// loaded so unchanged files can be skipped.
type DataLoader struct {
	config *Config
	loader *loader.Loader

	mu           sync.Mutex
	fingerprints map[string]util.Fingerprint
}

// NewDataLoader creates a new DataLoader instance
func NewDataLoader(config *Config) *DataLoader {
	return &DataLoader{
		config:       config,
		loader:       loader.New(config.Concurrency),
		fingerprints: make(map[string]util.Fingerprint),
	}
}

// Files returns the configured files followed by the ones currently found
// under Dir, without duplicates.
func (dl *DataLoader) Files() []string {
	if dl.config.Dir == "" {
		return dl.config.Files
	}

	found, err := scanner.NewFileScanner(dl.config.Dir).Scan()
	if err != nil {
		util.LogWarnf("Failed to scan %s: %v", dl.config.Dir, err)
	}

	seen := make(map[string]struct{}, len(dl.config.Files)+len(found))
	paths := make([]string, 0, len(dl.config.Files)+len(found))
	for _, group := range [][]string{dl.config.Files, found} {
		for _, p := range group {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}

// Load reads every project file and returns the merged project list.
// On error nothing is recorded, so the next call retries every file.
func (dl *DataLoader) Load() ([]model.Project, error) {
	paths := dl.Files()
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	sources, err := dl.loader.LoadFiles(paths)
	if err != nil {
		return nil, err
	}

	fingerprints := make(map[string]util.Fingerprint, len(sources))
	for _, src := range sources {
		fingerprints[src.Path] = src.Fingerprint
	}
	dl.mu.Lock()
	dl.fingerprints = fingerprints
	dl.mu.Unlock()

	projects := loader.Merge(sources)
	util.LogInfof("Loaded %d projects from %d files", len(projects), len(sources))
	return projects, nil
}

// IdentifyChangedFiles returns the files whose content differs from the last
// successful load. Files that cannot be read, new files and files that
// disappeared from Dir all count as changed.
func (dl *DataLoader) IdentifyChangedFiles() []string {
	paths := dl.Files()

	dl.mu.Lock()
	defer dl.mu.Unlock()

	var changed []string
	current := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		current[path] = struct{}{}
		fp, err := util.CalculateFileFingerprint(path)
		if err != nil {
			util.LogDebugf("Cannot fingerprint %s: %v", path, err)
			changed = append(changed, path)
			continue
		}
		if previous, ok := dl.fingerprints[path]; !ok || !previous.SameContent(fp) {
			changed = append(changed, path)
		}
	}

	for path := range dl.fingerprints {
		if _, ok := current[path]; !ok {
			changed = append(changed, path)
		}
	}
	return changed
}
