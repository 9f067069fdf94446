package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/util"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files whose extension is not known.
var ErrUnsupportedFormat = errors.New("unsupported project file format")

// Source is one decoded project file.
type Source struct {
	Path        string
	Projects    []model.Project
	Fingerprint util.Fingerprint
}

// LoadResult is the outcome of loading a single file.
type LoadResult struct {
	Index  int
	Source Source
	Error  error
}

// Loader reads project files from disk.
type Loader struct {
	concurrency int
}

// New creates a Loader that reads at most concurrency files at once.
func New(concurrency int) *Loader {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Loader{concurrency: concurrency}
}

// LoadFile reads and decodes one project file.
func (l *Loader) LoadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}

	projects, err := Decode(path, data)
	if err != nil {
		return Source{}, err
	}

	util.LogDebugf("Loaded %d projects from %s", len(projects), path)
	return Source{
		Path:        path,
		Projects:    projects,
		Fingerprint: util.FingerprintBytes(data),
	}, nil
}

// LoadFiles loads every path concurrently and returns the sources in the
// order the paths were given. The first failure is returned after all
// loads have finished.
func (l *Loader) LoadFiles(paths []string) ([]Source, error) {
	start := time.Now()
	results := make(chan LoadResult, len(paths))
	semaphore := make(chan struct{}, l.concurrency)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, p string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			src, err := l.LoadFile(p)
			results <- LoadResult{Index: index, Source: src, Error: err}
		}(i, path)
	}

	wg.Wait()
	close(results)

	sources := make([]Source, len(paths))
	var firstErr error
	for result := range results {
		if result.Error != nil {
			util.LogWarnf("Failed to load %s: %v", paths[result.Index], result.Error)
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to load %s: %w", paths[result.Index], result.Error)
			}
			continue
		}
		sources[result.Index] = result.Source
	}

	util.LogDebugf("Loaded %d project files in %v", len(paths), time.Since(start))
	if firstErr != nil {
		return nil, firstErr
	}
	return sources, nil
}

// Merge concatenates the projects of all sources in order.
func Merge(sources []Source) []model.Project {
	total := 0
	for _, src := range sources {
		total += len(src.Projects)
	}

	projects := make([]model.Project, 0, total)
	for _, src := range sources {
		projects = append(projects, src.Projects...)
	}
	return projects
}

// Supported reports whether Decode understands the extension of path.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml", ".jsonl", ".ndjson":
		return true
	}
	return false
}

// Decode parses data according to the extension of path.
func Decode(path string, data []byte) ([]model.Project, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return decodeJSON(data)
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".jsonl", ".ndjson":
		return decodeJSONLines(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func decodeJSON(data []byte) ([]model.Project, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []model.Project{}, nil
	}

	if trimmed[0] == '{' {
		var list model.ProjectList
		if err := sonic.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return nonNil(list.Projects), nil
	}

	var projects []model.Project
	if err := sonic.Unmarshal(trimmed, &projects); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return nonNil(projects), nil
}

func decodeYAML(data []byte) ([]model.Project, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(root.Content) == 0 {
		return []model.Project{}, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.MappingNode {
		var list model.ProjectList
		if err := doc.Decode(&list); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		return nonNil(list.Projects), nil
	}

	var projects []model.Project
	if err := doc.Decode(&projects); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return nonNil(projects), nil
}

func decodeJSONLines(path string, data []byte) ([]model.Project, error) {
	projects := make([]model.Project, 0)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		var p model.Project
		if err := sonic.Unmarshal(text, &p); err != nil {
			util.LogDebugf("Skip invalid JSON line %s:%d - %v", path, line, err)
			continue
		}
		projects = append(projects, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

func nonNil(projects []model.Project) []model.Project {
	if projects == nil {
		return []model.Project{}
	}
	return projects
}
