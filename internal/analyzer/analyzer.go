// Package analyzer runs the one-shot pipeline behind the root command: load
// the project files, derive the year view and write it in the requested
// output format.
package analyzer

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/data/loader"
	"github.com/penwyp/go-portfolio-grid/internal/presentation/formatter"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

type Config struct {
	Files        []string
	OutputFormat string
	Year         model.Selection
	// ShowAll lists every project instead of resolving a year tab
	ShowAll     bool
	Width       int
	Concurrency int
}

type Analyzer struct {
	config *Config
	loader *loader.Loader
	out    io.Writer
}

func New(config *Config, out io.Writer) *Analyzer {
	if config.Concurrency == 0 {
		config.Concurrency = runtime.NumCPU()
	}

	return &Analyzer{
		config: config,
		loader: loader.New(config.Concurrency),
		out:    out,
	}
}

// Analyze loads the project files and derives the view to print.
func (a *Analyzer) Analyze() (formatter.GridView, error) {
	if len(a.config.Files) == 0 {
		return formatter.GridView{}, fmt.Errorf("no project files given")
	}

	// Phase 1: Load files
	loadStart := time.Now()
	sources, err := a.loader.LoadFiles(a.config.Files)
	if err != nil {
		return formatter.GridView{}, err
	}
	projects := loader.Merge(sources)
	util.LogDebugf("Phase 1 - Load duration: %v, %d projects from %d files",
		time.Since(loadStart), len(projects), len(sources))

	// Phase 2: Derive the year view
	deriveStart := time.Now()
	view := filter.Derive(projects, a.config.Year)
	if a.config.ShowAll {
		view.Active = model.AllYears
		view.Projects = filter.SortPinnedFirst(filter.FilterByYear(projects, model.AllYears))
	} else if a.config.Year.Valid && view.Active != a.config.Year {
		util.LogWarnf("No projects for year %s, showing %s", a.config.Year, view.Active)
	}
	util.LogDebugf("Phase 2 - Derive duration: %v, %d years, %d visible",
		time.Since(deriveStart), len(view.Years), len(view.Projects))

	return formatter.NewGridView(view, len(projects)), nil
}

// Run analyzes and writes the result.
func (a *Analyzer) Run() error {
	startTime := time.Now()

	f, err := formatter.NewFormatter(a.config.OutputFormat, a.out, a.config.Width)
	if err != nil {
		return err
	}

	gridView, err := a.Analyze()
	if err != nil {
		return err
	}

	// Phase 3: Format and output
	if err := f.Format(gridView); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	util.LogDebugf("Total duration: %v", time.Since(startTime))
	return nil
}
