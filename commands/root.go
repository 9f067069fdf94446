package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-portfolio-grid/internal/analyzer"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/data/scanner"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

var (
	// Logging related
	debug bool

	// Input files
	files   []string
	dataDir string

	// Selection
	yearFlag string
	showAll  bool

	// Output related
	outputFormat string
	width        int

	rootCmd = &cobra.Command{
		Use:   "go-portfolio-grid [flags]",
		Short: "Portfolio projects grouped by year",
		Long: `go-portfolio-grid reads portfolio project records and shows them grouped by year.

Projects come from JSON, YAML or JSON Lines files. The newest year is selected
unless --year or --all is given; pinned projects are listed first.

Examples:
  go-portfolio-grid                                  # Newest year from ./projects.json
  go-portfolio-grid -f site.yaml --year 2023         # A specific year
  go-portfolio-grid --all --output cards             # Every project as cards
  go-portfolio-grid -f a.json -f b.yaml -o json      # Merge files, print JSON
  go-portfolio-grid years                            # Year tabs with counts
  go-portfolio-grid watch                            # Interactive grid, reloads on change`,
		SilenceUsage: true,
		RunE:         runAnalyze,
	}
)

const (
	defaultLogFile     = "~/.go-portfolio-grid/logs/app.log"
	defaultProjectFile = "projects.json"
)

func init() {
	// Input data configuration
	rootCmd.PersistentFlags().StringSliceVarP(&files, "file", "f", []string{defaultProjectFile},
		"Project file (.json, .yaml, .yml, .jsonl); repeat to merge several")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "",
		"Directory to scan for project files, merged after any --file")

	// Selection
	rootCmd.Flags().StringVarP(&yearFlag, "year", "y", "",
		"Year to show (default: newest year with projects)")
	rootCmd.Flags().BoolVarP(&showAll, "all", "a", false,
		"Show every project regardless of year")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, cards, json, csv, summary)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "",
		"Alias for --output")
	rootCmd.Flags().IntVar(&width, "width", 0,
		"Output width for cards (0 = terminal width)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	setupLogging()

	// Handle format alias
	if format := cmd.Flags().Lookup("format"); format != nil && format.Changed {
		outputFormat = format.Value.String()
	}

	selection, err := parseYear(yearFlag)
	if err != nil {
		return err
	}
	if showAll && selection.Valid {
		return fmt.Errorf("--year and --all cannot be used together")
	}

	paths, err := projectFiles(cmd)
	if err != nil {
		return err
	}

	config := &analyzer.Config{
		Files:        paths,
		OutputFormat: outputFormat,
		Year:         selection,
		ShowAll:      showAll,
		Width:        width,
		Concurrency:  runtime.NumCPU(),
	}

	a := analyzer.New(config, cmd.OutOrStdout())
	return a.Run()
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

// setupLogging starts the file logger; debug mode also logs to stderr.
func setupLogging() {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		logFile = ""
	}
	if err := util.InitLogger(logLevel, logFile, debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
}

// parseYear turns the --year flag into a selection. An empty flag selects
// nothing in particular and lets the newest year win.
func parseYear(value string) (model.Selection, error) {
	if strings.TrimSpace(value) == "" {
		return model.AllYears, nil
	}
	year, ok := model.TextYear(value).Number()
	if !ok {
		return model.AllYears, fmt.Errorf("invalid year %q", value)
	}
	return model.SelectYear(year), nil
}

// projectFiles returns the files to load. With --dir the scanned files are
// used, after any --file given explicitly.
func projectFiles(cmd *cobra.Command) ([]string, error) {
	if dataDir == "" {
		return explicitFiles(cmd), nil
	}

	found, err := scanner.NewFileScanner(expandPath(dataDir)).Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dataDir, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("no project files found in %s", dataDir)
	}

	return append(explicitFiles(cmd), found...), nil
}

// explicitFiles returns the --file paths that apply. With --dir the default
// file is only used when --file was given explicitly.
func explicitFiles(cmd *cobra.Command) []string {
	if dataDir != "" && !cmd.Flags().Changed("file") {
		return nil
	}
	return expandPaths(files)
}

func expandPaths(paths []string) []string {
	expanded := make([]string, len(paths))
	for i, p := range paths {
		expanded[i] = expandPath(p)
	}
	return expanded
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
