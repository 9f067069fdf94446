package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-portfolio-grid/internal/application/grid"
)

var (
	watchYear          string
	watchLayout        string
	watchRefreshRate   int
	watchRefreshPerSec float64
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Browse projects interactively and reload on change",
	Long: `Shows the project grid full screen with one tab per year. Use the arrow
keys (or h/l, Tab) to switch years and 1-9 to jump to a tab. The grid reloads
whenever one of the project files changes; a file that fails to parse keeps
the last good list on screen. With --dir the directory is scanned again on
every reload, so project files added or removed there are picked up.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchYear, "year", "y", "",
		"Year tab to start on (default: newest)")
	watchCmd.Flags().StringVar(&watchLayout, "layout", "grid",
		"Layout (grid, list)")
	watchCmd.Flags().IntVar(&watchRefreshRate, "refresh-rate", 10,
		"Seconds between file change checks, in addition to file events")
	watchCmd.Flags().Float64Var(&watchRefreshPerSec, "refresh-per-second", 1,
		"Display refresh rate (0.1-20 Hz)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	setupLogging()

	if watchRefreshPerSec < 0.1 || watchRefreshPerSec > 20 {
		return fmt.Errorf("refresh-per-second must be between 0.1 and 20")
	}
	if watchRefreshRate <= 0 {
		return fmt.Errorf("refresh-rate must be positive")
	}

	config, err := watchConfig(cmd)
	if err != nil {
		return err
	}

	orchestrator, err := grid.NewOrchestrator(config)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return orchestrator.Run(ctx)
}

// watchConfig builds the grid configuration from the flags. In --dir mode the
// scanned files are left to the grid so later scans can replace them.
func watchConfig(cmd *cobra.Command) (*grid.Config, error) {
	layoutStyle, err := parseLayout(watchLayout)
	if err != nil {
		return nil, err
	}

	selection, err := parseYear(watchYear)
	if err != nil {
		return nil, err
	}

	paths, err := projectFiles(cmd)
	if err != nil {
		return nil, err
	}

	config := &grid.Config{
		Files:               paths,
		InitialYear:         selection,
		LayoutStyle:         layoutStyle,
		DataRefreshInterval: time.Duration(watchRefreshRate) * time.Second,
		UIRefreshRate:       watchRefreshPerSec,
		Concurrency:         runtime.NumCPU(),
	}

	if dataDir != "" {
		config.Files = explicitFiles(cmd)
		config.Dir = expandPath(dataDir)
	}
	return config, nil
}

func parseLayout(name string) (int, error) {
	switch name {
	case "grid", "":
		return 0, nil
	case "list":
		return 1, nil
	default:
		return 0, fmt.Errorf("invalid layout %q: must be either 'grid' or 'list'", name)
	}
}
