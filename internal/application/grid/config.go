package grid

import (
	"errors"
	"time"

	"github.com/penwyp/go-portfolio-grid/internal/core/model"
)

// ErrNoFiles is returned when no project file is configured or found.
var ErrNoFiles = errors.New("no project files given")

// Config contains configuration for the watch command
type Config struct {
	// Project files, in merge order
	Files []string

	// Directory rescanned on every load; files found there follow Files
	Dir string

	// Year tab to start on; AllYears starts on the newest year
	InitialYear model.Selection

	// Display settings
	LayoutStyle int
	Width       int

	// Refresh settings
	DataRefreshInterval time.Duration
	UIRefreshRate       float64

	// Performance settings
	Concurrency int
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if len(c.Files) == 0 && c.Dir == "" {
		return ErrNoFiles
	}
	if c.LayoutStyle < 0 || c.LayoutStyle > 1 {
		c.LayoutStyle = 0
	}
	if c.DataRefreshInterval == 0 {
		c.DataRefreshInterval = 10 * time.Second
	}
	if c.UIRefreshRate == 0 {
		c.UIRefreshRate = 1
	}
	if c.Concurrency == 0 {
		c.Concurrency = 4
	}
	return nil
}
