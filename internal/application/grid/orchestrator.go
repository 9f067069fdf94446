package grid

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/data/watcher"
	"github.com/penwyp/go-portfolio-grid/internal/presentation/display"
	"github.com/penwyp/go-portfolio-grid/internal/presentation/interaction"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// Orchestrator coordinates all components for the watch command
type Orchestrator struct {
	config *Config

	dataLoader   *DataLoader
	refreshCtrl  *RefreshController
	stateManager *StateManager

	display  DisplayController
	keyboard KeySource
	watcher  ChangeSource
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *Config) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dataLoader := NewDataLoader(config)
	stateManager := NewStateManager(config.InitialYear)
	stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		s.LayoutStyle = config.LayoutStyle
	})

	return &Orchestrator{
		config:       config,
		dataLoader:   dataLoader,
		refreshCtrl:  NewRefreshController(dataLoader),
		stateManager: stateManager,
		display:      display.NewTerminalDisplay(&display.DisplayConfig{Width: config.Width}),
	}, nil
}

// Run starts the orchestrator main loop. It returns when the user quits or
// ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting portfolio grid watch...")
	defer o.Close()

	if o.keyboard == nil {
		keyboard, err := interaction.NewKeyboardReader()
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.keyboard = keyboard
	}

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	o.stateManager.SetLoadingState(true, "Loading projects...")
	o.updateDisplay()

	projects, err := o.dataLoader.Load()
	if err != nil {
		return fmt.Errorf("initial load failed: %w", err)
	}
	o.stateManager.SetProjects(projects)
	o.stateManager.SetLoadingState(false, "")

	if o.watcher == nil {
		if err := o.startWatcher(); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	uiTicker := time.NewTicker(time.Duration(float64(time.Second) / o.config.UIRefreshRate))
	defer uiTicker.Stop()

	dataTicker := time.NewTicker(o.config.DataRefreshInterval)
	defer dataTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down portfolio grid watch...")
			return nil

		case <-uiTicker.C:
			o.updateDisplay()

		case <-dataTicker.C:
			o.reload(false)
			o.updateDisplay()

		case event := <-o.watcher.Events():
			o.handleFileChange(event)
			o.updateDisplay()

		case keyEvent := <-o.keyboard.Events():
			if o.handleKeyboard(keyEvent) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

func (o *Orchestrator) updateDisplay() {
	o.display.RenderWithState(o.stateManager.GetView(), o.stateManager.GetInteractionState())
}

// reload refreshes the project list. A failed load keeps the last good list
// on screen and reports the error on the status line.
func (o *Orchestrator) reload(force bool) {
	projects, reloaded, err := o.refreshCtrl.Refresh(force)
	if err != nil {
		util.LogErrorf("Failed to reload projects: %v", err)
		o.stateManager.SetStatusMessage(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	if !reloaded {
		return
	}

	o.stateManager.SetProjects(projects)
	o.stateManager.SetStatusMessage(fmt.Sprintf("Reloaded %s at %s",
		util.Pluralize(len(projects), "project", "projects"), time.Now().Format("15:04:05")))
}

// handleKeyboard handles keyboard events. It returns true when the user
// asked to quit.
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	binding := interaction.Resolve(event)
	if binding.Action != interaction.ActionNone {
		o.stateManager.SetStatusMessage("")
	}

	switch binding.Action {
	case interaction.ActionQuit:
		return true
	case interaction.ActionBack:
		if !o.stateManager.GetInteractionState().ShowHelp {
			return true
		}
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = false
		})
	case interaction.ActionNextYear:
		o.stateManager.NextYear()
	case interaction.ActionPrevYear:
		o.stateManager.PrevYear()
	case interaction.ActionJumpYear:
		if !o.stateManager.SelectIndex(binding.Index) {
			o.stateManager.SetStatusMessage(fmt.Sprintf("No year tab %d", binding.Index+1))
		}
	case interaction.ActionReload:
		o.reload(true)
	case interaction.ActionToggleHelp:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = !s.ShowHelp
		})
	case interaction.ActionToggleLayout:
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.LayoutStyle = (s.LayoutStyle + 1) % 2
		})
	}
	return false
}

// startWatcher initializes the file watcher. With a project directory, the
// directory and every directory holding a project file are watched for new
// files as well.
func (o *Orchestrator) startWatcher() error {
	files := o.dataLoader.Files()

	var dirs []string
	if o.config.Dir != "" {
		dirs = append(dirs, o.config.Dir)
		for _, path := range files {
			dirs = append(dirs, filepath.Dir(path))
		}
	}

	fw, err := watcher.NewFileWatcher(files, dirs...)
	if err != nil {
		return err
	}
	o.watcher = fw
	return nil
}

// handleFileChange handles file change events
func (o *Orchestrator) handleFileChange(event model.FileEvent) {
	util.LogDebugf("File changed: %s (%s)", event.Path, event.Operation)
	o.reload(false)
}

// Close releases the keyboard and the watcher
func (o *Orchestrator) Close() error {
	var firstErr error
	if o.keyboard != nil {
		if err := o.keyboard.Close(); err != nil {
			firstErr = fmt.Errorf("failed to restore terminal: %w", err)
		}
		o.keyboard = nil
	}
	if o.watcher != nil {
		if err := o.watcher.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close file watcher: %w", err)
		}
		o.watcher = nil
	}
	return firstErr
}
