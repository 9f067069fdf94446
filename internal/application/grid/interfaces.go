package grid

import (
	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/presentation/interaction"
)

// DisplayController handles terminal display operations
type DisplayController interface {
	EnterAlternateScreen()
	ExitAlternateScreen()
	RenderWithState(view filter.View, state model.InteractionState)
}

// KeySource delivers key presses
type KeySource interface {
	Events() <-chan interaction.KeyEvent
	Close() error
}

// ChangeSource delivers project file changes
type ChangeSource interface {
	Events() <-chan model.FileEvent
	Close() error
}
