package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/presentation/interaction"
	"github.com/penwyp/go-portfolio-grid/internal/presentation/layout"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// DisplayConfig controls where and how wide the screen is drawn. A zero
// Width measures the terminal on every frame.
type DisplayConfig struct {
	Width  int
	Height int
	Out    io.Writer
}

type TerminalDisplay struct {
	config            *DisplayConfig
	out               io.Writer
	inAlternateScreen bool
	lastLayoutStyle   int
	isFirstRender     bool
	currentMode       model.DisplayMode
}

func NewTerminalDisplay(config *DisplayConfig) *TerminalDisplay {
	out := config.Out
	if out == nil {
		out = os.Stdout
	}
	return &TerminalDisplay{
		config:        config,
		out:           out,
		isFirstRender: true,
		currentMode:   model.ModeNormal,
	}
}

func (td *TerminalDisplay) print(parts ...string) {
	for _, p := range parts {
		fmt.Fprint(td.out, p)
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if td.inAlternateScreen {
		return
	}
	td.print(util.EnterAltScreen, util.ClearScreen, util.ClearScrollback,
		util.ResetScrollRegion, util.HideCursor, util.MoveCursorHome)
	td.inAlternateScreen = true
	td.isFirstRender = true
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if !td.inAlternateScreen {
		return
	}
	td.print(util.ClearScreen, util.MoveCursorHome, util.ShowCursor, util.ExitAltScreen)
	td.inAlternateScreen = false
}

// ClearScreen clears the alternate screen buffer
func (td *TerminalDisplay) ClearScreen() {
	if td.inAlternateScreen {
		td.print(util.ClearScreen, util.MoveCursorHome)
	}
}

func (td *TerminalDisplay) sizer() *layout.Sizer {
	if td.config.Width > 0 {
		return layout.NewSizer(td.config.Width, td.config.Height)
	}
	return layout.DetectSizer()
}

// RenderWithState draws one frame for view.
func (td *TerminalDisplay) RenderWithState(view filter.View, state model.InteractionState) {
	mode := state.Mode()

	if td.isFirstRender || mode != td.currentMode || td.lastLayoutStyle != state.LayoutStyle {
		td.ClearScreen()
		td.isFirstRender = false
		td.currentMode = mode
		td.lastLayoutStyle = state.LayoutStyle
	}
	td.print(util.MoveCursorHome)

	sizer := td.sizer()

	switch mode {
	case model.ModeHelp:
		td.renderHelp(sizer.Width())
		return
	case model.ModeLoading:
		td.renderLoadingScreen(state.LoadingMessage, sizer)
		return
	}

	strategy := layout.GetLayoutStrategy(layout.Style(state.LayoutStyle))
	frame := strategy.Render(view, sizer)
	td.print(strings.ReplaceAll(frame, "\n", "\r\n"), "\r\n", util.ClearToEnd)

	td.renderStatusLine(view, state.StatusMessage, sizer.Width())
}

func (td *TerminalDisplay) renderHelp(width int) {
	var b strings.Builder
	b.WriteString(util.FormatHeaderTitle("Portfolio Grid - Help") + "\r\n")
	b.WriteString(strings.Repeat("═", width) + "\r\n\r\n")
	b.WriteString("Keyboard Shortcuts:\r\n\r\n")
	for _, line := range interaction.HelpLines {
		b.WriteString("  " + line + "\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString("Layouts:\r\n")
	b.WriteString("  Grid - Cards in up to three columns\r\n")
	b.WriteString("  List - One line per project\r\n\r\n")
	b.WriteString(strings.Repeat("═", width) + "\r\n")
	b.WriteString("Press '?' to return...")
	td.print(b.String(), util.ClearToEnd)
}

func (td *TerminalDisplay) renderLoadingScreen(message string, sizer *layout.Sizer) {
	if message == "" {
		message = "Loading projects..."
	}
	td.print(util.ClearScreen, util.MoveCursorHome)
	td.print(strings.Repeat("\r\n", max(sizer.Height()/2-1, 0)))
	td.print(util.CenterText(message, sizer.Width()))
}

// renderStatusLine writes the bottom line: the status message, or a count
// and a key hint when there is none.
func (td *TerminalDisplay) renderStatusLine(view filter.View, message string, width int) {
	line := message
	if line == "" {
		line = fmt.Sprintf("%s · year %s · ←/→ switch year · ? help · q quit",
			util.Pluralize(len(view.Projects), "project", "projects"), view.Active)
	}

	td.print(util.SaveCursor, util.MoveToBottom, util.ClearLine)
	td.print(util.ColorDim, util.Truncate(line, width-1), util.ColorReset)
	td.print(util.RestoreCursor)
}
