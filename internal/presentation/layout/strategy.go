package layout

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// Style selects how the project list is laid out.
type Style int

const (
	StyleGrid Style = iota
	StyleList
)

// LayoutStrategy renders a filtered view into a block of text.
type LayoutStrategy interface {
	Render(view filter.View, sizer *Sizer) string
	GetName() string
}

// GetLayoutStrategy returns the strategy for style, defaulting to the grid.
func GetLayoutStrategy(style Style) LayoutStrategy {
	strategies := map[Style]LayoutStrategy{
		StyleGrid: &GridLayoutStrategy{},
		StyleList: &ListLayoutStrategy{},
	}

	if strategy, exists := strategies[style]; exists {
		return strategy
	}
	return &GridLayoutStrategy{}
}

// GridLayoutStrategy renders projects as bordered cards in responsive columns.
type GridLayoutStrategy struct{}

func (g *GridLayoutStrategy) GetName() string { return "grid" }

func (g *GridLayoutStrategy) Render(view filter.View, sizer *Sizer) string {
	var b strings.Builder
	b.WriteString(RenderHeader(sizer.Width()))
	b.WriteString("\n")
	if tabs := RenderTabs(view.Tabs, view.Active); tabs != "" {
		b.WriteString(tabs)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(view.Projects) == 0 {
		b.WriteString(RenderEmpty(view.Active, sizer.Width()))
		return b.String()
	}

	b.WriteString(RenderCards(view.Projects, sizer.Columns(), sizer.CardWidth()))
	return b.String()
}

// ListLayoutStrategy renders one line per project for small terminals.
type ListLayoutStrategy struct{}

func (l *ListLayoutStrategy) GetName() string { return "list" }

func (l *ListLayoutStrategy) Render(view filter.View, sizer *Sizer) string {
	width := sizer.Width()

	var b strings.Builder
	b.WriteString(RenderHeader(width))
	b.WriteString("\n")
	if tabs := RenderTabs(view.Tabs, view.Active); tabs != "" {
		b.WriteString(tabs)
		b.WriteString("\n")
	}
	b.WriteString(util.FormatSectionSeparator(width))
	b.WriteString("\n")

	if len(view.Projects) == 0 {
		b.WriteString(RenderEmpty(view.Active, width))
		return b.String()
	}

	titleWidth := width - 14
	if titleWidth < 10 {
		titleWidth = 10
	}
	for i, p := range view.Projects {
		if i >= sizer.BodyHeight() {
			b.WriteString(fmt.Sprintf("  … %d more\n", len(view.Projects)-i))
			break
		}
		mark := " "
		if p.IsPinned {
			mark = pinMark
		}
		title := util.PadRight(util.Truncate(p.Title, titleWidth), titleWidth)
		b.WriteString(fmt.Sprintf("%s %s %s\n", mark, title, util.PadLeft(p.Year.Raw(), 8)))
	}
	return b.String()
}
