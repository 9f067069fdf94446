package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/penwyp/go-portfolio-grid/internal/core/icons"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

var (
	accent = lipgloss.Color("99")
	muted  = lipgloss.Color("241")

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(accent).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	pinnedCardStyle = cardStyle.BorderForeground(accent)

	titleStyle  = lipgloss.NewStyle().Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(muted)
	pinStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)
	linkStyle   = lipgloss.NewStyle().Foreground(accent).Underline(true)
	emptyStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
)

const pinMark = "★"

// RenderHeader renders the section title.
func RenderHeader(width int) string {
	return headerStyle.Render(util.CenterText("Projects", width))
}

// RenderTabs renders the year strip with per-year counts, highlighting the
// active year.
func RenderTabs(tabs []model.YearTab, active model.Selection) string {
	if len(tabs) == 0 {
		return ""
	}

	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		label := fmt.Sprintf("%s (%d)", tab.Year, tab.Count)
		if active.Valid && tab.Year == active.Year {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// EmptyMessage is shown when the current selection has no projects.
func EmptyMessage(active model.Selection) string {
	if active.IsAll() {
		return "No projects found."
	}
	return fmt.Sprintf("No projects found for %s.", active.Year)
}

// RenderCard renders one project card of the given outer width.
func RenderCard(p model.Project, width int) string {
	inner := width - 4 // border and padding
	if inner < 10 {
		inner = 10
	}

	title := p.Title
	badge := p.Year.Raw()
	if p.IsPinned {
		title = pinMark + " " + title
	}
	titleWidth := inner - util.GetDisplayWidth(badge) - 1
	header := util.PadRight(util.Truncate(title, titleWidth), titleWidth) + " " + badge

	lines := []string{titleStyle.Render(header)}
	if p.IsPinned {
		lines[0] = pinStyle.Render(util.PadRight(util.Truncate(title, titleWidth), titleWidth)) + " " + badgeStyle.Render(badge)
	}

	if p.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Width(inner).Render(p.Description))
	}

	if techs := renderTechs(p.Technologies, inner); techs != "" {
		lines = append(lines, techs)
	}

	if p.URL != "" {
		lines = append(lines, linkStyle.Render(util.Truncate("Live Preview ↗ "+p.URL, inner)))
	}

	style := cardStyle
	if p.IsPinned {
		style = pinnedCardStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderTechs(names []string, width int) string {
	if len(names) == 0 {
		return ""
	}

	chips := make([]string, 0, len(names))
	for _, tech := range icons.Resolve(names) {
		if tech.Icon != "" {
			chips = append(chips, "◆ "+tech.Name)
		} else {
			chips = append(chips, tech.Name)
		}
	}
	return badgeStyle.Width(width).Render(strings.Join(chips, " · "))
}

// RenderCards lays cards out in rows of cols.
func RenderCards(projects []model.Project, cols, cardWidth int) string {
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(projects); start += cols {
		end := start + cols
		if end > len(projects) {
			end = len(projects)
		}

		cards := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, RenderCard(projects[i], cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderEmpty renders the empty state.
func RenderEmpty(active model.Selection, width int) string {
	return emptyStyle.Render(util.CenterText(EmptyMessage(active), width))
}
