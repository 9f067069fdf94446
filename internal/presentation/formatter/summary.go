package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-portfolio-grid/internal/presentation/layout"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

// SummaryFormatter prints per-year totals instead of the projects themselves.
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

func (f *SummaryFormatter) Format(view GridView) error {
	var b strings.Builder

	b.WriteString(strings.Repeat("=", 60) + "\n")
	b.WriteString("Portfolio Summary\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	fmt.Fprintf(&b, "Total Projects: %d\n", view.Total)
	fmt.Fprintf(&b, "Years: %d\n", len(view.Tabs))
	if len(view.Tabs) > 0 {
		newest := view.Tabs[0].Year
		oldest := view.Tabs[len(view.Tabs)-1].Year
		if newest == oldest {
			fmt.Fprintf(&b, "Year Range: %s\n", newest)
		} else {
			fmt.Fprintf(&b, "Year Range: %s to %s\n", oldest, newest)
		}
	}
	b.WriteString("\n")

	if len(view.Tabs) == 0 {
		b.WriteString(layout.EmptyMessage(view.Active) + "\n\n")
		b.WriteString(strings.Repeat("=", 60) + "\n")
		_, err := io.WriteString(f.w, b.String())
		return err
	}

	b.WriteString("Projects by Year:\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, tab := range view.Tabs {
		marker := " "
		if view.Active.Valid && view.Active.Year == tab.Year {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s  %s  %s\n",
			marker,
			util.PadLeft(tab.Year.String(), 8),
			util.PadLeft(util.Pluralize(tab.Count, "project", "projects"), 12),
			util.PadLeft(util.FormatPercentage(tab.Count, view.Total), 7))
	}
	b.WriteString("\n")

	pinned := 0
	for _, p := range view.Projects {
		if p.IsPinned {
			pinned++
		}
	}
	fmt.Fprintf(&b, "Selected Year: %s (%s, %d pinned)\n",
		view.Active, util.Pluralize(len(view.Projects), "project", "projects"), pinned)

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	_, err := io.WriteString(f.w, b.String())
	return err
}
