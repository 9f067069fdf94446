package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-portfolio-grid/internal/presentation/layout"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

const maxDescriptionWidth = 48

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		headers: []string{"#", "Pinned", "Title", "Year", "Technologies", "Description"},
	}
}

func (f *TableFormatter) Format(view GridView) error {
	if len(view.Projects) == 0 {
		_, err := fmt.Fprintln(f.w, layout.EmptyMessage(view.Active))
		return err
	}

	rows := f.rows(view)
	widths := f.calculateColumnWidths(rows)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, row := range rows {
		f.printRow(row, widths)
	}
	f.printBorder(widths, "bottom")

	_, err := fmt.Fprintf(f.w, "Showing %s of %d (year: %s)\n",
		util.Pluralize(len(view.Projects), "project", "projects"), view.Total, view.Active)
	return err
}

func (f *TableFormatter) rows(view GridView) [][]string {
	rows := make([][]string, len(view.Projects))
	for i, p := range view.Projects {
		pinned := ""
		if p.IsPinned {
			pinned = "★"
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			pinned,
			p.Title,
			p.Year.Raw(),
			strings.Join(p.Technologies, ", "),
			util.Truncate(p.Description, maxDescriptionWidth),
		}
	}
	return rows
}

// calculateColumnWidths sizes each column to its widest cell in display cells
func (f *TableFormatter) calculateColumnWidths(rows [][]string) []int {
	widths := make([]int, len(f.headers))
	for i, header := range f.headers {
		widths[i] = util.GetDisplayWidth(header)
	}

	for _, row := range rows {
		for i, value := range row {
			if w := util.GetDisplayWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string
	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2))
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(f.w, b.String())
}

// printRow prints a row; the index and year columns are right-aligned
func (f *TableFormatter) printRow(values []string, widths []int) {
	var b strings.Builder
	b.WriteString("│")
	for i, value := range values {
		b.WriteString(" ")
		if i == 0 || i == 3 {
			b.WriteString(util.PadLeft(value, widths[i]))
		} else {
			b.WriteString(util.PadRight(value, widths[i]))
		}
		b.WriteString(" │")
	}
	fmt.Fprintln(f.w, b.String())
}
