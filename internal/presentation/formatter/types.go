package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
)

// GridView is what every formatter renders: the derived view plus the number
// of records loaded before filtering.
type GridView struct {
	filter.View
	Total int
}

// NewGridView wraps a derived view.
func NewGridView(view filter.View, total int) GridView {
	return GridView{View: view, Total: total}
}

// Formatter writes a GridView in one output format.
type Formatter interface {
	Format(view GridView) error
}

// Output formats accepted by NewFormatter.
const (
	FormatTable   = "table"
	FormatCards   = "cards"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatSummary = "summary"
)

// Formats lists the accepted output names in help order.
var Formats = []string{FormatTable, FormatCards, FormatJSON, FormatCSV, FormatSummary}

// NewFormatter returns the formatter for format. An empty name selects the
// table. width only affects the cards layout.
func NewFormatter(format string, w io.Writer, width int) (Formatter, error) {
	switch format {
	case FormatTable, "":
		return NewTableFormatter(w), nil
	case FormatCards:
		return NewCardsFormatter(w, width), nil
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatSummary:
		return NewSummaryFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %v)", format, Formats)
	}
}
