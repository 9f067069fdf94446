package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/go-portfolio-grid/internal/presentation/layout"
)

// CardsFormatter prints the same card grid the watch screen shows.
type CardsFormatter struct {
	w     io.Writer
	sizer *layout.Sizer
}

// NewCardsFormatter lays cards out for width columns; zero detects the
// terminal width.
func NewCardsFormatter(w io.Writer, width int) *CardsFormatter {
	sizer := layout.DetectSizer()
	if width > 0 {
		sizer = layout.NewSizer(width, sizer.Height())
	}
	return &CardsFormatter{w: w, sizer: sizer}
}

func (f *CardsFormatter) Format(view GridView) error {
	out := layout.GetLayoutStrategy(layout.StyleGrid).Render(view.View, f.sizer)
	_, err := fmt.Fprintln(f.w, out)
	return err
}
