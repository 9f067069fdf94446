package layout

import (
	"os"

	"golang.org/x/term"

	"github.com/penwyp/go-portfolio-grid/internal/util"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minCardWidth  = 28
	cardGap       = 1

	twoColumnWidth   = 76
	threeColumnWidth = 120
)

// Sizer answers layout questions for a terminal of a given size.
type Sizer struct {
	width  int
	height int
}

// NewSizer creates a sizer for an explicit terminal size. Non-positive
// dimensions fall back to 80x24.
func NewSizer(width, height int) *Sizer {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Sizer{width: width, height: height}
}

// DetectSizer measures stdout, falling back to 80x24 when it is not a terminal.
func DetectSizer() *Sizer {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		util.LogDebugf("Terminal size unavailable, using %dx%d: %v", defaultWidth, defaultHeight, err)
		return NewSizer(defaultWidth, defaultHeight)
	}
	return NewSizer(width, height)
}

func (s *Sizer) Width() int  { return s.width }
func (s *Sizer) Height() int { return s.height }

// Columns returns how many cards fit side by side: one on narrow terminals,
// two on medium and three on wide ones.
func (s *Sizer) Columns() int {
	switch {
	case s.width >= threeColumnWidth:
		return 3
	case s.width >= twoColumnWidth:
		return 2
	default:
		return 1
	}
}

// CardWidth is the outer width of a single card for the current column count.
func (s *Sizer) CardWidth() int {
	cols := s.Columns()
	w := (s.width - (cols-1)*cardGap) / cols
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// BodyHeight is the number of rows left for content below the header and
// above the status line.
func (s *Sizer) BodyHeight() int {
	h := s.height - 6
	if h < 1 {
		h = 1
	}
	return h
}
