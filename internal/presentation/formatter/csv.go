package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

// Format writes one record per visible project. An empty view yields the
// header row only.
func (f *CSVFormatter) Format(view GridView) error {
	w := csv.NewWriter(f.w)

	headers := []string{"Key", "Title", "Year", "Pinned", "Technologies", "URL", "Image", "Description"}
	if err := w.Write(headers); err != nil {
		return err
	}

	for i, p := range view.Projects {
		record := []string{
			p.Key(i),
			p.Title,
			p.Year.Raw(),
			strconv.FormatBool(p.IsPinned),
			strings.Join(p.Technologies, "; "),
			p.URL,
			p.Image,
			p.Description,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
