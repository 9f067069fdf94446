package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-portfolio-grid/internal/core/icons"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
)

type jsonProject struct {
	Key          string          `json:"key"`
	Title        string          `json:"title"`
	Year         model.YearValue `json:"year"`
	IsPinned     bool            `json:"isPinned"`
	Description  string          `json:"description,omitempty"`
	Image        string          `json:"image,omitempty"`
	URL          string          `json:"url,omitempty"`
	Technologies []icons.Tech    `json:"technologies"`
}

type jsonView struct {
	ActiveYear *model.Year     `json:"activeYear"`
	Years      []model.YearTab `json:"years"`
	Total      int             `json:"total"`
	Projects   []jsonProject   `json:"projects"`
}

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) Format(view GridView) error {
	out := jsonView{
		Years:    view.Tabs,
		Total:    view.Total,
		Projects: make([]jsonProject, len(view.Projects)),
	}
	if out.Years == nil {
		out.Years = []model.YearTab{}
	}
	if !view.Active.IsAll() {
		year := view.Active.Year
		out.ActiveYear = &year
	}

	for i, p := range view.Projects {
		out.Projects[i] = jsonProject{
			Key:          p.Key(i),
			Title:        p.Title,
			Year:         p.Year,
			IsPinned:     p.IsPinned,
			Description:  p.Description,
			Image:        p.Image,
			URL:          p.URL,
			Technologies: icons.Resolve(p.Technologies),
		}
	}

	data, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}
