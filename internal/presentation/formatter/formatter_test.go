package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-portfolio-grid/internal/core/filter"
	"github.com/penwyp/go-portfolio-grid/internal/core/model"
	"github.com/penwyp/go-portfolio-grid/internal/data/loader"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

func testProjects() []model.Project {
	return []model.Project{
		{Title: "Shop", Year: model.NumberYear(2024), Technologies: []string{"PHP", "Laravel"}},
		{Title: "Portfolio", Year: model.TextYear("2024"), IsPinned: true, Description: "Personal site", URL: "https://example.com"},
		{Title: "Blog", Year: model.NumberYear(2023), Technologies: []string{"Go"}},
	}
}

func testView(sel model.Selection) GridView {
	projects := testProjects()
	return NewGridView(filter.Derive(projects, sel), len(projects))
}

func emptyView() GridView {
	return NewGridView(filter.Derive(nil, model.AllYears), 0)
}

func TestNewFormatter(t *testing.T) {
	var buf bytes.Buffer

	for _, name := range append([]string{""}, Formats...) {
		f, err := NewFormatter(name, &buf, 80)
		require.NoError(t, err, name)
		assert.NotNil(t, f, name)
	}

	_, err := NewFormatter("xml", &buf, 80)
	assert.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(testView(model.AllYears)))

	out := buf.String()
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "Portfolio")
	assert.Contains(t, out, "PHP, Laravel")
	assert.NotContains(t, out, "Blog")
	assert.Contains(t, out, "Showing 2 projects of 3 (year: 2024)")

	// pinned record is listed first
	assert.Less(t, strings.Index(out, "Portfolio"), strings.Index(out, "Shop"))

	// every row has the same display width
	lines := strings.Split(strings.TrimSpace(out), "\n")
	width := util.GetDisplayWidth(lines[0])
	for _, line := range lines[:len(lines)-1] {
		assert.Equal(t, width, util.GetDisplayWidth(line), line)
	}
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(emptyView()))
	assert.Equal(t, "No projects found.\n", buf.String())

	buf.Reset()
	view := NewGridView(filter.View{Active: model.SelectYear(2020)}, 0)
	require.NoError(t, NewTableFormatter(&buf).Format(view))
	assert.Equal(t, "No projects found for 2020.\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(testView(model.SelectYear(2024))))

	var decoded struct {
		ActiveYear *float64 `json:"activeYear"`
		Years      []struct {
			Year  float64 `json:"year"`
			Count int     `json:"count"`
		} `json:"years"`
		Total    int `json:"total"`
		Projects []struct {
			Key          string `json:"key"`
			Title        string `json:"title"`
			IsPinned     bool   `json:"isPinned"`
			Technologies []struct {
				Name    string `json:"name"`
				IconURL string `json:"iconUrl"`
			} `json:"technologies"`
		} `json:"projects"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	require.NotNil(t, decoded.ActiveYear)
	assert.Equal(t, 2024.0, *decoded.ActiveYear)
	assert.Equal(t, 3, decoded.Total)
	require.Len(t, decoded.Years, 2)
	assert.Equal(t, 2024.0, decoded.Years[0].Year)
	assert.Equal(t, 2, decoded.Years[0].Count)

	require.Len(t, decoded.Projects, 2)
	assert.Equal(t, "Portfolio", decoded.Projects[0].Title)
	assert.Equal(t, "Portfolio-2024-0", decoded.Projects[0].Key)
	assert.True(t, decoded.Projects[0].IsPinned)
	assert.Empty(t, decoded.Projects[0].Technologies)
	require.Len(t, decoded.Projects[1].Technologies, 2)
	assert.Contains(t, decoded.Projects[1].Technologies[0].IconURL, "php.svg")
}

func TestJSONFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(emptyView()))

	out := buf.String()
	assert.Contains(t, out, `"activeYear": null`)
	assert.Contains(t, out, `"years": []`)
	assert.Contains(t, out, `"projects": []`)
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(testView(model.SelectYear(2023))))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Key", records[0][0])
	assert.Equal(t, []string{"Blog-2023-0", "Blog", "2023", "false", "Go", "", "", ""}, records[1])
}

func TestCSVFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(emptyView()))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestSummaryFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSummaryFormatter(&buf).Format(testView(model.AllYears)))

	out := buf.String()
	assert.Contains(t, out, "Total Projects: 3")
	assert.Contains(t, out, "Year Range: 2023 to 2024")
	assert.Contains(t, out, "2 projects")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "Selected Year: 2024 (2 projects, 1 pinned)")

	buf.Reset()
	require.NoError(t, NewSummaryFormatter(&buf).Format(emptyView()))
	assert.Contains(t, buf.String(), "No projects found.")
}

func TestCardsFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCardsFormatter(&buf, 100).Format(testView(model.AllYears)))

	out := buf.String()
	assert.Contains(t, out, "Portfolio")
	assert.Contains(t, out, "2024 (2)")
	assert.Contains(t, out, "2023 (1)")
	assert.NotContains(t, out, "Blog")
}

// oddYearsView decodes records whose years never coerce, plus one that does,
// and shows all of them the way --all does.
func oddYearsView(t *testing.T) GridView {
	jsonProjects, err := loader.Decode("p.json", []byte(`[
		{"title": "Text", "year": "someday"},
		{"title": "Flag", "year": true},
		{"title": "Dated", "year": 2022}
	]`))
	require.NoError(t, err)

	yamlProjects, err := loader.Decode("p.yaml", []byte(`
- title: Stamp
  year: 2023-06-01
- title: Listed
  year: [2023]
- title: Endless
  year: .inf
`))
	require.NoError(t, err)

	projects := append(jsonProjects, yamlProjects...)
	view := filter.Derive(projects, model.AllYears)
	view.Active = model.AllYears
	view.Projects = filter.SortPinnedFirst(filter.FilterByYear(projects, model.AllYears))
	return NewGridView(view, len(projects))
}

func TestFormattersAllViewWithOddYears(t *testing.T) {
	titles := []string{"Text", "Flag", "Dated", "Stamp", "Listed", "Endless"}

	for _, name := range Formats {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			f, err := NewFormatter(name, &buf, 120)
			require.NoError(t, err)
			require.NoError(t, f.Format(oddYearsView(t)))

			out := buf.String()
			switch name {
			case FormatSummary:
				assert.Contains(t, out, "Total Projects: 6")
				assert.Contains(t, out, "Year Range: 2022")
				assert.Contains(t, out, "Selected Year: all (6 projects, 0 pinned)")
			default:
				for _, title := range titles {
					assert.Contains(t, out, title)
				}
			}
		})
	}
}

func TestJSONFormatterOddYears(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf).Format(oddYearsView(t)))

	var decoded struct {
		ActiveYear *float64 `json:"activeYear"`
		Projects   []struct {
			Title string      `json:"title"`
			Year  interface{} `json:"year"`
		} `json:"projects"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	assert.Nil(t, decoded.ActiveYear)
	years := make(map[string]interface{}, len(decoded.Projects))
	for _, p := range decoded.Projects {
		years[p.Title] = p.Year
	}
	assert.Equal(t, map[string]interface{}{
		"Text":    "someday",
		"Flag":    "true",
		"Dated":   2022.0,
		"Stamp":   "2023-06-01",
		"Listed":  "",
		"Endless": ".inf",
	}, years)
}

func TestCSVFormatterOddYears(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(oddYearsView(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)

	years := make(map[string]string, len(records)-1)
	for _, r := range records[1:] {
		years[r[1]] = r[2]
	}
	assert.Equal(t, "someday", years["Text"])
	assert.Equal(t, "true", years["Flag"])
	assert.Equal(t, "2023-06-01", years["Stamp"])
	assert.Equal(t, ".inf", years["Endless"])
}
