package analyzer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-portfolio-grid/internal/core/model"
)

func writeProjects(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	content := `{"projects": [
		{"title": "Site", "year": 2024},
		{"title": "Shop", "year": "2023", "isPinned": true},
		{"title": "Old", "year": 2023},
		{"title": "Draft"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAnalyzeDefaultsToNewestYear(t *testing.T) {
	a := New(&Config{Files: []string{writeProjects(t)}}, &bytes.Buffer{})

	view, err := a.Analyze()
	require.NoError(t, err)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, model.SelectYear(2024), view.Active)
	require.Len(t, view.Projects, 1)
	assert.Equal(t, "Site", view.Projects[0].Title)
}

func TestAnalyzeSelectedYear(t *testing.T) {
	a := New(&Config{Files: []string{writeProjects(t)}, Year: model.SelectYear(2023)}, &bytes.Buffer{})

	view, err := a.Analyze()
	require.NoError(t, err)
	require.Len(t, view.Projects, 2)
	assert.Equal(t, "Shop", view.Projects[0].Title)

	a = New(&Config{Files: []string{writeProjects(t)}, Year: model.SelectYear(1990)}, &bytes.Buffer{})
	view, err = a.Analyze()
	require.NoError(t, err)
	assert.Equal(t, model.SelectYear(2024), view.Active)
}

func TestAnalyzeShowAll(t *testing.T) {
	a := New(&Config{Files: []string{writeProjects(t)}, ShowAll: true}, &bytes.Buffer{})

	view, err := a.Analyze()
	require.NoError(t, err)
	assert.True(t, view.Active.IsAll())
	require.Len(t, view.Projects, 4)
	assert.Equal(t, "Shop", view.Projects[0].Title)
	assert.Equal(t, "Draft", view.Projects[3].Title)
	assert.Len(t, view.Tabs, 2)
}

func TestAnalyzeErrors(t *testing.T) {
	_, err := New(&Config{}, &bytes.Buffer{}).Analyze()
	assert.Error(t, err)

	_, err = New(&Config{Files: []string{filepath.Join(t.TempDir(), "missing.json")}}, &bytes.Buffer{}).Analyze()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	a := New(&Config{Files: []string{writeProjects(t)}, OutputFormat: "csv"}, &buf)
	require.NoError(t, a.Run())
	assert.Contains(t, buf.String(), "Site-2024-0,Site,2024,false")

	a = New(&Config{Files: []string{writeProjects(t)}, OutputFormat: "yaml"}, &buf)
	assert.Error(t, a.Run())
}
