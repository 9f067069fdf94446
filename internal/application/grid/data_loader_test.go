package grid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectsJSON = `[
	{"title": "Site", "year": 2024, "isPinned": true},
	{"title": "Shop", "year": "2023"}
]`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDataLoaderAndRefresh(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "projects.json")
	yamlPath := filepath.Join(dir, "more.yaml")
	writeFile(t, jsonPath, projectsJSON)
	writeFile(t, yamlPath, "- title: Blog\n  year: 2022\n")

	config := &Config{Files: []string{jsonPath, yamlPath}}
	require.NoError(t, config.Validate())

	dl := NewDataLoader(config)
	assert.Len(t, dl.IdentifyChangedFiles(), 2)

	projects, err := dl.Load()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "Blog", projects[2].Title)
	assert.Empty(t, dl.IdentifyChangedFiles())

	rc := NewRefreshController(dl)

	_, reloaded, err := rc.Refresh(false)
	require.NoError(t, err)
	assert.False(t, reloaded)

	projects, reloaded, err = rc.Refresh(true)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Len(t, projects, 3)

	writeFile(t, yamlPath, "- title: Blog\n  year: 2022\n- title: Notes\n  year: 2021\n")
	assert.Equal(t, []string{yamlPath}, dl.IdentifyChangedFiles())

	projects, reloaded, err = rc.Refresh(false)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Len(t, projects, 4)
}

func TestRefreshFailureRetries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.json")
	writeFile(t, path, projectsJSON)

	config := &Config{Files: []string{path}}
	require.NoError(t, config.Validate())
	rc := NewRefreshController(NewDataLoader(config))

	_, _, err := rc.Refresh(false)
	require.NoError(t, err)

	writeFile(t, path, "{broken")
	_, reloaded, err := rc.Refresh(false)
	assert.Error(t, err)
	assert.False(t, reloaded)

	// the broken file is still considered changed on the next check
	writeFile(t, path, projectsJSON+" ")
	projects, reloaded, err := rc.Refresh(false)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Len(t, projects, 2)
}

func TestDataLoaderRescansDirectory(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "projects.json")
	writeFile(t, first, projectsJSON)

	config := &Config{Dir: dir}
	require.NoError(t, config.Validate())
	dl := NewDataLoader(config)
	rc := NewRefreshController(dl)

	projects, reloaded, err := rc.Refresh(false)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Len(t, projects, 2)
	assert.Empty(t, dl.IdentifyChangedFiles())

	added := filepath.Join(dir, "nested", "more.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(added), 0755))
	writeFile(t, added, "- title: Blog\n  year: 2022\n")
	assert.Equal(t, []string{added}, dl.IdentifyChangedFiles())

	projects, reloaded, err = rc.Refresh(false)
	require.NoError(t, err)
	assert.True(t, reloaded)
	assert.Len(t, projects, 3)

	require.NoError(t, os.Remove(first))
	assert.Equal(t, []string{first}, dl.IdentifyChangedFiles())

	projects, reloaded, err = rc.Refresh(false)
	require.NoError(t, err)
	assert.True(t, reloaded)
	require.Len(t, projects, 1)
	assert.Equal(t, "Blog", projects[0].Title)

	require.NoError(t, os.Remove(added))
	_, _, err = rc.Refresh(true)
	assert.ErrorIs(t, err, ErrNoFiles)
}
