// Package filter derives the year tabs and the visible project list from a
// set of project records and the currently selected year. Every function is
// pure: inputs are never modified and the same inputs give the same output.
package filter

import (
	"sort"

	"github.com/penwyp/go-portfolio-grid/internal/core/model"
)

// View is the fully derived state for one render.
type View struct {
	Years    []model.Year
	Tabs     []model.YearTab
	Active   model.Selection
	Projects []model.Project
}

// ComputeYears returns the distinct coercible years, most recent first.
func ComputeYears(projects []model.Project) []model.Year {
	seen := make(map[model.Year]struct{}, len(projects))
	years := make([]model.Year, 0, len(projects))

	for _, p := range projects {
		y, ok := p.Year.Number()
		if !ok {
			continue
		}
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}

	sort.Slice(years, func(i, j int) bool {
		return years[i] > years[j]
	})
	return years
}

// ResolveActiveYear reconciles a selection with the available years. An
// unset selection or one that points at a year no longer present falls back
// to the most recent year. With no years at all the result is AllYears even
// for a concrete selection: a selection cannot survive an empty year set.
func ResolveActiveYear(years []model.Year, current model.Selection) model.Selection {
	if len(years) == 0 {
		return model.AllYears
	}
	if current.IsAll() || !containsYear(years, current.Year) {
		return model.SelectYear(years[0])
	}
	return current
}

// FilterByYear keeps the records whose coerced year equals the selection.
// The AllYears sentinel returns the input unchanged.
func FilterByYear(projects []model.Project, active model.Selection) []model.Project {
	if projects == nil {
		return []model.Project{}
	}
	if active.IsAll() {
		return projects
	}

	filtered := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if y, ok := p.Year.Number(); ok && y == active.Year {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortPinnedFirst returns a copy with pinned records ahead of the rest. It is
// a stable partition: order inside each group is the input order.
func SortPinnedFirst(projects []model.Project) []model.Project {
	sorted := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.IsPinned {
			sorted = append(sorted, p)
		}
	}
	for _, p := range projects {
		if !p.IsPinned {
			sorted = append(sorted, p)
		}
	}
	return sorted
}

// CountForYear counts the records whose coerced year equals year.
func CountForYear(projects []model.Project, year model.Year) int {
	count := 0
	for _, p := range projects {
		if y, ok := p.Year.Number(); ok && y == year {
			count++
		}
	}
	return count
}

// Derive runs the whole pipeline in order: years, resolved selection,
// filtered subset, pinned-first ordering.
func Derive(projects []model.Project, current model.Selection) View {
	years := ComputeYears(projects)
	active := ResolveActiveYear(years, current)

	tabs := make([]model.YearTab, len(years))
	for i, y := range years {
		tabs[i] = model.YearTab{Year: y, Count: CountForYear(projects, y)}
	}

	return View{
		Years:    years,
		Tabs:     tabs,
		Active:   active,
		Projects: SortPinnedFirst(FilterByYear(projects, active)),
	}
}

// TabIndex returns the position of the active year among years, or -1.
func (v View) TabIndex() int {
	if v.Active.IsAll() {
		return -1
	}
	for i, y := range v.Years {
		if y == v.Active.Year {
			return i
		}
	}
	return -1
}

func containsYear(years []model.Year, y model.Year) bool {
	for _, candidate := range years {
		if candidate == y {
			return true
		}
	}
	return false
}
