package model

import "fmt"

// Project is a single portfolio entry. Only Year and IsPinned drive the grid;
// the rest is display data passed through untouched.
type Project struct {
	Title        string    `json:"title" yaml:"title"`
	Year         YearValue `json:"year" yaml:"year"`
	IsPinned     bool      `json:"isPinned,omitempty" yaml:"isPinned,omitempty"`
	Description  string    `json:"description,omitempty" yaml:"description,omitempty"`
	Image        string    `json:"image,omitempty" yaml:"image,omitempty"`
	URL          string    `json:"url,omitempty" yaml:"url,omitempty"`
	Technologies []string  `json:"technologies,omitempty" yaml:"technologies,omitempty"`
}

// Key returns a row identifier unique within one rendered list. Titles alone
// are not unique, so the position is part of the key.
func (p Project) Key(index int) string {
	return fmt.Sprintf("%s-%s-%d", p.Title, p.Year.Raw(), index)
}

// ProjectList is the document shape accepted by the loader when the records
// are wrapped in an object instead of a bare list.
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// Selection is the active year tab. The zero value is AllYears.
type Selection struct {
	Year  Year
	Valid bool
}

// AllYears selects every record regardless of year.
var AllYears = Selection{}

// SelectYear returns a selection for a concrete year.
func SelectYear(y Year) Selection {
	return Selection{Year: y, Valid: true}
}

// IsAll reports whether the selection is the no-filter sentinel.
func (s Selection) IsAll() bool {
	return !s.Valid
}

func (s Selection) String() string {
	if !s.Valid {
		return "all"
	}
	return s.Year.String()
}

// YearTab is one entry of the year strip: a year and how many records it has.
type YearTab struct {
	Year  Year `json:"year"`
	Count int  `json:"count"`
}

// FileEvent represents a change to one of the watched project files.
type FileEvent struct {
	Path      string
	Operation string
}
