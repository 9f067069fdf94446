package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Year is a coerced, finite project year. It is float based so that values
// such as "2023.5" compare the same way the source data intends.
type Year float64

// String prints whole years without a fractional part.
func (y Year) String() string {
	return strconv.FormatFloat(float64(y), 'f', -1, 64)
}

type yearKind int

const (
	yearMissing yearKind = iota
	yearNumber
	yearString
	yearOther
)

// YearValue is the year of a project exactly as it appeared in the source
// file. Records may carry a number, a numeric string or junk; Number performs
// the coercion.
type YearValue struct {
	raw  string
	kind yearKind
}

// NumberYear builds a YearValue from a numeric literal.
func NumberYear(v float64) YearValue {
	return YearValue{raw: strconv.FormatFloat(v, 'f', -1, 64), kind: yearNumber}
}

// TextYear builds a YearValue from a string literal.
func TextYear(s string) YearValue {
	return YearValue{raw: s, kind: yearString}
}

// Raw returns the year as written, or "" when absent.
func (v YearValue) Raw() string {
	return v.raw
}

// IsSet reports whether the record carried a year at all.
func (v YearValue) IsSet() bool {
	return v.kind != yearMissing
}

// Number coerces the value to a finite year. Missing values, booleans, empty
// or blank strings, unparsable text and non-finite numbers are rejected.
// Unsigned 0x, 0o and 0b integers are accepted; digit separators are not.
func (v YearValue) Number() (Year, bool) {
	switch v.kind {
	case yearNumber, yearString:
	default:
		return 0, false
	}

	s := strings.TrimSpace(v.raw)
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}

	if hasBasePrefix(strings.TrimLeft(s, "+-")) {
		if !hasBasePrefix(s) {
			return 0, false
		}
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return Year(n), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return Year(f), true
}

func hasBasePrefix(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

// String implements fmt.Stringer using the raw form.
func (v YearValue) String() string {
	return v.raw
}

// UnmarshalJSON accepts numbers, strings, null and anything else; only the
// first two can ever coerce to a year.
func (v *YearValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*v = YearValue{}
	case data[0] == '"':
		var s string
		if err := sonic.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid year string: %w", err)
		}
		*v = TextYear(s)
	case data[0] == '-' || (data[0] >= '0' && data[0] <= '9'):
		*v = YearValue{raw: string(data), kind: yearNumber}
	default:
		*v = YearValue{raw: string(data), kind: yearOther}
	}
	return nil
}

// MarshalJSON writes strings as strings and coercible numbers as numbers.
// Anything else is written as a string of its raw text so that one odd
// record cannot break the document.
func (v YearValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case yearMissing:
		return []byte("null"), nil
	case yearNumber:
		if y, ok := v.Number(); ok {
			return []byte(y.String()), nil
		}
	}
	return sonic.Marshal(v.raw)
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML scalars.
func (v *YearValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*v = YearValue{raw: node.Value, kind: yearOther}
		return nil
	}

	switch node.ShortTag() {
	case "!!null":
		*v = YearValue{}
	case "!!int", "!!float":
		*v = YearValue{raw: node.Value, kind: yearNumber}
	case "!!str":
		*v = TextYear(node.Value)
	default:
		*v = YearValue{raw: node.Value, kind: yearOther}
	}
	return nil
}

// MarshalYAML writes numbers as numbers and strings as strings.
func (v YearValue) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case yearMissing:
		return nil, nil
	case yearNumber:
		if f, ok := v.Number(); ok {
			return float64(f), nil
		}
		return v.raw, nil
	default:
		return v.raw, nil
	}
}
