// Package detail projects records into label/value rows for read-only views.
// Absent values are dropped entirely rather than shown as placeholders.
package detail

import (
	"html"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"

	"biodex/internal/domain"
)

// Field is one declared detail line. Value is a *string, *int64, string,
// int64 or nil; anything nil (or a nil pointer) is absent.
type Field struct {
	Label  string
	Value  any
	Italic bool
	// Markdown marks long-form text a renderer may format.
	Markdown bool
}

// Row is a rendered field.
type Row struct {
	Label    string
	Value    string
	Italic   bool
	Markdown bool
}

var sanitizer = bluemonday.StrictPolicy()

// Project renders the present fields in order. Integers get grouped thousands
// separators. Plain text is shown as written; Markdown text is stripped of
// HTML before a renderer sees it.
func Project(fields []Field) []Row {
	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		value, ok := format(f.Value)
		if !ok {
			continue
		}
		if f.Markdown {
			value = clean(value)
		}
		rows = append(rows, Row{Label: f.Label, Value: value, Italic: f.Italic, Markdown: f.Markdown})
	}
	return rows
}

func format(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case *string:
		if val == nil {
			return "", false
		}
		return *val, true
	case string:
		return val, true
	case *int64:
		if val == nil {
			return "", false
		}
		return humanize.Comma(*val), true
	case int64:
		return humanize.Comma(val), true
	case int:
		return humanize.Comma(int64(val)), true
	case domain.Kingdom:
		return string(val), true
	default:
		return "", false
	}
}

// clean drops tags and unescapes the entities the sanitizer introduces.
func clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(sanitizer.Sanitize(s)))
}

// SpeciesFields declares the species detail lines.
func SpeciesFields(s domain.Species) []Field {
	return []Field{
		{Label: "Scientific Name", Value: s.ScientificName, Italic: true},
		{Label: "Common Name", Value: s.CommonName},
		{Label: "Kingdom", Value: s.Kingdom},
		{Label: "Total Population", Value: s.TotalPopulation},
		{Label: "Description", Value: s.Description, Markdown: true},
	}
}

// ProfileFields declares the user detail lines.
func ProfileFields(p domain.Profile) []Field {
	return []Field{
		{Label: "Name", Value: p.DisplayName},
		{Label: "Email", Value: p.Email, Italic: true},
		{Label: "Bio", Value: p.Biography, Markdown: true},
	}
}

// Species is shorthand for Project(SpeciesFields(s)).
func Species(s domain.Species) []Row {
	return Project(SpeciesFields(s))
}

// Profile is shorthand for Project(ProfileFields(p)).
func Profile(p domain.Profile) []Row {
	return Project(ProfileFields(p))
}

// Plain renders rows as "Label: value" lines.
func Plain(rows []Row) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Label)
		b.WriteString(": ")
		b.WriteString(r.Value)
	}
	return b.String()
}
