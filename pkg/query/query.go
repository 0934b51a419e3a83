// Package query narrows record lists by free-text search and equality
// filters. Search and the two display filters compose with logical AND; the
// "All" sentinel disables a filter. Filter option lists are derived from the
// records actually present, never declared statically.
package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sitedesk/sitedesk/pkg/entity"
)

// FilterAll is the sentinel filter value meaning "no filter".
const FilterAll = "All"

// Search keeps the records where the string form of any of the given fields
// contains term, case-insensitively. An empty term returns records
// unchanged. The result is always a subset of the input.
func Search(records []entity.Record, term string, fields []string) []entity.Record {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	var out []entity.Record
	for _, r := range records {
		for _, f := range fields {
			v, ok := r[f]
			if !ok {
				continue
			}
			if strings.Contains(strings.ToLower(stringify(v)), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// Filter keeps the records whose field equals value. The FilterAll sentinel
// returns records unchanged. Values are compared by their string form so
// numeric and boolean fields filter the way they display.
func Filter(records []entity.Record, field, value string) []entity.Record {
	if value == FilterAll {
		return records
	}
	var out []entity.Record
	for _, r := range records {
		if stringify(r[field]) == value {
			out = append(out, r)
		}
	}
	return out
}

// Options returns the distinct observed values of field across records,
// sorted ascending, with FilterAll prepended. Absent and empty values are
// skipped.
func Options(records []entity.Record, field string) []string {
	seen := make(map[string]bool)
	for _, r := range records {
		v, ok := r[field]
		if !ok {
			continue
		}
		s := stringify(v)
		if s == "" {
			continue
		}
		seen[s] = true
	}
	distinct := make([]string, 0, len(seen))
	for v := range seen {
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)
	return append([]string{FilterAll}, distinct...)
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}
