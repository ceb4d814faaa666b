package gallery

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/skyview/internal/apod"
)

// SortProperty selects the field the derived list is ordered by.
type SortProperty string

const (
	SortByDate  SortProperty = "date"
	SortByTitle SortProperty = "title"
)

// SortOrder is the direction of the ordering.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// Query holds every input of a derivation except the raw collection.
type Query struct {
	Search   string
	Property SortProperty
	Order    SortOrder
}

// DefaultQuery matches everything, newest first.
func DefaultQuery() Query {
	return Query{Property: SortByDate, Order: Descending}
}

// ParseSortProperty maps user input onto a SortProperty.
func ParseSortProperty(s string) (SortProperty, error) {
	switch SortProperty(strings.ToLower(strings.TrimSpace(s))) {
	case SortByDate:
		return SortByDate, nil
	case SortByTitle:
		return SortByTitle, nil
	}
	return "", fmt.Errorf("unknown sort property %q (want date or title)", s)
}

// ParseSortOrder maps user input onto a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want asc or desc)", s)
}

// Next returns the property after p in the cycle date -> title -> date.
func (p SortProperty) Next() SortProperty {
	if p == SortByTitle {
		return SortByDate
	}
	return SortByTitle
}

// Toggle flips the direction.
func (o SortOrder) Toggle() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// Derive filters raw by a case-insensitive title match and orders the result.
// It never mutates raw and always returns a fresh, non-nil slice.
func Derive(raw []apod.Record, q Query) []apod.Record {
	needle := strings.ToLower(q.Search)
	out := make([]apod.Record, 0, len(raw))
	for _, r := range raw {
		if needle == "" || strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}

	compare := compareDates
	if q.Property == SortByTitle {
		compare = titleComparator()
	}
	if q.Order == Ascending {
		slices.SortStableFunc(out, compare)
	} else {
		slices.SortStableFunc(out, func(a, b apod.Record) int { return compare(b, a) })
	}
	return out
}

// Dedupe drops records whose date was already seen, keeping the first.
func Dedupe(raw []apod.Record) []apod.Record {
	seen := make(map[string]struct{}, len(raw))
	out := make([]apod.Record, 0, len(raw))
	for _, r := range raw {
		if _, dup := seen[r.Date]; dup {
			continue
		}
		seen[r.Date] = struct{}{}
		out = append(out, r)
	}
	return out
}

// compareDates orders calendar dates chronologically. Keys that do not parse
// sort after every valid date, by their trimmed text.
func compareDates(a, b apod.Record) int {
	ta, okA := a.ParseDate()
	tb, okB := b.ParseDate()
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return -1
	case okB:
		return 1
	}
	if c := strings.Compare(strings.TrimSpace(a.Date), strings.TrimSpace(b.Date)); c != 0 {
		return c
	}
	return strings.Compare(a.Date, b.Date)
}

// titleComparator builds a fresh collator per derivation; collators are not
// safe for concurrent use.
func titleComparator() func(a, b apod.Record) int {
	c := collate.New(language.English, collate.IgnoreCase)
	return func(a, b apod.Record) int {
		return c.CompareString(strings.ToLower(a.Title), strings.ToLower(b.Title))
	}
}

func indexOf(list []apod.Record, key string) int {
	return slices.IndexFunc(list, func(r apod.Record) bool { return r.Date == key })
}
