// Package filter derives the visible movie list from the last fetched one.
//
// Apply never mutates its input and never invents entries: the result is
// always a subset of the source, kept in source order unless a sort key
// asks otherwise.
package filter

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/mobiehub/internal/client/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the catalog ordering.
type SortKey string

const (
	SortNone    SortKey = ""
	SortRating  SortKey = "rating"
	SortCreated SortKey = "createdDate"
	SortName    SortKey = "name"
)

// ParseSortKey maps user input to a SortKey. Unknown input yields SortNone
// and false.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rating", "calificacion":
		return SortRating, true
	case "createddate", "fechacreacion", "date", "created":
		return SortCreated, true
	case "name", "nombre":
		return SortName, true
	}
	return SortNone, false
}

// State holds the predicates applied to a list. Zero fields impose no
// restriction.
type State struct {
	Status models.Status
	Search string
	Sort   SortKey
	Locale language.Tag
}

// Apply returns the entries of source that satisfy st, ordered by st.Sort.
func Apply(source []models.Movie, st State) []models.Movie {
	out := make([]models.Movie, 0, len(source))

	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(st.Search))

	for _, m := range source {
		if st.Status != "" && st.Status != models.StatusAll && m.Status != st.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(fold.String(m.Name), term) &&
			!strings.Contains(fold.String(m.Description), term) {
			continue
		}
		out = append(out, m)
	}

	switch st.Sort {
	case SortRating:
		slices.SortStableFunc(out, func(a, b models.Movie) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		})
	case SortCreated:
		slices.SortStableFunc(out, func(a, b models.Movie) int {
			return b.CreateAt.Compare(a.CreateAt)
		})
	case SortName:
		col := collate.New(st.Locale)
		slices.SortStableFunc(out, func(a, b models.Movie) int {
			return col.CompareString(a.Name, b.Name)
		})
	}

	return out
}
