// Package search implements the derived browse view over catalog listings.
// Filtering is a pure function of its inputs: it never mutates the supplied
// snapshot and is safe to call repeatedly and concurrently.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/toolshedapp/toolshed/internal/model"
)

// Query carries the browse filters as entered by the user. Price bounds stay
// strings on purpose: an empty or unparseable bound means "no constraint",
// mirroring a cleared or half-typed form field, and must never fail.
type Query struct {
	Text     string
	Category string
	MinPrice string
	MaxPrice string
}

// Filter narrows and orders the listings for display. Stages apply in a
// fixed order, each narrowing the previous:
//
//  1. archived listings are excluded unconditionally
//  2. non-empty trimmed query: case-insensitive substring match on the name
//  3. non-empty category: exact match
//  4. price within [min, max], absent bounds unbounded
//  5. sort survivors by name, locale-aware, ascending
func Filter(listings []model.Listing, q Query) []model.Listing {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	min := parseBound(q.MinPrice, math.Inf(-1))
	max := parseBound(q.MaxPrice, math.Inf(1))

	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if l.Archived {
			continue
		}
		if text != "" && !strings.Contains(strings.ToLower(l.Name), text) {
			continue
		}
		if q.Category != "" && l.Category != q.Category {
			continue
		}
		if l.PricePerDay < min || l.PricePerDay > max {
			continue
		}
		out = append(out, l)
	}

	// A collator is not safe for concurrent use, so each call builds its own.
	col := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// parseBound turns a user-supplied price bound into a float, falling back to
// def when the field is empty or does not parse as a number.
func parseBound(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return def
	}
	return v
}
