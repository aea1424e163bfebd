package search

import (
	"testing"

	"github.com/toolshedapp/toolshed/internal/model"
)

func fixtures() []model.Listing {
	return []model.Listing{
		{ID: "1", Name: "Drill", PricePerDay: 20, Category: model.CategoryPowerTools},
		{ID: "2", Name: "Ladder", PricePerDay: 15, Category: model.CategoryLadders, Archived: true},
		{ID: "3", Name: "angle grinder", PricePerDay: 25, Category: model.CategoryPowerTools},
		{ID: "4", Name: "Broom", PricePerDay: 5, Category: model.CategoryCleaning},
	}
}

func names(ls []model.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterExcludesArchived(t *testing.T) {
	listings := []model.Listing{
		{Name: "Drill", PricePerDay: 20, Category: model.CategoryPowerTools},
		{Name: "Ladder", PricePerDay: 15, Category: model.CategoryLadders, Archived: true},
	}
	got := names(Filter(listings, Query{}))
	if !equal(got, []string{"Drill"}) {
		t.Errorf("empty query must return only unarchived listings, got %v", got)
	}
}

func TestFilterTextCaseInsensitive(t *testing.T) {
	for _, q := range []string{"dr", "DR", "  dR  "} {
		got := names(Filter(fixtures(), Query{Text: q}))
		if !equal(got, []string{"Drill"}) {
			t.Errorf("query %q: got %v, want [Drill]", q, got)
		}
	}
	// Substring match anywhere in the name, not only the prefix.
	got := names(Filter(fixtures(), Query{Text: "GRIND"}))
	if !equal(got, []string{"angle grinder"}) {
		t.Errorf("substring query: got %v", got)
	}
}

func TestFilterCategoryExactMatch(t *testing.T) {
	got := names(Filter(fixtures(), Query{Category: model.CategoryPowerTools}))
	if !equal(got, []string{"angle grinder", "Drill"}) {
		t.Errorf("category filter: got %v", got)
	}
	if out := Filter(fixtures(), Query{Category: "power"}); len(out) != 0 {
		t.Errorf("category match must be exact, got %v", names(out))
	}
}

func TestFilterPriceBounds(t *testing.T) {
	cases := []struct {
		name     string
		min, max string
		want     []string
	}{
		{"both bounds", "10", "22", []string{"Drill"}},
		{"min only", "21", "", []string{"angle grinder"}},
		{"max only", "", "10", []string{"Broom"}},
		{"empty bounds unbounded", "", "", []string{"angle grinder", "Broom", "Drill"}},
		{"unparseable min behaves as empty", "abc", "", []string{"angle grinder", "Broom", "Drill"}},
		{"unparseable max behaves as empty", "", "12.x", []string{"angle grinder", "Broom", "Drill"}},
		{"inclusive bounds", "20", "20", []string{"Drill"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := names(Filter(fixtures(), Query{MinPrice: tc.min, MaxPrice: tc.max}))
			if !equal(got, tc.want) {
				t.Errorf("min=%q max=%q: got %v, want %v", tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestFilterSortsByNameAscending(t *testing.T) {
	got := names(Filter(fixtures(), Query{}))
	// Case-insensitive collation: "angle grinder" sorts before "Broom".
	want := []string{"angle grinder", "Broom", "Drill"}
	if !equal(got, want) {
		t.Errorf("sort order: got %v, want %v", got, want)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	listings := fixtures()
	Filter(listings, Query{Text: "drill", MinPrice: "1", MaxPrice: "100"})
	if listings[1].Name != "Ladder" || !listings[1].Archived {
		t.Error("input snapshot mutated by Filter")
	}
	if len(listings) != 4 {
		t.Errorf("input length changed: %d", len(listings))
	}
}
