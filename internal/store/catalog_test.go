package store

import (
	"reflect"
	"testing"

	"github.com/toolshedapp/toolshed/internal/model"
)

func TestCatalogAddAssignsIDAndDefaults(t *testing.T) {
	c := newTestEnv(t).catalog()

	in := listing("Drill", 20, model.CategoryPowerTools)
	in.Archived = true // must be overridden on add
	id1 := c.Add(in)
	id2 := c.Add(listing("Sander", 12, "no-such-category"))

	if id1 == "" || id1 == id2 {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", id1, id2)
	}
	l1, ok := c.Get(id1)
	if !ok {
		t.Fatalf("listing %s not found after add", id1)
	}
	if l1.Archived {
		t.Error("add must force archived=false")
	}
	l2, _ := c.Get(id2)
	if l2.Category != model.CategoryOther {
		t.Errorf("unknown category should normalize to %q, got %q", model.CategoryOther, l2.Category)
	}
}

func TestCatalogUpdateMergesPatch(t *testing.T) {
	c := newTestEnv(t).catalog()
	id := c.Add(listing("Drill", 20, model.CategoryPowerTools))

	price := 25.5
	name := "Hammer Drill"
	c.Update(id, model.ListingPatch{Name: &name, PricePerDay: &price})

	l, _ := c.Get(id)
	if l.Name != "Hammer Drill" || l.PricePerDay != 25.5 {
		t.Errorf("patch not merged: %+v", l)
	}
	if l.Category != model.CategoryPowerTools {
		t.Errorf("untouched field changed: %q", l.Category)
	}

	// Unknown ID is a silent no-op, not an error or a new listing.
	c.Update("missing", model.ListingPatch{Name: &name})
	if got := len(c.Listings()); got != 1 {
		t.Errorf("update on missing id changed collection size: %d", got)
	}
}

func TestCatalogSetArchived(t *testing.T) {
	c := newTestEnv(t).catalog()
	id := c.Add(listing("Ladder", 15, model.CategoryLadders))

	c.SetArchived(id, true)
	if l, _ := c.Get(id); !l.Archived {
		t.Error("expected archived=true")
	}
	c.SetArchived(id, false)
	if l, _ := c.Get(id); l.Archived {
		t.Error("expected archived=false")
	}
}

func TestCatalogDeleteCascadesFavorites(t *testing.T) {
	c := newTestEnv(t).catalog()
	id := c.Add(listing("Drill", 20, model.CategoryPowerTools))
	keep := c.Add(listing("Sander", 12, model.CategoryPowerTools))

	c.ToggleFavorite(id)
	c.ToggleFavorite(keep)
	c.Delete(id)

	if _, ok := c.Get(id); ok {
		t.Fatal("listing still present after delete")
	}
	if c.IsFavorite(id) {
		t.Error("favorite must be removed when its listing is deleted")
	}
	if !c.IsFavorite(keep) {
		t.Error("unrelated favorite must survive the cascade")
	}

	// Invariant over a longer add/delete sequence: no favorite may ever
	// reference a missing listing.
	for i := 0; i < 5; i++ {
		tmp := c.Add(listing("Tmp", 1, model.CategoryOther))
		c.ToggleFavorite(tmp)
		c.Delete(tmp)
	}
	known := make(map[string]bool)
	for _, l := range c.Listings() {
		known[l.ID] = true
	}
	for _, fav := range c.Favorites() {
		if !known[fav] {
			t.Errorf("favorite %s references no existing listing", fav)
		}
	}
}

func TestToggleFavoriteSelfInverse(t *testing.T) {
	c := newTestEnv(t).catalog()
	id := c.Add(listing("Drill", 20, model.CategoryPowerTools))

	before := c.Favorites()
	c.ToggleFavorite(id)
	if !c.IsFavorite(id) {
		t.Fatal("first toggle should add the favorite")
	}
	c.ToggleFavorite(id)
	if got := c.Favorites(); !reflect.DeepEqual(got, before) {
		t.Errorf("double toggle should restore prior set: before=%v after=%v", before, got)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	c := env.catalog()
	id1 := c.Add(listing("Drill", 20, model.CategoryPowerTools))
	id2 := c.Add(listing("Ladder", 15, model.CategoryLadders))
	c.SetArchived(id2, true)
	c.ToggleFavorite(id1)

	env.writer.Flush()
	reloaded := env.catalog()

	if !reflect.DeepEqual(reloaded.Listings(), c.Listings()) {
		t.Errorf("listings changed across reload:\n got %+v\nwant %+v", reloaded.Listings(), c.Listings())
	}
	if !reflect.DeepEqual(reloaded.Favorites(), c.Favorites()) {
		t.Errorf("favorites changed across reload: got %v want %v", reloaded.Favorites(), c.Favorites())
	}
}

func TestCatalogCorruptBlobFallsBackToEmpty(t *testing.T) {
	env := newTestEnv(t)
	if err := env.kv.Put(keyListings, []byte("{not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	if err := env.kv.Put(keyFavorites, []byte("also not json")); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}
	c := env.catalog()
	if len(c.Listings()) != 0 || len(c.Favorites()) != 0 {
		t.Errorf("corrupt blobs must load as empty state, got %d listings, %d favorites",
			len(c.Listings()), len(c.Favorites()))
	}
}
