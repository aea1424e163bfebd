package store

import (
	"testing"

	"github.com/bwmarrin/snowflake"

	"github.com/toolshedapp/toolshed/internal/model"
	"github.com/toolshedapp/toolshed/internal/storage"
)

// testEnv bundles the shared plumbing every store test needs: an in-memory
// KV, a writer over it and a notifier. Flush the writer before reopening a
// store on the same KV to observe persisted state.
type testEnv struct {
	kv     *storage.Memory
	writer *storage.Writer
	notify *Notifier
	node   *snowflake.Node
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	kv := storage.NewMemory()
	w := storage.NewWriter(kv)
	t.Cleanup(w.Close)
	return &testEnv{kv: kv, writer: w, notify: NewNotifier(), node: node}
}

func (e *testEnv) catalog() *Catalog {
	return NewCatalog(e.kv, e.writer, e.notify, e.node)
}

func (e *testEnv) cart() *Cart {
	return NewCart(e.kv, e.writer, e.notify)
}

func (e *testEnv) bookings() *Bookings {
	return NewBookings(e.kv, e.writer, e.notify, e.node)
}

func listing(name string, price float64, category string) model.Listing {
	return model.Listing{Name: name, PricePerDay: price, Category: category}
}
