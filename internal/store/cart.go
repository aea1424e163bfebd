package store

import (
	"sync"

	"go.uber.org/zap"

	"github.com/toolshedapp/toolshed/internal/model"
	"github.com/toolshedapp/toolshed/internal/storage"
)

// Cart owns the pending rental selections, at most one line per tool ID.
// Lines hold only the tool ID and a day count; price is always re-resolved
// against a catalog snapshot supplied by the caller, so catalog edits show
// up in totals without the cart observing the catalog directly.
type Cart struct {
	mu     sync.RWMutex
	lines  []model.CartLine
	writer *storage.Writer
	notify *Notifier
}

// NewCart loads the persisted cart from kv, falling back to an empty cart
// when the blob is missing or unreadable.
func NewCart(kv storage.KV, w *storage.Writer, n *Notifier) *Cart {
	c := &Cart{lines: []model.CartLine{}, writer: w, notify: n}
	if blob, err := kv.Get(keyCart); err == nil && blob != nil {
		var ls []model.CartLine
		if err := json.Unmarshal(blob, &ls); err != nil {
			zap.S().Warnw("cart blob unreadable, starting empty", "error", err)
		} else {
			c.lines = ls
		}
	}
	return c
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []model.CartLine {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Add upserts a line for toolID. An existing line accumulates the given
// days; otherwise a new line is appended. Days below 1 count as 1.
func (c *Cart) Add(toolID string, days int) {
	if days < 1 {
		days = 1
	}
	c.mu.Lock()
	found := false
	for i := range c.lines {
		if c.lines[i].ToolID == toolID {
			c.lines[i].Days += days
			found = true
			break
		}
	}
	if !found {
		c.lines = append(c.lines, model.CartLine{ToolID: toolID, Days: days})
	}
	c.persistLocked()
	c.mu.Unlock()

	c.notify.Publish(TopicCartChanged)
}

// UpdateDays sets the line's day count to max(1, days). A missing line is a
// silent no-op.
func (c *Cart) UpdateDays(toolID string, days int) {
	if days < 1 {
		days = 1
	}
	c.mu.Lock()
	changed := false
	for i := range c.lines {
		if c.lines[i].ToolID == toolID {
			c.lines[i].Days = days
			changed = true
			break
		}
	}
	if changed {
		c.persistLocked()
	}
	c.mu.Unlock()

	if changed {
		c.notify.Publish(TopicCartChanged)
	}
}

// Remove deletes the line for toolID if present.
func (c *Cart) Remove(toolID string) {
	c.mu.Lock()
	changed := false
	for i := range c.lines {
		if c.lines[i].ToolID == toolID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			changed = true
			break
		}
	}
	if changed {
		c.persistLocked()
	}
	c.mu.Unlock()

	if changed {
		c.notify.Publish(TopicCartChanged)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = []model.CartLine{}
	c.persistLocked()
	c.mu.Unlock()

	c.notify.Publish(TopicCartChanged)
}

// Total computes the rental total over the supplied catalog snapshot. Lines
// whose tool is absent from the snapshot contribute zero; they are excluded
// silently, not treated as an error.
func (c *Cart) Total(catalog []model.Listing) float64 {
	price := make(map[string]float64, len(catalog))
	for _, l := range catalog {
		price[l.ID] = l.PricePerDay
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, line := range c.lines {
		if p, ok := price[line.ToolID]; ok {
			total += p * float64(line.Days)
		}
	}
	return total
}

func (c *Cart) persistLocked() {
	blob, err := json.Marshal(c.lines)
	if err != nil {
		zap.S().Warnw("marshal cart failed", "error", err)
		return
	}
	c.writer.Enqueue(keyCart, blob)
}
