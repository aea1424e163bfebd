package store

import (
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/toolshedapp/toolshed/internal/model"
	"github.com/toolshedapp/toolshed/internal/storage"
)

// ErrInvalidStatus is returned by SetStatus for values outside the known
// status set.
var ErrInvalidStatus = errors.New("invalid booking status")

// Bookings owns the history of submitted orders, newest first. A booking is
// assembled from value copies of the cart and catalog at submission time and
// never changes afterwards except for its status tag.
type Bookings struct {
	mu      sync.RWMutex
	history []model.Booking

	node   *snowflake.Node
	writer *storage.Writer
	notify *Notifier
}

// NewBookings loads the persisted history from kv, falling back to an empty
// history when the blob is missing or unreadable.
func NewBookings(kv storage.KV, w *storage.Writer, n *Notifier, node *snowflake.Node) *Bookings {
	b := &Bookings{history: []model.Booking{}, node: node, writer: w, notify: n}
	if blob, err := kv.Get(keyBookings); err == nil && blob != nil {
		var hs []model.Booking
		if err := json.Unmarshal(blob, &hs); err != nil {
			zap.S().Warnw("bookings blob unreadable, starting empty", "error", err)
		} else {
			b.history = hs
		}
	}
	return b
}

// History returns a copy of all bookings, most recent first.
func (b *Bookings) History() []model.Booking {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Booking, len(b.history))
	copy(out, b.history)
	return out
}

// Add snapshots the given cart lines against the catalog snapshot into a new
// booking and prepends it to the history. Lines whose tool is missing from
// the snapshot are dropped; the total is recomputed from the frozen copies
// rather than trusted from the cart. Submission never fails: an empty or
// fully unresolvable cart still yields a valid booking with zero lines and
// zero total. The cart itself is left untouched — clearing it is the
// caller's decision. Returns the new booking's ID.
func (b *Bookings) Add(cartLines []model.CartLine, catalog []model.Listing) string {
	byID := make(map[string]model.Listing, len(catalog))
	for _, l := range catalog {
		byID[l.ID] = l
	}

	lines := make([]model.BookingLine, 0, len(cartLines))
	var total float64
	for _, cl := range cartLines {
		l, ok := byID[cl.ToolID]
		if !ok {
			continue
		}
		frozen := model.BookingLine{
			ToolID:      cl.ToolID,
			Name:        l.Name,
			PricePerDay: l.PricePerDay,
			Days:        cl.Days,
		}
		total += frozen.PricePerDay * float64(frozen.Days)
		lines = append(lines, frozen)
	}

	booking := model.Booking{
		ID:        b.node.Generate().String(),
		CreatedAt: time.Now().UTC(),
		Lines:     lines,
		Total:     total,
		Status:    model.StatusRequested,
	}

	b.mu.Lock()
	b.history = append([]model.Booking{booking}, b.history...)
	b.persistLocked()
	b.mu.Unlock()

	b.notify.Publish(TopicBookingsChanged)
	b.notify.Publish(TopicBookingSubmitted, booking)
	return booking.ID
}

// SetStatus updates the status tag of the booking with the given ID. An
// unknown status value returns ErrInvalidStatus; an unknown ID is a silent
// no-op, matching the referential-miss policy of the rest of the layer.
func (b *Bookings) SetStatus(id, status string) error {
	if !model.ValidStatus(status) {
		return ErrInvalidStatus
	}
	b.mu.Lock()
	changed := false
	for i := range b.history {
		if b.history[i].ID == id {
			if b.history[i].Status != status {
				b.history[i].Status = status
				changed = true
			}
			break
		}
	}
	if changed {
		b.persistLocked()
	}
	b.mu.Unlock()

	if changed {
		b.notify.Publish(TopicBookingsChanged)
	}
	return nil
}

// ClearAll irreversibly empties the booking history.
func (b *Bookings) ClearAll() {
	b.mu.Lock()
	b.history = []model.Booking{}
	b.persistLocked()
	b.mu.Unlock()

	b.notify.Publish(TopicBookingsChanged)
}

func (b *Bookings) persistLocked() {
	blob, err := json.Marshal(b.history)
	if err != nil {
		zap.S().Warnw("marshal bookings failed", "error", err)
		return
	}
	b.writer.Enqueue(keyBookings, blob)
}
