package store

import "github.com/asaskevich/EventBus"

// Topics published by the stores. Consumers subscribe by topic and re-read
// the relevant store snapshot when notified; the event itself carries no
// state except for TopicBookingSubmitted, which delivers the frozen booking.
const (
	TopicCatalogChanged   = "catalog.changed"
	TopicCartChanged      = "cart.changed"
	TopicBookingsChanged  = "bookings.changed"
	TopicBookingSubmitted = "bookings.submitted"
)

// Notifier is the in-process publish-on-mutate bus shared by the stores.
// It wraps an EventBus so stores publish fire-and-forget and consumers
// register plain functions per topic.
type Notifier struct {
	bus EventBus.Bus
}

// NewNotifier returns a Notifier with a fresh bus.
func NewNotifier() *Notifier {
	return &Notifier{bus: EventBus.New()}
}

// Publish emits an event on topic. Handlers run synchronously with the
// mutation that triggered them, preserving the single-writer ordering.
func (n *Notifier) Publish(topic string, args ...interface{}) {
	n.bus.Publish(topic, args...)
}

// Subscribe registers fn for topic. fn's signature must match the arguments
// published on that topic.
func (n *Notifier) Subscribe(topic string, fn interface{}) error {
	return n.bus.Subscribe(topic, fn)
}

// Unsubscribe removes a previously registered handler.
func (n *Notifier) Unsubscribe(topic string, fn interface{}) error {
	return n.bus.Unsubscribe(topic, fn)
}
