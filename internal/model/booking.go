package model

import "time"

// Booking status values. A booking starts out as StatusRequested; later
// transitions are applied externally via the bookings store and are only
// checked for membership in this set.
const (
	StatusRequested string = "requested"
	StatusConfirmed string = "confirmed"
	StatusCompleted string = "completed"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// BookingLine is a frozen copy of one cart line taken at submission time.
// Name and PricePerDay are snapshotted from the catalog so that later edits
// or deletions of the listing never alter a submitted order.
type BookingLine struct {
	ToolID      string  `json:"tool_id"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Days        int     `json:"days"`
}

// Booking records a submitted rental order.
//
// Fields:
//
//	ID        – system-generated identifier.
//	CreatedAt – submission timestamp in UTC.
//	Lines     – frozen line items, possibly empty.
//	Total     – sum of PricePerDay × Days over Lines, recomputed from the
//	            frozen copies at submission.
//	Status    – one of the status constants above.
//
// Apart from Status, a booking is immutable after creation.
type Booking struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Lines     []BookingLine `json:"lines"`
	Total     float64       `json:"total"`
	Status    string        `json:"status"`
}
