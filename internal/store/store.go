// Package store implements the three domain-state stores of the rental app:
// the catalog of tool listings (plus favorites), the rental cart, and the
// booking history. Each store owns its collection exclusively, keeps the
// authoritative copy in memory, persists asynchronously through a
// storage.Writer, and publishes a change event after every mutation so UI
// consumers can re-read snapshots.
//
// Failure policy, applied uniformly: a missing or unparseable persisted blob
// falls back to empty state at load; a failed durable write is swallowed;
// operations on unknown identifiers are silent no-ops; cart or booking lines
// whose listing no longer exists are excluded from aggregation. Nothing in
// this layer surfaces an error to the user.
package store

import jsoniter "github.com/json-iterator/go"

// Storage keys, one stable key per persisted namespace.
const (
	keyListings  = "catalog/listings"
	keyFavorites = "catalog/favorites"
	keyCart      = "cart/lines"
	keyBookings  = "bookings/history"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary
