// Package storage provides the durable key-value layer backing the domain
// stores. Each store serializes its whole state as a single blob and keeps it
// under one stable key; writes are full-blob replacements and reads fetch the
// full blob once at store initialization. Two backends implement the KV
// interface: an embedded bbolt file for production and an in-memory map for
// tests and ephemeral runs.
package storage

// KV is the minimal contract the domain stores require from durable storage:
// string-keyed byte blobs with whole-value get and put. Implementations must
// be safe for concurrent use.
type KV interface {
	// Get returns the blob stored under key, or (nil, nil) when the key has
	// never been written. Errors are reserved for backend failures.
	Get(key string) ([]byte, error)
	// Put replaces the blob stored under key.
	Put(key string, value []byte) error
	// Close releases backend resources. Further calls fail or no-op
	// depending on the backend.
	Close() error
}
