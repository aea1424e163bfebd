package storage

import (
	"sync"

	"go.uber.org/zap"
)

// Writer decouples in-memory mutations from durable writes. Stores enqueue
// the latest serialized blob for their key and return immediately; a single
// background goroutine performs the actual KV puts. Pending blobs coalesce
// per key, so under a burst of mutations only the newest state reaches disk.
// Write failures are logged and swallowed: the in-memory state stays
// authoritative for the rest of the session either way.
type Writer struct {
	kv KV

	mu       sync.Mutex
	cond     *sync.Cond
	pending  map[string][]byte
	inflight bool
	closed   bool
	done     chan struct{}
}

// NewWriter starts the background write loop over kv.
func NewWriter(kv KV) *Writer {
	w := &Writer{
		kv:      kv,
		pending: make(map[string][]byte),
		done:    make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// Enqueue schedules value to be written under key. It never blocks on I/O.
// Enqueue after Close is ignored.
func (w *Writer) Enqueue(key string, value []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending[key] = value
	w.cond.Broadcast()
}

// Flush blocks until every blob enqueued so far has been handed to the KV.
// Tests and shutdown use it to make persistence observable.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for len(w.pending) > 0 || w.inflight {
		w.cond.Wait()
	}
}

// Close drains pending writes and stops the background loop. The underlying
// KV is not closed; its owner does that separately.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	<-w.done
}

func (w *Writer) loop() {
	defer close(w.done)
	for {
		w.mu.Lock()
		for len(w.pending) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.pending) == 0 && w.closed {
			w.mu.Unlock()
			return
		}
		batch := w.pending
		w.pending = make(map[string][]byte)
		w.inflight = true
		w.mu.Unlock()

		for key, value := range batch {
			if err := w.kv.Put(key, value); err != nil {
				zap.S().Warnw("persist failed, keeping in-memory state", "key", key, "error", err)
			}
		}

		w.mu.Lock()
		w.inflight = false
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}
