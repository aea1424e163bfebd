package storage

import (
	"errors"
	"sync"
	"testing"
)

func TestWriterPersistsAfterFlush(t *testing.T) {
	kv := NewMemory()
	w := NewWriter(kv)
	defer w.Close()

	w.Enqueue("k", []byte("v1"))
	w.Flush()

	got, err := kv.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("got %q, want v1", got)
	}
}

func TestWriterLatestValueWins(t *testing.T) {
	kv := NewMemory()
	w := NewWriter(kv)
	defer w.Close()

	for i := 0; i < 100; i++ {
		w.Enqueue("k", []byte("old"))
	}
	w.Enqueue("k", []byte("new"))
	w.Flush()

	got, _ := kv.Get("k")
	if string(got) != "new" {
		t.Errorf("got %q, want new", got)
	}
}

func TestWriterCloseDrainsAndIsIdempotent(t *testing.T) {
	kv := NewMemory()
	w := NewWriter(kv)

	w.Enqueue("a", []byte("1"))
	w.Enqueue("b", []byte("2"))
	w.Close()
	w.Close() // second close must not panic or hang

	for _, key := range []string{"a", "b"} {
		if got, _ := kv.Get(key); got == nil {
			t.Errorf("key %s not persisted by Close", key)
		}
	}

	// Enqueue after Close is ignored rather than panicking.
	w.Enqueue("c", []byte("3"))
	if got, _ := kv.Get("c"); got != nil {
		t.Error("enqueue after close must be dropped")
	}
}

// failingKV rejects every put, standing in for a full or broken disk.
type failingKV struct {
	mu    sync.Mutex
	tries int
}

func (f *failingKV) Get(string) ([]byte, error) { return nil, nil }
func (f *failingKV) Put(string, []byte) error {
	f.mu.Lock()
	f.tries++
	f.mu.Unlock()
	return errors.New("disk full")
}
func (f *failingKV) Close() error { return nil }

func TestWriterSwallowsWriteFailures(t *testing.T) {
	kv := &failingKV{}
	w := NewWriter(kv)

	w.Enqueue("k", []byte("v"))
	w.Flush() // must return despite the failure, with no retry loop
	w.Close()

	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.tries != 1 {
		t.Errorf("expected exactly one attempt, got %d", kv.tries)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	src := []byte("abc")
	if err := kv.Put("k", src); err != nil {
		t.Fatalf("put: %v", err)
	}
	src[0] = 'x'

	got, _ := kv.Get("k")
	if string(got) != "abc" {
		t.Errorf("stored value aliased caller slice: %q", got)
	}
	got[0] = 'y'
	again, _ := kv.Get("k")
	if string(again) != "abc" {
		t.Errorf("returned value aliased internal state: %q", again)
	}
}

func TestMemoryMissingKey(t *testing.T) {
	kv := NewMemory()
	got, err := kv.Get("absent")
	if err != nil || got != nil {
		t.Errorf("missing key should be (nil, nil), got (%v, %v)", got, err)
	}
}
