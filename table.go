package hashmap

import (
	"io"
	"math"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const (
	DefaultInitialCapacity = 16
	DefaultLoadFactor      = 0.75

	// Smallest accepted load factor. Below it a handful of keys would
	// need an enormous bucket array.
	MinLoadFactor = 1.0 / 1024

	// The bucket array never grows past this.
	maxCapacity = 1 << 30

	loggerModule = "hashmap"
)

type table struct {
	// Each slot holds the head of a chain or nil.
	// The capacity of the table is always len(buckets).
	buckets []*entry

	size       int
	loadFactor float64

	// Number of growths since construction. Clear doesn't reset it.
	resizes int

	initialCapacity int
	logger          *logging.Logger
}

type Option func(t *table)

// Sets the number of buckets the map starts with.
func WithInitialCapacity(capacity int) Option {
	return func(t *table) {
		t.initialCapacity = capacity
	}
}

// Sets the size/capacity ratio at which the map doubles its buckets.
func WithLoadFactor(loadFactor float64) Option {
	return func(t *table) {
		t.loadFactor = loadFactor
	}
}

// Override the default logger, which discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(t *table) {
		t.logger = logger
	}
}

func (t *table) init(opts ...Option) error {
	t.initialCapacity = DefaultInitialCapacity
	t.loadFactor = DefaultLoadFactor

	for _, opt := range opts {
		opt(t)
	}

	if t.initialCapacity <= 0 || t.initialCapacity > maxCapacity {
		return errors.Wrapf(ErrInvalidConfiguration, "initial capacity must be in [1, %d], got %d", maxCapacity, t.initialCapacity)
	}

	if !(t.loadFactor >= MinLoadFactor) || math.IsInf(t.loadFactor, 1) {
		return errors.Wrapf(ErrInvalidConfiguration, "load factor must be finite and at least %v, got %v", MinLoadFactor, t.loadFactor)
	}

	if t.logger == nil {
		t.logger = discardLogger()
	}

	t.buckets = make([]*entry, t.initialCapacity)
	t.size = 0

	return nil
}

// discardLogger is the quiet default, the map doesn't write anywhere
// unless WithLogger is given.
func discardLogger() *logging.Logger {
	logger := logging.MustGetLogger(loggerModule)
	logger.SetBackend(logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0)))

	return logger
}

// index returns the home bucket of key for the current capacity.
func (t *table) index(key string) (int, error) {
	idx := Hash(key, len(t.buckets))
	if idx < 0 || idx >= len(t.buckets) {
		err := errors.Wrapf(ErrIndexOutOfRange, "index %d, capacity %d", idx, len(t.buckets))
		t.logger.Errorf("bucket lookup for %q failed: %v", key, err)

		return 0, err
	}

	return idx, nil
}

func (t *table) find(key string) (*entry, error) {
	idx, err := t.index(key)
	if err != nil {
		return nil, err
	}

	for e := t.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e, nil
		}
	}

	return nil, nil
}

func (t *table) get(key string) (string, bool, error) {
	e, err := t.find(key)
	if err != nil || e == nil {
		return "", false, err
	}

	return e.value, true, nil
}

// set stores the pair and grows the table if the new entry pushed the
// ratio to the load factor. Returns whether a new key was added.
func (t *table) set(key, value string) (bool, error) {
	idx, err := t.index(key)
	if err != nil {
		return false, err
	}

	// Overwrites never grow the table.
	if !t.insert(idx, key, value) {
		return false, nil
	}

	if t.overloaded() {
		t.grow()
	}

	return true, nil
}

// insert puts the pair into bucket idx, either updating the matching node
// in place or appending a fresh node at the chain tail.
// Returns whether a node was appended.
func (t *table) insert(idx int, key, value string) bool {
	head := t.buckets[idx]
	if head == nil {
		t.buckets[idx] = &entry{key: key, value: value}
		t.size++

		return true
	}

	tail := head
	for {
		if tail.key == key {
			tail.value = value
			return false
		}

		if tail.next == nil {
			break
		}

		tail = tail.next
	}

	tail.next = &entry{key: key, value: value}
	t.size++

	return true
}

func (t *table) overloaded() bool {
	return float64(t.size)/float64(len(t.buckets)) >= t.loadFactor
}

// grow doubles the bucket array and re-inserts every pair, walking the old
// buckets in index order and each chain head to tail. Old nodes are dropped.
// A table at maxCapacity stays as it is.
func (t *table) grow() {
	var (
		old      = t.buckets
		size     = t.size
		capacity = doubled(len(old))
	)

	// A single doubling is enough unless the load factor is tiny
	// compared to 1/capacity.
	for capacity < maxCapacity && float64(size)/float64(capacity) >= t.loadFactor {
		capacity = doubled(capacity)
	}

	if capacity <= len(old) {
		t.logger.Warningf("table is at %d buckets, not growing with %d entries", len(old), size)
		return
	}

	t.buckets = make([]*entry, capacity)
	t.size = 0

	for _, head := range old {
		for e := head; e != nil; e = e.next {
			t.insert(Hash(e.key, capacity), e.key, e.value)
		}
	}

	t.resizes++
	t.logger.Debugf("resized from %d to %d buckets with %d entries", len(old), capacity, t.size)
}

func doubled(capacity int) int {
	if capacity >= maxCapacity/2 {
		return maxCapacity
	}

	return capacity * 2
}

// delete splices the node holding key out of its chain.
// The table never shrinks.
func (t *table) delete(key string) (bool, error) {
	idx, err := t.index(key)
	if err != nil {
		return false, err
	}

	head := t.buckets[idx]
	if head == nil {
		return false, nil
	}

	if head.key == key {
		t.buckets[idx] = head.next
		t.size--

		return true, nil
	}

	for prev, curr := head, head.next; curr != nil; prev, curr = curr, curr.next {
		if curr.key == key {
			prev.next = curr.next
			t.size--

			return true, nil
		}
	}

	return false, nil
}

// reset drops every entry but keeps the capacity.
func (t *table) reset() {
	t.buckets = make([]*entry, len(t.buckets))
	t.size = 0
}

// walk calls fn for every node in bucket order, then chain order.
func (t *table) walk(fn func(e *entry)) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			fn(e)
		}
	}
}
