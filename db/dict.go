package db

import (
	"go.uber.org/zap"
)

const (
	DefaultBucketCount = 10
)

// Hashable is the constraint on items stored in a Table. Hash must be
// stable for the lifetime of the item and Equal must agree with it.
type Hashable[T any] interface {
	Hash() uint64
	Equal(T) bool
}

// Stats counts the resizes a table has gone through.
type Stats struct {
	Grows    int
	Shrinks  int
	Rehashed int // items moved across all resizes
}

// Table is a chained hash table of unique items. It grows when it holds
// more items than buckets and shrinks when it falls under a quarter full,
// never below DefaultBucketCount. It is not safe for concurrent use.
type Table[T Hashable[T]] struct {
	buckets []Chain[T]
	count   int
	gen     uint64 // bumped on every structural change, checked by cursors
	stats   Stats
	logger  *zap.Logger
}

// New creates a table with DefaultBucketCount buckets.
func New[T Hashable[T]](opts ...Option) *Table[T] {
	t, _ := NewTable[T](DefaultBucketCount, opts...)
	return t
}

// NewTable creates a table with the given number of buckets.
func NewTable[T Hashable[T]](bucketCount int, opts ...Option) (*Table[T], error) {
	if bucketCount <= 0 {
		return nil, ErrInvalidArgument
	}

	cfg := newConfig(opts)
	return &Table[T]{
		buckets: make([]Chain[T], bucketCount),
		logger:  cfg.logger,
	}, nil
}

func (t *Table[T]) bucket(item T, bucketCount int) int {
	return int(item.Hash() % uint64(bucketCount))
}

// Contains checks if an equal item is in the table
func (t *Table[T]) Contains(item T) bool {
	return t.buckets[t.bucket(item, len(t.buckets))].Find(item) != nil
}

// Insert stores a copy of item. It returns false and leaves the table
// untouched if an equal item is already present.
func (t *Table[T]) Insert(item T) bool {
	if t.Contains(item) {
		return false
	}

	t.buckets[t.bucket(item, len(t.buckets))].InsertFront(item)
	t.count++
	t.gen++

	t.maybeResize()
	return true
}

// Remove deletes the item equal to item. It returns ErrNotFound if there
// is none.
func (t *Table[T]) Remove(item T) error {
	chain := &t.buckets[t.bucket(item, len(t.buckets))]

	node := chain.Find(item)
	if node == nil {
		return ErrNotFound
	}

	if err := chain.RemoveNode(node); err != nil {
		return err
	}
	t.count--
	t.gen++

	t.maybeResize()
	return nil
}

// Len returns the number of items in the table
func (t *Table[T]) Len() int {
	return t.count
}

// Empty returns true if the table holds no items
func (t *Table[T]) Empty() bool {
	return t.count == 0
}

// BucketCount returns the current number of buckets
func (t *Table[T]) BucketCount() int {
	return len(t.buckets)
}

func (t *Table[T]) Stats() Stats {
	return t.stats
}

// maybeResize applies the load factor policy once. A single call never
// resizes twice, even when the new size is still out of bounds; the next
// insert or remove gets another chance.
func (t *Table[T]) maybeResize() {
	size := len(t.buckets)
	if t.count > size {
		t.stats.Grows++
		t.resize(2 * size)
	} else if t.count < size/4 && size > DefaultBucketCount {
		t.stats.Shrinks++
		t.resize(maxInt(size/2, DefaultBucketCount))
	}
}

// resize rehashes every item into a fresh bucket array. The old array is
// walked with a cursor, so it must stay installed until the walk is done.
func (t *Table[T]) resize(newBucketCount int) {
	newBuckets := make([]Chain[T], newBucketCount)

	moved := 0
	for c := t.Cursor(); !c.AtEnd(); c.next() {
		item := c.node.item
		newBuckets[t.bucket(item, newBucketCount)].InsertFront(item)
		moved++
	}

	t.logger.Debug("resize",
		zap.Int("from", len(t.buckets)),
		zap.Int("to", newBucketCount),
		zap.Int("items", t.count))

	t.buckets = newBuckets
	t.gen++
	t.stats.Rehashed += moved
}

// Items returns every item in cursor order.
func (t *Table[T]) Items() []T {
	items := make([]T, 0, t.count)
	for c := t.Cursor(); !c.AtEnd(); c.next() {
		items = append(items, c.node.item)
	}
	return items
}

// Each calls fn for every item until fn returns false. If fn inserts into
// or removes from the table the walk stops with ErrStale.
func (t *Table[T]) Each(fn func(item T) bool) error {
	for c := t.Cursor(); !c.AtEnd(); {
		item, err := c.Item()
		if err != nil {
			return err
		}
		if !fn(item) {
			return nil
		}
		if err := c.Advance(); err != nil {
			return err
		}
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
