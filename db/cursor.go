package db

// Cursor walks a table bucket by bucket, and within a bucket from the most
// recently inserted item. It borrows the table: any Insert or Remove made
// after the cursor was created invalidates it, and Item and Advance then
// return ErrStale.
type Cursor[T Hashable[T]] struct {
	table  *Table[T]
	gen    uint64
	bucket int // == len(table.buckets) when at end
	node   *ChainNode[T]
}

// Cursor returns a cursor positioned on the first item of the table, or
// at end if the table is empty.
func (t *Table[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{
		table: t,
		gen:   t.gen,
		node:  t.buckets[0].First(),
	}
	if c.node == nil {
		c.next()
	}
	return c
}

// AtEnd reports whether every item has been visited.
func (c *Cursor[T]) AtEnd() bool {
	return c.node == nil
}

// Item returns the item under the cursor.
func (c *Cursor[T]) Item() (item T, err error) {
	if err = c.check(); err != nil {
		return
	}
	return c.node.item, nil
}

// Advance moves to the next item, skipping empty buckets.
func (c *Cursor[T]) Advance() error {
	if err := c.check(); err != nil {
		return err
	}
	c.next()
	return nil
}

func (c *Cursor[T]) check() error {
	if c.gen != c.table.gen {
		return ErrStale
	}
	if c.AtEnd() {
		return ErrAtEnd
	}
	return nil
}

// next is Advance without the checks. resize relies on it while the old
// bucket array is still installed.
func (c *Cursor[T]) next() {
	if c.node != nil {
		c.node = c.node.next
	}
	buckets := c.table.buckets
	for c.node == nil && c.bucket < len(buckets) {
		c.bucket++
		if c.bucket < len(buckets) {
			c.node = buckets[c.bucket].First()
		}
	}
}
