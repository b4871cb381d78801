package db

// ChainNode holds one item of a bucket.
type ChainNode[T Hashable[T]] struct {
	item T
	next *ChainNode[T]
}

// Item returns the item owned by the node.
func (n *ChainNode[T]) Item() T {
	return n.item
}

// Next returns the following node in the same chain, or nil.
func (n *ChainNode[T]) Next() *ChainNode[T] {
	return n.next
}

// Chain is a singly linked bucket. It keeps no length of its own.
type Chain[T Hashable[T]] struct {
	head *ChainNode[T]
}

// First returns the head node or nil if the chain is empty
func (c *Chain[T]) First() *ChainNode[T] {
	return c.head
}

// InsertFront prepends item without checking for duplicates.
func (c *Chain[T]) InsertFront(item T) {
	c.head = &ChainNode[T]{item: item, next: c.head}
}

// Find returns the first node whose item equals item, or nil.
func (c *Chain[T]) Find(item T) *ChainNode[T] {
	for n := c.head; n != nil; n = n.next {
		if n.item.Equal(item) {
			return n
		}
	}
	return nil
}

// RemoveNode unlinks node from the chain.
func (c *Chain[T]) RemoveNode(node *ChainNode[T]) error {
	if node == nil {
		return ErrNotMember
	}

	// Special case: the node is the head
	if c.head == node {
		c.head = node.next
		node.next = nil
		return nil
	}

	for prev := c.head; prev != nil; prev = prev.next {
		if prev.next == node {
			prev.next = node.next // Bypass the node to be removed
			node.next = nil
			return nil
		}
	}
	return ErrNotMember
}

// Empty reports whether the chain has no nodes.
func (c *Chain[T]) Empty() bool {
	return c.head == nil
}
