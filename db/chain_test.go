package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainItems(c *Chain[Int]) []Int {
	var items []Int
	for n := c.First(); n != nil; n = n.Next() {
		items = append(items, n.Item())
	}
	return items
}

func TestNewChain(t *testing.T) {
	var c Chain[Int]
	assert.Nil(t, c.First())
	assert.True(t, c.Empty())
}

func TestChainInsertFront(t *testing.T) {
	var c Chain[Int]
	c.InsertFront(5)
	c.InsertFront(10)
	c.InsertFront(15)

	assert.Equal(t, []Int{15, 10, 5}, chainItems(&c))
	assert.False(t, c.Empty())
}

func TestChainFind(t *testing.T) {
	var c Chain[Int]
	c.InsertFront(5)
	c.InsertFront(10)

	node := c.Find(5)
	require.NotNil(t, node)
	assert.Equal(t, Int(5), node.Item())
	assert.Nil(t, c.Find(7))
}

func TestChainRemoveNode(t *testing.T) {
	var c Chain[Int]
	c.InsertFront(5)
	c.InsertFront(10)
	c.InsertFront(15)

	require.NoError(t, c.RemoveNode(c.Find(10)))
	assert.Equal(t, []Int{15, 5}, chainItems(&c))

	require.NoError(t, c.RemoveNode(c.Find(15)))
	assert.Equal(t, []Int{5}, chainItems(&c))

	require.NoError(t, c.RemoveNode(c.Find(5)))
	assert.True(t, c.Empty())
}

func TestChainRemoveForeignNode(t *testing.T) {
	var a, b Chain[Int]
	a.InsertFront(1)
	b.InsertFront(1)

	assert.ErrorIs(t, a.RemoveNode(b.First()), ErrNotMember)
	assert.ErrorIs(t, a.RemoveNode(nil), ErrNotMember)
	assert.Equal(t, []Int{1}, chainItems(&a))
	assert.Equal(t, []Int{1}, chainItems(&b))
}
