package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s, err := NewSet[String](4)
	require.NoError(t, err)

	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("b"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("b"))

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"))
	assert.Equal(t, []String{"b"}, s.Members())
	assert.Equal(t, 1, s.Table().Len())
}

func TestSetInvalidSize(t *testing.T) {
	_, err := NewSet[String](0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestIntHash(t *testing.T) {
	assert.Equal(t, uint64(7), Int(7).Hash())
	assert.Equal(t, uint64(7), Int(-7).Hash())
	assert.False(t, Int(7).Equal(-7))
}
