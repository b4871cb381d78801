package poi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyDevice fails the first failures reads of every block.
type flakyDevice struct {
	blocks   [][]byte
	failures int
	attempts map[uint32]int
}

var errFlaky = errors.New("flaky read")

func newFlakyDevice(rs []Restaurant, failures int) *flakyDevice {
	d := &flakyDevice{failures: failures, attempts: make(map[uint32]int)}
	for start := 0; start < len(rs); start += RecordsPerBlock {
		block := make([]byte, BlockSize)
		for i := 0; i < RecordsPerBlock && start+i < len(rs); i++ {
			encodeRestaurant(block[i*RecordSize:], rs[start+i])
		}
		d.blocks = append(d.blocks, block)
	}
	return d
}

func (d *flakyDevice) ReadBlock(block uint32, dst []byte) error {
	d.attempts[block]++
	if d.attempts[block] <= d.failures {
		return errFlaky
	}
	if int(block) >= len(d.blocks) {
		return ErrOutOfRange
	}
	copy(dst, d.blocks[block])
	return nil
}

func numbered(n int) []Restaurant {
	rs := make([]Restaurant, n)
	for i := range rs {
		rs[i] = Restaurant{Lat: int32(i), Lon: int32(-i), Rating: uint8(i % 11), Name: string(rune('A' + i%26))}
	}
	return rs
}

func TestRecordCacheReadsOncePerBlock(t *testing.T) {
	rs := numbered(20)
	cache := NewRecordCache(newFlakyDevice(rs, 0), 0)

	for i := range rs {
		got, err := cache.Get(i)
		require.NoError(t, err)
		assert.Equal(t, rs[i], got)
	}
	assert.Equal(t, 3, cache.Reads())

	// same block again is free
	_, err := cache.Get(17)
	require.NoError(t, err)
	assert.Equal(t, 3, cache.Reads())
}

func TestRecordCacheStartBlock(t *testing.T) {
	rs := numbered(16)
	cache := NewRecordCache(newFlakyDevice(rs, 0), 1)

	got, err := cache.Get(0)
	require.NoError(t, err)
	assert.Equal(t, rs[8], got)
}

func TestRecordCacheRetries(t *testing.T) {
	rs := numbered(8)
	cache := NewRecordCache(newFlakyDevice(rs, maxReadAttempts-1), 0)

	got, err := cache.Get(5)
	require.NoError(t, err)
	assert.Equal(t, rs[5], got)
	assert.Equal(t, maxReadAttempts, cache.Reads())
}

func TestRecordCacheGivesUp(t *testing.T) {
	rs := numbered(8)
	cache := NewRecordCache(newFlakyDevice(rs, maxReadAttempts), 0)

	_, err := cache.Get(0)
	assert.ErrorIs(t, err, errFlaky)

	_, err = cache.Get(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
