package poi

import (
	"fmt"

	"github.com/fzft/go-chaintable/log"
	"go.uber.org/zap"
)

const maxReadAttempts = 3

// RecordCache keeps the most recently read block so consecutive records
// cost one device read per block.
type RecordCache struct {
	dev    BlockDevice
	start  uint32
	block  [BlockSize]byte
	cached uint32
	valid  bool
	reads  int
}

// NewRecordCache reads records from dev, the first one at block start.
func NewRecordCache(dev BlockDevice, start uint32) *RecordCache {
	return &RecordCache{dev: dev, start: start}
}

// Get returns the i'th record.
func (c *RecordCache) Get(i int) (Restaurant, error) {
	if i < 0 {
		return Restaurant{}, fmt.Errorf("record %d: %w", i, ErrOutOfRange)
	}
	block := c.start + uint32(i/RecordsPerBlock)

	if !c.valid || block != c.cached {
		if err := c.load(block); err != nil {
			return Restaurant{}, err
		}
	}

	off := (i % RecordsPerBlock) * RecordSize
	return decodeRestaurant(c.block[off : off+RecordSize]), nil
}

func (c *RecordCache) load(block uint32) error {
	var err error
	for attempt := 1; attempt <= maxReadAttempts; attempt++ {
		c.reads++
		if err = c.dev.ReadBlock(block, c.block[:]); err == nil {
			c.cached, c.valid = block, true
			return nil
		}
		log.Logger.Warn("readblock failed, try again",
			zap.Uint32("block", block),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}
	c.valid = false
	return err
}

// Reads returns the number of device reads issued so far, failed ones
// included.
func (c *RecordCache) Reads() int {
	return c.reads
}
