package poi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	BlockSize       = 512
	RecordSize      = 64
	RecordsPerBlock = BlockSize / RecordSize

	nameSize = RecordSize - 9 // lat, lon, rating
)

// Restaurant is one fixed-size record on the device. Lat and Lon are in
// hundred-thousandths of a degree, Rating is 0..10.
type Restaurant struct {
	Lat    int32
	Lon    int32
	Rating uint8
	Name   string
}

// IsZero reports whether r is an unused padding slot.
func (r Restaurant) IsZero() bool {
	return r == Restaurant{}
}

func decodeRestaurant(b []byte) Restaurant {
	name := b[9:RecordSize]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return Restaurant{
		Lat:    int32(binary.LittleEndian.Uint32(b[0:4])),
		Lon:    int32(binary.LittleEndian.Uint32(b[4:8])),
		Rating: b[8],
		Name:   string(name),
	}
}

func encodeRestaurant(b []byte, r Restaurant) {
	binary.LittleEndian.PutUint32(b[0:4], uint32(r.Lat))
	binary.LittleEndian.PutUint32(b[4:8], uint32(r.Lon))
	b[8] = r.Rating
	name := b[9:RecordSize]
	for i := range name {
		name[i] = 0
	}
	// keep the last byte as terminator
	copy(name[:nameSize-1], r.Name)
}

// WriteRecords writes rs as whole blocks, padding the last one with empty
// records.
func WriteRecords(w io.Writer, rs []Restaurant) error {
	block := make([]byte, BlockSize)
	for start := 0; start < len(rs); start += RecordsPerBlock {
		for i := range block {
			block[i] = 0
		}
		for i := 0; i < RecordsPerBlock && start+i < len(rs); i++ {
			encodeRestaurant(block[i*RecordSize:], rs[start+i])
		}
		if _, err := w.Write(block); err != nil {
			return fmt.Errorf("write block %d: %w", start/RecordsPerBlock, err)
		}
	}
	return nil
}
