package db

import (
	"github.com/cespare/xxhash/v2"
)

// String is a ready-made item type for string keys.
type String string

func (s String) Hash() uint64 {
	return xxhash.Sum64String(string(s))
}

func (s String) Equal(o String) bool {
	return s == o
}

// Int is a ready-made item type for integer keys. Its hash is the value
// itself, so bucket placement is predictable.
type Int int64

func (i Int) Hash() uint64 {
	if i < 0 {
		return uint64(-i)
	}
	return uint64(i)
}

func (i Int) Equal(o Int) bool {
	return i == o
}

var (
	_ Hashable[String] = String("")
	_ Hashable[Int]    = Int(0)
)
