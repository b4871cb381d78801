//go:build linux || darwin

package poi

import "golang.org/x/sys/unix"

// Lookups jump between blocks, so readahead only wastes page cache.
func adviseRandom(b []byte) error {
	return unix.Madvise(b, unix.MADV_RANDOM)
}
