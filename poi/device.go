package poi

import (
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/fzft/go-chaintable/log"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	ErrOutOfRange  = errors.New("block out of range")
	ErrEmptyDevice = errors.New("device has no blocks")
)

// BlockDevice reads fixed-size blocks by number.
type BlockDevice interface {
	ReadBlock(block uint32, dst []byte) error
}

// FileDevice is a read-only block device backed by a memory-mapped file.
type FileDevice struct {
	file *os.File
	data mmap.MMap
}

func OpenFileDevice(path string) (*FileDevice, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open device: %w", err)
	}

	fi, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat device: %w", err)
	}
	if fi.Size() < BlockSize {
		file.Close()
		return nil, ErrEmptyDevice
	}

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	if err := adviseRandom(data); err != nil {
		log.Logger.Debug("madvise failed", zap.String("path", path), zap.Error(err))
	}

	return &FileDevice{file: file, data: data}, nil
}

// Blocks returns the number of whole blocks on the device
func (d *FileDevice) Blocks() uint32 {
	return uint32(len(d.data) / BlockSize)
}

func (d *FileDevice) ReadBlock(block uint32, dst []byte) error {
	if block >= d.Blocks() {
		return fmt.Errorf("read block %d: %w", block, ErrOutOfRange)
	}
	off := int(block) * BlockSize
	copy(dst[:BlockSize], d.data[off:off+BlockSize])
	return nil
}

func (d *FileDevice) Close() error {
	return multierr.Append(d.data.Unmap(), d.file.Close())
}
