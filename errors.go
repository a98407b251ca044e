package atlas

import (
	"errors"
	"fmt"
)

// Validation errors for degenerate descriptors.
var (
	// ErrNilDescriptor is returned when CreateAtlas receives a nil descriptor.
	ErrNilDescriptor = errors.New("atlas: descriptor is nil")

	// ErrZeroMaxPageCount is returned when MaxPageCount is less than one.
	ErrZeroMaxPageCount = errors.New("atlas: max page count is zero")

	// ErrNoEntries is returned when a descriptor contains no entries.
	ErrNoEntries = errors.New("atlas: no entries")
)

// InvalidSizeError is returned when the page side length is not positive,
// or is not a power of two while mip generation is enabled.
type InvalidSizeError struct {
	Size   int
	Reason string
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("atlas: invalid size %d: %s", e.Size, e.Reason)
}

// InvalidBlockSizeError is returned when a MipWithBlock block size is not
// a power of two, or does not fit the page size.
type InvalidBlockSizeError struct {
	BlockSize int
	Reason    string
}

func (e *InvalidBlockSizeError) Error() string {
	return fmt.Sprintf("atlas: invalid block size %d: %s", e.BlockSize, e.Reason)
}

// InvalidEntryError is returned when an entry carries no usable texture.
type InvalidEntryError struct {
	Key    any
	Reason string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("atlas: invalid entry %v: %s", e.Key, e.Reason)
}

// DuplicateKeyError is returned when two entries share the same key.
type DuplicateKeyError struct {
	Key any
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("atlas: duplicate entry key %v", e.Key)
}

// EntryTooLargeError is returned when a single entry's padded size
// exceeds the page side length. No page count can ever hold such an
// entry, so planning fails immediately.
type EntryTooLargeError struct {
	Key      any
	Width    int
	Height   int
	Padded   int // longest padded side
	PageSize int
}

func (e *EntryTooLargeError) Error() string {
	return fmt.Sprintf("atlas: entry %v (%dx%d) padded to %d exceeds page size %d",
		e.Key, e.Width, e.Height, e.Padded, e.PageSize)
}

// PagesExhaustedError is returned when no full placement exists within
// MaxPageCount pages.
type PagesExhaustedError struct {
	MaxPageCount int
	Unplaced     int
}

func (e *PagesExhaustedError) Error() string {
	return fmt.Sprintf("atlas: %d entries left unplaced after %d pages",
		e.Unplaced, e.MaxPageCount)
}
