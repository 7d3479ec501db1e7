package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrPathNotFound is returned when an explicitly supplied data path does
	// not exist on disk.
	ErrPathNotFound = errors.New("local data path does not exist")

	// ErrMissingData is returned by DiskSource when the default data directory
	// is absent and no remote fetch is configured.
	ErrMissingData = errors.New("dataset not found on disk")
)

// ErrBadMagic indicates an IDX file whose magic number does not match the
// expected value for its kind.
type ErrBadMagic struct {
	File string
	Want uint32
	Got  uint32
}

func (e *ErrBadMagic) Error() string {
	return fmt.Sprintf("%s: bad magic number: want %d, got %d", e.File, e.Want, e.Got)
}

// ErrShortPayload indicates an IDX file whose payload length disagrees with
// the record count declared in its header.
type ErrShortPayload struct {
	File string
	Want int
	Got  int
}

func (e *ErrShortPayload) Error() string {
	return fmt.Sprintf("%s: payload has %d bytes, header declares %d", e.File, e.Got, e.Want)
}
