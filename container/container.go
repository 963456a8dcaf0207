// Package container unwraps the optional zip wrapper arcdps places around
// an .evtc file. It is the one external-collaborator-shaped piece of the
// core (spec §1, §4.1): a single-entry archive in, a byte stream out.
package container

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// Compression selects how ProcessStream/Open should treat the input
// bytes (spec §6.3).
type Compression int

const (
	// None passes the stream through unchanged.
	None Compression = iota
	// Zip treats the stream as a standard single-entry zip archive and
	// reads its one entry.
	Zip
)

func (c Compression) String() string {
	switch c {
	case None:
		return "None"
	case Zip:
		return "Zip"
	default:
		return "Unknown"
	}
}

// ErrInvalidContainer is returned when c == Zip and the stream isn't a
// well-formed single-entry zip archive.
var ErrInvalidContainer = errors.New("evtc: invalid container")

// Open returns a reader over the raw evtc bytes inside r. Random-access
// (ReaderAt + size) is required only on the Zip path, since zip's central
// directory lives at the end of the file (spec §4.1).
func Open(r io.ReaderAt, size int64, c Compression) (io.Reader, error) {
	switch c {
	case None:
		return io.NewSectionReader(r, 0, size), nil
	case Zip:
		return openZip(r, size)
	default:
		return nil, fmt.Errorf("%w: unknown compression mode %v", ErrInvalidContainer, c)
	}
}

func openZip(r io.ReaderAt, size int64) (io.Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}
	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one entry, got %d", ErrInvalidContainer, len(zr.File))
	}

	rc, err := zr.File[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: opening entry: %v", ErrInvalidContainer, err)
	}
	return rc, nil
}
