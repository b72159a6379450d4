// Package shadercache stores linked program binaries on disk.
//
// A file is a fixed header followed by the driver's bytes:
//
//	magic "GLPB" | format uint32 LE | length uint32 LE | data
//
// The format is driver specific, so it travels with the data.
package shadercache

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var magic = [4]byte{'G', 'L', 'P', 'B'}

const headerSize = 12

// ErrBadHeader is returned for files that were not written by Write
var ErrBadHeader = errors.New("not a program binary file")

// Write encodes a program binary
func Write(w io.Writer, format uint32, data []byte) error {
	var hdr [headerSize]byte
	copy(hdr[:4], magic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], format)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(data)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// Read decodes a program binary written by Write
func Read(r io.Reader) (uint32, []byte, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if !bytes.Equal(hdr[:4], magic[:]) {
		return 0, nil, ErrBadHeader
	}
	format := binary.LittleEndian.Uint32(hdr[4:8])
	n := binary.LittleEndian.Uint32(hdr[8:12])

	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return 0, nil, fmt.Errorf("program binary truncated: %w", err)
	}
	return format, data, nil
}

// Save writes a program binary to path
func Save(path string, format uint32, data []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return Write(f, format, data)
}

// Load reads a program binary from path
func Load(path string) (uint32, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("could not open program binary: %w", err)
	}
	defer f.Close()
	return Read(f)
}
