// Package encoder streams a binary input into the body of a C array
// literal: an opening brace, each byte rendered as a two-digit uppercase
// hexadecimal literal, a ", " separator between elements, and a closing
// brace.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// DefaultBlockSize is the read block size used when none is configured.
	// A small multiple of a 4 KiB page keeps reads efficient without
	// growing peak memory with the input size.
	DefaultBlockSize = 4096 * 4

	// MinBlockSize is the smallest accepted block size, one storage sector.
	MinBlockSize = 512
)

// ErrCountOverflow is returned when the element count would exceed the
// counting type's range. The count must never wrap silently.
var ErrCountOverflow = errors.New("element count overflows the counting type")

// ErrBlockSize is returned for a block size that is not a power of two of
// at least MinBlockSize bytes.
var ErrBlockSize = errors.New("block size must be a power of two of at least 512 bytes")

// ReadError wraps a fault reported by the input stream while bytes
// remained unread. End of stream is not a ReadError.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read input: %v", e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a fault reported by the output stream.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write output: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Encoder renders byte streams as array-literal bodies. The zero value is
// not usable; construct one with New.
type Encoder struct {
	blockSize int
}

// New returns an Encoder that reads its input in blocks of blockSize bytes.
// A blockSize of zero selects DefaultBlockSize.
func New(blockSize int) (*Encoder, error) {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	if blockSize < MinBlockSize || blockSize&(blockSize-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBlockSize, blockSize)
	}
	return &Encoder{blockSize: blockSize}, nil
}

// Encode reads src in fixed-size blocks and writes the array-literal body
// to dst, returning the number of elements emitted. Empty input still
// produces a valid empty body, "{ }". A short read that ends the stream is
// normal completion; a short read accompanied by a stream fault aborts the
// encoding with a ReadError.
func (e *Encoder) Encode(dst io.Writer, src io.Reader) (int64, error) {
	var count int64

	if _, err := io.WriteString(dst, "{"); err != nil {
		return count, &WriteError{Err: err}
	}

	buf := make([]byte, e.blockSize)
	for {
		n, err := src.Read(buf)
		for _, b := range buf[:n] {
			if count == math.MaxInt64 {
				return count, ErrCountOverflow
			}
			separator := ", "
			if count == 0 {
				separator = " "
			}
			if _, werr := fmt.Fprintf(dst, "%s0x%02X", separator, b); werr != nil {
				return count, &WriteError{Err: werr}
			}
			count++
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, &ReadError{Err: err}
		}
	}

	if _, err := io.WriteString(dst, " }"); err != nil {
		return count, &WriteError{Err: err}
	}
	return count, nil
}
