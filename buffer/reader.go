package buffer

import (
	"errors"
	"io"
)

// BuffReader reads a known number of bytes from an io.Reader in fixed-size
// chunks, enforcing a maximum allowed size.
type BuffReader struct {
	// Reader is the underlying source of the bytes.
	Reader io.Reader

	// size is the total number of bytes expected from the reader.
	size int

	// chunkSize is the size of each read operation in bytes.
	chunkSize int

	// maxSize caps how many bytes a single Read may allocate.
	maxSize int
}

// Predefined errors for BuffReader operations.
var (
	// ErrNoSize is returned when the expected length is zero or negative.
	ErrNoSize = errors.New("invalid length")

	// ErrReaderIsNil is returned when attempting to read from a nil reader.
	ErrReaderIsNil = errors.New("reader is nil")

	// ErrMaxSize is returned when the expected length exceeds the allowed maximum.
	ErrMaxSize = errors.New("content exceeds max allowed size")
)

// NewBuffReader creates a BuffReader that will read exactly size bytes from
// reader. The default maximum is 10MB and the default chunk size is 4096
// bytes; both can be tuned before the first Read.
func NewBuffReader(reader io.Reader, size int) (*BuffReader, error) {
	if size <= 0 {
		return nil, ErrNoSize
	}

	return &BuffReader{
		Reader:    reader,
		size:      size,
		maxSize:   10 << 20,
		chunkSize: 4096,
	}, nil
}

// SetMaxSize updates the maximum number of bytes Read will allocate.
func (br *BuffReader) SetMaxSize(size int) {
	br.maxSize = size
}

// Read reads the full expected length and returns it as a byte slice.
//
// Reading happens chunk by chunk until the buffer is filled. If the source
// ends before the expected length is consumed, io.ErrUnexpectedEOF is
// returned.
func (br *BuffReader) Read() ([]byte, error) {
	if br == nil || br.Reader == nil {
		return nil, ErrReaderIsNil
	}

	if br.size > br.maxSize {
		return nil, ErrMaxSize
	}

	buf := make([]byte, br.size)
	read := 0

	for read < br.size {
		chunk := br.chunkSize
		if remaining := br.size - read; chunk > remaining {
			chunk = remaining
		}

		n, err := br.Reader.Read(buf[read : read+chunk])
		read += n

		if err != nil {
			if err == io.EOF {
				if read < br.size {
					return nil, io.ErrUnexpectedEOF
				}
				break
			}

			return nil, err
		}
	}

	return buf, nil
}
