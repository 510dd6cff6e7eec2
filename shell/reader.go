package shell

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

// LineReader reads newline-terminated lines into one reusable buffer of fixed
// capacity.
type LineReader struct {
	rd  *bufio.Reader
	buf []byte
	cap int
}

// NewLineReader returns a reader whose lines hold at most capacity-1 bytes.
// capacity must be at least 2.
func NewLineReader(r io.Reader, capacity int) *LineReader {
	if capacity < 2 {
		capacity = 2
	}
	return &LineReader{
		rd:  bufio.NewReaderSize(r, capacity),
		buf: make([]byte, 0, capacity-1),
		cap: capacity,
	}
}

// ReadLine returns the next line, including its trailing newline when it fits.
// A line longer than capacity-1 bytes is truncated and the rest of it
// discarded.
//
// It returns io.EOF only when end-of-input is reached with no bytes read. A
// final line without a newline is returned normally; the following call
// reports io.EOF. An interrupted read is retried.
//
// The returned slice is overwritten by the next call.
func (l *LineReader) ReadLine() ([]byte, error) {
	l.buf = l.buf[:0]
	limit := l.cap - 1
	read := false
	for {
		b, err := l.rd.ReadByte()
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			if errors.Is(err, io.EOF) {
				if !read {
					return nil, io.EOF
				}
				return l.buf, nil
			}
			return nil, err
		}
		read = true
		if len(l.buf) < limit {
			l.buf = append(l.buf, b)
		}
		if b == '\n' {
			return l.buf, nil
		}
	}
}
