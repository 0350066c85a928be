// Package console reads answer lines from the terminal in a way that lets a
// blocked read be abandoned when the drill is interrupted.
package console

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

type result struct {
	line string
	err  error
}

// LineReader hands out lines of an io.Reader one at a time.
// A single goroutine scans the input; it only advances when a line is requested.
type LineReader struct {
	src       io.Reader
	once      sync.Once
	closeOnce sync.Once
	request   chan struct{}
	lines     chan result
	quit      chan struct{}
	pending   bool
	done      bool
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		src:     r,
		request: make(chan struct{}),
		lines:   make(chan result),
		quit:    make(chan struct{}),
	}
}

// Close stops the scanning goroutine once its current read of the source
// returns. Later reads report io.EOF.
func (lr *LineReader) Close() error {
	lr.closeOnce.Do(func() { close(lr.quit) })
	return nil
}

func (lr *LineReader) send(res result) bool {
	select {
	case lr.lines <- res:
		return true
	case <-lr.quit:
		return false
	}
}

func (lr *LineReader) scan() {
	defer close(lr.lines)
	scanner := bufio.NewScanner(lr.src)
	for {
		select {
		case <-lr.request:
		case <-lr.quit:
			return
		}
		if scanner.Scan() {
			if !lr.send(result{line: strings.TrimRight(scanner.Text(), "\r")}) {
				return
			}
			continue
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		lr.send(result{err: err})
		return
	}
}

// ReadLine blocks until a line is available or ctx is done.
// It returns io.EOF once the input is exhausted and ctx.Err() on cancellation.
// A line that arrives after cancellation is returned by the next call.
func (lr *LineReader) ReadLine(ctx context.Context) (string, error) {
	if lr.done {
		return "", io.EOF
	}
	lr.once.Do(func() { go lr.scan() })

	if !lr.pending {
		select {
		case lr.request <- struct{}{}:
			lr.pending = true
		case <-lr.quit:
			lr.done = true
			return "", io.EOF
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	select {
	case res, ok := <-lr.lines:
		lr.pending = false
		if !ok {
			lr.done = true
			return "", io.EOF
		}
		if res.err != nil {
			lr.done = true
		}
		return res.line, res.err
	case <-lr.quit:
		lr.done = true
		return "", io.EOF
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
