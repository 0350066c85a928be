package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/conorfennell/wiederholung/internal/store"
)

const commentPrefix = "#"

// ParseFile reads a deck file from the given path and returns its records.
func ParseFile(path string) ([]store.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads comma-separated deck rows from r. Lines starting with '#' are
// skipped. Field counts are not checked here; store.Load does that, so a blank
// line becomes a record with no fields.
func Parse(r io.Reader) ([]store.Record, error) {
	scanner := bufio.NewScanner(r)
	var records []store.Record
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}

		cr := csv.NewReader(strings.NewReader(line))
		cr.FieldsPerRecord = -1
		cr.LazyQuotes = true
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			fields, err = nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, store.Record{Line: lineNo, Fields: fields})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// LoadFile parses the deck at path and builds an item store from it.
func LoadFile(path string) (*store.Store, error) {
	records, err := ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck %s: %w", path, err)
	}
	s, err := store.Load(records)
	if err != nil {
		return nil, fmt.Errorf("loading deck %s: %w", path, err)
	}
	return s, nil
}
