package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/conorfennell/wiederholung/internal/domain"
)

var (
	ErrMalformedRecord = errors.New("store: malformed record")
	ErrEmptyDeck       = errors.New("store: deck has no items")
)

// Record is one row of a deck file as read, before validation.
type Record struct {
	Line   int
	Fields []string
}

// ParseError reports a record that cannot become an item.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedRecord
}

type pair struct {
	Prompt string `validate:"required"`
	Answer string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Store holds the items of a drill session in load order.
// Items are never added or removed after Load.
type Store struct {
	items []*domain.Item
}

// Load builds a store with one item per record, preserving order.
func Load(records []Record) (*Store, error) {
	items := make([]*domain.Item, 0, len(records))
	for _, rec := range records {
		if len(rec.Fields) != 2 {
			return nil, &ParseError{Line: rec.Line, Reason: fmt.Sprintf("expected 2 fields, got %d", len(rec.Fields))}
		}
		p := pair{
			Prompt: strings.TrimSpace(rec.Fields[0]),
			Answer: strings.TrimSpace(rec.Fields[1]),
		}
		if err := validate.Struct(p); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return nil, &ParseError{Line: rec.Line, Reason: strings.ToLower(verrs[0].Field()) + " is empty"}
			}
			return nil, fmt.Errorf("validating line %d: %w", rec.Line, err)
		}
		items = append(items, domain.NewItem(p.Prompt, p.Answer))
	}
	if len(items) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Store{items: items}, nil
}

// Items returns the items in load order.
func (s *Store) Items() []*domain.Item {
	return s.items
}

// Len returns the number of items.
func (s *Store) Len() int {
	return len(s.items)
}

// Check records an answer for item and reports whether it matched.
func (s *Store) Check(item *domain.Item, given string) bool {
	return item.Check(given)
}
