package store

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("preserves order and trims fields", func(t *testing.T) {
		records := []Record{
			{Line: 1, Fields: []string{" Haus ", " das"}},
			{Line: 2, Fields: []string{"Frau", "die "}},
		}
		s, err := Load(records)
		if err != nil {
			t.Fatalf("Load() returned an unexpected error: %v", err)
		}
		if s.Len() != 2 {
			t.Fatalf("Expected 2 items, but got %d", s.Len())
		}
		first, second := s.Items()[0], s.Items()[1]
		if first.Prompt != "Haus" || first.Answer != "das" {
			t.Errorf("Expected first item Haus/das, but got '%s'/'%s'", first.Prompt, first.Answer)
		}
		if second.Prompt != "Frau" || second.Answer != "die" {
			t.Errorf("Expected second item Frau/die, but got '%s'/'%s'", second.Prompt, second.Answer)
		}
		if first.Attempts != 0 || first.Successes != 0 {
			t.Error("Expected freshly loaded items to be untried")
		}
	})

	malformed := []struct {
		name   string
		fields []string
	}{
		{name: "Single field", fields: []string{"Haus"}},
		{name: "Three fields", fields: []string{"Haus", "das", "extra"}},
		{name: "Empty prompt", fields: []string{"  ", "das"}},
		{name: "Empty answer", fields: []string{"Haus", ""}},
	}
	for _, tc := range malformed {
		t.Run(tc.name, func(t *testing.T) {
			records := []Record{
				{Line: 1, Fields: []string{"Frau", "die"}},
				{Line: 3, Fields: tc.fields},
			}
			_, err := Load(records)
			if !errors.Is(err, ErrMalformedRecord) {
				t.Fatalf("Expected ErrMalformedRecord, but got %v", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected a *ParseError, but got %T", err)
			}
			if perr.Line != 3 {
				t.Errorf("Expected error on line 3, but got line %d", perr.Line)
			}
		})
	}

	t.Run("empty deck", func(t *testing.T) {
		if _, err := Load(nil); !errors.Is(err, ErrEmptyDeck) {
			t.Errorf("Expected ErrEmptyDeck, but got %v", err)
		}
	})
}

func TestStoreCheck(t *testing.T) {
	s, err := Load([]Record{{Line: 1, Fields: []string{"Haus", "das"}}})
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	item := s.Items()[0]

	if s.Check(item, "der") {
		t.Error("Expected wrong answer not to match")
	}
	if !s.Check(item, "das") {
		t.Error("Expected correct answer to match")
	}
	if item.Attempts != 2 || item.Successes != 1 {
		t.Errorf("Expected 1/2, but got %d/%d", item.Successes, item.Attempts)
	}
}
