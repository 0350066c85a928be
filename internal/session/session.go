package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/conorfennell/wiederholung/internal/domain"
	"github.com/conorfennell/wiederholung/internal/report"
	"github.com/conorfennell/wiederholung/internal/store"
)

// State is the state of the drill loop.
type State int

const (
	Prompting State = iota
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "prompting"
}

// Picker chooses the next item when no repeat is pending.
type Picker interface {
	Pick(items []*domain.Item) *domain.Item
}

// LineReader is the blocking answer input.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Reporter renders statistics when the session ends.
type Reporter interface {
	Render(w io.Writer, items []*domain.Item) error
}

// Session drills the items of a store until interrupted.
type Session struct {
	store    *store.Store
	picker   Picker
	in       LineReader
	out      io.Writer
	reporter Reporter
	styles   report.Styles
	logger   *slog.Logger

	state   State
	pending *domain.Item
}

// Options configures a Session. Picker, In and Out are required.
type Options struct {
	Picker   Picker
	In       LineReader
	Out      io.Writer
	Reporter Reporter
	Styles   report.Styles
	Logger   *slog.Logger
}

// New creates a session over s.
func New(s *store.Store, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		store:    s,
		picker:   opts.Picker,
		in:       opts.In,
		out:      opts.Out,
		reporter: opts.Reporter,
		styles:   opts.Styles,
		logger:   logger,
		state:    Prompting,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Pending returns the item that must be asked again, or nil.
func (s *Session) Pending() *domain.Item {
	return s.pending
}

// Next returns the item to present: the pending repeat if set, otherwise a
// fresh pick.
func (s *Session) Next() *domain.Item {
	if s.pending != nil {
		return s.pending
	}
	return s.picker.Pick(s.store.Items())
}

// Answer checks given against item and updates the pending repeat.
func (s *Session) Answer(item *domain.Item, given string) bool {
	if s.store.Check(item, given) {
		s.pending = nil
		return true
	}
	s.pending = item
	return false
}

// Run prompts until ctx is cancelled or the input ends, then renders the
// statistics. Interruption is the normal way out and is not an error.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", "items", s.store.Len())

	for s.state == Prompting {
		item := s.Next()
		if _, err := fmt.Fprintf(s.out, "%s > ", item.Prompt); err != nil {
			return fmt.Errorf("writing prompt: %w", err)
		}

		given, err := s.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				s.logger.Debug("input interrupted", "reason", err)
				s.state = Terminated
				break
			}
			return fmt.Errorf("reading answer: %w", err)
		}

		var ack string
		if s.Answer(item, given) {
			ack = s.styles.Success.Render("Genau!")
		} else {
			ack = s.styles.Alarm.Render(fmt.Sprintf("Falsch! (%s -> %s)", item.Prompt, item.Answer))
		}
		if _, err := fmt.Fprintln(s.out, ack); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		s.logger.Debug("answered", "prompt", item.Prompt, "successes", item.Successes, "attempts", item.Attempts)
	}

	if s.reporter == nil {
		return nil
	}
	if err := s.reporter.Render(s.out, s.store.Items()); err != nil {
		return fmt.Errorf("rendering statistics: %w", err)
	}
	return nil
}
