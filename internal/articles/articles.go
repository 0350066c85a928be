// Package articles appends grammatical articles to German nouns by looking
// them up in an online dictionary.
package articles

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrNotFound is returned when the dictionary has no entry for a word.
var ErrNotFound = errors.New("articles: entry not found")

// Lookuper returns the dictionary entry of a word, e.g. "Stadt, die".
type Lookuper interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// Run reads one word per line from in until the first blank line and writes
// the entry of every word found to out. Words that cannot be looked up, for
// whatever reason, are reported on report and left out of out.
func Run(ctx context.Context, in io.Reader, out, report io.Writer, l Lookuper, logger *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	var found, missing int
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			break
		}
		logger.Debug("read from input file", "word", word)

		entry, err := l.Lookup(ctx, word)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Debug("lookup failed", "word", word, "error", err)
			missing++
			if _, err := fmt.Fprintf(report, "Could not find entry for %s in Duden\n", word); err != nil {
				return err
			}
			continue
		}

		found++
		if _, err := fmt.Fprintln(out, entry); err != nil {
			return fmt.Errorf("writing entry for %s: %w", word, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading words: %w", err)
	}

	logger.Info("articles complete", "found", found, "missing", missing)
	return nil
}
