package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/conorfennell/wiederholung/internal/domain"
)

const (
	totalLabel = "TOTAL"
	// ruleOverhang is how far the rules extend past the header.
	ruleOverhang = 5
)

// Row is the statistics line of one item, or of the whole session.
type Row struct {
	Prompt    string
	Answer    string
	Successes int
	Attempts  int
	Percent   float64
	Band      Band
}

// Summary is the end-of-session statistics table.
type Summary struct {
	Rows  []Row
	Total Row
}

// Summarize computes per-item rows sorted by prompt, and the total row.
// Untried items and a session with no attempts show 0 percent.
func Summarize(items []*domain.Item) Summary {
	rows := make([]Row, 0, len(items))
	total := Row{Prompt: totalLabel}
	for _, it := range items {
		ratio, ok := it.Ratio()
		rows = append(rows, Row{
			Prompt:    it.Prompt,
			Answer:    it.Answer,
			Successes: it.Successes,
			Attempts:  it.Attempts,
			Percent:   ratio * 100,
			Band:      BandFor(ratio, ok),
		})
		total.Successes += it.Successes
		total.Attempts += it.Attempts
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Prompt < rows[j].Prompt })

	var totalRatio float64
	if total.Attempts > 0 {
		totalRatio = float64(total.Successes) / float64(total.Attempts)
	}
	total.Percent = totalRatio * 100
	total.Band = BandFor(totalRatio, total.Attempts > 0)

	return Summary{Rows: rows, Total: total}
}

// Reporter renders the statistics table.
type Reporter struct {
	styles Styles
}

// New creates a Reporter that colors rows with styles.
func New(styles Styles) *Reporter {
	return &Reporter{styles: styles}
}

// NewForWriter creates a Reporter whose colors match what w supports.
func NewForWriter(w io.Writer) *Reporter {
	return New(NewStyles(lipgloss.NewRenderer(w)))
}

// Render writes the statistics of items to w. It does not modify items.
func (r *Reporter) Render(w io.Writer, items []*domain.Item) error {
	sum := Summarize(items)

	var lenQ, lenA int
	for _, it := range items {
		lenQ = max(lenQ, utf8.RuneCountInString(it.Prompt))
		lenA = max(lenA, utf8.RuneCountInString(it.Answer))
	}

	header := fmt.Sprintf(" %-*s > %-*s | %-3s / %-3s (%s)", lenQ, "question", lenA, "answer", " ok", "tot", "success")
	rule := strings.Repeat("-", lipgloss.Width(header)+ruleOverhang)

	var b strings.Builder
	b.WriteString("\n\nStatistics:\n\n")
	b.WriteString(header + "\n")
	b.WriteString(rule + "\n")
	for _, row := range sum.Rows {
		line := fmt.Sprintf(" %-*s > %-*s | %3d / %3d (%.1f%%)",
			lenQ, row.Prompt, lenA, row.Answer, row.Successes, row.Attempts, row.Percent)
		b.WriteString(r.styles.For(row.Band).Render(line) + "\n")
	}
	b.WriteString(rule + "\n")
	t := sum.Total
	line := fmt.Sprintf(" %-*s   %-*s | %3d / %3d (%.1f%%)",
		lenQ, t.Prompt, lenA, "", t.Successes, t.Attempts, t.Percent)
	b.WriteString(r.styles.For(t.Band).Render(line) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
