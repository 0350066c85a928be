package report

import "github.com/charmbracelet/lipgloss"

// Band classifies a success ratio for coloring.
type Band int

const (
	Neutral Band = iota // no attempts
	Alarm               // ratio < 0.70
	Caution             // 0.70 <= ratio < 0.90
	Success             // ratio >= 0.90
)

const (
	cautionThreshold = 0.7
	successThreshold = 0.9
)

func (b Band) String() string {
	switch b {
	case Alarm:
		return "alarm"
	case Caution:
		return "caution"
	case Success:
		return "success"
	default:
		return "neutral"
	}
}

// BandFor returns the band of a ratio; ok=false means the ratio is undefined.
func BandFor(ratio float64, ok bool) Band {
	switch {
	case !ok:
		return Neutral
	case ratio < cautionThreshold:
		return Alarm
	case ratio < successThreshold:
		return Caution
	default:
		return Success
	}
}

// Styles holds the terminal style of each band.
type Styles struct {
	Neutral lipgloss.Style
	Alarm   lipgloss.Style
	Caution lipgloss.Style
	Success lipgloss.Style
}

// NewStyles builds band styles for the given renderer. The renderer decides
// whether colors are emitted at all, so output to a pipe stays plain.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Neutral: r.NewStyle(),
		Alarm:   r.NewStyle().Foreground(lipgloss.Color("1")),
		Caution: r.NewStyle().Foreground(lipgloss.Color("3")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// For returns the style of b.
func (s Styles) For(b Band) lipgloss.Style {
	switch b {
	case Alarm:
		return s.Alarm
	case Caution:
		return s.Caution
	case Success:
		return s.Success
	default:
		return s.Neutral
	}
}
