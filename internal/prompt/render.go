package prompt

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	separator    = ""
	promptMarker = "▶"
	clockLayout  = "15:04"
)

// Renderer draws segments as a powerline chain. Colors are always emitted
// as 16-color ANSI sequences, whatever the output is.
type Renderer struct {
	r *lipgloss.Renderer
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI)
	return &Renderer{r: r}
}

func (p *Renderer) style(fg, bg Color) lipgloss.Style {
	return p.r.NewStyle().Foreground(fg.ansi()).Background(bg.ansi())
}

// Segments renders the chain: a leading wedge, then each segment followed by
// a separator blending into the next segment's background (or the terminal
// background after the last one). No segments render as "".
func (p *Renderer) Segments(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(p.style(baseBackground, segments[0].Background).Render(separator))
	for i, seg := range segments {
		next := baseBackground
		if i+1 < len(segments) {
			next = segments[i+1].Background
		}
		b.WriteString(p.style(seg.Foreground, seg.Background).Render(" " + seg.Text + " "))
		b.WriteString(p.style(seg.Background, next).Render(separator))
	}
	return b.String()
}

// Prompt is the full two-line prompt: the segment chain, then the clock and
// the prompt marker followed by a space for the cursor.
func (p *Renderer) Prompt(segments []Segment, now time.Time) string {
	dim := p.r.NewStyle().Foreground(BrightBlack.ansi())
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(p.Segments(segments))
	b.WriteString("\n")
	b.WriteString(dim.Render(now.Format(clockLayout)))
	b.WriteString(" ")
	b.WriteString(dim.Render(promptMarker))
	b.WriteString(" ")
	return b.String()
}
