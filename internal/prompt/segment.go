package prompt

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thiagokokada/powerprompt/internal/git"
)

// Color is the closed palette segments are drawn with.
type Color uint8

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Cyan
	BrightBlack
	BrightWhite
)

func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case BrightBlack:
		return "bright-black"
	case BrightWhite:
		return "bright-white"
	default:
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
}

// ansi maps c to its 16-color terminal index.
func (c Color) ansi() lipgloss.Color {
	switch c {
	case Red:
		return "1"
	case Green:
		return "2"
	case Yellow:
		return "3"
	case Blue:
		return "4"
	case Cyan:
		return "6"
	case BrightBlack:
		return "8"
	case BrightWhite:
		return "15"
	default:
		return "0"
	}
}

const (
	glyphFailure = "✖"
	glyphBranch  = ""
)

// Terminal base colors the chain starts from and returns to.
const (
	baseBackground = Black
	baseForeground = Black
)

const (
	cleanBackground = Green
	dirtyBackground = Yellow
)

type Segment struct {
	Text       string
	Foreground Color
	Background Color
}

// Inputs is everything a prompt is built from, already parsed.
type Inputs struct {
	Exit           ExitStatus
	DurationMillis float64
	HasDuration    bool
	Dir            string // display form, see FormatPath
	Git            *git.State
}

// BuildSegments returns the error, duration, directory and git segments, in
// that order, leaving out the ones that do not apply.
func BuildSegments(in Inputs) []Segment {
	segments := make([]Segment, 0, 4)
	if in.Exit.Failed() {
		text := glyphFailure
		if in.Exit.Valid {
			text += " " + strconv.Itoa(in.Exit.Code)
		}
		segments = append(segments, Segment{Text: text, Foreground: Red, Background: BrightWhite})
	}
	if in.HasDuration {
		segments = append(segments, Segment{
			Text:       FormatDuration(in.DurationMillis),
			Foreground: baseForeground,
			Background: Cyan,
		})
	}
	segments = append(segments, Segment{Text: in.Dir, Foreground: baseForeground, Background: Blue})
	if in.Git != nil {
		segments = append(segments, gitSegment(*in.Git))
	}
	return segments
}

func gitSegment(state git.State) Segment {
	bg := cleanBackground
	if state.Dirty() {
		bg = dirtyBackground
	}
	tokens := append([]string{glyphBranch}, state.Tokens()...)
	return Segment{
		Text:       strings.Join(tokens, " "),
		Foreground: baseForeground,
		Background: bg,
	}
}
