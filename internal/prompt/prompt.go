package prompt

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/thiagokokada/powerprompt/internal/git"
)

// ExitStatus is the previous command's exit code. Valid is false when the
// argument was given but is not an integer.
type ExitStatus struct {
	Code  int
	Valid bool
}

func (e ExitStatus) Failed() bool {
	return !e.Valid || e.Code != 0
}

// ParseExitStatus treats a missing argument as success. The argument must be
// a bare 32-bit integer; surrounding whitespace makes it invalid.
func ParseExitStatus(raw string, present bool) ExitStatus {
	if !present {
		return ExitStatus{Valid: true}
	}
	code, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return ExitStatus{}
	}
	return ExitStatus{Code: int(code), Valid: true}
}

// ParseDuration returns the elapsed milliseconds in raw, or ok=false when it
// is not a finite, non-negative number.
func ParseDuration(raw string) (millis float64, ok bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Config describes one prompt invocation.
type Config struct {
	// Args are the positional arguments: exit code, then duration in ms.
	Args    []string
	WorkDir string
	HomeDir string // empty when unknown
	Now     time.Time
	// Resolve summarizes the repository enclosing a path; git.Resolve when nil.
	Resolve func(path string) (git.State, bool)
}

// Assemble parses cfg into the segment chain.
func Assemble(cfg Config) ([]Segment, error) {
	if cfg.WorkDir == "" {
		return nil, fmt.Errorf("working directory not set")
	}
	var in Inputs
	if len(cfg.Args) > 0 {
		in.Exit = ParseExitStatus(cfg.Args[0], true)
	} else {
		in.Exit = ParseExitStatus("", false)
	}
	if len(cfg.Args) > 1 {
		in.DurationMillis, in.HasDuration = ParseDuration(cfg.Args[1])
		if !in.HasDuration {
			slog.Debug("ignoring duration", slog.String("value", cfg.Args[1]))
		}
	}
	in.Dir = FormatPath(cfg.WorkDir, cfg.HomeDir)

	resolve := cfg.Resolve
	if resolve == nil {
		resolve = git.Resolve
	}
	if state, ok := resolve(cfg.WorkDir); ok {
		in.Git = &state
	}
	return BuildSegments(in), nil
}

// Write renders the prompt for cfg to w.
func Write(w io.Writer, cfg Config) error {
	segments, err := Assemble(cfg)
	if err != nil {
		return err
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	_, err = io.WriteString(w, NewRenderer(w).Prompt(segments, now))
	return err
}
