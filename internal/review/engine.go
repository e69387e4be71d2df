package review

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ToolName    = "glint"
	ToolVersion = "0.1.0"
)

// ErrEmptyInput is returned when the submitted source is empty or whitespace.
var ErrEmptyInput = errors.New("please enter some code to review")

// Validate rejects input that must never reach the generator.
func Validate(in Input) error {
	if strings.TrimSpace(in.Source) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Run validates in, waits the simulated delay, and reviews the trimmed source.
// A nil generator uses the default battery. The delay honours ctx.
func Run(ctx context.Context, in Input, g *Generator, delay time.Duration) (*Report, error) {
	startTime := time.Now()

	if err := Validate(in); err != nil {
		return nil, err
	}
	if g == nil {
		g = defaultGenerator
	}

	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("simulated review: %w", ctx.Err())
		case <-t.C:
		}
	}

	src := strings.TrimSpace(in.Source)
	res := g.Generate(src, in.Language)

	return BuildReport(Input{Source: src, Language: in.Language}, res, delay, time.Since(startTime)), nil
}

// BuildReport wraps a result in a report envelope with a fresh run ID.
func BuildReport(in Input, res Result, delay, total time.Duration) *Report {
	lines := 0
	if in.Source != "" {
		lines = strings.Count(in.Source, "\n") + 1
	}
	return &Report{
		Tool:    ToolName,
		Version: ToolVersion,
		RunID:   uuid.NewString(),
		Input: InputInfo{
			Language: NormalizeLanguage(in.Language),
			Family:   FamilyOf(in.Language),
			Bytes:    len(in.Source),
			Lines:    lines,
		},
		Result: res,
		Timing: Timing{
			DelayMs: delay.Milliseconds(),
			TotalMs: total.Milliseconds(),
		},
	}
}
