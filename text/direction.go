package text

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the base writing direction of a string.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// String returns "LTR" or "RTL".
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Run is a contiguous piece of a string with one direction.
// Start and End are rune indices, End exclusive.
type Run struct {
	Text      string
	Start     int
	End       int
	Direction Direction
}

// DetectDirection returns the direction of the first run of s.
// Strings with no strong characters are left-to-right.
func DetectDirection(s string) Direction {
	runs := Runs(s)
	if len(runs) == 0 {
		return DirectionLTR
	}
	return runs[0].Direction
}

// Runs splits s into directional runs in logical order.
func Runs(s string) []Run {
	if s == "" {
		return nil
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return []Run{{Text: s, End: len([]rune(s))}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: s, End: len([]rune(s))}}
	}

	runes := []rune(s)
	runs := make([]Run, 0, ordering.NumRuns())
	// run.Pos() returns rune indices (start, end inclusive)
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos()
		if end >= len(runes) {
			end = len(runes) - 1
		}
		dir := DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, Run{
			Text:      string(runes[start : end+1]),
			Start:     start,
			End:       end + 1,
			Direction: dir,
		})
	}
	// Order returns runs visually; callers want logical order.
	slices.SortFunc(runs, func(a, b Run) int { return a.Start - b.Start })
	return runs
}
