package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Span is a half-open byte range [Start, End) into the parsed text.
type Span struct {
	Start uint32 `json:"start" msgpack:"start"`
	End   uint32 `json:"end" msgpack:"end"`
}

// SpanOf builds a span from int offsets. Offsets that do not fit into uint32
// or an inverted range are programmer errors and panic.
func SpanOf(start, end int) Span {
	s, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("span start overflow: %w", err))
	}
	e, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("span end overflow: %w", err))
	}
	if s > e {
		panic(fmt.Errorf("inverted span %d-%d", s, e))
	}
	return Span{Start: s, End: e}
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Contains reports whether other lies entirely inside s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Slice returns the part of text covered by s. Out of range spans are clamped.
func (s Span) Slice(text string) string {
	n, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("len text overflow: %w", err))
	}
	start, end := min(s.Start, n), min(s.End, n)
	return text[start:end]
}
