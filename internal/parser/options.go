package parser

import (
	"maps"

	"github.com/Nertivia/markup/internal/trace"
)

// ResetColor is the colour value that ends the current colour region.
const ResetColor = "reset"

// resetDirective is the raw value of "[#reset]" and of the "§r" egg.
const resetDirective = "#" + ResetColor

var defaultEggs = map[byte]string{
	'0': "#000",
	'1': "#00A",
	'2': "#0A0",
	'3': "#0AA",
	'4': "#A00",
	'5': "#A0A",
	'6': "#FA0",
	'7': "#AAA",
	'8': "#555",
	'9': "#55F",
	'a': "#5F5",
	'b': "#5FF",
	'c': "#F55",
	'd': "#F5F",
	'e': "#FF5",
	'f': "#FFF",
	'r': resetDirective,
}

// DefaultEggs returns a copy of the legacy "§" palette, keyed by the
// character following the sign. The reset entry is "#reset".
func DefaultEggs() map[byte]string {
	return maps.Clone(defaultEggs)
}

type Options struct {
	// Eggs is the "§" palette; nil means DefaultEggs. Values are "#rgb",
	// "#rrggbb" or "#reset".
	Eggs map[byte]string
	// NoBlockquote disables "> " line handling.
	NoBlockquote bool
	// Tracer receives marker events at debug level; nil disables them.
	Tracer trace.Tracer
	// TraceParent is the span the marker events are attached to.
	TraceParent uint64
}
