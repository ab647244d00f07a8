// Package emoji holds the Unicode emoji property tables the lexer needs.
// The ranges are transcribed from Unicode's emoji-data.txt (Emoji 15.1) and
// treated as a fixed asset; regenerating them is not this package's job.
package emoji
