// Package token defines the lexical token kinds of the markup dialect.
// Invariants:
//   - Token.Text is a slice of the original input (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - The Kind enumeration is closed: the tree builder handles every kind and
//     treats anything else as a defect.
//   - Plain text is never tokenized; it is whatever lies between tokens.
package token
