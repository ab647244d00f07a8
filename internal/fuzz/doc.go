// Package fuzztests houses Go fuzz harnesses that run arbitrary input through
// the tokenizer, the tree builder and densify. They guard against panics,
// hangs and trees that break the structural invariants checked by testkit.
package fuzztests
