// Package trace provides the tracing subsystem of the markup parser.
//
// Tracing follows a document through the parser: the batch that carries it,
// the tokenize/build/densify passes, and (at the most verbose level) the
// markers the tree builder drops because they never found a partner.
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelPhase: Batch and document boundaries
//   - LevelDetail: Pass boundaries
//   - LevelDebug: Everything including marker events
//
// # Scopes
//
//   - ScopeBatch: One ParseAll call
//   - ScopeDocument: One parsed text
//   - ScopePass: tokenize, build, densify
//   - ScopeMarker: Tree builder marker events
//
// # Usage
//
//	t, err := trace.New(trace.Config{Level: trace.LevelDetail, Format: trace.FormatNDJSON})
//	span := trace.Begin(t, trace.ScopePass, "tokenize", parentID)
//	defer span.End("")
package trace
