// Package parser builds the entity tree from a token stream.
//
// The builder makes a single forward pass over the tokens. Opening
// delimiters are pushed on a marker stack; a matching closing delimiter pops
// its marker and turns the entities resolved since then into the children of
// a new entity. Code, code blocks and custom expressions look ahead for their
// closing token instead of using markers, since their content is raw.
//
// Colour directives have no closing token. A colour marker is closed lazily,
// whenever another construct finishes around it (a delimiter pair, a
// blockquote line, a code block, the end of the input), so a colour region
// never escapes its enclosing structure.
//
// Markers that never find a partner are dropped without an error; their
// delimiter text stays plain text.
package parser
