package ast

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Document format changes
const documentSchemaVersion uint16 = 1

// ErrSchemaMismatch reports an encoded document written with another schema version.
var ErrSchemaMismatch = errors.New("document schema mismatch")

// Document pairs a tree with the text its spans point into, which is what a
// renderer in another process needs.
type Document struct {
	Schema uint16 `msgpack:"schema"`
	Text   string `msgpack:"text"`
	Root   Entity `msgpack:"root"`
}

// NewDocument wraps text and its parsed root.
func NewDocument(text string, root Entity) Document {
	return Document{Schema: documentSchemaVersion, Text: text, Root: root}
}

// Encode writes doc to w as msgpack.
func Encode(w io.Writer, doc Document) error {
	doc.Schema = documentSchemaVersion
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// Decode reads a msgpack document written by Encode.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	if doc.Schema != documentSchemaVersion {
		return Document{}, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, doc.Schema, documentSchemaVersion)
	}
	return doc, nil
}

// MarshalMsgpack is a convenience wrapper around Encode.
func MarshalMsgpack(text string, root Entity) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, NewDocument(text, root)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalMsgpack is a convenience wrapper around Decode.
func UnmarshalMsgpack(data []byte) (Document, error) {
	return Decode(bytes.NewReader(data))
}
