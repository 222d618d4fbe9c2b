// Package snapshot reads and writes serialized module trees. Parsing and
// type inference happen upstream; a snapshot carries the parsed source, a
// flat node table and the inference bindings, which is everything the
// checker needs to reconstruct a Builder and a TableEngine.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the Document format changes
const SchemaVersion uint16 = 1

var (
	ErrSchema       = errors.New("snapshot: unsupported schema version")
	ErrBadReference = errors.New("snapshot: node reference out of range")
	ErrUnknownClass = errors.New("snapshot: unknown class name")
)

// Document is the on-disk form of one analyzed module.
type Document struct {
	// Schema version for safe invalidation when the format changes
	Schema uint16

	// Source metadata
	Path   string
	Source string

	// Flat node table in children-first order: record i materializes as
	// node ID i+1, and every child reference must point at a lower ID.
	Nodes []NodeRec

	// Class declarations in bases-first order; bases may also name
	// builtins from the standard universe.
	Classes []ClassRec

	// Inference bindings
	Idents       []IdentBinding
	Calls        []CallBinding
	NodeBindings []NodeBinding
}

// NodeRec is one flattened node. Only the fields relevant to Kind are
// set; child slots hold 1-based node IDs with 0 meaning "absent".
type NodeRec struct {
	Kind  uint8
	Start uint32
	End   uint32

	Op    uint8     `msgpack:",omitempty"`
	Ident string    `msgpack:",omitempty"`
	Const *ConstRec `msgpack:",omitempty"`

	Test   uint32 `msgpack:",omitempty"`
	Value  uint32 `msgpack:",omitempty"`
	Target uint32 `msgpack:",omitempty"`
	Iter   uint32 `msgpack:",omitempty"`
	Key    uint32 `msgpack:",omitempty"`
	Left   uint32 `msgpack:",omitempty"`
	Right  uint32 `msgpack:",omitempty"`
	Index  uint32 `msgpack:",omitempty"`
	Func   uint32 `msgpack:",omitempty"`
	Msg    uint32 `msgpack:",omitempty"`

	Body    []uint32 `msgpack:",omitempty"`
	Orelse  []uint32 `msgpack:",omitempty"`
	Targets []uint32 `msgpack:",omitempty"`
	Args    []uint32 `msgpack:",omitempty"`
	Values  []uint32 `msgpack:",omitempty"`
	Elts    []uint32 `msgpack:",omitempty"`
	Keys    []uint32 `msgpack:",omitempty"`
	Ifs     []uint32 `msgpack:",omitempty"`

	Compare []CompareRec `msgpack:",omitempty"`
}

// CompareRec is one (operator, comparator) link of a chained comparison.
type CompareRec struct {
	Op         uint8
	Comparator uint32
}

// ConstRec is the literal payload of a Const node.
type ConstRec struct {
	Kind  uint8
	Bool  bool    `msgpack:",omitempty"`
	Int   int64   `msgpack:",omitempty"`
	Float float64 `msgpack:",omitempty"`
	Str   string  `msgpack:",omitempty"`
}

// ClassRec declares a class the inference tables may reference.
type ClassRec struct {
	Name    string
	Bases   []string `msgpack:",omitempty"`
	Methods []string `msgpack:",omitempty"`
}

// IdentBinding maps a variable name to its inferred class.
type IdentBinding struct {
	Ident string
	Class string
}

// CallBinding maps a callee name to the class its calls return.
type CallBinding struct {
	Callee string
	Class  string
}

// NodeBinding pins a single node to an inferred class.
type NodeBinding struct {
	Node  uint32
	Class string
}

// Encode serializes a document.
func Encode(w io.Writer, doc *Document) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(doc)
}

// Decode deserializes and validates a document.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if doc.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, doc.Schema, SchemaVersion)
	}
	return doc, nil
}

// Write stores the document at path, replacing any previous snapshot.
func Write(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read loads and validates the document at path.
func Read(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Decode(f)
}
