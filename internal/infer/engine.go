package infer

import (
	"errors"

	"github.com/romarionagy/pylint/internal/ast"
)

// ErrUninferable is returned when the engine cannot resolve an
// expression's type. Callers must treat it as "cannot decide", never as a
// reason to guess or to propagate.
var ErrUninferable = errors.New("infer: expression type is uninferable")

// Engine resolves the candidate runtime types of an expression. The
// concrete engine is external to the checker; TableEngine is the bridge
// used by the CLI and tests.
type Engine interface {
	Infer(b *ast.Builder, id ast.NodeID) ([]*Instance, error)
}

// FirstOf returns the first inference candidate, nil on any failure.
func FirstOf(eng Engine, b *ast.Builder, id ast.NodeID) *Instance {
	if eng == nil {
		return nil
	}
	candidates, err := eng.Infer(b, id)
	if err != nil || len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// SafeInfer returns the inferred instance only when every candidate
// agrees on the class; ambiguity and failure both collapse to nil.
func SafeInfer(eng Engine, b *ast.Builder, id ast.NodeID) *Instance {
	if eng == nil {
		return nil
	}
	candidates, err := eng.Infer(b, id)
	if err != nil || len(candidates) == 0 {
		return nil
	}
	first := candidates[0]
	for _, cand := range candidates[1:] {
		if cand == nil || first == nil || cand.Class != first.Class {
			return nil
		}
	}
	return first
}

// TableEngine infers from three sources, in order: explicit per-node
// bindings, literal shapes, and identifier/callee tables carried by
// a snapshot. Anything else is uninferable.
type TableEngine struct {
	universe *Universe
	nodes    map[ast.NodeID]*Class
	idents   map[string]*Class
	calls    map[string]*Class
}

// NewTableEngine creates an engine over the given class universe with the
// builtin constructors (list(), range(), ...) pre-bound as call results.
func NewTableEngine(u *Universe) *TableEngine {
	e := &TableEngine{
		universe: u,
		nodes:    make(map[ast.NodeID]*Class),
		idents:   make(map[string]*Class),
		calls:    make(map[string]*Class),
	}
	for _, name := range []string{
		"str", "bytes", "int", "float", "bool",
		"tuple", "list", "set", "frozenset", "dict", "range",
	} {
		if cls, ok := u.Lookup(name); ok {
			e.calls[name] = cls
		}
	}
	return e
}

// Universe exposes the class universe backing the engine.
func (e *TableEngine) Universe() *Universe {
	return e.universe
}

// Bind fixes the inferred class for a specific node.
func (e *TableEngine) Bind(id ast.NodeID, cls *Class) {
	e.nodes[id] = cls
}

// BindIdent fixes the inferred class for every Name node spelling ident.
func (e *TableEngine) BindIdent(ident string, cls *Class) {
	e.idents[ident] = cls
}

// BindCall fixes the inferred class of calls whose callee spells callee.
func (e *TableEngine) BindCall(callee string, cls *Class) {
	e.calls[callee] = cls
}

// Infer implements Engine.
func (e *TableEngine) Infer(b *ast.Builder, id ast.NodeID) ([]*Instance, error) {
	if b == nil || !id.IsValid() {
		return nil, ErrUninferable
	}
	if cls, ok := e.nodes[id]; ok {
		return []*Instance{InstanceOf(cls)}, nil
	}

	node := b.Get(id)
	if node == nil {
		return nil, ErrUninferable
	}
	switch node.Kind {
	case ast.KindConst:
		data, _ := b.Const(id)
		return e.instanceByName(data.Value.ClassName())
	case ast.KindList, ast.KindListComp:
		return e.instanceByName("list")
	case ast.KindTuple:
		return e.instanceByName("tuple")
	case ast.KindSet, ast.KindSetComp:
		return e.instanceByName("set")
	case ast.KindDict, ast.KindDictComp:
		return e.instanceByName("dict")
	case ast.KindGeneratorExp:
		return e.instanceByName("generator")
	case ast.KindName:
		data, _ := b.Name(id)
		if cls, ok := e.idents[b.LookupString(data.Ident)]; ok {
			return []*Instance{InstanceOf(cls)}, nil
		}
	case ast.KindCall:
		data, _ := b.Call(id)
		if callee, ok := b.Name(data.Func); ok {
			if cls, found := e.calls[b.LookupString(callee.Ident)]; found {
				return []*Instance{InstanceOf(cls)}, nil
			}
		}
	}
	return nil, ErrUninferable
}

func (e *TableEngine) instanceByName(name string) ([]*Instance, error) {
	if name == "" {
		return nil, ErrUninferable
	}
	cls, ok := e.universe.Lookup(name)
	if !ok {
		return nil, ErrUninferable
	}
	return []*Instance{InstanceOf(cls)}, nil
}
