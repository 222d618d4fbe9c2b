package snapshot

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/romarionagy/pylint/internal/ast"
	"github.com/romarionagy/pylint/internal/infer"
	"github.com/romarionagy/pylint/internal/source"
)

// Module is a snapshot materialized into the in-memory form the checker
// consumes: a node arena plus the inference engine the snapshot declared.
type Module struct {
	Path    string
	Source  []byte
	Builder *ast.Builder
	Engine  *infer.TableEngine
	Root    ast.NodeID
}

// Materialize rebuilds the node arena and inference tables from a decoded
// document. Spans are stamped with the given file ID, which the caller
// obtains by registering the snapshot's source with its FileSet.
func Materialize(doc *Document, fileID source.FileID) (*Module, error) {
	b := ast.NewBuilder(uint(len(doc.Nodes)))
	for i := range doc.Nodes {
		limit, err := safecast.Conv[uint32](i + 1)
		if err != nil {
			return nil, err
		}
		id, err := buildNode(b, fileID, limit, &doc.Nodes[i])
		if err != nil {
			return nil, fmt.Errorf("snapshot: node %d: %w", limit, err)
		}
		if uint32(id) != limit {
			return nil, fmt.Errorf("snapshot: node %d materialized as %d", limit, id)
		}
	}

	universe := infer.NewUniverse()
	for _, rec := range doc.Classes {
		bases := make([]*infer.Class, 0, len(rec.Bases))
		for _, baseName := range rec.Bases {
			base, ok := universe.Lookup(baseName)
			if !ok {
				return nil, fmt.Errorf("%w: base %q of %q", ErrUnknownClass, baseName, rec.Name)
			}
			bases = append(bases, base)
		}
		cls := universe.Define(rec.Name, bases...)
		for _, method := range rec.Methods {
			cls.Define(method)
		}
	}

	eng := infer.NewTableEngine(universe)
	for _, bind := range doc.Idents {
		cls, ok := universe.Lookup(bind.Class)
		if !ok {
			return nil, fmt.Errorf("%w: %q for ident %q", ErrUnknownClass, bind.Class, bind.Ident)
		}
		eng.BindIdent(bind.Ident, cls)
	}
	for _, bind := range doc.Calls {
		cls, ok := universe.Lookup(bind.Class)
		if !ok {
			return nil, fmt.Errorf("%w: %q for callee %q", ErrUnknownClass, bind.Class, bind.Callee)
		}
		eng.BindCall(bind.Callee, cls)
	}
	for _, bind := range doc.NodeBindings {
		if bind.Node == 0 || bind.Node > b.Len() {
			return nil, fmt.Errorf("%w: bound node %d", ErrBadReference, bind.Node)
		}
		cls, ok := universe.Lookup(bind.Class)
		if !ok {
			return nil, fmt.Errorf("%w: %q for node %d", ErrUnknownClass, bind.Class, bind.Node)
		}
		eng.Bind(ast.NodeID(bind.Node), cls)
	}

	return &Module{
		Path:    doc.Path,
		Source:  []byte(doc.Source),
		Builder: b,
		Engine:  eng,
		Root:    ast.NodeID(b.Len()),
	}, nil
}

// Load reads a snapshot from disk, registers its source with the file set
// and materializes it.
func Load(path string, fs *source.FileSet) (*Module, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	fileID := fs.AddVirtual(doc.Path, []byte(doc.Source))
	return Materialize(doc, fileID)
}

// buildNode appends one record to the arena. limit is the ID this record
// will receive; children must already exist below it.
func buildNode(b *ast.Builder, fileID source.FileID, limit uint32, rec *NodeRec) (ast.NodeID, error) {
	span := source.Span{File: fileID, Start: rec.Start, End: rec.End}

	child := func(ref uint32) (ast.NodeID, error) {
		if ref == 0 {
			return ast.NoNodeID, nil
		}
		if ref >= limit {
			return ast.NoNodeID, fmt.Errorf("%w: child %d", ErrBadReference, ref)
		}
		return ast.NodeID(ref), nil
	}
	children := func(refs []uint32) ([]ast.NodeID, error) {
		out := make([]ast.NodeID, 0, len(refs))
		for _, ref := range refs {
			id, err := child(ref)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		}
		return out, nil
	}

	switch ast.Kind(rec.Kind) {
	case ast.KindModule:
		body, err := children(rec.Body)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewModule(span, body), nil

	case ast.KindIf, ast.KindWhile:
		test, err := child(rec.Test)
		if err != nil {
			return ast.NoNodeID, err
		}
		body, err := children(rec.Body)
		if err != nil {
			return ast.NoNodeID, err
		}
		orelse, err := children(rec.Orelse)
		if err != nil {
			return ast.NoNodeID, err
		}
		if ast.Kind(rec.Kind) == ast.KindIf {
			return b.NewIf(span, test, body, orelse), nil
		}
		return b.NewWhile(span, test, body, orelse), nil

	case ast.KindAssert:
		test, err := child(rec.Test)
		if err != nil {
			return ast.NoNodeID, err
		}
		msg, err := child(rec.Msg)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewAssert(span, test, msg), nil

	case ast.KindAssign:
		targets, err := children(rec.Targets)
		if err != nil {
			return ast.NoNodeID, err
		}
		value, err := child(rec.Value)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewAssign(span, targets, value), nil

	case ast.KindExprStmt:
		value, err := child(rec.Value)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewExprStmt(span, value), nil

	case ast.KindName:
		return b.NewName(span, b.Intern(rec.Ident)), nil

	case ast.KindAttribute:
		value, err := child(rec.Value)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewAttribute(span, value, b.Intern(rec.Ident)), nil

	case ast.KindConst:
		return b.NewConst(span, constValue(b, rec.Const)), nil

	case ast.KindCall:
		fn, err := child(rec.Func)
		if err != nil {
			return ast.NoNodeID, err
		}
		args, err := children(rec.Args)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewCall(span, fn, args), nil

	case ast.KindCompare:
		left, err := child(rec.Left)
		if err != nil {
			return ast.NoNodeID, err
		}
		ops := make([]ast.CompareOp, 0, len(rec.Compare))
		for _, link := range rec.Compare {
			cmp, err := child(link.Comparator)
			if err != nil {
				return ast.NoNodeID, err
			}
			ops = append(ops, ast.CompareOp{Op: ast.CmpOp(link.Op), Comparator: cmp})
		}
		return b.NewCompare(span, left, ops), nil

	case ast.KindBoolOp:
		values, err := children(rec.Values)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewBoolOp(span, ast.BoolOpKind(rec.Op), values), nil

	case ast.KindUnaryOp:
		operand, err := child(rec.Value)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewUnaryOp(span, ast.UnaryOpKind(rec.Op), operand), nil

	case ast.KindBinOp:
		left, err := child(rec.Left)
		if err != nil {
			return ast.NoNodeID, err
		}
		right, err := child(rec.Right)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewBinOp(span, ast.BinOpKind(rec.Op), left, right), nil

	case ast.KindSubscript:
		value, err := child(rec.Value)
		if err != nil {
			return ast.NoNodeID, err
		}
		index, err := child(rec.Index)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewSubscript(span, value, index), nil

	case ast.KindList, ast.KindTuple, ast.KindSet:
		elts, err := children(rec.Elts)
		if err != nil {
			return ast.NoNodeID, err
		}
		switch ast.Kind(rec.Kind) {
		case ast.KindList:
			return b.NewList(span, elts), nil
		case ast.KindTuple:
			return b.NewTuple(span, elts), nil
		default:
			return b.NewSet(span, elts), nil
		}

	case ast.KindDict:
		keys, err := children(rec.Keys)
		if err != nil {
			return ast.NoNodeID, err
		}
		values, err := children(rec.Values)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewDict(span, keys, values), nil

	case ast.KindListComp, ast.KindSetComp, ast.KindDictComp, ast.KindGeneratorExp:
		return buildComp(b, span, ast.Kind(rec.Kind), rec, child, children)

	case ast.KindIfExp:
		test, err := child(rec.Test)
		if err != nil {
			return ast.NoNodeID, err
		}
		body, err := child(rec.Value)
		if err != nil {
			return ast.NoNodeID, err
		}
		orelse, err := child(rec.Right)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewIfExp(span, test, body, orelse), nil
	}
	return ast.NoNodeID, fmt.Errorf("unknown node kind %d", rec.Kind)
}

func buildComp(
	b *ast.Builder,
	span source.Span,
	kind ast.Kind,
	rec *NodeRec,
	child func(uint32) (ast.NodeID, error),
	children func([]uint32) ([]ast.NodeID, error),
) (ast.NodeID, error) {
	elt, err := child(rec.Value)
	if err != nil {
		return ast.NoNodeID, err
	}
	target, err := child(rec.Target)
	if err != nil {
		return ast.NoNodeID, err
	}
	iter, err := child(rec.Iter)
	if err != nil {
		return ast.NoNodeID, err
	}
	ifs, err := children(rec.Ifs)
	if err != nil {
		return ast.NoNodeID, err
	}
	switch kind {
	case ast.KindListComp:
		return b.NewListComp(span, elt, target, iter, ifs), nil
	case ast.KindSetComp:
		return b.NewSetComp(span, elt, target, iter, ifs), nil
	case ast.KindGeneratorExp:
		return b.NewGeneratorExp(span, elt, target, iter, ifs), nil
	default:
		key, err := child(rec.Key)
		if err != nil {
			return ast.NoNodeID, err
		}
		return b.NewDictComp(span, key, elt, target, iter, ifs), nil
	}
}

func constValue(b *ast.Builder, rec *ConstRec) ast.ConstValue {
	if rec == nil {
		return ast.NoneValue()
	}
	switch ast.ConstKind(rec.Kind) {
	case ast.ConstBool:
		return ast.BoolValue(rec.Bool)
	case ast.ConstInt:
		return ast.IntValue(rec.Int)
	case ast.ConstFloat:
		return ast.FloatValue(rec.Float)
	case ast.ConstStr:
		return ast.StrValue(b.Intern(rec.Str))
	case ast.ConstBytes:
		return ast.BytesValue(b.Intern(rec.Str))
	default:
		return ast.NoneValue()
	}
}
