// Package infer bridges the checker to the external type-inference
// oracle. Detectors never talk to an engine directly; they go through
// SafeInfer/FirstOf and the applicability helpers, which collapse every
// failure mode into "no answer".
package infer

// Method is a resolved class attribute. Only its existence matters to the
// checker; the body stays with the external engine.
type Method struct {
	Name string
}

// Class describes a runtime class: its name, base classes in declaration
// order, and the methods it defines itself.
type Class struct {
	Name    string
	Bases   []*Class
	methods map[string]Method
}

// NewClass creates a class with the given bases. Callers that want the
// implicit universal base should go through Universe.Define.
func NewClass(name string, bases ...*Class) *Class {
	return &Class{
		Name:    name,
		Bases:   bases,
		methods: make(map[string]Method),
	}
}

// Define records a method on the class itself.
func (c *Class) Define(method string) *Class {
	c.methods[method] = Method{Name: method}
	return c
}

// GetAttr resolves a method on the class or any ancestor. A missing
// attribute is a negative answer, not an error.
func (c *Class) GetAttr(name string) (Method, bool) {
	if c == nil {
		return Method{}, false
	}
	if m, ok := c.methods[name]; ok {
		return m, true
	}
	for _, anc := range c.Ancestors() {
		if m, ok := anc.methods[name]; ok {
			return m, true
		}
	}
	return Method{}, false
}

// Ancestors linearizes the inheritance chain (depth-first, deduplicated,
// excluding the class itself). Cycles are cut by the seen set.
func (c *Class) Ancestors() []*Class {
	if c == nil {
		return nil
	}
	seen := map[*Class]struct{}{c: {}}
	var out []*Class
	var walk func(cls *Class)
	walk = func(cls *Class) {
		for _, base := range cls.Bases {
			if base == nil {
				continue
			}
			if _, ok := seen[base]; ok {
				continue
			}
			seen[base] = struct{}{}
			out = append(out, base)
			walk(base)
		}
	}
	walk(c)
	return out
}

// Universe holds the builtin class hierarchy plus user classes declared
// by a snapshot.
type Universe struct {
	classes map[string]*Class

	Object *Class
}

// NewUniverse builds the builtin hierarchy the detectors query by name:
// object at the root, bool under int, and the sequence/mapping builtins.
func NewUniverse() *Universe {
	u := &Universe{classes: make(map[string]*Class)}
	u.Object = NewClass("object")
	u.classes["object"] = u.Object

	for _, name := range []string{
		"str", "bytes", "int", "float", "complex",
		"tuple", "list", "set", "frozenset", "dict",
		"range", "generator", "NoneType",
	} {
		u.Define(name)
	}
	// bool subclasses int in Python.
	boolClass := NewClass("bool", u.classes["int"])
	u.classes["bool"] = boolClass
	return u
}

// Define registers a class; classes declared without bases implicitly
// inherit from object.
func (u *Universe) Define(name string, bases ...*Class) *Class {
	if len(bases) == 0 {
		bases = []*Class{u.Object}
	}
	cls := NewClass(name, bases...)
	u.classes[name] = cls
	return cls
}

// Lookup returns the class registered under name.
func (u *Universe) Lookup(name string) (*Class, bool) {
	cls, ok := u.classes[name]
	return cls, ok
}
