package infer

// Instance is one inferred candidate value: an instance of Class.
type Instance struct {
	Class *Class
}

// Name returns the instance's own class name, "" for a nil instance.
func (i *Instance) Name() string {
	if i == nil || i.Class == nil {
		return ""
	}
	return i.Class.Name
}

// Ancestors returns the class's linearized ancestor chain.
func (i *Instance) Ancestors() []*Class {
	if i == nil {
		return nil
	}
	return i.Class.Ancestors()
}

// InstanceOf wraps a class as an instance candidate.
func InstanceOf(cls *Class) *Instance {
	if cls == nil {
		return nil
	}
	return &Instance{Class: cls}
}
