package infer

// BaseNamesOf returns the instance's own class name followed by every
// ancestor name (including object). A nil instance (a failed or unknown
// inference) yields an empty sequence, which reads as "not applicable"
// to every caller.
func BaseNamesOf(inst *Instance) []string {
	if inst == nil || inst.Class == nil {
		return nil
	}
	ancestors := inst.Ancestors()
	names := make([]string, 0, len(ancestors)+1)
	names = append(names, inst.Class.Name)
	for _, anc := range ancestors {
		names = append(names, anc.Name)
	}
	return names
}

// HasBoolOverride reports whether the instance's class defines __bool__
// anywhere on its inheritance chain. Lookup failure means "no override".
func HasBoolOverride(inst *Instance) bool {
	if inst == nil {
		return false
	}
	_, ok := inst.Class.GetAttr("__bool__")
	return ok
}
