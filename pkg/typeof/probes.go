package typeof

// OwnsSlot returns true if the value directly owns the named slot. It never
// fails: absent values and primitives without slots own nothing.
func OwnsSlot(val Value, name Key) bool {
	if IsAbsent(val) || name == nil {
		return false
	}

	_, found := getOwn(val, name)
	return found
}

// CanInvoke returns true if the value exposes an invokable capability under
// name, either owned or inherited. It never fails, even on primitives, which
// are probed through their intrinsic prototype.
func CanInvoke(val Value, name Key) bool {
	if IsAbsent(val) || name == nil {
		return false
	}

	if str, ok := name.(String); ok && str == "" {
		return false
	}

	return IsCallable(Get(val, name))
}
