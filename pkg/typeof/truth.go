package typeof

// IsTrue returns true for the true literal or a boxed true.
func IsTrue(val Value) bool {
	if lit, ok := val.(Bool); ok {
		return bool(lit)
	}

	var b Bool
	return IsBoolean(val) && decodes(val, &b) && bool(b)
}

// IsFalse returns true for the false literal or a boxed false.
func IsFalse(val Value) bool {
	if lit, ok := val.(Bool); ok {
		return !bool(lit)
	}

	var b Bool
	return IsBoolean(val) && decodes(val, &b) && !bool(b)
}

// NotTrue is the complement of IsTrue.
func NotTrue(val Value) bool {
	return !IsTrue(val)
}

// NotFalse is the complement of IsFalse.
func NotFalse(val Value) bool {
	return !IsFalse(val)
}

// IsFalsey returns true for the false literal, the empty string, zero,
// Undefined, Null, and NaN. Composites, boxed ones included, are never
// falsey.
func IsFalsey(val Value) bool {
	switch x := val.(type) {
	case Bool:
		return !bool(x)
	case String:
		return x == ""
	case Number:
		return x == 0 || x.isNaN()
	}

	return IsAbsent(val)
}

// IsTruthy is the complement of IsFalsey.
func IsTruthy(val Value) bool {
	return !IsFalsey(val)
}
