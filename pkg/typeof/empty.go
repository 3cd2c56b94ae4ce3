package typeof

// sizeSlots are probed in order for a numeric content size.
var sizeSlots = []String{lengthKey, sizeKey, byteLengthKey}

// IsEmpty returns true if the value holds no content.
//
// The checks run in a fixed order and the first match decides. Weak
// containers expose no size and own no enumerable slots, so they are always
// empty.
func IsEmpty(val Value) bool {
	if IsAbsent(val) {
		return true
	}

	var str String
	if decodes(val, &str) {
		return str.Len() == 0
	}

	if IsUniqueToken(val) || IsBoolean(val) {
		return false
	}

	if IsNumberKind(val) {
		return !IsNumeric(val)
	}

	var args *Arguments
	if decodes(val, &args) {
		return args.Len() == 0
	}

	// an invokable's length slot is its arity, not a size
	if !IsCallable(val) {
		for _, name := range sizeSlots {
			var size Number
			if res := Get(val, name); IsNumeric(res) && decodes(res, &size) {
				return size == 0
			}
		}
	}

	if IsPatternObject(val) ||
		IsTimestampObject(val) ||
		IsCallable(val) ||
		IsErrorObject(val) ||
		IsDeferredHandle(val) ||
		IsTypeDescriptor(val) {
		return false
	}

	return len(Keys(val)) == 0
}

// NotEmpty is the complement of IsEmpty.
func NotEmpty(val Value) bool {
	return !IsEmpty(val)
}

// IfEmpty returns fallback if the value is empty, otherwise the value
// itself.
func IfEmpty(val, fallback Value) Value {
	if IsEmpty(val) {
		return fallback
	}

	return val
}
