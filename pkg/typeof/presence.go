package typeof

// IsPresent returns true if the value is neither Undefined nor Null. A nil
// Value counts as Undefined.
func IsPresent(val Value) bool {
	return !IsAbsent(val)
}

// IsAbsent returns true if the value is Undefined or Null.
func IsAbsent(val Value) bool {
	if val == nil {
		return true
	}

	var undef Undefined
	if decodes(val, &undef) {
		return true
	}

	var null Null
	return decodes(val, &null)
}

// IsNull returns true only for Null. Undefined is not null.
func IsNull(val Value) bool {
	var null Null
	return decodes(val, &null)
}

// NotNull is the complement of IsNull.
func NotNull(val Value) bool {
	return !IsNull(val)
}

// IsUndefined returns true for Undefined or a nil Value. Null is defined.
func IsUndefined(val Value) bool {
	var undef Undefined
	return val == nil || decodes(val, &undef)
}

// NotDefined is IsUndefined.
func NotDefined(val Value) bool {
	return IsUndefined(val)
}

// IfAbsentUse returns fallback if the value is absent, otherwise the value.
func IfAbsentUse(val, fallback Value) Value {
	if IsAbsent(val) {
		return fallback
	}

	return val
}

// IfInvalid is IfAbsentUse.
func IfInvalid(val, fallback Value) Value {
	return IfAbsentUse(val, fallback)
}

// IfNullUse returns fallback if the value is Null, otherwise the value.
func IfNullUse(val, fallback Value) Value {
	if IsNull(val) {
		return fallback
	}

	return val
}

// IfUndefinedUse returns fallback if the value is Undefined (or nil),
// otherwise the value.
func IfUndefinedUse(val, fallback Value) Value {
	if IsUndefined(val) {
		return fallback
	}

	return val
}

// IfNaNUse returns fallback if the value is the NaN primitive, otherwise
// the value. Nothing is coerced: a string or a boxed NaN is returned as is.
func IfNaNUse(val, fallback Value) Value {
	if isNaNPrimitive(val) {
		return fallback
	}

	return val
}

func isNaNPrimitive(val Value) bool {
	num, ok := val.(Number)
	return ok && num.isNaN()
}
