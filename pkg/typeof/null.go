package typeof

// Undefined is the absence of a value by omission.
type Undefined struct{}

var _ Value = Undefined{}

func (Undefined) String() string {
	return "undefined"
}

func (Undefined) Class() string {
	return "Undefined"
}

func (Undefined) Equal(other Value) bool {
	var o Undefined
	return decodes(other, &o)
}

func (value Undefined) Decode(dest any) error {
	switch x := dest.(type) {
	case *Undefined:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}

// Null is the absence of a value by explicit nullification.
type Null struct{}

var _ Value = Null{}

func (Null) String() string {
	return "null"
}

func (Null) Class() string {
	return "Null"
}

func (Null) Equal(other Value) bool {
	var o Null
	return decodes(other, &o)
}

func (value Null) Decode(dest any) error {
	switch x := dest.(type) {
	case *Null:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}
