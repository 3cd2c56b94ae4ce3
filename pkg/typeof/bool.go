package typeof

type Bool bool

var _ Value = Bool(false)

func (value Bool) String() string {
	if bool(value) {
		return "true"
	} else {
		return "false"
	}
}

func (Bool) Class() string {
	return "Boolean"
}

func (value Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && value == o
}

func (value Bool) Decode(dest any) error {
	switch x := dest.(type) {
	case *Bool:
		*x = value
		return nil
	case *Value:
		*x = value
		return nil
	case *bool:
		*x = bool(value)
		return nil
	default:
		return DecodeError{
			Source:      value,
			Destination: dest,
		}
	}
}
