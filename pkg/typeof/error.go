package typeof

import "fmt"

// Error is an error object.
type Error struct {
	*Object

	Name    string
	Message string
}

var _ Composite = (*Error)(nil)

// NewError returns an error object. An empty name means "Error".
func NewError(name, message string) *Error {
	if name == "" {
		name = "Error"
	}

	obj := newObject(ErrorPrototype)
	obj.SetHidden(String("message"), String(message))
	if name != "Error" {
		obj.SetHidden(String("name"), String(name))
	}

	return &Error{
		Object:  obj,
		Name:    name,
		Message: message,
	}
}

// Error makes the value usable as a Go error.
func (value *Error) Error() string {
	if value.Message == "" {
		return value.Name
	}

	return value.Name + ": " + value.Message
}

func (*Error) Class() string {
	return "Error"
}

func (value *Error) String() string {
	return fmt.Sprintf("(error %q)", value.Error())
}

func (value *Error) Equal(other Value) bool {
	var o *Error
	return decodes(other, &o) && o == value
}

func (value *Error) Decode(dest any) error {
	switch x := dest.(type) {
	case **Error:
		*x = value
		return nil
	case *error:
		*x = value
		return nil
	case *Composite:
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
