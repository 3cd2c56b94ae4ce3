package typeof

import "fmt"

// Node is a handle to a host document node.
type Node struct {
	*Object

	NodeType int
	NodeName string
}

var _ Composite = (*Node)(nil)

// ElementNode is the node type of elements.
const ElementNode = 1

func NewNode(nodeType int, name string) *Node {
	return &Node{
		Object:   newObject(NodePrototype),
		NodeType: nodeType,
		NodeName: name,
	}
}

func (*Node) Class() string {
	return "Node"
}

func (value *Node) String() string {
	return fmt.Sprintf("(node %q)", value.NodeName)
}

func (value *Node) Equal(other Value) bool {
	var o *Node
	return decodes(other, &o) && o == value
}

func (value *Node) Decode(dest any) error {
	switch x := dest.(type) {
	case **Node:
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

// Window is a handle to a host window.
type Window struct {
	*Object

	Name string
}

var _ Composite = (*Window)(nil)

func NewWindow(name string) *Window {
	win := &Window{
		Object: newObject(WindowPrototype),
		Name:   name,
	}

	win.SetHidden(String("window"), win)

	return win
}

func (*Window) Class() string {
	return "Window"
}

func (value *Window) String() string {
	if value.Name == "" {
		return "(window)"
	}

	return fmt.Sprintf("(window %q)", value.Name)
}

func (value *Window) Equal(other Value) bool {
	var o *Window
	return decodes(other, &o) && o == value
}

func (value *Window) Decode(dest any) error {
	switch x := dest.(type) {
	case **Window:
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

// DefineType returns a record marked as a custom type descriptor named
// name. The marker is a hidden slot under TypeNameKey.
func DefineType(name string, slots Slots) *Object {
	obj := NewRecord(slots)
	obj.SetHidden(TypeNameKey, String(name))
	return obj
}
