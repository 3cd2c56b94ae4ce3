package typeof

import (
	"fmt"
	"strings"
)

const sizeKey = String("size")
const byteLengthKey = String("byteLength")

// Map is an associative mapping with insertion order.
type Map struct {
	*Object

	keys []Value
	vals []Value
}

var _ Composite = (*Map)(nil)

func NewMap() *Map {
	return &Map{Object: newObject(MapPrototype)}
}

func (value *Map) Len() int {
	return len(value.keys)
}

// Store associates a value with a key, replacing an existing entry.
func (value *Map) Store(key, val Value) {
	if i := indexOf(value.keys, key); i >= 0 {
		value.vals[i] = val
		return
	}

	value.keys = append(value.keys, key)
	value.vals = append(value.vals, val)
}

// Load returns the value for a key.
func (value *Map) Load(key Value) (Value, bool) {
	if i := indexOf(value.keys, key); i >= 0 {
		return value.vals[i], true
	}

	return nil, false
}

// Remove deletes an entry.
func (value *Map) Remove(key Value) bool {
	i := indexOf(value.keys, key)
	if i < 0 {
		return false
	}

	value.keys = append(value.keys[:i:i], value.keys[i+1:]...)
	value.vals = append(value.vals[:i:i], value.vals[i+1:]...)
	return true
}

// Clear removes every entry.
func (value *Map) Clear() {
	value.keys = nil
	value.vals = nil
}

// Entries returns key-value pairs in insertion order.
func (value *Map) Entries() [][2]Value {
	entries := make([][2]Value, len(value.keys))
	for i := range value.keys {
		entries[i] = [2]Value{value.keys[i], value.vals[i]}
	}

	return entries
}

func (value *Map) accessor(key Key) (Value, bool) {
	if key == sizeKey {
		return Number(len(value.keys)), true
	}

	return nil, false
}

func (*Map) Class() string {
	return "Map"
}

func (value *Map) String() string {
	return value.repr(map[Composite]bool{})
}

func (value *Map) repr(seen map[Composite]bool) string {
	if seen[value] {
		return "(map ...)"
	}

	seen[value] = true
	defer delete(seen, value)

	parts := []string{"map"}
	for i := range value.keys {
		parts = append(parts, fmt.Sprintf("[%s %s]", reprIn(value.keys[i], seen), reprIn(value.vals[i], seen)))
	}

	return "(" + strings.Join(parts, " ") + ")"
}

func (value *Map) Equal(other Value) bool {
	var o *Map
	return decodes(other, &o) && o == value
}

func (value *Map) Decode(dest any) error {
	switch x := dest.(type) {
	case **Map:
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

// Set is a set container with insertion order.
type Set struct {
	*Object

	members []Value
}

var _ Composite = (*Set)(nil)

func NewSet(vals ...Value) *Set {
	set := &Set{Object: newObject(SetPrototype)}
	for _, v := range vals {
		set.Add(v)
	}

	return set
}

func (value *Set) Len() int {
	return len(value.members)
}

// Add inserts a member if not already present.
func (value *Set) Add(val Value) {
	if indexOf(value.members, val) < 0 {
		value.members = append(value.members, val)
	}
}

// Has reports membership.
func (value *Set) Has(val Value) bool {
	return indexOf(value.members, val) >= 0
}

// Remove deletes a member.
func (value *Set) Remove(val Value) bool {
	i := indexOf(value.members, val)
	if i < 0 {
		return false
	}

	value.members = append(value.members[:i:i], value.members[i+1:]...)
	return true
}

// Clear removes every member.
func (value *Set) Clear() {
	value.members = nil
}

// Members returns the members in insertion order.
func (value *Set) Members() []Value {
	return append([]Value{}, value.members...)
}

func (value *Set) accessor(key Key) (Value, bool) {
	if key == sizeKey {
		return Number(len(value.members)), true
	}

	return nil, false
}

func (*Set) Class() string {
	return "Set"
}

func (value *Set) String() string {
	return value.repr(map[Composite]bool{})
}

func (value *Set) repr(seen map[Composite]bool) string {
	if seen[value] {
		return "(set ...)"
	}

	seen[value] = true
	defer delete(seen, value)

	if len(value.members) == 0 {
		return "(set)"
	}

	return "(set " + strings.ReplaceAll(joinElements(value.members, seen), ", ", " ") + ")"
}

func (value *Set) Equal(other Value) bool {
	var o *Set
	return decodes(other, &o) && o == value
}

func (value *Set) Decode(dest any) error {
	switch x := dest.(type) {
	case **Set:
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

// WeakMap is an associative mapping whose keys are composites which it does
// not keep alive. It deliberately exposes no size.
type WeakMap struct {
	*Object

	entries map[Composite]Value
}

var _ Composite = (*WeakMap)(nil)

func NewWeakMap() *WeakMap {
	return &WeakMap{
		Object:  newObject(WeakMapPrototype),
		entries: map[Composite]Value{},
	}
}

// Store associates a value with a composite key.
func (value *WeakMap) Store(key Composite, val Value) {
	value.entries[key] = val
}

// Load returns the value for a key.
func (value *WeakMap) Load(key Composite) (Value, bool) {
	val, found := value.entries[key]
	return val, found
}

// Remove deletes an entry.
func (value *WeakMap) Remove(key Composite) bool {
	_, found := value.entries[key]
	delete(value.entries, key)
	return found
}

func (*WeakMap) Class() string {
	return "WeakMap"
}

func (*WeakMap) String() string {
	return "(weakmap)"
}

func (value *WeakMap) Equal(other Value) bool {
	var o *WeakMap
	return decodes(other, &o) && o == value
}

func (value *WeakMap) Decode(dest any) error {
	switch x := dest.(type) {
	case **WeakMap:
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

// WeakSet is a set of composites which it does not keep alive. It
// deliberately exposes no size.
type WeakSet struct {
	*Object

	members map[Composite]struct{}
}

var _ Composite = (*WeakSet)(nil)

func NewWeakSet() *WeakSet {
	return &WeakSet{
		Object:  newObject(WeakSetPrototype),
		members: map[Composite]struct{}{},
	}
}

// Add inserts a member.
func (value *WeakSet) Add(member Composite) {
	value.members[member] = struct{}{}
}

// Has reports membership.
func (value *WeakSet) Has(member Composite) bool {
	_, found := value.members[member]
	return found
}

// Remove deletes a member.
func (value *WeakSet) Remove(member Composite) bool {
	_, found := value.members[member]
	delete(value.members, member)
	return found
}

func (*WeakSet) Class() string {
	return "WeakSet"
}

func (*WeakSet) String() string {
	return "(weakset)"
}

func (value *WeakSet) Equal(other Value) bool {
	var o *WeakSet
	return decodes(other, &o) && o == value
}

func (value *WeakSet) Decode(dest any) error {
	switch x := dest.(type) {
	case **WeakSet:
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

// ArrayBuffer is a fixed-size binary buffer.
type ArrayBuffer struct {
	*Object

	Bytes []byte
}

var _ Composite = (*ArrayBuffer)(nil)

func NewArrayBuffer(size int) *ArrayBuffer {
	return &ArrayBuffer{
		Object: newObject(ArrayBufferPrototype),
		Bytes:  make([]byte, size),
	}
}

func (value *ArrayBuffer) accessor(key Key) (Value, bool) {
	if key == byteLengthKey {
		return Number(len(value.Bytes)), true
	}

	return nil, false
}

func (*ArrayBuffer) Class() string {
	return "ArrayBuffer"
}

func (value *ArrayBuffer) String() string {
	return fmt.Sprintf("(buffer %d)", len(value.Bytes))
}

func (value *ArrayBuffer) Equal(other Value) bool {
	var o *ArrayBuffer
	return decodes(other, &o) && o == value
}

func (value *ArrayBuffer) Decode(dest any) error {
	switch x := dest.(type) {
	case **ArrayBuffer:
		*x = value
		return nil
	case *[]byte:
		*x = value.Bytes
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

// DataView is a view over a range of an ArrayBuffer's bytes.
type DataView struct {
	*Object

	Buffer *ArrayBuffer
	Offset int
	Length int
}

var _ Composite = (*DataView)(nil)

// NewDataView returns a view of length bytes of buf starting at offset. A
// negative length extends the view to the end of the buffer.
func NewDataView(buf *ArrayBuffer, offset, length int) (*DataView, error) {
	size := len(buf.Bytes)
	if offset < 0 || offset > size {
		return nil, NewError("RangeError", fmt.Sprintf("Start offset %d is outside the bounds of the buffer", offset))
	}

	if length < 0 {
		length = size - offset
	}

	if offset+length > size {
		return nil, NewError("RangeError", fmt.Sprintf("Invalid DataView length %d", length))
	}

	return &DataView{
		Object: newObject(DataViewPrototype),
		Buffer: buf,
		Offset: offset,
		Length: length,
	}, nil
}

// Bytes returns the viewed bytes, sharing the buffer's storage.
func (value *DataView) Bytes() []byte {
	return value.Buffer.Bytes[value.Offset : value.Offset+value.Length]
}

func (value *DataView) accessor(key Key) (Value, bool) {
	switch key {
	case byteLengthKey:
		return Number(value.Length), true
	case String("byteOffset"):
		return Number(value.Offset), true
	case String("buffer"):
		return value.Buffer, true
	default:
		return nil, false
	}
}

func (*DataView) Class() string {
	return "DataView"
}

func (value *DataView) String() string {
	return fmt.Sprintf("(dataview %s %d %d)", value.Buffer, value.Offset, value.Length)
}

func (value *DataView) Equal(other Value) bool {
	var o *DataView
	return decodes(other, &o) && o == value
}

func (value *DataView) Decode(dest any) error {
	switch x := dest.(type) {
	case **DataView:
		*x = value
		return nil
	case *[]byte:
		*x = value.Bytes()
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

// sameValueZero is the equality used for Map keys and Set members: NaN
// equals itself, and composites compare by identity.
func sameValueZero(a, b Value) bool {
	if an, ok := a.(Number); ok {
		bn, ok := b.(Number)
		return ok && (an == bn || an.isNaN() && bn.isNaN())
	}

	return a.Equal(b)
}

func indexOf(vals []Value, val Value) int {
	for i, v := range vals {
		if sameValueZero(v, val) {
			return i
		}
	}

	return -1
}
