package typeof

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	slurpcore "github.com/spy16/slurp/core"
	slurpreader "github.com/spy16/slurp/reader"
)

// Reader reads values from their literal syntax.
//
//	null undefined true false NaN Infinity -Infinity
//	42 -1.5 0x1f "text"
//	[1 2 3]                  an array
//	{:a 1 "b c" 2}           a record
//	(map [:k 1] [2 "v"])     a constructor form
type Reader struct {
	rd *slurpreader.Reader
}

// symbol is a bare word. It is only meaningful as the head of a form.
type symbol string

var (
	symTable = map[string]Value{
		"null":      Null{},
		"undefined": Undefined{},
		"true":      Bool(true),
		"false":     Bool(false),
		"NaN":       NaN,
		"Infinity":  Number(math.Inf(1)),
		"-Infinity": Number(math.Inf(-1)),
	}

	escapeMap = map[rune]rune{
		'"':  '"',
		'n':  '\n',
		'\\': '\\',
		't':  '\t',
		'a':  '\a',
		'f':  '\f',
		'r':  '\r',
		'b':  '\b',
		'v':  '\v',
		'0':  0,
	}
)

func NewReader(src io.Reader, name string) *Reader {
	r := slurpreader.New(
		src,
		slurpreader.WithNumReader(readNumber),
		slurpreader.WithSymbolReader(readSymbol),
	)

	r.File = name

	reader := &Reader{
		rd: r,
	}

	r.SetMacro('"', false, readString)
	r.SetMacro('(', false, reader.readForm)
	r.SetMacro(')', false, slurpreader.UnmatchedDelimiter())
	r.SetMacro('[', false, reader.readArray)
	r.SetMacro(']', false, slurpreader.UnmatchedDelimiter())
	r.SetMacro('{', false, reader.readRecord)
	r.SetMacro('}', false, slurpreader.UnmatchedDelimiter())
	r.SetMacro(';', false, readComment)
	r.SetMacro('\'', false, nil)
	r.SetMacro('~', false, nil)
	r.SetMacro('`', false, nil)
	r.SetMacro(':', false, nil)

	return reader
}

// Read reads exactly one value from the source text.
func Read(src string) (Value, error) {
	reader := NewReader(strings.NewReader(src), "(literal)")

	val, err := reader.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read: no value in %q", src)
		}

		return nil, err
	}

	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("read: trailing input after %s", val)
	}

	return val, nil
}

// ReadAll reads every value from the source.
func ReadAll(src io.Reader, name string) ([]Value, error) {
	reader := NewReader(src, name)

	var vals []Value
	for {
		val, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return vals, nil
			}

			return nil, err
		}

		vals = append(vals, val)
	}
}

// Next reads the next value. It returns io.EOF when the source is
// exhausted.
func (reader *Reader) Next() (Value, error) {
	any, err := reader.one()
	if err != nil {
		return nil, err
	}

	return asValue(any)
}

func (reader *Reader) one() (slurpcore.Any, error) {
	rd := reader.rd

	if err := rd.SkipSpaces(); err != nil {
		return nil, err
	}

	any, err := rd.One()
	if errors.Is(err, slurpreader.ErrSkip) {
		return reader.one()
	}

	if err != nil {
		var rErr slurpreader.Error
		if errors.As(err, &rErr) {
			if errors.Is(rErr.Cause, io.EOF) {
				return nil, io.EOF
			}

			return nil, ReadError{
				Err: rErr,
			}
		}

		return nil, err
	}

	return any, nil
}

func asValue(any slurpcore.Any) (Value, error) {
	switch x := any.(type) {
	case Value:
		return x, nil
	case symbol:
		return nil, fmt.Errorf("read: unknown literal: %s", string(x))
	default:
		return nil, fmt.Errorf("read: expected Value, got %T", any)
	}
}

func (reader *Reader) readArray(rd *slurpreader.Reader, _ rune) (slurpcore.Any, error) {
	const end = ']'

	var vals []Value
	err := reader.container(end, func(any slurpcore.Any) error {
		val, err := asValue(any)
		if err != nil {
			return err
		}

		vals = append(vals, val)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return NewArray(vals...), nil
}

func (reader *Reader) readRecord(rd *slurpreader.Reader, _ rune) (slurpcore.Any, error) {
	const end = '}'

	obj := NewObject()

	var key Key
	err := reader.container(end, func(any slurpcore.Any) error {
		if key == nil {
			var err error
			key, err = recordKey(any)
			return err
		}

		val, err := asValue(any)
		if err != nil {
			return err
		}

		obj.Set(key, val)
		key = nil

		return nil
	})
	if err != nil {
		return nil, err
	}

	if key != nil {
		return nil, fmt.Errorf("read: record key %s has no value", key)
	}

	return obj, nil
}

func recordKey(any slurpcore.Any) (Key, error) {
	switch x := any.(type) {
	case symbol:
		if strings.HasPrefix(string(x), ":") && len(x) > 1 {
			return String(x[1:]), nil
		}
	case String:
		return x, nil
	case *Token:
		return x, nil
	}

	return nil, fmt.Errorf("read: record key must be :keyword, text, or token; got %v", any)
}

func (reader *Reader) readForm(rd *slurpreader.Reader, _ rune) (slurpcore.Any, error) {
	const end = ')'

	var head symbol
	var args []Value
	first := true
	err := reader.container(end, func(any slurpcore.Any) error {
		if first {
			first = false

			sym, ok := any.(symbol)
			if !ok {
				return fmt.Errorf("read: form must begin with a name, got %v", any)
			}

			head = sym
			return nil
		}

		// bare words in argument position read as text, e.g. (promise fulfilled 1)
		if sym, ok := any.(symbol); ok {
			args = append(args, String(sym))
			return nil
		}

		val, err := asValue(any)
		if err != nil {
			return err
		}

		args = append(args, val)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if first {
		return nil, fmt.Errorf("read: empty form ()")
	}

	f, found := forms[string(head)]
	if !found {
		return nil, UnknownFormError{Name: string(head)}
	}

	if len(args) < f.arity || (!f.variadic && len(args) > f.arity+f.optional) {
		return nil, ArityError{
			Name:     string(head),
			Need:     f.arity,
			Variadic: f.variadic || f.optional > 0,
			Have:     len(args),
		}
	}

	return f.build(args)
}

func (reader *Reader) container(end rune, f func(slurpcore.Any) error) error {
	rd := reader.rd

	for {
		if err := rd.SkipSpaces(); err != nil {
			if err == io.EOF {
				return slurpreader.Error{Cause: slurpreader.ErrEOF}
			}
			return err
		}

		r, err := rd.NextRune()
		if err != nil {
			if err == io.EOF {
				return slurpreader.Error{Cause: slurpreader.ErrEOF}
			}
			return err
		}

		if r == end {
			break
		}
		rd.Unread(r)

		expr, err := rd.One()
		if err != nil {
			if err == slurpreader.ErrSkip {
				continue
			}
			return err
		}

		if err = f(expr); err != nil {
			return err
		}
	}

	return nil
}

func readSymbol(rd *slurpreader.Reader, init rune) (slurpcore.Any, error) {
	beginPos := rd.Position()

	s, err := rd.Token(init)
	if err != nil {
		return nil, annotateErr(rd, err, beginPos, s)
	}

	if predefVal, found := symTable[s]; found {
		return predefVal, nil
	}

	return symbol(s), nil
}

func readNumber(rd *slurpreader.Reader, init rune) (slurpcore.Any, error) {
	beginPos := rd.Position()

	numStr, err := rd.Token(init)
	if err != nil {
		return nil, err
	}

	if f, err := strconv.ParseFloat(numStr, 64); err == nil {
		return Number(f), nil
	}

	i, err := strconv.ParseInt(numStr, 0, 64)
	if err != nil {
		return nil, annotateErr(rd, slurpreader.ErrNumberFormat, beginPos, numStr)
	}

	return Number(i), nil
}

func readString(rd *slurpreader.Reader, init rune) (slurpcore.Any, error) {
	beginPos := rd.Position()

	var b strings.Builder
	for {
		r, err := rd.NextRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = slurpreader.ErrEOF
			}
			return nil, annotateErr(rd, err, beginPos, string(init)+b.String())
		}

		if r == '\\' {
			r2, err := rd.NextRune()
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = slurpreader.ErrEOF
				}

				return nil, annotateErr(rd, err, beginPos, string(init)+b.String())
			}

			if r2 == 'u' {
				r, err = readUnicodeEscape(rd)
				if err != nil {
					return nil, annotateErr(rd, err, beginPos, string(init)+b.String())
				}
			} else {
				escaped, found := escapeMap[r2]
				if !found {
					return nil, annotateErr(rd, fmt.Errorf("illegal escape sequence '\\%c'", r2), beginPos, string(init)+b.String())
				}

				r = escaped
			}
		} else if r == '"' {
			break
		}

		b.WriteRune(r)
	}

	return String(b.String()), nil
}

func readUnicodeEscape(rd *slurpreader.Reader) (rune, error) {
	hex := make([]rune, 4)
	for i := range hex {
		r, err := rd.NextRune()
		if err != nil {
			return 0, err
		}

		hex[i] = r
	}

	code, err := strconv.ParseUint(string(hex), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("illegal unicode escape '\\u%s'", string(hex))
	}

	return rune(code), nil
}

func readComment(rd *slurpreader.Reader, _ rune) (slurpcore.Any, error) {
	for {
		r, err := rd.NextRune()
		if err != nil {
			return nil, err
		}

		if r == '\n' {
			break
		}
	}

	return nil, slurpreader.ErrSkip
}

func annotateErr(rd *slurpreader.Reader, err error, beginPos slurpreader.Position, form string) error {
	if err == io.EOF || err == slurpreader.ErrSkip {
		return err
	}

	readErr := slurpreader.Error{}
	if e, ok := err.(slurpreader.Error); ok {
		readErr = e
	} else {
		readErr = slurpreader.Error{Cause: err}
	}

	readErr.Form = form
	readErr.Begin = beginPos
	readErr.End = rd.Position()
	return readErr
}

type form struct {
	arity    int
	optional int
	variadic bool
	build    func([]Value) (Value, error)
}

var forms = map[string]form{
	"args": {variadic: true, build: func(args []Value) (Value, error) {
		return NewArguments(args...), nil
	}},
	"date": {arity: 1, build: readDate},
	"now": {build: func([]Value) (Value, error) {
		return Now(), nil
	}},
	"regexp": {arity: 1, optional: 1, build: func(args []Value) (Value, error) {
		src, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		flags, err := textArg(args, 1)
		if err != nil {
			return nil, err
		}

		return NewRegExp(src, flags)
	}},
	"error": {arity: 1, optional: 1, build: func(args []Value) (Value, error) {
		first, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		if len(args) == 1 {
			return NewError("Error", first), nil
		}

		msg, err := textArg(args, 1)
		if err != nil {
			return nil, err
		}

		return NewError(first, msg), nil
	}},
	"map": {variadic: true, build: func(args []Value) (Value, error) {
		m := NewMap()
		for _, arg := range args {
			var entry *Array
			if !decodes(arg, &entry) || entry.Len() != 2 {
				return nil, fmt.Errorf("map entry must be [key value], got %s", arg)
			}

			m.Store(entry.Elements[0], entry.Elements[1])
		}

		return m, nil
	}},
	"set": {variadic: true, build: func(args []Value) (Value, error) {
		return NewSet(args...), nil
	}},
	"weakmap": {build: func([]Value) (Value, error) {
		return NewWeakMap(), nil
	}},
	"weakset": {build: func([]Value) (Value, error) {
		return NewWeakSet(), nil
	}},
	"buffer": {arity: 1, build: func(args []Value) (Value, error) {
		var size int
		if err := args[0].Decode(&size); err != nil || size < 0 {
			return nil, fmt.Errorf("buffer size must be a non-negative integer, got %s", args[0])
		}

		return NewArrayBuffer(size), nil
	}},
	"dataview": {arity: 1, optional: 2, build: readDataView},
	"promise":  {optional: 2, build: readPromise},
	"thenable": {build: func([]Value) (Value, error) {
		obj := NewObject()
		obj.Set(String("then"), Native("then", 2, func(Value, ...Value) (Value, error) {
			return Undefined{}, nil
		}))
		return obj, nil
	}},
	"token": {optional: 1, build: func(args []Value) (Value, error) {
		desc, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		return NewToken(desc), nil
	}},
	"fn":              {arity: 1, variadic: true, build: funcForm(PlainFunc)},
	"async":           {arity: 1, variadic: true, build: funcForm(AsyncFunc)},
	"generator":       {arity: 1, variadic: true, build: funcForm(GeneratorFunc)},
	"async-generator": {arity: 1, variadic: true, build: funcForm(AsyncGeneratorFunc)},
	"native": {arity: 1, build: func(args []Value) (Value, error) {
		name, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		return Native(name, 0, nil), nil
	}},
	"class": {arity: 1, optional: 1, build: func(args []Value) (Value, error) {
		name, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		var parent *Function
		if len(args) > 1 {
			if err := args[1].Decode(&parent); err != nil {
				return nil, fmt.Errorf("class parent must be a function, got %s", args[1])
			}
		}

		return NewClass(name, parent), nil
	}},
	"new": {arity: 1, variadic: true, build: func(args []Value) (Value, error) {
		var fn *Function
		if err := args[0].Decode(&fn); err != nil {
			return nil, TypeError{Message: fmt.Sprintf("%s is not a constructor", args[0])}
		}

		return Construct(fn, args[1:]...)
	}},
	"box": {arity: 1, build: func(args []Value) (Value, error) {
		return Box(args[0])
	}},
	"wrap": {arity: 1, build: func(args []Value) (Value, error) {
		comp, err := compositeArg(args, 0)
		if err != nil {
			return nil, err
		}

		return CreateWrapper(comp, Handler{}), nil
	}},
	"node": {arity: 1, build: func(args []Value) (Value, error) {
		name, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		return NewNode(ElementNode, name), nil
	}},
	"window": {optional: 1, build: func(args []Value) (Value, error) {
		name, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		return NewWindow(name), nil
	}},
	"bare": {arity: 1, build: func(args []Value) (Value, error) {
		slots, err := recordSlots(args[0])
		if err != nil {
			return nil, err
		}

		return NewBareObject(slots), nil
	}},
	"tagged": {arity: 2, build: func(args []Value) (Value, error) {
		tag, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		var obj *Object
		if err := args[1].Decode(&obj); err != nil {
			return nil, fmt.Errorf("tagged value must be a record, got %s", args[1])
		}

		obj.SetHidden(ToStringTagKey, String(tag))
		return obj, nil
	}},
	"typed": {arity: 1, optional: 1, build: func(args []Value) (Value, error) {
		name, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		slots := Slots{}
		if len(args) > 1 {
			slots, err = recordSlots(args[1])
			if err != nil {
				return nil, err
			}
		}

		return DefineType(name, slots), nil
	}},
}

// FormNames lists the constructor forms understood by the reader.
func FormNames() []string {
	names := make([]string, 0, len(forms))
	for name := range forms {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

func funcForm(kind FuncKind) func([]Value) (Value, error) {
	return func(args []Value) (Value, error) {
		name, err := textArg(args, 0)
		if err != nil {
			return nil, err
		}

		params := make([]string, 0, len(args)-1)
		for i := 1; i < len(args); i++ {
			param, err := textArg(args, i)
			if err != nil {
				return nil, err
			}

			params = append(params, param)
		}

		return NewFunction(kind, name, params...), nil
	}
}

func readDataView(args []Value) (Value, error) {
	var buf *ArrayBuffer
	if !decodes(args[0], &buf) {
		return nil, fmt.Errorf("dataview needs a buffer, got %s", args[0])
	}

	offset, length := 0, -1
	for i, dest := range []*int{&offset, &length} {
		if i+1 >= len(args) {
			break
		}

		if err := args[i+1].Decode(dest); err != nil || *dest < 0 {
			return nil, fmt.Errorf("dataview offset and length must be non-negative integers, got %s", args[i+1])
		}
	}

	return NewDataView(buf, offset, length)
}

func readDate(args []Value) (Value, error) {
	var str string
	if err := args[0].Decode(&str); err == nil {
		return ParseDate(str), nil
	}

	var ms Number
	if err := args[0].Decode(&ms); err == nil {
		return DateFromMillis(ms), nil
	}

	return nil, fmt.Errorf("date must be text or milliseconds, got %s", args[0])
}

func readPromise(args []Value) (Value, error) {
	p := NewPromise()
	if len(args) == 0 {
		return p, nil
	}

	state, err := textArg(args, 0)
	if err != nil {
		return nil, err
	}

	var result Value = Undefined{}
	if len(args) > 1 {
		result = args[1]
	}

	switch state {
	case "pending":
	case "fulfilled":
		p.Resolve(result)
	case "rejected":
		p.Reject(result)
	default:
		return nil, fmt.Errorf("unknown promise state: %s", state)
	}

	return p, nil
}

// textArg returns the text argument at i, or "" if it was not given.
func textArg(args []Value, i int) (string, error) {
	if i >= len(args) {
		return "", nil
	}

	var str string
	if err := args[i].Decode(&str); err != nil {
		return "", fmt.Errorf("argument %d: expected text, got %s", i+1, args[i])
	}

	return str, nil
}

func compositeArg(args []Value, i int) (Composite, error) {
	var comp Composite
	if err := args[i].Decode(&comp); err != nil {
		return nil, fmt.Errorf("argument %d: expected composite, got %s", i+1, args[i])
	}

	return comp, nil
}

func recordSlots(val Value) (Slots, error) {
	var obj *Object
	if err := val.Decode(&obj); err != nil {
		return nil, fmt.Errorf("expected record, got %s", val)
	}

	slots := Slots{}
	for _, k := range Keys(obj) {
		v, _ := obj.GetOwn(k)
		slots[string(k)] = v
	}

	return slots, nil
}
