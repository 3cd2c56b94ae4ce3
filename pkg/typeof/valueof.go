package typeof

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"time"

	"github.com/hashicorp/go-multierror"
)

// ValueOf converts a Go value into a Value.
//
// Slices become arrays, maps with string keys become records, and other
// maps become Maps. Every element that fails to convert is reported.
func ValueOf(src any) (Value, error) {
	switch x := src.(type) {
	case Value:
		return x, nil
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case int:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case []byte:
		buf := NewArrayBuffer(len(x))
		copy(buf.Bytes, x)
		return buf, nil
	case time.Time:
		return NewDate(x), nil
	case *regexp.Regexp:
		re, err := NewRegExp(x.String(), "")
		if err != nil {
			return nil, ConvertError{Source: src, Reason: err.Error()}
		}

		return re, nil
	case error:
		return NewError("Error", x.Error()), nil
	default:
		rt := reflect.TypeOf(src)
		rv := reflect.ValueOf(src)

		switch rt.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return Number(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return Number(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return Number(rv.Float()), nil
		case reflect.String:
			return String(rv.String()), nil
		case reflect.Bool:
			return Bool(rv.Bool()), nil
		case reflect.Slice, reflect.Array:
			return valueOfSlice(rv)
		case reflect.Map:
			return valueOfMap(rt, rv)
		case reflect.Ptr, reflect.Interface:
			if rv.IsNil() {
				return Null{}, nil
			}

			return ValueOf(rv.Elem().Interface())
		default:
			return nil, ConvertError{Source: src}
		}
	}
}

func valueOfSlice(rv reflect.Value) (Value, error) {
	var errs error

	vals := make([]Value, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		val, err := ValueOf(rv.Index(i).Interface())
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("index %d: %w", i, err))
			continue
		}

		vals[i] = val
	}

	if errs != nil {
		return nil, errs
	}

	return NewArray(vals...), nil
}

func valueOfMap(rt reflect.Type, rv reflect.Value) (Value, error) {
	var errs error

	if rt.Key().Kind() == reflect.String {
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}

		sort.Strings(keys)

		obj := NewObject()
		for _, k := range keys {
			val, err := ValueOf(rv.MapIndex(reflect.ValueOf(k).Convert(rt.Key())).Interface())
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("key %q: %w", k, err))
				continue
			}

			obj.Set(String(k), val)
		}

		if errs != nil {
			return nil, errs
		}

		return obj, nil
	}

	m := NewMap()

	iter := rv.MapRange()
	for iter.Next() {
		key, err := ValueOf(iter.Key().Interface())
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("key %v: %w", iter.Key(), err))
			continue
		}

		val, err := ValueOf(iter.Value().Interface())
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("key %v: %w", iter.Key(), err))
			continue
		}

		m.Store(key, val)
	}

	if errs != nil {
		return nil, errs
	}

	return m, nil
}
