package term

import (
	"fmt"
	"reflect"
)

// ValueKind tags a Value.
type ValueKind int

// Value kinds.
const (
	ValueNone ValueKind = iota
	ValueScalar
	ValueList
	ValueCustom
)

// Value is the tagged union carried by a term: nothing, a scalar, an
// ordered list, or a caller-supplied renderer.
type Value struct {
	kind   ValueKind
	scalar any
	list   []any
	custom Renderer
}

// None returns the empty value.
func None() Value { return Value{} }

// Scalar wraps a single value. A nil v yields None.
func Scalar(v any) Value {
	if v == nil {
		return None()
	}
	return Value{kind: ValueScalar, scalar: v}
}

// List wraps an ordered list of values. The slice is copied.
func List(items ...any) Value {
	cp := make([]any, len(items))
	copy(cp, items)
	return Value{kind: ValueList, list: cp}
}

// Custom wraps a renderer that compiles the term itself. A nil renderer,
// including a nil RendererFunc held in the interface, yields None.
func Custom(r Renderer) Value {
	if r == nil {
		return None()
	}
	if rv := reflect.ValueOf(r); rv.Kind() == reflect.Func && rv.IsNil() {
		return None()
	}
	return Value{kind: ValueCustom, custom: r}
}

// ValueOf classifies an arbitrary Go value. Slices and arrays (except
// []byte) become lists, a Renderer becomes custom, nil becomes none and
// anything else is a scalar.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return None()
	case Value:
		return x
	case Renderer:
		return Custom(x)
	case []any:
		return List(x...)
	case []byte:
		return Scalar(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List()
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return Value{kind: ValueList, list: items}
	default:
		return Scalar(v)
	}
}

// Kind returns the value's tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether the value is empty.
func (v Value) IsNone() bool { return v.kind == ValueNone }

// Scalar returns the scalar payload, or nil for other kinds.
func (v Value) Scalar() any { return v.scalar }

// Items returns a copy of the list payload, or nil for other kinds.
func (v Value) Items() []any {
	if v.kind != ValueList {
		return nil
	}
	cp := make([]any, len(v.list))
	copy(cp, v.list)
	return cp
}

// Len returns the number of list items; 1 for a scalar and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case ValueList:
		return len(v.list)
	case ValueScalar:
		return 1
	default:
		return 0
	}
}

// Renderer returns the custom renderer, or nil.
func (v Value) Renderer() Renderer { return v.custom }

// Index returns the i-th list item.
func (v Value) Index(i int) (any, bool) {
	if v.kind != ValueList || i < 0 || i >= len(v.list) {
		return nil, false
	}
	return v.list[i], true
}

// Interface returns the payload as a plain Go value: nil, the scalar, a
// []any copy, or the renderer.
func (v Value) Interface() any {
	switch v.kind {
	case ValueScalar:
		return v.scalar
	case ValueList:
		return v.Items()
	case ValueCustom:
		return v.custom
	default:
		return nil
	}
}

// AsList coerces the value into a list: none becomes an empty list, a
// scalar a one-element list, and a list is copied. Custom values are
// returned unchanged.
func (v Value) AsList() Value {
	switch v.kind {
	case ValueNone:
		return List()
	case ValueScalar:
		return List(v.scalar)
	case ValueList:
		return List(v.list...)
	default:
		return v
	}
}

// First flattens a list to its first element; an empty list becomes none.
// Other kinds are returned unchanged.
func (v Value) First() Value {
	if v.kind != ValueList {
		return v
	}
	if len(v.list) == 0 {
		return None()
	}
	return Scalar(v.list[0])
}

// String formats the payload.
func (v Value) String() string {
	switch v.kind {
	case ValueScalar:
		return fmt.Sprint(v.scalar)
	case ValueList:
		return fmt.Sprint(v.list)
	case ValueCustom:
		return "<renderer>"
	default:
		return "<none>"
	}
}
