// Package value implements the Response Value (spec.md §3/§4.1): a dynamic
// tagged value used for arguments, variables, and results throughout the
// execution engine.
//
// The teacher (github.com/shyptr/graphql) represents every runtime value as
// a plain interface{} inspected with reflect, because its resolvers are
// real Go functions operating on real Go structs. This engine's resolvers
// are opaque callbacks (spec.md §4.2) with no schema-described Go type to
// reflect on, so spec.md §9 directs a tagged sum instead: "Preserve
// insertion order in Map; do not back it with a hashed container for
// results, since output order is observable."
package value

import "fmt"

// Kind tags the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindEnum
	KindID
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindEnum:
		return "Enum"
	case KindID:
		return "ID"
	case KindList:
		return "List"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// TypeMismatchError is raised by a typed accessor when the Value does not
// hold the requested Kind (spec.md §4.1: "reading as the wrong tag fails
// with TypeMismatch").
type TypeMismatchError struct {
	Want Kind
	Got  Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("TypeMismatch: want %s, got %s", e.Want, e.Got)
}

// Entry is one (key, Value) pair of a Map, kept in insertion order.
type Entry struct {
	Key   string
	Value Value
}

// Value is the dynamic tagged value described in spec.md §3. The zero
// Value is Null. Values are immutable from the outside except through the
// explicit Map/List mutators below; copying a Value by assignment is NOT a
// deep clone (List/Map hold slices) — use Clone for that.
type Value struct {
	kind Kind

	b bool
	i int64
	f float64
	s string // String, Enum
	d []byte // ID

	list *[]Value
	m    *[]Entry
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int constructs an Int value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float constructs a Float value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String constructs a String value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Enum constructs an Enum value. Enum and String are distinct tags so that
// wire serialization can quote String but not Enum (spec.md §3).
func Enum(identifier string) Value { return Value{kind: KindEnum, s: identifier} }

// ID constructs an ID value from its decoded byte representation (spec.md
// §6: "Vec<u8> in memory").
func ID(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindID, d: cp}
}

// NewList constructs an empty List value with room for n elements
// pre-reserved, per spec.md §4.1 ("List supports reserve and ordered
// append").
func NewList(capacity int) Value {
	l := make([]Value, 0, capacity)
	return Value{kind: KindList, list: &l}
}

// NewMap constructs an empty Map value.
func NewMap() Value {
	m := make([]Entry, 0)
	return Value{kind: KindMap, m: &m}
}

// Kind reports the Value's tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the Bool payload, or a TypeMismatchError.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeMismatchError{Want: KindBool, Got: v.kind}
	}
	return v.b, nil
}

// AsInt returns the Int payload, or a TypeMismatchError.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, &TypeMismatchError{Want: KindInt, Got: v.kind}
	}
	return v.i, nil
}

// AsFloat returns the Float payload, or a TypeMismatchError. Per spec.md
// §4.5, an Int is also accepted here since "Float accepts JSON number".
func (v Value) AsFloat() (float64, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		return float64(v.i), nil
	default:
		return 0, &TypeMismatchError{Want: KindFloat, Got: v.kind}
	}
}

// AsString returns the String payload, or a TypeMismatchError.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", &TypeMismatchError{Want: KindString, Got: v.kind}
	}
	return v.s, nil
}

// AsEnum returns the Enum identifier, or a TypeMismatchError.
func (v Value) AsEnum() (string, error) {
	if v.kind != KindEnum {
		return "", &TypeMismatchError{Want: KindEnum, Got: v.kind}
	}
	return v.s, nil
}

// AsID returns the ID's decoded bytes, or a TypeMismatchError.
func (v Value) AsID() ([]byte, error) {
	if v.kind != KindID {
		return nil, &TypeMismatchError{Want: KindID, Got: v.kind}
	}
	return v.d, nil
}

// AsList returns the List's elements in order, or a TypeMismatchError.
func (v Value) AsList() ([]Value, error) {
	if v.kind != KindList {
		return nil, &TypeMismatchError{Want: KindList, Got: v.kind}
	}
	return *v.list, nil
}

// Append appends an element to a List value in place. Panics if v is not a
// List — constructing with the wrong tag is a programmer error, not a data
// error (spec.md §4.1: "Constructing with a specific tag is infallible").
func (v Value) Append(elem Value) {
	if v.kind != KindList {
		panic(&TypeMismatchError{Want: KindList, Got: v.kind})
	}
	*v.list = append(*v.list, elem)
}

// AsMap returns the Map's entries in insertion order, or a
// TypeMismatchError.
func (v Value) AsMap() ([]Entry, error) {
	if v.kind != KindMap {
		return nil, &TypeMismatchError{Want: KindMap, Got: v.kind}
	}
	return *v.m, nil
}

// Set appends a (key, val) entry to a Map value in place. Per spec.md §3,
// duplicate keys are permitted: Set never overwrites an existing entry, it
// always appends, preserving every write for iteration while Find resolves
// duplicates last-write-wins.
func (v Value) Set(key string, val Value) {
	if v.kind != KindMap {
		panic(&TypeMismatchError{Want: KindMap, Got: v.kind})
	}
	*v.m = append(*v.m, Entry{Key: key, Value: val})
}

// Find looks up key in a Map value, returning the last-written entry for
// that key (spec.md §3: "last write wins on lookup but all are preserved on
// iteration") and whether it was present.
func (v Value) Find(key string) (Value, bool) {
	if v.kind != KindMap {
		return Null(), false
	}
	for i := len(*v.m) - 1; i >= 0; i-- {
		if (*v.m)[i].Key == key {
			return (*v.m)[i].Value, true
		}
	}
	return Null(), false
}

// Release drains and returns a Map's entries, leaving the Map empty
// (spec.md §4.1: "Map supports ... destructive release of its entries").
func (v Value) Release() []Entry {
	if v.kind != KindMap {
		panic(&TypeMismatchError{Want: KindMap, Got: v.kind})
	}
	out := *v.m
	empty := make([]Entry, 0)
	*v.m = empty
	return out
}

// Clone produces a deep copy of v (spec.md §3: "Cloning is deep"). Scalars
// are copied by value; List and Map are recursively copied element-wise so
// that mutating the clone never affects the original (see SPEC_FULL.md §3's
// duplicate-alias motivation for requiring this).
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		elems := *v.list
		out := make([]Value, len(elems))
		for i, e := range elems {
			out[i] = e.Clone()
		}
		return Value{kind: KindList, list: &out}
	case KindMap:
		entries := *v.m
		out := make([]Entry, len(entries))
		for i, e := range entries {
			out[i] = Entry{Key: e.Key, Value: e.Value.Clone()}
		}
		return Value{kind: KindMap, m: &out}
	case KindID:
		cp := make([]byte, len(v.d))
		copy(cp, v.d)
		return Value{kind: KindID, d: cp}
	default:
		return v
	}
}

// Equal reports whether v and other are structurally equal: same Kind and
// payload, with List/Map compared element-wise in order (so two Maps with
// the same entries in different orders are not Equal — order is observable
// per spec.md §3).
func Equal(v, other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString, KindEnum:
		return v.s == other.s
	case KindID:
		if len(v.d) != len(other.d) {
			return false
		}
		for i := range v.d {
			if v.d[i] != other.d[i] {
				return false
			}
		}
		return true
	case KindList:
		a, b := *v.list, *other.list
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case KindMap:
		a, b := *v.m, *other.m
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Key != b[i].Key || !Equal(a[i].Value, b[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
