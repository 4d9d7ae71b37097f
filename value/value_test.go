package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// valueComparer teaches go-cmp how to compare two Values: by tag and
// recursive structural equality (the same rule Equal implements), not by
// diffing the unexported List/Map backing-pointer fields directly.
var valueComparer = cmp.Comparer(func(a, b Value) bool {
	return Equal(a, b)
})

func TestScalarConstructorsAndAccessors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"int", Int(42), KindInt},
		{"float", Float(3.5), KindFloat},
		{"string", String("hi"), KindString},
		{"enum", Enum("RED"), KindEnum},
		{"id", ID([]byte{1, 2, 3}), KindID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Kind())
		})
	}
}

func TestTypeMismatch(t *testing.T) {
	_, err := String("x").AsInt()
	require.Error(t, err)
	var tme *TypeMismatchError
	require.ErrorAs(t, err, &tme)
	assert.Equal(t, KindInt, tme.Want)
	assert.Equal(t, KindString, tme.Got)
}

func TestFloatAcceptsInt(t *testing.T) {
	f, err := Int(7).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 7.0, f)
}

func TestMapPreservesInsertionOrderAndDuplicates(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))
	m.Set("a", Int(3))

	entries, err := m.AsMap()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "b", entries[1].Key)
	assert.Equal(t, "a", entries[2].Key)

	v, ok := m.Find("a")
	require.True(t, ok)
	i, _ := v.AsInt()
	assert.Equal(t, int64(3), i, "Find must resolve duplicates last-write-wins")
}

func TestMapFindMissing(t *testing.T) {
	m := NewMap()
	_, ok := m.Find("missing")
	assert.False(t, ok)
}

func TestMapRelease(t *testing.T) {
	m := NewMap()
	m.Set("a", Int(1))
	m.Set("b", Int(2))

	drained := m.Release()
	require.Len(t, drained, 2)

	entries, err := m.AsMap()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListAppendPreservesOrder(t *testing.T) {
	l := NewList(0)
	l.Append(Int(1))
	l.Append(Int(2))
	l.Append(Int(3))

	elems, err := l.AsList()
	require.NoError(t, err)
	require.Len(t, elems, 3)
	for i, e := range elems {
		v, _ := e.AsInt()
		assert.Equal(t, int64(i+1), v)
	}
}

func TestCloneIsDeepForListAndMap(t *testing.T) {
	inner := NewMap()
	inner.Set("x", Int(1))

	original := NewList(1)
	original.Append(inner)

	clone := original.Clone()
	cloneElems, _ := clone.AsList()
	cloneElems[0].Set("y", Int(2))

	originalElems, _ := original.AsList()
	_, hasY := originalElems[0].Find("y")
	assert.False(t, hasY, "mutating the clone must not affect the original")
}

func TestCloneOfScalarIsCheap(t *testing.T) {
	v := String("hello")
	c := v.Clone()
	assert.True(t, Equal(v, c))
}

func TestEqualOrderSensitiveForMap(t *testing.T) {
	a := NewMap()
	a.Set("x", Int(1))
	a.Set("y", Int(2))

	b := NewMap()
	b.Set("y", Int(2))
	b.Set("x", Int(1))

	assert.False(t, Equal(a, b), "maps with same entries in different order must not be Equal")
}

func TestEqualList(t *testing.T) {
	a := NewList(2)
	a.Append(Int(1))
	a.Append(Int(2))

	b := NewList(2)
	b.Append(Int(1))
	b.Append(Int(2))

	assert.True(t, Equal(a, b))
}

// TestCmpDiffOnValueTrees exercises go-cmp against trees that embed Value
// alongside ordinary Go fields — the shape a caller comparing two API
// responses actually has, not just two bare Values.
func TestCmpDiffOnValueTrees(t *testing.T) {
	type response struct {
		Operation string
		Data      Value
	}

	buildData := func() Value {
		friends := NewList(2)
		friends.Append(String("Han Solo"))
		friends.Append(String("Leia Organa"))

		m := NewMap()
		m.Set("name", String("Luke Skywalker"))
		m.Set("friends", friends)
		return m
	}

	want := response{Operation: "hero", Data: buildData()}
	got := response{Operation: "hero", Data: buildData()}

	if diff := cmp.Diff(want, got, valueComparer); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}

	got.Data.Set("friends", String("C-3PO"))
	if diff := cmp.Diff(want, got, valueComparer); diff == "" {
		t.Errorf("expected cmp.Diff to report the appended duplicate key, got none")
	}
}
