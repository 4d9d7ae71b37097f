// Package gqlcore is the root package of the execution engine: Object,
// the Selection Evaluator, directive handling, the argument/result
// adapters, the operation dispatcher, and the subscription registry.
//
// The teacher (github.com/shyptr/graphql) keeps this same division — a
// root package holding the schema glue, with ast/errors split into
// satellite packages — but builds its Object as a reflect-typed table
// (internal.Object, internal.Field) produced by a schema builder walking
// Go struct tags. This package's Object instead takes its TypeNames and
// ResolverMap directly from the caller, since schema generation is out of
// scope (spec.md §1) and the core never reflects on a resolver's Go type.
package gqlcore

import (
	"context"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/future"
	"github.com/shyptr/gqlcore/value"
)

// TypeNames is the set of type and interface/union names an Object
// satisfies (spec.md §3: "the object's own type plus every interface/union
// it satisfies"). Membership, not order, is observable, so it is backed by
// a map rather than a slice.
type TypeNames map[string]struct{}

// NewTypeNames builds a TypeNames set from the given names.
func NewTypeNames(names ...string) TypeNames {
	t := make(TypeNames, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Has reports whether name is a member of t.
func (t TypeNames) Has(name string) bool {
	_, ok := t[name]
	return ok
}

// Resolver produces the value of one field. params.Selection is non-nil
// only when the field has a sub-selection set; a leaf scalar field's
// resolver ignores it. Resolvers run lazily: the returned Future's
// computation does not start until Get is called (spec.md §5, §9
// "Deferred evaluation").
type Resolver func(ctx context.Context, params ResolverParams) *future.Future

// ResolverMap maps a GraphQL field name, exactly as it appears on the
// object type, to the Resolver that produces it (spec.md §3: "lookup is
// exact").
type ResolverMap map[string]Resolver

// ResolverParams groups the inputs visible to a resolver (spec.md §3).
type ResolverParams struct {
	// State is the opaque user-supplied per-resolution handle. The engine
	// never inspects it; synchronization, if any, is the caller's
	// responsibility (spec.md §5).
	State interface{}

	// Arguments is the field's coerced argument Map.
	Arguments value.Value

	// Directives is the field's directive Map (directive name -> argument
	// Map), already parsed by the DirectiveReader.
	Directives value.Value

	// Selection is the field's sub-selection-set AST node, or nil for a
	// leaf field.
	Selection ast.Node

	// Fragments is the request's FragmentMap, borrowed for the life of the
	// resolver call.
	Fragments FragmentMap

	// Variables is the request's coerced variable Map.
	Variables value.Value
}

// Hook is an optional lifecycle callback run around an Object's selection
// set evaluation (spec.md §4.2 steps 1 and 3). This is SPEC_FULL.md §3's
// resolution of the "overridable, default no-op" Open Question: Go has no
// virtual dispatch to override, so the override point is a plain function
// value instead.
type Hook func(ctx context.Context, state interface{})

// Object is a polymorphic node: a TypeNames set plus a ResolverMap,
// resolved against one selection set at a time (spec.md §3, §4.2).
// Multiple fields may share the same *Object (spec.md §3: "shared
// ownership"); Object itself holds no per-request state.
type Object struct {
	Names     TypeNames
	Resolvers ResolverMap

	// BeginSelectionSet and EndSelectionSet default to no-ops.
	BeginSelectionSet Hook
	EndSelectionSet   Hook
}

// NewObject constructs an Object from a TypeNames set and a ResolverMap.
func NewObject(names TypeNames, resolvers ResolverMap) *Object {
	return &Object{Names: names, Resolvers: resolvers}
}

// Resolve walks selectionSet against o, returning a Future of the result
// Map (spec.md §4.2). The result is always a Map: a missing/null object is
// represented one layer up, by the NULLABLE leg of the Result Adapter
// (§4.5), never by Resolve itself returning Null.
func (o *Object) Resolve(ctx context.Context, state interface{}, selectionSet ast.Node, fragments FragmentMap, variables value.Value) *future.Future {
	return future.New(func() (interface{}, error) {
		if o.BeginSelectionSet != nil {
			o.BeginSelectionSet(ctx, state)
		}

		ev := newEvaluator(ctx, state, o, fragments, variables)
		if selectionSet != nil {
			for _, child := range selectionSet.Children() {
				if err := ev.visit(child); err != nil {
					if o.EndSelectionSet != nil {
						o.EndSelectionSet(ctx, state)
					}
					return value.Value{}, err
				}
			}
		}

		result, err := ev.getValues().Get()

		if o.EndSelectionSet != nil {
			o.EndSelectionSet(ctx, state)
		}
		if err != nil {
			return value.Value{}, err
		}
		return result, nil
	})
}

// safeCall runs fn, converting a panic into a *errors.SchemaError instead
// of letting it cross the resolver boundary, mirroring the teacher's
// safeExecuteResolver (execution/execute.go).
func safeCall(name string, fn func() (*future.Future, error)) (fut *future.Future, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("panic while resolving field: %s message: %v", name, r)
			fut = nil
		}
	}()
	return fn()
}
