// Request / Operation Dispatcher (C6): collects fragment definitions,
// selects the named operation, coerces variables, and invokes the root
// Object (spec.md §4.7).
//
// Grounded on the teacher's ApplySelectionSet (execution/selection.go) for
// operation selection by name/default and its duplicate/missing-operation
// error shapes, and its variable-default-value loop for variable coercion.
package gqlcore

import (
	"context"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/future"
	"github.com/shyptr/gqlcore/internal/variable"
	"github.com/shyptr/gqlcore/value"
)

const (
	opKindQuery        = "query"
	opKindMutation     = "mutation"
	opKindSubscription = "subscription"
)

// Fragment is a (type-condition-name, selection-set AST reference) pair,
// borrowed from the request AST (spec.md §3).
type Fragment struct {
	TypeCondition string
	SelectionSet  ast.Node
}

// FragmentMap maps a fragment name, unique within one request document, to
// its Fragment.
type FragmentMap map[string]Fragment

// Dispatcher routes a parsed request document to the right root Object by
// operation kind (spec.md §4.7).
type Dispatcher struct {
	// OperationTypes maps an operation kind string ("query", "mutation",
	// "subscription") to the root Object handling it.
	OperationTypes map[string]*Object
}

// NewDispatcher constructs a Dispatcher over the given operation-type map.
func NewDispatcher(operationTypes map[string]*Object) *Dispatcher {
	return &Dispatcher{OperationTypes: operationTypes}
}

// Resolve executes a query or mutation operation from root against
// variables, returning a Future of the wire-shaped response Map
// `{"data": ..., "errors": [...]}` (spec.md §4.7, §6).
func (d *Dispatcher) Resolve(ctx context.Context, state interface{}, root ast.Node, operationName string, variables value.Value) *future.Future {
	return future.New(func() (interface{}, error) {
		data, err := d.resolve(ctx, state, root, operationName, variables)
		return wrapResponse(data, err), nil
	})
}

func wrapResponse(data value.Value, err error) value.Value {
	response := value.NewMap()
	if err != nil {
		response.Set("data", value.Null())
		se := errors.Wrap(err)
		errList := value.NewList(len(se.Messages))
		for _, msg := range se.Messages {
			errEntry := value.NewMap()
			errEntry.Set("message", value.String(msg))
			errList.Append(errEntry)
		}
		response.Set("errors", errList)
		return response
	}
	response.Set("data", data)
	return response
}

func (d *Dispatcher) resolve(ctx context.Context, state interface{}, root ast.Node, operationName string, variables value.Value) (value.Value, error) {
	fragments := collectFragments(root)

	op, err := selectOperation(root, operationName, false)
	if err != nil {
		return value.Value{}, err
	}

	coerced, err := coerceVariables(op, variables)
	if err != nil {
		return value.Value{}, err
	}

	kind := operationKind(op)
	rootObj, ok := d.OperationTypes[kind]
	if !ok {
		return value.Value{}, errors.New("Unknown operation type: %s", kind)
	}

	selectionSet := ast.Child(op, ast.SelectionSet)
	result, err := rootObj.Resolve(ctx, state, selectionSet, fragments, coerced).Get()
	if err != nil {
		return value.Value{}, err
	}
	return result.(value.Value), nil
}

func collectFragments(root ast.Node) FragmentMap {
	fragments := make(FragmentMap)
	for _, def := range ast.Children(root, ast.FragmentDefinition) {
		name := def.Content()
		typeCondition := ""
		if tc := ast.Child(def, ast.TypeCondition); tc != nil {
			typeCondition = tc.Content()
		}
		fragments[name] = Fragment{
			TypeCondition: typeCondition,
			SelectionSet:  ast.Child(def, ast.SelectionSet),
		}
	}
	return fragments
}

// selectOperation picks the operation document root will execute (spec.md
// §4.7 step 2). Query/mutation operations ignore subscription definitions
// entirely; wantSubscription flips that to select only the subscription
// operation, for Subscribe's use.
func selectOperation(root ast.Node, operationName string, wantSubscription bool) (ast.Node, error) {
	var candidates []ast.Node
	for _, def := range ast.Children(root, ast.OperationDefinition) {
		isSubscription := operationKind(def) == opKindSubscription
		if isSubscription != wantSubscription {
			continue
		}
		if operationName != "" {
			nameNode := ast.Child(def, ast.OperationName)
			if nameNode == nil || nameNode.Content() != operationName {
				continue
			}
		}
		candidates = append(candidates, def)
	}

	switch {
	case len(candidates) == 0:
		return nil, errors.New("Missing operation")
	case len(candidates) > 1 && operationName == "":
		return nil, errors.New("No operationName specified with extra operation present")
	case len(candidates) > 1:
		return nil, errors.New("Duplicate operation name: %s", operationName)
	default:
		return candidates[0], nil
	}
}

// operationKind returns op's OperationType child content, defaulting to
// "query" when absent (spec.md §4.7 step 2).
func operationKind(op ast.Node) string {
	if t := ast.Child(op, ast.OperationType); t != nil && t.Content() != "" {
		return t.Content()
	}
	return opKindQuery
}

// coerceVariables resolves op's declared variables against the caller-
// supplied raw variable Map (spec.md §4.7 step 3), delegating the
// resolution order to internal/variable and supplying the literal-value
// evaluator for declared defaults.
func coerceVariables(op ast.Node, raw value.Value) (value.Value, error) {
	return variable.Coerce(op, raw, func(node ast.Node) (value.Value, error) {
		return evalValueNode(node, value.NewMap())
	})
}
