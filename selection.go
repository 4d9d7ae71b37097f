// Selection Evaluator (C5): walks one selection-set child, expands
// fragments, applies @skip/@include, and dispatches each field to its
// resolver (spec.md §4.3).
//
// Grounded on the teacher's parseSelectionSet (execution/selection.go) for
// the Field/FragmentSpread/InlineFragment dispatch shape, and its
// shouldIncludeNode (execution/execute.go) for directive filtering. Diverges
// from the teacher's Flatten, which merges same-alias selections into one
// entry: spec.md §3's Map invariant requires duplicate aliases be preserved,
// not merged, so queuedField entries are appended, never overwritten (see
// DESIGN.md's Open Question decision).
package gqlcore

import (
	"context"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/future"
	"github.com/shyptr/gqlcore/value"
)

type queuedField struct {
	alias string
	fut   *future.Future
}

// evaluator is a Selection Evaluator bound to one Object resolution.
type evaluator struct {
	ctx       context.Context
	state     interface{}
	object    *Object
	fragments FragmentMap
	variables value.Value
	queue     []queuedField
}

func newEvaluator(ctx context.Context, state interface{}, object *Object, fragments FragmentMap, variables value.Value) *evaluator {
	return &evaluator{ctx: ctx, state: state, object: object, fragments: fragments, variables: variables}
}

// visit dispatches on node's kind (spec.md §4.3).
func (e *evaluator) visit(node ast.Node) error {
	switch node.Kind() {
	case ast.Field:
		return e.visitField(node)
	case ast.FragmentSpread:
		return e.visitFragmentSpread(node)
	case ast.InlineFragment:
		return e.visitInlineFragment(node)
	default:
		return nil
	}
}

func (e *evaluator) visitField(node ast.Node) error {
	fieldNameNode := ast.Child(node, ast.FieldName)
	if fieldNameNode == nil {
		return errors.New("malformed field node: missing field_name")
	}
	fieldName := fieldNameNode.Content()

	alias := fieldName
	if aliasNode := ast.Child(node, ast.AliasName); aliasNode != nil && aliasNode.Content() != "" {
		alias = aliasNode.Content()
	}

	resolver, ok := e.object.Resolvers[fieldName]
	if !ok {
		pos := node.Position()
		return errors.New("Unknown field name: %s line: %d column: %d", fieldName, pos.Line, pos.Column)
	}

	directives, err := getDirectives(node, e.variables)
	if err != nil {
		return err
	}
	skip, err := shouldSkip(directives)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	arguments := value.NewMap()
	if argsNode := ast.Child(node, ast.Arguments); argsNode != nil {
		arguments, err = evalArguments(argsNode, e.variables)
		if err != nil {
			return err
		}
	}

	selection := ast.Child(node, ast.SelectionSet)
	params := ResolverParams{
		State:      e.state,
		Arguments:  arguments,
		Directives: directives,
		Selection:  selection,
		Fragments:  e.fragments,
		Variables:  e.variables,
	}

	fut, err := safeCall(fieldName, func() (*future.Future, error) {
		return resolver(e.ctx, params), nil
	})
	if err != nil {
		return err
	}

	e.queue = append(e.queue, queuedField{alias: alias, fut: fut})
	return nil
}

func (e *evaluator) visitFragmentSpread(node ast.Node) error {
	name := node.Content()
	frag, ok := e.fragments[name]
	if !ok {
		pos := node.Position()
		return errors.New("Unknown fragment name: %s line: %d column: %d", name, pos.Line, pos.Column)
	}

	directives, err := getDirectives(node, e.variables)
	if err != nil {
		return err
	}
	skip, err := shouldSkip(directives)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	if frag.TypeCondition != "" && !e.object.Names.Has(frag.TypeCondition) {
		return nil
	}

	for _, child := range frag.SelectionSet.Children() {
		if err := e.visit(child); err != nil {
			return err
		}
	}
	return nil
}

func (e *evaluator) visitInlineFragment(node ast.Node) error {
	directives, err := getDirectives(node, e.variables)
	if err != nil {
		return err
	}
	skip, err := shouldSkip(directives)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	if typeCond := ast.Child(node, ast.TypeCondition); typeCond != nil && typeCond.Content() != "" {
		if !e.object.Names.Has(typeCond.Content()) {
			return nil
		}
	}

	selection := ast.Child(node, ast.SelectionSet)
	if selection == nil {
		return nil
	}
	for _, child := range selection.Children() {
		if err := e.visit(child); err != nil {
			return err
		}
	}
	return nil
}

// getValues drains the queue in order into a deferred Map future, awaiting
// each queued field's Future in selection order (spec.md §4.3, §5: "no
// reordering of result keys"). Each entry is cloned before insertion
// (SPEC_FULL.md §3): a resolver is free to hand back the same *Object, or
// the same cached List/Map-backed Value, for more than one field in a
// selection set (object.go documents Objects as shared), so without a
// clone two aliased entries could end up holding the same backing slice
// and a later in-place mutation on one would be observed through the
// other.
func (e *evaluator) getValues() *future.Future {
	queue := e.queue
	return future.New(func() (interface{}, error) {
		result := value.NewMap()
		for _, qf := range queue {
			v, err := qf.fut.Get()
			if err != nil {
				return value.Value{}, err
			}
			result.Set(qf.alias, v.(value.Value).Clone())
		}
		return result, nil
	})
}
