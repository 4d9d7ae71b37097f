// Directive reading and the @skip/@include priority rule (spec.md §4.4).
//
// Grounded on the teacher's shouldIncludeNode/parseIf (execution/execute.go):
// same two-name, skip-before-include priority, same "if must be Boolean"
// strictness, generalized from the teacher's reflect-typed directive args to
// the value.Value Map ValueVisitor produces.
package gqlcore

import (
	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/value"
)

const (
	directiveSkip    = "skip"
	directiveInclude = "include"
	directiveIfArg   = "if"
)

// getDirectives builds a Map of directive-name -> argument-Map from node's
// Directives child, if any (spec.md §4.4). node itself is the owning Field
// or FragmentSpread/InlineFragment node.
func getDirectives(node ast.Node, variables value.Value) (value.Value, error) {
	directives := value.NewMap()
	directivesNode := ast.Child(node, ast.Directives)
	if directivesNode == nil {
		return directives, nil
	}
	for _, d := range directivesNode.Children() {
		if d.Kind() != ast.DirectiveName {
			continue
		}
		name := d.Content()
		args := value.NewMap()
		if argsNode := ast.Child(d, ast.Arguments); argsNode != nil {
			m, err := evalArguments(argsNode, variables)
			if err != nil {
				return value.Value{}, err
			}
			args = m
		}
		directives.Set(name, args)
	}
	return directives, nil
}

// shouldSkip applies the §4.4 priority table to a directive Map: skip is
// consulted first and, if it commands exclusion, include is never
// evaluated.
func shouldSkip(directives value.Value) (bool, error) {
	if args, ok := directives.Find(directiveSkip); ok {
		skip, err := directiveIf(directiveSkip, args)
		if err != nil {
			return false, err
		}
		if skip {
			return true, nil
		}
	}
	if args, ok := directives.Find(directiveInclude); ok {
		include, err := directiveIf(directiveInclude, args)
		if err != nil {
			return false, err
		}
		return !include, nil
	}
	return false, nil
}

// directiveIf extracts and validates the `if: Boolean!` argument a
// skip/include directive requires.
func directiveIf(directiveName string, args value.Value) (bool, error) {
	v, ok := args.Find(directiveIfArg)
	if !ok {
		return false, errors.New("Missing argument to directive: %s name: %s", directiveName, directiveIfArg)
	}
	b, err := v.AsBool()
	if err != nil {
		return false, errors.New("Invalid arguments to directive: %s name: %s", directiveName, directiveIfArg)
	}
	return b, nil
}
