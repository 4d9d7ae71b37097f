// Package variable implements the declared-vs-supplied-vs-default
// resolution order operation variables go through before a request's
// coerced variable Map is built (spec.md §4.7 step 3).
//
// Extracted from the teacher's utils.TypeFromAst-style AST-to-native
// helpers (github.com/shyptr/graphql/utils), which walk a variable
// definition's AST node the same way: name, then declared default,
// generalized here from the teacher's reflect.Type target to a plain
// Response Value.
package variable

import (
	"strings"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/value"
)

// EvalDefault evaluates a variable declaration's default_value child into
// a Response Value. The full value grammar (lists, objects, enums, nested
// references) belongs to the root package's ValueVisitor; this package
// only owns the resolution order below, so the caller supplies the
// evaluator for whatever one default-value expression it needs evaluated.
type EvalDefault func(node ast.Node) (value.Value, error)

// Coerce resolves every variable declared on operation op against the
// caller-supplied raw variable Map: the caller's value if present, else
// the declared default, else Null.
func Coerce(op ast.Node, raw value.Value, evalDefault EvalDefault) (value.Value, error) {
	coerced := value.NewMap()
	for _, decl := range ast.Children(op, ast.Variable) {
		nameNode := ast.Child(decl, ast.VariableName)
		if nameNode == nil {
			continue
		}
		// VariableName content includes the leading '$' (spec.md §6); the
		// caller's raw variable Map and the coerced Map this builds are
		// both keyed on the bare name, matching how a request's "variables"
		// JSON object is keyed on the wire.
		name := strings.TrimPrefix(nameNode.Content(), "$")

		if supplied, ok := raw.Find(name); ok {
			coerced.Set(name, supplied)
			continue
		}

		if def := ast.Child(decl, ast.DefaultValue); def != nil && len(def.Children()) > 0 {
			dv, err := evalDefault(def.Children()[0])
			if err != nil {
				return value.Value{}, err
			}
			coerced.Set(name, dv)
			continue
		}

		coerced.Set(name, value.Null())
	}
	return coerced, nil
}
