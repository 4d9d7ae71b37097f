// ValueVisitor (C2): translates AST value nodes into Response Values,
// resolving `$variable` references against the request's coerced variable
// Map.
//
// Grounded on the teacher's internal.ValueToJson, referenced throughout
// execution/selection.go's argsToJson: same responsibility (AST value node
// -> native value, with variables substituted), retargeted to produce
// value.Value instead of interface{}.
package gqlcore

import (
	"strconv"
	"strings"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/value"
)

// evalValueNode translates one AST value node (IntegerValue, FloatValue,
// StringValue, TrueKeyword, FalseKeyword, NullKeyword, EnumValue,
// ListValue, ObjectValue, or a Variable reference) into a value.Value.
func evalValueNode(node ast.Node, variables value.Value) (value.Value, error) {
	switch node.Kind() {
	case ast.Variable:
		return evalVariableReference(node, variables)
	case ast.IntegerValue:
		i, err := strconv.ParseInt(node.Content(), 10, 64)
		if err != nil {
			return value.Value{}, errors.New("not an integer: %s", node.Content())
		}
		return value.Int(i), nil
	case ast.FloatValue:
		f, err := strconv.ParseFloat(node.Content(), 64)
		if err != nil {
			return value.Value{}, errors.New("not a float: %s", node.Content())
		}
		return value.Float(f), nil
	case ast.StringValue:
		return value.String(node.Content()), nil
	case ast.TrueKeyword:
		return value.Bool(true), nil
	case ast.FalseKeyword:
		return value.Bool(false), nil
	case ast.NullKeyword:
		return value.Null(), nil
	case ast.EnumValue:
		return value.Enum(node.Content()), nil
	case ast.ListValue:
		elems := node.Children()
		out := value.NewList(len(elems))
		for _, e := range elems {
			ev, err := evalValueNode(e, variables)
			if err != nil {
				return value.Value{}, err
			}
			out.Append(ev)
		}
		return out, nil
	case ast.ObjectValue:
		out := value.NewMap()
		for _, field := range node.Children() {
			fv, err := evalValueNode(field, variables)
			if err != nil {
				return value.Value{}, err
			}
			out.Set(field.Name(), fv)
		}
		return out, nil
	default:
		return value.Value{}, errors.New("not a value node: kind %s", node.Kind())
	}
}

// evalVariableReference resolves a Variable node's VariableName child
// against the request's coerced variable Map, failing with
// UnknownVariable if the name has no entry there.
func evalVariableReference(node ast.Node, variables value.Value) (value.Value, error) {
	nameNode := ast.Child(node, ast.VariableName)
	if nameNode == nil {
		return value.Value{}, errors.New("malformed variable reference")
	}
	name := strings.TrimPrefix(nameNode.Content(), "$")
	v, ok := variables.Find(name)
	if !ok {
		return value.Value{}, errors.New("Unknown variable name: %s", name)
	}
	return v, nil
}

// evalArguments translates an Arguments node's children into an ordered
// Map of argument name -> Response Value. Each child node doubles as both
// its own value (via evalValueNode) and, via Name(), the argument name it
// is bound to (see ast.Node.Name's doc comment).
func evalArguments(argumentsNode ast.Node, variables value.Value) (value.Value, error) {
	out := value.NewMap()
	for _, arg := range argumentsNode.Children() {
		v, err := evalValueNode(arg, variables)
		if err != nil {
			return value.Value{}, err
		}
		out.Set(arg.Name(), v)
	}
	return out, nil
}
