// Package ast defines the opaque AST contract the execution engine reads.
// The engine never constructs or mutates a Node; it is handed a tree built
// by a grammar parser (out of scope per spec.md §1) and only walks it.
//
// This is a direct generalization of the teacher's Document/Definition
// interface pair (github.com/shyptr/graphql/ast, Document.GetKind/Location)
// from "a handful of top-level definition kinds" to the full closed set of
// node kinds spec.md §6 lists, since the core must also read field,
// argument, directive and value nodes, not just operation/fragment
// definitions.
package ast

// Kind identifies the shape of a Node. The set is closed: spec.md §6 lists
// every kind the core reads, and the engine treats an unrecognized Kind
// as a programmer error in the caller-supplied AST, not a data error.
type Kind string

const (
	OperationDefinition Kind = "operation_definition"
	OperationType       Kind = "operation_type" // content is "query"|"mutation"|"subscription"
	OperationName       Kind = "operation_name"
	Variable            Kind = "variable"
	VariableName        Kind = "variable_name" // content includes the leading '$'
	DefaultValue        Kind = "default_value"
	FragmentDefinition  Kind = "fragment_definition"
	FragmentSpread      Kind = "fragment_spread"
	InlineFragment      Kind = "inline_fragment"
	TypeCondition       Kind = "type_condition"
	SelectionSet        Kind = "selection_set"
	Field               Kind = "field"
	FieldName           Kind = "field_name"
	AliasName           Kind = "alias_name"
	Arguments           Kind = "arguments"
	Directives          Kind = "directives"
	DirectiveName       Kind = "directive_name"
	VariableValue       Kind = "variable_value"
	IntegerValue        Kind = "integer_value"
	FloatValue          Kind = "float_value"
	StringValue         Kind = "string_value" // carries the unescaped form
	TrueKeyword         Kind = "true_keyword"
	FalseKeyword        Kind = "false_keyword"
	NullKeyword         Kind = "null_keyword"
	EnumValue           Kind = "enum_value"
	ListValue           Kind = "list_value"
	ObjectValue         Kind = "object_value"
)

// Position is a source location, reported in the "line: L column: C"
// fragments of error messages spec.md §7 specifies.
type Position struct {
	Line   int
	Column int
}

// Node is one node of the request document's abstract syntax tree. The
// engine's lifetime requirement (spec.md §3: "AST lifetime must exceed any
// request that references it") means a Node tree handed to Object.Resolve,
// Dispatcher.Subscribe, or used inside a stored Subscription Registration
// must stay alive and unmutated for as long as the caller holds onto the
// corresponding response Future or subscription key.
type Node interface {
	// Kind reports this node's tag.
	Kind() Kind

	// Content is the node's raw source text. For StringValue nodes this is
	// the pre-unescaped form (spec.md §3).
	Content() string

	// Children returns this node's ordered child nodes. Leaf nodes (e.g.
	// IntegerValue) return nil.
	Children() []Node

	// Position reports where this node begins in the source document.
	Position() Position

	// Name reports the identifier attached to a named (name, value) pair —
	// an argument under Arguments, a field under ObjectValue, a directive's
	// argument — so that one value-kinded node (IntegerValue, ListValue, a
	// Variable reference, ...) can double as both the name and the value
	// without a dedicated node kind for "argument" or "object field". Nodes
	// with no attached name (e.g. an element of a ListValue) return "".
	Name() string
}

// Children filters a node's children down to those of the given kind, used
// throughout the engine instead of re-deriving the filter inline (e.g.
// "children of kind Field") — a direct generalization of how the teacher's
// parseSelectionSet switches on selection kind (execution/selection.go).
func Children(n Node, kind Kind) []Node {
	if n == nil {
		return nil
	}
	var out []Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first child of the given kind, or nil.
func Child(n Node, kind Kind) Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}
