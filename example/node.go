package main

import "github.com/shyptr/gqlcore/ast"

// node is a minimal ast.Node implementation for hand-building a request
// document. There is no grammar parser in this repo (out of scope); a real
// caller would get documents like these out of one.
type node struct {
	kind     ast.Kind
	content  string
	name     string
	children []ast.Node
}

func (n *node) Kind() ast.Kind          { return n.kind }
func (n *node) Content() string        { return n.content }
func (n *node) Children() []ast.Node    { return n.children }
func (n *node) Position() ast.Position  { return ast.Position{} }
func (n *node) Name() string            { return n.name }

const documentKind ast.Kind = "document"

func document(operations ...ast.Node) *node {
	return &node{kind: documentKind, children: operations}
}

func query(name string, selection *node) *node {
	var children []ast.Node
	children = append(children, &node{kind: ast.OperationType, content: "query"})
	if name != "" {
		children = append(children, &node{kind: ast.OperationName, content: name})
	}
	children = append(children, selection)
	return &node{kind: ast.OperationDefinition, children: children}
}

func selectionSet(fields ...*node) *node {
	children := make([]ast.Node, len(fields))
	for i, f := range fields {
		children[i] = f
	}
	return &node{kind: ast.SelectionSet, children: children}
}

func field(name string, sel *node) *node {
	children := []ast.Node{&node{kind: ast.FieldName, content: name}}
	if sel != nil {
		children = append(children, sel)
	}
	return &node{kind: ast.Field, children: children}
}
