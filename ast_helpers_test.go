package gqlcore

import "github.com/shyptr/gqlcore/ast"

// fakeNode is a minimal ast.Node used to build request documents in tests
// without a real grammar parser (out of scope per spec.md §1).
type fakeNode struct {
	kind     ast.Kind
	content  string
	name     string
	pos      ast.Position
	children []ast.Node
}

func (n *fakeNode) Kind() ast.Kind        { return n.kind }
func (n *fakeNode) Content() string       { return n.content }
func (n *fakeNode) Children() []ast.Node  { return n.children }
func (n *fakeNode) Position() ast.Position { return n.pos }
func (n *fakeNode) Name() string          { return n.name }

const documentKind ast.Kind = "document"

func doc(defs ...ast.Node) *fakeNode {
	return &fakeNode{kind: documentKind, children: defs}
}

func selSet(fields ...ast.Node) *fakeNode {
	return &fakeNode{kind: ast.SelectionSet, children: fields}
}

func fieldNode(name, alias string, args, directives, sel ast.Node) *fakeNode {
	children := []ast.Node{&fakeNode{kind: ast.FieldName, content: name}}
	if alias != "" {
		children = append(children, &fakeNode{kind: ast.AliasName, content: alias})
	}
	if args != nil {
		children = append(children, args)
	}
	if directives != nil {
		children = append(children, directives)
	}
	if sel != nil {
		children = append(children, sel)
	}
	return &fakeNode{kind: ast.Field, children: children}
}

func fragmentSpread(name string, directives ast.Node) *fakeNode {
	var children []ast.Node
	if directives != nil {
		children = append(children, directives)
	}
	return &fakeNode{kind: ast.FragmentSpread, content: name, children: children}
}

func inlineFragment(typeCondition string, directives, sel ast.Node) *fakeNode {
	var children []ast.Node
	if typeCondition != "" {
		children = append(children, &fakeNode{kind: ast.TypeCondition, content: typeCondition})
	}
	if directives != nil {
		children = append(children, directives)
	}
	if sel != nil {
		children = append(children, sel)
	}
	return &fakeNode{kind: ast.InlineFragment, children: children}
}

func fragmentDef(name, typeCondition string, sel ast.Node) *fakeNode {
	return &fakeNode{
		kind:    ast.FragmentDefinition,
		content: name,
		children: []ast.Node{
			&fakeNode{kind: ast.TypeCondition, content: typeCondition},
			sel,
		},
	}
}

func arguments(pairs ...ast.Node) *fakeNode {
	return &fakeNode{kind: ast.Arguments, children: pairs}
}

func stringArg(name, val string) *fakeNode {
	return &fakeNode{kind: ast.StringValue, content: val, name: name}
}

func boolArg(name string, val bool) *fakeNode {
	k := ast.FalseKeyword
	if val {
		k = ast.TrueKeyword
	}
	return &fakeNode{kind: k, name: name}
}

func variableRefArg(name, varName string) *fakeNode {
	return &fakeNode{
		kind: ast.Variable,
		name: name,
		children: []ast.Node{
			&fakeNode{kind: ast.VariableName, content: "$" + varName},
		},
	}
}

func directivesNode(entries ...ast.Node) *fakeNode {
	return &fakeNode{kind: ast.Directives, children: entries}
}

func directiveApp(name string, args ast.Node) *fakeNode {
	var children []ast.Node
	if args != nil {
		children = append(children, args)
	}
	return &fakeNode{kind: ast.DirectiveName, content: name, children: children}
}

func operation(kind, name string, sel ast.Node, vars ...ast.Node) *fakeNode {
	var children []ast.Node
	if kind != "" {
		children = append(children, &fakeNode{kind: ast.OperationType, content: kind})
	}
	if name != "" {
		children = append(children, &fakeNode{kind: ast.OperationName, content: name})
	}
	children = append(children, vars...)
	children = append(children, sel)
	return &fakeNode{kind: ast.OperationDefinition, children: children}
}

func variableDecl(name string, def ast.Node) *fakeNode {
	children := []ast.Node{&fakeNode{kind: ast.VariableName, content: "$" + name}}
	if def != nil {
		children = append(children, &fakeNode{kind: ast.DefaultValue, children: []ast.Node{def}})
	}
	return &fakeNode{kind: ast.Variable, children: children}
}
