package gqlcore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/value"
)

// Directive-skip exclusivity (spec.md §8 property 2).
func TestDirectiveSkipIncludeExclusivity(t *testing.T) {
	tests := []struct {
		name     string
		skip     *bool
		include  *bool
		included bool
	}{
		{"skip true excludes", ptr(true), nil, false},
		{"include false excludes", nil, ptr(false), false},
		{"skip false alone includes", ptr(false), nil, true},
		{"include true alone includes", nil, ptr(true), true},
		{"skip true and include true excludes (skip wins)", ptr(true), ptr(true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []ast.Node
			if tt.skip != nil {
				entries = append(entries, directiveApp("skip", arguments(boolArg("if", *tt.skip))))
			}
			if tt.include != nil {
				entries = append(entries, directiveApp("include", arguments(boolArg("if", *tt.include))))
			}

			obj := NewObject(NewTypeNames("Query"), ResolverMap{
				"x": scalarResolver(value.Int(1)),
			})
			sel := selSet(fieldNode("x", "", nil, directivesNode(entries...), nil))

			result, err := obj.Resolve(context.Background(), nil, sel, FragmentMap{}, value.NewMap()).Get()
			require.NoError(t, err)

			entriesOut, _ := result.(value.Value).AsMap()
			if tt.included {
				require.Len(t, entriesOut, 1)
			} else {
				require.Empty(t, entriesOut)
			}
		})
	}
}

func TestMissingDirectiveArgument(t *testing.T) {
	obj := NewObject(NewTypeNames("Query"), ResolverMap{"x": scalarResolver(value.Int(1))})
	sel := selSet(fieldNode("x", "", nil, directivesNode(directiveApp("skip", arguments())), nil))

	_, err := obj.Resolve(context.Background(), nil, sel, FragmentMap{}, value.NewMap()).Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing argument to directive")
}

func TestInvalidDirectiveArgumentType(t *testing.T) {
	obj := NewObject(NewTypeNames("Query"), ResolverMap{"x": scalarResolver(value.Int(1))})
	sel := selSet(fieldNode("x", "", nil, directivesNode(directiveApp("skip", arguments(stringArg("if", "not-a-bool")))), nil))

	_, err := obj.Resolve(context.Background(), nil, sel, FragmentMap{}, value.NewMap()).Get()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid arguments to directive")
}

func ptr(b bool) *bool { return &b }
