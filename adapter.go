// Argument/Result Adapters (C3): coerce Response Values to/from native
// scalar types through a type-modifier chain (spec.md §4.5).
//
// Grounded on the teacher's validateValue (execution/selection.go) for the
// NonNull/List/Enum chain-walking recursion shape, and executeList/unwrap
// (execution/execute.go) for list element recursion and nil-as-null on the
// result side. The ID-as-base64 pre-validation step is new: the teacher
// never validates IDs (its ID scalar passes through untouched), but it
// already constructs a package-level *validator.Validate singleton
// (schemabuilder/validator.go) that this adapter reuses.
package gqlcore

import (
	"context"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/shyptr/gqlcore/ast"
	"github.com/shyptr/gqlcore/base64"
	"github.com/shyptr/gqlcore/errors"
	"github.com/shyptr/gqlcore/future"
	"github.com/shyptr/gqlcore/value"
)

var idValidator = validator.New()

// Modifier is one link of a type-modifier chain (spec.md §4.5).
type Modifier int

const (
	// None terminates a chain: the next link is a scalar or Object leaf.
	None Modifier = iota
	// Nullable permits the value to be absent/Null at this position.
	Nullable
	// List requires a List, recursing on each element.
	List
)

// Chain is an ordered type-modifier sequence, read left-to-right as
// outer-to-inner wrappers (spec.md §4.5: "[NULLABLE, LIST, NONE] means
// optional list of non-null T").
type Chain []Modifier

// Require reads argument name out of args through chain, expecting a leaf
// scalar of kind want, and fails if the argument is missing or malformed.
func Require(name string, args value.Value, chain Chain, want value.Kind) (value.Value, error) {
	v, present, err := Find(name, args, chain, want)
	if err != nil {
		return value.Value{}, err
	}
	if !present {
		return value.Value{}, errors.New("Invalid argument: %s message: missing required argument", name)
	}
	return v, nil
}

// Find reads argument name out of args through chain without throwing on
// absence, returning (value, present).
func Find(name string, args value.Value, chain Chain, want value.Kind) (value.Value, bool, error) {
	raw, present := args.Find(name)
	if !present {
		return value.Null(), false, nil
	}
	out, err := coerceArgument(raw, chain, want, name, present)
	if err != nil {
		return value.Value{}, false, err
	}
	if len(chain) > 0 && chain[0] == Nullable && (!present || raw.IsNull()) {
		return value.Null(), false, nil
	}
	return out, true, nil
}

func coerceArgument(v value.Value, chain Chain, want value.Kind, name string, present bool) (value.Value, error) {
	if len(chain) == 0 {
		return value.Value{}, errors.New("Invalid argument: %s message: empty type-modifier chain", name)
	}
	switch chain[0] {
	case None:
		if !present || v.IsNull() {
			return value.Value{}, errors.New("Invalid argument: %s message: missing required argument", name)
		}
		return coerceScalarArgument(v, want, name)
	case Nullable:
		if !present || v.IsNull() {
			return value.Null(), nil
		}
		return coerceArgument(v, chain[1:], want, name, present)
	case List:
		elems, err := v.AsList()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not a list", name)
		}
		out := value.NewList(len(elems))
		for _, elem := range elems {
			coerced, err := coerceArgument(elem, chain[1:], want, name, true)
			if err != nil {
				return value.Value{}, err
			}
			out.Append(coerced)
		}
		return out, nil
	default:
		return value.Value{}, errors.New("Invalid argument: %s message: unknown type-modifier", name)
	}
}

func coerceScalarArgument(v value.Value, want value.Kind, name string) (value.Value, error) {
	switch want {
	case value.KindID:
		s, err := v.AsString()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not a string", name)
		}
		if verr := idValidator.Var(s, "base64"); verr != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: invalid character in base64 encoded string", name)
		}
		decoded, err := base64.Decode(s)
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: %s", name, err.Error())
		}
		return value.ID(decoded), nil
	case value.KindInt:
		i, err := v.AsInt()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not an integer", name)
		}
		if i > math.MaxInt32 || i < math.MinInt32 {
			return value.Value{}, errors.New("Invalid argument: %s message: integer out of 32-bit range", name)
		}
		return value.Int(i), nil
	case value.KindFloat:
		f, err := v.AsFloat()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not a float", name)
		}
		return value.Float(f), nil
	case value.KindString:
		s, err := v.AsString()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not a string", name)
		}
		return value.String(s), nil
	case value.KindBool:
		b, err := v.AsBool()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not a boolean", name)
		}
		return value.Bool(b), nil
	case value.KindEnum:
		s, err := v.AsEnum()
		if err != nil {
			return value.Value{}, errors.New("Invalid argument: %s message: not an enum value", name)
		}
		return value.Enum(s), nil
	default:
		return value.Value{}, errors.New("Invalid argument: %s message: unsupported scalar kind", name)
	}
}

// ResultValue is what a resolver produced for one field before the Result
// Adapter shapes it according to the field's type-modifier chain: either a
// ready scalar value.Value, a nested Object to recursively resolve, a List
// of further ResultValues, or nothing at all (absent/nil).
//
// The result leg has a single entry point, ConvertResult; there is no
// result-side Require/Find. A resolver can hand back nothing for a NonNull
// leaf, and ConvertResult reports that as a SchemaError instead of
// panicking, the same treatment a missing required argument gets.
type ResultValue struct {
	Scalar *value.Value
	Object *Object
	List   []ResultValue
	Absent bool
}

// ScalarResult wraps a ready Response Value as a leaf ResultValue.
func ScalarResult(v value.Value) ResultValue { return ResultValue{Scalar: &v} }

// ObjectResult wraps an Object as a leaf ResultValue, to be resolved
// against the field's sub-selection set.
func ObjectResult(o *Object) ResultValue { return ResultValue{Object: o} }

// ListResult wraps a slice of ResultValues as a List-kinded ResultValue.
func ListResult(elems []ResultValue) ResultValue { return ResultValue{List: elems} }

// AbsentResult represents a resolver's "no value" answer — the nil a
// NULLABLE leg turns into Response Null, or a missing required value a
// NONE leg turns into a SchemaError.
func AbsentResult() ResultValue { return ResultValue{Absent: true} }

// ConvertResult runs chain in reverse against rv (spec.md §4.5: "Result
// conversion ... runs the modifier chain in reverse"), returning a Future
// of the resulting Response Value. selection/fragments/variables are
// forwarded to any Object leaf's Resolve call.
func ConvertResult(ctx context.Context, state interface{}, rv ResultValue, chain Chain, selection ast.Node, fragments FragmentMap, variables value.Value, name string) *future.Future {
	return future.New(func() (interface{}, error) {
		return convertResult(ctx, state, rv, chain, selection, fragments, variables, name)
	})
}

func convertResult(ctx context.Context, state interface{}, rv ResultValue, chain Chain, selection ast.Node, fragments FragmentMap, variables value.Value, name string) (value.Value, error) {
	if len(chain) == 0 {
		return value.Value{}, errors.New("Invalid result: %s message: empty type-modifier chain", name)
	}
	switch chain[0] {
	case Nullable:
		if rv.Absent {
			return value.Null(), nil
		}
		return convertResult(ctx, state, rv, chain[1:], selection, fragments, variables, name)
	case List:
		if rv.Absent {
			return value.Value{}, errors.New("Invalid result: %s message: missing required list", name)
		}
		out := value.NewList(len(rv.List))
		for _, elem := range rv.List {
			ev, err := convertResult(ctx, state, elem, chain[1:], selection, fragments, variables, name)
			if err != nil {
				return value.Value{}, err
			}
			out.Append(ev)
		}
		return out, nil
	case None:
		if rv.Absent {
			return value.Value{}, errors.New("Invalid result: %s message: missing required value", name)
		}
		if rv.Object != nil {
			result, err := rv.Object.Resolve(ctx, state, selection, fragments, variables).Get()
			if err != nil {
				return value.Value{}, err
			}
			return result.(value.Value), nil
		}
		if rv.Scalar == nil {
			return value.Value{}, errors.New("Invalid result: %s message: missing required value", name)
		}
		return *rv.Scalar, nil
	default:
		return value.Value{}, errors.New("Invalid result: %s message: unknown type-modifier", name)
	}
}
