// marshalValue is a narrow value.Value -> JSON bytes encoder used only by
// the Subscription Registry's optional pubsub fan-out (SPEC_FULL.md §2)
// and by Marshal below. It is not the core's response serializer: spec.md
// §1 excludes "JSON serialization" from the core's primary contract (the
// dispatcher returns a Response Value Map, and shaping that into wire
// bytes is the caller's job). It writes JSON bytes directly from each
// Map's []Entry rather than going through encoding/json.Marshal on a
// built-in map[string]interface{}, because the latter sorts keys
// alphabetically and would violate the core's key-order-preservation
// guarantee (spec.md §8 property 1) the moment a caller tried to render a
// result. Duplicate aliases (spec.md §9) are written as repeated object
// members, in registration order, rather than collapsed to last-write-
// wins: this encoder never de-duplicates, matching the Map it is walking.
package gqlcore

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shyptr/gqlcore/base64"
	"github.com/shyptr/gqlcore/value"
)

func marshalValue(v value.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSONValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal renders a Response Value as JSON bytes, preserving Map key order
// and duplicate aliases exactly as the core produced them. Callers that
// already have their own wire serializer have no reason to use this; it
// is exposed as a convenience for callers (including the example program)
// that don't.
func Marshal(v value.Value) ([]byte, error) {
	return marshalValue(v)
}

func writeJSONValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case value.KindInt:
		i, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(i, 10))
	case value.KindFloat:
		f, _ := v.AsFloat()
		encoded, err := json.Marshal(f)
		if err != nil {
			return err
		}
		buf.Write(encoded)
	case value.KindString:
		s, _ := v.AsString()
		return writeJSONString(buf, s)
	case value.KindEnum:
		s, _ := v.AsEnum()
		return writeJSONString(buf, s)
	case value.KindID:
		b, _ := v.AsID()
		return writeJSONString(buf, base64.Encode(b))
	case value.KindList:
		elems, _ := v.AsList()
		buf.WriteByte('[')
		for i, e := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case value.KindMap:
		entries, _ := v.AsMap()
		buf.WriteByte('{')
		for i, e := range entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, e.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSONValue(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}
