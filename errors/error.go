// Package errors defines the single error kind the execution engine raises:
// SchemaError, an ordered list of human-readable messages. This mirrors
// graphql's wire "errors" array ({"message": ...}, ...), and replaces the
// multi-field GraphQLError/MultiError pair this package carried when it sat
// behind a validator that needed rule names and source locations per error;
// the core only ever needs the message text (callers that want locations
// embed them in the message, as the raise-site table in spec.md §7 shows:
// "Unknown field name: <n> line: L column: C").
package errors

import (
	"fmt"
	"strings"
)

// SchemaError is the engine's single error kind. It carries an ordered list
// of messages so that an operation which fails for several independent
// reasons (e.g. several unknown variables) can report all of them at once.
type SchemaError struct {
	Messages []string
}

func (e *SchemaError) Error() string {
	if e == nil || len(e.Messages) == 0 {
		return "graphql: schema error"
	}
	return "graphql: " + strings.Join(e.Messages, "; ")
}

// New builds a SchemaError from a single formatted message.
func New(format string, a ...interface{}) *SchemaError {
	return &SchemaError{Messages: []string{fmt.Sprintf(format, a...)}}
}

// Append merges other's messages onto e in order and returns e, allocating a
// new SchemaError if e is nil. A nil other is a no-op.
func (e *SchemaError) Append(other *SchemaError) *SchemaError {
	if e == nil {
		e = &SchemaError{}
	}
	if other != nil {
		e.Messages = append(e.Messages, other.Messages...)
	}
	return e
}

// Wrap wraps err as a SchemaError, passing it through unchanged if it
// already is one, and formatting any other error with its Error() text as
// the sole message.
func Wrap(err error) *SchemaError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SchemaError); ok {
		return se
	}
	return &SchemaError{Messages: []string{err.Error()}}
}

// Location is a source position within the request document; String
// formats it as the "line: L column: C" suffix. The engine's own raise
// sites format their positions inline and do not use this type.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("line: %d column: %d", l.Line, l.Column)
}
