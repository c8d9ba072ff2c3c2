package json

import "fmt"

// Kind names one of the error categories raised by the parser and DOM.
type Kind int

const (
	// InvalidStartingSymbol is raised when a value is expected but the next
	// symbol cannot begin any JSON value (null/true/false/number/string/array/object).
	InvalidStartingSymbol Kind = iota
	// LiteralException is raised when null/true/false is matched up to a
	// point and the following character does not complete the literal.
	LiteralException
	// IntegerOverflow is raised when a number's integral or exponent part
	// overflows int64 during accumulation.
	IntegerOverflow
	// ValueError is raised by DOM accessors when a value is well-typed but
	// out of the domain the caller asked for (e.g. a non-finite float
	// where one is disallowed).
	ValueError
	// TypeError is raised when an operation expects one variant of Value
	// and is given another (e.g. indexing a String by key).
	TypeError
	// AttributeMissing is raised when an Object lookup names a key the
	// object does not hold.
	AttributeMissing
	// AttributeNotUnique is raised when an Object literal repeats a key.
	AttributeNotUnique
	// OutOfRange is raised when an Array index is negative or >= length.
	OutOfRange
	// ParsingIncomplete is raised when input ends while a value is still
	// under construction (sub-parser stack depth > 0).
	ParsingIncomplete
	// AggregateTypeError is raised when an operation meant for one
	// aggregate (Array vs Object) is applied to the other.
	AggregateTypeError
)

func (k Kind) String() string {
	switch k {
	case InvalidStartingSymbol:
		return "InvalidStartingSymbol"
	case LiteralException:
		return "LiteralException"
	case IntegerOverflow:
		return "IntegerOverflow"
	case ValueError:
		return "ValueError"
	case TypeError:
		return "TypeError"
	case AttributeMissing:
		return "AttributeMissing"
	case AttributeNotUnique:
		return "AttributeNotUnique"
	case OutOfRange:
		return "OutOfRange"
	case ParsingIncomplete:
		return "ParsingIncomplete"
	case AggregateTypeError:
		return "AggregateTypeError"
	default:
		return "Unknown"
	}
}

// Error is the error type raised by every parser and DOM operation in this
// package. Callers distinguish categories with errors.As and Kind, rather
// than matching on message text.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, &json.Error{Kind: json.OutOfRange}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
