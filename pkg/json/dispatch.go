package json

import "github.com/shapestone/jsondom/internal/parser"

// newDispatcher returns a parser.Factory that picks the right concrete
// sub-parser for a value based on its first symbol: '{' -> object,
// '[' -> array, '"' -> string, 'n'/'t'/'f' -> a literal, '-' or a digit ->
// a number. Any other symbol is InvalidStartingSymbol.
func newDispatcher(alloc Allocator) parser.Factory {
	var dispatch parser.Factory
	dispatch = func(sym rune) (parser.SubParser, error) {
		switch {
		case sym == '{':
			return newObjectParser(alloc, dispatch), nil
		case sym == '[':
			return newArrayParser(alloc, dispatch), nil
		case sym == '"':
			return newStringParser(alloc), nil
		case sym == 'n':
			return newLiteralParser("null", KindNull, alloc), nil
		case sym == 't':
			return newLiteralParser("true", KindTrue, alloc), nil
		case sym == 'f':
			return newLiteralParser("false", KindFalse, alloc), nil
		case sym == '-' || isDigit(sym):
			return newNumberParser(alloc), nil
		case isJSONSpace(sym):
			// Consumed without starting a value: skips whitespace between
			// top-level values and before the first one.
			return nil, nil
		default:
			return nil, newError(InvalidStartingSymbol, "unexpected %q, expected a JSON value", sym)
		}
	}
	return dispatch
}
