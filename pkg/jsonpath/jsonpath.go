// Package jsonpath compiles and runs RFC 9535 JSONPath queries against
// plain Go values (map[string]interface{}, []interface{}, and scalars),
// the same shape Value.ToInterface produces. It is deliberately decoupled
// from the DOM package: pkg/json.Select bridges the two by converting a
// *Value to interface{}, running the query here, and converting each
// match back.
package jsonpath

import (
	"fmt"
)

// Expr is a compiled JSONPath query, ready to run against any number of
// data trees without re-parsing the query string each time.
type Expr interface {
	// Get runs the query against data (map[string]interface{},
	// []interface{}, or a scalar) and returns every value the path
	// matched. Array elements come out in index order; the children of an
	// object come out in Go map iteration order, which is not defined.
	Get(data interface{}) []interface{}
}

// ParseString compiles a JSONPath query string.
//
// Supported features:
//   - Root selector: $
//   - Child selector: .property or ['property']
//   - Wildcard: * or [*]
//   - Array index: [0], [1], etc.
//   - Array slice: [0:5], [:5], [2:], etc.
//   - Recursive descent: ..property
//   - Multiple selectors: $.a.b.c
//
// Example:
//
//	expr, err := jsonpath.ParseString("$.users[0].name")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results := expr.Get(data)
func ParseString(query string) (Expr, error) {
	if query == "" {
		return nil, fmt.Errorf("query string cannot be empty")
	}

	tokens, err := tokenize(query)
	if err != nil {
		return nil, fmt.Errorf("tokenization failed: %w", err)
	}

	compiled, err := parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}

	return compiled, nil
}

// expr chains the selectors compiled from one query string.
type expr struct {
	selectors []selector
}

func (e *expr) Get(data interface{}) []interface{} {
	return execute(e.selectors, data)
}

// selector is one path segment of a compiled query (a child lookup, a
// wildcard, an index, a slice, or a recursive descent), applied against
// the match set its predecessor produced.
type selector interface {
	apply(current []interface{}) []interface{}
}
