// This file bridges pkg/jsonpath (which walks plain interface{} trees) to
// Value, so callers can run path queries directly against parsed documents
// without manually converting through ToInterface first.
package json

import "github.com/shapestone/jsondom/pkg/jsonpath"

// Select runs a JSONPath query against v and returns every matching
// sub-value, converted back into *Value via FromInterface.
func Select(v *Value, query string) ([]*Value, error) {
	expr, err := jsonpath.ParseString(query)
	if err != nil {
		return nil, err
	}
	matches := expr.Get(v.ToInterface())

	out := make([]*Value, len(matches))
	for i, m := range matches {
		val, err := FromInterface(m)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

// SelectOne is like Select but returns only the first match. It returns an
// AttributeMissing error if the query matched nothing.
func SelectOne(v *Value, query string) (*Value, error) {
	matches, err := Select(v, query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, newError(AttributeMissing, "no match for query %q", query)
	}
	return matches[0], nil
}
