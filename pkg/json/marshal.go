package json

import "reflect"

// Marshaler is the interface implemented by types that can marshal
// themselves into valid JSON.
type Marshaler interface {
	MarshalJSON() ([]byte, error)
}

// Marshal returns the JSON encoding of v.
//
// Marshal traverses v recursively. If an encountered value implements
// Marshaler, Marshal calls its MarshalJSON method to produce JSON.
//
// Otherwise Marshal uses the following type-dependent default encodings:
// booleans encode as JSON booleans; all numeric kinds encode as JSON
// numbers; strings encode as JSON strings with \uXXXX escaping of control
// characters; slices and arrays encode as JSON arrays, with a nil slice
// encoding as null; maps encode as JSON objects (string keys only);
// structs encode as JSON objects, one member per exported field, named
// and filtered by that field's "json" struct tag exactly as tags.go
// parses it; pointers encode as the pointed-to value, or null when nil;
// interfaces encode as their dynamic value, or null when nil.
//
// time.Time encodes as an RFC 3339 string; time.Duration encodes as an
// ISO 8601 duration string.
//
// Object members and map keys are sorted for deterministic output.
//
// Channels, complex numbers, and functions cannot be encoded; Marshal
// returns an error for them. Marshal does not detect cycles; a cyclic
// value will not terminate.
//
// Most concrete types are handled by a fast, allocation-free type switch
// (appendInterface); anything else falls back to a per-type encoder built
// once via reflection and cached for subsequent calls (encoderForType).
func Marshal(v interface{}) ([]byte, error) {
	buf := getBuffer()

	buf, err := appendInterface(buf, v)
	if err == errNeedReflect {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			buf = append(buf, "null"...)
			err = nil
		} else {
			buf, err = encoderForType(rv.Type())(buf, rv)
		}
	}
	if err != nil {
		putBuffer(buf)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	putBuffer(buf)
	return result, nil
}
