package json

import (
	"bytes"
)

// MarshalIndent is like Marshal but applies Indent to format the output.
// Each JSON element in the output begins on a new line, prefixed with
// prefix followed by one or more copies of indent according to nesting
// depth. Compatible with encoding/json.MarshalIndent.
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	compact, err := Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Indent(&buf, compact, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Indent appends to dst an indented form of the JSON-encoded src.
// Compatible with encoding/json.Indent.
func Indent(dst *bytes.Buffer, src []byte, prefix, indent string) error {
	v, err := Parse(string(src))
	if err != nil {
		return err
	}
	indented, err := RenderIndent(v, prefix, indent)
	if err != nil {
		return err
	}
	dst.Write(indented)
	return nil
}

// Compact appends to dst the JSON-encoded src with insignificant space
// elided. Compatible with encoding/json.Compact.
func Compact(dst *bytes.Buffer, src []byte) error {
	v, err := Parse(string(src))
	if err != nil {
		return err
	}
	compact, err := Render(v)
	if err != nil {
		return err
	}
	dst.Write(compact)
	return nil
}
