package json

import (
	"bufio"
	"io"
)

// A Decoder reads and decodes a sequence of JSON values from an input
// stream.
type Decoder struct {
	br *bufio.Reader
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder keeps one bufio.Reader alive across calls to Decode, so
// bytes read ahead for one value but belonging to the next are never
// lost between calls, unlike calling ParseReader(r) repeatedly on a
// reader that is not an io.RuneReader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{br: bufio.NewReader(r)}
}

// Decode reads the next JSON-encoded value from its input and stores it
// in the value pointed to by v.
//
// See the documentation for Unmarshal for details about the conversion
// of JSON into a Go value.
func (dec *Decoder) Decode(v interface{}) error {
	node, err := parseFromBufioReader(dec.br)
	if err != nil {
		return err
	}
	return unmarshalFromValue(node, v)
}
