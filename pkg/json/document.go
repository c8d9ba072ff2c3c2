// This file provides a user-friendly, fluent builder API layered on top
// of Value, adapted from the teacher's dom.go. The teacher's Document/
// Array wrapped a plain map[string]interface{}/[]interface{} and
// round-tripped through InterfaceToNode/NodeToInterface on every JSON()
// call; here both wrap a *Value directly, so building a Document mutates
// the same tree the parser and renderer already operate on, with no AST
// round trip.
package json

import "fmt"

// Document represents a JSON object with a fluent API for manipulation.
// All setter methods return *Document to enable method chaining.
type Document struct {
	v *Value
}

// Array represents a JSON array with a fluent API for manipulation.
// All append methods return *Array to enable method chaining.
type Array struct {
	v *Value
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{v: NewObject(nil)}
}

// NewArrayBuilder creates a new empty Array. Named distinctly from the
// Value constructor NewArray(elems ...*Value), which this type wraps.
func NewArrayBuilder() *Array {
	return &Array{v: NewArray()}
}

// ParseDocument parses JSON string into a Document with a fluent API.
// Returns an error if the input is not valid JSON or not an object.
func ParseDocument(input string) (*Document, error) {
	v, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if !v.IsObject() {
		return nil, fmt.Errorf("expected JSON object, got %s", v.Kind())
	}
	return &Document{v: v}, nil
}

// ParseArray parses JSON string into an Array with a fluent API.
// Returns an error if the input is not valid JSON or not an array.
func ParseArray(input string) (*Array, error) {
	v, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if !v.IsArray() {
		return nil, fmt.Errorf("expected JSON array, got %s", v.Kind())
	}
	return &Array{v: v}, nil
}

// Value returns the underlying Value backing this Document.
func (d *Document) Value() *Value { return d.v }

// Value returns the underlying Value backing this Array.
func (a *Array) Value() *Value { return a.v }

// ============================================================================
// Document Builder Methods (fluent setters that return *Document)
// ============================================================================

// Set sets a key to an arbitrary Go value, converted via FromInterface, and
// returns the Document for chaining. Panics if value cannot be converted;
// use the typed setters below to avoid that.
func (d *Document) Set(key string, value interface{}) *Document {
	v, err := FromInterface(value)
	if err != nil {
		panic(err)
	}
	_ = d.v.SetKey(key, v)
	return d
}

// SetString sets a string value and returns the Document for chaining.
func (d *Document) SetString(key, value string) *Document {
	_ = d.v.SetKey(key, NewString(value))
	return d
}

// SetInt sets an int value and returns the Document for chaining.
func (d *Document) SetInt(key string, value int) *Document {
	_ = d.v.SetKey(key, NewNumber(float64(value)))
	return d
}

// SetInt64 sets an int64 value and returns the Document for chaining.
func (d *Document) SetInt64(key string, value int64) *Document {
	_ = d.v.SetKey(key, NewNumber(float64(value)))
	return d
}

// SetBool sets a bool value and returns the Document for chaining.
func (d *Document) SetBool(key string, value bool) *Document {
	_ = d.v.SetKey(key, NewBool(value))
	return d
}

// SetFloat sets a float64 value and returns the Document for chaining.
func (d *Document) SetFloat(key string, value float64) *Document {
	_ = d.v.SetKey(key, NewNumber(value))
	return d
}

// SetNull sets a null value and returns the Document for chaining.
func (d *Document) SetNull(key string) *Document {
	_ = d.v.SetKey(key, NewNull())
	return d
}

// SetObject sets a nested Document and returns the parent Document for chaining.
func (d *Document) SetObject(key string, value *Document) *Document {
	_ = d.v.SetKey(key, value.v)
	return d
}

// SetArray sets an Array and returns the Document for chaining.
func (d *Document) SetArray(key string, value *Array) *Document {
	_ = d.v.SetKey(key, value.v)
	return d
}

// ============================================================================
// Document Getter Methods (type-safe access)
// ============================================================================

// Get gets a value as interface{}. Returns nil if not found.
func (d *Document) Get(key string) (interface{}, bool) {
	m, err := d.v.Get(key)
	if err != nil {
		return nil, false
	}
	return m.ToInterface(), true
}

// GetString gets a string value. Returns empty string and false if not found or wrong type.
func (d *Document) GetString(key string) (string, bool) {
	m, err := d.v.Get(key)
	if err != nil {
		return "", false
	}
	s, err := m.String()
	if err != nil {
		return "", false
	}
	return s, true
}

// GetInt gets an int value. Returns 0 and false if not found or wrong type.
func (d *Document) GetInt(key string) (int, bool) {
	m, err := d.v.Get(key)
	if err != nil {
		return 0, false
	}
	f, err := m.Float64()
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// GetInt64 gets an int64 value. Returns 0 and false if not found or wrong type.
func (d *Document) GetInt64(key string) (int64, bool) {
	m, err := d.v.Get(key)
	if err != nil {
		return 0, false
	}
	f, err := m.Float64()
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// GetBool gets a bool value. Returns false and false if not found or wrong type.
func (d *Document) GetBool(key string) (bool, bool) {
	m, err := d.v.Get(key)
	if err != nil {
		return false, false
	}
	b, err := m.Bool()
	if err != nil {
		return false, false
	}
	return b, true
}

// GetFloat gets a float64 value. Returns 0.0 and false if not found or wrong type.
func (d *Document) GetFloat(key string) (float64, bool) {
	m, err := d.v.Get(key)
	if err != nil {
		return 0.0, false
	}
	f, err := m.Float64()
	if err != nil {
		return 0.0, false
	}
	return f, true
}

// GetObject gets a nested Document. Returns nil and false if not found or wrong type.
func (d *Document) GetObject(key string) (*Document, bool) {
	m, err := d.v.Get(key)
	if err != nil || !m.IsObject() {
		return nil, false
	}
	return &Document{v: m}, true
}

// GetArray gets an Array. Returns nil and false if not found or wrong type.
func (d *Document) GetArray(key string) (*Array, bool) {
	m, err := d.v.Get(key)
	if err != nil || !m.IsArray() {
		return nil, false
	}
	return &Array{v: m}, true
}

// IsNull checks if a key exists and has a null value.
func (d *Document) IsNull(key string) bool {
	m, err := d.v.Get(key)
	return err == nil && m.IsNull()
}

// Has checks if a key exists (including null values).
func (d *Document) Has(key string) bool {
	return d.v.Has(key)
}

// Remove removes a key and returns the Document for chaining.
func (d *Document) Remove(key string) *Document {
	if d.v.obj != nil {
		delete(d.v.obj, key)
		for i, k := range d.v.objKeys {
			if k == key {
				d.v.objKeys = append(d.v.objKeys[:i], d.v.objKeys[i+1:]...)
				break
			}
		}
	}
	return d
}

// Keys returns all keys in the Document.
func (d *Document) Keys() []string {
	return d.v.Keys()
}

// Size returns the number of properties in the Document.
func (d *Document) Size() int {
	n, _ := d.v.Len()
	return n
}

// ToMap returns the Document's contents as a map[string]interface{}.
func (d *Document) ToMap() map[string]interface{} {
	return d.v.ToInterface().(map[string]interface{})
}

// JSON marshals the Document to a JSON string.
func (d *Document) JSON() (string, error) {
	b, err := Render(d.v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// JSONIndent returns a pretty-printed JSON string representation with
// indentation. prefix is written at the beginning of each line; indent is
// repeated once per nesting depth.
func (d *Document) JSONIndent(prefix, indent string) (string, error) {
	b, err := RenderIndent(d.v, prefix, indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements the Marshaler interface.
func (d *Document) MarshalJSON() ([]byte, error) {
	return Render(d.v)
}

// UnmarshalJSON implements the Unmarshaler interface.
func (d *Document) UnmarshalJSON(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	if !v.IsObject() {
		return fmt.Errorf("expected JSON object, got %s", v.Kind())
	}
	d.v = v
	return nil
}

// ============================================================================
// Array Builder Methods (fluent append methods that return *Array)
// ============================================================================

// Add appends an arbitrary Go value, converted via FromInterface, and
// returns the Array for chaining. Panics if value cannot be converted.
func (a *Array) Add(value interface{}) *Array {
	v, err := FromInterface(value)
	if err != nil {
		panic(err)
	}
	_ = a.v.Append(v)
	return a
}

// AddString appends a string and returns the Array for chaining.
func (a *Array) AddString(value string) *Array {
	_ = a.v.Append(NewString(value))
	return a
}

// AddInt appends an int and returns the Array for chaining.
func (a *Array) AddInt(value int) *Array {
	_ = a.v.Append(NewNumber(float64(value)))
	return a
}

// AddInt64 appends an int64 and returns the Array for chaining.
func (a *Array) AddInt64(value int64) *Array {
	_ = a.v.Append(NewNumber(float64(value)))
	return a
}

// AddBool appends a bool and returns the Array for chaining.
func (a *Array) AddBool(value bool) *Array {
	_ = a.v.Append(NewBool(value))
	return a
}

// AddFloat appends a float64 and returns the Array for chaining.
func (a *Array) AddFloat(value float64) *Array {
	_ = a.v.Append(NewNumber(value))
	return a
}

// AddNull appends a null and returns the Array for chaining.
func (a *Array) AddNull() *Array {
	_ = a.v.Append(NewNull())
	return a
}

// AddObject appends a Document and returns the Array for chaining.
func (a *Array) AddObject(value *Document) *Array {
	_ = a.v.Append(value.v)
	return a
}

// AddArray appends an Array and returns the parent Array for chaining.
func (a *Array) AddArray(value *Array) *Array {
	_ = a.v.Append(value.v)
	return a
}

// ============================================================================
// Array Getter Methods (type-safe indexed access)
// ============================================================================

// Get gets a value at index as interface{}. Returns nil if out of bounds.
func (a *Array) Get(index int) (interface{}, bool) {
	e, err := a.v.Index(index)
	if err != nil {
		return nil, false
	}
	return e.ToInterface(), true
}

// GetString gets a string at index. Returns empty string and false if not found or wrong type.
func (a *Array) GetString(index int) (string, bool) {
	e, err := a.v.Index(index)
	if err != nil {
		return "", false
	}
	s, err := e.String()
	if err != nil {
		return "", false
	}
	return s, true
}

// GetInt gets an int at index. Returns 0 and false if not found or wrong type.
func (a *Array) GetInt(index int) (int, bool) {
	e, err := a.v.Index(index)
	if err != nil {
		return 0, false
	}
	f, err := e.Float64()
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// GetInt64 gets an int64 at index. Returns 0 and false if not found or wrong type.
func (a *Array) GetInt64(index int) (int64, bool) {
	e, err := a.v.Index(index)
	if err != nil {
		return 0, false
	}
	f, err := e.Float64()
	if err != nil {
		return 0, false
	}
	return int64(f), true
}

// GetBool gets a bool at index. Returns false and false if not found or wrong type.
func (a *Array) GetBool(index int) (bool, bool) {
	e, err := a.v.Index(index)
	if err != nil {
		return false, false
	}
	b, err := e.Bool()
	if err != nil {
		return false, false
	}
	return b, true
}

// GetFloat gets a float64 at index. Returns 0.0 and false if not found or wrong type.
func (a *Array) GetFloat(index int) (float64, bool) {
	e, err := a.v.Index(index)
	if err != nil {
		return 0.0, false
	}
	f, err := e.Float64()
	if err != nil {
		return 0.0, false
	}
	return f, true
}

// GetObject gets a Document at index. Returns nil and false if not found or wrong type.
func (a *Array) GetObject(index int) (*Document, bool) {
	e, err := a.v.Index(index)
	if err != nil || !e.IsObject() {
		return nil, false
	}
	return &Document{v: e}, true
}

// GetArray gets an Array at index. Returns nil and false if not found or wrong type.
func (a *Array) GetArray(index int) (*Array, bool) {
	e, err := a.v.Index(index)
	if err != nil || !e.IsArray() {
		return nil, false
	}
	return &Array{v: e}, true
}

// IsNull checks if the value at index is null.
func (a *Array) IsNull(index int) bool {
	e, err := a.v.Index(index)
	return err == nil && e.IsNull()
}

// Len returns the length of the Array.
func (a *Array) Len() int {
	n, _ := a.v.Len()
	return n
}

// ToSlice returns the Array's contents as a []interface{}.
func (a *Array) ToSlice() []interface{} {
	return a.v.ToInterface().([]interface{})
}

// JSON marshals the Array to a JSON string.
func (a *Array) JSON() (string, error) {
	b, err := Render(a.v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// JSONIndent returns a pretty-printed JSON string representation with
// indentation. prefix is written at the beginning of each line; indent is
// repeated once per nesting depth.
func (a *Array) JSONIndent(prefix, indent string) (string, error) {
	b, err := RenderIndent(a.v, prefix, indent)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MarshalJSON implements the Marshaler interface.
func (a *Array) MarshalJSON() ([]byte, error) {
	return Render(a.v)
}

// UnmarshalJSON implements the Unmarshaler interface.
func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	if !v.IsArray() {
		return fmt.Errorf("expected JSON array, got %s", v.Kind())
	}
	a.v = v
	return nil
}
