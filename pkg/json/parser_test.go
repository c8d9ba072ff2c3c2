package json

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Value {
	t.Helper()
	v, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return v
}

func TestParseLiterals(t *testing.T) {
	cases := []struct {
		in   string
		kind ValueKind
	}{
		{"null", KindNull},
		{"true", KindTrue},
		{"false", KindFalse},
		{"  null  ", KindNull},
	}
	for _, c := range cases {
		v := mustParse(t, c.in)
		if v.Kind() != c.kind {
			t.Errorf("Parse(%q).Kind() = %v, want %v", c.in, v.Kind(), c.kind)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"-17", -17},
		{"3.14", 3.14},
		{"1e3", 1000},
		{"1.5e-2", 0.015},
		{"-2.5E+2", -250},
	}
	for _, c := range cases {
		v := mustParse(t, c.in)
		got, err := v.Float64()
		if err != nil {
			t.Fatalf("Float64(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseNumberIntegerOverflow(t *testing.T) {
	_, err := Parse("9223372036854775808")
	if err == nil {
		t.Fatal("expected overflow error")
	}
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != IntegerOverflow {
		t.Fatalf("got %v, want IntegerOverflow", err)
	}
}

func TestParseNumberExponentOverflow(t *testing.T) {
	_, err := Parse("1e99999999999999999999")
	if err == nil {
		t.Fatal("expected overflow error")
	}
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != IntegerOverflow {
		t.Fatalf("got %v, want IntegerOverflow", err)
	}
}

func TestParseNumberRoundTripsRawText(t *testing.T) {
	v := mustParse(t, "1.50")
	out, err := Render(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "1.50" {
		t.Errorf("Render = %q, want %q (raw text preserved)", out, "1.50")
	}
}

func TestParseStrings(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"hello"`, "hello"},
		{`""`, ""},
		{`"line\nbreak"`, "line\nbreak"},
		{`"tab\there"`, "tab\there"},
		{`"quote\""`, `quote"`},
		{`"backslash\\"`, `backslash\`},
		{`"A"`, "A"},
		{"\"\\uD83D\\uDE00\"", "\U0001F600"}, // surrogate pair -> grinning face
	}
	for _, c := range cases {
		v := mustParse(t, c.in)
		got, err := v.String()
		if err != nil {
			t.Fatalf("String(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := Parse(`"abc`)
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != ParsingIncomplete {
		t.Fatalf("got %v, want ParsingIncomplete", err)
	}
}

func TestParseArray(t *testing.T) {
	v := mustParse(t, `[1, 2, 3]`)
	if !v.IsArray() {
		t.Fatalf("expected array, got %v", v.Kind())
	}
	n, _ := v.Len()
	if n != 3 {
		t.Fatalf("Len() = %d, want 3", n)
	}
	for i, want := range []float64{1, 2, 3} {
		elem, err := v.Index(i)
		if err != nil {
			t.Fatal(err)
		}
		got, _ := elem.Float64()
		if got != want {
			t.Errorf("elem %d = %v, want %v", i, got, want)
		}
	}
}

func TestParseEmptyArray(t *testing.T) {
	v := mustParse(t, `[]`)
	n, _ := v.Len()
	if n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
}

func TestParseArrayTrailingCommaRejected(t *testing.T) {
	if _, err := Parse(`[1,2,]`); err == nil {
		t.Fatal("expected error for trailing comma")
	}
}

func TestParseArrayUnterminated(t *testing.T) {
	_, err := Parse(`[1,2`)
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != ParsingIncomplete {
		t.Fatalf("got %v, want ParsingIncomplete", err)
	}
}

func TestParseNestedArray(t *testing.T) {
	v := mustParse(t, `[[1,2],[3,4]]`)
	n, _ := v.Len()
	if n != 2 {
		t.Fatalf("Len() = %d, want 2", n)
	}
	inner, err := v.Index(0)
	if err != nil {
		t.Fatal(err)
	}
	innerLen, _ := inner.Len()
	if innerLen != 2 {
		t.Fatalf("inner Len() = %d, want 2", innerLen)
	}
}

func TestParseObject(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": "two", "c": null}`)
	if !v.IsObject() {
		t.Fatalf("expected object, got %v", v.Kind())
	}
	a, err := v.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	af, _ := a.Float64()
	if af != 1 {
		t.Errorf("a = %v, want 1", af)
	}
	b, err := v.Get("b")
	if err != nil {
		t.Fatal(err)
	}
	bs, _ := b.String()
	if bs != "two" {
		t.Errorf("b = %q, want two", bs)
	}
	c, err := v.Get("c")
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsNull() {
		t.Errorf("c.Kind() = %v, want null", c.Kind())
	}
}

func TestParseEmptyObject(t *testing.T) {
	v := mustParse(t, `{}`)
	n, _ := v.Len()
	if n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
}

func TestParseObjectDuplicateKeyRejected(t *testing.T) {
	_, err := Parse(`{"a":1,"a":2}`)
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != AttributeNotUnique {
		t.Fatalf("got %v, want AttributeNotUnique", err)
	}
}

func TestParseObjectMissingKeyLookup(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	_, err := v.Get("missing")
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != AttributeMissing {
		t.Fatalf("got %v, want AttributeMissing", err)
	}
}

func TestParseObjectUnterminated(t *testing.T) {
	_, err := Parse(`{"a":1`)
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != ParsingIncomplete {
		t.Fatalf("got %v, want ParsingIncomplete", err)
	}
}

func TestParseInvalidStartingSymbol(t *testing.T) {
	_, err := Parse(`@nope`)
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != InvalidStartingSymbol {
		t.Fatalf("got %v, want InvalidStartingSymbol", err)
	}
}

func TestParseBadLiteral(t *testing.T) {
	_, err := Parse(`nul`)
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != LiteralException {
		t.Fatalf("got %v, want LiteralException", err)
	}
}

func TestParseTrailingGarbageRejected(t *testing.T) {
	// ParseReader stops at the first complete value and leaves the rest
	// unread, but Parse/Validate feed the whole string through one Parser,
	// so trailing non-whitespace after a complete value is an error.
	_, err := Parse(`1 2`)
	if err == nil {
		t.Fatal("expected error for trailing content after a complete value")
	}
}

func TestParseAllConcatenatedValues(t *testing.T) {
	vals, err := ParseAll(`1 2 3`)
	if err != nil {
		t.Fatal(err)
	}
	if len(vals) != 3 {
		t.Fatalf("got %d values, want 3", len(vals))
	}
}

func TestParseReaderLeavesTrailingBytesUnread(t *testing.T) {
	r := strings.NewReader(`{"a":1}garbage`)
	v, err := ParseReader(r)
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsObject() {
		t.Fatalf("expected object, got %v", v.Kind())
	}
	rest, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(rest) != "garbage" {
		t.Errorf("remaining input = %q, want %q", rest, "garbage")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(`{"ok":true}`); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := Validate(`{bad}`); err == nil {
		t.Fatal("expected Validate to reject malformed input")
	}
}

func TestDetectFormat(t *testing.T) {
	format, err := DetectFormat(`[1,2,3]`)
	if err != nil {
		t.Fatal(err)
	}
	if format != "JSON" {
		t.Errorf("DetectFormat = %q, want JSON", format)
	}
}

func TestDeeplyNestedStructure(t *testing.T) {
	v := mustParse(t, `{"users":[{"name":"Ann","tags":["a","b"]},{"name":"Bob","tags":[]}]}`)
	users, err := v.Get("users")
	if err != nil {
		t.Fatal(err)
	}
	n, _ := users.Len()
	if n != 2 {
		t.Fatalf("users length = %d, want 2", n)
	}
	first, err := users.Index(0)
	if err != nil {
		t.Fatal(err)
	}
	name, err := first.Get("name")
	if err != nil {
		t.Fatal(err)
	}
	s, _ := name.String()
	if s != "Ann" {
		t.Errorf("name = %q, want Ann", s)
	}
}
