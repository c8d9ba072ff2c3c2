package json

import "testing"

func TestSelectSimplePath(t *testing.T) {
	v := mustParse(t, `{"store":{"book":[{"title":"A","price":10},{"title":"B","price":20}]}}`)
	matches, err := Select(v, "$.store.book[*].title")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	first, _ := matches[0].String()
	if first != "A" {
		t.Errorf("matches[0] = %q, want A", first)
	}
}

func TestSelectOneReturnsFirstMatch(t *testing.T) {
	v := mustParse(t, `{"a":{"b":42}}`)
	got, err := SelectOne(v, "$.a.b")
	if err != nil {
		t.Fatal(err)
	}
	f, _ := got.Float64()
	if f != 42 {
		t.Errorf("got %v, want 42", f)
	}
}

func TestSelectOneNoMatch(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	_, err := SelectOne(v, "$.missing")
	if err == nil {
		t.Fatal("expected error for no match")
	}
}

func TestSelectInvalidQuery(t *testing.T) {
	v := mustParse(t, `{"a":1}`)
	_, err := Select(v, "$[")
	if err == nil {
		t.Fatal("expected parse error for malformed query")
	}
}
