package parser

import "testing"

// digitParser accumulates consecutive ASCII digits and pops as soon as a
// non-digit is seen, re-feeding that symbol to whatever is beneath it.
type digitParser struct {
	digits []rune
}

func (d *digitParser) Step(sym rune) (StepResult, error) {
	if sym >= '0' && sym <= '9' {
		d.digits = append(d.digits, sym)
		return StepResult{Effect: EffectNone}, nil
	}
	return StepResult{Effect: EffectPopRefeed}, nil
}

func (d *digitParser) Result() (interface{}, error) {
	return string(d.digits), nil
}

func digitFactory(sym rune) (SubParser, error) {
	if sym >= '0' && sym <= '9' {
		return &digitParser{}, nil
	}
	if sym == ' ' {
		return nil, nil
	}
	return nil, &testError{"unexpected symbol"}
}

type testError struct{ msg string }

func (e *testError) Error() string { return e.msg }

func feedString(t *testing.T, m *Machine, s string) {
	t.Helper()
	for _, r := range s {
		if err := m.Feed(r); err != nil {
			t.Fatalf("Feed(%q): %v", r, err)
		}
	}
}

func TestMachineSingleValue(t *testing.T) {
	m := NewMachine(digitFactory)
	feedString(t, m, "123")
	if err := m.Feed(End); err != nil {
		t.Fatalf("Feed(End): %v", err)
	}
	results := m.Results()
	if len(results) != 1 || results[0] != "123" {
		t.Fatalf("got %v, want [123]", results)
	}
}

func TestMachineSkipsWhitespaceBetweenValues(t *testing.T) {
	m := NewMachine(digitFactory)
	feedString(t, m, "12 34  56")
	if err := m.Feed(End); err != nil {
		t.Fatalf("Feed(End): %v", err)
	}
	results := m.Results()
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3: %v", len(results), results)
	}
	want := []string{"12", "34", "56"}
	for i, w := range want {
		if results[i] != w {
			t.Errorf("result %d = %v, want %v", i, results[i], w)
		}
	}
}

func TestMachineRefeedTerminatesOnNonDigit(t *testing.T) {
	m := NewMachine(digitFactory)
	if err := m.Feed('7'); err != nil {
		t.Fatal(err)
	}
	if err := m.Feed(' '); err != nil {
		t.Fatal(err)
	}
	if depth := m.Depth(); depth != 0 {
		t.Fatalf("Depth() = %d, want 0 after whitespace pops the pending digit run", depth)
	}
	if got := m.Results(); len(got) != 1 || got[0] != "7" {
		t.Fatalf("got %v, want [7]", got)
	}
}

func TestMachineCleanEOFWithEmptyStack(t *testing.T) {
	m := NewMachine(digitFactory)
	if err := m.Feed(End); err != nil {
		t.Fatalf("Feed(End) on empty input should not error: %v", err)
	}
	if got := m.Results(); len(got) != 0 {
		t.Fatalf("got %v, want no results", got)
	}
}

func TestMachineFactoryErrorPropagates(t *testing.T) {
	m := NewMachine(digitFactory)
	if err := m.Feed('!'); err == nil {
		t.Fatal("expected error for unexpected symbol")
	}
}

func TestTableMatchFirstRowWins(t *testing.T) {
	tbl := Table{
		{
			{When: Is('a'), Do: Store, Next: 1},
			{When: Any, Do: NoOp, Next: 0},
		},
	}
	row, ok := tbl.Match(0, 'a')
	if !ok || row.Next != 1 || row.Do != Store {
		t.Fatalf("expected specific row to win over catch-all, got %+v, ok=%v", row, ok)
	}
	row, ok = tbl.Match(0, 'z')
	if !ok || row.Next != 0 || row.Do != NoOp {
		t.Fatalf("expected catch-all row for unmatched symbol, got %+v, ok=%v", row, ok)
	}
}

func TestPredicates(t *testing.T) {
	if !OneOf("abc")('b') {
		t.Error("OneOf should match member rune")
	}
	if OneOf("abc")('d') {
		t.Error("OneOf should not match non-member rune")
	}
	if !InRange('0', '9')('5') {
		t.Error("InRange should match rune within bounds")
	}
	if InRange('0', '9')('a') {
		t.Error("InRange should not match rune outside bounds")
	}
	if !Not(Is('x'))('y') {
		t.Error("Not should invert its predicate")
	}
}
