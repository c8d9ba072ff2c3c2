package json

import "github.com/shapestone/jsondom/internal/parser"

// literalParser matches one of the fixed JSON literals null, true, false.
// Its transition table has exactly one row per state (the single expected
// next rune), but it is still driven through Table.Match like any other
// table-backed sub-parser rather than comparing runes by hand.
type literalParser struct {
	table parser.Table
	kind  ValueKind
	state int
	alloc Allocator
}

func newLiteralParser(word string, kind ValueKind, alloc Allocator) *literalParser {
	table := make(parser.Table, len(word))
	for i := 0; i < len(word); i++ {
		table[i] = []parser.Row{
			{When: parser.Is(rune(word[i])), Do: parser.Store, Next: i + 1},
		}
	}
	return &literalParser{table: table, kind: kind, alloc: alloc}
}

func (l *literalParser) Step(sym rune) (parser.StepResult, error) {
	row, ok := l.table.Match(l.state, sym)
	if !ok {
		return parser.StepResult{}, newError(LiteralException,
			"invalid literal: unexpected %q at position %d", sym, l.state)
	}
	l.state = row.Next
	if l.state == len(l.table) {
		return parser.StepResult{Effect: parser.EffectPop}, nil
	}
	return parser.StepResult{Effect: parser.EffectNone}, nil
}

func (l *literalParser) Result() (interface{}, error) {
	v := l.alloc.Alloc()
	if l.kind == KindTrue || l.kind == KindFalse {
		v.initBool(l.kind == KindTrue)
	}
	return v, nil
}
