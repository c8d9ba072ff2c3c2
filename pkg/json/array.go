package json

import (
	"github.com/shapestone/jsondom/internal/parser"
)

const (
	arrBeforeOpen = iota
	arrBeforeElement
	arrAfterElement
	arrBeforeElement2
)

type arrayParser struct {
	state    int
	v        *Value
	dispatch parser.Factory
	alloc    Allocator
}

func newArrayParser(alloc Allocator, dispatch parser.Factory) *arrayParser {
	v := alloc.Alloc()
	v.initArray()
	return &arrayParser{v: v, alloc: alloc, dispatch: dispatch}
}

var isJSONSpace = parser.OneOf(" \t\n\r")

func (a *arrayParser) Step(sym rune) (parser.StepResult, error) {
	if sym == parser.End && a.state != arrBeforeOpen {
		return parser.StepResult{}, newError(ParsingIncomplete, "unterminated array")
	}
	switch a.state {
	case arrBeforeOpen:
		if sym != '[' {
			return parser.StepResult{}, newError(InvalidStartingSymbol, "expected '[' to start an array, got %q", sym)
		}
		a.state = arrBeforeElement
		return parser.StepResult{Effect: parser.EffectNone}, nil

	case arrBeforeElement:
		if isJSONSpace(sym) {
			return parser.StepResult{Effect: parser.EffectNone}, nil
		}
		if sym == ']' {
			return parser.StepResult{Effect: parser.EffectPop}, nil
		}
		child, err := a.dispatch(sym)
		if err != nil {
			return parser.StepResult{}, err
		}
		a.state = arrAfterElement
		return parser.StepResult{Effect: parser.EffectPush, Child: child}, nil

	case arrAfterElement:
		switch {
		case isJSONSpace(sym):
			return parser.StepResult{Effect: parser.EffectNone}, nil
		case sym == ',':
			a.state = arrBeforeElement2
			return parser.StepResult{Effect: parser.EffectNone}, nil
		case sym == ']':
			return parser.StepResult{Effect: parser.EffectPop}, nil
		default:
			return parser.StepResult{}, newError(LiteralException, "expected ',' or ']' in array, got %q", sym)
		}

	case arrBeforeElement2:
		if isJSONSpace(sym) {
			return parser.StepResult{Effect: parser.EffectNone}, nil
		}
		child, err := a.dispatch(sym)
		if err != nil {
			return parser.StepResult{}, err
		}
		a.state = arrAfterElement
		return parser.StepResult{Effect: parser.EffectPush, Child: child}, nil

	default:
		return parser.StepResult{}, newError(LiteralException, "array parser in invalid state")
	}
}

func (a *arrayParser) Accept(value interface{}) error {
	elem, _ := value.(*Value)
	return a.v.Append(elem)
}

func (a *arrayParser) Result() (interface{}, error) {
	return a.v, nil
}
