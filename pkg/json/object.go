package json

import "github.com/shapestone/jsondom/internal/parser"

const (
	objBeforeOpen = iota
	objBeforeKey
	objAfterKey
	objBeforeColon
	objBeforeValue
	objAfterValue
	objBeforeKey2
)

type objectParser struct {
	state    int
	v        *Value
	pendingKey string
	dispatch parser.Factory
	alloc    Allocator
}

func newObjectParser(alloc Allocator, dispatch parser.Factory) *objectParser {
	v := alloc.Alloc()
	v.initObject()
	return &objectParser{v: v, alloc: alloc, dispatch: dispatch}
}

func (o *objectParser) Step(sym rune) (parser.StepResult, error) {
	if sym == parser.End && o.state != objBeforeOpen {
		return parser.StepResult{}, newError(ParsingIncomplete, "unterminated object")
	}
	switch o.state {
	case objBeforeOpen:
		if sym != '{' {
			return parser.StepResult{}, newError(InvalidStartingSymbol, "expected '{' to start an object, got %q", sym)
		}
		o.state = objBeforeKey
		return parser.StepResult{Effect: parser.EffectNone}, nil

	case objBeforeKey:
		if isJSONSpace(sym) {
			return parser.StepResult{Effect: parser.EffectNone}, nil
		}
		if sym == '}' {
			return parser.StepResult{Effect: parser.EffectPop}, nil
		}
		if sym != '"' {
			return parser.StepResult{}, newError(LiteralException, "expected object key string, got %q", sym)
		}
		o.state = objAfterKey
		return parser.StepResult{Effect: parser.EffectPush, Child: newStringParser(o.alloc)}, nil

	case objBeforeKey2:
		if isJSONSpace(sym) {
			return parser.StepResult{Effect: parser.EffectNone}, nil
		}
		if sym != '"' {
			return parser.StepResult{}, newError(LiteralException, "expected object key string, got %q", sym)
		}
		o.state = objAfterKey
		return parser.StepResult{Effect: parser.EffectPush, Child: newStringParser(o.alloc)}, nil

	case objAfterKey:
		// unreachable via Step: transitions out of this state happen in Accept.
		return parser.StepResult{}, newError(LiteralException, "object parser in invalid state")

	case objBeforeColon:
		switch {
		case isJSONSpace(sym):
			return parser.StepResult{Effect: parser.EffectNone}, nil
		case sym == ':':
			o.state = objBeforeValue
			return parser.StepResult{Effect: parser.EffectNone}, nil
		default:
			return parser.StepResult{}, newError(LiteralException, "expected ':' after object key, got %q", sym)
		}

	case objBeforeValue:
		if isJSONSpace(sym) {
			return parser.StepResult{Effect: parser.EffectNone}, nil
		}
		child, err := o.dispatch(sym)
		if err != nil {
			return parser.StepResult{}, err
		}
		o.state = objAfterValue
		return parser.StepResult{Effect: parser.EffectPush, Child: child}, nil

	case objAfterValue:
		switch {
		case isJSONSpace(sym):
			return parser.StepResult{Effect: parser.EffectNone}, nil
		case sym == ',':
			o.state = objBeforeKey2
			return parser.StepResult{Effect: parser.EffectNone}, nil
		case sym == '}':
			return parser.StepResult{Effect: parser.EffectPop}, nil
		default:
			return parser.StepResult{}, newError(LiteralException, "expected ',' or '}' in object, got %q", sym)
		}

	default:
		return parser.StepResult{}, newError(LiteralException, "object parser in invalid state")
	}
}

// Accept receives the completed key string or member value, distinguished
// by which state the object is in: waiting on a key (objAfterKey) or a
// value (objAfterValue having just pushed the value's sub-parser).
func (o *objectParser) Accept(value interface{}) error {
	v, _ := value.(*Value)
	if o.state == objAfterKey {
		s, err := v.String()
		if err != nil {
			return err
		}
		o.pendingKey = s
		o.alloc.Free(v)
		o.state = objBeforeColon
		return nil
	}
	// value just completed (state objAfterValue)
	return o.v.addUnique(o.pendingKey, v)
}

func (o *objectParser) Result() (interface{}, error) {
	return o.v, nil
}
