// Package parser implements a small generic pushdown automaton: a
// character-at-a-time driver over a stack of sub-parsers, each a finite
// state machine built from ordered (predicate, action, next-state) rows.
//
// The package has no knowledge of JSON. pkg/json supplies the concrete
// sub-parsers (literal, string, number, array, object) and wires them
// together through the Machine defined here.
package parser

// Effect describes how a sub-parser's Step call changes the driver's stack.
type Effect int

const (
	// EffectNone means the symbol was consumed and the sub-parser stays on top.
	EffectNone Effect = iota
	// EffectPush means a new sub-parser must be pushed and fed the same symbol.
	EffectPush
	// EffectPop means the sub-parser is done; its result is delivered to the
	// parent (or recorded as a top-level result), and the symbol was consumed.
	EffectPop
	// EffectPopRefeed is EffectPop except the symbol was NOT consumed by the
	// popped sub-parser and must be re-delivered to the newly revealed top
	// of the stack. Number uses this: the character that ends a number
	// (',', ']', '}', or End) belongs to the parent, not to the number.
	EffectPopRefeed
)

// StepResult is returned by SubParser.Step for every fed symbol.
type StepResult struct {
	Effect Effect
	Child  SubParser // set only when Effect == EffectPush
}

// SubParser is a single state machine operating over runes fed one at a
// time by a Machine. The End pseudo-rune is fed once after the last real
// rune of input so a sub-parser can finalize (e.g. a bare number at EOF).
type SubParser interface {
	Step(sym rune) (StepResult, error)
}

// Completer is implemented by sub-parsers that produce a value once popped.
type Completer interface {
	Result() (interface{}, error)
}

// Receiver is implemented by sub-parsers that accept a child's completed
// value: Array appends it, Object stores it under the pending key.
type Receiver interface {
	Accept(value interface{}) error
}

// End is the pseudo-symbol signaling end of input.
const End rune = -1

// Factory builds the sub-parser responsible for the value starting with sym.
type Factory func(sym rune) (SubParser, error)

// Machine drives a stack of SubParsers from a stream of runes.
type Machine struct {
	stack   []SubParser
	factory Factory
	results []interface{}
}

// NewMachine creates a Machine whose top-level values are produced by factory.
func NewMachine(factory Factory) *Machine {
	return &Machine{factory: factory}
}

// Feed delivers a single symbol (a rune, or End) to the machine.
func (m *Machine) Feed(sym rune) error {
	for {
		if len(m.stack) == 0 && sym == End {
			// Clean end of input between (or after) top-level values.
			return nil
		}
		if len(m.stack) == 0 {
			sp, err := m.factory(sym)
			if err != nil {
				return err
			}
			if sp == nil {
				// The factory consumed sym without starting a value, e.g. to
				// skip whitespace between top-level values.
				return nil
			}
			m.stack = append(m.stack, sp)
			continue
		}

		top := m.stack[len(m.stack)-1]
		res, err := top.Step(sym)
		if err != nil {
			return err
		}

		switch res.Effect {
		case EffectNone:
			return nil

		case EffectPush:
			m.stack = append(m.stack, res.Child)
			continue

		case EffectPop, EffectPopRefeed:
			var value interface{}
			if c, ok := top.(Completer); ok {
				if value, err = c.Result(); err != nil {
					return err
				}
			}
			m.stack = m.stack[:len(m.stack)-1]
			if len(m.stack) > 0 {
				if r, ok := m.stack[len(m.stack)-1].(Receiver); ok {
					if err := r.Accept(value); err != nil {
						return err
					}
				}
			} else {
				m.results = append(m.results, value)
			}
			if res.Effect == EffectPopRefeed {
				continue
			}
			return nil

		default:
			return nil
		}
	}
}

// Depth reports the current sub-parser stack depth. Between top-level
// values it is 0; a value still under construction leaves it above 0.
func (m *Machine) Depth() int { return len(m.stack) }

// Results returns every top-level value produced so far, in order.
func (m *Machine) Results() []interface{} { return m.results }
