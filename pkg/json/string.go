package json

import (
	"strings"
	"unicode/utf16"

	"github.com/shapestone/jsondom/internal/parser"
)

const (
	strBeforeOpen = iota
	strInChars
	strEscape
	strUnicode1
	strUnicode2
	strUnicode3
	strUnicode4
	strUnicodeLowSlash
	strUnicodeLowU
	strUnicodeLow1
	strUnicodeLow2
	strUnicodeLow3
	strUnicodeLow4
)

// isStringChar reports whether r may appear unescaped in a JSON string:
// 0x20, 0x21, 0x23-0x5B, and 0x5D and above (excluding '"' 0x22 and '\' 0x5C,
// both handled separately, and excluding control characters below 0x20).
func isStringChar(r rune) bool {
	if r < 0x20 {
		return false
	}
	if r == '"' || r == '\\' {
		return false
	}
	return true
}

type stringParser struct {
	state int
	buf   strings.Builder

	hex      uint16
	hexDigit int
	high     uint16 // pending high surrogate, 0 when none pending

	alloc Allocator
}

func newStringParser(alloc Allocator) *stringParser {
	return &stringParser{alloc: alloc}
}

var escapeDecode = map[rune]rune{
	'"': '"', '\\': '\\', '/': '/',
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
}

func hexValue(r rune) (uint16, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint16(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint16(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint16(r-'A') + 10, true
	default:
		return 0, false
	}
}

func (s *stringParser) Step(sym rune) (parser.StepResult, error) {
	switch s.state {
	case strBeforeOpen:
		if sym != '"' {
			return parser.StepResult{}, newError(InvalidStartingSymbol, "expected '\"' to start a string, got %q", sym)
		}
		s.state = strInChars
		return parser.StepResult{Effect: parser.EffectNone}, nil

	case strInChars:
		switch {
		case sym == parser.End:
			return parser.StepResult{}, newError(ParsingIncomplete, "unterminated string")
		case sym == '"':
			return parser.StepResult{Effect: parser.EffectPop}, nil
		case sym == '\\':
			s.state = strEscape
			return parser.StepResult{Effect: parser.EffectNone}, nil
		case isStringChar(sym):
			s.buf.WriteRune(sym)
			return parser.StepResult{Effect: parser.EffectNone}, nil
		default:
			return parser.StepResult{}, newError(LiteralException, "disallowed character %q in string", sym)
		}

	case strEscape:
		if sym == 'u' {
			s.state = strUnicode1
			s.hex, s.hexDigit = 0, 0
			return parser.StepResult{Effect: parser.EffectNone}, nil
		}
		decoded, ok := escapeDecode[sym]
		if !ok {
			return parser.StepResult{}, newError(LiteralException, "invalid escape \\%c", sym)
		}
		if s.high != 0 {
			s.flushLoneSurrogate()
		}
		s.buf.WriteRune(decoded)
		s.state = strInChars
		return parser.StepResult{Effect: parser.EffectNone}, nil

	case strUnicode1, strUnicode2, strUnicode3, strUnicode4:
		return s.stepHex(sym, false)

	case strUnicodeLowSlash:
		if sym != '\\' {
			s.flushLoneSurrogate()
			return s.reinterpretAsOrdinary(sym)
		}
		s.state = strUnicodeLowU
		return parser.StepResult{Effect: parser.EffectNone}, nil

	case strUnicodeLowU:
		if sym != 'u' {
			return parser.StepResult{}, newError(LiteralException, "expected \\u after high surrogate, got \\%c", sym)
		}
		s.state = strUnicodeLow1
		s.hex, s.hexDigit = 0, 0
		return parser.StepResult{Effect: parser.EffectNone}, nil

	case strUnicodeLow1, strUnicodeLow2, strUnicodeLow3, strUnicodeLow4:
		return s.stepHex(sym, true)

	default:
		return parser.StepResult{}, newError(LiteralException, "string parser in invalid state")
	}
}

// stepHex consumes one hex digit of a \uXXXX escape. low distinguishes the
// low-surrogate half of a pair from a lead \uXXXX.
func (s *stringParser) stepHex(sym rune, low bool) (parser.StepResult, error) {
	d, ok := hexValue(sym)
	if !ok {
		return parser.StepResult{}, newError(LiteralException, "invalid hex digit %q in \\u escape", sym)
	}
	s.hex = s.hex<<4 | d
	s.hexDigit++
	if s.hexDigit < 4 {
		s.state++
		return parser.StepResult{Effect: parser.EffectNone}, nil
	}

	if low {
		r := utf16.DecodeRune(rune(s.high), rune(s.hex))
		s.buf.WriteRune(r)
		s.high = 0
		s.state = strInChars
		return parser.StepResult{Effect: parser.EffectNone}, nil
	}

	if utf16.IsSurrogate(rune(s.hex)) && s.hex >= 0xD800 && s.hex <= 0xDBFF {
		s.high = s.hex
		s.state = strUnicodeLowSlash
		return parser.StepResult{Effect: parser.EffectNone}, nil
	}
	s.buf.WriteRune(rune(s.hex))
	s.state = strInChars
	return parser.StepResult{Effect: parser.EffectNone}, nil
}

// flushLoneSurrogate emits the replacement character for a high surrogate
// that was never followed by a matching low surrogate escape.
func (s *stringParser) flushLoneSurrogate() {
	s.buf.WriteRune('�')
	s.high = 0
}

// reinterpretAsOrdinary re-enters strInChars/strEscape handling for a
// symbol that turned out not to begin the expected low-surrogate escape.
func (s *stringParser) reinterpretAsOrdinary(sym rune) (parser.StepResult, error) {
	s.state = strInChars
	return s.Step(sym)
}

func (s *stringParser) Result() (interface{}, error) {
	if s.high != 0 {
		s.flushLoneSurrogate()
	}
	v := s.alloc.Alloc()
	v.initString(s.buf.String())
	return v, nil
}
