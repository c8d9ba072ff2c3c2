package json

// escapeTable maps an ASCII byte to the character that follows a backslash
// when escaping it for JSON output. 0 means the byte passes through
// unescaped; the sentinel 0x01 marks a control character with no named
// escape, which instead needs a full \u00XX sequence.
var escapeTable [256]byte

const hexDigits = "0123456789abcdef"

func init() {
	escapeTable['"'] = '"'
	escapeTable['\\'] = '\\'
	escapeTable['/'] = '/'
	escapeTable['\b'] = 'b'
	escapeTable['\f'] = 'f'
	escapeTable['\n'] = 'n'
	escapeTable['\r'] = 'r'
	escapeTable['\t'] = 't'

	for i := byte(0); i < 0x20; i++ {
		if escapeTable[i] == 0 {
			escapeTable[i] = 0x01
		}
	}
}

// appendEscapedString appends s to buf with JSON string escaping applied,
// excluding the surrounding quotes. It runs the unescaped bytes of s as a
// single append rather than byte-by-byte, only breaking the run where an
// escape is actually needed.
func appendEscapedString(buf []byte, s string) []byte {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' && c != '/' {
			continue
		}

		buf = append(buf, s[start:i]...)

		esc := escapeTable[c]
		if esc == 0x01 {
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0x0F])
		} else {
			buf = append(buf, '\\', esc)
		}
		start = i + 1
	}
	buf = append(buf, s[start:]...)
	return buf
}
