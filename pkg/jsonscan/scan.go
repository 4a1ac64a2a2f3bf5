package jsonscan

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// BytesToString casts b to a string without copying. The caller must
// guarantee b is not mutated for the lifetime of the returned string —
// used by the zero-copy (Copy=false) String mode.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// SkipWhitespace advances cursor past any run of SPACE, TAB, LF, CR.
func SkipWhitespace(buf []byte, cursor *int) {
	n := *cursor
	for n < len(buf) && isSpace(buf[n]) {
		n++
	}
	*cursor = n
}

// ExpectByte advances cursor past c, or raises a parse error.
func ExpectByte(buf []byte, cursor *int, c byte) {
	if *cursor >= len(buf) {
		raise(buf, *cursor, ErrUnexpectedEOF, "unexpected end of input")
	}
	if buf[*cursor] != c {
		raise(buf, *cursor, ErrUnexpectedByte, "expected '"+string(c)+"'")
	}
	*cursor++
}

// NextByte returns the byte at cursor and advances, or raises on EOF.
func NextByte(buf []byte, cursor *int) byte {
	if *cursor >= len(buf) {
		raise(buf, *cursor, ErrUnexpectedEOF, "unexpected end of input")
	}
	c := buf[*cursor]
	*cursor++
	return c
}

// TakeStringBytes requires a '"', scans to the matching unescaped '"',
// and returns the raw inner byte span (escapes left unresolved),
// advancing cursor past the closing quote.
func TakeStringBytes(buf []byte, cursor *int) []byte {
	ExpectByte(buf, cursor, '"')
	start := *cursor
	n := start
	for {
		if n >= len(buf) {
			raise(buf, n, ErrUnexpectedEOF, "unexpected end of string")
		}
		c := buf[n]
		if c == '"' {
			break
		}
		if c == '\\' {
			n += 2
			continue
		}
		n++
	}
	span := buf[start:n]
	*cursor = n + 1
	return span
}

// TakeKeyColon reads a JSON object key followed by ':', skipping
// surrounding whitespace, and returns the raw (unescaped) key bytes.
func TakeKeyColon(buf []byte, cursor *int) []byte {
	key := TakeStringBytes(buf, cursor)
	SkipWhitespace(buf, cursor)
	ExpectByte(buf, cursor, ':')
	SkipWhitespace(buf, cursor)
	return key
}

// DecodeBool decodes a `true` or `false` literal.
func DecodeBool(buf []byte, cursor *int) bool {
	n := *cursor
	if n+4 <= len(buf) && string(buf[n:n+4]) == "true" {
		*cursor = n + 4
		return true
	}
	if n+5 <= len(buf) && string(buf[n:n+5]) == "false" {
		*cursor = n + 5
		return false
	}
	raise(buf, n, ErrParseLiteral, "invalid boolean literal")
	return false
}

func numberExtent(buf []byte, start int) int {
	n := start
	if n < len(buf) && buf[n] == '-' {
		n++
	}
	digitsStart := n
	for n < len(buf) && buf[n] >= '0' && buf[n] <= '9' {
		n++
	}
	if n == digitsStart {
		raise(buf, start, ErrParseNumber, "invalid number")
	}
	if n < len(buf) && buf[n] == '.' {
		n++
		fracStart := n
		for n < len(buf) && buf[n] >= '0' && buf[n] <= '9' {
			n++
		}
		if n == fracStart {
			raise(buf, start, ErrParseNumber, "invalid number")
		}
	}
	if n < len(buf) && (buf[n] == 'e' || buf[n] == 'E') {
		n++
		if n < len(buf) && (buf[n] == '+' || buf[n] == '-') {
			n++
		}
		expStart := n
		for n < len(buf) && buf[n] >= '0' && buf[n] <= '9' {
			n++
		}
		if n == expStart {
			raise(buf, start, ErrParseNumber, "invalid number")
		}
	}
	return n
}

// DecodeInt64 decodes a JSON integer literal into an int64, advancing
// cursor past the consumed bytes.
func DecodeInt64(buf []byte, cursor *int) int64 {
	start := *cursor
	end := numberExtent(buf, start)
	v, err := strconv.ParseInt(BytesToString(buf[start:end]), 10, 64)
	if err != nil {
		raise(buf, start, wrap(ErrParseNumber, err), "invalid int64")
	}
	*cursor = end
	return v
}

// DecodeUint64 decodes a JSON integer literal into a uint64, advancing
// cursor past the consumed bytes.
func DecodeUint64(buf []byte, cursor *int) uint64 {
	start := *cursor
	end := numberExtent(buf, start)
	v, err := strconv.ParseUint(BytesToString(buf[start:end]), 10, 64)
	if err != nil {
		raise(buf, start, wrap(ErrParseNumber, err), "invalid uint64")
	}
	*cursor = end
	return v
}

// DecodeFloat64 decodes a JSON number literal into a float64, advancing
// cursor past the consumed bytes.
func DecodeFloat64(buf []byte, cursor *int) float64 {
	start := *cursor
	end := numberExtent(buf, start)
	v, err := strconv.ParseFloat(BytesToString(buf[start:end]), 64)
	if err != nil {
		raise(buf, start, wrap(ErrParseFloat, err), "invalid float64")
	}
	*cursor = end
	return v
}

// DecodeFloat32 decodes a JSON number literal into a float32, advancing
// cursor past the consumed bytes.
func DecodeFloat32(buf []byte, cursor *int) float32 {
	start := *cursor
	end := numberExtent(buf, start)
	v, err := strconv.ParseFloat(BytesToString(buf[start:end]), 32)
	if err != nil {
		raise(buf, start, wrap(ErrParseFloat, err), "invalid float32")
	}
	*cursor = end
	return float32(v)
}

// ValidateUTF8 raises ErrUTF8 if s is not well-formed UTF-8.
func ValidateUTF8(buf []byte, cursor int, s string) {
	if !utf8.ValidString(s) {
		raise(buf, cursor, ErrUTF8, "invalid utf-8")
	}
}

// UnquoteBytes decodes JSON escape sequences in span (the raw inner
// bytes of a string token, as returned by TakeStringBytes) and returns
// the owned decoded text. ok is false on a malformed escape.
func UnquoteBytes(span []byte) (string, bool) {
	if indexByte(span, '\\') < 0 {
		return string(span), true
	}
	out := make([]byte, 0, len(span))
	for i := 0; i < len(span); {
		c := span[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		if i+1 >= len(span) {
			return "", false
		}
		switch span[i+1] {
		case '"':
			out = append(out, '"')
			i += 2
		case '\\':
			out = append(out, '\\')
			i += 2
		case '/':
			out = append(out, '/')
			i += 2
		case 'b':
			out = append(out, '\b')
			i += 2
		case 'f':
			out = append(out, '\f')
			i += 2
		case 'n':
			out = append(out, '\n')
			i += 2
		case 'r':
			out = append(out, '\r')
			i += 2
		case 't':
			out = append(out, '\t')
			i += 2
		case 'u':
			r, n, ok := decodeUnicodeEscape(span, i)
			if !ok {
				return "", false
			}
			var buf [utf8.UTFMax]byte
			w := utf8.EncodeRune(buf[:], r)
			out = append(out, buf[:w]...)
			i += n
		default:
			return "", false
		}
	}
	return string(out), true
}

// decodeUnicodeEscape decodes a \uXXXX escape (and its surrogate pair
// continuation, if any) starting at span[i] (span[i] == '\\'). Returns
// the decoded rune, the number of bytes consumed from span, and ok.
func decodeUnicodeEscape(span []byte, i int) (rune, int, bool) {
	r1, ok := hex4(span, i+2)
	if !ok {
		return 0, 0, false
	}
	if utf16.IsSurrogate(rune(r1)) {
		if i+6 < len(span) && span[i+6] == '\\' && i+7 < len(span) && span[i+7] == 'u' {
			r2, ok := hex4(span, i+8)
			if ok {
				combined := utf16.DecodeRune(rune(r1), rune(r2))
				if combined != utf8.RuneError {
					return combined, 12, true
				}
			}
		}
		return utf8.RuneError, 6, true
	}
	return rune(r1), 6, true
}

func hex4(span []byte, i int) (uint32, bool) {
	if i+4 > len(span) {
		return 0, false
	}
	var v uint32
	for _, c := range span[i : i+4] {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		default:
			return 0, false
		}
	}
	return v, true
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// SkipValue skips over any single valid JSON value (scalar, array, or
// object, arbitrarily nested) starting at cursor.
func SkipValue(buf []byte, cursor *int) {
	SkipWhitespace(buf, cursor)
	if *cursor >= len(buf) {
		raise(buf, *cursor, ErrUnexpectedEOF, "unexpected end of input")
	}
	switch buf[*cursor] {
	case '"':
		TakeStringBytes(buf, cursor)
	case '{':
		*cursor++
		SkipWhitespace(buf, cursor)
		if *cursor < len(buf) && buf[*cursor] == '}' {
			*cursor++
			return
		}
		for {
			SkipWhitespace(buf, cursor)
			TakeKeyColon(buf, cursor)
			SkipValue(buf, cursor)
			SkipWhitespace(buf, cursor)
			c := NextByte(buf, cursor)
			if c == '}' {
				return
			}
			if c != ',' {
				raise(buf, *cursor-1, ErrUnexpectedByte, "expected ',' or '}'")
			}
		}
	case '[':
		*cursor++
		SkipWhitespace(buf, cursor)
		if *cursor < len(buf) && buf[*cursor] == ']' {
			*cursor++
			return
		}
		for {
			SkipValue(buf, cursor)
			SkipWhitespace(buf, cursor)
			c := NextByte(buf, cursor)
			if c == ']' {
				return
			}
			if c != ',' {
				raise(buf, *cursor-1, ErrUnexpectedByte, "expected ',' or ']'")
			}
			SkipWhitespace(buf, cursor)
		}
	case 't':
		expectLiteral(buf, cursor, "true")
	case 'f':
		expectLiteral(buf, cursor, "false")
	case 'n':
		expectLiteral(buf, cursor, "null")
	default:
		*cursor = numberExtent(buf, *cursor)
	}
}

func expectLiteral(buf []byte, cursor *int, lit string) {
	n := *cursor
	if n+len(lit) > len(buf) || string(buf[n:n+len(lit)]) != lit {
		raise(buf, n, ErrParseLiteral, "invalid literal")
	}
	*cursor = n + len(lit)
}

// RecoverLater is deferred at a generated entrypoint's top. It converts
// a panicked *ParseError into a returned error; any other panic value
// propagates unchanged.
func RecoverLater(errPtr *error) {
	if r := recover(); r != nil {
		if pe, ok := r.(*ParseError); ok {
			*errPtr = pe
			return
		}
		panic(r)
	}
}
