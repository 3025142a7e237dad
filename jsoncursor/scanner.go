package jsoncursor

// isWhitespace matches the source's JSONGET_IS_WHITESPACE set: space,
// tab, CR, LF, backspace, form feed.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\b', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// hexVal returns the value of a hex digit and true, or 0 and false if
// b is not one.
func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	}
	return 0, false
}

// skipSpaces advances pos past any run of whitespace.
func skipSpaces(buf []byte, pos int) int {
	for pos < len(buf) && isWhitespace(buf[pos]) {
		pos++
	}
	return pos
}

// skipWord advances pos past word if buf matches it exactly starting
// at pos, returning the new position and true. If buf does not fully
// match word (including running out of input), it returns the
// original position and false — callers must not assume any bytes
// were consumed on failure.
func skipWord(buf []byte, pos int, word string) (int, bool) {
	p := pos
	for i := 0; i < len(word); i++ {
		if p >= len(buf) || buf[p] != word[i] {
			return pos, false
		}
		p++
	}
	return p, true
}
