package jsoncursor

// Int extracts an integer value. NULL yields 0, BOOLEAN yields 1 or 0,
// INTEGER and DOUBLE yield the number's truncated integer view. Any
// other tag returns (0, false).
func (c Cursor) Int() (int64, bool) {
	switch c.tag {
	case Null:
		return 0, true
	case Boolean:
		if c.IsTrue() {
			return 1, true
		}
		return 0, true
	case Integer, Double:
		asInt, _ := readNumber(c.buf, c.pos)
		return asInt, true
	default:
		return 0, false
	}
}

// Double extracts a floating-point value. Only defined for INTEGER
// and DOUBLE; any other tag returns (0, false).
func (c Cursor) Double() (float64, bool) {
	if c.tag != Integer && c.tag != Double {
		return 0, false
	}
	_, asDouble := readNumber(c.buf, c.pos)
	return asDouble, true
}

// Raw returns the exact slice of the original buffer spanning this
// cursor's value — the complete value text, including surrounding
// quotes or brackets for STRING/OBJECT/ARRAY. The returned slice
// aliases the input buffer; it is not a copy. Returns (nil, false) on
// INVALID or on a structural parse error while skipping the value.
func (c Cursor) Raw() ([]byte, bool) {
	if c.tag == Invalid {
		return nil, false
	}
	end, ok := skipVal(c.buf, c.pos, false, c.depth())
	if !ok {
		return nil, false
	}
	return c.buf[c.pos:end], true
}

// RawCopy copies this cursor's raw value text into dst, truncating to
// len(dst) if necessary, and returns the true (untruncated) length of
// the value plus whether the underlying Raw succeeded. dst must not
// alias the cursor's backing buffer.
func (c Cursor) RawCopy(dst []byte) (realLen int, ok bool) {
	raw, ok := c.Raw()
	if !ok {
		return 0, false
	}
	copy(dst, raw)
	return len(raw), true
}

// String decodes this cursor's string contents (unescaping \uXXXX and
// other escapes) into dst, truncating to len(dst) if necessary, and
// returns the true decoded length regardless of truncation. For any
// tag other than STRING or PAIR, this degrades to RawCopy. dst must
// not alias the cursor's backing buffer.
func (c Cursor) String(dst []byte) (realLen int, ok bool) {
	if c.tag != String && c.tag != Pair {
		return c.RawCopy(dst)
	}
	if c.pos >= len(c.buf) || c.buf[c.pos] != '"' {
		return 0, false
	}
	p := c.pos + 1
	written := 0
	for {
		ch, read := decodeStringChar(c.buf, p)
		if read == 0 {
			break
		}
		p += read
		for i := 0; i < ch.len; i++ {
			if written < len(dst) {
				dst[written] = ch.b[i]
			}
			written++
		}
		realLen += ch.len
	}
	return realLen, true
}

// ArrayCount counts the elements of an ARRAY, or the key/value pairs
// of an OBJECT, by repeated MoveIndex(0)/MoveNext calls. Any other tag
// returns 0. This is O(n) moves, each itself O(k) in the size of the
// element being skipped — not O(n) overall for large containers.
func (c Cursor) ArrayCount() int {
	if c.tag != Array && c.tag != Object {
		return 0
	}
	count := 0
	cur := c.MoveIndex(0)
	for cur.tag != Invalid {
		count++
		cur = cur.MoveNext()
	}
	return count
}

// StringCompare performs a three-way comparison between this cursor's
// value and s: negative if the cursor's value sorts before s, zero if
// equal, positive if after. For STRING/PAIR this compares the decoded
// string; for other non-INVALID tags it compares the raw value text.
// INVALID always compares as -1.
func (c Cursor) StringCompare(s string) int {
	diff, _ := compareCursorString(c.buf, c.pos, c.tag, s, c.depth())
	return diff
}
