package jsoncursor

// MoveKey looks up key in cursor's object and returns a classified
// cursor at the associated value, or INVALID if cursor is not an
// OBJECT, the key is absent, or the object is malformed. Deterministic
// regardless of extra whitespace between tokens.
func (c Cursor) MoveKey(key string) Cursor {
	if c.tag != Object {
		return c.invalid()
	}
	depth := c.depth()
	p := c.pos + 1 // skip '{'
	for {
		p = skipSpaces(c.buf, p)
		if p >= len(c.buf) || c.buf[p] == '}' {
			return c.invalid()
		}

		keyCur := classify(c.buf, p, c.maxDepth)
		diff, tokenEnd := compareCursorString(c.buf, keyCur.pos, keyCur.tag, key, depth)
		p = tokenEnd

		if diff == 0 {
			p = skipSpaces(c.buf, p)
			if p >= len(c.buf) || c.buf[p] != ':' {
				return c.invalid()
			}
			p++
			return classify(c.buf, p, c.maxDepth)
		}

		p = skipSpaces(c.buf, p)
		if p >= len(c.buf) || c.buf[p] != ':' {
			return c.invalid()
		}
		p++
		p = skipSpaces(c.buf, p)
		var ok bool
		p, ok = skipVal(c.buf, p, false, depth)
		if !ok {
			return c.invalid()
		}
		p = skipSpaces(c.buf, p)
		if p < len(c.buf) && c.buf[p] == ',' {
			p++
		}
	}
}

// MoveIndex moves to the i-th element of an ARRAY, or the i-th
// key/value pair of an OBJECT (as a PAIR cursor). Returns INVALID if
// the container ends first, a parse error occurs, or cursor is
// neither ARRAY nor OBJECT.
func (c Cursor) MoveIndex(index int) Cursor {
	if c.tag != Array && c.tag != Object {
		return c.invalid()
	}
	depth := c.depth()
	closer := byte('}')
	if c.tag == Array {
		closer = ']'
	}

	p := c.pos + 1 // skip '{' or '['
	i := 0
	for p < len(c.buf) && i != index && c.buf[p] != closer {
		p = skipSpaces(c.buf, p)
		var ok bool
		p, ok = skipVal(c.buf, p, c.tag == Object, depth)
		if !ok {
			return c.invalid()
		}
		p = skipSpaces(c.buf, p)
		if p < len(c.buf) && c.buf[p] == ',' {
			p++
		}
		i++
	}

	if i != index {
		return c.invalid()
	}
	if c.tag == Object {
		return makePairCursor(c.buf, p, c.maxDepth)
	}
	return classify(c.buf, p, c.maxDepth)
}

// MoveNext skips the current value (or, for a PAIR cursor, the
// current key/value pair) and returns a cursor of the same kind at
// whatever follows a comma. A trailing close-delimiter — or any other
// structural problem — yields INVALID, which is how iteration over an
// array or object terminates.
func (c Cursor) MoveNext() Cursor {
	if c.tag == Invalid {
		return c.invalid()
	}
	depth := c.depth()
	p, ok := skipVal(c.buf, c.pos, c.tag == Pair, depth)
	if !ok {
		return c.invalid()
	}
	p = skipSpaces(c.buf, p)
	if p >= len(c.buf) || c.buf[p] != ',' {
		return c.invalid()
	}
	p++
	if c.tag == Pair {
		return makePairCursor(c.buf, p, c.maxDepth)
	}
	return classify(c.buf, p, c.maxDepth)
}

// MovePairValue reads past a PAIR cursor's key and colon and returns a
// classified cursor at the value. Defined only on PAIR; any other tag
// yields INVALID.
func (c Cursor) MovePairValue() Cursor {
	if c.tag != Pair {
		return c.invalid()
	}
	p, ok := skipVal(c.buf, c.pos, false, c.depth())
	if !ok {
		return c.invalid()
	}
	p = skipSpaces(c.buf, p)
	if p >= len(c.buf) || c.buf[p] != ':' {
		return c.invalid()
	}
	p++
	return classify(c.buf, p, c.maxDepth)
}
