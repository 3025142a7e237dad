package jsoncursor

// compareCursorString performs a three-way comparison between the
// decoded value at (buf, pos, tag) and s, additionally reporting the
// buffer position immediately after the compared token so callers
// like MoveKey can continue scanning without re-skipping.
//
// For STRING/PAIR cursors, the comparison decodes escapes via
// decodeStringChar and compares byte by byte; the shorter side is
// treated as less, matching string_compare's contract (spec §4.H).
// For any other non-INVALID tag, the cursor's raw value text is
// compared byte by byte against s up to either end. INVALID yields -1.
func compareCursorString(buf []byte, pos int, tag Tag, s string, depth int) (diff int, tokenEnd int) {
	if tag == Invalid {
		return -1, pos
	}
	if tag != String && tag != Pair {
		end, ok := skipVal(buf, pos, false, depth)
		if !ok {
			return -1, end
		}
		p := pos
		si := 0
		for p != end && si < len(s) && s[si] == buf[p] {
			p++
			si++
		}
		var left int
		if p != end {
			left = int(buf[p])
		}
		var right int
		if si < len(s) {
			right = int(s[si])
		}
		return left - right, end
	}

	p := pos
	if p >= len(buf) || buf[p] != '"' {
		return -1, p
	}
	p++

	si := 0
	for {
		ch, read := decodeStringChar(buf, p)
		if read == 0 {
			if si < len(s) {
				diff = -int(s[si])
			} else {
				diff = 0
			}
			break
		}
		p += read

		mismatched := false
		for i := 0; i < ch.len; i++ {
			if si >= len(s) {
				diff = int(ch.b[i])
				mismatched = true
				break
			}
			diff = int(ch.b[i]) - int(s[si])
			si++
			if diff != 0 {
				mismatched = true
				break
			}
		}
		if mismatched {
			end, _ := skipStringContent(buf, p)
			p = end
			break
		}
		if si >= len(s) {
			// s is fully consumed; peek one more char to see whether the
			// cursor's string keeps going (making it the longer side).
			next, nextRead := decodeStringChar(buf, p)
			if nextRead == 0 {
				break
			}
			diff = int(next.b[0])
			end, _ := skipStringContent(buf, p)
			p = end
			break
		}
	}

	if p < len(buf) && buf[p] == '"' {
		p++
	}
	return diff, p
}
