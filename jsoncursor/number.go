package jsoncursor

// eatInt reads an optionally-signed decimal integer starting at pos
// and returns its value plus the position just past it. Accumulation
// is unchecked decimal accumulation with no overflow protection,
// matching the source's pjson_eat_int: on overflow an int64 wraps
// rather than saturating or erroring, which this port reproduces
// deliberately (spec §9, open question 4).
func eatInt(buf []byte, pos int) (int64, int) {
	neg := pos < len(buf) && buf[pos] == '-'
	if pos < len(buf) && (buf[pos] == '-' || buf[pos] == '+') {
		pos++
	}
	var res int64
	for pos < len(buf) && isDigit(buf[pos]) {
		res = res*10 + int64(buf[pos]-'0')
		pos++
	}
	if neg {
		return -res, pos
	}
	return res, pos
}

// readNumber parses the JSON number token starting at pos, producing
// both an integer view (truncated toward zero) and a double view.
//
// The double view starts from the integer view and adds fractional
// digits by successive multiplication of a per-digit scale, sign taken
// from the integer view. This reproduces a documented quirk of the
// source (spec §4.D, §9 open question 3): when the integer part is
// "-0" the integer view is 0, which is not negative, so the fractional
// scale is taken as positive — "-0.5" decodes its double view as
// +0.5. This is intentionally not fixed, to stay faithful to the
// algorithm the spec describes.
//
// Exponent application multiplies or divides both views by 10 |e|
// times; negative exponents integer-divide the integer view, which
// quickly truncates it to zero.
func readNumber(buf []byte, pos int) (asInt int64, asDouble float64) {
	asInt, p := eatInt(buf, pos)
	asDouble = float64(asInt)

	if p < len(buf) && buf[p] == '.' {
		scale := 0.1
		if asInt < 0 {
			scale = -0.1
		}
		p++
		for p < len(buf) && isDigit(buf[p]) {
			asDouble += scale * float64(buf[p]-'0')
			scale /= 10
			p++
		}
	}

	if p < len(buf) && (buf[p] == 'e' || buf[p] == 'E') {
		p++
		e, _ := eatInt(buf, p)
		if e >= 0 {
			for ; e > 0; e-- {
				asDouble *= 10
				asInt *= 10
			}
		} else {
			for ; e < 0; e++ {
				asDouble /= 10
				asInt /= 10
			}
		}
	}

	return asInt, asDouble
}
