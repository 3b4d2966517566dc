package uricodec

// Fast rune encoding for common Unicode cases
func encodeRune(buf []byte, r rune) int {
	if r < 0x80 {
		buf[0] = byte(r)
		return 1
	}

	if r < 0x800 {
		buf[0] = byte(0xC0 | r>>6)
		buf[1] = byte(0x80 | r&0x3F)
		return 2
	}

	if r < 0x10000 {
		buf[0] = byte(0xE0 | r>>12)
		buf[1] = byte(0x80 | (r>>6)&0x3F)
		buf[2] = byte(0x80 | r&0x3F)
		return 3
	}

	buf[0] = byte(0xF0 | r>>18)
	buf[1] = byte(0x80 | (r>>12)&0x3F)
	buf[2] = byte(0x80 | (r>>6)&0x3F)
	buf[3] = byte(0x80 | r&0x3F)
	return 4
}

// Strict rune decoding. Never substitutes U+FFFD: truncated, overlong,
// surrogate and out-of-range sequences all report ok=false so callers
// can reject the input instead of silently mangling it.
func decodeRune(s string) (rune, int, bool) {
	if len(s) == 0 {
		return 0, 0, false
	}

	b0 := s[0]
	if b0 < 0x80 {
		return rune(b0), 1, true
	}

	if b0 < 0xC2 {
		// Continuation byte without a lead, or an overlong 2-byte lead
		return 0, 1, false
	}

	if b0 < 0xE0 { // 2-byte sequence
		if len(s) < 2 || s[1]&0xC0 != 0x80 {
			return 0, 1, false
		}
		return rune(b0&0x1F)<<6 | rune(s[1]&0x3F), 2, true
	}

	if b0 < 0xF0 { // 3-byte sequence
		if len(s) < 3 || s[1]&0xC0 != 0x80 || s[2]&0xC0 != 0x80 {
			return 0, 1, false
		}
		r := rune(b0&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F)
		if r < 0x800 || (0xD800 <= r && r <= 0xDFFF) {
			// Overlong encoding or UTF-16 surrogate half
			return 0, 1, false
		}
		return r, 3, true
	}

	if b0 < 0xF5 { // 4-byte sequence
		if len(s) < 4 || s[1]&0xC0 != 0x80 || s[2]&0xC0 != 0x80 || s[3]&0xC0 != 0x80 {
			return 0, 1, false
		}
		r := rune(b0&0x07)<<18 | rune(s[1]&0x3F)<<12 | rune(s[2]&0x3F)<<6 | rune(s[3]&0x3F)
		if r < 0x10000 || r > 0x10FFFF {
			return 0, 1, false
		}
		return r, 4, true
	}

	return 0, 1, false
}
