package paneltext

// DecodeUTF8 decodes the first codepoint of b and returns its scalar
// value. It returns 0 when b is empty, the lead byte is malformed, a
// continuation byte is missing or lacks the 10xxxxxx pattern, the encoding
// is overlong, or a 3-byte sequence encodes a UTF-16 surrogate. Callers
// must treat 0 as "invalid or absent", not as U+0000.
//
// 4-byte sequences are not checked against the 0x10FFFF Unicode upper
// bound; a structurally valid sequence above it decodes to its raw value.
func DecodeUTF8(b []byte) rune {
	if len(b) == 0 {
		return 0
	}
	lead := b[0]
	switch {
	case lead&0x80 == 0x00:
		return rune(lead)
	case lead&0xE0 == 0xC0:
		if len(b) < 2 || b[1]&0xC0 != 0x80 {
			return 0
		}
		cp := rune(lead&0x1F)<<6 | rune(b[1]&0x3F)
		if cp < 0x80 {
			// Overlong: value fits in one byte.
			return 0
		}
		return cp
	case lead&0xF0 == 0xE0:
		if len(b) < 3 || b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 {
			return 0
		}
		cp := rune(lead&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if cp < 0x800 || (cp >= 0xD800 && cp <= 0xDFFF) {
			// Overlong or UTF-16 surrogate.
			return 0
		}
		return cp
	case lead&0xF8 == 0xF0:
		if len(b) < 4 || b[1]&0xC0 != 0x80 || b[2]&0xC0 != 0x80 || b[3]&0xC0 != 0x80 {
			return 0
		}
		return rune(lead&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
	default:
		return 0
	}
}

// DecodeUTF8String decodes the first codepoint of s. See [DecodeUTF8].
func DecodeUTF8String(s string) rune {
	return DecodeUTF8([]byte(s))
}
