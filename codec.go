package runa

import "unicode/utf8"

// ValidRune reports whether r is a Unicode scalar value, i.e. within
// codespace and not a surrogate half.
func ValidRune(r rune) bool {
	return r >= 0 && r < 0xD800 || r > 0xDFFF && r <= 0x10FFFF
}

// DecodeRune decodes the first codepoint of UTF-8 input p and returns
// it together with the number of bytes consumed. Malformed input is an
// error here, unlike with utf8.DecodeRune: overlong forms, surrogate
// halves, stray continuation bytes and sequences truncated by the end
// of input all report ErrInvalidUTF8. An empty p is malformed, too.
func DecodeRune(p []byte) (rune, int, error) {
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidUTF8
	}
	return r, size, nil
}

// EncodeRune writes the UTF-8 encoding of r into p, which must have
// room for utf8.RuneLen(r) bytes, and returns the number of bytes
// written. Surrogate halves and out-of-range codepoints report
// ErrInvalidUTF8.
func EncodeRune(p []byte, r rune) (int, error) {
	if !ValidRune(r) {
		return 0, ErrInvalidUTF8
	}
	return utf8.EncodeRune(p, r), nil
}

// Under CharBound, the rune buffer carries -1 markers in front of each
// cluster. Encoding maps them to the byte 0xFF, which cannot occur in
// well-formed UTF-8.

func markedRuneLen(r rune) int {
	if r == -1 {
		return 1
	}
	return utf8.RuneLen(r)
}

func encodeMarkedRune(p []byte, r rune) int {
	if r == -1 {
		p[0] = 0xFF
		return 1
	}
	return utf8.EncodeRune(p, r)
}
