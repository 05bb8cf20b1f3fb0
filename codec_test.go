package runa

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestValidRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	valid := []rune{0, 'A', 0xD7FF, 0xE000, 0xFFFD, 0x10FFFF}
	for _, r := range valid {
		if !ValidRune(r) {
			t.Errorf("(1) expected %#U to be a scalar value", r)
		}
	}
	invalid := []rune{-1, 0xD800, 0xDC00, 0xDFFF, 0x110000}
	for _, r := range invalid {
		if ValidRune(r) {
			t.Errorf("(2) expected %#U to be rejected", r)
		}
	}
}

func TestDecodeRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	r, size, err := DecodeRune([]byte("é!"))
	if err != nil || r != 0x00E9 || size != 2 {
		t.Errorf("(1) expected é in 2 bytes, have %#U in %d, err=%v", r, size, err)
	}
	r, size, err = DecodeRune([]byte("😀"))
	if err != nil || r != 0x1F600 || size != 4 {
		t.Errorf("(2) expected U+1F600 in 4 bytes, have %#U in %d, err=%v", r, size, err)
	}
	malformed := [][]byte{
		nil,
		{0x80},             // stray continuation byte
		{0xC3},             // truncated
		{0xC0, 0xAF},       // overlong
		{0xED, 0xA0, 0x80}, // surrogate half
	}
	for i, p := range malformed {
		if _, _, err := DecodeRune(p); !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("(3) case %d: expected ErrInvalidUTF8, have %v", i, err)
		}
	}
}

func TestEncodeRune(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	buf := make([]byte, 4)
	n, err := EncodeRune(buf, 0x00E9)
	if err != nil || n != 2 || string(buf[:n]) != "é" {
		t.Errorf("(1) expected é in 2 bytes, have %q, err=%v", string(buf[:n]), err)
	}
	if _, err := EncodeRune(buf, 0xD800); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("(2) expected surrogate halves to be rejected, have %v", err)
	}
	if _, err := EncodeRune(buf, 0x110000); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("(3) expected out-of-range codepoints to be rejected, have %v", err)
	}
}
