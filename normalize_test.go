package runa

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeCompose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	buf := []rune{'e', 0x0301}
	n, err := Normalize(buf, NFCOptions)
	if err != nil || n != 1 || buf[0] != 0x00E9 {
		t.Errorf("(1) expected e + U+0301 to compose to é, have %#U, n=%d, err=%v", buf[0], n, err)
	}
	// No pair exists for q with dots; the buffer stays put.
	buf = []rune{'q', 0x0323, 0x0307}
	n, err = Normalize(buf, NFCOptions)
	if err != nil || n != 3 {
		t.Errorf("(2) expected q with dots to stay decomposed, have n=%d, err=%v", n, err)
	}
	// Composition continues on the composite: a + dot below + acute
	// becomes ạ with the acute left over.
	buf = []rune{'a', 0x0323, 0x0301}
	n, err = Normalize(buf, NFCOptions)
	if err != nil || n != 2 || buf[0] != 0x1EA1 || buf[1] != 0x0301 {
		t.Errorf("(3) expected U+1EA1 + U+0301, have %#U + %#U, n=%d", buf[0], buf[1], n)
	}
}

func TestNormalizeBlockedComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	// U+0484 has combining class 230 like the acute; once it is written
	// out, the acute is blocked from reaching the starter.
	buf := []rune{'a', 0x0484, 0x0301}
	n, err := Normalize(buf, NFCOptions)
	if err != nil || n != 3 {
		t.Fatalf("(1) expected blocked composition to keep 3 codepoints, have n=%d, err=%v", n, err)
	}
	if buf[0] != 'a' || buf[1] != 0x0484 || buf[2] != 0x0301 {
		t.Errorf("(2) expected a U+0484 U+0301, have %#U %#U %#U", buf[0], buf[1], buf[2])
	}
	// A mark of lower class in between does not block: the acute
	// (class 230) still reaches the starter across the grave below
	// (class 220), which has no pair of its own.
	buf = []rune{'a', 0x0316, 0x0301}
	n, err = Normalize(buf, NFCOptions)
	if err != nil || n != 2 || buf[0] != 0x00E1 || buf[1] != 0x0316 {
		t.Errorf("(3) expected U+00E1 + U+0316, have %#U + %#U, n=%d", buf[0], buf[1], n)
	}
}

func TestNormalizeHangul(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	buf := []rune{0x1100, 0x1161, 0x11A8}
	n, err := Normalize(buf, NFCOptions)
	if err != nil || n != 1 || buf[0] != 0xAC01 {
		t.Errorf("(1) expected L+V+T to compose to U+AC01, have %#U, n=%d, err=%v", buf[0], n, err)
	}
	buf = []rune{0x1100, 0x1161}
	n, err = Normalize(buf, NFCOptions)
	if err != nil || n != 1 || buf[0] != 0xAC00 {
		t.Errorf("(2) expected L+V to compose to U+AC00, have %#U, n=%d", buf[0], n)
	}
	buf = []rune{0xAC00, 0x11A8}
	n, err = Normalize(buf, NFCOptions)
	if err != nil || n != 1 || buf[0] != 0xAC01 {
		t.Errorf("(3) expected LV+T to compose to U+AC01, have %#U, n=%d", buf[0], n)
	}
	// A trailing consonant cannot join an LVT syllable.
	buf = []rune{0xAC01, 0x11A8}
	n, err = Normalize(buf, NFCOptions)
	if err != nil || n != 2 {
		t.Errorf("(4) expected LVT+T to stay apart, have n=%d", n)
	}
}

func TestNormalizeExclusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	// U+0958 QA is a composition exclusion: the stable form keeps it
	// decomposed, the unrestricted form recomposes it.
	buf := []rune{0x0915, 0x093C}
	n, err := Normalize(buf, Composing|Stable)
	if err != nil || n != 2 {
		t.Errorf("(1) expected the exclusion to stay decomposed under Stable, have n=%d, err=%v", n, err)
	}
	buf = []rune{0x0915, 0x093C}
	n, err = Normalize(buf, Composing)
	if err != nil || n != 1 || buf[0] != 0x0958 {
		t.Errorf("(2) expected U+0958 without Stable, have %#U, n=%d", buf[0], n)
	}
}

func TestNormalizeNewlines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	nl := func(opts Options, in ...rune) []rune {
		buf := append([]rune{}, in...)
		n, err := Normalize(buf, opts)
		if err != nil {
			t.Fatalf("cannot normalize %q: %v", string(in), err)
		}
		return buf[:n]
	}
	if got := nl(NLF2LF, 'a', 0x000D, 0x000A, 'b'); string(got) != "a\nb" {
		t.Errorf("(1) expected CRLF to become a single LF, have %q", string(got))
	}
	if got := nl(NLF2LF, 'a', 0x000D, 'b', 0x0085, 'c'); string(got) != "a\nb\nc" {
		t.Errorf("(2) expected CR and NEL to become LF, have %q", string(got))
	}
	if got := nl(NLF2LS, 'a', 0x000A, 'b'); string(got) != "a\u2028b" {
		t.Errorf("(3) expected LF to become LINE SEPARATOR, have %q", string(got))
	}
	if got := nl(NLF2PS, 'a', 0x000D, 0x000A, 'b'); string(got) != "a\u2029b" {
		t.Errorf("(4) expected CRLF to become PARAGRAPH SEPARATOR, have %q", string(got))
	}
	// Without an NLF target, StripCC turns newline functions into
	// spaces, and VT and FF count as newline functions.
	if got := nl(StripCC, 'a', 0x000A, 0x000B, 0x000C, 'b'); string(got) != "a   b" {
		t.Errorf("(5) expected newline functions to become spaces, have %q", string(got))
	}
}

func TestNormalizeStripCC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	buf := []rune{'a', 0x0009, 'b', 0x007F, 0x0001, 'c'}
	n, err := Normalize(buf, StripCC)
	if err != nil || string(buf[:n]) != "a bc" {
		t.Errorf("(1) expected tab to become space and controls to vanish, have %q, err=%v", string(buf[:n]), err)
	}
	buf = []rune{'a', 0x000D, 0x000A, 'b', 0x0000, 'c'}
	n, err = Normalize(buf, StripCC|NLF2LF)
	if err != nil || string(buf[:n]) != "a\nbc" {
		t.Errorf("(2) expected CRLF to become LF and NUL to vanish, have %q, err=%v", string(buf[:n]), err)
	}
}

func TestNormalizeNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	buf := []rune{'e', 0x0301}
	n, err := Normalize(buf, 0)
	if err != nil || n != 2 || buf[0] != 'e' || buf[1] != 0x0301 {
		t.Errorf("(1) expected no-option normalization to keep the buffer, have n=%d, err=%v", n, err)
	}
}

func TestReencode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	out, err := Reencode([]rune{'e', 0x0301}, 0)
	if err != nil || !bytes.Equal(out, []byte("e\u0301")) {
		t.Errorf("(1) expected UTF-8 re-encoding, have % x, err=%v", out, err)
	}
	out, err = Reencode([]rune{'e', 0x0301}, NFCOptions)
	if err != nil || !bytes.Equal(out, []byte("\u00e9")) {
		t.Errorf("(2) expected composed re-encoding, have % x, err=%v", out, err)
	}
	out, err = Reencode([]rune{-1, 'a', -1, 'b'}, CharBound)
	if err != nil || !bytes.Equal(out, []byte{0xFF, 'a', 0xFF, 'b'}) {
		t.Errorf("(3) expected 0xFF cluster markers, have % x, err=%v", out, err)
	}
	if _, err = Reencode([]rune{-1, 'a'}, 0); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("(4) expected markers without CharBound to be invalid, have %v", err)
	}
	if _, err = Reencode([]rune{0xD800}, 0); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("(5) expected surrogate halves to be invalid, have %v", err)
	}
}
