package runa

import (
	"testing"

	"github.com/npillmayer/runa/ucd"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCaseMapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	if r := ToLower('A'); r != 'a' {
		t.Errorf("(1) expected lowercase a, have %#U", r)
	}
	if r := ToLower('É'); r != 'é' {
		t.Errorf("(2) expected lowercase é, have %#U", r)
	}
	if r := ToUpper('ß'); r != 'S' {
		t.Errorf("(3) expected the first codepoint of \"SS\", have %#U", r)
	}
	if r := ToUpper(0x01C6); r != 0x01C4 {
		t.Errorf("(4) expected U+01C4 DZ with caron, have %#U", r)
	}
	if r := ToTitle(0x01C6); r != 0x01C5 {
		t.Errorf("(5) expected U+01C5 Dz with caron, have %#U", r)
	}
	if r := ToTitle('a'); r != 'A' {
		t.Errorf("(6) expected titlecase A, have %#U", r)
	}
	if r := ToUpper('1'); r != '1' {
		t.Errorf("(7) expected caseless codepoints to map to themselves, have %#U", r)
	}
}

func TestCasePredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	preds := []struct {
		r     rune
		lower bool
		upper bool
	}{
		{'a', true, false},
		{'A', false, true},
		{'1', false, false},
		{'ß', true, false},
		{0x03A3, false, true},  // capital sigma
		{0x03C2, true, false},  // final sigma
		{0x01C5, false, false}, // titlecase Dz is neither
	}
	for _, p := range preds {
		if IsLower(p.r) != p.lower {
			t.Errorf("(1) expected IsLower(%#U) to be %v", p.r, p.lower)
		}
		if IsUpper(p.r) != p.upper {
			t.Errorf("(2) expected IsUpper(%#U) to be %v", p.r, p.upper)
		}
	}
}

func TestCharWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	widths := []struct {
		r rune
		w int
	}{
		{0x0000, 0}, // NUL
		{'A', 1},
		{0x0301, 0}, // combining acute
		{0x4E2D, 2},
		{0xFF01, 2}, // fullwidth exclamation
		{0x00AD, 1}, // soft hyphen
		{0x1161, 0}, // medial jamo
		{0x200B, 0}, // zero width space
		{0x0009, 0}, // tab
		{0x1F600, 2},
		{0x2EBF0, 2}, // CJK extension I
	}
	for _, p := range widths {
		if w := CharWidth(p.r); w != p.w {
			t.Errorf("(1) expected CharWidth(%#U) = %d, have %d", p.r, p.w, w)
		}
	}
	if w := StringWidth("한국"); w != 4 {
		t.Errorf("(2) expected two Hangul syllables to span 4 columns, have %d", w)
	}
	if w := StringWidth("héy"); w != 3 {
		t.Errorf("(3) expected marks not to widen the string, have %d", w)
	}
	if w := StringWidth(""); w != 0 {
		t.Errorf("(4) expected empty string to span 0 columns, have %d", w)
	}
}

func TestCharCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	if c := Category('A'); c != ucd.Lu {
		t.Errorf("(1) expected Lu, have %s", c)
	}
	if c := Category(0x0301); c != ucd.Mn {
		t.Errorf("(2) expected Mn, have %s", c)
	}
	if c := Category(0x0378); c != ucd.Cn {
		t.Errorf("(3) expected unassigned codepoints in Cn, have %s", c)
	}
	if s := CategoryString('1'); s != "Nd" {
		t.Errorf("(4) expected \"Nd\", have %q", s)
	}
	if p := Property('A'); p == nil || p.Category() != ucd.Lu {
		t.Errorf("(5) expected a property record for 'A'")
	}
	if UnicodeVersion != "15.1.0" {
		t.Errorf("(6) expected character data of Unicode 15.1.0, have %s", UnicodeVersion)
	}
}
