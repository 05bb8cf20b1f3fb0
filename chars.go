package runa

import "github.com/npillmayer/runa/ucd"

// UnicodeVersion is the version of the Unicode Character Database the
// property data derives from.
const UnicodeVersion = ucd.UnicodeVersion

// Property returns the property record of a codepoint. The record
// carries everything the pipeline knows about it; see the accessors of
// ucd.CharProperty. Unassigned and out-of-range codepoints yield a
// sentinel record with category Cn.
func Property(r rune) *ucd.CharProperty {
	return ucd.Lookup(r)
}

// Category returns the general category of a codepoint.
func Category(r rune) ucd.Category {
	return ucd.Lookup(r).Category()
}

// CategoryString returns the two-letter abbreviation of the general
// category, e.g. "Lu" for an uppercase letter.
func CategoryString(r rune) string {
	return ucd.Lookup(r).Category().String()
}

// ToLower returns the lowercase form of a codepoint, or the codepoint
// itself if it has none. Mappings that expand to several codepoints
// contribute their first one; use Map with CaseFold for full
// expansions.
func ToLower(r rune) rune {
	if m := ucd.Lookup(r).LowerMapping(); m != nil {
		return m[0]
	}
	return r
}

// ToUpper returns the uppercase form of a codepoint, or the codepoint
// itself if it has none. Expanding mappings contribute their first
// codepoint, so ToUpper('ß') is 'S'.
func ToUpper(r rune) rune {
	if m := ucd.Lookup(r).UpperMapping(); m != nil {
		return m[0]
	}
	return r
}

// ToTitle returns the titlecase form of a codepoint, or the codepoint
// itself if it has none.
func ToTitle(r rune) rune {
	if m := ucd.Lookup(r).TitleMapping(); m != nil {
		return m[0]
	}
	return r
}

// IsLower reports whether a codepoint is lowercase: it has an uppercase
// mapping but no lowercase one. Note that this differs from membership
// in category Ll; modifier letters without case mappings are neither
// lower- nor uppercase here.
func IsLower(r rune) bool {
	p := ucd.Lookup(r)
	return p.UpperMapping() != nil && p.LowerMapping() == nil
}

// IsUpper reports whether a codepoint is uppercase: it has a lowercase
// mapping but no uppercase one and is not titlecase.
func IsUpper(r rune) bool {
	p := ucd.Lookup(r)
	return p.LowerMapping() != nil && p.UpperMapping() == nil && p.Category() != ucd.Lt
}

// CharWidth returns the number of terminal columns a codepoint
// occupies: 0 for combining and other non-printing codepoints, 2 for
// wide East Asian forms, 1 otherwise.
func CharWidth(r rune) int {
	return ucd.Lookup(r).CharWidth()
}

// StringWidth returns the number of terminal columns for a string, the
// sum of CharWidth over its codepoints. This is wcswidth-style column
// arithmetic: emoji ZWJ sequences count their visible parts
// individually, not the single glyph an emoji-capable renderer may
// show.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += CharWidth(r)
	}
	return w
}
