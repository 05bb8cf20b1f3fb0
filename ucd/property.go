package ucd

// UnicodeVersion is the version of the Unicode Character Database the
// property records are derived from: the 15.0 data of the Go toolchain
// and golang.org/x/text, lifted to 15.1 by the cluster-break ranges and
// the Extension I block of clusterdata.go.
const UnicodeVersion = "15.1.0"

// Hangul syllable composition arithmetic (Unicode chapter 3.12).
const (
	HangulSBase  = 0xAC00
	HangulLBase  = 0x1100
	HangulVBase  = 0x1161
	HangulTBase  = 0x11A7
	HangulLCount = 19
	HangulVCount = 21
	HangulTCount = 28
	HangulNCount = HangulVCount * HangulTCount // 588
	HangulSCount = HangulLCount * HangulNCount // 11172
)

// Category is the general category of a codepoint. The zero value Cn
// denotes an unassigned codepoint.
type Category uint8

// General categories, as two-letter abbreviations per UAX#44.
const (
	Cn Category = iota // Other, not assigned
	Lu                 // Letter, uppercase
	Ll                 // Letter, lowercase
	Lt                 // Letter, titlecase
	Lm                 // Letter, modifier
	Lo                 // Letter, other
	Mn                 // Mark, nonspacing
	Mc                 // Mark, spacing combining
	Me                 // Mark, enclosing
	Nd                 // Number, decimal digit
	Nl                 // Number, letter
	No                 // Number, other
	Pc                 // Punctuation, connector
	Pd                 // Punctuation, dash
	Ps                 // Punctuation, open
	Pe                 // Punctuation, close
	Pi                 // Punctuation, initial quote
	Pf                 // Punctuation, final quote
	Po                 // Punctuation, other
	Sm                 // Symbol, math
	Sc                 // Symbol, currency
	Sk                 // Symbol, modifier
	So                 // Symbol, other
	Zs                 // Separator, space
	Zl                 // Separator, line
	Zp                 // Separator, paragraph
	Cc                 // Other, control
	Cf                 // Other, format
	Cs                 // Other, surrogate
	Co                 // Other, private use
)

var categoryNames = [...]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd",
	"Nl", "No", "Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm",
	"Sc", "Sk", "So", "Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
}

func (c Category) String() string {
	if int(c) >= len(categoryNames) {
		return "??"
	}
	return categoryNames[c]
}

// IsMark is true for the combining mark categories Mn, Mc and Me.
func (c Category) IsMark() bool {
	return c == Mn || c == Mc || c == Me
}

// BidiClass is the bidirectional class of a codepoint (UAX#9).
// BidiNone marks codepoints without a class, i.e. unassigned ones.
type BidiClass uint8

// Bidirectional character classes.
const (
	BidiNone BidiClass = iota
	BidiL              // left-to-right
	BidiLRE            // left-to-right embedding
	BidiLRO            // left-to-right override
	BidiR              // right-to-left
	BidiAL             // right-to-left arabic
	BidiRLE            // right-to-left embedding
	BidiRLO            // right-to-left override
	BidiPDF            // pop directional format
	BidiEN             // european number
	BidiES             // european number separator
	BidiET             // european number terminator
	BidiAN             // arabic number
	BidiCS             // common number separator
	BidiNSM            // nonspacing mark
	BidiBN             // boundary neutral
	BidiB              // paragraph separator
	BidiS              // segment separator
	BidiWS             // whitespace
	BidiON             // other neutral
	BidiLRI            // left-to-right isolate
	BidiRLI            // right-to-left isolate
	BidiFSI            // first strong isolate
	BidiPDI            // pop directional isolate
)

var bidiNames = [...]string{
	"", "L", "LRE", "LRO", "R", "AL", "RLE", "RLO", "PDF", "EN",
	"ES", "ET", "AN", "CS", "NSM", "BN", "B", "S", "WS", "ON",
	"LRI", "RLI", "FSI", "PDI",
}

func (b BidiClass) String() string {
	if int(b) >= len(bidiNames) {
		return "??"
	}
	return bidiNames[b]
}

// DecompType tells whether a codepoint's decomposition mapping is
// canonical or a compatibility mapping.
type DecompType uint8

// Decomposition types. Compatibility sub-kinds (font, circle, …) are
// not distinguished; the transformation pipeline only branches on
// canonical vs. compatibility.
const (
	DecompNone DecompType = iota
	DecompCanonical
	DecompCompat
)

func (d DecompType) String() string {
	switch d {
	case DecompCanonical:
		return "canonical"
	case DecompCompat:
		return "compat"
	}
	return "none"
}

// BoundClass is the grapheme cluster break class of a codepoint
// (UAX#29). Two extra pseudo-classes exist: BoundStart is the initial
// state of the cluster state machine, and BoundEZWG records an
// extended-pictographic-plus-ZWJ combination during matching of rule
// GB11.
type BoundClass uint8

// Grapheme cluster break classes.
const (
	BoundStart BoundClass = iota
	BoundOther
	BoundCR
	BoundLF
	BoundControl
	BoundExtend
	BoundL
	BoundV
	BoundT
	BoundLV
	BoundLVT
	BoundRegionalIndicator
	BoundSpacingMark
	BoundPrepend
	BoundZWJ
	BoundEBase        // obsolete, retained for numbering
	BoundEModifier    // obsolete, retained for numbering
	BoundGlueAfterZWJ // obsolete, retained for numbering
	BoundEBaseGAZ     // obsolete, retained for numbering
	BoundExtendedPictographic
	BoundEZWG
)

var boundNames = [...]string{
	"START", "OTHER", "CR", "LF", "CONTROL", "EXTEND", "L", "V", "T",
	"LV", "LVT", "REGIONAL_INDICATOR", "SPACINGMARK", "PREPEND", "ZWJ",
	"E_BASE", "E_MODIFIER", "GLUE_AFTER_ZWJ", "E_BASE_GAZ",
	"EXTENDED_PICTOGRAPHIC", "E_ZWG",
}

func (b BoundClass) String() string {
	if int(b) >= len(boundNames) {
		return "??"
	}
	return boundNames[b]
}

// IndicConjunctBreak is the InCB property of a codepoint, driving rule
// GB9c of UAX#29 (Unicode ≥ 15.1).
type IndicConjunctBreak uint8

// Indic conjunct break classes.
const (
	InCBNone IndicConjunctBreak = iota
	InCBLinker
	InCBConsonant
	InCBExtend
)

var incbNames = [...]string{"none", "linker", "consonant", "extend"}

func (i IndicConjunctBreak) String() string {
	if int(i) >= len(incbNames) {
		return "??"
	}
	return incbNames[i]
}

// Flag bits of CharProperty.flags.
const (
	flagBidiMirrored uint8 = 1 << iota
	flagCompExclusion
	flagIgnorable
	flagControlBoundary
	flagCombinesForward
	flagCombinesBackward
)

// seqRef is a reference into the shared expansion store: offset<<5|len,
// with offset counting from 1. The zero value means "no mapping".
type seqRef uint32

func (s seqRef) runes(t *propertyTables) []rune {
	if s == 0 {
		return nil
	}
	off, n := int(s>>5), int(s&0x1f)
	return t.seqs[off : off+n]
}

// CharProperty is the property record of a single codepoint. Records
// are shared between codepoints; accessor methods returning slices
// return views into shared storage which must not be modified.
type CharProperty struct {
	category Category
	ccc      uint8
	bidi     BidiClass
	dtype    DecompType
	flags    uint8
	width    uint8
	bound    BoundClass
	icb      IndicConjunctBreak
	canon    seqRef // canonical decomposition, fully expanded
	compat   seqRef // compatibility decomposition, fully expanded
	fold     seqRef // full case folding
	lower    seqRef // full lowercase mapping
	upper    seqRef // full uppercase mapping
	title    seqRef // full titlecase mapping
}

// Category returns the general category.
func (p *CharProperty) Category() Category { return p.category }

// CombiningClass returns the canonical combining class, 0–254.
func (p *CharProperty) CombiningClass() int { return int(p.ccc) }

// BidiClass returns the bidirectional class, or BidiNone for
// codepoints without one.
func (p *CharProperty) BidiClass() BidiClass { return p.bidi }

// BidiMirrored is true for codepoints that are mirrored in
// bidirectional text, e.g. parentheses.
func (p *CharProperty) BidiMirrored() bool { return p.flags&flagBidiMirrored != 0 }

// DecompositionType reports whether the codepoint decomposes
// canonically, by compatibility mapping, or not at all.
func (p *CharProperty) DecompositionType() DecompType { return p.dtype }

// CanonicalDecomposition returns the fully expanded canonical
// decomposition, or nil. Hangul syllables return nil; their
// decomposition is arithmetic and performed by the pipeline.
func (p *CharProperty) CanonicalDecomposition() []rune {
	return p.canon.runes(tables())
}

// CompatDecomposition returns the fully expanded compatibility
// decomposition (NFKD), or nil if the codepoint has none beyond its
// canonical one. Callers decomposing in compatibility mode should fall
// back to CanonicalDecomposition when this returns nil.
func (p *CharProperty) CompatDecomposition() []rune {
	return p.compat.runes(tables())
}

// CaseFolding returns the full case folding, or nil.
func (p *CharProperty) CaseFolding() []rune { return p.fold.runes(tables()) }

// LowerMapping returns the full lowercase mapping, or nil.
func (p *CharProperty) LowerMapping() []rune { return p.lower.runes(tables()) }

// UpperMapping returns the full uppercase mapping, or nil.
func (p *CharProperty) UpperMapping() []rune { return p.upper.runes(tables()) }

// TitleMapping returns the full titlecase mapping, or nil.
func (p *CharProperty) TitleMapping() []rune { return p.title.runes(tables()) }

// CompositionExclusion is true for codepoints that canonical
// composition must not produce (full composition exclusions).
func (p *CharProperty) CompositionExclusion() bool { return p.flags&flagCompExclusion != 0 }

// Ignorable is true for default-ignorable codepoints (soft hyphen,
// ZWSP, variation selectors, …).
func (p *CharProperty) Ignorable() bool { return p.flags&flagIgnorable != 0 }

// ControlBoundary is true for control and format characters at which
// text layout may break unconditionally (categories Cc, Cf, Zl, Zp,
// excluding ZWJ and ZWNJ).
func (p *CharProperty) ControlBoundary() bool { return p.flags&flagControlBoundary != 0 }

// CombinesForward is true if the codepoint occurs as the first element
// of a canonical composition pair.
func (p *CharProperty) CombinesForward() bool { return p.flags&flagCombinesForward != 0 }

// CombinesBackward is true if the codepoint occurs as the second
// element of a canonical composition pair.
func (p *CharProperty) CombinesBackward() bool { return p.flags&flagCombinesBackward != 0 }

// CharWidth returns the number of terminal columns the codepoint
// occupies: 0 for combining and non-printable codepoints, 2 for wide
// East Asian forms, 1 otherwise.
func (p *CharProperty) CharWidth() int { return int(p.width) }

// BoundClass returns the grapheme cluster break class.
func (p *CharProperty) BoundClass() BoundClass { return p.bound }

// IndicConjunctBreak returns the InCB property.
func (p *CharProperty) IndicConjunctBreak() IndicConjunctBreak { return p.icb }

// Lookup returns the property record for a codepoint. It never returns
// nil: unassigned and out-of-range codepoints yield a sentinel record
// with category Cn.
func Lookup(r rune) *CharProperty {
	t := tables()
	if r < 0 || r > maxRune {
		return &t.props[0]
	}
	block := t.stage1[r>>blockShift]
	return &t.props[t.stage2[int(block)<<blockShift|int(r&blockMask)]]
}

// ComposePair returns the primary composite of a canonical composition
// pair (a, b), if one exists. Hangul composition is arithmetic and not
// covered here. The returned composite may be a composition exclusion;
// callers implementing stable normal forms must check
// CompositionExclusion on it.
func ComposePair(a, b rune) (rune, bool) {
	t := tables()
	c, ok := t.pairs[pairKey(a, b)]
	return c, ok
}

// Setup builds the property tables eagerly. Calling it is optional;
// the first Lookup triggers the same construction.
func Setup() {
	tables()
}
