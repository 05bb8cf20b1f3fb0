package ucd

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// The property records are not shipped as generated tables; they are
// derived at load time from the data modules linked into the binary:
//
//   ▪︎ general categories and binary properties from package unicode
//   ▪︎ combining classes and full decompositions from x/text/unicode/norm
//   ▪︎ full case mappings and foldings from x/text/cases
//   ▪︎ bidi classes from x/text/unicode/bidi
//   ▪︎ East Asian width from x/text/width
//
// plus the cluster-break ranges of clusterdata.go. Composition pairs
// are recovered from the full canonical decompositions: the primary
// composite of (first, last) is the codepoint whose decomposition is
// the decomposition of first followed by last.

type builder struct {
	cats []Category // general category per codepoint

	seqs   []rune
	seqIdx map[string]seqRef

	pairs    map[uint64]rune
	combFwd  map[rune]bool
	combBack map[rune]bool

	props   []CharProperty
	propIdx map[CharProperty]uint16
	flat    []uint16 // property record index per codepoint

	foldCaser  cases.Caser
	lowerCaser cases.Caser
	upperCaser cases.Caser
	titleCaser cases.Caser
}

func build() *propertyTables {
	b := &builder{
		cats:       make([]Category, maxRune+1),
		seqs:       make([]rune, 1), // offset 0 is reserved
		seqIdx:     make(map[string]seqRef),
		pairs:      make(map[uint64]rune),
		combFwd:    make(map[rune]bool),
		combBack:   make(map[rune]bool),
		propIdx:    make(map[CharProperty]uint16),
		flat:       make([]uint16, maxRune+1),
		foldCaser:  cases.Fold(),
		lowerCaser: cases.Lower(language.Und),
		upperCaser: cases.Upper(language.Und),
		titleCaser: cases.Title(language.Und),
	}
	b.stampCategories()
	b.collectCompositions()

	// The sentinel record for unassigned codepoints gets index 0.
	b.internProp(CharProperty{category: Cn, bound: BoundOther})

	for r := rune(0); r <= maxRune; r++ {
		b.flat[r] = b.internProp(b.derive(r))
	}

	t := &propertyTables{
		props: b.props,
		seqs:  b.seqs,
		pairs: b.pairs,
	}
	b.compressStages(t)
	return t
}

// stampCategories fills the per-codepoint category array by walking
// the range tables of the standard library, one category at a time.
func (b *builder) stampCategories() {
	for i := 1; i < len(categoryNames); i++ {
		cat := Category(i)
		rt := unicode.Categories[categoryNames[i]]
		if rt == nil {
			continue
		}
		for _, rng := range rt.R16 {
			for r := rune(rng.Lo); r <= rune(rng.Hi); r += rune(rng.Stride) {
				b.cats[r] = cat
			}
		}
		for _, rng := range rt.R32 {
			for r := rune(rng.Lo); r <= rune(rng.Hi); r += rune(rng.Stride) {
				b.cats[r] = cat
			}
		}
	}
	for _, rng := range cjkExtI {
		for r := rng.lo; r <= rng.hi; r++ {
			b.cats[r] = Lo
		}
	}
}

// collectCompositions builds the canonical composition pair table. The
// full decompositions of x/text are flat, so the immediate pair of a
// composite has to be recovered: its first element is the codepoint
// whose own full decomposition equals the prefix before the last rune.
func (b *builder) collectCompositions() {
	var buf [4]byte
	reverse := make(map[string][]rune)
	for r := rune(0); r <= maxRune; r++ {
		if isSurrogate(r) {
			continue
		}
		d := norm.NFD.Properties(buf[:utf8.EncodeRune(buf[:], r)]).Decomposition()
		if d != nil {
			reverse[string(d)] = append(reverse[string(d)], r)
		}
	}
	recomposes := func(c rune) bool {
		d := norm.NFD.PropertiesString(string(c)).Decomposition()
		return norm.NFC.String(string(d)) == string(c)
	}
	for r := rune(0); r <= maxRune; r++ {
		if isSurrogate(r) {
			continue
		}
		d := norm.NFD.Properties(buf[:utf8.EncodeRune(buf[:], r)]).Decomposition()
		if d == nil || utf8.RuneCount(d) < 2 {
			continue
		}
		last, lastSize := utf8.DecodeLastRune(d)
		prefix := d[:len(d)-lastSize]
		first := rune(-1)
		if utf8.RuneCount(prefix) == 1 {
			first, _ = utf8.DecodeRune(prefix)
		} else {
			cands := reverse[string(prefix)]
			for _, c := range cands {
				if recomposes(c) {
					first = c
					break
				}
			}
			if first < 0 && len(cands) == 1 {
				first = cands[0]
			}
		}
		if first < 0 {
			// No codepoint matches the prefix; this composite cannot be
			// reached by pairwise composition.
			tracer().Debugf("no composition pair recoverable for U+%04X", r)
			continue
		}
		b.pairs[pairKey(first, last)] = r
		b.combFwd[first] = true
		b.combBack[last] = true
	}
	tracer().Debugf("%d canonical composition pairs", len(b.pairs))
}

// derive computes the full property record of a single codepoint.
func (b *builder) derive(r rune) CharProperty {
	cat := b.cats[r]
	if isSurrogate(r) {
		// Keep x/text out of the surrogate range; lookups there would
		// see U+FFFD after rune-to-string conversion.
		return CharProperty{category: Cs, bidi: BidiL, bound: BoundControl}
	}
	var buf [4]byte
	bs := buf[:utf8.EncodeRune(buf[:], r)]

	p := CharProperty{category: cat}
	p.ccc = norm.NFD.Properties(bs).CCC()

	nfd := norm.NFD.Properties(bs).Decomposition()
	nfkd := norm.NFKD.Properties(bs).Decomposition()
	if nfd != nil {
		p.dtype = DecompCanonical
		p.canon = b.internSeq([]rune(string(nfd)))
		if string(norm.NFC.Bytes(nfd)) != string(r) {
			p.flags |= flagCompExclusion
		}
	} else if nfkd != nil {
		p.dtype = DecompCompat
	}
	if nfkd != nil && string(nfkd) != string(nfd) {
		p.compat = b.internSeq([]rune(string(nfkd)))
	}

	b.deriveCase(r, &p)

	if cat != Cn {
		pr, _ := bidi.LookupRune(r)
		p.bidi = bidiClassOf(r, pr.Class())
		if pr.IsBracket() || inRanges(r, bidiMirroredExtra) {
			p.flags |= flagBidiMirrored
		}
	}

	ignorable := b.deriveIgnorable(r, cat)
	if ignorable {
		p.flags |= flagIgnorable
	}
	if (cat == Cc || cat == Cf || cat == Zl || cat == Zp) && r != 0x200C && r != 0x200D {
		p.flags |= flagControlBoundary
	}
	if b.combFwd[r] {
		p.flags |= flagCombinesForward
	}
	if b.combBack[r] {
		p.flags |= flagCombinesBackward
	}

	p.width = b.deriveWidth(r, cat)
	p.bound = b.deriveBoundClass(r, cat, ignorable)
	p.icb = deriveInCB(r, cat)
	return p
}

// deriveCase attaches the full case mappings. The stdlib predicates
// pre-select codepoints that can possibly be cased, which keeps the
// x/text casers off the bulk of the codepoint space.
func (b *builder) deriveCase(r rune, p *CharProperty) {
	if !unicode.IsLetter(r) && unicode.SimpleFold(r) == r &&
		unicode.ToLower(r) == r && unicode.ToUpper(r) == r && unicode.ToTitle(r) == r {
		return
	}
	s := string(r)
	if f := b.foldCaser.String(s); f != s {
		p.fold = b.internSeq([]rune(f))
	}
	if l := b.lowerCaser.String(s); l != s {
		p.lower = b.internSeq([]rune(l))
	}
	if u := b.upperCaser.String(s); u != s {
		p.upper = b.internSeq([]rune(u))
	}
	if t := b.titleCaser.String(s); t != s {
		p.title = b.internSeq([]rune(t))
	}
}

// deriveIgnorable computes Default_Ignorable_Code_Point.
func (b *builder) deriveIgnorable(r rune, cat Category) bool {
	if !unicode.Is(unicode.Other_Default_Ignorable_Code_Point, r) &&
		cat != Cf && !unicode.Is(unicode.Variation_Selector, r) {
		return false
	}
	if unicode.Is(unicode.White_Space, r) {
		return false
	}
	if r >= 0xFFF9 && r <= 0xFFFB { // interlinear annotation controls
		return false
	}
	if inRanges(r, egyptianControls) {
		return false
	}
	if unicode.Is(unicode.Prepended_Concatenation_Mark, r) {
		return false
	}
	return true
}

// deriveWidth computes the column width: 0 for combining and
// non-printable codepoints, 2 for wide East Asian forms, 1 otherwise.
func (b *builder) deriveWidth(r rune, cat Category) uint8 {
	if r == 0x00AD { // soft hyphen is rendered when a line breaks at it
		return 1
	}
	switch cat {
	case Mn, Me, Cc, Cf, Zl, Zp, Cs, Cn:
		return 0
	}
	if inRanges(r, hangulV) || inRanges(r, hangulT) {
		// Medial and final jamo combine into the preceding syllable.
		return 0
	}
	if inRanges(r, cjkExtI) {
		return 2
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// deriveBoundClass computes Grapheme_Cluster_Break per UAX#29. The
// Extend branch has to precede the Control branch: ZWNJ and the tag
// characters are format characters, but extend clusters.
func (b *builder) deriveBoundClass(r rune, cat Category, ignorable bool) BoundClass {
	switch r {
	case 0x000D:
		return BoundCR
	case 0x000A:
		return BoundLF
	case 0x200D:
		return BoundZWJ
	}
	if isGraphemeExtend(r, cat) || inRanges(r, emojiModifier) {
		return BoundExtend
	}
	switch {
	case cat == Cc || cat == Zl || cat == Zp || cat == Cs:
		return BoundControl
	case cat == Cf && !unicode.Is(unicode.Prepended_Concatenation_Mark, r):
		return BoundControl
	case cat == Cn && ignorable:
		return BoundControl
	}
	if unicode.Is(unicode.Regional_Indicator, r) {
		return BoundRegionalIndicator
	}
	if unicode.Is(unicode.Prepended_Concatenation_Mark, r) || inRanges(r, prependExtra) {
		return BoundPrepend
	}
	switch {
	case inRanges(r, hangulL):
		return BoundL
	case inRanges(r, hangulV):
		return BoundV
	case inRanges(r, hangulT):
		return BoundT
	case r >= HangulSBase && r < HangulSBase+HangulSCount:
		if (r-HangulSBase)%HangulTCount == 0 {
			return BoundLV
		}
		return BoundLVT
	}
	if (cat == Mc && !inRanges(r, spacingMarkExceptions)) || inRanges(r, spacingMarkExtra) {
		return BoundSpacingMark
	}
	if inRanges(r, extendedPictographic) {
		return BoundExtendedPictographic
	}
	return BoundOther
}

// deriveInCB computes the Indic_Conjunct_Break property.
func deriveInCB(r rune, cat Category) IndicConjunctBreak {
	if inRanges(r, incbLinker) {
		return InCBLinker
	}
	if inRanges(r, incbConsonant) {
		return InCBConsonant
	}
	if r != 0x200C && (isGraphemeExtend(r, cat) || r == 0x200D) {
		return InCBExtend
	}
	return InCBNone
}

func isGraphemeExtend(r rune, cat Category) bool {
	return cat == Mn || cat == Me || unicode.Is(unicode.Other_Grapheme_Extend, r)
}

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

// bidiClassOf maps an x/text bidi class to ours. The directional
// format controls collapse into bidi.Control there and are expanded
// back by codepoint.
func bidiClassOf(r rune, c bidi.Class) BidiClass {
	switch c {
	case bidi.L:
		return BidiL
	case bidi.R:
		return BidiR
	case bidi.AL:
		return BidiAL
	case bidi.EN:
		return BidiEN
	case bidi.ES:
		return BidiES
	case bidi.ET:
		return BidiET
	case bidi.AN:
		return BidiAN
	case bidi.CS:
		return BidiCS
	case bidi.NSM:
		return BidiNSM
	case bidi.BN:
		return BidiBN
	case bidi.B:
		return BidiB
	case bidi.S:
		return BidiS
	case bidi.WS:
		return BidiWS
	case bidi.ON:
		return BidiON
	case bidi.LRE:
		return BidiLRE
	case bidi.RLE:
		return BidiRLE
	case bidi.LRO:
		return BidiLRO
	case bidi.RLO:
		return BidiRLO
	case bidi.PDF:
		return BidiPDF
	case bidi.LRI:
		return BidiLRI
	case bidi.RLI:
		return BidiRLI
	case bidi.FSI:
		return BidiFSI
	case bidi.PDI:
		return BidiPDI
	case bidi.Control:
		switch r {
		case 0x202A:
			return BidiLRE
		case 0x202B:
			return BidiRLE
		case 0x202C:
			return BidiPDF
		case 0x202D:
			return BidiLRO
		case 0x202E:
			return BidiRLO
		case 0x2066:
			return BidiLRI
		case 0x2067:
			return BidiRLI
		case 0x2068:
			return BidiFSI
		case 0x2069:
			return BidiPDI
		}
	}
	return BidiL
}

// internSeq stores an expansion in the shared store, deduplicated.
func (b *builder) internSeq(rs []rune) seqRef {
	if len(rs) == 0 {
		return 0
	}
	key := string(rs)
	if ref, ok := b.seqIdx[key]; ok {
		return ref
	}
	off := len(b.seqs)
	b.seqs = append(b.seqs, rs...)
	ref := seqRef(off)<<5 | seqRef(len(rs))
	b.seqIdx[key] = ref
	return ref
}

// internProp deduplicates a property record and returns its index.
func (b *builder) internProp(p CharProperty) uint16 {
	if idx, ok := b.propIdx[p]; ok {
		return idx
	}
	idx := uint16(len(b.props))
	b.props = append(b.props, p)
	b.propIdx[p] = idx
	return idx
}

// compressStages folds the flat per-codepoint index array into the
// two-stage lookup, sharing identical 256-entry blocks.
func (b *builder) compressStages(t *propertyTables) {
	seen := make(map[string]uint16)
	key := make([]byte, 2*blockSize)
	for blk := 0; blk < numBlocks; blk++ {
		slice := b.flat[blk<<blockShift : (blk+1)<<blockShift]
		for i, v := range slice {
			key[2*i] = byte(v)
			key[2*i+1] = byte(v >> 8)
		}
		if idx, ok := seen[string(key)]; ok {
			t.stage1[blk] = idx
			continue
		}
		idx := uint16(len(t.stage2) >> blockShift)
		t.stage2 = append(t.stage2, slice...)
		seen[string(key)] = idx
		t.stage1[blk] = idx
	}
}
