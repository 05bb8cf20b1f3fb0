package runa

import (
	"unicode/utf8"

	"github.com/npillmayer/runa/ucd"
)

// GraphemeState is the scanner state of the stateful grapheme cluster
// breaker. The zero value is the initial state. A state is only
// meaningful for one left-to-right scan over one string; it packs the
// effective bound class of the cluster so far and the progress of a
// potential Indic conjunct.
type GraphemeState int32

func (s GraphemeState) boundClass() ucd.BoundClass {
	return ucd.BoundClass(s & 0xff)
}

func (s GraphemeState) indicState() ucd.IndicConjunctBreak {
	return ucd.IndicConjunctBreak(s >> 8 & 0xff)
}

func packState(bc ucd.BoundClass, icb ucd.IndicConjunctBreak) GraphemeState {
	return GraphemeState(int32(bc) | int32(icb)<<8)
}

// breakSimple decides the cluster rules that need no scanner state:
// UAX#29 rules GB1–GB9b, plus the stateless half of GB11–GB13.
func breakSimple(lbc, tbc ucd.BoundClass) bool {
	switch {
	case lbc == ucd.BoundStart:
		return true // GB1
	case lbc == ucd.BoundCR && tbc == ucd.BoundLF:
		return false // GB3
	case lbc >= ucd.BoundCR && lbc <= ucd.BoundControl:
		return true // GB4
	case tbc >= ucd.BoundCR && tbc <= ucd.BoundControl:
		return true // GB5
	case lbc == ucd.BoundL && (tbc == ucd.BoundL || tbc == ucd.BoundV ||
		tbc == ucd.BoundLV || tbc == ucd.BoundLVT):
		return false // GB6
	case (lbc == ucd.BoundLV || lbc == ucd.BoundV) &&
		(tbc == ucd.BoundV || tbc == ucd.BoundT):
		return false // GB7
	case (lbc == ucd.BoundLVT || lbc == ucd.BoundT) && tbc == ucd.BoundT:
		return false // GB8
	case tbc == ucd.BoundExtend || tbc == ucd.BoundZWJ ||
		tbc == ucd.BoundSpacingMark || lbc == ucd.BoundPrepend:
		return false // GB9, GB9a, GB9b
	case lbc == ucd.BoundEZWG && tbc == ucd.BoundExtendedPictographic:
		return false // GB11
	case lbc == ucd.BoundRegionalIndicator && tbc == ucd.BoundRegionalIndicator:
		return false // GB12, GB13
	}
	return true // GB999
}

// breakExtended adds the stateful rules on top of breakSimple: pairing
// of regional indicators (GB12/13), emoji ZWJ sequences (GB11) and
// Indic conjuncts (GB9c). A zero state initializes from the left-hand
// codepoint; afterwards the left-hand arguments are taken from state.
// With a nil state the decision degrades to breakSimple.
func breakExtended(lbc, tbc ucd.BoundClass, licb, ticb ucd.IndicConjunctBreak, state *GraphemeState) bool {
	if state == nil {
		return breakSimple(lbc, tbc)
	}
	var sbc ucd.BoundClass
	var sicb ucd.IndicConjunctBreak
	if *state == 0 {
		sbc = lbc
		if licb == ucd.InCBConsonant {
			sicb = ucd.InCBConsonant
		}
	} else {
		sbc = state.boundClass()
		sicb = state.indicState()
	}

	brk := breakSimple(sbc, tbc) &&
		!(sicb == ucd.InCBLinker && ticb == ucd.InCBConsonant)

	// GB9c: no break between consonants joined by a run of extenders
	// and linkers that contains at least one linker. The conjunct state
	// is anchored at a consonant; anything outside the run resets it.
	switch {
	case ticb == ucd.InCBConsonant:
		sicb = ucd.InCBConsonant
	case sicb == ucd.InCBConsonant || sicb == ucd.InCBLinker:
		if ticb == ucd.InCBLinker {
			sicb = ucd.InCBLinker
		} else if ticb != ucd.InCBExtend {
			sicb = ucd.InCBNone
		}
	default:
		sicb = ucd.InCBNone
	}

	if sbc == tbc && tbc == ucd.BoundRegionalIndicator {
		// GB12/13: a pair of regional indicators consumes both; a third
		// one starts a new flag.
		sbc = ucd.BoundOther
	} else if sbc == ucd.BoundExtendedPictographic {
		// GB11: track emoji + extend* + ZWJ, which may glue a following
		// pictograph.
		switch tbc {
		case ucd.BoundExtend:
			sbc = ucd.BoundExtendedPictographic
		case ucd.BoundZWJ:
			sbc = ucd.BoundEZWG
		default:
			sbc = tbc
		}
	} else {
		sbc = tbc
	}

	*state = packState(sbc, sicb)
	return brk
}

// GraphemeBreakState reports whether an extended grapheme cluster
// boundary lies between codepoints c1 and c2, threading scanner state.
// Calls must proceed in strict left-to-right order over a string,
// starting from the zero state:
//
//	var state runa.GraphemeState
//	brk := false
//	for i := 1; i < len(runes); i++ {
//	    brk, state = runa.GraphemeBreakState(runes[i-1], runes[i], state)
//	    …
//	}
//
// Re-starting from the zero state mid-string is only sound immediately
// after a reported boundary.
func GraphemeBreakState(c1, c2 rune, state GraphemeState) (bool, GraphemeState) {
	p1, p2 := ucd.Lookup(c1), ucd.Lookup(c2)
	s := state
	brk := breakExtended(p1.BoundClass(), p2.BoundClass(),
		p1.IndicConjunctBreak(), p2.IndicConjunctBreak(), &s)
	return brk, s
}

// GraphemeBreak reports whether a grapheme cluster boundary is
// permitted between c1 and c2, using no scanner state. Without state
// the rules needing it (GB9c, GB11, GB12/13) cannot be decided
// correctly; prefer GraphemeBreakState when scanning strings.
func GraphemeBreak(c1, c2 rune) bool {
	return breakSimple(ucd.Lookup(c1).BoundClass(), ucd.Lookup(c2).BoundClass())
}

// Graphemes iterates over the extended grapheme clusters of a string:
//
//	g := runa.NewGraphemes("👩🏿‍🦰flag")
//	for g.Next() {
//	    fmt.Println(g.Cluster())
//	}
//
// Ill-formed bytes are not an error here; each is treated like U+FFFD.
type Graphemes struct {
	src   string
	pos   int // byte offset of the current cluster
	end   int // byte offset one past the current cluster
	state GraphemeState
}

// NewGraphemes returns an iterator over the grapheme clusters of s,
// positioned before the first cluster.
func NewGraphemes(s string) *Graphemes {
	return &Graphemes{src: s}
}

// Next advances to the next cluster. It returns false when the input is
// exhausted.
func (g *Graphemes) Next() bool {
	if g.end >= len(g.src) {
		return false
	}
	g.pos = g.end
	prev, size := utf8.DecodeRuneInString(g.src[g.end:])
	g.end += size
	for g.end < len(g.src) {
		r, size := utf8.DecodeRuneInString(g.src[g.end:])
		brk, next := GraphemeBreakState(prev, r, g.state)
		g.state = next
		if brk {
			break
		}
		g.end += size
		prev = r
	}
	return true
}

// Cluster returns the current cluster.
func (g *Graphemes) Cluster() string {
	return g.src[g.pos:g.end]
}

// Pos returns the byte offsets of the current cluster: from points at
// its first byte, to one past its last.
func (g *Graphemes) Pos() (from, to int) {
	return g.pos, g.end
}

// GraphemeCount returns the number of extended grapheme clusters in s,
// i.e. the user-perceived length of the string.
func GraphemeCount(s string) int {
	n := 0
	g := NewGraphemes(s)
	for g.Next() {
		n++
	}
	return n
}
