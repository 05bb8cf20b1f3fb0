package runa

import (
	"math"

	"github.com/npillmayer/runa/ucd"
)

// RuneMapper is a caller-supplied codepoint transformation. MapCustom
// and DecomposeCustom apply it to each decoded codepoint before any of
// the option-driven processing; the returned codepoint replaces the
// decoded one.
type RuneMapper func(r rune) rune

// DecomposeRune transforms a single codepoint according to opts and
// writes the result to dst. The destination may be nil or too short:
// the returned count is always the full requirement, allowing the usual
// two-call pattern of sizing first and writing second. Only the leading
// part of the result that fits is written.
//
// When CharBound is set, state threads the grapheme scanner across
// consecutive calls; start with a fresh zero GraphemeState per string.
// Without CharBound, state may be nil.
//
// Out-of-codespace input reports ErrNotAssigned, incoherent flags
// ErrInvalidOptions.
func DecomposeRune(dst []rune, r rune, opts Options, state *GraphemeState) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	return decomposeRune(dst, r, opts, state)
}

// decomposeRune is the per-codepoint engine. The option checks run in a
// fixed order; earlier ones preempt later ones for the same codepoint:
// Hangul expansion, RejectNA, Ignore, StripNA, Lump, StripMark,
// CaseFold, decomposition mapping, CharBound. Expanded sequences recur
// element-wise so that the remaining options apply to the expansion as
// well.
func decomposeRune(dst []rune, r rune, opts Options, state *GraphemeState) (int, error) {
	if r < 0 || r > 0x10FFFF {
		return 0, ErrNotAssigned
	}
	p := ucd.Lookup(r)
	cat := p.Category()
	if opts&(Composing|Decomposing) != 0 {
		if sindex := r - ucd.HangulSBase; sindex >= 0 && sindex < ucd.HangulSCount {
			l := ucd.HangulLBase + sindex/ucd.HangulNCount
			v := ucd.HangulVBase + (sindex%ucd.HangulNCount)/ucd.HangulTCount
			t := sindex % ucd.HangulTCount
			if len(dst) >= 1 {
				dst[0] = l
			}
			if len(dst) >= 2 {
				dst[1] = v
			}
			if t == 0 {
				return 2, nil
			}
			if len(dst) >= 3 {
				dst[2] = ucd.HangulTBase + t
			}
			return 3, nil
		}
	}
	if opts&RejectNA != 0 && cat == ucd.Cn {
		return 0, ErrNotAssigned
	}
	if opts&Ignore != 0 && p.Ignorable() {
		return 0, nil
	}
	if opts&StripNA != 0 && cat == ucd.Cn {
		return 0, nil
	}
	if opts&Lump != 0 {
		if lumped, ok := lumpRune(r, cat); ok {
			return decomposeRune(dst, lumped, opts&^Lump, state)
		}
		if opts&NLF2LF == NLF2LF && (cat == ucd.Zl || cat == ucd.Zp) {
			return decomposeRune(dst, 0x000A, opts&^Lump, state)
		}
	}
	if opts&StripMark != 0 && cat.IsMark() {
		return 0, nil
	}
	if opts&CaseFold != 0 {
		if f := p.CaseFolding(); f != nil {
			return decomposeSeq(dst, f, opts, state)
		}
	}
	if opts&(Composing|Decomposing) != 0 {
		if d := decompositionFor(p, opts); d != nil {
			return decomposeSeq(dst, d, opts, state)
		}
	}
	if opts&CharBound != 0 {
		if breakExtended(ucd.BoundStart, p.BoundClass(), ucd.InCBNone, p.IndicConjunctBreak(), state) {
			if len(dst) >= 1 {
				dst[0] = -1
			}
			if len(dst) >= 2 {
				dst[1] = r
			}
			return 2, nil
		}
	}
	if len(dst) >= 1 {
		dst[0] = r
	}
	return 1, nil
}

// decompositionFor selects the decomposition mapping for the requested
// form. Compatibility characters decompose only under Compat; their
// canonical mapping is nil then.
func decompositionFor(p *ucd.CharProperty, opts Options) []rune {
	if opts&Compat != 0 {
		if d := p.CompatDecomposition(); d != nil {
			return d
		}
	}
	return p.CanonicalDecomposition()
}

// decomposeSeq re-runs the engine on every codepoint of an expansion,
// so that folding a character into a decomposable one (and vice versa)
// resolves transitively.
func decomposeSeq(dst []rune, seq []rune, opts Options, state *GraphemeState) (int, error) {
	written := 0
	for _, c := range seq {
		var sub []rune
		if written < len(dst) {
			sub = dst[written:]
		}
		n, err := decomposeRune(sub, c, opts, state)
		if err != nil {
			return 0, err
		}
		written += n
	}
	return written, nil
}

// lumpRune maps lookalike codepoints to their ASCII stand-in. The rules
// fire in order; a codepoint matching several (KATAKANA-HIRAGANA DOUBLE
// HYPHEN is both a dash and listed for underscore) gets the first.
func lumpRune(r rune, cat ucd.Category) (rune, bool) {
	switch {
	case cat == ucd.Zs:
		return 0x0020, true
	case r == 0x2018 || r == 0x2019 || r == 0x02BC || r == 0x02C8:
		return 0x0027, true
	case cat == ucd.Pd || r == 0x2212:
		return 0x002D, true
	case r == 0x2044 || r == 0x2215:
		return 0x002F, true
	case r == 0x2236:
		return 0x003A, true
	case r == 0x2039 || r == 0x2329 || r == 0x3008:
		return 0x003C, true
	case r == 0x203A || r == 0x232A || r == 0x3009:
		return 0x003E, true
	case r == 0x2216:
		return 0x005C, true
	case r == 0x02C4 || r == 0x02C6 || r == 0x2038 || r == 0x2303:
		return 0x005E, true
	case cat == ucd.Pc || r == 0x30A0:
		return 0x005F, true
	case r == 0x02CB:
		return 0x0060, true
	case r == 0x2223:
		return 0x007C, true
	case r == 0x223C:
		return 0x007E, true
	}
	return r, false
}

// Decompose decodes UTF-8 input, runs the per-codepoint engine over it
// and canonically reorders the result. dst follows the two-call sizing
// convention of DecomposeRune: the returned count is the requirement,
// and reordering is only performed when the whole result fit into dst.
//
// With NullTerm, input additionally ends at the first NUL byte.
func Decompose(dst []rune, src []byte, opts Options) (int, error) {
	return DecomposeCustom(dst, src, opts, nil)
}

// DecomposeCustom is Decompose with a custom per-codepoint mapping,
// applied right after decoding.
func DecomposeCustom(dst []rune, src []byte, opts Options, mapper RuneMapper) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	var state GraphemeState
	wpos := 0
	for rpos := 0; rpos < len(src); {
		r, size, err := DecodeRune(src[rpos:])
		if err != nil {
			return 0, err
		}
		if opts&NullTerm != 0 && r == 0 {
			break
		}
		rpos += size
		if mapper != nil {
			r = mapper(r)
		}
		var sub []rune
		if wpos < len(dst) {
			sub = dst[wpos:]
		}
		n, err := decomposeRune(sub, r, opts, &state)
		if err != nil {
			return 0, err
		}
		wpos += n
		if wpos < 0 || wpos > math.MaxInt/2 {
			return 0, ErrOverflow
		}
	}
	if opts&(Composing|Decomposing) != 0 && wpos <= len(dst) {
		reorder(dst[:wpos])
	}
	return wpos, nil
}

// reorder sorts maximal runs of nonzero combining classes into
// nondecreasing order, the canonical ordering algorithm. The sort is a
// bubble pass with backtracking and stable: equal classes never swap.
// Starters (class 0) bound the runs and stay in place.
func reorder(buf []rune) {
	for pos := 0; pos+1 < len(buf); {
		c1 := ucd.Lookup(buf[pos]).CombiningClass()
		c2 := ucd.Lookup(buf[pos+1]).CombiningClass()
		if c1 > c2 && c2 > 0 {
			buf[pos], buf[pos+1] = buf[pos+1], buf[pos]
			if pos > 0 {
				pos--
			} else {
				pos++
			}
		} else {
			pos++
		}
	}
}
