package runa

import (
	"unicode/utf8"

	"github.com/npillmayer/runa/ucd"
)

// Normalize post-processes a codepoint buffer in place and returns the
// number of codepoints remaining. Up to three passes run, depending on
// options: newline substitution (NLF2LS, NLF2PS, NLF2LF, with StripCC
// extending it to VT and FF), control stripping (StripCC), and
// canonical composition (Composing), including algorithmic Hangul
// composition and the Stable gate on composition exclusions.
//
// The buffer must be canonically ordered already; Decompose produces
// such buffers. NullTerm plays no role here, the buffer length governs.
func Normalize(buf []rune, opts Options) (int, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	length := len(buf)
	if opts&(NLF2LS|NLF2PS|StripCC) != 0 {
		wpos := 0
		for rpos := 0; rpos < length; rpos++ {
			uc := buf[rpos]
			if uc == 0x000D && rpos < length-1 && buf[rpos+1] == 0x000A {
				rpos++ // CRLF counts as one newline function
			}
			if uc == 0x000A || uc == 0x000D || uc == 0x0085 ||
				(opts&StripCC != 0 && (uc == 0x000B || uc == 0x000C)) {
				switch {
				case opts&NLF2LF == NLF2LF:
					buf[wpos] = 0x000A
				case opts&NLF2LS != 0:
					buf[wpos] = 0x2028
				case opts&NLF2PS != 0:
					buf[wpos] = 0x2029
				default:
					buf[wpos] = 0x0020
				}
				wpos++
			} else if opts&StripCC != 0 && (uc < 0x0020 || (uc >= 0x007F && uc < 0x00A0)) {
				// Note that this also strips the CharBound markers, as
				// they compare below 0x20.
				if uc == 0x0009 {
					buf[wpos] = 0x0020
					wpos++
				}
			} else {
				buf[wpos] = uc
				wpos++
			}
		}
		length = wpos
	}
	if opts&Composing != 0 {
		starter := -1 // write index of the current starter, -1 = none
		var starterProp *ucd.CharProperty
		maxCC := -1
		wpos := 0
		for rpos := 0; rpos < length; rpos++ {
			cur := buf[rpos]
			curProp := ucd.Lookup(cur)
			cc := curProp.CombiningClass()
			if starter >= 0 && cc > maxCC {
				// Hangul L+V and LV+T compose arithmetically.
				if lindex := buf[starter] - ucd.HangulLBase; lindex >= 0 && lindex < ucd.HangulLCount {
					if vindex := cur - ucd.HangulVBase; vindex >= 0 && vindex < ucd.HangulVCount {
						buf[starter] = ucd.HangulSBase +
							(lindex*ucd.HangulVCount+vindex)*ucd.HangulTCount
						starterProp = nil
						continue
					}
				}
				if sindex := buf[starter] - ucd.HangulSBase; sindex >= 0 && sindex < ucd.HangulSCount &&
					sindex%ucd.HangulTCount == 0 {
					if tindex := cur - ucd.HangulTBase; tindex > 0 && tindex < ucd.HangulTCount {
						buf[starter] += tindex
						starterProp = nil
						continue
					}
				}
				if starterProp == nil {
					starterProp = ucd.Lookup(buf[starter])
				}
				if starterProp.CombinesForward() && curProp.CombinesBackward() {
					if composite, ok := ucd.ComposePair(buf[starter], cur); ok {
						if opts&Stable == 0 || !ucd.Lookup(composite).CompositionExclusion() {
							buf[starter] = composite
							starterProp = nil
							continue
						}
					}
				}
			}
			buf[wpos] = cur
			if cc != 0 {
				if cc > maxCC {
					maxCC = cc
				}
			} else {
				starter = wpos
				starterProp = nil
				maxCC = -1
			}
			wpos++
		}
		length = wpos
	}
	return length, nil
}

// Reencode normalizes a codepoint buffer (see Normalize) and encodes
// the remainder as UTF-8. Under CharBound, the cluster markers in the
// buffer become 0xFF bytes; without it, a marker reports
// ErrInvalidUTF8, like any other value outside the Unicode codespace.
func Reencode(buf []rune, opts Options) ([]byte, error) {
	n, err := Normalize(buf, opts)
	if err != nil {
		return nil, err
	}
	marked := opts&CharBound != 0
	size := 0
	for _, r := range buf[:n] {
		l := utf8.RuneLen(r)
		if marked {
			l = markedRuneLen(r)
		}
		if l < 0 {
			return nil, ErrInvalidUTF8
		}
		size += l
	}
	out := make([]byte, size)
	wpos := 0
	for _, r := range buf[:n] {
		if marked {
			wpos += encodeMarkedRune(out[wpos:], r)
		} else {
			wpos += utf8.EncodeRune(out[wpos:], r)
		}
	}
	return out, nil
}
