package runa

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/npillmayer/runa/ucd"
)

// Transformer applies a transformation pipeline to a byte stream,
// implementing golang.org/x/text/transform.Transformer. That makes the
// pipeline composable with the x/text ecosystem:
//
//	t := runa.NewTransformer(runa.NFCOptions | runa.NLF2LF)
//	clean, _, err := transform.String(t, dirty)
//
// The stream is cut into chunks at split points where no reordering,
// composition, newline pairing or grapheme cluster can reach across,
// and each chunk runs through Map independently. A long run without
// such a split point (pathological mark sequences) is buffered in full
// by the transform machinery.
//
// NullTerm is meaningless on a stream and ignored.
type Transformer struct {
	opts Options
}

// NewTransformer returns a streaming transformer for the given options.
// Option validation is deferred to the first Transform call.
func NewTransformer(opts Options) *Transformer {
	return &Transformer{opts: opts &^ NullTerm}
}

var _ transform.Transformer = &Transformer{}

// Reset implements transform.Transformer. The transformer keeps no
// state between chunks, so there is nothing to do.
func (t *Transformer) Reset() {}

// Transform implements transform.Transformer.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if err := t.opts.validate(); err != nil {
		return 0, 0, err
	}
	for nSrc < len(src) {
		seg := nextSegment(src[nSrc:], atEOF)
		if seg < 0 {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, err := Map(src[nSrc:nSrc+seg], t.opts)
		if err != nil {
			return nDst, nSrc, err
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		copy(dst[nDst:], out)
		nDst += len(out)
		nSrc += seg
	}
	return nDst, nSrc, nil
}

// nextSegment returns the length of the leading chunk of p that can be
// transformed independently, i.e. the distance to the first safe split
// point after the first codepoint. Without atEOF, -1 asks for more
// input when no split point is in sight.
func nextSegment(p []byte, atEOF bool) int {
	if !utf8.FullRune(p) {
		if atEOF {
			return len(p) // let the pipeline report the malformed tail
		}
		return -1
	}
	prevRune, i := utf8.DecodeRune(p)
	prev := ucd.Lookup(prevRune)
	for i < len(p) {
		if !utf8.FullRune(p[i:]) {
			if atEOF {
				return len(p)
			}
			return -1
		}
		r, size := utf8.DecodeRune(p[i:])
		cur := ucd.Lookup(r)
		if safeSplit(prev, cur) {
			return i
		}
		i += size
		prev = cur
	}
	if atEOF {
		return len(p)
	}
	return -1
}

// safeSplit reports whether a chunk boundary between two adjacent
// codepoints preserves the pipeline semantics: nothing on the right may
// reorder, compose, or cluster with anything on the left. The test errs
// on the side of not splitting.
func safeSplit(prev, cur *ucd.CharProperty) bool {
	if cur.CombiningClass() != 0 || cur.CombinesBackward() {
		return false
	}
	cb, pb := cur.BoundClass(), prev.BoundClass()
	switch cb {
	case ucd.BoundExtend, ucd.BoundZWJ, ucd.BoundSpacingMark,
		ucd.BoundV, ucd.BoundT, ucd.BoundLF:
		return false
	}
	switch pb {
	case ucd.BoundPrepend:
		return false
	case ucd.BoundL:
		if cb == ucd.BoundL || cb == ucd.BoundLV || cb == ucd.BoundLVT {
			return false
		}
	case ucd.BoundZWJ:
		if cb == ucd.BoundExtendedPictographic {
			return false
		}
	case ucd.BoundRegionalIndicator:
		if cb == ucd.BoundRegionalIndicator {
			return false
		}
	}
	if cur.IndicConjunctBreak() == ucd.InCBConsonant &&
		prev.IndicConjunctBreak() != ucd.InCBNone {
		return false
	}
	return true
}
