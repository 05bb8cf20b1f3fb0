/*
Package runa transforms Unicode text: normalization, case folding,
character lumping and stripping, and grapheme cluster segmentation.

Text arriving from the outside world is rarely in the shape an
application wants it in. Combining accents may trail their base letter
or be baked into a precomposed form; compatibility characters mimic
letters they are not; line endings come in at least three traditions.
This package re-shapes UTF-8 text along the lines of the Unicode
standard annexes, driven by a single options word:

	out, err := runa.Map([]byte("Héllo\r\n"), runa.Composing|runa.Stable|runa.NLF2LF)

The usual normal forms are pre-packaged:

	nfc, err := runa.NFC(input)
	key, err := runa.NFKCCasefold(ident) // caseless, compatibility-equivalent key

Transformation runs in two phases, mirroring the structure of canonical
normalization: Decompose expands codepoints (and folds, strips or lumps
them, depending on options) into a rune buffer, Normalize canonically
re-orders and optionally re-composes that buffer. Both phases are public,
so callers can hook custom per-rune mapping in between (MapCustom), or
reuse a buffer across calls (Decompose with a preallocated destination
follows the usual two-call pattern: a nil destination reports the
required size).

Grapheme cluster boundaries (UAX#29, extended grapheme clusters) are
detected by GraphemeBreak for simple two-rune queries and by
GraphemeBreakState for correct stateful scanning, including emoji ZWJ
sequences, regional-indicator pairs and Indic conjunct clusters. A
Graphemes iterator and column-width helpers build on them.

Per-codepoint properties — categories, combining classes, case
mappings, decompositions, widths — live in the subpackage ucd and are
consulted through runa.Property.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runa.core'.
func tracer() tracing.Trace {
	return tracing.Select("runa.core")
}
