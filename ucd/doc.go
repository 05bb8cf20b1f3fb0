/*
Package ucd provides per-codepoint properties from the Unicode Character
Database, packaged for the transformation pipeline of package runa.

Every Unicode codepoint maps to a property record. Records carry the
general category, canonical combining class, bidi class, decomposition
mappings, case mappings, the character width, and the classes driving
grapheme cluster segmentation (UAX#29), including the Indic conjunct
break property introduced with Unicode 15.1.

Lookup is a two-stage table walk and never fails: unassigned and
out-of-range codepoints resolve to a sentinel record with category Cn.

	p := ucd.Lookup('é')
	p.Category()       // ucd.Ll
	p.CombiningClass() // 0

The tables are not shipped as generated source. They are derived once,
at first lookup, from the data carried by the Go standard library and
by golang.org/x/text (norm, cases, bidi, width), plus a small set of
cluster-break ranges in this package which those modules do not expose.
Construction walks the full codepoint space and takes a moment; callers
who care can front-load it with Setup.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'runa.ucd'.
func tracer() tracing.Trace {
	return tracing.Select("runa.ucd")
}
