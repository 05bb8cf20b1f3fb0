package runa

import "strings"

// Options is a bitmask steering the transformation pipeline. Flags
// combine freely with two exceptions: Composing and Decomposing are
// mutually exclusive, and StripMark requires one of them. Violations
// are reported as ErrInvalidOptions before any input is touched.
type Options uint32

const (
	// NullTerm ends the input at the first NUL byte instead of at the
	// slice boundary.
	NullTerm Options = 1 << iota
	// Stable keeps the transformation within the Unicode versioning
	// stability policy: canonical composition never produces a
	// composition exclusion.
	Stable
	// Compat replaces compatibility characters with their compatibility
	// decomposition (the K in NFKC/NFKD).
	Compat
	// Composing canonically composes the result (NFC family).
	Composing
	// Decomposing leaves the result canonically decomposed (NFD family).
	Decomposing
	// Ignore drops default-ignorable codepoints such as SOFT HYPHEN and
	// ZERO WIDTH SPACE.
	Ignore
	// RejectNA aborts with ErrNotAssigned when an unassigned codepoint
	// is encountered.
	RejectNA
	// NLF2LS converts newline functions (CR, LF, CRLF, NEL) to LINE
	// SEPARATOR.
	NLF2LS
	// NLF2PS converts newline functions to PARAGRAPH SEPARATOR.
	NLF2PS
	// StripCC removes control characters; HT and the newline functions
	// not covered by an NLF flag become spaces.
	StripCC
	// CaseFold applies full case folding.
	CaseFold
	// CharBound inserts the marker codepoint -1 in front of each
	// grapheme cluster.
	CharBound
	// Lump replaces certain lookalike characters by a canonical
	// stand-in, e.g. all space characters by ASCII space and all dashes
	// by hyphen-minus.
	Lump
	// StripMark removes nonspacing, spacing and enclosing marks
	// (accents and the like); requires Composing or Decomposing.
	StripMark
	// StripNA drops unassigned codepoints.
	StripNA
)

// NLF2LF converts newline functions to ordinary LINE FEED.
const NLF2LF = NLF2LS | NLF2PS

// Option sets of the standard normal forms, accepted by Map and friends
// and pre-packaged as the functions NFC, NFD, NFKC, NFKD and
// NFKCCasefold.
const (
	NFCOptions          = Composing | Stable
	NFDOptions          = Decomposing | Stable
	NFKCOptions         = Composing | Stable | Compat
	NFKDOptions         = Decomposing | Stable | Compat
	NFKCCasefoldOptions = Composing | Stable | Compat | CaseFold | Ignore
)

// validate rejects incoherent flag combinations.
func (o Options) validate() error {
	if o&Composing != 0 && o&Decomposing != 0 {
		return ErrInvalidOptions
	}
	if o&StripMark != 0 && o&(Composing|Decomposing) == 0 {
		return ErrInvalidOptions
	}
	return nil
}

var optionNames = []struct {
	flag Options
	name string
}{
	{NullTerm, "NULLTERM"}, {Stable, "STABLE"}, {Compat, "COMPAT"},
	{Composing, "COMPOSE"}, {Decomposing, "DECOMPOSE"}, {Ignore, "IGNORE"},
	{RejectNA, "REJECTNA"}, {NLF2LS, "NLF2LS"}, {NLF2PS, "NLF2PS"},
	{StripCC, "STRIPCC"}, {CaseFold, "CASEFOLD"}, {CharBound, "CHARBOUND"},
	{Lump, "LUMP"}, {StripMark, "STRIPMARK"}, {StripNA, "STRIPNA"},
}

func (o Options) String() string {
	if o == 0 {
		return "none"
	}
	var b strings.Builder
	for _, f := range optionNames {
		if o&f.flag == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(f.name)
	}
	return b.String()
}
