package runa

// Map transforms UTF-8 input according to opts and returns the
// transformed UTF-8 bytes. It strings the full pipeline together:
// decode, per-codepoint decomposition with all option-driven mappings,
// canonical reordering, normalization passes, re-encoding. The input is
// never modified.
func Map(src []byte, opts Options) ([]byte, error) {
	return MapCustom(src, opts, nil)
}

// MapCustom is Map with a caller-supplied codepoint mapping, applied to
// each codepoint before all built-in options.
func MapCustom(src []byte, opts Options, mapper RuneMapper) ([]byte, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("mapping %d input bytes with options %v", len(src), opts)
	n, err := DecomposeCustom(nil, src, opts, mapper)
	if err != nil {
		return nil, err
	}
	buf := make([]rune, n)
	if _, err := DecomposeCustom(buf, src, opts, mapper); err != nil {
		return nil, err
	}
	return Reencode(buf, opts)
}

// NFD returns the canonical decomposition of the input.
func NFD(src []byte) ([]byte, error) { return Map(src, NFDOptions) }

// NFC returns the canonical composition of the input.
func NFC(src []byte) ([]byte, error) { return Map(src, NFCOptions) }

// NFKD returns the compatibility decomposition of the input.
func NFKD(src []byte) ([]byte, error) { return Map(src, NFKDOptions) }

// NFKC returns the compatibility composition of the input.
func NFKC(src []byte) ([]byte, error) { return Map(src, NFKCOptions) }

// NFKCCasefold returns the input case-folded, stripped of ignorable
// codepoints and compatibility-composed: the NFKC_Casefold form used
// for caseless identifier matching.
func NFKCCasefold(src []byte) ([]byte, error) { return Map(src, NFKCCasefoldOptions) }
