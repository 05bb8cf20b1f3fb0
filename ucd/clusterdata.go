package ucd

// Range data for grapheme cluster segmentation, Unicode 15.1. The
// linked data modules (stdlib unicode, x/text) do not export these
// sets, so they are maintained here:
//
//   ▪︎ Extended_Pictographic     from emoji-data.txt
//   ▪︎ InCB Consonant and Linker from DerivedCoreProperties.txt
//   ▪︎ Grapheme_Cluster_Break exceptions and additions
//     from GraphemeBreakProperty.txt
//
// Ranges are inclusive and sorted by first codepoint.

type runeRange struct {
	lo, hi rune
}

func inRanges(r rune, ranges []runeRange) bool {
	lo, hi := 0, len(ranges)
	for lo < hi {
		m := (lo + hi) / 2
		if r < ranges[m].lo {
			hi = m
		} else if r > ranges[m].hi {
			lo = m + 1
		} else {
			return true
		}
	}
	return false
}

// extendedPictographic lists Extended_Pictographic=Yes, including the
// unassigned codepoints reserved for future emoji.
var extendedPictographic = []runeRange{
	{0x00A9, 0x00A9}, {0x00AE, 0x00AE}, {0x203C, 0x203C}, {0x2049, 0x2049},
	{0x2122, 0x2122}, {0x2139, 0x2139}, {0x2194, 0x2199}, {0x21A9, 0x21AA},
	{0x231A, 0x231B}, {0x2328, 0x2328}, {0x2388, 0x2388}, {0x23CF, 0x23CF},
	{0x23E9, 0x23F3}, {0x23F8, 0x23FA}, {0x24C2, 0x24C2}, {0x25AA, 0x25AB},
	{0x25B6, 0x25B6}, {0x25C0, 0x25C0}, {0x25FB, 0x25FE}, {0x2600, 0x2605},
	{0x2607, 0x2612}, {0x2614, 0x2685}, {0x2690, 0x2705}, {0x2708, 0x2712},
	{0x2714, 0x2714}, {0x2716, 0x2716}, {0x271D, 0x271D}, {0x2721, 0x2721},
	{0x2728, 0x2728}, {0x2733, 0x2734}, {0x2744, 0x2744}, {0x2747, 0x2747},
	{0x274C, 0x274C}, {0x274E, 0x274E}, {0x2753, 0x2755}, {0x2757, 0x2757},
	{0x2763, 0x2767}, {0x2795, 0x2797}, {0x27A1, 0x27A1}, {0x27B0, 0x27B0},
	{0x27BF, 0x27BF}, {0x2934, 0x2935}, {0x2B05, 0x2B07}, {0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50}, {0x2B55, 0x2B55}, {0x3030, 0x3030}, {0x303D, 0x303D},
	{0x3297, 0x3297}, {0x3299, 0x3299},
	{0x1F000, 0x1F0FF}, {0x1F10D, 0x1F10F}, {0x1F12F, 0x1F12F},
	{0x1F16C, 0x1F171}, {0x1F17E, 0x1F17F}, {0x1F18E, 0x1F18E},
	{0x1F191, 0x1F19A}, {0x1F1AD, 0x1F1E5}, {0x1F201, 0x1F20F},
	{0x1F21A, 0x1F21A}, {0x1F22F, 0x1F22F}, {0x1F232, 0x1F23A},
	{0x1F23C, 0x1F23F}, {0x1F249, 0x1F3FA}, {0x1F400, 0x1F53D},
	{0x1F546, 0x1F64F}, {0x1F680, 0x1F6FF}, {0x1F774, 0x1F77F},
	{0x1F7D5, 0x1F7FF}, {0x1F80C, 0x1F80F}, {0x1F848, 0x1F84F},
	{0x1F85A, 0x1F85F}, {0x1F888, 0x1F88F}, {0x1F8AE, 0x1F8FF},
	{0x1F90C, 0x1F93A}, {0x1F93C, 0x1F945}, {0x1F947, 0x1FAFF},
	{0x1FC00, 0x1FFFD},
}

// emojiModifier covers the skin tone modifiers, folded into the EXTEND
// bound class per GraphemeBreakProperty.
var emojiModifier = []runeRange{
	{0x1F3FB, 0x1F3FF},
}

// incbConsonant lists InCB=Consonant: the conjunct-forming consonants
// of Devanagari, Bengali, Gujarati, Oriya, Telugu and Malayalam.
var incbConsonant = []runeRange{
	{0x0915, 0x0939}, {0x0958, 0x095F}, {0x0978, 0x097F},
	{0x0995, 0x09A8}, {0x09AA, 0x09B0}, {0x09B2, 0x09B2},
	{0x09B6, 0x09B9}, {0x09DC, 0x09DD}, {0x09DF, 0x09DF},
	{0x09F0, 0x09F1},
	{0x0A95, 0x0AA8}, {0x0AAA, 0x0AB0}, {0x0AB2, 0x0AB3},
	{0x0AB5, 0x0AB9},
	{0x0B15, 0x0B28}, {0x0B2A, 0x0B30}, {0x0B32, 0x0B33},
	{0x0B35, 0x0B39}, {0x0B5C, 0x0B5D}, {0x0B5F, 0x0B5F},
	{0x0B71, 0x0B71},
	{0x0C15, 0x0C28}, {0x0C2A, 0x0C39}, {0x0C58, 0x0C5A},
	{0x0D15, 0x0D3A},
}

// incbLinker lists InCB=Linker, the viramas of the same six scripts.
var incbLinker = []runeRange{
	{0x094D, 0x094D}, {0x09CD, 0x09CD}, {0x0ACD, 0x0ACD},
	{0x0B4D, 0x0B4D}, {0x0C4D, 0x0C4D}, {0x0D4D, 0x0D4D},
}

// spacingMarkExceptions lists Mc codepoints carrying
// Grapheme_Cluster_Break=Other instead of SpacingMark.
var spacingMarkExceptions = []runeRange{
	{0x102B, 0x102C}, {0x1038, 0x1038}, {0x1062, 0x1064},
	{0x1067, 0x106D}, {0x1083, 0x1083}, {0x1087, 0x108C},
	{0x108F, 0x108F}, {0x109A, 0x109C}, {0x1A61, 0x1A61},
	{0x1A63, 0x1A64}, {0xAA7B, 0xAA7B}, {0xAA7D, 0xAA7D},
	{0x11720, 0x11721},
}

// spacingMarkExtra lists non-Mc codepoints with
// Grapheme_Cluster_Break=SpacingMark (the Thai and Lao vowel AM).
var spacingMarkExtra = []runeRange{
	{0x0E33, 0x0E33}, {0x0EB3, 0x0EB3},
}

// prependExtra lists Grapheme_Cluster_Break=Prepend codepoints beyond
// the prepended concatenation marks (resolved from the stdlib property
// table): repha and cluster-initial letters of various Indic scripts.
var prependExtra = []runeRange{
	{0x0D4E, 0x0D4E}, {0x111C2, 0x111C3}, {0x1193F, 0x1193F},
	{0x11941, 0x11941}, {0x11A3A, 0x11A3A}, {0x11A84, 0x11A89},
	{0x11D46, 0x11D46}, {0x11F02, 0x11F02},
}

// Hangul jamo ranges, including the Extended-A and Extended-B blocks.
var (
	hangulL = []runeRange{{0x1100, 0x115F}, {0xA960, 0xA97C}}
	hangulV = []runeRange{{0x1160, 0x11A7}, {0xD7B0, 0xD7C6}}
	hangulT = []runeRange{{0x11A8, 0x11FF}, {0xD7CB, 0xD7FB}}
)

// bidiMirroredExtra supplements the paired-bracket data of x/text with
// mirrored codepoints that are not brackets there.
var bidiMirroredExtra = []runeRange{
	{0x003C, 0x003C}, {0x003E, 0x003E}, {0x00AB, 0x00AB},
	{0x00BB, 0x00BB}, {0x2039, 0x2039}, {0x203A, 0x203A},
}

// egyptianControls are the Egyptian hieroglyph format controls, format
// characters that are not default-ignorable.
var egyptianControls = []runeRange{
	{0x13430, 0x1343F},
}

// cjkExtI is CJK Unified Ideographs Extension I, the repertoire
// addition of Unicode 15.1. Toolchains carrying 15.0 data report these
// as unassigned, so the block is stamped explicitly: category Lo, East
// Asian wide.
var cjkExtI = []runeRange{
	{0x2EBF0, 0x2EE5D},
}
