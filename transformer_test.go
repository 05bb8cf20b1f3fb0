package runa

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/transform"
)

func TestTransformerString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	for i, s := range normCorpus {
		got, _, err := transform.String(NewTransformer(NFCOptions), s)
		assert.NoError(t, err, "corpus entry %d", i)
		assert.Equal(t, mapString(t, s, NFCOptions), got, "corpus entry %d", i)
		got, _, err = transform.String(NewTransformer(NFKCCasefoldOptions), s)
		assert.NoError(t, err, "corpus entry %d", i)
		assert.Equal(t, mapString(t, s, NFKCCasefoldOptions), got, "corpus entry %d", i)
	}
	got, _, err := transform.String(NewTransformer(NFCOptions|NLF2LF), "a\r\nb\rc")
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\nc", got)
}

func TestTransformerLongInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	// Larger than the transform package's initial buffer, so the
	// machinery has to window the input and resume.
	long := strings.Repeat("amélioration ", 64)
	got, _, err := transform.String(NewTransformer(NFCOptions), long)
	assert.NoError(t, err)
	assert.Equal(t, mapString(t, long, NFCOptions), got)
}

func TestTransformerShortDst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	tr := NewTransformer(NFCOptions)
	dst := make([]byte, 1)
	nDst, nSrc, err := tr.Transform(dst, []byte("ab"), true)
	assert.Equal(t, transform.ErrShortDst, err)
	assert.Equal(t, 1, nDst, "the first segment fits")
	assert.Equal(t, 1, nSrc)
	assert.Equal(t, byte('a'), dst[0])
}

func TestTransformerShortSrc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	tr := NewTransformer(NFCOptions)
	dst := make([]byte, 16)
	acute := []byte("e\u0301")
	// Incomplete trailing codepoint: ask for more input.
	nDst, nSrc, err := tr.Transform(dst, acute[:2], false)
	assert.Equal(t, transform.ErrShortSrc, err)
	assert.Equal(t, 0, nDst)
	assert.Equal(t, 0, nSrc)
	// A complete codepoint may still combine with what follows.
	_, nSrc, err = tr.Transform(dst, acute[:1], false)
	assert.Equal(t, transform.ErrShortSrc, err)
	assert.Equal(t, 0, nSrc)
	// At the end of input there is nothing to wait for.
	nDst, nSrc, err = tr.Transform(dst, acute, true)
	assert.NoError(t, err)
	assert.Equal(t, 3, nSrc)
	assert.Equal(t, "é", string(dst[:nDst]))
}

func TestTransformerOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "runa.core")
	defer teardown()
	//
	tr := NewTransformer(Composing | Decomposing)
	_, _, err := tr.Transform(make([]byte, 8), []byte("a"), true)
	assert.ErrorIs(t, err, ErrInvalidOptions)
	// NullTerm makes no sense on a stream and is dropped: NUL bytes
	// pass through instead of ending the input.
	got, _, err := transform.String(NewTransformer(NFCOptions|NullTerm), "a\x00b")
	assert.NoError(t, err)
	assert.Equal(t, "a\x00b", got)
}
