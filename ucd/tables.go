package ucd

import (
	"sync"
	"time"
)

// Two-stage lookup: stage1 maps a codepoint's upper bits to a block
// number, stage2 maps block number and low bits to an index into the
// deduplicated property records. Identical blocks are shared, which
// keeps the tables at a fraction of a flat array's size.
const (
	blockShift = 8
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
	maxRune    = 0x10FFFF
	numBlocks  = (maxRune + 1) >> blockShift
)

type propertyTables struct {
	stage1 [numBlocks]uint16
	stage2 []uint16       // len = #unique blocks * blockSize
	props  []CharProperty // props[0] is the Cn sentinel
	seqs   []rune         // shared expansion store, 1-based
	pairs  map[uint64]rune
}

func pairKey(a, b rune) uint64 {
	return uint64(uint32(a))<<32 | uint64(uint32(b))
}

var global struct {
	once sync.Once
	t    *propertyTables
}

// tables returns the singleton property tables, building them on first
// use.
func tables() *propertyTables {
	global.once.Do(func() {
		start := time.Now()
		global.t = build()
		tracer().Infof("unicode property tables built in %v (%d records, %d blocks)",
			time.Since(start), len(global.t.props), len(global.t.stage2)/blockSize)
	})
	return global.t
}
