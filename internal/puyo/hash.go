package puyo

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// zobristTable[x][y][c] is a pseudo-random 64-bit value for cell (x,y)
// holding colour c. Field.hash is the XOR of these values over every
// occupied cell, so it can be updated in O(1) per placed puyo instead of
// rescanning the board. No search path reads it: the beam search worker
// does not call Hash.
var zobristTable [Width + 1][Height + 1][numColors]uint64

const numColors = 8 // Empty, Ojama, 2 reserved, Red..Green

func init() {
	var buf [8]byte
	for x := 0; x <= Width; x++ {
		for y := 0; y <= Height; y++ {
			for c := 0; c < numColors; c++ {
				binary.LittleEndian.PutUint32(buf[0:4], uint32(x)<<16|uint32(y)<<8|uint32(c))
				binary.LittleEndian.PutUint32(buf[4:8], uint32(x*31+y*17+c*7))
				zobristTable[x][y][c] = xxhash.Sum64(buf[:])
			}
		}
	}
}

// Hash returns the field's current Zobrist-style incremental hash: equal
// boards always hash equal, and it's cheap enough to call per beam search
// node for duplicate-state pruning.
func (f *Field) Hash() uint64 {
	return f.hash
}

// rehashFull recomputes f.hash from scratch; used after bulk mutations
// (gravity, row compaction) where cells moved to different coordinates and
// the incremental XOR trick in setColor no longer applies cell-by-cell.
func (f *Field) rehashFull() {
	var h uint64
	for x := 1; x <= Width; x++ {
		for y := 1; y <= Height; y++ {
			if c := f.cells[x][y]; c != Empty {
				h ^= zobristTable[x][y][int(c)]
			}
		}
	}
	f.hash = h
}
