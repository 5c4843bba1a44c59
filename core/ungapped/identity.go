package ungapped

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// bytesPerLane is the width of one SWAR lane (a uint64).
const bytesPerLane = 8

const (
	lo7 = 0x7f7f7f7f7f7f7f7f
)

// bytesPerVec is the chunk width used by IdentityCount. It is chosen once at
// init from the widest vector unit the CPU reports; lanes inside a chunk are
// independent so the compiler can keep them in flight together.
var bytesPerVec = detectVecWidth()

func detectVecWidth() int {
	switch {
	case cpu.X86.HasAVX2:
		return 32
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 16
	default:
		return bytesPerLane
	}
}

// IdentityCount returns how many positions hold the same residue code in a
// and b, over the first min(len(a), len(b)) positions. The result is a match
// count, not a distance: callers wanting mismatches subtract it from the length.
func IdentityCount(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	cnt := 0
	full := n - n%bytesPerVec
	for off := 0; off < full; off += bytesPerVec {
		cnt += countChunk(a[off:off+bytesPerVec], b[off:off+bytesPerVec])
	}
	for i := full; i < n; i++ {
		if a[i] == b[i] {
			cnt++
		}
	}
	return cnt
}

// countChunk compares one chunk lane by lane. len(a) == len(b) and the length
// is a multiple of bytesPerLane.
func countChunk(a, b []byte) int {
	cnt := 0
	for off := 0; off+bytesPerLane <= len(a); off += bytesPerLane {
		x := loadLane(a[off:]) ^ loadLane(b[off:])
		cnt += bits.OnesCount64(zeroByteMask(x))
	}
	return cnt
}

// loadLane reads 8 bytes without any alignment requirement.
func loadLane(p []byte) uint64 { return binary.LittleEndian.Uint64(p) }

// zeroByteMask sets the high bit of every byte of x that is zero and clears
// everything else. Exact: no carries cross byte boundaries.
func zeroByteMask(x uint64) uint64 {
	t := (x & lo7) + lo7
	return ^(t | x | lo7)
}
