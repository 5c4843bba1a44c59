package ungapped

import (
	"fmt"
	"strings"
)

// Mode selects the per-diagonal scoring routine.
type Mode int

const (
	// Hamming counts identical residue pairs.
	Hamming Mode = iota
	// Substitution is the local running-max substitution score.
	Substitution
	// Alignment is Substitution plus start/end of the best stretch.
	Alignment
	// Global sums the substitution score over the whole window.
	Global
)

var modeNames = [...]string{
	Hamming:      "hamming",
	Substitution: "substitution",
	Alignment:    "alignment",
	Global:       "global",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a CLI name to a Mode (case-insensitive).
func ParseMode(s string) (Mode, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == want {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown scoring mode %q (want hamming | substitution | alignment | global)", s)
}
