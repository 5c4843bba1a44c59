package submat

import "strings"

// blosum62Text is BLOSUM62 in half-bit units over the 20 amino acids plus X,
// with the Robinson & Robinson (1991) residue frequencies as background.
const blosum62Text = `# BLOSUM62, half-bit units
# background: 0.07805 0.05129 0.04487 0.05364 0.01925 0.04264 0.06295 0.07377 0.02199 0.05142 0.09019 0.05744 0.02243 0.03856 0.05203 0.07120 0.05841 0.01330 0.03216 0.06441
   A  R  N  D  C  Q  E  G  H  I  L  K  M  F  P  S  T  W  Y  V  X
A  4 -1 -2 -2  0 -1 -1  0 -2 -1 -1 -1 -1 -2 -1  1  0 -3 -2  0 -1
R -1  5  0 -2 -3  1  0 -2  0 -3 -2  2 -1 -3 -2 -1 -1 -3 -2 -3 -1
N -2  0  6  1 -3  0  0  0  1 -3 -3  0 -2 -3 -2  1  0 -4 -2 -3 -1
D -2 -2  1  6 -3  0  2 -1 -1 -3 -4 -1 -3 -3 -1  0 -1 -4 -3 -3 -1
C  0 -3 -3 -3  9 -3 -4 -3 -3 -1 -1 -3 -1 -2 -3 -1 -1 -2 -2 -1 -1
Q -1  1  0  0 -3  5  2 -2  0 -3 -2  1  0 -3 -1  0 -1 -2 -1 -2 -1
E -1  0  0  2 -4  2  5 -2  0 -3 -3  1 -2 -3 -1  0 -1 -3 -2 -2 -1
G  0 -2  0 -1 -3 -2 -2  6 -2 -4 -4 -2 -3 -3 -2  0 -2 -2 -3 -3 -1
H -2  0  1 -1 -3  0  0 -2  8 -3 -3 -1 -2 -1 -2 -1 -2 -2  2 -3 -1
I -1 -3 -3 -3 -1 -3 -3 -4 -3  4  2 -3  1  0 -3 -2 -1 -3 -1  3 -1
L -1 -2 -3 -4 -1 -2 -3 -4 -3  2  4 -2  2  0 -3 -2 -1 -2 -1  1 -1
K -1  2  0 -1 -3  1  1 -2 -1 -3 -2  5 -1 -3 -1  0 -1 -3 -2 -2 -1
M -1 -1 -2 -3 -1  0 -2 -3 -2  1  2 -1  5  0 -2 -1 -1 -1 -1  1 -1
F -2 -3 -3 -3 -2 -3 -3 -3 -1  0  0 -3  0  6 -4 -2 -2  1  3 -1 -1
P -1 -2 -2 -1 -3 -1 -1 -2 -2 -3 -3 -1 -2 -4  7 -1 -1 -4 -3 -2 -1
S  1 -1  1  0 -1  0  0  0 -1 -2 -2  0 -1 -2 -1  4  1 -3 -2 -2 -1
T  0 -1  0 -1 -1 -1 -1 -2 -2 -1 -1 -1 -1 -2 -1  1  5 -2 -2  0 -1
W -3 -3 -4 -4 -2 -2 -3 -2 -2 -3 -2 -3 -1  1 -4 -3 -2 11  2 -3 -1
Y -2 -2 -2 -3 -2 -1 -2 -3  2 -1 -1 -2 -1  3 -3 -2 -2  2  7 -1 -1
V  0 -3 -3 -3 -1 -2 -2 -3 -3  3  1 -2  1 -1 -2 -2  0 -3 -1  4 -1
X -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1
`

var blosum62 = mustLoad(blosum62Text, "blosum62")

// BLOSUM62 returns the shared built-in protein table.
func BLOSUM62() *Matrix { return blosum62 }

// Nucleotide builds an A/C/G/T table with the given match and mismatch
// scores. N is the sentinel and scores mismatch against everything.
func Nucleotide(match, mismatch int8) *Matrix {
	const alpha = "ACGTN"
	scores := make([][]int8, len(alpha))
	for i := range scores {
		scores[i] = make([]int8, len(alpha))
		for j := range scores[i] {
			if i == j && alpha[i] != 'N' {
				scores[i][j] = match
			} else {
				scores[i][j] = mismatch
			}
		}
	}
	m, err := New("nucleotide", alpha, scores, nil)
	if err != nil {
		panic(err)
	}
	// RNA input scores like DNA.
	m.codes['U'], m.codes['u'] = m.codes['T'], m.codes['T']
	return m
}

func mustLoad(text, name string) *Matrix {
	m, err := Load(strings.NewReader(text), name)
	if err != nil {
		panic(err)
	}
	return m
}
