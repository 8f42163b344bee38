package physics

import (
	"math"
	"slices"
)

// Radii holds the peg and marble radii for one materialized board. It replaces
// process-wide radius globals; every entity for a board is built from the
// same value.
type Radii struct {
	Peg    float64
	Marble float64
}

// DefaultRadii is used for boards with fewer than two pegs.
func DefaultRadii() Radii {
	return Radii{Peg: DefaultPegRadius, Marble: DefaultMarbleRadius}
}

// ComputeRadii derives peg and marble radii from the average horizontal
// spacing of the given normalized x coordinates. Gaps under DuplicateGap are
// treated as pegs sharing a column and ignored.
func ComputeRadii(nxs []float64, width float64) Radii {
	if len(nxs) < 2 {
		return DefaultRadii()
	}

	sorted := slices.Clone(nxs)
	slices.Sort(sorted)

	total := 0.0
	count := 0
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i] - sorted[i-1]
		if gap > DuplicateGap {
			total += gap
			count++
		}
	}

	spacing := FallbackSpacing
	if count > 0 {
		spacing = total / float64(count)
	}
	pixels := spacing * width

	peg := math.Round(pixels / PegSpacingDivisor)
	peg = math.Max(MinPegRadius, math.Min(MaxPegRadius, peg))
	return Radii{Peg: peg, Marble: math.Round(peg * MarbleToPegRatio)}
}

// RadiiForPegs is ComputeRadii over the normalized x of already built pegs.
func RadiiForPegs(pegs []*Peg, width float64) Radii {
	nxs := make([]float64, len(pegs))
	for i, p := range pegs {
		nxs[i] = p.NX
	}
	return ComputeRadii(nxs, width)
}
