package board

import "plinkotone/internal/physics"

// Materialize converts normalized descriptors into pixel-space pegs for a
// canvas of the given size. Radii are derived from the layout before any peg
// is built and are returned for marble creation on the same board.
func Materialize(descs []Descriptor, width, height float64) ([]*physics.Peg, physics.Radii) {
	nxs := make([]float64, len(descs))
	for i, d := range descs {
		nxs[i] = d.NX
	}
	radii := physics.ComputeRadii(nxs, width)

	pegs := make([]*physics.Peg, 0, len(descs))
	for _, d := range descs {
		p := physics.NewPeg(d.NX*width, d.NY*height, d.Kind, radii)
		p.NX = d.NX
		p.NY = d.NY
		pegs = append(pegs, p)
	}
	return pegs, radii
}
