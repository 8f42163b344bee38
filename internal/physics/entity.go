package physics

import (
	"fmt"
	"math"

	"plinkotone/pkg/core"
)

// PegKind selects a peg's collision response.
type PegKind uint8

const (
	PegTone PegKind = iota
	PegBounce
	PegSplit
)

var pegKindNames = [...]string{
	PegTone:   "tone",
	PegBounce: "bounce",
	PegSplit:  "split",
}

var restitution = [...]float64{
	PegTone:   RestitutionTone,
	PegBounce: RestitutionBounce,
	PegSplit:  RestitutionSplit,
}

// String returns the kind's lowercase name.
func (k PegKind) String() string {
	if int(k) < len(pegKindNames) {
		return pegKindNames[k]
	}
	return pegKindNames[PegTone]
}

// Restitution returns the bounce coefficient for the kind. Unknown kinds
// behave like tone pegs.
func (k PegKind) Restitution() float64 {
	if int(k) < len(restitution) {
		return restitution[k]
	}
	return RestitutionTone
}

// Next cycles tone, bounce, split.
func (k PegKind) Next() PegKind {
	return PegKind((int(k) + 1) % len(pegKindNames))
}

// ParsePegKind maps a name back to a kind.
func ParsePegKind(name string) (PegKind, bool) {
	for i, n := range pegKindNames {
		if n == name {
			return PegKind(i), true
		}
	}
	return PegTone, false
}

// Peg is a static obstacle. Only LastHit changes after creation.
type Peg struct {
	ID     string
	X, Y   float64
	NX, NY float64
	Radius float64
	Kind   PegKind

	// LastHit is the simulation time of the most recent collision.
	LastHit float64
}

// Point is a trail sample.
type Point struct {
	X, Y float64
}

// Marble is a dynamic body owned by a State.
type Marble struct {
	ID     uint64
	X, Y   float64
	VX, VY float64
	Radius float64
	Alive  bool
	Trail  []Point
}

// NewPeg builds a peg at pixel position (x, y). The identifier is derived from
// the rounded coordinates, so two pegs that round to the same pixel share one.
func NewPeg(x, y float64, kind PegKind, radii Radii) *Peg {
	return &Peg{
		ID:     PegID(x, y),
		X:      x,
		Y:      y,
		Radius: radii.Peg,
		Kind:   kind,
	}
}

// PegID formats the position-derived identifier used by NewPeg.
func PegID(x, y float64) string {
	return fmt.Sprintf("%d_%d", int64(math.Round(x)), int64(math.Round(y)))
}

// NewMarble builds a live marble at rest vertically with a small random
// horizontal velocity.
func NewMarble(x, y float64, radii Radii, rng *core.RNG) *Marble {
	return &Marble{
		X:      x,
		Y:      y,
		VX:     rng.Jitter(DropJitter),
		Radius: radii.Marble,
		Alive:  true,
		Trail:  make([]Point, 0, TrailLength+1),
	}
}

func (m *Marble) pushTrail() {
	m.Trail = append(m.Trail, Point{X: m.X, Y: m.Y})
	if len(m.Trail) > TrailLength {
		copy(m.Trail, m.Trail[1:])
		m.Trail = m.Trail[:TrailLength]
	}
}
