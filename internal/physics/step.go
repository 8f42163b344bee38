package physics

import (
	"math"

	"plinkotone/pkg/core"
)

// Substeps returns how many fixed substeps cover a frame of dt seconds. Long
// frames are capped at MaxSubsteps, so a stall plays back in slow motion
// instead of catching up.
func Substeps(dt float64) int {
	if !(dt > 0) {
		return 0
	}
	n := math.Ceil(dt / FixedDT)
	if n > MaxSubsteps {
		return MaxSubsteps
	}
	return int(n)
}

// Step advances every live marble by one frame of dt seconds. The state is
// mutated in place: positions, velocities, trails, peg hit times, and the
// live collection after culling and eviction. rng supplies all randomness so
// a fixed stream reproduces a run exactly.
func Step(s *State, dt float64, rng *core.RNG) StepResult {
	var res StepResult
	res.Substeps = Substeps(dt)
	grav := BaseGravity * s.Gravity

	for sub := 0; sub < res.Substeps; sub++ {
		s.Time += FixedDT
		for i := len(s.Marbles) - 1; i >= 0; i-- {
			m := s.Marbles[i]
			if !m.Alive {
				continue
			}
			integrate(m, grav)
			collideWalls(m, s.Width)
			// Culling waits for the top edge, so a center just past the
			// margin survives until the whole body has left.
			if m.Y-m.Radius > s.Height+FloorMargin {
				m.Alive = false
				continue
			}
			collidePegs(s, m, rng, &res)
			m.pushTrail()
		}
	}

	res.Culled, res.Evicted = s.compact()
	return res
}

func integrate(m *Marble, grav float64) {
	m.VY += grav * FixedDT
	m.VX *= Damping
	m.VY *= Damping
	m.X += m.VX * FixedDT
	m.Y += m.VY * FixedDT
}

func collideWalls(m *Marble, width float64) {
	if m.X-m.Radius < 0 {
		m.X = m.Radius
		m.VX = math.Abs(m.VX) * WallRestitution
	} else if m.X+m.Radius > width {
		m.X = width - m.Radius
		m.VX = -math.Abs(m.VX) * WallRestitution
	}
}

func collidePegs(s *State, m *Marble, rng *core.RNG, res *StepResult) {
	for _, peg := range s.Pegs {
		dx := m.X - peg.X
		dy := m.Y - peg.Y
		distSq := dx*dx + dy*dy
		minDist := m.Radius + peg.Radius
		if distSq >= minDist*minDist {
			continue
		}
		dist := math.Sqrt(distSq)
		if dist == 0 {
			// no usable normal
			continue
		}

		nx := dx / dist
		ny := dy / dist
		overlap := minDist - dist
		m.X += nx * overlap
		m.Y += ny * overlap

		dot := m.VX*nx + m.VY*ny
		if dot >= 0 {
			continue
		}
		k := 1 + peg.Kind.Restitution()
		m.VX -= k * dot * nx
		m.VY -= k * dot * ny
		m.VX += rng.Jitter(CollisionJitter)

		if peg.Kind == PegSplit && len(s.Marbles)+len(res.Spawned) < MaxMarbles {
			child := NewMarble(m.X, m.Y, s.Radii, rng)
			child.VX = -m.VX * SplitVelocity
			child.VY = m.VY * SplitVelocity
			res.Spawned = append(res.Spawned, child)
		}

		peg.LastHit = s.Time
		res.Events = append(res.Events, CollisionEvent{
			Peg:    peg,
			Marble: m,
			Speed:  math.Abs(dot),
			Time:   s.Time,
		})
	}
}
