package physics

// State is the authoritative simulation context for one board. Marbles are
// kept in insertion order; eviction over the cap drops from the front.
type State struct {
	Width, Height float64
	Gravity       float64
	Radii         Radii

	Pegs    []*Peg
	Marbles []*Marble

	// Time is the simulated clock in seconds, advanced per substep.
	Time float64

	nextID uint64
}

// NewState returns an empty state for a board of the given size.
func NewState(width, height float64, pegs []*Peg, radii Radii) *State {
	return &State{
		Width:   width,
		Height:  height,
		Gravity: 1,
		Radii:   radii,
		Pegs:    pegs,
		Marbles: make([]*Marble, 0, MaxMarbles),
	}
}

// Add appends marbles to the live collection and assigns their ids. Callers
// merge a step's spawned marbles through here before the next step.
func (s *State) Add(marbles ...*Marble) {
	for _, m := range marbles {
		if m == nil {
			continue
		}
		s.nextID++
		m.ID = s.nextID
		s.Marbles = append(s.Marbles, m)
	}
}

// Marble returns the live marble with the given id.
func (s *State) Marble(id uint64) (*Marble, bool) {
	for _, m := range s.Marbles {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// Clear removes every marble.
func (s *State) Clear() {
	for i := range s.Marbles {
		s.Marbles[i] = nil
	}
	s.Marbles = s.Marbles[:0]
}

// compact drops dead marbles in place, then evicts the oldest until the
// population is within the cap. It reports how many marbles were removed.
func (s *State) compact() (culled, evicted int) {
	live := s.Marbles[:0]
	for _, m := range s.Marbles {
		if m.Alive {
			live = append(live, m)
			continue
		}
		culled++
	}
	for i := len(live); i < len(s.Marbles); i++ {
		s.Marbles[i] = nil
	}
	s.Marbles = live

	if over := len(s.Marbles) - MaxMarbles; over > 0 {
		copy(s.Marbles, s.Marbles[over:])
		for i := len(s.Marbles) - over; i < len(s.Marbles); i++ {
			s.Marbles[i] = nil
		}
		s.Marbles = s.Marbles[:len(s.Marbles)-over]
		evicted = over
	}
	return culled, evicted
}
