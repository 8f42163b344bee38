package physics

const (
	FixedDT         = 1.0 / 120.0
	MaxSubsteps     = 4
	BaseGravity     = 980.0
	Damping         = 0.999
	WallRestitution = 0.5
	FloorMargin     = 20.0
	MaxMarbles      = 50
	TrailLength     = 5

	RestitutionTone   = 0.55
	RestitutionBounce = 0.85
	RestitutionSplit  = 0.5

	DropJitter      = 40.0 // initial vx drawn from [-20, 20)
	CollisionJitter = 40.0 // post-impulse vx nudge in [-20, 20)
	SplitVelocity   = 0.8

	DefaultPegRadius    = 16.0
	DefaultMarbleRadius = 10.0
	MinPegRadius        = 8.0
	MaxPegRadius        = 30.0
	PegSpacingDivisor   = 2.8
	MarbleToPegRatio    = 0.55
	DuplicateGap        = 0.01
	FallbackSpacing     = 0.1
)
