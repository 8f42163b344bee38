package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// triangle generates a unit-amplitude triangle wave for a fixed duration.
type triangle struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewTriangle creates a triangle oscillator.
func NewTriangle(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &triangle{freq: freq, duration: rate.N(duration), rate: rate}
}

func (o *triangle) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		val := 4*math.Abs(o.phase-0.5) - 1
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *triangle) Err() error { return nil }

// pluck shapes a stream with a linear attack to peak, then an exponential
// decay that reaches decayFloor*peak at decay, and cuts off at length.
type pluck struct {
	streamer beep.Streamer
	peak     float64
	position int
	attack   int
	decay    int
	length   int
	rate     float64
}

// NewPluck wraps s in the attack/decay envelope used for every note.
func NewPluck(s beep.Streamer, peak float64, attackDur, decayDur, length time.Duration, rate beep.SampleRate) beep.Streamer {
	p := &pluck{
		streamer: s,
		peak:     peak,
		attack:   rate.N(attackDur),
		decay:    rate.N(decayDur),
		length:   rate.N(length),
	}
	if span := p.decay - p.attack; span > 0 {
		p.rate = math.Log(decayFloor) / float64(span)
	}
	return p
}

func (p *pluck) gain() float64 {
	switch {
	case p.position < p.attack:
		return p.peak * float64(p.position) / float64(p.attack)
	case p.position >= p.decay:
		return p.peak * decayFloor
	default:
		return p.peak * math.Exp(p.rate*float64(p.position-p.attack))
	}
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	if p.position >= p.length {
		return 0, false
	}
	if remaining := p.length - p.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = p.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := p.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		p.position++
	}
	return n, ok
}

func (p *pluck) Err() error { return p.streamer.Err() }

// NewVoice builds one collision note: a triangle at freq plus a quieter sine
// one octave down. velocity in [0, 1] sets loudness before master volume.
func NewVoice(freq, velocity, master float64, rate beep.SampleRate) beep.Streamer {
	peak := minGain + clampVolume(velocity)*gainRange

	tone := NewPluck(NewTriangle(freq, toneLength, rate), peak, attack, toneDecay, toneLength, rate)

	parts := []beep.Streamer{tone}
	if sine, err := generators.SineTone(rate, freq/2); err == nil {
		sub := NewPluck(sine, peak*subGainRatio, attack, subDecay, subLength, rate)
		parts = append(parts, sub)
	}
	return newVolume(beep.Mix(parts...), master)
}

// newVolume scales s by a linear gain. A gain of zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
