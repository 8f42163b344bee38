package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"

	prng "plinkotone/pkg/core"
)

type reverbTap struct {
	delay int
	gain  float64
}

// reverb mixes a dry signal with a sparse decaying-noise tail. Each channel
// has its own taps: one per segment of the tail at a random offset, with a
// random sign and a (1 - t/length)^reverbCurve envelope, normalized to unit
// energy.
type reverb struct {
	streamer beep.Streamer
	taps     [2][]reverbTap
	history  [][2]float64
	pos      int
	wet, dry float64
}

// NewReverb wraps s in a reverb send with the given tail length and tap
// density. The same seed always yields the same tail.
func NewReverb(s beep.Streamer, rate beep.SampleRate, length time.Duration, density int, wet, dry float64, seed int64) beep.Streamer {
	n := rate.N(length)
	if n < 2 {
		n = 2
	}
	count := int(float64(density) * length.Seconds())
	if count < 1 {
		count = 1
	}
	seg := n / count
	if seg < 1 {
		seg, count = 1, n
	}

	rng := prng.NewRNG(seed)
	r := &reverb{streamer: s, history: make([][2]float64, n), wet: wet, dry: dry}
	for ch := range r.taps {
		taps := make([]reverbTap, 0, count)
		energy := 0.0
		for k := 0; k < count; k++ {
			d := k*seg + rng.IntN(seg)
			d = max(1, min(n-1, d))
			g := math.Pow(1-float64(d)/float64(n), reverbCurve)
			if rng.Float64() < 0.5 {
				g = -g
			}
			taps = append(taps, reverbTap{delay: d, gain: g})
			energy += g * g
		}
		if energy > 0 {
			norm := 1 / math.Sqrt(energy)
			for i := range taps {
				taps[i].gain *= norm
			}
		}
		r.taps[ch] = taps
	}
	return r
}

func (r *reverb) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.streamer.Stream(samples)
	size := len(r.history)
	for i := 0; i < n; i++ {
		r.history[r.pos] = samples[i]
		for ch := 0; ch < 2; ch++ {
			wet := 0.0
			for _, tap := range r.taps[ch] {
				j := r.pos - tap.delay
				if j < 0 {
					j += size
				}
				wet += tap.gain * r.history[j][ch]
			}
			samples[i][ch] = r.dry*samples[i][ch] + r.wet*wet
		}
		r.pos++
		if r.pos == size {
			r.pos = 0
		}
	}
	return n, ok
}

func (r *reverb) Err() error { return r.streamer.Err() }

// compressor is a peak-detecting, soft-knee downward compressor. Gain
// reduction is smoothed in dB with separate attack and release times.
type compressor struct {
	streamer  beep.Streamer
	threshold float64
	ratio     float64
	knee      float64
	attack    float64
	release   float64
	reduction float64
}

// NewCompressor wraps s in a compressor. threshold and knee are in dB.
func NewCompressor(s beep.Streamer, rate beep.SampleRate, threshold, ratio, knee float64, attack, release time.Duration) beep.Streamer {
	if ratio < 1 {
		ratio = 1
	}
	return &compressor{
		streamer:  s,
		threshold: threshold,
		ratio:     ratio,
		knee:      math.Max(0, knee),
		attack:    smoothing(attack, rate),
		release:   smoothing(release, rate),
	}
}

func smoothing(d time.Duration, rate beep.SampleRate) float64 {
	n := rate.N(d)
	if n <= 0 {
		return 0
	}
	return math.Exp(-1 / float64(n))
}

// gainChange returns the static curve's gain change in dB for an input level.
func (c *compressor) gainChange(level float64) float64 {
	over := level - c.threshold
	slope := 1/c.ratio - 1
	switch {
	case 2*over < -c.knee:
		return 0
	case c.knee > 0 && 2*math.Abs(over) <= c.knee:
		x := over + c.knee/2
		return slope * x * x / (2 * c.knee)
	default:
		return slope * over
	}
}

func (c *compressor) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = c.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		peak := math.Max(math.Abs(samples[i][0]), math.Abs(samples[i][1]))
		target := 0.0
		if peak > 0 {
			target = c.gainChange(20 * math.Log10(peak))
		}
		coef := c.release
		if target < c.reduction {
			coef = c.attack
		}
		c.reduction = coef*c.reduction + (1-coef)*target
		g := math.Pow(10, c.reduction/20)
		samples[i][0] *= g
		samples[i][1] *= g
	}
	return n, ok
}

func (c *compressor) Err() error { return c.streamer.Err() }
