// Package audio plays short cues for simulation events through the beep speaker
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// wave maps a phase in [0,1) to a sample in [-1,1]
type wave func(phase float64) float64

func sine(p float64) float64 {
	return math.Sin(2 * math.Pi * p)
}

func triangle(p float64) float64 {
	return 1 - 4*math.Abs(p-0.5)
}

// note is one enveloped pitch, attack and release are linear ramps
type note struct {
	freq    float64
	wave    wave
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	return &noteStreamer{
		wave:    n.wave,
		step:    n.freq / float64(rate),
		gain:    n.gain,
		total:   rate.N(n.length),
		attack:  rate.N(n.attack),
		release: rate.N(n.release),
	}
}

// noteStreamer renders a note into stereo samples, both channels equal
type noteStreamer struct {
	wave  wave
	step  float64
	phase float64
	gain  float64

	pos     int
	total   int
	attack  int
	release int
}

func (s *noteStreamer) level() float64 {
	lvl := 1.0
	if s.pos < s.attack {
		lvl = float64(s.pos) / float64(s.attack)
	}
	if rem := s.total - s.pos; rem < s.release {
		lvl = math.Min(lvl, float64(rem)/float64(s.release))
	}
	return lvl * s.gain
}

func (s *noteStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total {
		return 0, false
	}
	n := min(len(samples), s.total-s.pos)
	for i := 0; i < n; i++ {
		v := s.wave(s.phase) * s.level()
		samples[i] = [2]float64{v, v}
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return n, true
}

func (s *noteStreamer) Err() error { return nil }
