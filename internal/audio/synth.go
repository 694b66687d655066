package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// sweep is an oscillator whose frequency slides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

// NewSweep creates a finite oscillator sliding from one frequency to another.
// A constant tone is a sweep with from == to.
func NewSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(s.phase-0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// decay multiplies a stream by an exponential fade. Tau is the time for
// the level to drop to about 37 percent.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	tau      float64
	pos      int
}

// NewDecay wraps s with an exponential fade-out.
func NewDecay(s beep.Streamer, tau time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: rate, tau: tau.Seconds()}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.rate)
		g := math.Exp(-t / d.tau)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// melody is an endless arpeggio used as the background music bed.
type melody struct {
	notes    []float64
	rate     beep.SampleRate
	noteLen  int
	pos      int
	phase    float64
	subPhase float64
}

// NewMelody creates an endless soft arpeggio over the given notes.
func NewMelody(notes []float64, noteLen time.Duration, rate beep.SampleRate) beep.Streamer {
	return &melody{notes: notes, rate: rate, noteLen: rate.N(noteLen)}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.notes) == 0 || m.noteLen == 0 {
		return 0, false
	}
	for i := range samples {
		idx := (m.pos / m.noteLen) % len(m.notes)
		within := float64(m.pos%m.noteLen) / float64(m.noteLen)
		freq := m.notes[idx]

		// Soft pluck envelope per note plus a sub-octave drone.
		env := math.Exp(-3 * within)
		val := 0.25*env*math.Sin(2*math.Pi*m.phase) + 0.1*math.Sin(2*math.Pi*m.subPhase)
		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.subPhase += m.notes[0] / 2 / float64(m.rate)
		m.subPhase -= math.Floor(m.subPhase)
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// newVolume wraps s with a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}
