package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundCollect
)

func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// musicNotes is an A minor arpeggio.
var musicNotes = []float64{220.00, 261.63, 329.63, 392.00, 329.63, 261.63}

// shootSound is a short descending square chirp.
func shootSound(rate beep.SampleRate) beep.Streamer {
	const d = 90 * time.Millisecond
	return NewDecay(NewSweep(1200, 500, d, WaveSquare, rate), 40*time.Millisecond, rate)
}

// explosionSound is decaying noise over a low rumble. Bigger asteroids
// ring longer.
func explosionSound(rate beep.SampleRate, scale float64) beep.Streamer {
	if scale < 0.5 {
		scale = 0.5
	}
	d := time.Duration(float64(350*time.Millisecond) * scale)
	noise := NewSweep(0, 0, d, WaveNoise, rate)
	rumble := NewSweep(90, 40, d, WaveTriangle, rate)
	mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.5))
	return NewDecay(mixed, d/3, rate)
}

// collectSound is a two-note rising chime.
func collectSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewDecay(NewSweep(987.77, 987.77, 70*time.Millisecond, WaveSine, rate), 60*time.Millisecond, rate)
	n2 := NewDecay(NewSweep(1318.51, 1318.51, 160*time.Millisecond, WaveSine, rate), 80*time.Millisecond, rate)
	return beep.Seq(n1, n2)
}
