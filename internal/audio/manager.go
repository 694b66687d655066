// Package audio plays the game's synthesized sound effects and music
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/starfall/internal/savestate"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker, a mixer for one-shot effects and the music
// loop. A disabled manager accepts every call and plays nothing.
type Manager struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	volumes     savestate.Volumes
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
}

// NewManager creates a manager. Nothing is played until Init succeeds.
func NewManager(enabled bool) *Manager {
	return &Manager{
		enabled: enabled,
		volumes: savestate.DefaultVolumes(),
		mixer:   &beep.Mixer{},
	}
}

// Init opens the speaker. On failure the manager stays silent and the
// error is returned for logging.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.enabled = false
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Active reports whether sounds are actually reaching the speaker.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled && m.initialized
}

// Volumes returns the current volume levels.
func (m *Manager) Volumes() savestate.Volumes {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volumes
}

// SetVolumes applies new levels. The music loop picks up the change
// immediately; effects use it from the next play.
func (m *Manager) SetVolumes(v savestate.Volumes) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.volumes = v.Clamped()
	if m.musicVolume != nil {
		speaker.Lock()
		setGain(m.musicVolume, m.volumes.EffectiveMusic())
		speaker.Unlock()
	}
}

// Play starts a one-shot effect. Scale stretches the explosion with the
// asteroid size and is ignored by the other sounds.
func (m *Manager) Play(s Sound, scale float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || !m.initialized {
		return
	}

	var (
		stream beep.Streamer
		gain   float64
	)
	switch s {
	case SoundShoot:
		stream, gain = shootSound(sampleRate), m.volumes.EffectiveShooting()
	case SoundExplosion:
		stream, gain = explosionSound(sampleRate, scale), m.volumes.EffectiveExplosion()
	case SoundCollect:
		stream, gain = collectSound(sampleRate), m.volumes.EffectiveStarCollecting()
	default:
		return
	}
	if gain <= 0 {
		return
	}

	speaker.Lock()
	m.mixer.Add(newVolume(stream, gain))
	speaker.Unlock()
}

// StartMusic starts the background loop, or resumes it if paused.
func (m *Manager) StartMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.enabled || !m.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if m.music != nil {
		m.music.Paused = false
		return
	}
	m.musicVolume = newVolume(NewMelody(musicNotes, 250*time.Millisecond, sampleRate), m.volumes.EffectiveMusic())
	m.music = &beep.Ctrl{Streamer: m.musicVolume}
	m.mixer.Add(m.music)
}

// PauseMusic pauses or resumes the background loop.
func (m *Manager) PauseMusic(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = paused
	speaker.Unlock()
}

// Close stops all sound and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.music = nil
	m.musicVolume = nil
	m.initialized = false
}
