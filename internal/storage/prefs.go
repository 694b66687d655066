package storage

import (
	"errors"

	"github.com/vovakirdan/starfall/internal/savestate"
)

// Preference keys for the volume sliders.
const (
	PrefMasterVolume         = "MasterVolume"
	PrefMusicVolume          = "MusicVolume"
	PrefShootingVolume       = "ShootingVolume"
	PrefExplosionVolume      = "ExplosionVolume"
	PrefStarCollectingVolume = "StarCollectingVolume"
)

// LoadVolumes reads the volume sliders for an owner, falling back to the
// factory defaults for anything unset.
func (s *Store) LoadVolumes(owner string) (savestate.Volumes, error) {
	v := savestate.DefaultVolumes()
	fields := []struct {
		key string
		dst *float64
	}{
		{PrefMasterVolume, &v.Master},
		{PrefMusicVolume, &v.Music},
		{PrefShootingVolume, &v.Shooting},
		{PrefExplosionVolume, &v.Explosion},
		{PrefStarCollectingVolume, &v.StarCollecting},
	}

	var errs []error
	for _, f := range fields {
		val, err := s.Preference(owner, f.key, *f.dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.dst = val
	}
	return v.Clamped(), errors.Join(errs...)
}

// SaveVolumes stores all five volume sliders for an owner.
func (s *Store) SaveVolumes(owner string, v savestate.Volumes) error {
	v = v.Clamped()
	pairs := []struct {
		key string
		val float64
	}{
		{PrefMasterVolume, v.Master},
		{PrefMusicVolume, v.Music},
		{PrefShootingVolume, v.Shooting},
		{PrefExplosionVolume, v.Explosion},
		{PrefStarCollectingVolume, v.StarCollecting},
	}
	for _, p := range pairs {
		if err := s.SetPreference(owner, p.key, p.val); err != nil {
			return err
		}
	}
	return nil
}
