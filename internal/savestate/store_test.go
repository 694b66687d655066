package savestate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "saves", "gamestate.json"))
}

func sampleState() GameState {
	return GameState{
		PlayerLives: 2,
		Score:       140,
		HighScore:   300,
		Asteroids: []Object{
			{PosX: -3.5, PosY: 4.25, Size: 1.5, Health: 7},
			{PosX: 2, PosY: 0, Size: 0.5, Health: 2},
		},
		Stars:    []Object{{PosX: 1, PosY: -2, Size: 1, Health: 1}},
		Player:   &Object{PosX: 0.5, PosY: -4, Size: 1, Health: 1},
		SaveTime: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Volumes:  Volumes{Master: 0.9, Music: 0.4, Shooting: 0.8, Explosion: 0.7, StarCollecting: 0.6},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, store.Exists())

	want := sampleState()
	require.NoError(t, store.Save(want))
	assert.True(t, store.Exists())

	got, err := store.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("loaded state mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSave)
	assert.Equal(t, Summary{}, store.Summary())
}

func TestStoreLoadDefaultsMissingVolumes(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	raw := `{"playerLives": 1, "score": 20, "highScore": 50, "player": null}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultVolumes(), got.Volumes)
	assert.Nil(t, got.Player)
	assert.Empty(t, got.Asteroids)
	assert.NotNil(t, got.Stars)
}

func TestStoreLoadCorrupt(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.Path()), 0o755))
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSave)
	assert.False(t, store.Summary().Exists)
}

func TestStoreSummary(t *testing.T) {
	tests := []struct {
		name        string
		lives       int
		canContinue bool
	}{
		{"alive run", 2, true},
		{"finished run", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newTestStore(t)
			state := sampleState()
			state.PlayerLives = tc.lives
			require.NoError(t, store.Save(state))

			sum := store.Summary()
			assert.True(t, sum.Exists)
			assert.Equal(t, tc.canContinue, sum.CanContinue)
			assert.Equal(t, 300, sum.HighScore)
		})
	}
}

func TestStoreNewGamePreservesHighScore(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(sampleState()))

	vols := Volumes{Master: 0.3, Music: 0.2, Shooting: 0.1, Explosion: 1, StarCollecting: 0.5}
	fresh, err := store.NewGame(3, vols)
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(fresh, got); diff != "" {
		t.Errorf("NewGame result differs from file (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, got.PlayerLives)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, 300, got.HighScore)
	assert.Equal(t, vols, got.Volumes)
	assert.Nil(t, got.Player)
	assert.Empty(t, got.Asteroids)
}

func TestStoreNewGameWithoutSave(t *testing.T) {
	store := newTestStore(t)
	fresh, err := store.NewGame(5, DefaultVolumes())
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.HighScore)
	assert.Equal(t, 5, fresh.PlayerLives)
	assert.True(t, store.Exists())
}

func TestStoreUpdateVolumes(t *testing.T) {
	store := newTestStore(t)

	// No save yet: nothing to update, nothing created.
	require.NoError(t, store.UpdateVolumes(DefaultVolumes()))
	assert.False(t, store.Exists())

	require.NoError(t, store.Save(sampleState()))
	require.NoError(t, store.UpdateVolumes(Volumes{Master: 2, Music: -1, Shooting: 0.5, Explosion: 0.5, StarCollecting: 0.5}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Volumes{Master: 1, Music: 0, Shooting: 0.5, Explosion: 0.5, StarCollecting: 0.5}, got.Volumes)
	assert.Equal(t, 140, got.Score, "non-volume fields must be untouched")
	assert.Len(t, got.Asteroids, 2)
}

func TestStoreDelete(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Delete(), "deleting a missing file is fine")

	require.NoError(t, store.Save(sampleState()))
	require.NoError(t, store.Delete())
	assert.False(t, store.Exists())
}

func TestVolumesEffective(t *testing.T) {
	v := Volumes{Master: 0.5, Music: 0.5, Shooting: 0.8, Explosion: 0.6, StarCollecting: 1}
	assert.InDelta(t, 0.25, v.EffectiveMusic(), 1e-9)
	assert.InDelta(t, 0.4, v.EffectiveShooting(), 1e-9)
	assert.InDelta(t, 0.3, v.EffectiveExplosion(), 1e-9)
	assert.InDelta(t, 0.5, v.EffectiveStarCollecting(), 1e-9)
}
