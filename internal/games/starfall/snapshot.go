package starfall

import "math"

// Snapshot is a compact digest of the world used for determinism tests.
// Positions are stored as raw float bits so any drift shows up.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lives     int
	GameOver  bool
	Paused    bool
	Elapsed   uint64
	PlayerPos [2]uint64
	HasPlayer bool

	Asteroids []uint64 // x, y, size, health per asteroid
	Stars     []uint64 // x, y per star
	Bullets   []uint64 // x, y per bullet
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tickCount,
		Score:    g.score,
		Lives:    g.health.Lives(),
		GameOver: g.gameOver,
		Paused:   g.paused,
		Elapsed:  math.Float64bits(g.elapsed),
	}
	if g.player != nil {
		snap.HasPlayer = true
		snap.PlayerPos = [2]uint64{math.Float64bits(g.player.Pos.X()), math.Float64bits(g.player.Pos.Y())}
	}
	for _, a := range g.asteroids {
		snap.Asteroids = append(snap.Asteroids,
			math.Float64bits(a.Pos.X()), math.Float64bits(a.Pos.Y()),
			math.Float64bits(a.Size), uint64(a.Health)) //#nosec G115 -- hash input
	}
	for _, s := range g.stars {
		snap.Stars = append(snap.Stars, math.Float64bits(s.Pos.X()), math.Float64bits(s.Pos.Y()))
	}
	for _, b := range g.bullets {
		snap.Bullets = append(snap.Bullets, math.Float64bits(b.Pos.X()), math.Float64bits(b.Pos.Y()))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.GameOver)
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + snap.Elapsed
	h = h*31 + boolBit(snap.HasPlayer)
	h = h*31 + snap.PlayerPos[0]
	h = h*31 + snap.PlayerPos[1]

	for _, list := range [][]uint64{snap.Asteroids, snap.Stars, snap.Bullets} {
		h = h*31 + uint64(len(list))
		for _, v := range list {
			h = h*31 + v
		}
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
