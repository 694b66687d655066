package starfall

// EventKind names something the platform may want to react to with a
// sound or a log line.
type EventKind int

const (
	EventShoot EventKind = iota
	EventExplosion
	EventStarCollected
	EventPlayerHit
	EventPlayerRespawned
	EventGameOver
	EventReinforcedSpawn
)

var eventNames = map[EventKind]string{
	EventShoot:           "shoot",
	EventExplosion:       "explosion",
	EventStarCollected:   "star_collected",
	EventPlayerHit:       "player_hit",
	EventPlayerRespawned: "player_respawned",
	EventGameOver:        "game_over",
	EventReinforcedSpawn: "reinforced_spawn",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single happening during a tick. Scale is the asteroid size
// for explosions; Value is the bonus health of a reinforced spawn.
type Event struct {
	Kind  EventKind
	Scale float64
	Value int
}

func (g *Game) emit(kind EventKind, scale float64) {
	g.events = append(g.events, Event{Kind: kind, Scale: scale})
}

// DrainEvents returns and clears the events queued since the last call.
func (g *Game) DrainEvents() []Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}
