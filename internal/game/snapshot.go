package game

// Snapshot is the read-only view of a session handed to renderers each
// frame. It carries everything the presentation layer needs and nothing
// it does not; in particular the per-pair scoring flag stays internal.
type Snapshot struct {
	Phase     Phase
	Score     int
	Speed     float64 // Scroll speed this tick
	Tick      uint64
	FieldW    int
	FieldH    int
	Player    PlayerView
	Obstacles []ObstacleView // Spawn order
}

// PlayerView is the entity as seen by a renderer.
type PlayerView struct {
	X   int
	Y   float64
	W   int
	H   int
	Vel float64
}

// ObstacleView is one obstacle as seen by a renderer. Edge tells the
// renderer which side of the obstacle is open.
type ObstacleView struct {
	X    float64
	Y    int
	W    int
	H    int
	Edge Edge
}

// Snapshot captures the current session state. The obstacle slice is a
// copy; the caller may hold it across ticks.
func (s *Session) Snapshot() Snapshot {
	obs := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		obs[i] = ObstacleView{
			X:    o.X,
			Y:    o.Y,
			W:    o.W,
			H:    o.H,
			Edge: o.Edge,
		}
	}

	return Snapshot{
		Phase:  s.phase,
		Score:  s.score,
		Speed:  s.CurrentSpeed(),
		Tick:   s.tick,
		FieldW: s.fieldW,
		FieldH: s.fieldH,
		Player: PlayerView{
			X:   s.entity.X,
			Y:   s.entity.Y,
			W:   s.entity.W,
			H:   s.entity.H,
			Vel: s.entity.Vel,
		},
		Obstacles: obs,
	}
}
