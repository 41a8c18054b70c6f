package runstats

import (
	"context"
	"fmt"
)

// Snapshot is one per-tick aggregate of a particle run.
type Snapshot struct {
	RunID     string  `db:"run_id"`
	Tick      int64   `db:"tick"`
	Particles int     `db:"particles"`
	AvgSpeed  float64 `db:"avg_speed"`
	MaxSpeed  float64 `db:"max_speed"`
	Spread    float64 `db:"spread"`
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("Run(%s): Tick=%d N=%d AvgSpeed=%f MaxSpeed=%f Spread=%f",
		s.RunID, s.Tick, s.Particles, s.AvgSpeed, s.MaxSpeed, s.Spread)
}

type Recorder interface {
	Record(snap Snapshot) error
	GetAllSnapshots() ([]Snapshot, error)
	GetSnapshotCount() int
	LatestByRun(runID string) *Snapshot
	Run(ctx context.Context)
}
