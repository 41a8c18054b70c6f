package runstats

import (
	"context"
	"sync"
)

// Memory is an in-process Recorder for tests and dry runs.
type Memory struct {
	mutex sync.Mutex
	snaps []Snapshot
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(snap Snapshot) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for i, s := range m.snaps {
		if s.RunID == snap.RunID && s.Tick == snap.Tick {
			m.snaps[i] = snap
			return nil
		}
	}
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *Memory) GetAllSnapshots() ([]Snapshot, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]Snapshot, len(m.snaps))
	copy(out, m.snaps)
	return out, nil
}

func (m *Memory) GetSnapshotCount() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.snaps)
}

func (m *Memory) LatestByRun(runID string) *Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var latest *Snapshot
	for i := range m.snaps {
		s := &m.snaps[i]
		if s.RunID != runID {
			continue
		}
		if latest == nil || s.Tick > latest.Tick {
			latest = s
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}

func (m *Memory) Run(ctx context.Context) {}
