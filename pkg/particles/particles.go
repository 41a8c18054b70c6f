// Package particles is a small headless kinematics world used to exercise
// the vector library end to end: central gravity, drag, per-tick aggregate
// snapshots.
package particles

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	runstats "xyzvec.dev/pkg/run-stats"
	"xyzvec.dev/pkg/vec"
)

type Config struct {
	RunID   string
	Count   int
	Gravity float64 // acceleration toward the origin, units/s^2
	Drag    float64 // fraction of velocity shed per second
	Seed    int64
}

type Particle struct {
	Pos vec.Vec2[vec.F64]
	Vel vec.Vec2[vec.F64]
}

type World struct {
	logger    *slog.Logger
	cfg       Config
	store     runstats.Recorder
	tick      int64
	particles []Particle
}

func getLogger() *slog.Logger {
	return slog.Default().With("area", "Particles")
}

// NewWorld seeds cfg.Count particles at random positions around the origin.
func NewWorld(store runstats.Recorder, cfg Config) *World {
	if cfg.Count < 1 {
		cfg.Count = 1
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	particles := make([]Particle, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		pos := vec.NewVec2([2]vec.F64{
			vec.F64(rng.Float64()*200 - 100),
			vec.F64(rng.Float64()*200 - 100),
		})
		vel := vec.NewVec2([2]vec.F64{
			vec.F64(rng.Float64()*10 - 5),
			vec.F64(rng.Float64()*10 - 5),
		})
		particles = append(particles, Particle{Pos: pos, Vel: vel})
	}

	return NewWorldFrom(store, cfg, particles)
}

// NewWorldFrom takes the initial particle state verbatim.
func NewWorldFrom(store runstats.Recorder, cfg Config, particles []Particle) *World {
	return &World{
		logger:    getLogger(),
		cfg:       cfg,
		store:     store,
		particles: particles,
	}
}

func (w *World) Tick() int64 {
	return w.tick
}

func (w *World) Particles() []Particle {
	out := make([]Particle, len(w.particles))
	copy(out, w.particles)
	return out
}

// Step advances the world by dt seconds with semi-implicit Euler.
func (w *World) Step(dt float64) {
	for i := range w.particles {
		p := &w.particles[i]

		// a particle sitting exactly on the origin feels no pull
		if dir, err := p.Pos.Norm(); err == nil {
			accel := dir.Scale(vec.F64(-w.cfg.Gravity))
			p.Vel = p.Vel.Add(accel.Scale(vec.F64(dt)))
		}

		p.Vel = p.Vel.Scale(vec.F64(1 - w.cfg.Drag*dt))
		p.Pos = p.Pos.Add(p.Vel.Scale(vec.F64(dt)))
	}
	w.tick++
}

// Snapshot aggregates the current state for the stats store.
func (w *World) Snapshot() runstats.Snapshot {
	snap := runstats.Snapshot{
		RunID:     w.cfg.RunID,
		Tick:      w.tick,
		Particles: len(w.particles),
	}
	if len(w.particles) == 0 {
		return snap
	}

	n := vec.F64(float64(len(w.particles)))
	centroid := vec.Zero2[vec.F64]()
	var speedSum, maxSpeed vec.F64
	for _, p := range w.particles {
		speed := p.Vel.Len()
		speedSum = speedSum.Add(speed)
		if maxSpeed.Lt(speed) {
			maxSpeed = speed
		}
		centroid = centroid.Add(p.Pos)
	}
	centroid = centroid.Div(n)

	var spread vec.F64
	for _, p := range w.particles {
		d := p.Pos.Sub(centroid).Len()
		if spread.Lt(d) {
			spread = d
		}
	}

	snap.AvgSpeed = float64(speedSum.Div(n))
	snap.MaxSpeed = float64(maxSpeed)
	snap.Spread = float64(spread)
	return snap
}

// Run steps the world on a ticker and records a snapshot every `every`
// ticks until the context is done.
func (w *World) Run(ctx context.Context, dt time.Duration, every int) error {
	if every < 1 {
		every = 1
	}

	w.logger.Info("world running", "runID", w.cfg.RunID, "particles", len(w.particles), "dt", dt)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("world stopped", "runID", w.cfg.RunID, "tick", w.tick)
			return nil
		case <-ticker.C:
			w.Step(dt.Seconds())
			if w.tick%int64(every) == 0 {
				if err := w.store.Record(w.Snapshot()); err != nil {
					return fmt.Errorf("record snapshot: %w", err)
				}
			}
		}
	}
}
