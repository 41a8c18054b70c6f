package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	"xyzvec.dev/pkg/ctrlc"
	"xyzvec.dev/pkg/particles"
	prettylog "xyzvec.dev/pkg/pretty-log"
	runstats "xyzvec.dev/pkg/run-stats"
)

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func main() {
	godotenv.Load()

	prettylog.SetProgramLevelPrettyLogger(os.Stderr)
	slog.SetDefault(slog.Default().With("process", "Particles"))

	ll := slog.Default().With("area", "particles-main")

	cfg := particles.Config{
		RunID:   envStr("RUN_ID", strconv.FormatInt(time.Now().Unix(), 10)),
		Count:   envInt("PARTICLES", 64),
		Gravity: envFloat("GRAVITY", 9.8),
		Drag:    envFloat("DRAG", 0.1),
		Seed:    int64(envInt("SEED", 0)),
	}
	dbPath := envStr("DB_PATH", "file:/tmp/particles.db")

	db := runstats.NewSqlite(dbPath)
	defer db.Close()
	db.SetSqliteModes()
	if err := db.EnsureRunSnapshots(); err != nil {
		ll.Error("could not create snapshot table", "error", err)
		os.Exit(1)
	}

	world := particles.NewWorld(db, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctrlc.HandleCtrlC(cancel)

	ll.Info("starting run", "runID", cfg.RunID, "particles", cfg.Count, "db", dbPath)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return world.Run(ctx, 16*time.Millisecond, 10)
	})
	g.Go(func() error {
		db.Run(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		ll.Error("run finished with error", "error", err)
		os.Exit(1)
	}

	if latest := db.LatestByRun(cfg.RunID); latest != nil {
		ll.Info("run finished", "snapshot", latest.String())
	}
}
