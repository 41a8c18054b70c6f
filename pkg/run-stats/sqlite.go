package runstats

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/tursodatabase/go-libsql"
	"xyzvec.dev/pkg/assert"
)

func checkTableExists(db *sqlx.DB) bool {
	query := `SELECT name
FROM sqlite_master
WHERE type='table' AND name='RunSnapshots';`

	var tableName string
	err := db.Get(&tableName, query)
	if err != nil {
		return false
	}
	return tableName == "RunSnapshots"
}

type Sqlite struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func getLogger() *slog.Logger {
	return slog.Default().With("area", "Sqlite")
}

func ClearSQLiteFiles(path string) {
	os.Remove(path)
	os.Remove(fmt.Sprintf("%s-shm", path))
	os.Remove(fmt.Sprintf("%s-wal", path))
}

func NewSqlite(path string) *Sqlite {
	logger := getLogger()
	db, err := sqlx.Open("libsql", path)
	assert.NoError(err, "failed to open db", "err", err, "path", path)
	return &Sqlite{
		db:     db,
		logger: logger,
	}
}

func (s *Sqlite) setPragma(name string, value string) {
	row := s.db.QueryRowx(fmt.Sprintf("PRAGMA %s=%s;", name, value))
	var v string
	err := row.Scan(&v)
	assert.NoError(err, "could not scan pragma row result", "err", err, "name", name, "value", value)
	s.logger.Debug(name, "value", v)
}

func (s *Sqlite) SetSqliteModes() {
	s.setPragma("busy_timeout", "3000")
	s.setPragma("journal_mode", "WAL")
}

// EnsureRunSnapshots creates the RunSnapshots table if it is missing.
func (s *Sqlite) EnsureRunSnapshots() error {
	if checkTableExists(s.db) {
		return nil
	}

	query := `
    CREATE TABLE RunSnapshots (
        run_id TEXT,
        tick INTEGER,
        particles INTEGER,
        avg_speed REAL,
        max_speed REAL,
        spread REAL,
        PRIMARY KEY (run_id, tick)
    );`

	_, err := s.db.Exec(query)
	if err != nil {
		return err
	}

	var createRunIndex = `CREATE INDEX idx_run_id ON RunSnapshots (run_id);`
	_, err = s.db.Exec(createRunIndex)

	return err
}

func (s *Sqlite) Record(snap Snapshot) error {
	s.logger.Debug("Record", "snap", snap.String())
	query := `INSERT OR REPLACE INTO RunSnapshots (run_id, tick, particles, avg_speed, max_speed, spread)
VALUES (?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(query, snap.RunID, snap.Tick, snap.Particles, snap.AvgSpeed, snap.MaxSpeed, snap.Spread)

	return err
}

func (s *Sqlite) GetSnapshotCount() int {
	selectQuery := `SELECT COUNT(*)
FROM RunSnapshots;`

	var count int
	err := s.db.Get(&count, selectQuery)
	assert.NoError(err, "unable to get snapshot count", "err", err)

	return count
}

func (s *Sqlite) GetAllSnapshots() ([]Snapshot, error) {
	var snaps []Snapshot
	query := `SELECT run_id, tick, particles, avg_speed, max_speed, spread
FROM RunSnapshots
ORDER BY run_id, tick;`

	err := s.db.Select(&snaps, query)
	if err != nil {
		return nil, err
	}

	return snaps, nil
}

func (s *Sqlite) LatestByRun(runID string) *Snapshot {
	snaps := []Snapshot{}
	err := s.db.Select(&snaps, `SELECT run_id, tick, particles, avg_speed, max_speed, spread
FROM RunSnapshots
WHERE run_id=?
ORDER BY tick DESC
LIMIT 1;`, runID)
	if err != nil {
		s.logger.Error("LatestByRun failed", "err", err, "runID", runID)
		return nil
	}
	if len(snaps) == 1 {
		return &snaps[0]
	}
	return nil
}

func (s *Sqlite) Run(ctx context.Context) {}

func (s *Sqlite) Close() error {
	return s.db.Close()
}
