package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	pgutil "github.com/iggi84/patients-health-tracker/pkg/postgres"
)

const postgresImage = "postgres:16-alpine"

// Postgres is a throwaway PostgreSQL database holding the patient schema.
type Postgres struct {
	DSN  string
	Pool *pgxpool.Pool
}

// StartPostgres runs a PostgreSQL container, applies the migrations found in
// migrationsDir and returns a pool connected to it. The container and pool
// are released when the test finishes.
func StartPostgres(ctx context.Context, t *testing.T, migrationsDir string) *Postgres {
	t.Helper()

	container, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("vitals_test"),
		postgres.WithUsername("vitals"),
		postgres.WithPassword("vitals"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(stopCtx); err != nil {
			t.Logf("terminate postgres: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("postgres connection string: %v", err)
	}

	// Same migration path the daemon takes at startup.
	source, err := filepath.Abs(migrationsDir)
	if err != nil {
		t.Fatalf("resolve %s: %v", migrationsDir, err)
	}
	if err := pgutil.RunMigrations(dsn, "file://"+filepath.ToSlash(source)); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	pool, err := pgutil.NewPool(ctx, pgutil.Config{URL: dsn, MaxConns: 4})
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return &Postgres{DSN: dsn, Pool: pool}
}
