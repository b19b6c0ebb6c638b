// cmd/migrate/main.go
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/listingdesk/listingdesk/internal/config"
	"github.com/listingdesk/listingdesk/migrations"
)

func main() {
	log.SetFlags(0)

	dsn := flag.String("dsn", "", "PostgreSQL DSN (defaults to DB_* environment)")
	flag.Parse()

	connString := *dsn
	if connString == "" {
		connString = config.Load().DSN()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", connString)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := apply(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
}

// apply runs every embedded migration in lexical order. Migrations are
// written to be re-runnable, so no bookkeeping table is needed.
func apply(ctx context.Context, db *sql.DB) error {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		contents, err := migrations.FS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}

		if _, err := db.ExecContext(ctx, string(contents)); err != nil {
			return fmt.Errorf("applying %s: %w", name, err)
		}

		log.Printf("applied %s", name)
	}

	return nil
}
