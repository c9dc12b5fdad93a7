// Command db_init applies the embedded catalog schema and seed data.
package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	dbfs "github.com/gigwork/jobchat/db"
	"github.com/gigwork/jobchat/internal/config"
	"github.com/gigwork/jobchat/internal/db"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := apply(ctx, pool, dbfs.Schema, "schema"); err != nil {
		fmt.Fprintf(os.Stderr, "Apply schema error: %v\n", err)
		os.Exit(1)
	}
	if err := apply(ctx, pool, dbfs.Seed, "seed"); err != nil {
		fmt.Fprintf(os.Stderr, "Apply seed error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Catalog initialized successfully.")
}

func apply(ctx context.Context, pool *pgxpool.Pool, fsys embed.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read %s dir: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	for _, fname := range files {
		b, err := fs.ReadFile(fsys, dir+"/"+fname)
		if err != nil {
			return fmt.Errorf("read %s: %w", fname, err)
		}
		if _, err := pool.Exec(ctx, string(b)); err != nil {
			return fmt.Errorf("apply %s: %w", fname, err)
		}
		fmt.Printf("applied %s/%s\n", dir, fname)
	}
	return nil
}
