// File: cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"coachpro-coaching/internal/config"
	pg "coachpro-coaching/internal/infra/db/postgres"
)

// Creates the schema (idempotent) and seeds a few coach personas for
// local testing.
func main() {
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	schemaPath := flag.String("schema", "deploy/postgres/init.sql", "path to schema SQL file")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, false)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, 4)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(*schemaPath)
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	fmt.Println("schema ready")

	// If coaches already exist, do nothing
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM coaches;`).Scan(&count); err != nil {
		log.Fatalf("count coaches: %v", err)
	}
	if count > 0 {
		fmt.Printf("%d coaches already present. No changes.\n", count)
		return
	}

	seed := []struct {
		Name        string
		Specialty   string
		Personality string
	}{
		{"Coach Maya", "career", "supportive"},
		{"Coach Daniel", "goal_setting", "direct"},
		{"Coach Priya", "", ""}, // defaults apply at read time
	}
	for _, c := range seed {
		_, err := pool.Exec(ctx,
			`INSERT INTO coaches (name, specialty, personality) VALUES ($1, NULLIF($2,''), NULLIF($3,''));`,
			c.Name, c.Specialty, c.Personality)
		if err != nil {
			log.Fatalf("seed coach %s: %v", c.Name, err)
		}
		fmt.Printf("seeded coach %s\n", c.Name)
	}
}
