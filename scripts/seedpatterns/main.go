// Command seedpatterns rebuilds the scenario pattern database from
// data/patterns_final.json. One-shot loader; the server never touches this
// database at runtime, the backend reads it when assembling scenarios.
package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
DROP TABLE IF EXISTS patterns;
CREATE TABLE patterns (
	pattern_id INTEGER PRIMARY KEY AUTOINCREMENT,
	crime_type TEXT NOT NULL,
	scenario_name TEXT NOT NULL,
	simulation_mode TEXT NOT NULL,
	pattern_data TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`

type pattern struct {
	CrimeType      string          `json:"crime_type"`
	ScenarioName   string          `json:"scenario_name"`
	SimulationMode string          `json:"simulation_mode"`
	PatternData    json.RawMessage `json:"pattern_data"`
	IsActive       bool            `json:"is_active"`
}

func main() {
	dbPath := flag.String("db", "database/safeguard_patterns.db", "sqlite database path")
	jsonPath := flag.String("patterns", "data/patterns_final.json", "pattern JSON file")
	flag.Parse()

	if err := run(*dbPath, *jsonPath); err != nil {
		log.Fatal(err)
	}
}

func run(dbPath, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", jsonPath, err)
	}

	var patterns []pattern
	if err := json.Unmarshal(raw, &patterns); err != nil {
		return fmt.Errorf("parsing %s: %w", jsonPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO patterns (crime_type, scenario_name, simulation_mode, pattern_data, is_active)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range patterns {
		if _, err := stmt.Exec(p.CrimeType, p.ScenarioName, p.SimulationMode, string(p.PatternData), p.IsActive); err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting pattern %q: %w", p.ScenarioName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}

	log.Printf("inserted %d patterns into %s", len(patterns), dbPath)
	return nil
}
