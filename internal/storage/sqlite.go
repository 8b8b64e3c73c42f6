// Package storage provides SQLite-based persistence for play history and
// the archive of generated scenarios.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ksenzov/perspective-painters/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PlayEntry records the outcome of one scenario round.
type PlayEntry struct {
	ID            int64
	ScenarioTitle string
	Solved        bool
	WrongAttempts int
	CreatedAt     time.Time
}

// ScenarioEntry is an archived generated scenario.
type ScenarioEntry struct {
	ID         int64
	Title      string
	Goal       string
	SceneEmoji string
	Solution   string
	// CharactersJSON holds the ordered character list as stored.
	CharactersJSON string
	CreatedAt      time.Time
}

// storedCharacter is the archive representation of one character; a slice
// keeps the viewpoint order that a map would lose.
type storedCharacter struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Thought   string `json:"thought"`
	Action    string `json:"action"`
	ActionIco string `json:"actionIcon"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_title TEXT NOT NULL,
			solved INTEGER NOT NULL DEFAULT 0,
			wrong_attempts INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plays_created ON plays(created_at DESC);

		CREATE TABLE IF NOT EXISTS scenarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			goal TEXT NOT NULL,
			scene_emoji TEXT NOT NULL DEFAULT '',
			solution TEXT NOT NULL,
			characters_json TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scenarios_created ON scenarios(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePlay records the outcome of one scenario round.
// Returns the ID of the inserted record.
func (s *Store) SavePlay(scenarioTitle string, solved bool, wrongAttempts int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plays (scenario_title, solved, wrong_attempts) VALUES (?, ?, ?)",
		scenarioTitle, solved, wrongAttempts,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save play: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentPlays retrieves the most recent play records, newest first.
func (s *Store) RecentPlays(limit int) ([]PlayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_title, solved, wrong_attempts, created_at
		 FROM plays
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var entries []PlayEntry
	for rows.Next() {
		var e PlayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ScenarioTitle, &e.Solved, &e.WrongAttempts, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// SolvedCount returns how many recorded rounds ended in success.
func (s *Store) SolvedCount() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM plays WHERE solved = 1").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count solved plays: %w", err)
	}
	return n, nil
}

// SaveScenario archives a generated scenario.
// Returns the ID of the inserted record.
func (s *Store) SaveScenario(sc *game.Scenario) (int64, error) {
	chars := make([]storedCharacter, 0, len(sc.Order))
	for _, key := range sc.Order {
		ch := sc.Characters[key]
		chars = append(chars, storedCharacter{
			Key:       key,
			Name:      ch.Name,
			Emoji:     ch.Emoji,
			Thought:   ch.Thought,
			Action:    ch.Action.Name,
			ActionIco: ch.Action.Icon,
		})
	}
	charsJSON, err := json.Marshal(chars)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode characters: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO scenarios (title, goal, scene_emoji, solution, characters_json)
		 VALUES (?, ?, ?, ?, ?)`,
		sc.Title, sc.Goal, sc.SceneEmoji, sc.Solution, string(charsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save scenario: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentScenarios retrieves the most recently archived scenarios, newest first.
func (s *Store) RecentScenarios(limit int) ([]ScenarioEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, title, goal, scene_emoji, solution, characters_json, created_at
		 FROM scenarios
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenarios: %w", err)
	}
	defer rows.Close()

	var entries []ScenarioEntry
	for rows.Next() {
		var e ScenarioEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Title, &e.Goal, &e.SceneEmoji, &e.Solution, &e.CharactersJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Scenario rebuilds the archived scenario for an entry.
func (e ScenarioEntry) Scenario() (*game.Scenario, error) {
	var chars []storedCharacter
	if err := json.Unmarshal([]byte(e.CharactersJSON), &chars); err != nil {
		return nil, fmt.Errorf("storage: cannot decode characters: %w", err)
	}

	sc := &game.Scenario{
		Title:      e.Title,
		Goal:       e.Goal,
		SceneEmoji: e.SceneEmoji,
		Solution:   e.Solution,
		Order:      make([]string, 0, len(chars)),
		Characters: make(map[string]game.Character, len(chars)),
	}
	for _, ch := range chars {
		sc.Order = append(sc.Order, ch.Key)
		sc.Characters[ch.Key] = game.Character{
			Name:    ch.Name,
			Emoji:   ch.Emoji,
			Thought: ch.Thought,
			Action:  game.Action{Name: ch.Action, Icon: ch.ActionIco},
		}
	}
	return sc, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
