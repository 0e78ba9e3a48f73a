package content

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS greetings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	language TEXT NOT NULL UNIQUE,
	text TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Greeting is one "hello, world" in some language.
type Greeting struct {
	ID        int64
	Language  string
	Text      string
	UpdatedAt time.Time
}

// DefaultGreetings seed an empty store.
var DefaultGreetings = []Greeting{
	{Language: "en", Text: "Hello, World!"},
	{Language: "eo", Text: "Saluton, Mondo!"},
	{Language: "es", Text: "¡Hola, Mundo!"},
	{Language: "fr", Text: "Bonjour, le monde !"},
	{Language: "de", Text: "Hallo, Welt!"},
	{Language: "it", Text: "Ciao, mondo!"},
	{Language: "pt", Text: "Olá, Mundo!"},
	{Language: "sv", Text: "Hej, världen!"},
	{Language: "ru", Text: "Привет, мир!"},
	{Language: "ja", Text: "こんにちは、世界！"},
}

// Store reads and writes greetings.
type Store struct {
	db     *sql.DB
	driver string
}

// Open opens the database and checks the connection. An empty driver
// selects DefaultDriver.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	if driver == "" {
		driver = DefaultDriver
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("content: open %s: %w", driver, err)
	}
	// Every connection to an in-memory database is a new database.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("content: ping %s: %w", driver, err)
	}
	return &Store{db: db, driver: driver}, nil
}

// Driver returns the database/sql driver name in use.
func (s *Store) Driver() string {
	return s.driver
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("content: migrate: %w", err)
	}
	return nil
}

// Seed inserts DefaultGreetings when the store is empty. It reports
// whether anything was inserted.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM greetings").Scan(&count); err != nil {
		return false, fmt.Errorf("content: seed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("content: seed: %w", err)
	}
	defer tx.Rollback()

	for _, g := range DefaultGreetings {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO greetings (language, text) VALUES (?, ?)", g.Language, g.Text); err != nil {
			return false, fmt.Errorf("content: seed %s: %w", g.Language, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("content: seed: %w", err)
	}
	return true, nil
}

// Greetings returns all greetings in insertion order.
func (s *Store) Greetings(ctx context.Context) ([]Greeting, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, language, text, updated_at FROM greetings ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("content: list greetings: %w", err)
	}
	defer rows.Close()

	var greetings []Greeting
	for rows.Next() {
		var g Greeting
		if err := rows.Scan(&g.ID, &g.Language, &g.Text, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("content: scan greeting: %w", err)
		}
		greetings = append(greetings, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("content: list greetings: %w", err)
	}
	return greetings, nil
}

// Put inserts the greeting for a language or replaces its text.
func (s *Store) Put(ctx context.Context, language, text string) error {
	if language == "" {
		return fmt.Errorf("content: put: empty language")
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO greetings (language, text) VALUES (?, ?)
ON CONFLICT(language) DO UPDATE SET text = excluded.text, updated_at = CURRENT_TIMESTAMP`,
		language, text)
	if err != nil {
		return fmt.Errorf("content: put %s: %w", language, err)
	}
	return nil
}

// Delete removes the greeting for a language. It reports whether a row
// was removed.
func (s *Store) Delete(ctx context.Context, language string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM greetings WHERE language = ?", language)
	if err != nil {
		return false, fmt.Errorf("content: delete %s: %w", language, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("content: delete %s: %w", language, err)
	}
	return n > 0, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
