// Package store persists article records in a local sqlite database and
// materializes corpus snapshots for the analytics engine. It is the
// engine's supplier: the analyzer itself never touches the database.
package store

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
)

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			id          TEXT PRIMARY KEY,
			category    TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			link        TEXT NOT NULL DEFAULT '',
			importance  INTEGER NOT NULL DEFAULT 3,
			date        TEXT NOT NULL DEFAULT '',
			added_at    DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_category ON articles(category);
		CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// UpsertArticles inserts or updates articles. Missing IDs are derived from
// the link (or category and title), missing importance defaults to 3.
func (s *Store) UpsertArticles(articles []corpus.Article) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO articles (id, category, title, description, link, importance, date, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			title = excluded.title,
			description = excluded.description,
			link = excluded.link,
			importance = excluded.importance,
			date = excluded.date
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, a := range articles {
		id := a.ID
		if id == "" {
			id = articleID(a)
		}
		_, err := stmt.Exec(id, a.Category, a.Title, a.Description, a.Link, a.Rating(), a.Date, now)
		if err != nil {
			return fmt.Errorf("upserting article %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// LoadCorpus reads every stored article in insertion order, so the corpus
// keeps the category ordering in which articles first arrived.
func (s *Store) LoadCorpus() (*corpus.Corpus, error) {
	rows, err := s.readDB.Query(`
		SELECT id, category, title, description, link, importance, date
		FROM articles ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	c := corpus.New()
	for rows.Next() {
		var a corpus.Article
		if err := rows.Scan(&a.ID, &a.Category, &a.Title, &a.Description, &a.Link, &a.Importance, &a.Date); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		c.Add(a.Category, a)
	}
	return c, rows.Err()
}

// Search matches a term against titles and descriptions.
func (s *Store) Search(query string, limit int) ([]corpus.Article, error) {
	if limit <= 0 {
		limit = 50
	}
	term := "%" + query + "%"
	rows, err := s.readDB.Query(`
		SELECT id, category, title, description, link, importance, date
		FROM articles
		WHERE title LIKE ? OR description LIKE ?
		ORDER BY rowid
		LIMIT ?
	`, term, term, limit)
	if err != nil {
		return nil, fmt.Errorf("searching articles: %w", err)
	}
	defer rows.Close()

	var articles []corpus.Article
	for rows.Next() {
		var a corpus.Article
		if err := rows.Scan(&a.ID, &a.Category, &a.Title, &a.Description, &a.Link, &a.Importance, &a.Date); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Count returns the number of stored articles.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.readDB.QueryRow("SELECT COUNT(*) FROM articles").Scan(&n)
	return n, err
}

// Clear removes every stored article.
func (s *Store) Clear() error {
	_, err := s.writeDB.Exec("DELETE FROM articles")
	return err
}

// Stats reports the article count and database file size.
func (s *Store) Stats(dbPath string) (int64, int64, error) {
	count, err := s.Count()
	if err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}

func articleID(a corpus.Article) string {
	key := a.Link
	if key == "" {
		key = a.Category + "|" + a.Title
	}
	h := sha256.Sum256([]byte(key))
	return fmt.Sprintf("%x", h[:16])
}
