package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"InsightPipe/internal/analyzer"
	"InsightPipe/internal/model"
)

// SQLiteStore persists pipeline data to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database, runs migrations, and
// seeds the default strategic goals.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard readers don't block pipeline writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.seedGoals(); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed goals: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS feedback_items (
			id                        TEXT PRIMARY KEY,
			feedback_text             TEXT NOT NULL,
			cleaned_text              TEXT,
			source_type               TEXT,
			date                      TEXT,
			category                  TEXT,
			confidence_score          REAL,
			sentiment_score           REAL,
			strategic_alignment_score REAL,
			priority_score            REAL,
			key_entities              TEXT,
			processed_date            TEXT,
			analysis_method           TEXT DEFAULT 'fallback'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_processed ON feedback_items(processed_date)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_priority ON feedback_items(priority_score)`,

		`CREATE TABLE IF NOT EXISTS strategic_goals (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			goal_name    TEXT UNIQUE NOT NULL,
			description  TEXT,
			weight       INTEGER DEFAULT 5,
			created_date TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS processing_history (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			batch_id          TEXT,
			records_processed INTEGER,
			processing_date   TEXT,
			status            TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS standardized_financial_data (
			id          TEXT PRIMARY KEY,
			date        TEXT,
			value       REAL,
			description TEXT,
			data_type   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_financial_date ON standardized_financial_data(date)`,

		`CREATE TABLE IF NOT EXISTS pipeline_runs_history (
			run_id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         TEXT,
			status            TEXT,
			records_processed INTEGER
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLiteStore) seedGoals() error {
	for _, g := range analyzer.DefaultGoals {
		_, err := s.db.Exec(`INSERT OR IGNORE INTO strategic_goals
			(goal_name, description, weight, created_date) VALUES (?,?,?,?)`,
			g.Name, g.Description, g.Weight, timestamp())
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) SaveFeedbackBatch(records []model.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin feedback batch: %w", err)
	}
	for _, r := range records {
		entities, err := json.Marshal(r.KeyEntities)
		if err != nil {
			entities = []byte("[]")
		}
		if _, err := tx.Exec(`INSERT OR REPLACE INTO feedback_items
			(id, feedback_text, cleaned_text, source_type, date, category,
			 confidence_score, sentiment_score, strategic_alignment_score,
			 priority_score, key_entities, processed_date, analysis_method)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			r.ID, r.FeedbackText, r.CleanedText, r.SourceType, r.Date, r.Category,
			r.ConfidenceScore, r.SentimentScore, r.StrategicAlignmentScore,
			r.PriorityScore, string(entities), r.ProcessedDate, r.AnalysisMethod,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert feedback %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) SaveFinancialRecords(records []model.FinancialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin financial batch: %w", err)
	}
	for _, r := range records {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO standardized_financial_data
			(id, date, value, description, data_type) VALUES (?,?,?,?,?)`,
			r.ID, r.Date, r.Value, r.Description, r.DataType,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert financial %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) StrategicGoals() ([]model.StrategicGoal, error) {
	rows, err := s.db.Query(`SELECT id, goal_name, description, weight, created_date
		FROM strategic_goals ORDER BY weight DESC`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []model.StrategicGoal
	for rows.Next() {
		var g model.StrategicGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Weight, &g.CreatedDate); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *SQLiteStore) AddStrategicGoal(name, description string, weight int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO strategic_goals
		(goal_name, description, weight, created_date) VALUES (?,?,?,?)`,
		name, description, weight, timestamp())
	return err
}

func (s *SQLiteStore) DeleteStrategicGoal(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`DELETE FROM strategic_goals WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) LogProcessing(batchID string, recordsProcessed int, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO processing_history
		(batch_id, records_processed, processing_date, status) VALUES (?,?,?,?)`,
		batchID, recordsProcessed, timestamp(), status)
	return err
}

func (s *SQLiteStore) LogPipelineRun(status string, recordsProcessed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO pipeline_runs_history
		(timestamp, status, records_processed) VALUES (?,?,?)`,
		timestamp(), status, recordsProcessed)
	return err
}

func (s *SQLiteStore) FeedbackCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM feedback_items`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) FinancialCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM standardized_financial_data`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}

func timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
