package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"InsightPipe/internal/analyzer"
	"InsightPipe/internal/model"
)

// PostgresStore persists pipeline data to PostgreSQL. Same contract as
// SQLiteStore; upserts use ON CONFLICT instead of INSERT OR REPLACE.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects (with ping retries for containerized setups),
// runs migrations, and seeds the default strategic goals.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	s := &PostgresStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	if err := s.seedGoals(); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: seed goals: %w", err)
	}

	log.Println("[INFO] postgres store connected")
	return s, nil
}

func (s *PostgresStore) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS feedback_items (
			id                        TEXT PRIMARY KEY,
			feedback_text             TEXT NOT NULL,
			cleaned_text              TEXT,
			source_type               TEXT,
			date                      TEXT,
			category                  TEXT,
			confidence_score          DOUBLE PRECISION,
			sentiment_score           DOUBLE PRECISION,
			strategic_alignment_score DOUBLE PRECISION,
			priority_score            DOUBLE PRECISION,
			key_entities              TEXT,
			processed_date            TEXT,
			analysis_method           TEXT DEFAULT 'fallback'
		);
		CREATE INDEX IF NOT EXISTS idx_feedback_processed ON feedback_items(processed_date);
		CREATE INDEX IF NOT EXISTS idx_feedback_priority ON feedback_items(priority_score);

		CREATE TABLE IF NOT EXISTS strategic_goals (
			id           SERIAL PRIMARY KEY,
			goal_name    TEXT UNIQUE NOT NULL,
			description  TEXT,
			weight       INTEGER DEFAULT 5,
			created_date TEXT
		);

		CREATE TABLE IF NOT EXISTS processing_history (
			id                SERIAL PRIMARY KEY,
			batch_id          TEXT,
			records_processed INTEGER,
			processing_date   TEXT,
			status            TEXT
		);

		CREATE TABLE IF NOT EXISTS standardized_financial_data (
			id          TEXT PRIMARY KEY,
			date        TEXT,
			value       DOUBLE PRECISION,
			description TEXT,
			data_type   TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_financial_date ON standardized_financial_data(date);

		CREATE TABLE IF NOT EXISTS pipeline_runs_history (
			run_id            SERIAL PRIMARY KEY,
			timestamp         TEXT,
			status            TEXT,
			records_processed INTEGER
		);
	`)
	return err
}

func (s *PostgresStore) seedGoals() error {
	for _, g := range analyzer.DefaultGoals {
		_, err := s.db.Exec(`INSERT INTO strategic_goals
			(goal_name, description, weight, created_date) VALUES ($1,$2,$3,$4)
			ON CONFLICT (goal_name) DO NOTHING`,
			g.Name, g.Description, g.Weight, timestamp())
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) SaveFeedbackBatch(records []model.FeedbackRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin feedback batch: %w", err)
	}
	for _, r := range records {
		entities, err := json.Marshal(r.KeyEntities)
		if err != nil {
			entities = []byte("[]")
		}
		if _, err := tx.Exec(`INSERT INTO feedback_items
			(id, feedback_text, cleaned_text, source_type, date, category,
			 confidence_score, sentiment_score, strategic_alignment_score,
			 priority_score, key_entities, processed_date, analysis_method)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
			ON CONFLICT (id) DO UPDATE SET
				feedback_text = EXCLUDED.feedback_text,
				cleaned_text = EXCLUDED.cleaned_text,
				source_type = EXCLUDED.source_type,
				date = EXCLUDED.date,
				category = EXCLUDED.category,
				confidence_score = EXCLUDED.confidence_score,
				sentiment_score = EXCLUDED.sentiment_score,
				strategic_alignment_score = EXCLUDED.strategic_alignment_score,
				priority_score = EXCLUDED.priority_score,
				key_entities = EXCLUDED.key_entities,
				processed_date = EXCLUDED.processed_date,
				analysis_method = EXCLUDED.analysis_method`,
			r.ID, r.FeedbackText, r.CleanedText, r.SourceType, r.Date, r.Category,
			r.ConfidenceScore, r.SentimentScore, r.StrategicAlignmentScore,
			r.PriorityScore, string(entities), r.ProcessedDate, r.AnalysisMethod,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("postgres: insert feedback %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) SaveFinancialRecords(records []model.FinancialRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin financial batch: %w", err)
	}
	for _, r := range records {
		if _, err := tx.Exec(`INSERT INTO standardized_financial_data
			(id, date, value, description, data_type) VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (id) DO UPDATE SET
				date = EXCLUDED.date,
				value = EXCLUDED.value,
				description = EXCLUDED.description,
				data_type = EXCLUDED.data_type`,
			r.ID, r.Date, r.Value, r.Description, r.DataType,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("postgres: insert financial %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) StrategicGoals() ([]model.StrategicGoal, error) {
	rows, err := s.db.Query(`SELECT id, goal_name, description, weight, created_date
		FROM strategic_goals ORDER BY weight DESC`)
	if err != nil {
		return nil, fmt.Errorf("postgres: query goals: %w", err)
	}
	defer rows.Close()

	var goals []model.StrategicGoal
	for rows.Next() {
		var g model.StrategicGoal
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Weight, &g.CreatedDate); err != nil {
			return nil, fmt.Errorf("postgres: scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *PostgresStore) AddStrategicGoal(name, description string, weight int) error {
	_, err := s.db.Exec(`INSERT INTO strategic_goals
		(goal_name, description, weight, created_date) VALUES ($1,$2,$3,$4)`,
		name, description, weight, timestamp())
	return err
}

func (s *PostgresStore) DeleteStrategicGoal(id int64) error {
	_, err := s.db.Exec(`DELETE FROM strategic_goals WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) LogProcessing(batchID string, recordsProcessed int, status string) error {
	_, err := s.db.Exec(`INSERT INTO processing_history
		(batch_id, records_processed, processing_date, status) VALUES ($1,$2,$3,$4)`,
		batchID, recordsProcessed, timestamp(), status)
	return err
}

func (s *PostgresStore) LogPipelineRun(status string, recordsProcessed int) error {
	_, err := s.db.Exec(`INSERT INTO pipeline_runs_history
		(timestamp, status, records_processed) VALUES ($1,$2,$3)`,
		timestamp(), status, recordsProcessed)
	return err
}

func (s *PostgresStore) FeedbackCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM feedback_items`).Scan(&n)
	return n, err
}

func (s *PostgresStore) FinancialCount() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM standardized_financial_data`).Scan(&n)
	return n, err
}

func (s *PostgresStore) Close() error {
	log.Println("[INFO] closing postgres store")
	return s.db.Close()
}
