package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"quizprize-game/internal/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(databaseURL string) (*PostgresRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

func createTables(db *sql.DB) error {
	createAwardsTable := `
	CREATE TABLE IF NOT EXISTS points_awards (
		id SERIAL PRIMARY KEY,
		player_id VARCHAR(36) NOT NULL,
		username VARCHAR(255) NOT NULL,
		session_id VARCHAR(36) NOT NULL,
		category VARCHAR(16) NOT NULL,
		question_id VARCHAR(64) NOT NULL,
		points INTEGER NOT NULL,
		awarded_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`

	createIndexes := `
	CREATE INDEX IF NOT EXISTS idx_points_awards_player_id ON points_awards(player_id);
	CREATE INDEX IF NOT EXISTS idx_points_awards_session_id ON points_awards(session_id);
	`

	if _, err := db.Exec(createAwardsTable); err != nil {
		return err
	}
	if _, err := db.Exec(createIndexes); err != nil {
		return err
	}

	return nil
}

func (r *PostgresRepository) SavePointsAward(award models.PointsAward) error {
	_, err := r.db.Exec(`
		INSERT INTO points_awards (player_id, username, session_id, category, question_id, points, awarded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, award.PlayerID, award.Username, award.SessionID, award.Category,
		award.QuestionID, award.Points, award.AwardedAt)
	if err != nil {
		return fmt.Errorf("failed to save points award: %w", err)
	}
	return nil
}

func (r *PostgresRepository) TotalPoints(playerID string) (int, error) {
	var total sql.NullInt64
	err := r.db.QueryRow(
		"SELECT SUM(points) FROM points_awards WHERE player_id = $1", playerID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum points: %w", err)
	}
	return int(total.Int64), nil
}

func (r *PostgresRepository) Close() error {
	return r.db.Close()
}
