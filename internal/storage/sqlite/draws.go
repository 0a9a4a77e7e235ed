package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/secretsanta/internal/models"
	"github.com/mmynk/secretsanta/internal/storage"
)

// CreateDraw persists a draw and all its edges in one transaction.
func (s *SQLiteStore) CreateDraw(ctx context.Context, draw *models.Draw) error {
	if draw.ID == "" {
		draw.ID = uuid.New().String()
	}
	if draw.CreatedAt == 0 {
		draw.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO draws (id, event_id, attempts, created_at) VALUES (?, ?, ?, ?)",
		draw.ID, draw.EventID, draw.Attempts, draw.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert draw: %w", err)
	}

	for i, e := range draw.Edges {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO draw_edges (draw_id, giver_id, receiver_id, position) VALUES (?, ?, ?, ?)",
			draw.ID, e.GiverID, e.ReceiverID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert draw edge: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDraw retrieves a draw by ID, including its edges in roster order.
func (s *SQLiteStore) GetDraw(ctx context.Context, drawID string) (*models.Draw, error) {
	draw := &models.Draw{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, event_id, attempts, created_at FROM draws WHERE id = ?",
		drawID,
	).Scan(&draw.ID, &draw.EventID, &draw.Attempts, &draw.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("draw %s: %w", drawID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draw: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT giver_id, receiver_id FROM draw_edges WHERE draw_id = ? ORDER BY position",
		drawID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get draw edges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.Edge
		if err := rows.Scan(&e.GiverID, &e.ReceiverID); err != nil {
			return nil, fmt.Errorf("failed to scan draw edge: %w", err)
		}
		draw.Edges = append(draw.Edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draw edges: %w", err)
	}

	return draw, nil
}

// ListDraws returns the draws of an event, newest first.
func (s *SQLiteStore) ListDraws(ctx context.Context, eventID string) ([]models.DrawSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, event_id, attempts, created_at FROM draws WHERE event_id = ? ORDER BY created_at DESC, rowid DESC",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list draws: %w", err)
	}
	defer rows.Close()

	var draws []models.DrawSummary
	for rows.Next() {
		var d models.DrawSummary
		if err := rows.Scan(&d.ID, &d.EventID, &d.Attempts, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draw: %w", err)
		}
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draws: %w", err)
	}

	return draws, nil
}
