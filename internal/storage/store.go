// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/secretsanta/internal/models"
)

// ErrNotFound is returned when an event or draw does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for event and draw storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateEvent persists a new event with its roster.
	// The event.ID and event.CreatedAt fields are populated by the store when empty.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event and its roster, in submission order.
	// Returns an error wrapping ErrNotFound if the event does not exist.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEvents returns all events, newest first, without rosters.
	ListEvents(ctx context.Context) ([]*models.Event, error)

	// DeleteEvent removes an event together with its draws.
	DeleteEvent(ctx context.Context, eventID string) error

	// CreateDraw persists a committed draw. All edges are written in one
	// transaction; a failed write leaves no partial draw behind.
	CreateDraw(ctx context.Context, draw *models.Draw) error

	// GetDraw retrieves a draw with all of its edges.
	GetDraw(ctx context.Context, drawID string) (*models.Draw, error)

	// ListDraws returns summaries of an event's draws, newest first.
	ListDraws(ctx context.Context, eventID string) ([]models.DrawSummary, error)

	// Close releases any resources held by the store.
	Close() error
}
