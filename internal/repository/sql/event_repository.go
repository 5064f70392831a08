package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/iyhunko/product-catalog/internal/repository"
)

const eventColumns = "id, event_type, event_data, status, created_at, processed_at"

// EventRepository implements the Repository interface for Event entities.
type EventRepository struct {
	db  *sql.DB
	txn *sql.Tx
}

// NewEventRepository creates a new EventRepository instance.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// getExecutor returns the active executor (transaction if exists, otherwise db)
func (r *EventRepository) getExecutor() dbExecutor {
	if r.txn != nil {
		return r.txn
	}
	return r.db
}

// Create inserts a new event into the database.
func (r *EventRepository) Create(ctx context.Context, resource repository.Resource) (repository.Resource, error) {
	event, ok := resource.(*model.Event)
	if !ok {
		return nil, fmt.Errorf("resource must be a *model.Event: %w", repository.ErrInvalidType)
	}

	event.InitMeta()

	query := `INSERT INTO events (` + eventColumns + `) 
	          VALUES ($1, $2, $3, $4, $5, $6)`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, event.ID, event.EventType, []byte(event.EventData), event.Status, event.CreatedAt, event.ProcessedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return event, nil
}

// Update is not supported for outbox events; use UpdateStatus.
func (r *EventRepository) Update(_ context.Context, resource repository.Resource) (repository.Resource, error) {
	return nil, fmt.Errorf("events are append-only, use UpdateStatus: %w", repository.ErrInvalidType)
}

// FindByID retrieves a single event by ID.
func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (repository.Resource, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	result, err := scanEvent(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event not found: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	return result, nil
}

// List retrieves events with the queried status (pending by default), oldest first.
func (r *EventRepository) List(ctx context.Context, query repository.Query) ([]repository.Resource, error) {
	status, ok := query.Get(repository.StatusField)
	if !ok {
		status = string(model.EventStatusPending)
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString("SELECT " + eventColumns + " FROM events WHERE status = $1 ORDER BY created_at ASC")
	args := []interface{}{status}
	if query.Limit > 0 {
		queryBuilder.WriteString(" LIMIT $2")
		args = append(args, query.Limit)
	}

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, queryBuilder.String())
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []repository.Resource{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// DeleteByID deletes an event by ID.
func (r *EventRepository) DeleteByID(ctx context.Context, resource repository.Resource) error {
	event, ok := resource.(*model.Event)
	if !ok {
		return fmt.Errorf("resource must be a *model.Event: %w", repository.ErrInvalidType)
	}

	query := `DELETE FROM events WHERE id = $1`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare delete statement: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, event.ID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("event not found: %w", repository.ErrNotFound)
	}

	return nil
}

// UpdateStatus updates the status and processed_at time of an event
func (r *EventRepository) UpdateStatus(ctx context.Context, eventID uuid.UUID, status any) error {
	eventStatus, ok := status.(model.EventStatus)
	if !ok {
		return fmt.Errorf("status must be of type model.EventStatus: %w", repository.ErrInvalidType)
	}

	query := `UPDATE events SET status = $1, processed_at = CURRENT_TIMESTAMP WHERE id = $2`

	executor := r.getExecutor()
	stmt, err := executor.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare update statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, eventStatus, eventID)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var event model.Event
	var data []byte
	var processedAt sql.NullTime
	if err := row.Scan(&event.ID, &event.EventType, &data, &event.Status, &event.CreatedAt, &processedAt); err != nil {
		return nil, err
	}
	event.EventData = data
	if processedAt.Valid {
		event.ProcessedAt = &processedAt.Time
	}
	return &event, nil
}
