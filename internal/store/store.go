// Package store persists extracted calendar events in a single SQLite
// database so they can be edited and exported after extraction. The
// pipeline itself is stateless; this layer belongs to the UI surface.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS events (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL,
	time        TEXT NOT NULL DEFAULT '',
	type        TEXT NOT NULL,
	priority    TEXT NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	course      TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date, time);
`

type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path. Use ":memory:" in tests.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveEvents inserts a batch of events in one transaction.
func (s *Store) SaveEvents(ctx context.Context, events []entity.CalendarEvent) error {
	if len(events) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO events
		(id, title, description, date, time, type, priority, location, course)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.ExecContext(ctx, ev.ID, ev.Title, ev.Description,
			ev.Date, ev.Time, string(ev.Type), string(ev.Priority), ev.Location, ev.Course); err != nil {
			return fmt.Errorf("insert event %s: %w", ev.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("store.save_events.ok", "count", len(events))
	return nil
}

const eventColumns = "id, title, description, date, time, type, priority, location, course"

// ListEvents returns all stored events ordered by date then time.
func (s *Store) ListEvents(ctx context.Context) ([]entity.CalendarEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+eventColumns+" FROM events ORDER BY date, time, title")
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]entity.CalendarEvent, 0, 16)
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *Store) GetEvent(ctx context.Context, id string) (*entity.CalendarEvent, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+eventColumns+" FROM events WHERE id = ?", id)
	ev, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError(common.CodeNotFound,
			fmt.Sprintf("event %s not found", id), common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// UpdateEvent overwrites all editable fields of an existing event.
func (s *Store) UpdateEvent(ctx context.Context, ev entity.CalendarEvent) error {
	res, err := s.db.ExecContext(ctx, `UPDATE events SET
		title = ?, description = ?, date = ?, time = ?, type = ?, priority = ?,
		location = ?, course = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		ev.Title, ev.Description, ev.Date, ev.Time, string(ev.Type), string(ev.Priority),
		ev.Location, ev.Course, ev.ID)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return common.NewAppError(common.CodeNotFound,
			fmt.Sprintf("event %s not found", ev.ID), common.ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return common.NewAppError(common.CodeNotFound,
			fmt.Sprintf("event %s not found", id), common.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(r rowScanner) (entity.CalendarEvent, error) {
	var ev entity.CalendarEvent
	var typ, prio string
	if err := r.Scan(&ev.ID, &ev.Title, &ev.Description, &ev.Date, &ev.Time,
		&typ, &prio, &ev.Location, &ev.Course); err != nil {
		return ev, err
	}
	ev.Type, _ = constants.CoerceEventType(typ)
	ev.Priority, _ = constants.CoercePriority(prio)
	return ev, nil
}
