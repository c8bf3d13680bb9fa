package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/julianstephens/sipwait/internal/models"
	"github.com/julianstephens/sipwait/internal/storage"
)

func (s *Store) SaveScheduledNotification(n models.ScheduledNotification) error {
	if s.db == nil {
		return errNotOpen
	}
	_, err := s.db.Exec(`INSERT INTO scheduled_notifications (id, fire_at, message, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fire_at = excluded.fire_at,
			message = excluded.message,
			created_at = excluded.created_at`,
		n.ID, n.FireAt.UnixMilli(), n.Message, n.CreatedAt.UnixMilli())
	return err
}

func (s *Store) GetScheduledNotification(id string) (models.ScheduledNotification, error) {
	if s.db == nil {
		return models.ScheduledNotification{}, errNotOpen
	}
	row := s.db.QueryRow("SELECT id, fire_at, message, created_at FROM scheduled_notifications WHERE id = ?", id)
	n, err := scanNotification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ScheduledNotification{}, storage.ErrNotFound
	}
	return n, err
}

func (s *Store) GetDueNotifications(now time.Time) ([]models.ScheduledNotification, error) {
	if s.db == nil {
		return nil, errNotOpen
	}
	rows, err := s.db.Query(`SELECT id, fire_at, message, created_at FROM scheduled_notifications
		WHERE fire_at <= ? ORDER BY fire_at`, now.UnixMilli())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []models.ScheduledNotification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		due = append(due, n)
	}
	return due, rows.Err()
}

func (s *Store) DeleteScheduledNotification(id string) error {
	if s.db == nil {
		return errNotOpen
	}
	_, err := s.db.Exec("DELETE FROM scheduled_notifications WHERE id = ?", id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNotification(row scanner) (models.ScheduledNotification, error) {
	var n models.ScheduledNotification
	var fireAt, createdAt int64
	if err := row.Scan(&n.ID, &fireAt, &n.Message, &createdAt); err != nil {
		return models.ScheduledNotification{}, err
	}
	n.FireAt = time.UnixMilli(fireAt).UTC()
	n.CreatedAt = time.UnixMilli(createdAt).UTC()
	return n, nil
}
