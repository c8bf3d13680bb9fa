package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/julianstephens/sipwait/internal/models"
	"github.com/julianstephens/sipwait/internal/storage"
)

func (s *Store) AddDrinkEvent(event models.DrinkEvent) error {
	if s.db == nil {
		return errNotOpen
	}
	_, err := s.db.Exec("INSERT INTO drink_events (id, at) VALUES ($1, $2)", event.ID, event.At.UTC())
	return err
}

func (s *Store) GetDrinkEvents(limit int) ([]models.DrinkEvent, error) {
	if s.db == nil {
		return nil, errNotOpen
	}
	rows, err := s.db.Query("SELECT id, at FROM drink_events ORDER BY at DESC, id LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.DrinkEvent
	for rows.Next() {
		var event models.DrinkEvent
		if err := rows.Scan(&event.ID, &event.At); err != nil {
			return nil, err
		}
		event.At = event.At.UTC()
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *Store) SaveScheduledNotification(n models.ScheduledNotification) error {
	if s.db == nil {
		return errNotOpen
	}
	_, err := s.db.Exec(`INSERT INTO scheduled_notifications (id, fire_at, message, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			fire_at = EXCLUDED.fire_at,
			message = EXCLUDED.message,
			created_at = EXCLUDED.created_at`,
		n.ID, n.FireAt.UTC(), n.Message, n.CreatedAt.UTC())
	return err
}

func (s *Store) GetScheduledNotification(id string) (models.ScheduledNotification, error) {
	if s.db == nil {
		return models.ScheduledNotification{}, errNotOpen
	}
	var n models.ScheduledNotification
	err := s.db.QueryRow("SELECT id, fire_at, message, created_at FROM scheduled_notifications WHERE id = $1", id).
		Scan(&n.ID, &n.FireAt, &n.Message, &n.CreatedAt)
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
		WHERE fire_at <= $1 ORDER BY fire_at`, now.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []models.ScheduledNotification
	for rows.Next() {
		var n models.ScheduledNotification
		if err := rows.Scan(&n.ID, &n.FireAt, &n.Message, &n.CreatedAt); err != nil {
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
	_, err := s.db.Exec("DELETE FROM scheduled_notifications WHERE id = $1", id)
	return err
}
