package sqlite

import (
	"time"

	"github.com/julianstephens/sipwait/internal/models"
)

func (s *Store) AddDrinkEvent(event models.DrinkEvent) error {
	if s.db == nil {
		return errNotOpen
	}
	_, err := s.db.Exec("INSERT INTO drink_events (id, at) VALUES (?, ?)", event.ID, event.At.UnixMilli())
	return err
}

func (s *Store) GetDrinkEvents(limit int) ([]models.DrinkEvent, error) {
	if s.db == nil {
		return nil, errNotOpen
	}
	rows, err := s.db.Query("SELECT id, at FROM drink_events ORDER BY at DESC, id LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.DrinkEvent
	for rows.Next() {
		var event models.DrinkEvent
		var at int64
		if err := rows.Scan(&event.ID, &at); err != nil {
			return nil, err
		}
		event.At = time.UnixMilli(at).UTC()
		events = append(events, event)
	}
	return events, rows.Err()
}
