package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/sipwait/internal/constants"
	"github.com/julianstephens/sipwait/internal/models"
)

const upsertState = `INSERT INTO timer_state (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

func (s *Store) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, errNotOpen
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM timer_state WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) GetAll() (map[string]string, error) {
	if s.db == nil {
		return nil, errNotOpen
	}
	rows, err := s.db.Query("SELECT key, value FROM timer_state")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		data[key] = value
	}
	return data, rows.Err()
}

func (s *Store) Set(key, value string) error {
	return s.SetMany(map[string]string{key: value})
}

func (s *Store) SetMany(values map[string]string) error {
	if s.db == nil {
		return errNotOpen
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertState)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range values {
		if key == constants.StateLastUpdateTime {
			continue
		}
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("writing %s: %w", key, err)
		}
	}
	if _, err := stmt.Exec(constants.StateLastUpdateTime, models.FormatTimestamp(s.now())); err != nil {
		return fmt.Errorf("stamping %s: %w", constants.StateLastUpdateTime, err)
	}

	return tx.Commit()
}

func (s *Store) Clear(key string) error {
	if s.db == nil {
		return errNotOpen
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM timer_state WHERE key = ?", key); err != nil {
		return fmt.Errorf("clearing %s: %w", key, err)
	}
	if _, err := tx.Exec(upsertState, constants.StateLastUpdateTime, models.FormatTimestamp(s.now())); err != nil {
		return fmt.Errorf("stamping %s: %w", constants.StateLastUpdateTime, err)
	}

	return tx.Commit()
}

var errNotOpen = errors.New("database not open, call Init or Load first")
