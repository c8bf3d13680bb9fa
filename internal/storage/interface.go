package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/sipwait/internal/models"
)

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("not found")
	// ErrNotInitialized is returned by Load when the backing store has never been created
	ErrNotInitialized = errors.New("storage not initialized")
)

// Reader is the read-only handle given to display surfaces.
type Reader interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool, error)
	// GetAll returns every stored timer state field.
	GetAll() (map[string]string, error)
}

// Provider is the full store. Only the recorder and the notification
// scheduler hold one; surfaces get a Reader.
type Provider interface {
	Reader

	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Timer state. Every mutation is written immediately and stamps
	// last_update_time; concurrent writers resolve by last write wins.
	Set(key, value string) error
	SetMany(values map[string]string) error
	Clear(key string) error

	// Drink history
	AddDrinkEvent(models.DrinkEvent) error
	// GetDrinkEvents returns up to limit events, newest first.
	GetDrinkEvents(limit int) ([]models.DrinkEvent, error)

	// Scheduled notifications. Saving an existing ID replaces it.
	SaveScheduledNotification(models.ScheduledNotification) error
	GetScheduledNotification(id string) (models.ScheduledNotification, error)
	// GetDueNotifications returns notifications with FireAt <= now, oldest first.
	GetDueNotifications(now time.Time) ([]models.ScheduledNotification, error)
	DeleteScheduledNotification(id string) error

	// Utils
	GetConfigPath() string
}
