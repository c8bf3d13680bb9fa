package constants

import "time"

// SurfaceKind identifies how a display surface renders the timer
type SurfaceKind string

const (
	AppName             = "sipwait"
	DefaultKeyringUser  = "database-connection"
	DefaultConfigPath   = "~/.config/sipwait/sipwait.db"
	DefaultSurfacesFile = "~/.config/sipwait/surfaces.yaml"
	DefaultEnvFile      = "~/.config/sipwait/sipwait.env"
	KeyringDBSentinel   = "keyring"
	Version             = "v0.3.0"

	// TimestampFormat is how timestamps are persisted in the store
	TimestampFormat = time.RFC3339Nano

	// ReadyText is shown by every surface once the cooldown has elapsed
	ReadyText = "Ready!"

	// Notification constants
	ReadyNotificationID    = "drink-ready"
	ReadyNotificationText  = "Cooldown over, you're ready for another drink."
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "sipwait-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.sipwait"
	TrayExecutablePrefix   = "sipwait-tray"
	TraySecretHeader       = "X-Sipwait-Secret"

	// History constants
	DefaultHistoryLimit = 20

	// Surface kinds
	SurfaceMain         SurfaceKind = "main"
	SurfaceWidgetSmall  SurfaceKind = "widget-small"
	SurfaceWidgetMedium SurfaceKind = "widget-medium"
	SurfaceComplication SurfaceKind = "complication"
)

// DelayOptions are the cooldown choices offered by pickers. Any positive
// number of minutes is accepted by the recorder.
var DelayOptions = []int{15, 30, 45, 60, 90, 120, 180, 240}

// NotificationGracePeriod is how long a due notification keeps being retried
// before it is dropped as stale.
const NotificationGracePeriod = 10 * time.Minute
