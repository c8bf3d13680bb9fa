package notifier

import "github.com/julianstephens/sipwait/internal/logger"

// Permission grants notifications only while the tray companion is up, since
// nothing else on a desktop can display them.
type Permission struct {
	notifier *Notifier
}

func NewPermission(n *Notifier) *Permission {
	return &Permission{notifier: n}
}

func (p *Permission) RequestNotificationPermission() bool {
	if err := p.notifier.Available(); err != nil {
		logger.Info("Notification permission denied", "reason", err)
		return false
	}
	return true
}
