package storage

import (
	"net/url"
	"strings"
)

// IsPostgres reports whether target is a PostgreSQL URL or key=value DSN
// rather than a SQLite file path.
func IsPostgres(target string) bool {
	if strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://") {
		return true
	}
	return strings.Contains(target, "host=") || strings.Contains(target, "dbname=")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Such strings are rejected on the command line; the
// OS keyring, PGPASSWORD or .pgpass must be used instead.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, ok := u.User.Password(); ok {
				return true
			}
		}
		return u.Query().Get("password") != ""
	}

	for _, field := range strings.Fields(connStr) {
		key, _, ok := strings.Cut(field, "=")
		if ok && strings.EqualFold(strings.TrimSpace(key), "password") {
			return true
		}
	}
	return false
}
