package infra

import (
	"strings"
)

type PgConfig struct {
	ConnectionString    string
	Database            string
	DbConnectWithSocket bool
	Hostname            string
	Password            string
	Port                string
	User                string
	MaxPoolConnections  int
	SslMode             string
}

// GetConnectionString returns ConnectionString when set, otherwise a keyword/value string
// built from the other fields. Values are quoted when libpq requires it.
func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}

	sslMode := config.SslMode
	if sslMode == "" {
		sslMode = "prefer"
	}

	pairs := []string{
		pgKeywordValue("host", config.Hostname),
		pgKeywordValue("user", config.User),
		pgKeywordValue("password", config.Password),
		pgKeywordValue("database", config.Database),
		pgKeywordValue("sslmode", sslMode),
	}
	// the host is a socket directory then, which has no port
	if !config.DbConnectWithSocket {
		pairs = append(pairs, pgKeywordValue("port", config.Port))
	}
	return strings.Join(pairs, " ")
}

func pgKeywordValue(keyword, value string) string {
	if value != "" && !strings.ContainsAny(value, " '\\") {
		return keyword + "=" + value
	}
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return keyword + "='" + escaped + "'"
}
