// Package config reads runtime settings from the environment and builds the logger.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds every setting the server and terminal surfaces read.
type Config struct {
	Port        int
	GinMode     string
	LogLevel    string
	LogFormat   string
	ContentFile string

	SMTP  SMTP
	Admin Admin

	// AnalyticsDB is the SQLite path for visit metrics; empty disables tracking.
	AnalyticsDB string
}

type SMTP struct {
	Host string
	Port int
	User string
	Pass string
	To   string
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool {
	return s.User != "" && s.Pass != ""
}

// Addr is host:port for net/smtp.
func (s SMTP) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

type Admin struct {
	Username string
	Password string
}

// DefaultCredentials reports whether the development fallback credentials are in use.
func (a Admin) DefaultCredentials() bool {
	return a.Username == defaultAdminUser || a.Password == defaultAdminPass
}

const (
	defaultPort      = 8080
	defaultSMTPHost  = "smtp.gmail.com"
	defaultSMTPPort  = 587
	defaultAdminUser = "admin"
	defaultAdminPass = "admin123"
)

// FromEnv loads configuration from the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load builds a Config from lookupEnv, applying development defaults.
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	port, err := parsePort("PORT", get("PORT", ""), defaultPort)
	if err != nil {
		return Config{}, err
	}
	smtpPort, err := parsePort("SMTP_PORT", get("SMTP_PORT", ""), defaultSMTPPort)
	if err != nil {
		return Config{}, err
	}

	format := strings.ToLower(get("LOG_FORMAT", "console"))
	if format != "console" && format != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be console or json, got %q", format)
	}

	cfg := Config{
		Port:        port,
		GinMode:     get("GIN_MODE", "release"),
		LogLevel:    get("LOG_LEVEL", "info"),
		LogFormat:   format,
		ContentFile: get("CONTENT_FILE", ""),
		SMTP: SMTP{
			Host: get("SMTP_HOST", defaultSMTPHost),
			Port: smtpPort,
			User: get("SMTP_USER", ""),
			Pass: get("SMTP_PASS", ""),
		},
		Admin: Admin{
			Username: get("ADMIN_USERNAME", defaultAdminUser),
			Password: get("ADMIN_PASSWORD", defaultAdminPass),
		},
		AnalyticsDB: get("ANALYTICS_DB", ""),
	}
	cfg.SMTP.To = get("TO_EMAIL", cfg.SMTP.User)
	return cfg, nil
}

func parsePort(key, raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	p, err := strconv.Atoi(raw)
	if err != nil || p <= 0 || p > 65535 {
		return 0, fmt.Errorf("%s must be a port number, got %q", key, raw)
	}
	return p, nil
}
