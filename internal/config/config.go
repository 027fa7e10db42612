package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables read by FromEnv.
const (
	EnvBank     = "CERTQUIZ_BANK"
	EnvFeedback = "CERTQUIZ_FEEDBACK"
	EnvEventLog = "CERTQUIZ_EVENT_LOG"
	EnvEventDB  = "CERTQUIZ_EVENT_DB"
	EnvRecord   = "CERTQUIZ_RECORD_EVENTS"
)

// DefaultBankSource is the bank read when nothing else is configured.
const DefaultBankSource = "questions.json"

type Config struct {
	// BankSource is a local path or http(s) URL of the question bank.
	BankSource string

	// InstantFeedback is the initial state of the feedback toggle on the
	// start screen.
	InstantFeedback bool

	// EventLogPath enables the JSONL event trail when non-empty.
	EventLogPath string

	// EventDBPath overrides the location of the SQLite event store. Empty
	// means DefaultEventDBPath.
	EventDBPath string

	// RecordEvents stores engine events in the event store.
	RecordEvents bool
}

func Default() Config {
	return Config{
		BankSource:      DefaultBankSource,
		InstantFeedback: true,
		RecordEvents:    true,
	}
}

// FromEnv overlays environment variables on Default.
func FromEnv() Config {
	def := Default()
	return Config{
		BankSource:      envOr(EnvBank, def.BankSource),
		InstantFeedback: envBool(EnvFeedback, def.InstantFeedback),
		EventLogPath:    strings.TrimSpace(os.Getenv(EnvEventLog)),
		EventDBPath:     strings.TrimSpace(os.Getenv(EnvEventDB)),
		RecordEvents:    envBool(EnvRecord, def.RecordEvents),
	}
}

// DefaultEventDBPath resolves the event store location:
// 1. $XDG_DATA_HOME/certquiz/events.db
// 2. ~/.local/share/certquiz/events.db
func DefaultEventDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "certquiz", "events.db"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(k))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
