// Package config loads runtime configuration from environment variables,
// organised by concern and validated before the service starts.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultLang            = "ua"
	defaultPageSize        = 6
	defaultSessionTimeout  = 30 * time.Minute
	defaultWarnWindow      = 2 * time.Minute
	defaultSessionPoll     = 5 * time.Second
	defaultNewsCollection  = "news"
	defaultProjCollection  = "projects"
	defaultMailCollection  = "mail"
	defaultContactLog      = "contactMessages"
	defaultImagePathPrefix = "images"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Firebase  FirebaseConfig
	Firestore FirestoreConfig
	Storage   StorageConfig
	Content   ContentConfig
	Session   SessionConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// FirebaseConfig stores Firebase project settings used for identity.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

// FirestoreConfig stores document database parameters.
type FirestoreConfig struct {
	ProjectID       string
	EmulatorHost    string
	NewsCollection  string
	ProjectsColl    string
	MailCollection  string
	ContactLogColl  string
}

// StorageConfig describes the public image bucket.
type StorageConfig struct {
	Bucket          string
	ImagePathPrefix string
}

// ContentConfig controls content defaults and the admin gate.
type ContentConfig struct {
	AdminEmail  string
	DefaultLang string
	PageSize    int
}

// SessionConfig controls the admin idle-session monitor.
type SessionConfig struct {
	IdleTimeout  time.Duration
	WarnWindow   time.Duration
	PollInterval time.Duration
}

// ValidationError is returned when required configuration is missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Load reads configuration from the environment, applying defaults and
// validating required fields.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:         envOrDefault("PORT", defaultPort),
			ReadTimeout:  envDuration("SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: envDuration("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  envDuration("SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Firebase: FirebaseConfig{
			ProjectID:       strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
			CredentialsFile: strings.TrimSpace(os.Getenv("FIREBASE_CREDENTIALS_FILE")),
		},
		Firestore: FirestoreConfig{
			ProjectID:      strings.TrimSpace(os.Getenv("FIRESTORE_PROJECT_ID")),
			EmulatorHost:   strings.TrimSpace(os.Getenv("FIRESTORE_EMULATOR_HOST")),
			NewsCollection: envOrDefault("FIRESTORE_NEWS_COLLECTION", defaultNewsCollection),
			ProjectsColl:   envOrDefault("FIRESTORE_PROJECTS_COLLECTION", defaultProjCollection),
			MailCollection: envOrDefault("FIRESTORE_MAIL_COLLECTION", defaultMailCollection),
			ContactLogColl: envOrDefault("FIRESTORE_CONTACT_COLLECTION", defaultContactLog),
		},
		Storage: StorageConfig{
			Bucket:          strings.TrimSpace(os.Getenv("STORAGE_BUCKET")),
			ImagePathPrefix: envOrDefault("STORAGE_IMAGE_PREFIX", defaultImagePathPrefix),
		},
		Content: ContentConfig{
			AdminEmail:  strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			DefaultLang: envOrDefault("CONTENT_DEFAULT_LANG", defaultLang),
			PageSize:    envInt("CONTENT_PAGE_SIZE", defaultPageSize),
		},
		Session: SessionConfig{
			IdleTimeout:  envDuration("SESSION_IDLE_TIMEOUT", defaultSessionTimeout),
			WarnWindow:   envDuration("SESSION_WARN_WINDOW", defaultWarnWindow),
			PollInterval: envDuration("SESSION_POLL_INTERVAL", defaultSessionPoll),
		},
	}

	if cfg.Firestore.ProjectID == "" {
		cfg.Firestore.ProjectID = cfg.Firebase.ProjectID
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.Firestore.ProjectID == "" {
		missing = append(missing, "FIRESTORE_PROJECT_ID")
	}
	if c.Storage.Bucket == "" {
		missing = append(missing, "STORAGE_BUCKET")
	}
	if c.Content.AdminEmail == "" {
		missing = append(missing, "ADMIN_EMAIL")
	}
	if c.Session.WarnWindow >= c.Session.IdleTimeout {
		missing = append(missing, "SESSION_WARN_WINDOW")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &ValidationError{fields: missing}
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
