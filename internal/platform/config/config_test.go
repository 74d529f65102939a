package config

import (
	"errors"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FIRESTORE_PROJECT_ID", "svitanok-test")
	t.Setenv("STORAGE_BUCKET", "svitanok-test.appspot.com")
	t.Setenv("ADMIN_EMAIL", "admin@svitanok.org.ua")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Firestore.NewsCollection != "news" || cfg.Firestore.ProjectsColl != "projects" {
		t.Errorf("collections = %q, %q", cfg.Firestore.NewsCollection, cfg.Firestore.ProjectsColl)
	}
	if cfg.Content.DefaultLang != "ua" || cfg.Content.PageSize != 6 {
		t.Errorf("content defaults = %q, %d", cfg.Content.DefaultLang, cfg.Content.PageSize)
	}
	if cfg.Session.IdleTimeout != 30*time.Minute || cfg.Session.WarnWindow != 2*time.Minute {
		t.Errorf("session defaults = %v, %v", cfg.Session.IdleTimeout, cfg.Session.WarnWindow)
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("FIREBASE_PROJECT_ID", "")
	t.Setenv("STORAGE_BUCKET", "")
	t.Setenv("ADMIN_EMAIL", "")

	_, err := Load()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	fields := verr.Fields()
	if len(fields) != 3 {
		t.Fatalf("fields = %v", fields)
	}
}

func TestLoad_FirestoreProjectFallsBackToFirebase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("FIREBASE_PROJECT_ID", "svitanok-prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Firestore.ProjectID != "svitanok-prod" {
		t.Fatalf("project id = %q", cfg.Firestore.ProjectID)
	}
}

func TestLoad_InvalidDurationsFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_IDLE_TIMEOUT", "soon")
	t.Setenv("CONTENT_PAGE_SIZE", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Session.IdleTimeout != 30*time.Minute {
		t.Errorf("idle timeout = %v", cfg.Session.IdleTimeout)
	}
	if cfg.Content.PageSize != 6 {
		t.Errorf("page size = %d", cfg.Content.PageSize)
	}
}

func TestLoad_WarnWindowMustFitInsideTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_IDLE_TIMEOUT", "1m")
	t.Setenv("SESSION_WARN_WINDOW", "5m")

	_, err := Load()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
