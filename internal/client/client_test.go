package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tempo/internal/domain"
	"tempo/internal/domain/models"
	"tempo/internal/httputil"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(srv.URL, "test-token", logger)
}

func TestFetchStateSendsBearerToken(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/state" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		httputil.RespondJSON(w, http.StatusOK, models.State{
			Folders: []models.Folder{{ID: "f1", Name: "Work"}},
			Modules: []models.Module{},
			Entries: []models.Entry{},
		})
	})

	state, err := c.FetchState(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(state.Folders) != 1 || state.Folders[0].Name != "Work" {
		t.Errorf("unexpected state: %+v", state)
	}
}

func TestCreateEntryDecodesResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/entries" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		httputil.RespondJSON(w, http.StatusCreated, models.Entry{
			ID:            "e1",
			ModuleID:      "m1",
			DurationHours: 1.5,
		})
	})

	entry, err := c.CreateEntry(context.Background(), &models.CreateEntryRequest{
		ModuleID:      "m1",
		ActivityType:  "study",
		DurationHours: 1.5,
		Date:          "2026-08-28",
	})
	if err != nil {
		t.Fatal(err)
	}
	if entry.ID != "e1" || entry.DurationHours != 1.5 {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestProblemResponsesMapToDomainErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, domain.ErrValidation},
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrConflict},
	}

	for _, tt := range tests {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			httputil.RespondError(w, tt.status, "nope")
		})

		err := c.DeleteFolder(context.Background(), "f1")
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: error = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestServerErrorIsNotASentinel(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		httputil.RespondError(w, http.StatusInternalServerError, "boom")
	})

	err := c.DeleteEntry(context.Background(), "e1")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrNotFound, domain.ErrUnauthorized} {
		if errors.Is(err, sentinel) {
			t.Errorf("500 should not match %v", sentinel)
		}
	}
}

func TestDeleteSendsNoBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/modules/m1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("delete carried a body: %q", body)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.DeleteModule(context.Background(), "m1"); err != nil {
		t.Fatal(err)
	}
}

func TestTokenSession(t *testing.T) {
	// unsigned token with sub=user-42, generated with alg=none semantics:
	// header {"alg":"none","typ":"JWT"} payload {"sub":"user-42"}
	token := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1c2VyLTQyIn0."

	if got := NewTokenSession(token).UserID(); got != "user-42" {
		t.Errorf("UserID() = %q, want user-42", got)
	}
	if got := NewTokenSession("").UserID(); got != "" {
		t.Errorf("empty token UserID() = %q, want empty", got)
	}
	if got := NewTokenSession("garbage").UserID(); got != "" {
		t.Errorf("garbage token UserID() = %q, want empty", got)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := &Config{ServerURL: "http://example.test:9090", Token: "abc"}
	if err := SaveConfig(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.ServerURL != want.ServerURL || got.Token != want.Token {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "http://localhost:8080" {
		t.Errorf("default ServerURL = %q", cfg.ServerURL)
	}
}
