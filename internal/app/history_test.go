package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/relaxapp/relax/internal/auth"
	"github.com/relaxapp/relax/internal/backend"
)

func newHistoryServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	r.HandleFunc("/api/users/profile/{id}", func(w http.ResponseWriter, r *http.Request) {
		if mux.Vars(r)["id"] != "42" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"userID":    42,
			"name":      "Asha",
			"email":     "asha@example.com",
			"createdAt": "2025-01-12 08:30:00",
		})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/users/progress/{id}", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(backend.Progress{
			"2025-02-01": {Hours: 0.5, Activity: "Box Breathing"},
		})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func TestLoadHistory(t *testing.T) {
	server := newHistoryServer(t)
	configPath, sessionPath := writeConfig(t, server.URL)
	if err := auth.Save(sessionPath, auth.User{UID: "42", Email: "asha@example.com"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	history, err := LoadHistory(context.Background(), configPath)
	if err != nil {
		t.Fatalf("LoadHistory returned error: %v", err)
	}
	if history.Profile.Name != "Asha" || history.User.UID != "42" {
		t.Fatalf("history = %#v", history)
	}
	if got := history.Progress["2025-02-01"].Activity; got != "Box Breathing" {
		t.Fatalf("activity = %q", got)
	}
}

func TestLoadHistorySignedOut(t *testing.T) {
	server := newHistoryServer(t)
	configPath, _ := writeConfig(t, server.URL)

	if _, err := LoadHistory(context.Background(), configPath); !errors.Is(err, auth.ErrSignedOut) {
		t.Fatalf("LoadHistory error = %v, want ErrSignedOut", err)
	}
}

func TestLoadHistoryUnknownUser(t *testing.T) {
	server := newHistoryServer(t)
	configPath, sessionPath := writeConfig(t, server.URL)
	if err := auth.Save(sessionPath, auth.User{UID: "7"}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	if _, err := LoadHistory(context.Background(), configPath); err == nil {
		t.Fatalf("LoadHistory returned nil error for unknown user")
	}
}

func TestTailLog(t *testing.T) {
	configPath, _ := writeConfig(t, "http://127.0.0.1:1")
	logPath := filepath.Join(filepath.Dir(configPath), "relax.log")

	lines, err := TailLog(configPath, 5)
	if err != nil || lines != nil {
		t.Fatalf("TailLog on missing log = %v, %v", lines, err)
	}

	var b strings.Builder
	for i := 1; i <= 25; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	if err := os.WriteFile(logPath, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	lines, err = TailLog(configPath, 3)
	if err != nil {
		t.Fatalf("TailLog returned error: %v", err)
	}
	if strings.Join(lines, ",") != "line 23,line 24,line 25" {
		t.Fatalf("TailLog = %q", lines)
	}

	if lines, _ := TailLog(configPath, 0); lines != nil {
		t.Fatalf("TailLog(0) = %q, want nil", lines)
	}
}
