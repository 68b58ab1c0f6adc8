package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "127.0.0.1:3000" {
		t.Fatalf("default url = %q, want http://127.0.0.1:3000", u.String())
	}

	u, err = parseBaseURL("example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_GetUserDocument(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		if r.URL.Path != "/api/users/profile/1700000000" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"userID":    1700000000,
			"name":      "Asha",
			"email":     "asha@example.com",
			"createdAt": "2025-01-02T03:04:05Z",
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	doc, err := c.Get(ctx, CollectionUsers, "1700000000")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if name, ok := doc.String("name"); !ok || name != "Asha" {
		t.Fatalf("doc name = %q (%v), want Asha", name, ok)
	}
	if !strings.HasPrefix(gotUserAgent, "relax/") {
		t.Fatalf("User-Agent = %q, want relax/*", gotUserAgent)
	}
	if len(gotRequestID) != 36 {
		t.Fatalf("X-Request-ID = %q, want a uuid", gotRequestID)
	}

	profile, err := c.FetchProfile(ctx, "1700000000")
	if err != nil {
		t.Fatalf("FetchProfile returned error: %v", err)
	}
	if profile.Email != "asha@example.com" || profile.UserID != 1700000000 {
		t.Fatalf("FetchProfile = %#v, want asha@example.com id=1700000000", profile)
	}
	if profile.ParsedCreatedAt().Year() != 2025 {
		t.Fatalf("ParsedCreatedAt = %v, want 2025", profile.ParsedCreatedAt())
	}
}

func TestClient_GetRejectsUnknownCollectionAndBadIDs(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.Get(context.Background(), "sessions", "1"); err == nil {
		t.Fatalf("Get(sessions) returned nil error, want error")
	}
	if _, err := c.Get(context.Background(), CollectionUsers, "  "); err == nil {
		t.Fatalf("Get(blank id) returned nil error, want error")
	}
	if _, err := c.Get(context.Background(), CollectionUsers, "../admin"); err == nil {
		t.Fatalf("Get(path id) returned nil error, want error")
	}
}

func TestClient_NotFoundIsSentinel(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"User not found."}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.Get(context.Background(), CollectionUsers, "42")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/users/profile/1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/users/progress/1":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"Server error during progress fetch."}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Get(context.Background(), CollectionUsers, "1")
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("Get error = %v, want decode response error", err)
	}

	_, err = c.FetchProgress(context.Background(), "1")
	if err == nil || !strings.Contains(err.Error(), "returned status 500: Server error during progress fetch.") {
		t.Fatalf("FetchProgress error = %v, want status 500 with backend message", err)
	}
}

func TestClient_LoginPostsCredentials(t *testing.T) {
	t.Parallel()

	var got LoginRequest
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/login" {
			http.NotFound(w, r)
			return
		}
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		if got.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials."}`))
			return
		}
		_ = json.NewEncoder(w).Encode(LoginResponse{Message: "Login successful.", UserID: "1700000000"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	resp, err := c.Login(context.Background(), " asha@example.com ", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.UserID != "1700000000" {
		t.Fatalf("UserID = %q, want 1700000000", resp.UserID)
	}
	if got.Email != "asha@example.com" {
		t.Fatalf("posted email = %q, want trimmed address", got.Email)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}

	_, err = c.Login(context.Background(), "asha@example.com", "wrong")
	if err == nil || !strings.Contains(err.Error(), "Invalid credentials.") {
		t.Fatalf("Login error = %v, want invalid credentials", err)
	}

	if _, err := c.Login(context.Background(), "", "secret"); err == nil {
		t.Fatalf("Login with blank email returned nil error")
	}
}

func TestClient_RegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	registered := map[string]RegisterRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/users/register" {
			http.NotFound(w, r)
			return
		}
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if _, ok := registered[req.Email]; ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"User already registered."}`))
			return
		}
		registered[req.Email] = req
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Registration successful."}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	resp, err := c.Register(ctx, " Asha ", " asha@example.com ", "secret")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if resp.Message != "Registration successful." {
		t.Fatalf("Message = %q", resp.Message)
	}
	mu.Lock()
	got := registered["asha@example.com"]
	mu.Unlock()
	if got.Name != "Asha" || got.Password != "secret" {
		t.Fatalf("posted body = %#v, want trimmed name and raw password", got)
	}

	_, err = c.Register(ctx, "Asha", "asha@example.com", "other")
	if err == nil || !strings.Contains(err.Error(), "User already registered.") {
		t.Fatalf("duplicate Register error = %v, want already registered", err)
	}

	for _, tc := range []struct{ name, email, password string }{
		{"", "a@example.com", "x"},
		{"Asha", "  ", "x"},
		{"Asha", "a@example.com", ""},
	} {
		if _, err := c.Register(ctx, tc.name, tc.email, tc.password); err == nil {
			t.Fatalf("Register(%q, %q, %q) returned nil error", tc.name, tc.email, tc.password)
		}
	}
}

func TestClient_ProgressRoundTrip(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	stored := Progress{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/users/updateProgress":
			var req UpdateProgressRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID != "7" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			for date, entry := range req.ProgressData {
				stored[date] = entry
			}
			_, _ = w.Write([]byte(`{"message":"Progress updated successfully."}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/progress/7":
			_ = json.NewEncoder(w).Encode(stored)
		case r.Method == http.MethodGet && r.URL.Path == "/api/users/progress/8":
			_, _ = w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := c.UpdateProgress(ctx, "7", Progress{"2026-10-18": {Hours: 0.25, Activity: "Box Breathing"}}); err != nil {
		t.Fatalf("UpdateProgress returned error: %v", err)
	}
	if err := c.UpdateProgress(ctx, "7", Progress{"2026-10-19": {Hours: 0.5, Activity: "Ujjayi Pranayama"}}); err != nil {
		t.Fatalf("UpdateProgress returned error: %v", err)
	}

	progress, err := c.FetchProgress(ctx, "7")
	if err != nil {
		t.Fatalf("FetchProgress returned error: %v", err)
	}
	dates := progress.Dates()
	if len(dates) != 2 || dates[0] != "2026-10-18" || dates[1] != "2026-10-19" {
		t.Fatalf("Dates = %v, want two sorted dates", dates)
	}
	if progress.TotalHours() != 0.75 {
		t.Fatalf("TotalHours = %v, want 0.75", progress.TotalHours())
	}

	empty, err := c.FetchProgress(ctx, "8")
	if err != nil {
		t.Fatalf("FetchProgress(empty) returned error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("FetchProgress(empty) = %#v, want empty map", empty)
	}

	if err := c.UpdateProgress(ctx, "7", nil); err == nil {
		t.Fatalf("UpdateProgress with no data returned nil error")
	}
}
