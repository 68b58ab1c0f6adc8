package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the backend has no record for the request.
var ErrNotFound = errors.New("not found")

// CollectionUsers is the document collection holding user profiles.
const CollectionUsers = "users"

// DocumentStore reads documents by collection and id.
type DocumentStore interface {
	Get(ctx context.Context, collection, id string) (Document, error)
}

// ProgressStore reads and appends practice history.
type ProgressStore interface {
	FetchProgress(ctx context.Context, uid string) (Progress, error)
	UpdateProgress(ctx context.Context, uid string, data Progress) error
}

var (
	_ DocumentStore = (*Client)(nil)
	_ ProgressStore = (*Client)(nil)
)

// Client talks to the relax HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL    = "http://127.0.0.1:3000"
	defaultUserAgent = "relax/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given API base URL.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Get fetches a document by id. Only the users collection is served.
func (c *Client) Get(ctx context.Context, collection, id string) (Document, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if collection != CollectionUsers {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
	path, err := idPath("/api/users/profile/", id)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := c.do(ctx, http.MethodGet, path, nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FetchProfile retrieves the typed profile for a user.
func (c *Client) FetchProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	path, err := idPath("/api/users/profile/", userID)
	if err != nil {
		return nil, err
	}
	var payload ProfileResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Login exchanges credentials for a user id.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, fmt.Errorf("email and password required")
	}
	var payload LoginResponse
	body := LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/users/login", body, &payload); err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.UserID) == "" {
		return nil, fmt.Errorf("login response missing user id")
	}
	return &payload, nil
}

// Register creates an account. The server rejects an email that is already
// registered; the caller signs in separately with Login.
func (c *Client) Register(ctx context.Context, name, email, password string) (*RegisterResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password required")
	}
	var payload RegisterResponse
	body := RegisterRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/users/register", body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchProgress retrieves the practice history for uid. A user with no
// history yields an empty Progress.
func (c *Client) FetchProgress(ctx context.Context, uid string) (Progress, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	path, err := idPath("/api/users/progress/", uid)
	if err != nil {
		return nil, err
	}
	var payload Progress
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = Progress{}
	}
	return payload, nil
}

// UpdateProgress merges data into the stored history for uid.
func (c *Client) UpdateProgress(ctx context.Context, uid string, data Progress) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(uid) == "" || len(data) == 0 {
		return fmt.Errorf("uid and progress data required")
	}
	return c.do(ctx, http.MethodPost, "/api/users/updateProgress", UpdateProgressRequest{UID: uid, ProgressData: data}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request %s: %w", requestID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("api %s (request %s): %w", rel.Path, requestID, ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d%s (request %s)", rel.Path, resp.StatusCode, describeError(resp.Body), requestID)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// describeError extracts the backend's message from an error body, if any.
func describeError(body io.Reader) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err != nil {
		return ""
	}
	msg := strings.TrimSpace(payload.Message)
	if msg == "" {
		msg = strings.TrimSpace(payload.Error)
	}
	if msg == "" {
		return ""
	}
	return ": " + msg
}

func idPath(prefix, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("id required")
	}
	if strings.ContainsAny(id, "/?#") {
		return "", fmt.Errorf("invalid id %q", id)
	}
	return prefix + id, nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
