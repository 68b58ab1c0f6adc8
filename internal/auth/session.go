package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrSignedOut is returned when no user session exists.
var ErrSignedOut = errors.New("signed out")

// User is the signed-in user as seen by the rest of relax.
type User struct {
	UID      string
	Email    string
	PhotoURL string
}

// Provider exposes the current signed-in user, or nil when signed out.
type Provider interface {
	CurrentUser() *User
}

// session is the on-disk form of a signed-in user.
type session struct {
	UID      string `toml:"uid"`
	Email    string `toml:"email,omitempty"`
	PhotoURL string `toml:"photo_url,omitempty"`
}

// FileProvider reads the signed-in user from a TOML session file.
type FileProvider struct {
	Path string
}

var _ Provider = FileProvider{}

// CurrentUser returns the user in the session file. A missing, unreadable,
// or incomplete file means nobody is signed in.
func (p FileProvider) CurrentUser() *User {
	user, err := Load(p.Path)
	if err != nil {
		return nil
	}
	return user
}

// Load reads a session file.
func Load(path string) (*User, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSignedOut
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var raw session
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	uid := strings.TrimSpace(raw.UID)
	if uid == "" {
		return nil, ErrSignedOut
	}
	return &User{
		UID:      uid,
		Email:    strings.TrimSpace(raw.Email),
		PhotoURL: strings.TrimSpace(raw.PhotoURL),
	}, nil
}

// Save writes the session for user, creating directories as needed. The
// file is private to the current OS user.
func Save(path string, user User) error {
	if strings.TrimSpace(user.UID) == "" {
		return fmt.Errorf("user id required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	bytes, err := toml.Marshal(session{
		UID:      strings.TrimSpace(user.UID),
		Email:    strings.TrimSpace(user.Email),
		PhotoURL: strings.TrimSpace(user.PhotoURL),
	})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(path, bytes, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
