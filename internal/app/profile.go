package app

import (
	"context"
	"fmt"
	"time"

	"github.com/relaxapp/relax/internal/auth"
	"github.com/relaxapp/relax/internal/backend"
	"github.com/relaxapp/relax/internal/state"
)

const profileTimeout = 5 * time.Second

// LoadProfile resolves the signed-in user and fetches their profile
// document. Every failure is returned; callers keep the default profile.
func LoadProfile(ctx context.Context, users auth.Provider, docs backend.DocumentStore) (state.Account, error) {
	if users == nil || docs == nil {
		return state.Account{}, fmt.Errorf("profile source not configured")
	}
	user := users.CurrentUser()
	if user == nil {
		return state.Account{}, auth.ErrSignedOut
	}

	ctx, cancel := context.WithTimeout(ctx, profileTimeout)
	defer cancel()

	doc, err := docs.Get(ctx, backend.CollectionUsers, user.UID)
	if err != nil {
		return state.Account{}, fmt.Errorf("fetch profile %s: %w", user.UID, err)
	}
	if doc == nil {
		return state.Account{}, fmt.Errorf("fetch profile %s: %w", user.UID, backend.ErrNotFound)
	}

	name, _ := doc.String("name")
	if raw, ok := doc["name"]; ok && raw != nil {
		if _, isString := raw.(string); !isString {
			return state.Account{}, fmt.Errorf("profile %s: name is %T, want string", user.UID, raw)
		}
	}
	email, ok := doc.String("email")
	if !ok {
		email = user.Email
	}
	createdAt, _ := doc.String("createdAt")

	return state.Account{
		UID:       user.UID,
		Name:      name,
		PhotoURL:  user.PhotoURL,
		Email:     email,
		CreatedAt: createdAt,
	}, nil
}
