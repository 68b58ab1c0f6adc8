package app

import (
	"context"
	"errors"
	"testing"

	"github.com/relaxapp/relax/internal/auth"
	"github.com/relaxapp/relax/internal/backend"
)

type stubUsers struct{ user *auth.User }

func (s stubUsers) CurrentUser() *auth.User { return s.user }

type stubDocs struct {
	doc        backend.Document
	err        error
	collection string
	id         string
}

func (s *stubDocs) Get(_ context.Context, collection, id string) (backend.Document, error) {
	s.collection = collection
	s.id = id
	return s.doc, s.err
}

func TestLoadProfile_Success(t *testing.T) {
	users := stubUsers{user: &auth.User{UID: "u1", Email: "session@example.com", PhotoURL: "https://x/y.jpg"}}
	docs := &stubDocs{doc: backend.Document{"name": "Asha", "email": "asha@example.com", "createdAt": "2024-01-02 03:04:05"}}

	account, err := LoadProfile(context.Background(), users, docs)
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if docs.collection != backend.CollectionUsers || docs.id != "u1" {
		t.Fatalf("Get(%q, %q), want users/u1", docs.collection, docs.id)
	}
	if account.Name != "Asha" || account.PhotoURL != "https://x/y.jpg" {
		t.Fatalf("account = %#v, want Asha with session photo", account)
	}
	if account.Email != "asha@example.com" || account.CreatedAt != "2024-01-02 03:04:05" {
		t.Fatalf("account details = %#v", account)
	}
}

func TestLoadProfile_MissingNameAndEmail(t *testing.T) {
	users := stubUsers{user: &auth.User{UID: "u1", Email: "session@example.com"}}
	docs := &stubDocs{doc: backend.Document{}}

	account, err := LoadProfile(context.Background(), users, docs)
	if err != nil {
		t.Fatalf("LoadProfile returned error: %v", err)
	}
	if account.Name != "" {
		t.Fatalf("Name = %q, want empty so the default applies", account.Name)
	}
	if account.Email != "session@example.com" {
		t.Fatalf("Email = %q, want session fallback", account.Email)
	}
}

func TestLoadProfile_Failures(t *testing.T) {
	signedIn := stubUsers{user: &auth.User{UID: "u1"}}
	boom := errors.New("boom")

	tests := []struct {
		name  string
		users auth.Provider
		docs  backend.DocumentStore
		want  error
	}{
		{"signed out", stubUsers{}, &stubDocs{}, auth.ErrSignedOut},
		{"fetch error", signedIn, &stubDocs{err: boom}, boom},
		{"not found", signedIn, &stubDocs{err: backend.ErrNotFound}, backend.ErrNotFound},
		{"nil document", signedIn, &stubDocs{}, backend.ErrNotFound},
		{"malformed name", signedIn, &stubDocs{doc: backend.Document{"name": 42.0}}, nil},
		{"no collaborators", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProfile(context.Background(), tt.users, tt.docs)
			if err == nil {
				t.Fatalf("LoadProfile returned nil error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("LoadProfile error = %v, want %v", err, tt.want)
			}
		})
	}
}
