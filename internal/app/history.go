package app

import (
	"context"
	"fmt"

	"github.com/relaxapp/relax/internal/auth"
	"github.com/relaxapp/relax/internal/backend"
	"github.com/relaxapp/relax/internal/config"
)

// History is the signed-in user's profile and practice log.
type History struct {
	User     auth.User
	Profile  *backend.ProfileResponse
	Progress backend.Progress
}

// LoadHistory fetches the profile and practice log of the signed-in user.
func LoadHistory(ctx context.Context, configPath string) (History, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return History{}, fmt.Errorf("load config: %w", err)
	}
	user, err := auth.Load(cfg.SessionPath)
	if err != nil {
		return History{}, err
	}
	client, err := backend.NewClient(cfg.APIURL)
	if err != nil {
		return History{}, fmt.Errorf("init backend client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, profileTimeout)
	defer cancel()

	profile, err := client.FetchProfile(ctx, user.UID)
	if err != nil {
		return History{}, fmt.Errorf("fetch profile: %w", err)
	}
	progress, err := client.FetchProgress(ctx, user.UID)
	if err != nil {
		return History{}, fmt.Errorf("fetch progress: %w", err)
	}
	return History{User: *user, Profile: profile, Progress: progress}, nil
}
