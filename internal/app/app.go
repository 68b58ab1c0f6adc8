package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/relaxapp/relax/internal/auth"
	"github.com/relaxapp/relax/internal/backend"
	"github.com/relaxapp/relax/internal/catalog"
	"github.com/relaxapp/relax/internal/config"
	"github.com/relaxapp/relax/internal/prefs"
	"github.com/relaxapp/relax/internal/state"
	"github.com/relaxapp/relax/internal/ui"
)

// Options configure the relax application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/relax/prefs.toml
}

// Run boots the relax TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Store{Path: opts.PrefsPath}.Load()

	closeLog, err := openLog(cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	client, err := backend.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}
	users := auth.FileProvider{Path: cfg.SessionPath}

	galleryDir := cfg.GalleryDir
	if userPrefs.GalleryDir != "" {
		galleryDir = userPrefs.GalleryDir
	}

	log.Printf("relax starting api=%s", cfg.APIURL)

	uiOpts := ui.Options{
		Context: ctx,
		Catalog: catalog.Default(),
		LoadProfile: func(ctx context.Context) (state.Account, error) {
			return LoadProfile(ctx, users, client)
		},
		Progress:   client,
		GalleryDir: galleryDir,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// Login signs in against the backend and writes the session file.
func Login(ctx context.Context, configPath, email, password, photoURL string) (auth.User, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return auth.User{}, fmt.Errorf("load config: %w", err)
	}
	client, err := backend.NewClient(cfg.APIURL)
	if err != nil {
		return auth.User{}, fmt.Errorf("init backend client: %w", err)
	}
	resp, err := client.Login(ctx, email, password)
	if err != nil {
		return auth.User{}, fmt.Errorf("login: %w", err)
	}
	user := auth.User{
		UID:      resp.UserID,
		Email:    strings.TrimSpace(email),
		PhotoURL: strings.TrimSpace(photoURL),
	}
	if err := auth.Save(cfg.SessionPath, user); err != nil {
		return auth.User{}, err
	}
	return user, nil
}

// Register creates an account on the backend. It does not sign in and
// leaves any existing session untouched.
func Register(ctx context.Context, configPath, name, email, password string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	client, err := backend.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}
	if _, err := client.Register(ctx, name, email, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout removes the session file. Logging out twice is not an error.
func Logout(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return auth.Clear(cfg.SessionPath)
}

// openLog sends the standard logger to the configured file while the TUI
// owns the terminal.
func openLog(cfg config.Config) (func(), error) {
	if err := os.MkdirAll(cfg.LogDir(), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(cfg.LogFile, "relax")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
