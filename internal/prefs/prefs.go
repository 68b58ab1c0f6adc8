// Package prefs keeps the small set of choices relax remembers between runs:
// the color theme and the folder the image picker last opened.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/relaxapp/relax/internal/config"
)

// DefaultPath is used when a Store has no path.
const DefaultPath = "~/.config/relax/prefs.toml"

const defaultTheme = "Lagoon"

// Prefs holds remembered UI choices.
type Prefs struct {
	Theme      string `toml:"theme"`
	GalleryDir string `toml:"gallery_dir,omitempty"`
}

func defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Store reads and writes one preferences file.
type Store struct {
	Path string
}

// Load returns the stored preferences. Preferences never block startup, so
// any problem yields the defaults.
func (s Store) Load() Prefs {
	resolved, err := s.resolve()
	if err != nil {
		return defaults()
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return defaults()
	}

	p := defaults()
	if err := toml.Unmarshal(data, &p); err != nil {
		return defaults()
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.GalleryDir = strings.TrimSpace(p.GalleryDir)
	return p
}

// Update applies change to the stored preferences and writes them back.
func (s Store) Update(change func(*Prefs)) error {
	p := s.Load()
	change(&p)
	return s.save(p)
}

func (s Store) save(p Prefs) error {
	resolved, err := s.resolve()
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func (s Store) resolve() (string, error) {
	if strings.TrimSpace(s.Path) == "" {
		return config.ExpandPath(DefaultPath)
	}
	return config.ExpandPath(s.Path)
}
