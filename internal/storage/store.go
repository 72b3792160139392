package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const prefsFile = "prefs.json"

// Prefs are the viewer choices that survive a restart. DarkMode is nil
// until the user has toggled it, so the terminal's own background can
// decide on first run.
type Prefs struct {
	DarkMode  *bool     `json:"dark_mode,omitempty"`
	Filter    string    `json:"filter,omitempty"`
	Section   string    `json:"section,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) path() string { return filepath.Join(s.baseDir, prefsFile) }

// Load returns the stored prefs, or zero Prefs if none were saved yet.
func (s *Store) Load() (Prefs, error) {
	var p Prefs
	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("storage: corrupt %s: %w", prefsFile, err)
	}
	return p, nil
}

// Save writes p atomically through a temp file in the same directory.
func (s *Store) Save(p Prefs) error {
	if err := s.Init(); err != nil {
		return err
	}
	p.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.baseDir, prefsFile+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path())
}

// SetDarkMode records an explicit dark-mode choice.
func (s *Store) SetDarkMode(dark bool) error {
	p, err := s.Load()
	if err != nil {
		p = Prefs{}
	}
	p.DarkMode = &dark
	return s.Save(p)
}

func (s *Store) SetFilter(filter string) error {
	p, err := s.Load()
	if err != nil {
		p = Prefs{}
	}
	p.Filter = filter
	return s.Save(p)
}

func (s *Store) SetSection(section string) error {
	p, err := s.Load()
	if err != nil {
		p = Prefs{}
	}
	p.Section = section
	return s.Save(p)
}
