// Package profile persists player profiles as JSON records keyed by name.
//
// The core runtime only touches profiles at scene-transition boundaries and
// treats every failure as "no prior data": a broken or missing record never
// stops a scene change.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Profile is one player's persistent record.
type Profile struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	HighScore int       `json:"highScore"`
	Runs      int       `json:"runs"`
	// Settings holds per-profile tunables (e.g. "musicVolume", "sfxVolume").
	Settings map[string]float64 `json:"settings,omitempty"`
}

// New creates a profile with the given name, stamped with the current time.
func New(name string) *Profile {
	return &Profile{Name: name, CreatedAt: time.Now().UTC(), Settings: make(map[string]float64)}
}

// Store is the persistence contract the runtime consumes. Load returns
// (nil, false, nil) when no record exists for the key — absence is not an
// error.
type Store interface {
	Load(key string) (*Profile, bool, error)
	Save(key string, p *Profile) error
	List() ([]string, error)
}

// FileStore keeps one JSON file per profile under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads the profile stored under key.
func (s *FileStore) Load(key string) (*Profile, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load profile %q: %w", key, err)
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("load profile %q: %w", key, err)
	}
	return &p, true, nil
}

// Save writes the profile under key, replacing any existing record.
func (s *FileStore) Save(key string, p *Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("save profile %q: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("save profile %q: %w", key, err)
	}
	return nil
}

// List returns the keys of all stored profiles in directory order.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
