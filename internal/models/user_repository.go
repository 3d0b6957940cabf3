package models

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"glucose-monitor/internal/logger"
)

// UserRepository persists user profiles keyed by name in a single JSON file.
// The whole map is rewritten on every save, matching the single-writer
// desktop usage pattern.
type UserRepository struct {
	mu     sync.RWMutex
	path   string
	logger logger.Logger
}

func NewUserRepository(path string, log logger.Logger) *UserRepository {
	return &UserRepository{path: path, logger: log}
}

// LoadAll reads every stored profile. A missing or unreadable file is
// treated as an empty user set.
func (r *UserRepository) LoadAll() map[string]UserProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.readAll()
}

func (r *UserRepository) readAll() map[string]UserProfile {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warning("user data file unreadable, treating as empty", map[string]interface{}{
				"path": r.path, "error": err.Error(),
			})
		}
		return map[string]UserProfile{}
	}

	users := map[string]UserProfile{}
	if err := json.Unmarshal(data, &users); err != nil {
		r.logger.Warning("user data file corrupt, treating as empty", map[string]interface{}{
			"path": r.path, "error": err.Error(),
		})
		return map[string]UserProfile{}
	}
	return users
}

// Load returns the profile stored under name.
func (r *UserRepository) Load(name string) (UserProfile, bool) {
	users := r.LoadAll()
	profile, ok := users[name]
	return profile, ok
}

// Save upserts a profile under name and rewrites the whole file.
func (r *UserRepository) Save(name string, profile UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.readAll()
	users[name] = profile

	data, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding user data: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing user data: %w", err)
	}

	r.logger.Info("user profile saved", map[string]interface{}{
		"name": name, "path": r.path,
	})
	return nil
}

// Names returns the stored user names in sorted order.
func (r *UserRepository) Names() []string {
	users := r.LoadAll()
	names := make([]string, 0, len(users))
	for name := range users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
