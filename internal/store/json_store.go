package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/keysummon/keysummon/internal/model"
)

var (
	// ErrNotFound is returned when an entity is not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when creating a duplicate entity.
	ErrAlreadyExists = errors.New("already exists")
)

// data represents the JSON file structure.
type data struct {
	Hotkeys   []model.HotkeyConfig   `json:"hotkeys"`
	Roles     []model.Role           `json:"roles"`
	Providers []model.ProviderConfig `json:"providers"`
}

// JSONStore implements Store using JSON file persistence. Every save first
// copies the current file to a .backup sibling; a corrupt main file is
// recovered from the backup on load.
type JSONStore struct {
	mu       sync.RWMutex
	path     string
	backup   string
	data     *data
	modified bool
}

// NewJSONStore creates a new JSON file-based store under configDir.
func NewJSONStore(configDir string) (*JSONStore, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(configDir, "config.json")
	s := &JSONStore{
		path:   path,
		backup: path + ".backup",
		data: &data{
			Hotkeys:   []model.HotkeyConfig{},
			Roles:     []model.Role{},
			Providers: []model.ProviderConfig{},
		},
	}

	if _, err := os.Stat(path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	} else {
		if err := s.save(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// load reads the main file, falling back to the backup when the main file
// fails to parse. A successful backup recovery rewrites the main file.
func (s *JSONStore) load() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var loaded data
	if err := json.Unmarshal(content, &loaded); err != nil {
		backupContent, backupErr := os.ReadFile(s.backup)
		if backupErr != nil {
			return fmt.Errorf("config file corrupt and no backup available: %w", err)
		}
		if backupErr := json.Unmarshal(backupContent, &loaded); backupErr != nil {
			return fmt.Errorf("config file and backup both corrupt: %w", err)
		}
		s.setData(&loaded)
		return s.save()
	}
	s.setData(&loaded)
	return nil
}

// setData installs loaded data, replacing nil slices so callers never see
// null collections.
func (s *JSONStore) setData(d *data) {
	if d.Hotkeys == nil {
		d.Hotkeys = []model.HotkeyConfig{}
	}
	if d.Roles == nil {
		d.Roles = []model.Role{}
	}
	if d.Providers == nil {
		d.Providers = []model.ProviderConfig{}
	}
	s.data = d
}

// save writes the backup of the previous content, then the current data.
func (s *JSONStore) save() error {
	if existing, err := os.ReadFile(s.path); err == nil {
		_ = os.WriteFile(s.backup, existing, 0644)
	}
	content, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, content, 0644)
}

// Close persists any pending changes.
func (s *JSONStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modified {
		return s.save()
	}
	return nil
}

// ---------- HotkeyStore Implementation ----------

// ListHotkeys returns all hotkeys sorted by creation time descending.
func (s *JSONStore) ListHotkeys(_ context.Context) ([]model.HotkeyConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.HotkeyConfig, len(s.data.Hotkeys))
	copy(result, s.data.Hotkeys)

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})

	return result, nil
}

// GetHotkey retrieves a hotkey by ID.
func (s *JSONStore) GetHotkey(_ context.Context, id string) (*model.HotkeyConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Hotkeys {
		if s.data.Hotkeys[i].ID == id {
			h := s.data.Hotkeys[i]
			return &h, nil
		}
	}
	return nil, ErrNotFound
}

// CreateHotkey adds a new hotkey.
func (s *JSONStore) CreateHotkey(_ context.Context, h *model.HotkeyConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateHotkey(h); err != nil {
		return err
	}
	for _, existing := range s.data.Hotkeys {
		if existing.ID == h.ID {
			return ErrAlreadyExists
		}
	}

	s.data.Hotkeys = append(s.data.Hotkeys, *h)
	s.modified = true
	return s.save()
}

// UpdateHotkey modifies an existing hotkey.
func (s *JSONStore) UpdateHotkey(_ context.Context, h *model.HotkeyConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateHotkey(h); err != nil {
		return err
	}
	for i := range s.data.Hotkeys {
		if s.data.Hotkeys[i].ID == h.ID {
			s.data.Hotkeys[i] = *h
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// DeleteHotkey removes a hotkey by ID.
func (s *JSONStore) DeleteHotkey(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Hotkeys {
		if s.data.Hotkeys[i].ID == id {
			s.data.Hotkeys = append(s.data.Hotkeys[:i], s.data.Hotkeys[i+1:]...)
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// ---------- RoleStore Implementation ----------

// ListRoles returns all user-defined roles.
func (s *JSONStore) ListRoles(_ context.Context) ([]model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Role, len(s.data.Roles))
	copy(result, s.data.Roles)
	return result, nil
}

// GetRole retrieves a role by ID.
func (s *JSONStore) GetRole(_ context.Context, id string) (*model.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Roles {
		if s.data.Roles[i].ID == id {
			r := s.data.Roles[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// CreateRole adds a new role.
func (s *JSONStore) CreateRole(_ context.Context, r *model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateRole(r); err != nil {
		return err
	}
	for _, existing := range s.data.Roles {
		if existing.ID == r.ID {
			return ErrAlreadyExists
		}
	}

	s.data.Roles = append(s.data.Roles, *r)
	s.modified = true
	return s.save()
}

// UpdateRole modifies an existing role.
func (s *JSONStore) UpdateRole(_ context.Context, r *model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateRole(r); err != nil {
		return err
	}
	for i := range s.data.Roles {
		if s.data.Roles[i].ID == r.ID {
			s.data.Roles[i] = *r
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// DeleteRole removes a role by ID.
func (s *JSONStore) DeleteRole(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Roles {
		if s.data.Roles[i].ID == id {
			s.data.Roles = append(s.data.Roles[:i], s.data.Roles[i+1:]...)
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// ---------- ProviderStore Implementation ----------

// ListProviders returns all configured providers.
func (s *JSONStore) ListProviders(_ context.Context) ([]model.ProviderConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.ProviderConfig, len(s.data.Providers))
	copy(result, s.data.Providers)
	return result, nil
}

// GetProvider retrieves a provider by ID.
func (s *JSONStore) GetProvider(_ context.Context, id string) (*model.ProviderConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.data.Providers {
		if s.data.Providers[i].ID == id {
			p := s.data.Providers[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// CreateProvider adds a new provider. Marking it default clears the flag on
// all others.
func (s *JSONStore) CreateProvider(_ context.Context, p *model.ProviderConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateProvider(p); err != nil {
		return err
	}
	for _, existing := range s.data.Providers {
		if existing.ID == p.ID {
			return ErrAlreadyExists
		}
	}

	if p.Default {
		s.clearDefaultProvider()
	}
	s.data.Providers = append(s.data.Providers, *p)
	s.modified = true
	return s.save()
}

// UpdateProvider modifies an existing provider.
func (s *JSONStore) UpdateProvider(_ context.Context, p *model.ProviderConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateProvider(p); err != nil {
		return err
	}
	for i := range s.data.Providers {
		if s.data.Providers[i].ID == p.ID {
			if p.Default {
				s.clearDefaultProvider()
			}
			s.data.Providers[i] = *p
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

// DeleteProvider removes a provider by ID.
func (s *JSONStore) DeleteProvider(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Providers {
		if s.data.Providers[i].ID == id {
			s.data.Providers = append(s.data.Providers[:i], s.data.Providers[i+1:]...)
			s.modified = true
			return s.save()
		}
	}
	return ErrNotFound
}

func (s *JSONStore) clearDefaultProvider() {
	for i := range s.data.Providers {
		s.data.Providers[i].Default = false
	}
}

// ---------- Import / Export ----------

// Export returns the full configuration as indented JSON.
func (s *JSONStore) Export(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.data, "", "  ")
}

// Import replaces the full configuration after validating every entry. The
// previous content survives in the backup file.
func (s *JSONStore) Import(_ context.Context, raw []byte) error {
	var loaded data
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateData(&loaded); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.setData(&loaded)
	s.modified = true
	return s.save()
}

// ---------- Validation ----------

func validateData(d *data) error {
	seen := make(map[string]bool)
	for i := range d.Hotkeys {
		h := &d.Hotkeys[i]
		if err := validateHotkey(h); err != nil {
			return err
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate hotkey id: %s", h.ID)
		}
		seen[h.ID] = true
	}
	for i := range d.Roles {
		if err := validateRole(&d.Roles[i]); err != nil {
			return err
		}
	}
	for i := range d.Providers {
		if err := validateProvider(&d.Providers[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateHotkey(h *model.HotkeyConfig) error {
	if strings.TrimSpace(h.ID) == "" {
		return errors.New("hotkey id must not be empty")
	}
	if strings.TrimSpace(h.Binding.Key) == "" {
		return errors.New("hotkey binding key must not be empty")
	}
	if h.Action.Kind == model.HotkeyLaunchProgram && strings.TrimSpace(h.Action.Program.Path) == "" {
		return errors.New("program path must not be empty")
	}
	return nil
}

func validateRole(r *model.Role) error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("role id must not be empty")
	}
	if strings.TrimSpace(r.SystemPrompt) == "" {
		return errors.New("role system prompt must not be empty")
	}
	return nil
}

func validateProvider(p *model.ProviderConfig) error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("provider id must not be empty")
	}
	switch p.Kind {
	case model.ProviderGemini, model.ProviderOpenAI, model.ProviderAnthropic:
	default:
		return fmt.Errorf("unknown provider kind: %s", p.Kind)
	}
	return nil
}
