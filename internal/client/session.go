package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BruksfildServices01/crm-api/internal/dto"
)

// Session is the persisted login: a bearer token plus the profile it
// belongs to. Load it before the first authenticated call and Clear it on
// logout. It is safe for concurrent use.
type Session struct {
	path string

	mu    sync.RWMutex
	token string
	user  *dto.UserDTO
}

type sessionFile struct {
	Token string       `json:"token"`
	User  *dto.UserDTO `json:"user,omitempty"`
}

// LoadSession reads path. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", path, err)
	}
	s.token = f.Token
	s.user = f.User
	return s, nil
}

// DefaultSessionPath is ~/.config/crm/session.json or the OS equivalent.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crm", "session.json"), nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) User() *dto.UserDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Set replaces the credentials in memory. Call Save to persist them.
func (s *Session) Set(token string, user *dto.UserDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
}

// Save writes the session with owner-only permissions. An in-memory
// session (empty path) is a no-op.
func (s *Session) Save() error {
	if s.path == "" {
		return nil
	}

	s.mu.RLock()
	raw, err := json.MarshalIndent(sessionFile{Token: s.token, User: s.user}, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear forgets the credentials and removes the file.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
