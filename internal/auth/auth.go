// Package auth keeps the operator credential file: a JSON list of usernames
// with bcrypt password hashes. The ledger core never touches it.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Manager loads and checks operator credentials. The file path is injected at
// construction, never read from ambient state.
type Manager struct {
	path  string
	users []User
}

// NewManager opens the credential file at path. A missing or empty file means
// no users yet; the caller runs the initial-admin setup in that case.
func NewManager(path string) (*Manager, error) {
	m := &Manager{path: path}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential file: %w", err)
	}
	if len(raw) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m.users); err != nil {
		return nil, fmt.Errorf("parse credential file: %w", err)
	}
	return m, nil
}

// HasUsers reports whether any operator has been set up.
func (m *Manager) HasUsers() bool {
	return len(m.users) > 0
}

// AddUser hashes the password and appends the user to the credential file.
func (m *Manager) AddUser(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	m.users = append(m.users, User{Username: username, Password: string(hash)})
	return m.save()
}

// Authenticate checks a username/password pair against the stored hashes.
func (m *Manager) Authenticate(username, password string) bool {
	for _, u := range m.users {
		if u.Username != username {
			continue
		}
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
	}
	return false
}

func (m *Manager) save() error {
	raw, err := json.MarshalIndent(m.users, "", "    ")
	if err != nil {
		return err
	}
	// Credentials only; keep the file operator-readable.
	if err := os.WriteFile(m.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}
