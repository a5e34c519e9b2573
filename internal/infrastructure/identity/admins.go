package identity

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// AdminUser is a back office account. Passwords are stored as bcrypt hashes.
type AdminUser struct {
	Email        string `yaml:"email"`
	Name         string `yaml:"name"`
	PasswordHash string `yaml:"password_hash"`
}

type adminsFile struct {
	Admins []AdminUser `yaml:"admins"`
}

// LoadAdmins reads the admin accounts file. A missing file yields no accounts,
// so the public site still works while nobody can sign in.
func LoadAdmins(path string) ([]AdminUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[identity] admin users file not found path=%s, back office sign-in disabled", path)
			return nil, nil
		}
		return nil, err
	}
	return ParseAdmins(data)
}

func ParseAdmins(data []byte) ([]AdminUser, error) {
	var f adminsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse admin users: %w", err)
	}
	seen := make(map[string]bool, len(f.Admins))
	for i := range f.Admins {
		a := &f.Admins[i]
		a.Email = strings.ToLower(strings.TrimSpace(a.Email))
		if a.Email == "" {
			return nil, fmt.Errorf("admin #%d: email is required", i+1)
		}
		if seen[a.Email] {
			return nil, fmt.Errorf("admin %s: duplicated email", a.Email)
		}
		seen[a.Email] = true
		if _, err := bcrypt.Cost([]byte(a.PasswordHash)); err != nil {
			return nil, fmt.Errorf("admin %s: password_hash is not a bcrypt hash: %w", a.Email, err)
		}
	}
	return f.Admins, nil
}

// HashPassword returns the bcrypt hash to put in the admin users file.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}
