package identity

import (
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestParseAdmins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("x"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	t.Run("normalizes emails", func(t *testing.T) {
		admins, err := ParseAdmins([]byte("admins:\n  - email: \" Nelly@NellyTech.com \"\n    name: Nelly\n    password_hash: \"" + string(hash) + "\"\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(admins) != 1 {
			t.Fatalf("expected 1 admin, got %d", len(admins))
		}
		if admins[0].Email != "nelly@nellytech.com" || admins[0].Name != "Nelly" {
			t.Fatalf("unexpected admin %+v", admins[0])
		}
	})

	line := "  - email: a@b.com\n    password_hash: \"" + string(hash) + "\"\n"
	rejected := map[string]string{
		"plain password": "admins:\n  - email: a@b.com\n    password_hash: hunter2\n",
		"duplicates":     "admins:\n" + line + line,
		"missing email":  "admins:\n  - password_hash: \"" + string(hash) + "\"\n",
	}
	for name, doc := range rejected {
		t.Run("rejects "+name, func(t *testing.T) {
			if _, err := ParseAdmins([]byte(doc)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadAdmins_MissingFile(t *testing.T) {
	admins, err := LoadAdmins(filepath.Join(t.TempDir(), "admins.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(admins) != 0 {
		t.Fatalf("expected no admins, got %d", len(admins))
	}
}

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("senha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h), []byte("senha")); err != nil {
		t.Fatalf("hash does not match: %v", err)
	}
}
