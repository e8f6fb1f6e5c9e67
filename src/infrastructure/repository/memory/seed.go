package memory

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Seed is the startup content of the read-only stores.
type Seed struct {
	Templates []TemplateSeed `yaml:"templates"`
	Users     []UserSeed     `yaml:"users"`
}

type TemplateSeed struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

type UserSeed struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func DefaultSeed() Seed {
	return Seed{
		Templates: []TemplateSeed{
			{ID: 1, Name: "Reunión", Content: "Recordatorio: Tienes una reunión a las {time}"},
			{ID: 2, Name: "Medicamento", Content: "Es hora de tomar tu medicamento"},
			{ID: 3, Name: "Ejercicio", Content: "¡Hora de hacer ejercicio! 💪"},
		},
		Users: []UserSeed{
			{Email: "demo@scheduler.com", Password: "demo123", Name: "Usuario Demo"},
		},
	}
}

// LoadSeed reads a YAML seed file. An empty path yields DefaultSeed.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := yaml.UnmarshalStrict(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return seed, nil
}

// Validate rejects duplicate template ids, duplicate emails and empty credentials.
func (s Seed) Validate() error {
	ids := make(map[int]struct{}, len(s.Templates))
	for _, t := range s.Templates {
		if t.ID <= 0 {
			return fmt.Errorf("template %q has non-positive id %d", t.Name, t.ID)
		}
		if _, dup := ids[t.ID]; dup {
			return fmt.Errorf("duplicate template id %d", t.ID)
		}
		ids[t.ID] = struct{}{}
	}

	emails := make(map[string]struct{}, len(s.Users))
	for _, u := range s.Users {
		email := normalizeEmail(u.Email)
		if email == "" || u.Password == "" {
			return fmt.Errorf("user entries need an email and a password")
		}
		if _, dup := emails[email]; dup {
			return fmt.Errorf("duplicate user %s", strings.TrimSpace(u.Email))
		}
		emails[email] = struct{}{}
	}
	return nil
}
