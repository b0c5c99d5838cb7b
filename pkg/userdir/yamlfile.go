package userdir

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// userFile is the on-disk shape LoadFile expects:
//
//	users:
//	  - id: "42"
//	    username: alice
//	    password: hunter2
//	    name: Alice
//	    email: alice@example.com
type userFile struct {
	Users []fileUser `yaml:"users"`
}

type fileUser struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
}

// LoadFile reads a YAML user list and returns a memory directory seeded with
// it. The file is read once; edits after loading are not picked up.
func LoadFile(path string) (*MemoryDirectory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("userdir: read %s: %w", path, err)
	}

	var doc userFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("userdir: parse %s: %w", path, err)
	}

	users := make([]User, 0, len(doc.Users))
	for _, u := range doc.Users {
		users = append(users, User{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
			Name:     u.Name,
			Email:    u.Email,
		})
	}
	return NewMemoryDirectory(users...)
}
