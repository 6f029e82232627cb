package team

import (
	"errors"
	"strings"
	"time"
)

var ErrNameRequired = errors.New("team name is required")

// Team is a club a player can pick for a match. Names are unique ignoring case.
type Team struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

func NormalizeName(name string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// Key is the comparison key for a team name.
func Key(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
