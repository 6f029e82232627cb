package competition

import (
	"errors"
	"strings"
	"time"
)

var ErrNameRequired = errors.New("competition name is required")

// Competition is a named sub-scope with its own players, matches and standings.
type Competition struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}
