package player

import (
	"errors"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

var ErrNameRequired = errors.New("player name is required")

// Player is a registered participant. Name is unique and is the key match records refer to.
type Player struct {
	ID            string
	Name          string
	CompetitionID string
	CreatedAt     time.Time
}

func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// InScope reports whether the player is listed for scope. Year and overall scopes list
// every player outside competitions; tournament participants are resolved by the caller.
func InScope(p Player, scope match.Scope) bool {
	switch scope.Kind {
	case match.ScopeCompetition:
		return p.CompetitionID == scope.ID
	case match.ScopeTournament:
		return false
	default:
		return p.CompetitionID == ""
	}
}

// Names returns the player names in input order.
func Names(players []Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.Name)
	}
	return out
}
