package tournament

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

const MinParticipants = 2

var (
	ErrNameRequired         = errors.New("tournament name is required")
	ErrNotEnoughPlayers     = errors.New("tournament needs at least two participants")
	ErrDuplicateParticipant = errors.New("duplicate participant")
	ErrNotParticipant       = errors.New("player is not a participant")
	ErrInvalidRound         = errors.New("round must be positive")
)

// Tournament is a bracket between a fixed set of participants.
type Tournament struct {
	ID           string
	Name         string
	Participants []string
	CreatedAt    time.Time
}

// Validate normalizes the name and participant list in place.
func (t *Tournament) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrNameRequired
	}

	seen := make(map[string]struct{}, len(t.Participants))
	participants := make([]string, 0, len(t.Participants))
	for _, name := range t.Participants {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, name)
		}
		seen[name] = struct{}{}
		participants = append(participants, name)
	}
	if len(participants) < MinParticipants {
		return ErrNotEnoughPlayers
	}
	t.Participants = participants
	return nil
}

func (t Tournament) HasParticipant(name string) bool {
	for _, p := range t.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// ValidateMatch checks a bracket match before it is scheduled.
func (t Tournament) ValidateMatch(r match.Record) error {
	if r.Round <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRound, r.Round)
	}
	for _, name := range []string{r.Player1, r.Player2} {
		if !t.HasParticipant(name) {
			return fmt.Errorf("%w: %s", ErrNotParticipant, name)
		}
	}
	return r.Validate()
}

// FinalRound is the highest round among the matches, 0 when there are none.
func FinalRound(matches []match.Record) int {
	final := 0
	for _, m := range matches {
		if m.Round > final {
			final = m.Round
		}
	}
	return final
}

// Champion returns the winner of the final when the final round holds exactly one
// completed match.
func Champion(matches []match.Record) (string, bool) {
	final := FinalRound(matches)
	if final == 0 {
		return "", false
	}

	var decider *match.Record
	for i := range matches {
		if matches[i].Round != final {
			continue
		}
		if decider != nil {
			return "", false
		}
		decider = &matches[i]
	}
	if decider == nil || decider.IsPending() || decider.Winner == "" {
		return "", false
	}
	return decider.Winner, true
}

// Complete applies a result to a pending bracket match. An empty winner is derived from
// the score; a level score needs an explicit winner.
func Complete(r match.Record, score1, score2 int, winner string) (match.Record, error) {
	if !r.IsPending() {
		return match.Record{}, match.ErrNotPending
	}
	if score1 < 0 || score2 < 0 {
		return match.Record{}, fmt.Errorf("%w: %d-%d", match.ErrNegativeScore, score1, score2)
	}

	winner = strings.TrimSpace(winner)
	if winner == "" {
		winner = match.WinnerOf(r.Player1, r.Player2, score1, score2)
		if winner == "" {
			return match.Record{}, fmt.Errorf("%w: level score needs a winner", match.ErrInvalidWinner)
		}
	}
	if err := match.ValidateWinner(r.Player1, r.Player2, score1, score2, winner); err != nil {
		return match.Record{}, err
	}

	r.Score1 = score1
	r.Score2 = score2
	r.Winner = winner
	r.Status = match.StatusCompleted
	return r, nil
}
