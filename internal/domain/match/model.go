package match

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Outcome is a match result seen from one participant's side.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

var (
	ErrMissingPlayer  = errors.New("player name is required")
	ErrSamePlayers    = errors.New("players must be different")
	ErrNegativeScore  = errors.New("score must be a non-negative integer")
	ErrInvalidWinner  = errors.New("winner must be one of the players")
	ErrWinnerMismatch = errors.New("winner does not match the score")
	ErrNotPending     = errors.New("match is not pending")
)

// Record is one played (or, for bracket play, scheduled) match between two players.
type Record struct {
	ID            string
	Player1       string
	Player2       string
	Score1        int
	Score2        int
	Date          time.Time
	CompetitionID string
	TournamentID  string
	Round         int
	Status        string
	Winner        string
	// Team1 and Team2 are the optional clubs each player picked.
	Team1 string
	Team2 string
}

func (r Record) IsPending() bool {
	return NormalizeStatus(r.Status) == StatusPending
}

func (r Record) Total() int {
	return r.Score1 + r.Score2
}

// Result formats the score as "score1-score2".
func (r Record) Result() string {
	return strconv.Itoa(r.Score1) + "-" + strconv.Itoa(r.Score2)
}

// Involves reports whether name played in the match.
func (r Record) Involves(name string) bool {
	return r.Player1 == name || r.Player2 == name
}

// Side returns the goals scored and conceded by name. ok is false when name did not play.
func (r Record) Side(name string) (scored, conceded int, ok bool) {
	switch name {
	case r.Player1:
		return r.Score1, r.Score2, true
	case r.Player2:
		return r.Score2, r.Score1, true
	default:
		return 0, 0, false
	}
}

// OutcomeFor reports the result for name. ok is false when name did not play.
func (r Record) OutcomeFor(name string) (Outcome, bool) {
	scored, conceded, ok := r.Side(name)
	if !ok {
		return "", false
	}
	return outcome(scored, conceded), true
}

func outcome(scored, conceded int) Outcome {
	switch {
	case scored > conceded:
		return OutcomeWin
	case scored < conceded:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// Validate checks a completed record before it takes part in aggregation or storage.
func (r Record) Validate() error {
	p1 := strings.TrimSpace(r.Player1)
	p2 := strings.TrimSpace(r.Player2)
	if p1 == "" || p2 == "" {
		return ErrMissingPlayer
	}
	if p1 == p2 {
		return fmt.Errorf("%w: %s", ErrSamePlayers, p1)
	}
	if r.IsPending() {
		return nil
	}
	if r.Score1 < 0 || r.Score2 < 0 {
		return fmt.Errorf("%w: %d-%d", ErrNegativeScore, r.Score1, r.Score2)
	}
	if r.Winner != "" {
		return ValidateWinner(r.Player1, r.Player2, r.Score1, r.Score2, r.Winner)
	}
	return nil
}

// ValidateWinner checks that winner is a participant consistent with the score.
// A level score accepts either participant (decided on penalties).
func ValidateWinner(player1, player2 string, score1, score2 int, winner string) error {
	if winner != player1 && winner != player2 {
		return fmt.Errorf("%w: %s", ErrInvalidWinner, winner)
	}
	switch {
	case score1 > score2 && winner != player1:
		return fmt.Errorf("%w: %s scored less", ErrWinnerMismatch, winner)
	case score2 > score1 && winner != player2:
		return fmt.Errorf("%w: %s scored less", ErrWinnerMismatch, winner)
	}
	return nil
}

// WinnerOf returns the player with the higher score, or "" for a draw.
func WinnerOf(player1, player2 string, score1, score2 int) string {
	switch {
	case score1 > score2:
		return player1
	case score2 > score1:
		return player2
	default:
		return ""
	}
}

// Sanitize drops pending records and records that fail Validate.
// It returns the playable records in input order and the number of invalid ones.
func Sanitize(records []Record) ([]Record, int) {
	out := make([]Record, 0, len(records))
	excluded := 0
	for _, r := range records {
		if r.IsPending() {
			continue
		}
		if err := r.Validate(); err != nil {
			excluded++
			continue
		}
		out = append(out, r)
	}
	return out, excluded
}

// SortCanonical orders records by date ascending, then by ID. Aggregations run over
// this order so first-encountered tie-breaks do not depend on the reader.
func SortCanonical(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
}

func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	if status == "" {
		return StatusCompleted
	}
	return status
}
