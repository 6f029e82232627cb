package headtohead

import (
	"errors"
	"sort"
	"strings"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

var (
	ErrSamePlayer    = errors.New("head-to-head needs two different players")
	ErrMissingPlayer = errors.New("head-to-head needs both player names")
)

// Summary compares player A against player B.
type Summary struct {
	PlayerA      string
	PlayerB      string
	TotalMatches int
	AWins        int
	BWins        int
	Draws        int
	AGoals       int
	BGoals       int
	Matches      []match.Record
}

// Compute summarises every record played between a and b, oldest first.
func Compute(a, b string, records []match.Record) (Summary, error) {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return Summary{}, ErrMissingPlayer
	}
	if a == b {
		return Summary{}, ErrSamePlayer
	}

	out := Summary{PlayerA: a, PlayerB: b, Matches: make([]match.Record, 0)}
	for _, r := range records {
		if !r.Involves(a) || !r.Involves(b) {
			continue
		}
		aGoals, bGoals, _ := r.Side(a)
		out.AGoals += aGoals
		out.BGoals += bGoals
		switch {
		case aGoals > bGoals:
			out.AWins++
		case bGoals > aGoals:
			out.BWins++
		default:
			out.Draws++
		}
		out.Matches = append(out.Matches, r)
	}

	sort.SliceStable(out.Matches, func(i, j int) bool {
		return out.Matches[i].Date.Before(out.Matches[j].Date)
	})
	out.TotalMatches = len(out.Matches)
	return out, nil
}
