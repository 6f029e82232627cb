package team

import (
	"sort"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

// Usage is how a team fared in the matches it was picked for.
type Usage struct {
	TeamID       string
	Team         string
	Registered   bool
	Matches      int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// Tally aggregates records per team. Registered teams are listed even without
// matches; team names found only on records are listed with Registered unset.
// A match where both sides picked the same team counts once per side.
// Rows are ordered by matches, then wins, both descending, then by name.
func Tally(teams []Team, records []match.Record) []Usage {
	rows := make([]Usage, 0, len(teams))
	index := make(map[string]int, len(teams))

	for _, t := range teams {
		key := Key(t.Name)
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = len(rows)
		rows = append(rows, Usage{TeamID: t.ID, Team: t.Name, Registered: true})
	}

	rowFor := func(name string) *Usage {
		key := Key(name)
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, Usage{Team: name})
		}
		return &rows[i]
	}

	for _, r := range records {
		if Key(r.Team1) != "" {
			apply(rowFor(r.Team1), r.Score1, r.Score2)
		}
		if Key(r.Team2) != "" {
			apply(rowFor(r.Team2), r.Score2, r.Score1)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Matches != rows[j].Matches {
			return rows[i].Matches > rows[j].Matches
		}
		if rows[i].Wins != rows[j].Wins {
			return rows[i].Wins > rows[j].Wins
		}
		return Key(rows[i].Team) < Key(rows[j].Team)
	})
	return rows
}

func apply(row *Usage, scored, conceded int) {
	row.Matches++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Wins++
	case scored == conceded:
		row.Draws++
	default:
		row.Losses++
	}
}
