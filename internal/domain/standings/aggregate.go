package standings

import (
	"sort"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

// Compute builds the ranking for records. Seed names are listed first so players without
// matches still appear with zero stats. Records must already be validated.
func Compute(records []match.Record, seed ...string) Table {
	rows := make([]Row, 0, len(seed))
	index := make(map[string]int, len(seed))

	rowFor := func(name string) *Row {
		i, ok := index[name]
		if !ok {
			i = len(rows)
			index[name] = i
			rows = append(rows, Row{Player: name})
		}
		return &rows[i]
	}

	for _, name := range seed {
		rowFor(name)
	}
	for _, r := range records {
		apply(rowFor(r.Player1), r.Score1, r.Score2)
		apply(rowFor(r.Player2), r.Score2, r.Score1)
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
		rows[i].Efficiency = Efficiency(rows[i].Wins, rows[i].Draws, rows[i].Matches)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i], rows[j])
	})

	for i := range rows {
		rows[i].Rank = i + 1
		index[rows[i].Player] = i
	}

	return Table{Rows: rows, index: index}
}

func apply(row *Row, scored, conceded int) {
	row.Matches++
	row.GoalsFor += scored
	row.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		row.Wins++
		row.Points += PointsWin
	case scored == conceded:
		row.Draws++
		row.Points += PointsDraw
	default:
		row.Losses++
	}
}

// Less orders by points, then goal difference, then goals for, all descending.
func Less(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}

// Efficiency is the share of available points earned, as a percentage.
func Efficiency(wins, draws, matches int) float64 {
	if matches <= 0 {
		return 0
	}
	return float64(wins*PointsWin+draws*PointsDraw) / float64(matches*PointsWin) * 100
}
