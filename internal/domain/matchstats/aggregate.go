package matchstats

import (
	"sort"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

const HighScoringThreshold = 10

// PlayerTally is the per-player running total used by the reductions.
type PlayerTally struct {
	Matches      int
	Wins         int
	Draws        int
	GoalsFor     int
	GoalsAgainst int
}

// Summary holds descriptive statistics over a match set. NoData is set when the set is
// empty and every other field is zero.
type Summary struct {
	NoData                  bool
	TotalMatches            int
	TotalGoals              int
	Draws                   int
	OneSideScored           int
	HighScoringMatches      int
	MostRepeatedResult      string
	MostRepeatedResultCount int
	MostRepeatedMatches     []match.Record
	HighestScoringMatch     *match.Record
	LowestScoringMatch      *match.Record
	BestAttack              string
	WorstAttack             string
	BestDefense             string
	WorstDefense            string
	MostWins                string
	MostDraws               string
	MostEfficientPlayer     string
	Players                 map[string]PlayerTally
}

// Compute runs a single pass over records followed by name-ordered reductions.
// Seed names are reported with empty tallies but never win a reduction.
func Compute(records []match.Record, seed ...string) Summary {
	if len(records) == 0 {
		return Summary{NoData: true}
	}

	out := Summary{
		TotalMatches: len(records),
		Players:      make(map[string]PlayerTally, len(seed)),
	}
	for _, name := range seed {
		out.Players[name] = PlayerTally{}
	}

	resultCount := make(map[string]int)
	var resultOrder []string
	var highest, lowest int

	for i, r := range records {
		total := r.Total()
		out.TotalGoals += total
		if r.Score1 == r.Score2 {
			out.Draws++
		}
		if r.Score1 == 0 || r.Score2 == 0 {
			out.OneSideScored++
		}
		if r.Score1 >= HighScoringThreshold || r.Score2 >= HighScoringThreshold {
			out.HighScoringMatches++
		}

		result := r.Result()
		if _, ok := resultCount[result]; !ok {
			resultOrder = append(resultOrder, result)
		}
		resultCount[result]++

		if i == 0 || total > records[highest].Total() {
			highest = i
		}
		if i == 0 || total < records[lowest].Total() {
			lowest = i
		}

		tally(out.Players, r.Player1, r.Score1, r.Score2)
		tally(out.Players, r.Player2, r.Score2, r.Score1)
	}

	for _, result := range resultOrder {
		if resultCount[result] > out.MostRepeatedResultCount {
			out.MostRepeatedResult = result
			out.MostRepeatedResultCount = resultCount[result]
		}
	}
	for _, r := range records {
		if r.Result() == out.MostRepeatedResult {
			out.MostRepeatedMatches = append(out.MostRepeatedMatches, r)
		}
	}

	h, l := records[highest], records[lowest]
	out.HighestScoringMatch = &h
	out.LowestScoringMatch = &l

	names := make([]string, 0, len(out.Players))
	for name, t := range out.Players {
		if t.Matches > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	out.BestAttack = pick(names, out.Players, func(a, b PlayerTally) bool { return a.GoalsFor > b.GoalsFor })
	out.WorstAttack = pick(names, out.Players, func(a, b PlayerTally) bool { return a.GoalsFor < b.GoalsFor })
	out.BestDefense = pick(names, out.Players, func(a, b PlayerTally) bool { return a.GoalsAgainst < b.GoalsAgainst })
	out.WorstDefense = pick(names, out.Players, func(a, b PlayerTally) bool { return a.GoalsAgainst > b.GoalsAgainst })
	out.MostWins = pick(names, out.Players, func(a, b PlayerTally) bool { return a.Wins > b.Wins })
	out.MostDraws = pick(names, out.Players, func(a, b PlayerTally) bool { return a.Draws > b.Draws })
	out.MostEfficientPlayer = mostEfficient(names, out.Players)

	return out
}

func tally(players map[string]PlayerTally, name string, scored, conceded int) {
	t := players[name]
	t.Matches++
	t.GoalsFor += scored
	t.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		t.Wins++
	case scored == conceded:
		t.Draws++
	}
	players[name] = t
}

// pick returns the first name in order that no later name strictly beats.
func pick(names []string, players map[string]PlayerTally, better func(a, b PlayerTally) bool) string {
	if len(names) == 0 {
		return ""
	}
	best := names[0]
	for _, name := range names[1:] {
		if better(players[name], players[best]) {
			best = name
		}
	}
	return best
}

// mostEfficient compares wins/matches ratios by cross-multiplying; players without
// matches are skipped.
func mostEfficient(names []string, players map[string]PlayerTally) string {
	best := ""
	for _, name := range names {
		t := players[name]
		if t.Matches == 0 {
			continue
		}
		if best == "" {
			best = name
			continue
		}
		b := players[best]
		if t.Wins*b.Matches > b.Wins*t.Matches {
			best = name
		}
	}
	return best
}

// WinRatio is wins per match, 0 without matches.
func (t PlayerTally) WinRatio() float64 {
	if t.Matches == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Matches)
}
