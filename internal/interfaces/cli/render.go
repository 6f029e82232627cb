package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func printFooter(w io.Writer, scope match.Scope, excluded int) {
	fmt.Fprintf(w, "scope: %s", scope)
	if excluded > 0 {
		fmt.Fprintf(w, "  |  excluded invalid records: %d", excluded)
	}
	fmt.Fprintln(w)
}

// RenderStandings prints the ranking table.
func RenderStandings(w io.Writer, result usecase.StandingsResult) error {
	if result.NoData {
		fmt.Fprintf(w, "No matches recorded for %s.\n", result.Scope)
		printFooter(w, result.Scope, result.Excluded)
		return nil
	}

	table := newTable(w)
	table.Header("#", "PLAYER", "MP", "W", "D", "L", "GF", "GA", "GD", "PTS", "EFF%")
	for _, row := range result.Table.Rows {
		if err := table.Append(
			strconv.Itoa(row.Rank),
			row.Player,
			strconv.Itoa(row.Matches),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			fmt.Sprintf("%+d", row.GoalDifference),
			strconv.Itoa(row.Points),
			fmt.Sprintf("%.1f", row.Efficiency),
		); err != nil {
			return fmt.Errorf("append standings row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render standings: %w", err)
	}
	printFooter(w, result.Scope, result.Excluded)
	return nil
}

// RenderTeams prints one row per team. Teams only seen on matches are marked with *.
func RenderTeams(w io.Writer, scope match.Scope, rows []team.Usage) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No teams registered.")
		printFooter(w, scope, 0)
		return nil
	}

	table := newTable(w)
	table.Header("TEAM", "MP", "W", "D", "L", "GF", "GA")
	for _, row := range rows {
		name := row.Team
		if !row.Registered {
			name += " *"
		}
		if err := table.Append(
			name,
			strconv.Itoa(row.Matches),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
		); err != nil {
			return fmt.Errorf("append team row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("render teams: %w", err)
	}
	printFooter(w, scope, 0)
	return nil
}

// RenderHeadToHead prints the summary line followed by every meeting.
func RenderHeadToHead(w io.Writer, result usecase.HeadToHeadResult) error {
	s := result.Summary
	fmt.Fprintf(w, "%s vs %s: %d matches  |  %s %d - %d draws - %d %s  |  goals %d-%d\n",
		s.PlayerA, s.PlayerB, s.TotalMatches, s.PlayerA, s.AWins, s.Draws, s.BWins, s.PlayerB, s.AGoals, s.BGoals)

	if s.TotalMatches > 0 {
		table := newTable(w)
		table.Header("DATE", "HOME", "SCORE", "AWAY")
		for _, r := range s.Matches {
			date := "-"
			if !r.Date.IsZero() {
				date = r.Date.Format("2006-01-02")
			}
			if err := table.Append(date, r.Player1, r.Result(), r.Player2); err != nil {
				return fmt.Errorf("append head to head row: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("render head to head: %w", err)
		}
	}
	printFooter(w, result.Scope, result.Excluded)
	return nil
}

// RenderStats prints scope totals, the leaders per category and a per-player tally.
func RenderStats(w io.Writer, result usecase.StatsResult) error {
	s := result.Summary
	if s.NoData {
		fmt.Fprintf(w, "No matches recorded for %s.\n", result.Scope)
		printFooter(w, result.Scope, result.Excluded)
		return nil
	}

	overview := newTable(w)
	overview.Header("STAT", "VALUE")
	rows := [][2]string{
		{"Matches", strconv.Itoa(s.TotalMatches)},
		{"Goals", strconv.Itoa(s.TotalGoals)},
		{"Goals per match", fmt.Sprintf("%.2f", float64(s.TotalGoals)/float64(s.TotalMatches))},
		{"Draws", strconv.Itoa(s.Draws)},
		{"One side scored", strconv.Itoa(s.OneSideScored)},
		{"Double digits", strconv.Itoa(s.HighScoringMatches)},
		{"Most repeated result", fmt.Sprintf("%s (x%d)", s.MostRepeatedResult, s.MostRepeatedResultCount)},
		{"Highest scoring", describeMatch(s.HighestScoringMatch)},
		{"Lowest scoring", describeMatch(s.LowestScoringMatch)},
		{"Best attack", s.BestAttack},
		{"Worst attack", s.WorstAttack},
		{"Best defense", s.BestDefense},
		{"Worst defense", s.WorstDefense},
		{"Most wins", s.MostWins},
		{"Most draws", s.MostDraws},
		{"Most efficient", s.MostEfficientPlayer},
	}
	for _, row := range rows {
		if err := overview.Append(row[0], row[1]); err != nil {
			return fmt.Errorf("append stats row: %w", err)
		}
	}
	if err := overview.Render(); err != nil {
		return fmt.Errorf("render stats: %w", err)
	}

	names := make([]string, 0, len(s.Players))
	for name := range s.Players {
		names = append(names, name)
	}
	sort.Strings(names)

	players := newTable(w)
	players.Header("PLAYER", "MP", "W", "D", "GF", "GA", "WIN%")
	for _, name := range names {
		t := s.Players[name]
		if err := players.Append(
			name,
			strconv.Itoa(t.Matches),
			strconv.Itoa(t.Wins),
			strconv.Itoa(t.Draws),
			strconv.Itoa(t.GoalsFor),
			strconv.Itoa(t.GoalsAgainst),
			fmt.Sprintf("%.1f", t.WinRatio()*100),
		); err != nil {
			return fmt.Errorf("append player tally: %w", err)
		}
	}
	if err := players.Render(); err != nil {
		return fmt.Errorf("render player tallies: %w", err)
	}
	printFooter(w, result.Scope, result.Excluded)
	return nil
}

func describeMatch(r *match.Record) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s %s", r.Player1, r.Result(), r.Player2)
}
