package httpapi

import (
	"sort"
	"time"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/matchstats"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/standings"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

type registerPlayerRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type recordMatchRequest struct {
	Player1 string `json:"player1" validate:"required,max=64"`
	Player2 string `json:"player2" validate:"required,max=64,nefield=Player1"`
	Score1  *int   `json:"score1" validate:"required,min=0"`
	Score2  *int   `json:"score2" validate:"required,min=0"`
	Date    string `json:"date"`
	Team1   string `json:"team1" validate:"max=64"`
	Team2   string `json:"team2" validate:"max=64"`
}

type createTeamRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type createCompetitionRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type addCompetitionMatchRequest struct {
	Player1ID string `json:"player1Id" validate:"required"`
	Player2ID string `json:"player2Id" validate:"required,nefield=Player1ID"`
	Score1    *int   `json:"score1" validate:"required,min=0"`
	Score2    *int   `json:"score2" validate:"required,min=0"`
}

type createTournamentRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Participants []string `json:"participants" validate:"required,min=2,dive,required,max=64"`
}

type scheduleTournamentMatchRequest struct {
	Player1 string `json:"player1" validate:"required"`
	Player2 string `json:"player2" validate:"required,nefield=Player1"`
	Round   int    `json:"round" validate:"required,min=1"`
}

type recordTournamentResultRequest struct {
	Score1 *int   `json:"score1" validate:"required,min=0"`
	Score2 *int   `json:"score2" validate:"required,min=0"`
	Winner string `json:"winner"`
}

type importRequest struct {
	Scope string `json:"scope"`
}

type matchDTO struct {
	ID            string `json:"id"`
	Player1       string `json:"player1"`
	Player2       string `json:"player2"`
	Score1        int    `json:"score1"`
	Score2        int    `json:"score2"`
	Result        string `json:"result"`
	Date          string `json:"date,omitempty"`
	CompetitionID string `json:"competitionId,omitempty"`
	TournamentID  string `json:"tournamentId,omitempty"`
	Round         int    `json:"round,omitempty"`
	Status        string `json:"status"`
	Winner        string `json:"winner,omitempty"`
	Team1         string `json:"team1,omitempty"`
	Team2         string `json:"team2,omitempty"`
}

type playerMatchDTO struct {
	matchDTO
	Outcome string `json:"outcome"`
}

type playerDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CompetitionID string `json:"competitionId,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

type playerSummaryDTO struct {
	playerDTO
	Matches        int `json:"matches"`
	Wins           int `json:"wins"`
	Draws          int `json:"draws"`
	Losses         int `json:"losses"`
	GoalsFor       int `json:"goalsFor"`
	GoalsAgainst   int `json:"goalsAgainst"`
	GoalDifference int `json:"goalDifference"`
	Points         int `json:"points"`
}

type standingRowDTO struct {
	Rank           int     `json:"rank"`
	Player         string  `json:"player"`
	Matches        int     `json:"matches"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	Points         int     `json:"points"`
	Efficiency     float64 `json:"efficiency"`
}

type standingsDTO struct {
	Scope    string           `json:"scope"`
	Rows     []standingRowDTO `json:"rows"`
	Excluded int              `json:"excluded"`
	NoData   bool             `json:"noData"`
}

type headToHeadDTO struct {
	Scope        string     `json:"scope"`
	Player1      string     `json:"player1"`
	Player2      string     `json:"player2"`
	TotalMatches int        `json:"totalMatches"`
	Player1Wins  int        `json:"player1Wins"`
	Player2Wins  int        `json:"player2Wins"`
	Draws        int        `json:"draws"`
	Player1Goals int        `json:"player1Goals"`
	Player2Goals int        `json:"player2Goals"`
	Matches      []matchDTO `json:"matches"`
	Excluded     int        `json:"excluded"`
}

type playerTallyDTO struct {
	Player       string  `json:"player"`
	Matches      int     `json:"matches"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	WinRatio     float64 `json:"winRatio"`
}

type statsDTO struct {
	Scope                   string           `json:"scope"`
	NoData                  bool             `json:"noData"`
	Excluded                int              `json:"excluded"`
	TotalMatches            int              `json:"totalMatches"`
	TotalGoals              int              `json:"totalGoals"`
	AverageGoals            float64          `json:"averageGoals"`
	Draws                   int              `json:"draws"`
	OneSideScored           int              `json:"oneSideScored"`
	HighScoringMatches      int              `json:"highScoringMatches"`
	MostRepeatedResult      string           `json:"mostRepeatedResult,omitempty"`
	MostRepeatedResultCount int              `json:"mostRepeatedResultCount"`
	MostRepeatedMatches     []matchDTO       `json:"mostRepeatedMatches"`
	HighestScoringMatch     *matchDTO        `json:"highestScoringMatch,omitempty"`
	LowestScoringMatch      *matchDTO        `json:"lowestScoringMatch,omitempty"`
	BestAttack              string           `json:"bestAttack,omitempty"`
	WorstAttack             string           `json:"worstAttack,omitempty"`
	BestDefense             string           `json:"bestDefense,omitempty"`
	WorstDefense            string           `json:"worstDefense,omitempty"`
	MostWins                string           `json:"mostWins,omitempty"`
	MostDraws               string           `json:"mostDraws,omitempty"`
	MostEfficientPlayer     string           `json:"mostEfficientPlayer,omitempty"`
	Players                 []playerTallyDTO `json:"players"`
}

type seasonDTO struct {
	Year     int             `json:"year"`
	Matches  int             `json:"matches"`
	Players  int             `json:"players"`
	Excluded int             `json:"excluded"`
	Leader   *standingRowDTO `json:"leader,omitempty"`
}

type competitionDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type competitionDetailDTO struct {
	competitionDTO
	Players   []playerDTO      `json:"players"`
	Matches   []matchDTO       `json:"matches"`
	Standings []standingRowDTO `json:"standings"`
	Excluded  int              `json:"excluded"`
}

type teamDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type teamUsageDTO struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Registered   bool   `json:"registered"`
	Matches      int    `json:"matches"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

type tournamentDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

type tournamentDetailDTO struct {
	tournamentDTO
	Matches    []matchDTO `json:"matches"`
	FinalRound int        `json:"finalRound"`
	Champion   string     `json:"champion,omitempty"`
}

type importResultDTO struct {
	Scope          string `json:"scope"`
	PlayersCreated int    `json:"playersCreated"`
	PlayersSkipped int    `json:"playersSkipped"`
	MatchesCreated int    `json:"matchesCreated"`
	MatchesSkipped int    `json:"matchesSkipped"`
	MatchesFailed  int    `json:"matchesFailed"`
	Excluded       int    `json:"excluded"`
	DurationMs     int64  `json:"durationMs"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func matchToDTO(r match.Record) matchDTO {
	return matchDTO{
		ID:            r.ID,
		Player1:       r.Player1,
		Player2:       r.Player2,
		Score1:        r.Score1,
		Score2:        r.Score2,
		Result:        r.Result(),
		Date:          formatTime(r.Date),
		CompetitionID: r.CompetitionID,
		TournamentID:  r.TournamentID,
		Round:         r.Round,
		Status:        match.NormalizeStatus(r.Status),
		Winner:        r.Winner,
		Team1:         r.Team1,
		Team2:         r.Team2,
	}
}

func matchesToDTO(items []match.Record) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, r := range items {
		out = append(out, matchToDTO(r))
	}
	return out
}

func optionalMatchToDTO(r *match.Record) *matchDTO {
	if r == nil {
		return nil
	}
	dto := matchToDTO(*r)
	return &dto
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		Name:          p.Name,
		CompetitionID: p.CompetitionID,
		CreatedAt:     formatTime(p.CreatedAt),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerToDTO(p))
	}
	return out
}

func playerSummaryToDTO(item usecase.PlayerSummary) playerSummaryDTO {
	return playerSummaryDTO{
		playerDTO:      playerToDTO(item.Player),
		Matches:        item.Stats.Matches,
		Wins:           item.Stats.Wins,
		Draws:          item.Stats.Draws,
		Losses:         item.Stats.Losses,
		GoalsFor:       item.Stats.GoalsFor,
		GoalsAgainst:   item.Stats.GoalsAgainst,
		GoalDifference: item.Stats.GoalDifference,
		Points:         item.Stats.Points,
	}
}

func standingRowToDTO(row standings.Row) standingRowDTO {
	return standingRowDTO{
		Rank:           row.Rank,
		Player:         row.Player,
		Matches:        row.Matches,
		Wins:           row.Wins,
		Draws:          row.Draws,
		Losses:         row.Losses,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
		Points:         row.Points,
		Efficiency:     row.Efficiency,
	}
}

func standingRowsToDTO(table standings.Table) []standingRowDTO {
	out := make([]standingRowDTO, 0, len(table.Rows))
	for _, row := range table.Rows {
		out = append(out, standingRowToDTO(row))
	}
	return out
}

func statsToDTO(result usecase.StatsResult) statsDTO {
	s := result.Summary
	out := statsDTO{
		Scope:                   result.Scope.String(),
		NoData:                  s.NoData,
		Excluded:                result.Excluded,
		TotalMatches:            s.TotalMatches,
		TotalGoals:              s.TotalGoals,
		Draws:                   s.Draws,
		OneSideScored:           s.OneSideScored,
		HighScoringMatches:      s.HighScoringMatches,
		MostRepeatedResult:      s.MostRepeatedResult,
		MostRepeatedResultCount: s.MostRepeatedResultCount,
		MostRepeatedMatches:     matchesToDTO(s.MostRepeatedMatches),
		HighestScoringMatch:     optionalMatchToDTO(s.HighestScoringMatch),
		LowestScoringMatch:      optionalMatchToDTO(s.LowestScoringMatch),
		BestAttack:              s.BestAttack,
		WorstAttack:             s.WorstAttack,
		BestDefense:             s.BestDefense,
		WorstDefense:            s.WorstDefense,
		MostWins:                s.MostWins,
		MostDraws:               s.MostDraws,
		MostEfficientPlayer:     s.MostEfficientPlayer,
		Players:                 playerTalliesToDTO(s.Players),
	}
	if s.TotalMatches > 0 {
		out.AverageGoals = float64(s.TotalGoals) / float64(s.TotalMatches)
	}
	return out
}

func playerTalliesToDTO(tallies map[string]matchstats.PlayerTally) []playerTallyDTO {
	names := make([]string, 0, len(tallies))
	for name := range tallies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]playerTallyDTO, 0, len(names))
	for _, name := range names {
		t := tallies[name]
		out = append(out, playerTallyDTO{
			Player:       name,
			Matches:      t.Matches,
			Wins:         t.Wins,
			Draws:        t.Draws,
			GoalsFor:     t.GoalsFor,
			GoalsAgainst: t.GoalsAgainst,
			WinRatio:     t.WinRatio(),
		})
	}
	return out
}

func competitionToDTO(c competition.Competition) competitionDTO {
	return competitionDTO{ID: c.ID, Name: c.Name, CreatedAt: formatTime(c.CreatedAt)}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{ID: t.ID, Name: t.Name, CreatedAt: formatTime(t.CreatedAt)}
}

func teamUsagesToDTO(rows []team.Usage) []teamUsageDTO {
	out := make([]teamUsageDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamUsageDTO{
			ID:           row.TeamID,
			Name:         row.Team,
			Registered:   row.Registered,
			Matches:      row.Matches,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
		})
	}
	return out
}

func tournamentToDTO(t tournament.Tournament) tournamentDTO {
	participants := append([]string(nil), t.Participants...)
	if participants == nil {
		participants = []string{}
	}
	return tournamentDTO{
		ID:           t.ID,
		Name:         t.Name,
		Participants: participants,
		CreatedAt:    formatTime(t.CreatedAt),
	}
}
