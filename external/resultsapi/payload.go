package resultsapi

import (
	"bytes"
	"math"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
)

// invalidScore marks an upstream score that is not a non-negative integer, so the
// record fails match.Record.Validate and is excluded downstream.
const invalidScore = -1

type matchPayload struct {
	ID      string      `json:"_id"`
	Player1 participant `json:"player1"`
	Player2 participant `json:"player2"`
	Score1  score       `json:"score1"`
	Score2  score       `json:"score2"`
	Date    string      `json:"date"`
	Round   int         `json:"round"`
	Status  string      `json:"status"`
	Winner  participant `json:"winner"`
	Team1   participant `json:"team1"`
	Team2   participant `json:"team2"`
}

type teamPayload struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type playerPayload struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type competitionPayload struct {
	ID      string          `json:"_id"`
	Name    string          `json:"name"`
	Players []playerPayload `json:"players"`
	Matches []matchPayload  `json:"matches"`
}

type tournamentPayload struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	Participants []participant  `json:"participants"`
	Matches      []matchPayload `json:"matches"`
}

// score keeps the upstream value only when it is a whole, non-negative JSON number.
type score struct {
	value int
	valid bool
}

func (s *score) UnmarshalJSON(data []byte) error {
	*s = score{}
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil
	}
	number, ok := raw.(float64)
	if !ok || number < 0 || number != math.Trunc(number) || number > math.MaxInt32 {
		return nil
	}
	*s = score{value: int(number), valid: true}
	return nil
}

func (s score) Int() int {
	if !s.valid {
		return invalidScore
	}
	return s.value
}

// participant is either a bare name or id, or a populated player object.
type participant struct {
	ID   string
	Name string
}

func (p *participant) UnmarshalJSON(data []byte) error {
	*p = participant{}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		var value string
		if err := sonic.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		p.Name = strings.TrimSpace(value)
		return nil
	}

	var obj playerPayload
	if err := sonic.Unmarshal(trimmed, &obj); err != nil {
		return nil
	}
	p.ID = strings.TrimSpace(obj.ID)
	p.Name = strings.TrimSpace(obj.Name)
	return nil
}

// resolve maps a bare reference through byID, which holds ids of known players.
func (p participant) resolve(byID map[string]string) string {
	if name, ok := byID[p.Name]; ok {
		return name
	}
	if p.Name == "" {
		return byID[p.ID]
	}
	return p.Name
}

func (m matchPayload) toRecord(byID map[string]string) match.Record {
	status := match.NormalizeStatus(m.Status)
	record := match.Record{
		ID:      strings.TrimSpace(m.ID),
		Player1: m.Player1.resolve(byID),
		Player2: m.Player2.resolve(byID),
		Score1:  m.Score1.Int(),
		Score2:  m.Score2.Int(),
		Date:    parseDate(m.Date),
		Round:   m.Round,
		Status:  status,
		Winner:  m.Winner.resolve(byID),
		Team1:   m.Team1.Name,
		Team2:   m.Team2.Name,
	}
	if status == match.StatusPending {
		record.Score1, record.Score2 = 0, 0
	}
	return record
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func playerIndex(players []playerPayload) map[string]string {
	out := make(map[string]string, len(players))
	for _, p := range players {
		if id := strings.TrimSpace(p.ID); id != "" {
			out[id] = strings.TrimSpace(p.Name)
		}
	}
	return out
}
