package match

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type ScopeKind string

const (
	ScopeOverall     ScopeKind = "overall"
	ScopeYear        ScopeKind = "year"
	ScopeCompetition ScopeKind = "competition"
	ScopeTournament  ScopeKind = "tournament"
)

var ErrInvalidScope = errors.New("invalid scope")

// Scope selects the subset of records an aggregation runs over.
type Scope struct {
	Kind ScopeKind
	Year int
	ID   string
}

func Overall() Scope {
	return Scope{Kind: ScopeOverall}
}

func ForYear(year int) Scope {
	return Scope{Kind: ScopeYear, Year: year}
}

func ForCompetition(id string) Scope {
	return Scope{Kind: ScopeCompetition, ID: id}
}

func ForTournament(id string) Scope {
	return Scope{Kind: ScopeTournament, ID: id}
}

// ParseScope accepts "overall" (or ""), a four digit year, "competition:<id>" and "tournament:<id>".
func ParseScope(value string) (Scope, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, string(ScopeOverall)) {
		return Overall(), nil
	}

	if kind, id, ok := strings.Cut(value, ":"); ok {
		id = strings.TrimSpace(id)
		if id == "" {
			return Scope{}, fmt.Errorf("%w: empty id in %q", ErrInvalidScope, value)
		}
		switch ScopeKind(strings.ToLower(strings.TrimSpace(kind))) {
		case ScopeCompetition:
			return ForCompetition(id), nil
		case ScopeTournament:
			return ForTournament(id), nil
		case ScopeYear:
			return parseYear(id)
		default:
			return Scope{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidScope, kind)
		}
	}

	return parseYear(value)
}

func parseYear(value string) (Scope, error) {
	year, err := strconv.Atoi(value)
	if err != nil || year < 1900 || year > 9999 {
		return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, value)
	}
	return ForYear(year), nil
}

func (s Scope) String() string {
	switch s.Kind {
	case ScopeYear:
		return strconv.Itoa(s.Year)
	case ScopeCompetition, ScopeTournament:
		return string(s.Kind) + ":" + s.ID
	default:
		return string(ScopeOverall)
	}
}

// Contains reports whether r falls inside the scope.
// Competition and tournament records only belong to their own scope.
func (s Scope) Contains(r Record) bool {
	switch s.Kind {
	case ScopeCompetition:
		return r.CompetitionID == s.ID
	case ScopeTournament:
		return r.TournamentID == s.ID
	}
	if r.CompetitionID != "" || r.TournamentID != "" {
		return false
	}
	if s.Kind == ScopeYear {
		return !r.Date.IsZero() && r.Date.UTC().Year() == s.Year
	}
	return true
}

// Filter returns the records inside the scope, in input order.
func (s Scope) Filter(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if s.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}
