package cache

import (
	"context"

	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
	basecache "github.com/riskibarqy/fifa-results/internal/platform/cache"
)

const (
	matchPrefix       = "match:"
	playerPrefix      = "player:"
	competitionPrefix = "competition:"
	tournamentPrefix  = "tournament:"
	teamPrefix        = "team:"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, scope match.Scope) ([]match.Record, error) {
	items, err := basecache.Load(ctx, r.cache, matchPrefix+"list:"+scope.String(), func(ctx context.Context) ([]match.Record, error) {
		return r.next.List(ctx, scope)
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Record(nil), items...), nil
}

func (r *MatchRepository) ListByPlayer(ctx context.Context, name string, scope match.Scope) ([]match.Record, error) {
	key := matchPrefix + "player:" + scope.String() + ":" + name
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]match.Record, error) {
		return r.next.ListByPlayer(ctx, name, scope)
	})
	if err != nil {
		return nil, err
	}
	return append([]match.Record(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Record, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, matchPrefix+"id:"+matchID, func(ctx context.Context) (found[match.Record], error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		return found[match.Record]{value: item, exists: exists}, err
	})
	if err != nil {
		return match.Record{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, record match.Record) error {
	if err := r.next.Create(ctx, record); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, matchPrefix)
	return nil
}

func (r *MatchRepository) Complete(ctx context.Context, record match.Record) error {
	if err := r.next.Complete(ctx, record); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, matchPrefix)
	return nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context, scope match.Scope) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, playerPrefix+"list:"+scope.String(), func(ctx context.Context) ([]player.Player, error) {
		return r.next.List(ctx, scope)
	})
	if err != nil {
		return nil, err
	}
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, competitionID, name string) (player.Player, bool, error) {
	key := playerPrefix + "name:" + competitionID + ":" + name
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (found[player.Player], error) {
		item, exists, err := r.next.GetByName(ctx, competitionID, name)
		return found[player.Player]{value: item, exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, playerPrefix+"id:"+playerID, func(ctx context.Context) (found[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		return found[player.Player]{value: item, exists: exists}, err
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, playerPrefix)
	return nil
}

type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	items, err := basecache.Load(ctx, r.cache, competitionPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]competition.Competition(nil), items...), nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, competitionPrefix+"id:"+competitionID, func(ctx context.Context) (found[competition.Competition], error) {
		item, exists, err := r.next.GetByID(ctx, competitionID)
		return found[competition.Competition]{value: item, exists: exists}, err
	})
	if err != nil {
		return competition.Competition{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) error {
	if err := r.next.Create(ctx, c); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, competitionPrefix)
	return nil
}

type TournamentRepository struct {
	next  tournament.Repository
	cache *basecache.Store
}

func NewTournamentRepository(next tournament.Repository, cache *basecache.Store) *TournamentRepository {
	return &TournamentRepository{next: next, cache: cache}
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	items, err := basecache.Load(ctx, r.cache, tournamentPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	out := make([]tournament.Tournament, 0, len(items))
	for _, item := range items {
		out = append(out, cloneTournament(item))
	}
	return out, nil
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, tournamentPrefix+"id:"+tournamentID, func(ctx context.Context) (found[tournament.Tournament], error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID)
		return found[tournament.Tournament]{value: item, exists: exists}, err
	})
	if err != nil {
		return tournament.Tournament{}, false, err
	}
	return cloneTournament(cached.value), cached.exists, nil
}

func (r *TournamentRepository) Create(ctx context.Context, t tournament.Tournament) error {
	if err := r.next.Create(ctx, t); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, tournamentPrefix)
	return nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, teamPrefix+"list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, teamPrefix+"id:"+teamID, func(ctx context.Context) (found[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return found[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (team.Team, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, teamPrefix+"name:"+team.Key(name), func(ctx context.Context) (found[team.Team], error) {
		item, exists, err := r.next.GetByName(ctx, name)
		return found[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	if err := r.next.Create(ctx, t); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamPrefix)
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	deleted, err := r.next.Delete(ctx, teamID)
	if err != nil {
		return false, err
	}
	r.cache.DeletePrefix(ctx, teamPrefix)
	return deleted, nil
}

type found[T any] struct {
	value  T
	exists bool
}

func cloneTournament(t tournament.Tournament) tournament.Tournament {
	t.Participants = append([]string(nil), t.Participants...)
	return t
}
