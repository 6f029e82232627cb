package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
)

const TeamIDPrefix = "tm-"

type TeamService struct {
	teamRepo team.Repository
	report   *TeamReportService
	idGen    idgen.Generator
	now      func() time.Time
}

// NewTeamService builds the team registry. Usage is read from src, with src.Teams
// defaulting to teamRepo.
func NewTeamService(teamRepo team.Repository, src ScopeSources, idGen idgen.Generator) *TeamService {
	if src.Teams == nil {
		src.Teams = teamRepo
	}
	return &TeamService{
		teamRepo: teamRepo,
		report:   NewTeamReportService(src),
		idGen:    idGen,
		now:      time.Now,
	}
}

// Create registers a team. Names are unique ignoring case.
func (s *TeamService) Create(ctx context.Context, name string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	name, err := team.NormalizeName(name)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, exists, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by name: %w", err)
	}
	if exists {
		return team.Team{}, fmt.Errorf("%w: team %q already registered", ErrConflict, name)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.Team{ID: teamID, Name: name, CreatedAt: s.now().UTC()}
	if err := s.teamRepo.Create(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	return item, nil
}

// Delete removes a registered team and returns it.
func (s *TeamService) Delete(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	deleted, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

// List returns every registered team, plus team names found only on the scope's
// matches, with their tally in that scope.
func (s *TeamService) List(ctx context.Context, scope match.Scope) ([]team.Usage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List", scopeAttributes(scope)...)
	defer span.End()

	return s.report.Usage(ctx, scope)
}

// TeamReportService tallies team usage from read-only sources.
type TeamReportService struct {
	loader scopeLoader
	teams  team.Reader
}

// NewTeamReportService reads teams from src.Teams; without it only team names found
// on matches are listed.
func NewTeamReportService(src ScopeSources) *TeamReportService {
	return &TeamReportService{loader: scopeLoader{src: src}, teams: src.Teams}
}

func (s *TeamReportService) Usage(ctx context.Context, scope match.Scope) ([]team.Usage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamReportService.Usage", scopeAttributes(scope)...)
	defer span.End()

	var (
		snap  scopeSnapshot
		teams []team.Team
	)

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		loaded, err := s.loader.load(ctx, scope)
		if err != nil {
			return err
		}
		snap = loaded
		return nil
	})
	p.Go(func(ctx context.Context) error {
		if s.teams == nil {
			return nil
		}
		items, err := s.teams.List(ctx)
		if err != nil {
			return fmt.Errorf("%w: list teams: %w", ErrDependencyUnavailable, err)
		}
		teams = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return team.Tally(teams, snap.Records), nil
}
