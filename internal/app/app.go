package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fifa-results/external/resultsapi"
	"github.com/riskibarqy/fifa-results/internal/config"
	"github.com/riskibarqy/fifa-results/internal/domain/competition"
	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	"github.com/riskibarqy/fifa-results/internal/domain/team"
	"github.com/riskibarqy/fifa-results/internal/domain/tournament"
	"github.com/riskibarqy/fifa-results/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fifa-results/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fifa-results/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fifa-results/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/fifa-results/internal/platform/cache"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
	"github.com/riskibarqy/fifa-results/internal/platform/logging"
	"github.com/riskibarqy/fifa-results/internal/platform/resilience"
	"github.com/riskibarqy/fifa-results/internal/usecase"
)

type repositories struct {
	matches      match.Repository
	players      player.Repository
	competitions competition.Repository
	tournaments  tournament.Repository
	teams        team.Repository
}

// NewHTTPServer wires storage, services and the router. The returned close func releases
// the database pool, if any.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closeFn, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	upstream := resultsapi.NewClient(resultsapi.ClientConfig{
		BaseURL:    cfg.ResultsAPIBaseURL,
		Timeout:    cfg.ResultsAPITimeout,
		MaxRetries: cfg.ResultsAPIMaxRetries,
		Logger:     logger.Named("resultsapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ResultsAPICircuitEnabled,
			FailureThreshold: cfg.ResultsAPICircuitFailureCount,
			OpenTimeout:      cfg.ResultsAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ResultsAPICircuitHalfOpenMax,
		},
	})

	handler := httpapi.NewHandler(newServices(repos, upstream.Sources(), cfg.ImportWorkers, logger), logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ImportToken:        cfg.ImportToken,
		DocsEnabled:        cfg.SwaggerEnabled,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, closeFn, nil
}

func newServices(repos repositories, upstream usecase.ScopeSources, importWorkers int, logger *logging.Logger) httpapi.Services {
	local := usecase.ScopeSources{
		Matches:      repos.matches,
		Players:      repos.players,
		Competitions: repos.competitions,
		Tournaments:  repos.tournaments,
		Teams:        repos.teams,
	}
	standings := usecase.NewStandingsService(local)

	return httpapi.Services{
		Players:      usecase.NewPlayerService(repos.players, repos.matches, repos.tournaments, idgen.NewPrefixedGenerator("ply-")),
		Matches:      usecase.NewMatchService(repos.matches, repos.players, repos.teams, idgen.NewPrefixedGenerator("mt-")),
		Teams:        usecase.NewTeamService(repos.teams, local, idgen.NewPrefixedGenerator(usecase.TeamIDPrefix)),
		Standings:    standings,
		HeadToHead:   usecase.NewHeadToHeadService(local),
		Stats:        usecase.NewStatsService(local),
		Seasons:      usecase.NewSeasonService(standings),
		Competitions: usecase.NewCompetitionService(repos.competitions, repos.players, repos.matches, idgen.NewPrefixedGenerator("cmp-")),
		Tournaments:  usecase.NewTournamentService(repos.tournaments, repos.players, repos.matches, idgen.NewPrefixedGenerator("trn-")),
		Imports: usecase.NewImportService(upstream, repos.players, repos.matches,
			idgen.NewPrefixedGenerator(usecase.ImportIDPrefix), importWorkers, logger.Named("import")),
	}
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		closeFn = func() error { return nil }
	)

	if cfg.DBEnabled {
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("ping database: %w", err)
		}
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, nil, err
			}
		}
		logger.Info("database connected", "db_name", dbNameFromURL(cfg.DBURL), "bootstrap_seed", cfg.DBBootstrapSeed)

		repos = repositories{
			matches:      postgres.NewMatchRepository(db),
			players:      postgres.NewPlayerRepository(db),
			competitions: postgres.NewCompetitionRepository(db),
			tournaments:  postgres.NewTournamentRepository(db),
			teams:        postgres.NewTeamRepository(db),
		}
		closeFn = db.Close
	} else {
		logger.Info("database disabled, using seeded in-memory store", "reason", "DB_ENABLED=false")
		repos = repositories{
			matches:      memory.NewMatchRepository(memory.SeedMatches()),
			players:      memory.NewPlayerRepository(memory.SeedPlayers()),
			competitions: memory.NewCompetitionRepository(memory.SeedCompetitions()),
			tournaments:  memory.NewTournamentRepository(memory.SeedTournaments()),
			teams:        memory.NewTeamRepository(memory.SeedTeams()),
		}
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos = repositories{
			matches:      cache.NewMatchRepository(repos.matches, store),
			players:      cache.NewPlayerRepository(repos.players, store),
			competitions: cache.NewCompetitionRepository(repos.competitions, store),
			tournaments:  cache.NewTournamentRepository(repos.tournaments, store),
			teams:        cache.NewTeamRepository(repos.teams, store),
		}
	}

	return repos, closeFn, nil
}
