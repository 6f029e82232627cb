package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/player"
	idgen "github.com/riskibarqy/fifa-results/internal/platform/id"
	"github.com/riskibarqy/fifa-results/internal/platform/logging"
)

const defaultImportWorkers = 4

// ImportIDPrefix marks players and matches written by an import.
const ImportIDPrefix = "imp-"

// ImportResult counts what an import wrote. Excluded records failed validation upstream.
type ImportResult struct {
	Scope          match.Scope
	PlayersCreated int
	PlayersSkipped int
	MatchesCreated int
	MatchesSkipped int
	MatchesFailed  int
	Excluded       int
	DurationMs     int64
}

// ImportService copies records from an upstream results source into the local store.
// Re-running an import skips players and matches that already exist.
type ImportService struct {
	upstream   ScopeSources
	playerRepo player.Repository
	matchRepo  match.Repository
	idGen      idgen.Generator
	workers    int
	logger     *logging.Logger
	now        func() time.Time
}

func NewImportService(
	upstream ScopeSources,
	playerRepo player.Repository,
	matchRepo match.Repository,
	idGen idgen.Generator,
	workers int,
	logger *logging.Logger,
) *ImportService {
	if workers <= 0 {
		workers = defaultImportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		upstream:   upstream,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		workers:    workers,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *ImportService) Import(ctx context.Context, scope match.Scope) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import", scopeAttributes(scope)...)
	defer span.End()

	if scope.Kind != match.ScopeOverall && scope.Kind != match.ScopeYear {
		return ImportResult{}, fmt.Errorf("%w: only overall or year scopes can be imported", ErrInvalidInput)
	}
	if s.upstream.Matches == nil {
		return ImportResult{}, fmt.Errorf("%w: upstream results source is not configured", ErrDependencyUnavailable)
	}

	start := s.now()
	snap, err := scopeLoader{src: s.upstream}.load(ctx, scope)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Scope: scope, Excluded: snap.Excluded}
	if err := s.importPlayers(ctx, snap, &result); err != nil {
		return ImportResult{}, err
	}
	if err := s.importMatches(ctx, snap.Records, &result); err != nil {
		return ImportResult{}, err
	}

	result.DurationMs = s.now().Sub(start).Milliseconds()
	s.logger.InfoContext(ctx, "import finished",
		"scope", scope.String(),
		"players_created", result.PlayersCreated,
		"matches_created", result.MatchesCreated,
		"matches_skipped", result.MatchesSkipped,
		"matches_failed", result.MatchesFailed,
		"excluded", result.Excluded,
	)
	return result, nil
}

// importPlayers runs before matches so every participant exists locally.
func (s *ImportService) importPlayers(ctx context.Context, snap scopeSnapshot, result *ImportResult) error {
	names := make([]string, 0, len(snap.Seed)+2*len(snap.Records))
	names = append(names, snap.Seed...)
	for _, r := range snap.Records {
		names = append(names, r.Player1, r.Player2)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		_, err := registerPlayer(ctx, s.playerRepo, s.idGen, s.now, "", name)
		switch {
		case err == nil:
			result.PlayersCreated++
		case isConflict(err):
			result.PlayersSkipped++
		case isInvalidInput(err):
			continue
		default:
			return fmt.Errorf("import player %q: %w", name, err)
		}
	}
	return nil
}

func (s *ImportService) importMatches(ctx context.Context, records []match.Record, result *ImportResult) error {
	if len(records) == 0 {
		return nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var created, skipped, failed atomic.Int32
	var workers sync.WaitGroup
	for _, record := range records {
		record := record
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			switch status, err := s.importMatch(ctx, record); {
			case err != nil:
				failed.Add(1)
				s.logger.WarnContext(ctx, "import match failed", "match_id", record.ID, "error", err)
			case status == importSkipped:
				skipped.Add(1)
			default:
				created.Add(1)
			}
		}); err != nil {
			workers.Done()
			return fmt.Errorf("submit import task to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.MatchesCreated = int(created.Load())
	result.MatchesSkipped = int(skipped.Load())
	result.MatchesFailed = int(failed.Load())
	return nil
}

type importStatus int

const (
	importCreated importStatus = iota
	importSkipped
)

func (s *ImportService) importMatch(ctx context.Context, record match.Record) (importStatus, error) {
	if record.ID == "" {
		record.ID = importedMatchID(record)
	}
	_, exists, err := s.matchRepo.GetByID(ctx, record.ID)
	if err != nil {
		return importCreated, fmt.Errorf("get match: %w", err)
	}
	if exists {
		return importSkipped, nil
	}

	record.Status = match.StatusCompleted
	if record.Date.IsZero() {
		record.Date = s.now().UTC()
	}
	if err := s.matchRepo.Create(ctx, record); err != nil {
		if isConflict(err) {
			return importSkipped, nil
		}
		return importCreated, fmt.Errorf("create match: %w", err)
	}
	return importCreated, nil
}

// importedMatchID derives a stable id for upstream records that carry none.
func importedMatchID(r match.Record) string {
	sum := sha1.Sum([]byte(strings.Join([]string{
		r.Player1,
		r.Player2,
		strconv.Itoa(r.Score1),
		strconv.Itoa(r.Score2),
		r.Date.UTC().Format(time.RFC3339Nano),
	}, "|")))
	return ImportIDPrefix + hex.EncodeToString(sum[:12])
}
