package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fifa-results/internal/domain/match"
	"github.com/riskibarqy/fifa-results/internal/domain/standings"
)

const (
	maxSeasonYears       = 20
	seasonOverviewFanOut = 4
)

// SeasonSummary is the headline of one year's standings.
type SeasonSummary struct {
	Year     int
	Matches  int
	Players  int
	Excluded int
	Leader   *standings.Row
}

type SeasonService struct {
	standings *StandingsService
}

func NewSeasonService(standings *StandingsService) *SeasonService {
	return &SeasonService{standings: standings}
}

// Overview computes every year's standings concurrently and returns them by year.
func (s *SeasonService) Overview(ctx context.Context, years []int) ([]SeasonSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Overview")
	defer span.End()

	years = uniqueYears(years)
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: at least one year is required", ErrInvalidInput)
	}
	if len(years) > maxSeasonYears {
		return nil, fmt.Errorf("%w: at most %d years per request", ErrInvalidInput, maxSeasonYears)
	}

	p := pool.NewWithResults[SeasonSummary]().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(seasonOverviewFanOut)
	for _, year := range years {
		year := year
		p.Go(func(ctx context.Context) (SeasonSummary, error) {
			result, err := s.standings.Standings(ctx, match.ForYear(year))
			if err != nil {
				return SeasonSummary{}, err
			}

			summary := SeasonSummary{
				Year:     year,
				Players:  len(result.Table.Rows),
				Excluded: result.Excluded,
			}
			for _, row := range result.Table.Rows {
				summary.Matches += row.Matches
			}
			summary.Matches /= 2
			if leader, ok := result.Table.Leader(); ok && !result.NoData {
				summary.Leader = &leader
			}
			return summary, nil
		})
	}

	out, err := p.Wait()
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func uniqueYears(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if y <= 0 {
			continue
		}
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	return out
}
