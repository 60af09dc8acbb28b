package scores

import (
	"context"
	"fmt"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sync.go -destination=sync_mock.go -package=scores

const (
	seasonStartMonth = time.September
	minWeek          = 1
	maxWeek          = 22
	regularWeeks     = 18
)

type GameRepo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.Game, error)
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	UpdateResult(ctx context.Context, game *domain.Game) error
}

type Provider interface {
	CurrentBoard(ctx context.Context) ([]Event, error)
	WeekBoard(ctx context.Context, year, week int) ([]Event, error)
}

// Result counts one sync pass.
type Result struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
}

type WeekError struct {
	Week  int    `json:"week"`
	Error string `json:"error"`
}

// SeasonResult accumulates a per-week backfill.
type SeasonResult struct {
	Result
	WeeksFetched int         `json:"weeks_fetched"`
	Errors       []WeekError `json:"errors,omitempty"`
}

type Synchronizer struct {
	provider Provider
	games    GameRepo
	now      func() time.Time
}

func NewSynchronizer(provider Provider, games GameRepo) *Synchronizer {
	return &Synchronizer{provider: provider, games: games, now: time.Now}
}

// Sync pulls the current scoreboard and upserts every event by its
// provider id. Provider-owned fields are overwritten in place; betting
// aggregates never move here.
func (s *Synchronizer) Sync(ctx context.Context) (*Result, error) {
	events, err := s.provider.CurrentBoard(ctx)
	if err != nil {
		return nil, err
	}
	result, err := s.apply(ctx, events)
	if err != nil {
		return nil, err
	}

	zap.L().Info("scoreboard sync complete",
		zap.Int("processed", result.Processed),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

// SyncSeason backfills the schedule week by week. A failed week is
// recorded and skipped so the rest of the season still loads. Nil
// weeks means the full regular season.
func (s *Synchronizer) SyncSeason(ctx context.Context, year int, weeks []int) (*SeasonResult, error) {
	if year == 0 {
		year = s.now().Year()
	}
	if len(weeks) == 0 {
		weeks = make([]int, regularWeeks)
		for i := range weeks {
			weeks[i] = i + 1
		}
	}

	result := &SeasonResult{}
	for _, week := range weeks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		events, err := s.provider.WeekBoard(ctx, year, week)
		if err != nil {
			zap.L().Error("week fetch failed", zap.Int("week", week), zap.Error(err))
			result.Errors = append(result.Errors, WeekError{Week: week, Error: err.Error()})
			continue
		}

		weekResult, err := s.apply(ctx, events)
		if err != nil {
			result.Errors = append(result.Errors, WeekError{Week: week, Error: err.Error()})
			continue
		}

		result.WeeksFetched++
		result.Processed += weekResult.Processed
		result.Created += weekResult.Created
		result.Updated += weekResult.Updated
	}

	zap.L().Info("season backfill complete",
		zap.Int("year", year),
		zap.Int("weeksFetched", result.WeeksFetched),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("weekErrors", len(result.Errors)),
	)
	return result, nil
}

func (s *Synchronizer) apply(ctx context.Context, events []Event) (*Result, error) {
	result := &Result{}
	for _, event := range events {
		existing, err := s.games.GetByExternalID(ctx, event.ExternalID)
		if err != nil {
			return nil, err
		}

		if existing == nil {
			season, week := inferSeasonWeek(event.StartTime)
			_, err = s.games.Create(ctx, &domain.Game{
				ExternalID:   event.ExternalID,
				Week:         week,
				Season:       season,
				HomeTeam:     event.HomeTeam,
				HomeTeamAbbr: event.HomeAbbr,
				AwayTeam:     event.AwayTeam,
				AwayTeamAbbr: event.AwayAbbr,
				GameTime:     event.StartTime,
				Status:       event.Status,
				HomeScore:    event.HomeScore,
				AwayScore:    event.AwayScore,
				Winner:       event.Winner,
				IsTie:        event.IsTie,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create game %s: %w", event.ExternalID, err)
			}
			result.Created++
		} else {
			existing.Status = event.Status
			existing.HomeScore = event.HomeScore
			existing.AwayScore = event.AwayScore
			existing.Winner = event.Winner
			existing.IsTie = event.IsTie
			existing.GameTime = event.StartTime
			if err := s.games.UpdateResult(ctx, existing); err != nil {
				return nil, fmt.Errorf("failed to update game %s: %w", event.ExternalID, err)
			}
			result.Updated++
		}
		result.Processed++
	}
	return result, nil
}

// inferSeasonWeek derives season and week from kickoff time. The
// season runs September through February and is labeled by its
// starting year; weeks past the regular season count from January 1.
func inferSeasonWeek(gameTime time.Time) (season, week int) {
	season = gameTime.Year()
	if gameTime.Month() < seasonStartMonth {
		season--
	}

	if gameTime.Month() >= seasonStartMonth {
		start := time.Date(season, seasonStartMonth, 1, 0, 0, 0, 0, time.UTC)
		week = int(gameTime.Sub(start).Hours()/24)/7 + 1
	} else {
		start := time.Date(season+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		week = regularWeeks + int(gameTime.Sub(start).Hours()/24)/7 + 1
	}

	if week < minWeek {
		week = minWeek
	}
	if week > maxWeek {
		week = maxWeek
	}
	return season, week
}
