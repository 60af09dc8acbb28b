package gameservice

import (
	"context"
	"errors"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=gameservice.go -destination=gameservice_mock.go -package=gameservice

const upcomingLimit = 100

type GameRepo interface {
	GetByID(ctx context.Context, gameID int) (*domain.Game, error)
	FindUpcoming(ctx context.Context, now time.Time, limit int) ([]domain.Game, error)
}

// BoardCache holds the rendered upcoming games list. Cache failures
// are logged and the request falls through to the database.
type BoardCache interface {
	GetBoard(ctx context.Context) ([]domain.Game, bool, error)
	SetBoard(ctx context.Context, games []domain.Game) error
	InvalidateBoard(ctx context.Context) error
}

var ErrGameNotFound = errors.New("game not found")

type Service struct {
	games GameRepo
	cache BoardCache
	now   func() time.Time
}

func New(games GameRepo, cache BoardCache) *Service {
	return &Service{games: games, cache: cache, now: time.Now}
}

func (s *Service) GetByID(ctx context.Context, gameID int) (*domain.Game, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrGameNotFound
	}
	return game, nil
}

// Upcoming lists scheduled games that are still open for betting,
// soonest first. Served from cache when a fresh board is present.
func (s *Service) Upcoming(ctx context.Context) ([]domain.Game, error) {
	board, ok, err := s.cache.GetBoard(ctx)
	if err != nil {
		zap.L().Warn("board cache read failed", zap.Error(err))
	}
	if ok {
		return board, nil
	}

	games, err := s.games.FindUpcoming(ctx, s.now(), upcomingLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetBoard(ctx, games); err != nil {
		zap.L().Warn("board cache write failed", zap.Error(err))
	}
	return games, nil
}

// InvalidateBoard is called after a sync pass touches game rows.
func (s *Service) InvalidateBoard(ctx context.Context) {
	if err := s.cache.InvalidateBoard(ctx); err != nil {
		zap.L().Warn("board cache invalidate failed", zap.Error(err))
	}
}
