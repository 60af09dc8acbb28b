package betservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/metrics"
	"github.com/mborisov/betpool/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=betservice.go -destination=betservice_mock.go -package=betservice

type UserRepo interface {
	GetByIDForUpdate(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalanceAndStats(ctx context.Context, user *domain.User) error
}

type GameRepo interface {
	GetByID(ctx context.Context, gameID int) (*domain.Game, error)
	ApplyBetDelta(ctx context.Context, gameID int, home bool, bets int, wagered float64) error
}

type BetRepo interface {
	Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error)
	GetByID(ctx context.Context, betID int) (*domain.Bet, error)
	FindPending(ctx context.Context, userID, gameID int) (*domain.Bet, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Bet, error)
	FinalizePending(ctx context.Context, betID int, status string, actualPayout float64, settledAt time.Time) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrGameNotFound  = errors.New("game not found")
	ErrBetNotFound   = errors.New("bet not found")
	ErrBetNotPending = errors.New("bet is not pending")
)

type Config struct {
	MinBet           float64
	PayoutMultiplier float64
	BetCutoff        time.Duration
	StaleBetAge      time.Duration
}

type Service struct {
	users     UserRepo
	games     GameRepo
	bets      BetRepo
	txns      TransactionRepo
	txManager pg.TXManager
	validator *Validator
	cfg       Config
	now       func() time.Time
}

func New(users UserRepo, games GameRepo, bets BetRepo, txns TransactionRepo, txManager pg.TXManager, cfg Config) *Service {
	return &Service{
		users:     users,
		games:     games,
		bets:      bets,
		txns:      txns,
		txManager: txManager,
		validator: NewValidator(cfg.MinBet, cfg.BetCutoff, cfg.StaleBetAge),
		cfg:       cfg,
		now:       time.Now,
	}
}

// Place debits the wager, creates the pending bet, bumps the game
// aggregates and writes the audit record as one transaction. Either
// all five mutations commit or none of them do.
func (s *Service) Place(ctx context.Context, userID, gameID int, teamPicked string, amount float64) (*domain.Bet, error) {
	var placed *domain.Bet

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		game, err := s.games.GetByID(ctx, gameID)
		if err != nil {
			return err
		}
		if game == nil {
			return ErrGameNotFound
		}

		pending, err := s.bets.FindPending(ctx, userID, gameID)
		if err != nil {
			return err
		}

		if err := s.validator.ValidatePlacement(user, game, teamPicked, amount, pending != nil, s.now()); err != nil {
			return err
		}

		balanceBefore := user.Balance
		user.Balance -= amount
		user.TotalBets++
		if err := s.users.UpdateBalanceAndStats(ctx, user); err != nil {
			return err
		}

		placed, err = s.bets.Create(ctx, &domain.Bet{
			UserID:          userID,
			GameID:          gameID,
			TeamPicked:      teamPicked,
			WagerAmount:     amount,
			PotentialPayout: amount * s.cfg.PayoutMultiplier,
			Status:          domain.BetStatusPending,
		})
		if err != nil {
			return err
		}

		if err := s.games.ApplyBetDelta(ctx, gameID, teamPicked == game.HomeTeam, 1, amount); err != nil {
			return err
		}

		_, err = s.txns.Create(ctx, &domain.Transaction{
			UserID:        userID,
			Type:          domain.TxnBetPlaced,
			Amount:        -amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  user.Balance,
			BetID:         &placed.ID,
			Description:   fmt.Sprintf("Bet placed on %s (%s @ %s)", teamPicked, game.AwayTeam, game.HomeTeam),
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.BetsPlaced.Inc()
	zap.L().Info("bet placed",
		zap.Int("userID", userID),
		zap.Int("gameID", gameID),
		zap.Float64("amount", amount),
	)
	return placed, nil
}

// Cancel is the self-service path: the bet must belong to the caller
// and the cancellation window must still be open.
func (s *Service) Cancel(ctx context.Context, userID, betID int) error {
	return s.cancel(ctx, &userID, betID)
}

// CancelAny is the privileged path. It skips ownership and timing
// checks and works on any pending bet.
func (s *Service) CancelAny(ctx context.Context, betID int) error {
	return s.cancel(ctx, nil, betID)
}

func (s *Service) cancel(ctx context.Context, requesterID *int, betID int) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		bet, err := s.bets.GetByID(ctx, betID)
		if err != nil {
			return err
		}
		if bet == nil {
			return ErrBetNotFound
		}
		// Ownership failures read as not-found so a caller can't probe
		// other users' bet IDs.
		if requesterID != nil && bet.UserID != *requesterID {
			return ErrBetNotFound
		}
		if bet.Status != domain.BetStatusPending {
			return ErrBetNotPending
		}

		game, err := s.games.GetByID(ctx, bet.GameID)
		if err != nil {
			return err
		}
		if game == nil {
			return ErrGameNotFound
		}

		if requesterID != nil {
			if err := s.validator.ValidateCancellation(game, bet, s.now()); err != nil {
				return err
			}
		}

		ok, err := s.bets.FinalizePending(ctx, betID, domain.BetStatusCancelled, 0, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return ErrBetNotPending
		}

		user, err := s.users.GetByIDForUpdate(ctx, bet.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		balanceBefore := user.Balance
		user.Balance += bet.WagerAmount
		if err := s.users.UpdateBalanceAndStats(ctx, user); err != nil {
			return err
		}

		if err := s.games.ApplyBetDelta(ctx, game.ID, bet.TeamPicked == game.HomeTeam, -1, -bet.WagerAmount); err != nil {
			return err
		}

		_, err = s.txns.Create(ctx, &domain.Transaction{
			UserID:        bet.UserID,
			Type:          domain.TxnBetCancelled,
			Amount:        bet.WagerAmount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  user.Balance,
			BetID:         &bet.ID,
			Description:   fmt.Sprintf("Bet cancelled, %.2f refunded", bet.WagerAmount),
		})
		return err
	})
	if err != nil {
		return err
	}

	metrics.BetsCancelled.Inc()
	zap.L().Info("bet cancelled", zap.Int("betID", betID))
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]domain.Bet, error) {
	bets, err := s.bets.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list bets", zap.Error(err))
		return nil, err
	}
	return bets, nil
}
