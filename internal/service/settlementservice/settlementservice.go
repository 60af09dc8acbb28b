package settlementservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/metrics"
	"github.com/mborisov/betpool/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=settlementservice.go -destination=settlementservice_mock.go -package=settlementservice

const maxConcurrentGames = 4

type UserRepo interface {
	GetByIDForUpdate(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalanceAndStats(ctx context.Context, user *domain.User) error
}

type GameRepo interface {
	GetByID(ctx context.Context, gameID int) (*domain.Game, error)
	FindFinalWithPendingBets(ctx context.Context) ([]domain.Game, error)
}

type BetRepo interface {
	GetByID(ctx context.Context, betID int) (*domain.Bet, error)
	FindPendingByGameID(ctx context.Context, gameID int) ([]domain.Bet, error)
	FinalizePending(ctx context.Context, betID int, status string, actualPayout float64, settledAt time.Time) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

var (
	ErrBetNotFound       = errors.New("bet not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrGameNotFound      = errors.New("game not found")
	ErrBetAlreadySettled = errors.New("bet is already settled")
	ErrGameNotFinal      = errors.New("game is not final")
)

var txnTypes = map[string]string{
	domain.BetStatusWon:  domain.TxnBetWon,
	domain.BetStatusLost: domain.TxnBetLost,
	domain.BetStatusPush: domain.TxnBetPush,
}

// BetSettlement describes the result of settling one bet.
type BetSettlement struct {
	BetID     int       `json:"bet_id"`
	Status    string    `json:"status"`
	Payout    float64   `json:"payout"`
	SettledAt time.Time `json:"settled_at"`
}

type BetError struct {
	BetID int    `json:"bet_id"`
	Error string `json:"error"`
}

// PassResult summarizes one settlement pass over all due games.
type PassResult struct {
	GamesProcessed int        `json:"games_processed"`
	BetsSettled    int        `json:"bets_settled"`
	Errors         []BetError `json:"errors,omitempty"`
}

type Service struct {
	users     UserRepo
	games     GameRepo
	bets      BetRepo
	txns      TransactionRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(users UserRepo, games GameRepo, bets BetRepo, txns TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		users:     users,
		games:     games,
		bets:      bets,
		txns:      txns,
		txManager: txManager,
		now:       time.Now,
	}
}

// SettleBet resolves one pending bet against its finalized game. The
// whole settlement is a single transaction; re-settling a terminal bet
// fails with ErrBetAlreadySettled and changes nothing.
func (s *Service) SettleBet(ctx context.Context, betID int) (*BetSettlement, error) {
	var result *BetSettlement

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		bet, err := s.bets.GetByID(ctx, betID)
		if err != nil {
			return err
		}
		if bet == nil {
			return ErrBetNotFound
		}
		if bet.Status != domain.BetStatusPending {
			return ErrBetAlreadySettled
		}

		game, err := s.games.GetByID(ctx, bet.GameID)
		if err != nil {
			return err
		}
		if game == nil {
			return ErrGameNotFound
		}
		if game.Status != domain.GameStatusFinal {
			return ErrGameNotFinal
		}

		outcome := determineOutcome(bet, game)
		payout := calculatePayout(bet, outcome)
		settledAt := s.now()

		ok, err := s.bets.FinalizePending(ctx, betID, outcome, payout, settledAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBetAlreadySettled
		}

		user, err := s.users.GetByIDForUpdate(ctx, bet.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		balanceBefore := user.Balance
		applyOutcome(user, bet, outcome, payout)
		if err := s.users.UpdateBalanceAndStats(ctx, user); err != nil {
			return err
		}

		_, err = s.txns.Create(ctx, &domain.Transaction{
			UserID:        bet.UserID,
			Type:          txnTypes[outcome],
			Amount:        payout,
			BalanceBefore: balanceBefore,
			BalanceAfter:  user.Balance,
			BetID:         &bet.ID,
			Description:   fmt.Sprintf("Bet settlement: %s (%s @ %s)", outcome, game.AwayTeam, game.HomeTeam),
		})
		if err != nil {
			return err
		}

		result = &BetSettlement{BetID: betID, Status: outcome, Payout: payout, SettledAt: settledAt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BetsSettled.WithLabelValues(result.Status).Inc()
	zap.L().Info("bet settled",
		zap.Int("betID", betID),
		zap.String("outcome", result.Status),
		zap.Float64("payout", result.Payout),
	)
	return result, nil
}

// SettleDueGames settles every pending bet on every final game. Each
// bet commits independently: one bet's failure is recorded and skipped,
// never aborting its siblings. A later pass picks up anything that
// failed here, since only pending bets on final games are scanned.
func (s *Service) SettleDueGames(ctx context.Context) (*PassResult, error) {
	games, err := s.games.FindFinalWithPendingBets(ctx)
	if err != nil {
		return nil, err
	}

	result := &PassResult{GamesProcessed: len(games)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGames)

	for _, game := range games {
		game := game
		g.Go(func() error {
			bets, err := s.bets.FindPendingByGameID(gctx, game.ID)
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, BetError{Error: fmt.Sprintf("game %d: %v", game.ID, err)})
				mu.Unlock()
				return nil
			}

			for _, bet := range bets {
				if _, err := s.SettleBet(gctx, bet.ID); err != nil {
					zap.L().Error("failed to settle bet",
						zap.Int("betID", bet.ID),
						zap.Error(err),
					)
					mu.Lock()
					result.Errors = append(result.Errors, BetError{BetID: bet.ID, Error: err.Error()})
					mu.Unlock()
					continue
				}
				mu.Lock()
				result.BetsSettled++
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}

	zap.L().Info("settlement pass complete",
		zap.Int("games", result.GamesProcessed),
		zap.Int("betsSettled", result.BetsSettled),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func determineOutcome(bet *domain.Bet, game *domain.Game) string {
	if game.IsTie || game.Winner == nil {
		return domain.BetStatusPush
	}
	if bet.TeamPicked == *game.Winner {
		return domain.BetStatusWon
	}
	return domain.BetStatusLost
}

func calculatePayout(bet *domain.Bet, outcome string) float64 {
	switch outcome {
	case domain.BetStatusWon:
		return bet.PotentialPayout
	case domain.BetStatusPush:
		return bet.WagerAmount
	default:
		return 0
	}
}

// applyOutcome credits the payout and moves the win/loss statistics.
// Push touches the balance only. Biggest win tracks net gain, not
// gross payout.
func applyOutcome(user *domain.User, bet *domain.Bet, outcome string, payout float64) {
	user.Balance += payout

	switch outcome {
	case domain.BetStatusWon:
		user.WinningBets++
		user.TotalWinnings += payout
		if gain := payout - bet.WagerAmount; gain > user.BiggestWin {
			user.BiggestWin = gain
		}
	case domain.BetStatusLost:
		user.LosingBets++
		user.TotalLosses += bet.WagerAmount
		if bet.WagerAmount > user.BiggestLoss {
			user.BiggestLoss = bet.WagerAmount
		}
	}
}
