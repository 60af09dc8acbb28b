package betrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/pg"
	"go.uber.org/zap"
)

const betColumns = `id, user_id, game_id, team_picked, wager_amount, potential_payout, actual_payout,
	status, placed_at, settled_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanBet(row pgx.Row) (*domain.Bet, error) {
	var b domain.Bet
	err := row.Scan(&b.ID, &b.UserID, &b.GameID, &b.TeamPicked, &b.WagerAmount,
		&b.PotentialPayout, &b.ActualPayout, &b.Status, &b.PlacedAt, &b.SettledAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) scanBets(rows pgx.Rows) ([]domain.Bet, error) {
	defer rows.Close()

	var bets []domain.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			zap.L().Error("can't scan bet row", zap.Error(err))
			return nil, err
		}
		bets = append(bets, *bet)
	}
	return bets, rows.Err()
}

func (r *Repository) Create(ctx context.Context, bet *domain.Bet) (*domain.Bet, error) {
	query := `
        INSERT INTO bets (user_id, game_id, team_picked, wager_amount, potential_payout, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + betColumns + `
    `
	created, err := scanBet(r.db.QueryRow(ctx, query,
		bet.UserID, bet.GameID, bet.TeamPicked, bet.WagerAmount, bet.PotentialPayout, bet.Status))
	if err != nil {
		zap.L().Error("can't save bet", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, betID int) (*domain.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE id = $1
    `
	bet, err := scanBet(r.db.QueryRow(ctx, query, betID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find bet", zap.Error(err))
		return nil, err
	}
	return bet, nil
}

// FindPending returns the user's pending bet on a game, if any. Settled
// and cancelled bets do not count, re-betting after cancellation is
// allowed.
func (r *Repository) FindPending(ctx context.Context, userID, gameID int) (*domain.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE user_id = $1 AND game_id = $2 AND status = 'pending'
    `
	bet, err := scanBet(r.db.QueryRow(ctx, query, userID, gameID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pending bet", zap.Error(err))
		return nil, err
	}
	return bet, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE user_id = $1
        ORDER BY placed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user bets", zap.Error(err))
		return nil, err
	}
	return r.scanBets(rows)
}

func (r *Repository) FindPendingByGameID(ctx context.Context, gameID int) ([]domain.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE game_id = $1 AND status = 'pending'
        ORDER BY placed_at ASC
    `
	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		zap.L().Error("can't get pending bets for game", zap.Error(err))
		return nil, err
	}
	return r.scanBets(rows)
}

// FinalizePending transitions a bet out of pending with compare-and-set
// semantics. Returns false when the bet was no longer pending, which
// callers treat as a state conflict and roll back. This is what guards
// the cancel-versus-settle race on the same bet.
func (r *Repository) FinalizePending(ctx context.Context, betID int, status string, actualPayout float64, settledAt time.Time) (bool, error) {
	query := `
        UPDATE bets
        SET status = $1, actual_payout = $2, settled_at = $3
        WHERE id = $4 AND status = 'pending'
    `
	tag, err := r.db.Exec(ctx, query, status, actualPayout, settledAt, betID)
	if err != nil {
		zap.L().Error("failed to finalize bet", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
