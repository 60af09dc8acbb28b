package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/pg"
	"go.uber.org/zap"
)

const userColumns = `id, external_id, username, balance, starting_balance, total_winnings, total_losses,
	total_bets, winning_bets, losing_bets, biggest_win, biggest_loss, is_admin, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.ExternalID, &u.Username, &u.Balance, &u.StartingBalance,
		&u.TotalWinnings, &u.TotalLosses, &u.TotalBets, &u.WinningBets, &u.LosingBets,
		&u.BiggestWin, &u.BiggestLoss, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetByIDForUpdate locks the user row for the rest of the surrounding
// transaction. Placement, cancellation and settlement all go through
// this so concurrent balance mutations serialize per user.
func (r *Repository) GetByIDForUpdate(ctx context.Context, userID int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to lock user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE external_id = $1
    `
	user, err := scanUser(r.db.QueryRow(ctx, query, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get user by external id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (external_id, username, balance, starting_balance, is_admin)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns + `
    `
	created, err := scanUser(r.db.QueryRow(ctx, query,
		user.ExternalID, user.Username, user.Balance, user.StartingBalance, user.IsAdmin))
	if err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) UpdateUsername(ctx context.Context, userID int, username string) error {
	query := `
        UPDATE users
        SET username = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, username, userID); err != nil {
		zap.L().Error("failed to update username", zap.Error(err))
		return err
	}
	return nil
}

// UpdateBalanceAndStats writes back the mutable ledger fields of a user
// previously loaded with GetByIDForUpdate.
func (r *Repository) UpdateBalanceAndStats(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET balance = $1, total_winnings = $2, total_losses = $3, total_bets = $4,
            winning_bets = $5, losing_bets = $6, biggest_win = $7, biggest_loss = $8
        WHERE id = $9
    `
	_, err := r.db.Exec(ctx, query,
		user.Balance, user.TotalWinnings, user.TotalLosses, user.TotalBets,
		user.WinningBets, user.LosingBets, user.BiggestWin, user.BiggestLoss, user.ID)
	if err != nil {
		zap.L().Error("failed to update user balance", zap.Error(err))
		return err
	}
	return nil
}
