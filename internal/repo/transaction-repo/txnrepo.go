package txnrepo

import (
	"context"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/pg"
	"go.uber.org/zap"
)

const txnColumns = `id, user_id, type, amount, balance_before, balance_after, bet_id, description, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

// Create appends an audit record. Transactions are insert-only, there
// is deliberately no update or delete on this table.
func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, type, amount, balance_before, balance_after, bet_id, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + txnColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		txn.UserID, txn.Type, txn.Amount, txn.BalanceBefore, txn.BalanceAfter, txn.BetID, txn.Description)

	var created domain.Transaction
	err := row.Scan(&created.ID, &created.UserID, &created.Type, &created.Amount,
		&created.BalanceBefore, &created.BalanceAfter, &created.BetID, &created.Description, &created.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txnColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Type, &txn.Amount,
			&txn.BalanceBefore, &txn.BalanceAfter, &txn.BetID, &txn.Description, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
