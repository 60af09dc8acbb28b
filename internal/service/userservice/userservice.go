package userservice

import (
	"context"
	"errors"

	"github.com/mborisov/betpool/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=userservice.go -destination=userservice_mock.go -package=userservice

const (
	defaultTxnLimit = 50
	maxTxnLimit     = 200
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
}

type TransactionRepo interface {
	FindByUserID(ctx context.Context, userID, limit int) ([]domain.Transaction, error)
}

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	users UserRepo
	txns  TransactionRepo
}

func New(users UserRepo, txns TransactionRepo) *Service {
	return &Service{users: users, txns: txns}
}

// GetProfile returns the user's balance and lifetime wagering stats.
func (s *Service) GetProfile(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Transactions lists the user's ledger entries, newest first. A zero
// limit falls back to the default; oversized limits are clamped.
func (s *Service) Transactions(ctx context.Context, userID, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTxnLimit
	}
	if limit > maxTxnLimit {
		limit = maxTxnLimit
	}
	return s.txns.FindByUserID(ctx, userID, limit)
}
