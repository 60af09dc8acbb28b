package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/mborisov/betpool/internal/domain"
)

var userCols = []string{
	"id", "external_id", "username", "balance", "starting_balance", "total_winnings",
	"total_losses", "total_bets", "winning_bets", "losing_bets", "biggest_win",
	"biggest_loss", "is_admin", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func addUserRow(rows *pgxmock.Rows, u *domain.User) *pgxmock.Rows {
	return rows.AddRow(u.ID, u.ExternalID, u.Username, u.Balance, u.StartingBalance,
		u.TotalWinnings, u.TotalLosses, u.TotalBets, u.WinningBets, u.LosingBets,
		u.BiggestWin, u.BiggestLoss, u.IsAdmin, u.CreatedAt)
}

func testUser() *domain.User {
	return &domain.User{
		ID:              1,
		ExternalID:      "ext-42",
		Username:        "testuser",
		Balance:         900.0,
		StartingBalance: 1000.0,
		TotalBets:       3,
		CreatedAt:       time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	user := testUser()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists and row locked",
			mockSetup: func() {
				rows := addUserRow(pgxmock.NewRows(userCols), user)
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: user,
		},
		{
			name: "User does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByIDForUpdate(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_GetByExternalID(t *testing.T) {
	repo, mock := NewMock(t)
	user := testUser()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			mockSetup: func() {
				rows := addUserRow(pgxmock.NewRows(userCols), user)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs("ext-42").
					WillReturnRows(rows)
			},
			result: user,
		},
		{
			name: "User does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs("ext-42").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs("ext-42").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByExternalID(context.Background(), "ext-42")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	user := testUser()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				rows := addUserRow(pgxmock.NewRows(userCols), user)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (external_id, username, balance, starting_balance, is_admin)")).
					WithArgs(user.ExternalID, user.Username, user.Balance, user.StartingBalance, user.IsAdmin).
					WillReturnRows(rows)
			},
			result: user,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (external_id, username, balance, starting_balance, is_admin)")).
					WithArgs(user.ExternalID, user.Username, user.Balance, user.StartingBalance, user.IsAdmin).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateBalanceAndStats(t *testing.T) {
	repo, mock := NewMock(t)

	user := testUser()
	user.Balance = 1100.0
	user.WinningBets = 1
	user.TotalWinnings = 200.0
	user.BiggestWin = 100.0

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET balance = $1, total_winnings = $2, total_losses = $3, total_bets = $4,")).
					WithArgs(user.Balance, user.TotalWinnings, user.TotalLosses, user.TotalBets,
						user.WinningBets, user.LosingBets, user.BiggestWin, user.BiggestLoss, user.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET balance = $1, total_winnings = $2, total_losses = $3, total_bets = $4,")).
					WithArgs(user.Balance, user.TotalWinnings, user.TotalLosses, user.TotalBets,
						user.WinningBets, user.LosingBets, user.BiggestWin, user.BiggestLoss, user.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalanceAndStats(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_UpdateUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update successfully",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET username = $1")).
					WithArgs("renamed", 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET username = $1")).
					WithArgs("renamed", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateUsername(context.Background(), 1, "renamed")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
