package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/pkg/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo, &auth.JWTService{}, 1000), repo
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("first visit creates the account with the starting balance", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().GetByExternalID(ctx, "ext-1").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.Equal(t, "ext-1", user.ExternalID)
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, 1000.0, user.Balance)
				assert.Equal(t, 1000.0, user.StartingBalance)
				user.ID = 1
				return user, nil
			},
		)

		user, err := svc.Session(ctx, "ext-1", "alice")
		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
	})

	t.Run("returning user keeps the existing balance", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().GetByExternalID(ctx, "ext-1").Return(&domain.User{ID: 1, Username: "alice", Balance: 420}, nil)

		user, err := svc.Session(ctx, "ext-1", "alice")
		assert.NoError(t, err)
		assert.Equal(t, 420.0, user.Balance)
	})

	t.Run("changed username is refreshed", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().GetByExternalID(ctx, "ext-1").Return(&domain.User{ID: 1, Username: "alice"}, nil)
		repo.EXPECT().UpdateUsername(ctx, 1, "alice2").Return(nil)

		user, err := svc.Session(ctx, "ext-1", "alice2")
		assert.NoError(t, err)
		assert.Equal(t, "alice2", user.Username)
	})

	t.Run("empty external id is rejected", func(t *testing.T) {
		svc, _ := NewMock(t)

		_, err := svc.Session(ctx, "", "alice")
		assert.ErrorIs(t, err, ErrInvalidIdentity)
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		svc, repo := NewMock(t)

		repo.EXPECT().GetByExternalID(ctx, "ext-1").Return(nil, errors.New("timeout"))

		_, err := svc.Session(ctx, "ext-1", "alice")
		assert.Error(t, err)
	})
}

func TestGenerateToken(t *testing.T) {
	svc, _ := NewMock(t)

	token, err := svc.GenerateToken(1, false)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := (&auth.JWTService{}).ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.False(t, claims.IsAdmin)
}
