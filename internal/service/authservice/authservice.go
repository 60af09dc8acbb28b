package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=authservice_mock.go -package=authservice

const tokenTTL = 24 * time.Hour

type Repo interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUsername(ctx context.Context, userID int, username string) error
}

var ErrInvalidIdentity = errors.New("external id is required")

type Service struct {
	userRepo        Repo
	jwtService      auth.JWTServiceInterface
	startingBalance float64
}

func New(repo Repo, jwtService auth.JWTServiceInterface, startingBalance float64) *Service {
	return &Service{
		userRepo:        repo,
		jwtService:      jwtService,
		startingBalance: startingBalance,
	}
}

// Session resolves the external identity to a local user, creating the
// account with the starting balance on first sight, and refreshes the
// stored username when the upstream one changed.
func (s *Service) Session(ctx context.Context, externalID, username string) (*domain.User, error) {
	if externalID == "" {
		return nil, ErrInvalidIdentity
	}

	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		user, err = s.userRepo.Create(ctx, &domain.User{
			ExternalID:      externalID,
			Username:        username,
			Balance:         s.startingBalance,
			StartingBalance: s.startingBalance,
		})
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return nil, err
		}
		zap.L().Info("user registered",
			zap.Int("userID", user.ID),
			zap.String("username", username),
		)
		return user, nil
	}

	if username != "" && username != user.Username {
		if err := s.userRepo.UpdateUsername(ctx, user.ID, username); err != nil {
			zap.L().Error("can't update username: ", zap.Error(err))
			return nil, err
		}
		user.Username = username
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int, isAdmin bool) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, isAdmin, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
