package service

import (
	"github.com/mborisov/betpool/internal/cache"
	"github.com/mborisov/betpool/internal/config"
	"github.com/mborisov/betpool/internal/pg"
	"github.com/mborisov/betpool/internal/repo"
	"github.com/mborisov/betpool/internal/service/authservice"
	"github.com/mborisov/betpool/internal/service/betservice"
	"github.com/mborisov/betpool/internal/service/gameservice"
	"github.com/mborisov/betpool/internal/service/settlementservice"
	"github.com/mborisov/betpool/internal/service/userservice"
	pkgauth "github.com/mborisov/betpool/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	BetService        *betservice.Service
	GameService       *gameservice.Service
	UserService       *userservice.Service
	SettlementService *settlementservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, gameCache *cache.GameCache, cfg *config.Config) *Services {
	betService := betservice.New(repo.Users, repo.Games, repo.Bets, repo.Transactions, txManager, betservice.Config{
		MinBet:           cfg.MinBet,
		PayoutMultiplier: cfg.PayoutMultiplier,
		BetCutoff:        cfg.BetCutoff,
		StaleBetAge:      cfg.StaleBetAge,
	})
	settlementService := settlementservice.New(repo.Users, repo.Games, repo.Bets, repo.Transactions, txManager)
	gameService := gameservice.New(repo.Games, gameCache)
	userService := userservice.New(repo.Users, repo.Transactions)
	authService := authservice.New(repo.Users, &pkgauth.JWTService{}, cfg.StartingBalance)

	return &Services{
		AuthService:       authService,
		BetService:        betService,
		GameService:       gameService,
		UserService:       userService,
		SettlementService: settlementService,
	}
}
