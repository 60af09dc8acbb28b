package repo

import (
	"github.com/mborisov/betpool/internal/pg"
	betrepo "github.com/mborisov/betpool/internal/repo/bet-repo"
	gamerepo "github.com/mborisov/betpool/internal/repo/game-repo"
	txnrepo "github.com/mborisov/betpool/internal/repo/transaction-repo"
	userrepo "github.com/mborisov/betpool/internal/repo/user-repo"
)

type Repositories struct {
	Users        *userrepo.Repository
	Games        *gamerepo.Repository
	Bets         *betrepo.Repository
	Transactions *txnrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Users:        userrepo.New(conn),
		Games:        gamerepo.New(conn, txManager),
		Bets:         betrepo.New(conn),
		Transactions: txnrepo.New(conn),
	}
}
