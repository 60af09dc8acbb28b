package handlers

import (
	"context"
	"net/http"

	_ "github.com/mborisov/betpool/docs"
	adminhandlers "github.com/mborisov/betpool/internal/handlers/admin"
	authhandlers "github.com/mborisov/betpool/internal/handlers/auth"
	bethandlers "github.com/mborisov/betpool/internal/handlers/bets"
	gamehandlers "github.com/mborisov/betpool/internal/handlers/games"
	userhandlers "github.com/mborisov/betpool/internal/handlers/users"
	"github.com/mborisov/betpool/internal/metrics"
	"github.com/mborisov/betpool/internal/service"
	"github.com/mborisov/betpool/pkg/auth"
	"github.com/mborisov/betpool/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Session(w http.ResponseWriter, r *http.Request)
}

type BetHandler interface {
	PlaceBet(w http.ResponseWriter, r *http.Request)
	GetBets(w http.ResponseWriter, r *http.Request)
	CancelBet(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	GetUpcoming(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Sync(w http.ResponseWriter, r *http.Request)
	SyncSeason(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
	CancelBet(w http.ResponseWriter, r *http.Request)
	Jobs(w http.ResponseWriter, r *http.Request)
}

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	AuthHandler  AuthHandler
	BetHandler   BetHandler
	GameHandler  GameHandler
	UserHandler  UserHandler
	AdminHandler AdminHandler
	pinger       Pinger
}

func New(s *service.Services, sync adminhandlers.SyncService, jobs adminhandlers.JobLister, pinger Pinger) *Handlers {
	return &Handlers{
		AuthHandler:  authhandlers.New(s.AuthService),
		BetHandler:   bethandlers.New(s.BetService),
		GameHandler:  gamehandlers.New(s.GameService),
		UserHandler:  userhandlers.New(s.UserService),
		AdminHandler: adminhandlers.New(sync, s.SettlementService, s.BetService, s.GameService, jobs),
		pinger:       pinger,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/healthz", h.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/session", h.AuthHandler.Session)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/games/upcoming", h.GameHandler.GetUpcoming)
			r.Route("/bets", func(r chi.Router) {
				r.Post("/", h.BetHandler.PlaceBet)
				r.Get("/", h.BetHandler.GetBets)
				r.Post("/{betID}/cancel", h.BetHandler.CancelBet)
			})
			r.Route("/user", func(r chi.Router) {
				r.Get("/balance", h.UserHandler.GetBalance)
				r.Get("/transactions", h.UserHandler.GetTransactions)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)
				r.Post("/sync", h.AdminHandler.Sync)
				r.Post("/sync/season", h.AdminHandler.SyncSeason)
				r.Post("/settle", h.AdminHandler.Settle)
				r.Post("/bets/{betID}/cancel", h.AdminHandler.CancelBet)
				r.Get("/jobs", h.AdminHandler.Jobs)
			})
		})
	})

	return r
}

func (h *Handlers) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
}
