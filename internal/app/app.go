package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mborisov/betpool/internal/cache"
	"github.com/mborisov/betpool/internal/config"
	"github.com/mborisov/betpool/internal/handlers"
	"github.com/mborisov/betpool/internal/pg"
	"github.com/mborisov/betpool/internal/repo"
	"github.com/mborisov/betpool/internal/scheduler"
	"github.com/mborisov/betpool/internal/scores"
	"github.com/mborisov/betpool/internal/service"
	pkgauth "github.com/mborisov/betpool/pkg/auth"
	"github.com/mborisov/betpool/pkg/clients"
	"github.com/mborisov/betpool/pkg/logger"
)

const (
	jobScoreSync     = "score_sync"
	jobBetSettlement = "bet_settlement"

	schedulerPoolSize = 4
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	sync  *scores.Synchronizer
	sched *scheduler.Scheduler

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	pkgauth.SetSecret(cfg.JWTSecret)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, cache.New(getRedis(cfg)), cfg)

	scoreboard := scores.NewClient(cfg.ScoreboardAddress, clients.NewHTTPClient())
	a.sync = scores.NewSynchronizer(scoreboard, a.repo.Games)

	a.sched = scheduler.New(schedulerPoolSize)
	if err := a.registerJobs(); err != nil {
		return fmt.Errorf("can't register jobs: %w", err)
	}

	a.api = handlers.New(a.srv, a.sync, a.sched, pool)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startScheduler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) registerJobs() error {
	if err := a.sched.Register(jobScoreSync, a.cfg.SyncInterval, func(ctx context.Context) error {
		if _, err := a.sync.Sync(ctx); err != nil {
			return err
		}
		a.srv.GameService.InvalidateBoard(ctx)
		return nil
	}); err != nil {
		return err
	}

	return a.sched.Register(jobBetSettlement, a.cfg.SettleInterval, func(ctx context.Context) error {
		_, err := a.srv.SettlementService.SettleDueGames(ctx)
		return err
	})
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// getRedis returns nil when no address is configured, which disables
// the games board cache.
func getRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisAddress == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startScheduler(ctx context.Context) {
	a.sched.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.sched.Stop()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
