package gamerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/pg"
	"go.uber.org/zap"
)

const gameColumns = `id, external_id, week, season, home_team, home_team_abbr, away_team, away_team_abbr,
	game_time, status, home_score, away_score, winner, is_tie,
	total_bets, total_wagered, home_bets, away_bets, home_wagered, away_wagered, created_at, updated_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	err := row.Scan(&g.ID, &g.ExternalID, &g.Week, &g.Season, &g.HomeTeam, &g.HomeTeamAbbr,
		&g.AwayTeam, &g.AwayTeamAbbr, &g.GameTime, &g.Status, &g.HomeScore, &g.AwayScore,
		&g.Winner, &g.IsTie, &g.TotalBets, &g.TotalWagered, &g.HomeBets, &g.AwayBets,
		&g.HomeWagered, &g.AwayWagered, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) scanGames(rows pgx.Rows) ([]domain.Game, error) {
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			zap.L().Error("can't scan game row", zap.Error(err))
			return nil, err
		}
		games = append(games, *game)
	}
	return games, rows.Err()
}

func (r *Repository) GetByID(ctx context.Context, gameID int) (*domain.Game, error) {
	query := `
        SELECT ` + gameColumns + `
        FROM games
        WHERE id = $1
    `
	game, err := scanGame(r.db.QueryRow(ctx, query, gameID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find game", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.Game, error) {
	query := `
        SELECT ` + gameColumns + `
        FROM games
        WHERE external_id = $1
    `
	game, err := scanGame(r.db.QueryRow(ctx, query, externalID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find game by external id", zap.Error(err))
		return nil, err
	}
	return game, nil
}

func (r *Repository) Create(ctx context.Context, game *domain.Game) (*domain.Game, error) {
	query := `
        INSERT INTO games (external_id, week, season, home_team, home_team_abbr, away_team, away_team_abbr,
                           game_time, status, home_score, away_score, winner, is_tie)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING ` + gameColumns + `
	`
	created, err := scanGame(r.db.QueryRow(ctx, query,
		game.ExternalID, game.Week, game.Season, game.HomeTeam, game.HomeTeamAbbr,
		game.AwayTeam, game.AwayTeamAbbr, game.GameTime, game.Status,
		game.HomeScore, game.AwayScore, game.Winner, game.IsTie))
	if err != nil {
		zap.L().Error("can't create game", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateResult overwrites the provider-owned fields of a game. Betting
// aggregates are untouched, those only move through ApplyBetDelta.
func (r *Repository) UpdateResult(ctx context.Context, game *domain.Game) error {
	query := `
        UPDATE games
        SET status = $1, home_score = $2, away_score = $3, winner = $4, is_tie = $5,
            game_time = $6, updated_at = $7
        WHERE id = $8
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, game.Status, game.HomeScore, game.AwayScore,
			game.Winner, game.IsTie, game.GameTime, time.Now(), game.ID)
		if err != nil {
			zap.L().Error("failed to update game result", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// ApplyBetDelta moves the betting aggregates by the given amounts.
// Placement passes +1/+wager, cancellation the negated values.
func (r *Repository) ApplyBetDelta(ctx context.Context, gameID int, home bool, bets int, wagered float64) error {
	query := `
        UPDATE games
        SET total_bets = total_bets + $1,
            total_wagered = total_wagered + $2,
            home_bets = home_bets + $3,
            home_wagered = home_wagered + $4,
            away_bets = away_bets + $5,
            away_wagered = away_wagered + $6
        WHERE id = $7
    `
	homeBets, awayBets := bets, 0
	homeWagered, awayWagered := wagered, 0.0
	if !home {
		homeBets, awayBets = 0, bets
		homeWagered, awayWagered = 0, wagered
	}
	_, err := r.db.Exec(ctx, query, bets, wagered, homeBets, homeWagered, awayBets, awayWagered, gameID)
	if err != nil {
		zap.L().Error("failed to apply bet delta", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUpcoming(ctx context.Context, now time.Time, limit int) ([]domain.Game, error) {
	query := `
        SELECT ` + gameColumns + `
        FROM games
        WHERE status = 'scheduled' AND game_time > $1
        ORDER BY game_time ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		zap.L().Error("can't get upcoming games", zap.Error(err))
		return nil, err
	}
	return r.scanGames(rows)
}

// FindFinalWithPendingBets returns finalized games that still have at
// least one pending bet, the settlement pass input.
func (r *Repository) FindFinalWithPendingBets(ctx context.Context) ([]domain.Game, error) {
	query := `
        SELECT ` + gameColumns + `
        FROM games g
        WHERE g.status = 'final'
          AND EXISTS (SELECT 1 FROM bets b WHERE b.game_id = g.id AND b.status = 'pending')
        ORDER BY g.game_time ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get games for settlement", zap.Error(err))
		return nil, err
	}
	return r.scanGames(rows)
}
