package gamerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/pg"
)

var gameCols = []string{
	"id", "external_id", "week", "season", "home_team", "home_team_abbr", "away_team", "away_team_abbr",
	"game_time", "status", "home_score", "away_score", "winner", "is_tie",
	"total_bets", "total_wagered", "home_bets", "away_bets", "home_wagered", "away_wagered",
	"created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)

	return repo, mockDB, mockTxManager
}

func addGameRow(rows *pgxmock.Rows, g *domain.Game) *pgxmock.Rows {
	return rows.AddRow(g.ID, g.ExternalID, g.Week, g.Season, g.HomeTeam, g.HomeTeamAbbr,
		g.AwayTeam, g.AwayTeamAbbr, g.GameTime, g.Status, g.HomeScore, g.AwayScore,
		g.Winner, g.IsTie, g.TotalBets, g.TotalWagered, g.HomeBets, g.AwayBets,
		g.HomeWagered, g.AwayWagered, g.CreatedAt, g.UpdatedAt)
}

func scheduledGame(kickoff time.Time) *domain.Game {
	return &domain.Game{
		ID:           10,
		ExternalID:   "401547401",
		Week:         1,
		Season:       2025,
		HomeTeam:     "Kansas City Chiefs",
		HomeTeamAbbr: "KC",
		AwayTeam:     "Buffalo Bills",
		AwayTeamAbbr: "BUF",
		GameTime:     kickoff,
		Status:       domain.GameStatusScheduled,
		CreatedAt:    kickoff.Add(-24 * time.Hour),
	}
}

func TestRepository_GetByExternalID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	kickoff := time.Now().Add(48 * time.Hour)
	game := scheduledGame(kickoff)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Game
	}{
		{
			name: "Game exists",
			mockSetup: func() {
				rows := addGameRow(pgxmock.NewRows(gameCols), game)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs("401547401").
					WillReturnRows(rows)
			},
			result: game,
		},
		{
			name: "Game does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs("401547401").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs("401547401").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByExternalID(context.Background(), "401547401")
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
	repo, mock, _ := NewMock(t)
	kickoff := time.Now().Add(48 * time.Hour)
	game := scheduledGame(kickoff)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Game
	}{
		{
			name: "Create game successfully",
			mockSetup: func() {
				rows := addGameRow(pgxmock.NewRows(gameCols), game)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO games (external_id, week, season, home_team, home_team_abbr, away_team, away_team_abbr,")).
					WithArgs(game.ExternalID, game.Week, game.Season, game.HomeTeam, game.HomeTeamAbbr,
						game.AwayTeam, game.AwayTeamAbbr, game.GameTime, game.Status,
						game.HomeScore, game.AwayScore, game.Winner, game.IsTie).
					WillReturnRows(rows)
			},
			result: game,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO games (external_id, week, season, home_team, home_team_abbr, away_team, away_team_abbr,")).
					WithArgs(game.ExternalID, game.Week, game.Season, game.HomeTeam, game.HomeTeamAbbr,
						game.AwayTeam, game.AwayTeamAbbr, game.GameTime, game.Status,
						game.HomeScore, game.AwayScore, game.Winner, game.IsTie).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), game)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateResult(t *testing.T) {
	repo, mock, tx := NewMock(t)
	kickoff := time.Now().Add(-4 * time.Hour)
	winner := "Kansas City Chiefs"

	game := scheduledGame(kickoff)
	game.Status = domain.GameStatusFinal
	game.HomeScore = 27
	game.AwayScore = 20
	game.Winner = &winner

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update result successfully",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1, home_score = $2, away_score = $3, winner = $4, is_tie = $5,")).
						WithArgs(game.Status, game.HomeScore, game.AwayScore, game.Winner, game.IsTie,
							game.GameTime, pgxmock.AnyArg(), game.ID).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
					return fn(ctx)
				})
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
					mock.ExpectExec(regexp.QuoteMeta("SET status = $1, home_score = $2, away_score = $3, winner = $4, is_tie = $5,")).
						WithArgs(game.Status, game.HomeScore, game.AwayScore, game.Winner, game.IsTie,
							game.GameTime, pgxmock.AnyArg(), game.ID).
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateResult(context.Background(), game)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_ApplyBetDelta(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		home      bool
		bets      int
		wagered   float64
		mockSetup func()
		expectErr bool
	}{
		{
			name:    "Home side placement",
			home:    true,
			bets:    1,
			wagered: 100.0,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET total_bets = total_bets + $1,")).
					WithArgs(1, 100.0, 1, 100.0, 0, 0.0, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:    "Away side cancellation",
			home:    false,
			bets:    -1,
			wagered: -100.0,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET total_bets = total_bets + $1,")).
					WithArgs(-1, -100.0, 0, 0.0, -1, -100.0, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name:    "Database error",
			home:    true,
			bets:    1,
			wagered: 100.0,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("SET total_bets = total_bets + $1,")).
					WithArgs(1, 100.0, 1, 100.0, 0, 0.0, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.ApplyBetDelta(context.Background(), 10, tt.home, tt.bets, tt.wagered)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindUpcoming(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()
	game := scheduledGame(now.Add(48 * time.Hour))

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Game
	}{
		{
			name: "Games found",
			mockSetup: func() {
				rows := addGameRow(pgxmock.NewRows(gameCols), game)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'scheduled' AND game_time > $1")).
					WithArgs(now, 100).
					WillReturnRows(rows)
			},
			result: []domain.Game{*game},
		},
		{
			name: "No games found",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'scheduled' AND game_time > $1")).
					WithArgs(now, 100).
					WillReturnRows(pgxmock.NewRows(gameCols))
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'scheduled' AND game_time > $1")).
					WithArgs(now, 100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindUpcoming(context.Background(), now, 100)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindFinalWithPendingBets(t *testing.T) {
	repo, mock, _ := NewMock(t)
	winner := "Kansas City Chiefs"

	game := scheduledGame(time.Now().Add(-4 * time.Hour))
	game.Status = domain.GameStatusFinal
	game.HomeScore = 27
	game.AwayScore = 20
	game.Winner = &winner

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Game
	}{
		{
			name: "Games with pending bets found",
			mockSetup: func() {
				rows := addGameRow(pgxmock.NewRows(gameCols), game)
				mock.ExpectQuery(regexp.QuoteMeta("AND EXISTS (SELECT 1 FROM bets b WHERE b.game_id = g.id AND b.status = 'pending')")).
					WillReturnRows(rows)
			},
			result: []domain.Game{*game},
		},
		{
			name: "Scan row error",
			mockSetup: func() {
				rows := pgxmock.NewRows(gameCols).
					AddRow(10, "401547401", "invalid_value", 2025, "Kansas City Chiefs", "KC",
						"Buffalo Bills", "BUF", time.Now(), "final", 27, 20,
						&winner, false, 0, 0.0, 0, 0, 0.0, 0.0, time.Now(), nil)
				mock.ExpectQuery(regexp.QuoteMeta("AND EXISTS (SELECT 1 FROM bets b WHERE b.game_id = g.id AND b.status = 'pending')")).
					WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("AND EXISTS (SELECT 1 FROM bets b WHERE b.game_id = g.id AND b.status = 'pending')")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindFinalWithPendingBets(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
