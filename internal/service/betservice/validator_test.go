package betservice

import (
	"math"
	"testing"
	"time"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testGame(gameTime time.Time) *domain.Game {
	return &domain.Game{
		ID:       1,
		HomeTeam: "Kansas City Chiefs",
		AwayTeam: "Buffalo Bills",
		GameTime: gameTime,
		Status:   domain.GameStatusScheduled,
	}
}

func TestValidatePlacement(t *testing.T) {
	now := time.Date(2025, 9, 7, 12, 0, 0, 0, time.UTC)
	validator := NewValidator(1, 5*time.Minute, 24*time.Hour)
	user := &domain.User{ID: 1, Balance: 1000}

	tests := []struct {
		name       string
		game       *domain.Game
		teamPicked string
		amount     float64
		hasPending bool
		wantReason Reason
	}{
		{
			name:       "valid bet",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     100,
		},
		{
			name:       "zero amount",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     0,
			wantReason: ReasonInvalidAmount,
		},
		{
			name:       "negative amount",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     -50,
			wantReason: ReasonInvalidAmount,
		},
		{
			name:       "NaN amount",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     math.NaN(),
			wantReason: ReasonInvalidAmount,
		},
		{
			name:       "below minimum",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     0.5,
			wantReason: ReasonInvalidAmount,
		},
		{
			name:       "over balance",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     1000.01,
			wantReason: ReasonInsufficientBalance,
		},
		{
			name:       "exactly at cutoff is closed",
			game:       testGame(now.Add(5 * time.Minute)),
			teamPicked: "Kansas City Chiefs",
			amount:     100,
			wantReason: ReasonBettingClosed,
		},
		{
			name:       "one second outside cutoff is open",
			game:       testGame(now.Add(5*time.Minute + time.Second)),
			teamPicked: "Kansas City Chiefs",
			amount:     100,
		},
		{
			name: "game not scheduled",
			game: func() *domain.Game {
				g := testGame(now.Add(2 * time.Hour))
				g.Status = domain.GameStatusInProgress
				return g
			}(),
			teamPicked: "Kansas City Chiefs",
			amount:     100,
			wantReason: ReasonBettingClosed,
		},
		{
			name:       "team not in game",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Dallas Cowboys",
			amount:     100,
			wantReason: ReasonInvalidTeam,
		},
		{
			name:       "away team is valid",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Buffalo Bills",
			amount:     100,
		},
		{
			name:       "duplicate pending bet",
			game:       testGame(now.Add(2 * time.Hour)),
			teamPicked: "Kansas City Chiefs",
			amount:     100,
			hasPending: true,
			wantReason: ReasonDuplicateBet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePlacement(user, tt.game, tt.teamPicked, tt.amount, tt.hasPending, now)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}

func TestValidateCancellation(t *testing.T) {
	now := time.Date(2025, 9, 7, 12, 0, 0, 0, time.UTC)
	validator := NewValidator(1, 5*time.Minute, 24*time.Hour)

	tests := []struct {
		name     string
		gameTime time.Time
		placedAt time.Time
		wantErr  bool
	}{
		{
			name:     "well before cutoff",
			gameTime: now.Add(2 * time.Hour),
			placedAt: now.Add(-time.Hour),
		},
		{
			name:     "two minutes before kickoff",
			gameTime: now.Add(2 * time.Minute),
			placedAt: now.Add(-time.Hour),
			wantErr:  true,
		},
		{
			name:     "exactly at cutoff",
			gameTime: now.Add(5 * time.Minute),
			placedAt: now.Add(-time.Hour),
			wantErr:  true,
		},
		{
			name:     "game started, fresh bet",
			gameTime: now.Add(-time.Hour),
			placedAt: now.Add(-2 * time.Hour),
			wantErr:  true,
		},
		{
			name:     "game started, stale bet is allowed",
			gameTime: now.Add(-time.Hour),
			placedAt: now.Add(-48 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testGame(tt.gameTime)
			bet := &domain.Bet{ID: 1, GameID: game.ID, PlacedAt: tt.placedAt, Status: domain.BetStatusPending}

			err := validator.ValidateCancellation(game, bet, now)

			if tt.wantErr {
				var vErr *ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.Equal(t, ReasonCancelClosed, vErr.Reason)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
