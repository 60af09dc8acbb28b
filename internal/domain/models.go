package domain

import "time"

// Game lifecycle statuses as stored after provider normalization.
const (
	GameStatusScheduled  = "scheduled"
	GameStatusInProgress = "in_progress"
	GameStatusFinal      = "final"
	GameStatusPostponed  = "postponed"
	GameStatusCancelled  = "cancelled"
)

// Bet statuses. Pending is the only non-terminal state.
const (
	BetStatusPending   = "pending"
	BetStatusWon       = "won"
	BetStatusLost      = "lost"
	BetStatusPush      = "push"
	BetStatusCancelled = "cancelled"
)

// Transaction types for the audit trail.
const (
	TxnBetPlaced    = "bet_placed"
	TxnBetWon       = "bet_won"
	TxnBetLost      = "bet_lost"
	TxnBetPush      = "bet_push"
	TxnBetCancelled = "bet_cancelled"
)

type User struct {
	ID              int       `db:"id"`
	ExternalID      string    `db:"external_id"`
	Username        string    `db:"username"`
	Balance         float64   `db:"balance"`
	StartingBalance float64   `db:"starting_balance"`
	TotalWinnings   float64   `db:"total_winnings"`
	TotalLosses     float64   `db:"total_losses"`
	TotalBets       int       `db:"total_bets"`
	WinningBets     int       `db:"winning_bets"`
	LosingBets      int       `db:"losing_bets"`
	BiggestWin      float64   `db:"biggest_win"`
	BiggestLoss     float64   `db:"biggest_loss"`
	IsAdmin         bool      `db:"is_admin"`
	CreatedAt       time.Time `db:"created_at"`
}

type Game struct {
	ID           int        `db:"id"`
	ExternalID   string     `db:"external_id"`
	Week         int        `db:"week"`
	Season       int        `db:"season"`
	HomeTeam     string     `db:"home_team"`
	HomeTeamAbbr string     `db:"home_team_abbr"`
	AwayTeam     string     `db:"away_team"`
	AwayTeamAbbr string     `db:"away_team_abbr"`
	GameTime     time.Time  `db:"game_time"`
	Status       string     `db:"status"`
	HomeScore    int        `db:"home_score"`
	AwayScore    int        `db:"away_score"`
	Winner       *string    `db:"winner"`
	IsTie        bool       `db:"is_tie"`
	TotalBets    int        `db:"total_bets"`
	TotalWagered float64    `db:"total_wagered"`
	HomeBets     int        `db:"home_bets"`
	AwayBets     int        `db:"away_bets"`
	HomeWagered  float64    `db:"home_wagered"`
	AwayWagered  float64    `db:"away_wagered"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// Bettable reports whether the game still accepts wagers at the given
// instant. The window closes cutoff before kickoff, exclusive at the
// boundary: exactly cutoff before start is already closed.
func (g *Game) Bettable(now time.Time, cutoff time.Duration) bool {
	return g.Status == GameStatusScheduled && now.Before(g.GameTime.Add(-cutoff))
}

type Bet struct {
	ID              int        `db:"id"`
	UserID          int        `db:"user_id"`
	GameID          int        `db:"game_id"`
	TeamPicked      string     `db:"team_picked"`
	WagerAmount     float64    `db:"wager_amount"`
	PotentialPayout float64    `db:"potential_payout"`
	ActualPayout    float64    `db:"actual_payout"`
	Status          string     `db:"status"`
	PlacedAt        time.Time  `db:"placed_at"`
	SettledAt       *time.Time `db:"settled_at"`
}

type Transaction struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	Type          string    `db:"type"`
	Amount        float64   `db:"amount"`
	BalanceBefore float64   `db:"balance_before"`
	BalanceAfter  float64   `db:"balance_after"`
	BetID         *int      `db:"bet_id"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}
