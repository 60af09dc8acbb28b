package dto

import "time"

type ProfileResponseDTO struct {
	UserID          int     `json:"user_id"`
	Username        string  `json:"username"`
	Balance         float64 `json:"balance"`
	StartingBalance float64 `json:"starting_balance"`
	TotalBets       int     `json:"total_bets"`
	WinningBets     int     `json:"winning_bets"`
	LosingBets      int     `json:"losing_bets"`
	TotalWinnings   float64 `json:"total_winnings"`
	TotalLosses     float64 `json:"total_losses"`
	BiggestWin      float64 `json:"biggest_win"`
	BiggestLoss     float64 `json:"biggest_loss"`
}

type TransactionResponseDTO struct {
	ID            int       `json:"id"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	BalanceBefore float64   `json:"balance_before"`
	BalanceAfter  float64   `json:"balance_after"`
	BetID         *int      `json:"bet_id,omitempty"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
