package dto

import "time"

type PlaceBetRequestDTO struct {
	GameID     int     `json:"game_id" validate:"required"`
	TeamPicked string  `json:"team_picked" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

type BetResponseDTO struct {
	ID              int        `json:"id"`
	GameID          int        `json:"game_id"`
	TeamPicked      string     `json:"team_picked"`
	WagerAmount     float64    `json:"wager_amount"`
	PotentialPayout float64    `json:"potential_payout"`
	ActualPayout    float64    `json:"actual_payout"`
	Status          string     `json:"status"`
	PlacedAt        time.Time  `json:"placed_at"`
	SettledAt       *time.Time `json:"settled_at,omitempty"`
}

type CancelBetResponseDTO struct {
	Message string `json:"message"`
}
