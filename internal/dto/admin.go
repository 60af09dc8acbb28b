package dto

import "time"

type SeasonSyncRequestDTO struct {
	Year  int   `json:"year"`
	Weeks []int `json:"weeks"`
}

type SyncResponseDTO struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
}

type WeekErrorDTO struct {
	Week  int    `json:"week"`
	Error string `json:"error"`
}

type SeasonSyncResponseDTO struct {
	SyncResponseDTO
	WeeksFetched int            `json:"weeks_fetched"`
	Errors       []WeekErrorDTO `json:"errors,omitempty"`
}

type BetErrorDTO struct {
	BetID int    `json:"bet_id"`
	Error string `json:"error"`
}

type SettleResponseDTO struct {
	GamesProcessed int           `json:"games_processed"`
	BetsSettled    int           `json:"bets_settled"`
	Errors         []BetErrorDTO `json:"errors,omitempty"`
}

type JobInfoDTO struct {
	ID       string        `json:"id"`
	Interval time.Duration `json:"interval"`
	Running  bool          `json:"running"`
}
