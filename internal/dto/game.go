package dto

import "time"

type GameResponseDTO struct {
	ID           int       `json:"id"`
	Week         int       `json:"week"`
	Season       int       `json:"season"`
	HomeTeam     string    `json:"home_team"`
	HomeTeamAbbr string    `json:"home_team_abbr"`
	AwayTeam     string    `json:"away_team"`
	AwayTeamAbbr string    `json:"away_team_abbr"`
	GameTime     time.Time `json:"game_time"`
	Status       string    `json:"status"`
	HomeScore    int       `json:"home_score"`
	AwayScore    int       `json:"away_score"`
	Winner       *string   `json:"winner,omitempty"`
	IsTie        bool      `json:"is_tie"`
	TotalBets    int       `json:"total_bets"`
	TotalWagered float64   `json:"total_wagered"`
}
