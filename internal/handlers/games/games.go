package games

import (
	"context"
	"net/http"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/dto"
	"github.com/mborisov/betpool/pkg/utils"
)

type Service interface {
	Upcoming(ctx context.Context) ([]domain.Game, error)
}

type GameHandler struct {
	gameService Service
}

func New(gameService Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// GetUpcoming godoc
//
//	@Summary		List upcoming games
//	@Description	Return scheduled games still open for betting, soonest first
//	@Tags			Games
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GameResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/games/upcoming [get]
func (h *GameHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.Upcoming(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.GameResponseDTO, 0, len(games))
	for _, g := range games {
		resp = append(resp, dto.GameResponseDTO{
			ID:           g.ID,
			Week:         g.Week,
			Season:       g.Season,
			HomeTeam:     g.HomeTeam,
			HomeTeamAbbr: g.HomeTeamAbbr,
			AwayTeam:     g.AwayTeam,
			AwayTeamAbbr: g.AwayTeamAbbr,
			GameTime:     g.GameTime,
			Status:       g.Status,
			HomeScore:    g.HomeScore,
			AwayScore:    g.AwayScore,
			Winner:       g.Winner,
			IsTie:        g.IsTie,
			TotalBets:    g.TotalBets,
			TotalWagered: g.TotalWagered,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
