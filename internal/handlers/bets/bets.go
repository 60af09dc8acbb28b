package bets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/dto"
	"github.com/mborisov/betpool/internal/service/betservice"
	"github.com/mborisov/betpool/pkg/auth"
	"github.com/mborisov/betpool/pkg/utils"
)

//go:generate mockgen -source=bets.go -destination=bets_mock.go -package=bets

type Service interface {
	Place(ctx context.Context, userID, gameID int, teamPicked string, amount float64) (*domain.Bet, error)
	Cancel(ctx context.Context, userID, betID int) error
	ListByUser(ctx context.Context, userID int) ([]domain.Bet, error)
}

type BetHandler struct {
	betService Service
}

func New(betService Service) *BetHandler {
	return &BetHandler{
		betService: betService,
	}
}

func toBetDTO(bet *domain.Bet) dto.BetResponseDTO {
	return dto.BetResponseDTO{
		ID:              bet.ID,
		GameID:          bet.GameID,
		TeamPicked:      bet.TeamPicked,
		WagerAmount:     bet.WagerAmount,
		PotentialPayout: bet.PotentialPayout,
		ActualPayout:    bet.ActualPayout,
		Status:          bet.Status,
		PlacedAt:        bet.PlacedAt,
		SettledAt:       bet.SettledAt,
	}
}

// PlaceBet godoc
//
//	@Summary		Place a bet
//	@Description	Wager play money on one team of an upcoming game
//	@Tags			Bets
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.PlaceBetRequestDTO	true	"Bet to place"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.BetResponseDTO
//	@Failure		400	{object}	utils.Response	"Validation failed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Game not found"
//	@Failure		409	{object}	utils.Response	"Pending bet already exists for this game"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [post]
func (h *BetHandler) PlaceBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PlaceBetRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bet, err := h.betService.Place(r.Context(), userID, req.GameID, req.TeamPicked, req.Amount)
	if err != nil {
		var vErr *betservice.ValidationError
		switch {
		case errors.As(err, &vErr):
			if vErr.Reason == betservice.ReasonDuplicateBet {
				utils.RespondWithError(w, http.StatusConflict, vErr.Message)
				return
			}
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, betservice.ErrGameNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, betservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBetDTO(bet))
}

// GetBets godoc
//
//	@Summary		List the caller's bets
//	@Description	Return all bets placed by the authorized user, newest first
//	@Tags			Bets
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.BetResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets [get]
func (h *BetHandler) GetBets(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	bets, err := h.betService.ListByUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.BetResponseDTO, 0, len(bets))
	for i := range bets {
		resp = append(resp, toBetDTO(&bets[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CancelBet godoc
//
//	@Summary		Cancel a pending bet
//	@Description	Cancel the caller's pending bet and refund the stake while the betting window is open
//	@Tags			Bets
//	@Produce		json
//	@Param			betID	path	int	true	"Bet ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CancelBetResponseDTO
//	@Failure		400	{object}	utils.Response	"Cancellation window closed"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Bet not found"
//	@Failure		409	{object}	utils.Response	"Bet already settled or cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bets/{betID}/cancel [post]
func (h *BetHandler) CancelBet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	betID, err := strconv.Atoi(chi.URLParam(r, "betID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}

	if err := h.betService.Cancel(r.Context(), userID, betID); err != nil {
		var vErr *betservice.ValidationError
		switch {
		case errors.As(err, &vErr):
			utils.RespondWithError(w, http.StatusBadRequest, vErr.Message)
		case errors.Is(err, betservice.ErrBetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, betservice.ErrBetNotPending):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CancelBetResponseDTO{
		Message: "Bet cancelled and stake refunded",
	})
}
