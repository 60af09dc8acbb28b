package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mborisov/betpool/internal/dto"
	"github.com/mborisov/betpool/internal/scheduler"
	"github.com/mborisov/betpool/internal/scores"
	"github.com/mborisov/betpool/internal/service/betservice"
	"github.com/mborisov/betpool/internal/service/settlementservice"
	"github.com/mborisov/betpool/pkg/utils"
)

type SyncService interface {
	Sync(ctx context.Context) (*scores.Result, error)
	SyncSeason(ctx context.Context, year int, weeks []int) (*scores.SeasonResult, error)
}

type SettlementService interface {
	SettleDueGames(ctx context.Context) (*settlementservice.PassResult, error)
}

type BetService interface {
	CancelAny(ctx context.Context, betID int) error
}

// BoardInvalidator drops the cached games board after a sync pass.
type BoardInvalidator interface {
	InvalidateBoard(ctx context.Context)
}

type JobLister interface {
	List() []scheduler.JobInfo
}

type AdminHandler struct {
	syncService       SyncService
	settlementService SettlementService
	betService        BetService
	board             BoardInvalidator
	jobs              JobLister
}

func New(syncService SyncService, settlementService SettlementService, betService BetService, board BoardInvalidator, jobs JobLister) *AdminHandler {
	return &AdminHandler{
		syncService:       syncService,
		settlementService: settlementService,
		betService:        betService,
		board:             board,
		jobs:              jobs,
	}
}

// Sync godoc
//
//	@Summary		Run a scoreboard sync now
//	@Description	Fetch the current scoreboard and upsert every game
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SyncResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		502	{object}	utils.Response	"Scoreboard provider unavailable"
//	@Router			/api/admin/sync [post]
func (h *AdminHandler) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.syncService.Sync(r.Context())
	if err != nil {
		var extErr *scores.ExternalServiceError
		if errors.As(err, &extErr) {
			utils.RespondWithError(w, http.StatusBadGateway, extErr.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.board.InvalidateBoard(r.Context())

	utils.RespondWithJSON(w, http.StatusOK, dto.SyncResponseDTO{
		Processed: result.Processed,
		Created:   result.Created,
		Updated:   result.Updated,
	})
}

// SyncSeason godoc
//
//	@Summary		Backfill a season's schedule
//	@Description	Fetch the scoreboard week by week for a season, collecting per-week errors
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.SeasonSyncRequestDTO	false	"Season and weeks to fetch"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SeasonSyncResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/sync/season [post]
func (h *AdminHandler) SyncSeason(w http.ResponseWriter, r *http.Request) {
	var req dto.SeasonSyncRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	result, err := h.syncService.SyncSeason(r.Context(), req.Year, req.Weeks)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.board.InvalidateBoard(r.Context())

	resp := dto.SeasonSyncResponseDTO{
		SyncResponseDTO: dto.SyncResponseDTO{
			Processed: result.Processed,
			Created:   result.Created,
			Updated:   result.Updated,
		},
		WeeksFetched: result.WeeksFetched,
	}
	for _, weekErr := range result.Errors {
		resp.Errors = append(resp.Errors, dto.WeekErrorDTO{Week: weekErr.Week, Error: weekErr.Error})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Settle godoc
//
//	@Summary		Run a settlement pass now
//	@Description	Settle every pending bet on finalized games
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SettleResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/settle [post]
func (h *AdminHandler) Settle(w http.ResponseWriter, r *http.Request) {
	result, err := h.settlementService.SettleDueGames(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := dto.SettleResponseDTO{
		GamesProcessed: result.GamesProcessed,
		BetsSettled:    result.BetsSettled,
	}
	for _, betErr := range result.Errors {
		resp.Errors = append(resp.Errors, dto.BetErrorDTO{BetID: betErr.BetID, Error: betErr.Error})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CancelBet godoc
//
//	@Summary		Cancel any pending bet
//	@Description	Cancel a pending bet regardless of owner or timing and refund the stake
//	@Tags			Admin
//	@Produce		json
//	@Param			betID	path	int	true	"Bet ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CancelBetResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Bet not found"
//	@Failure		409	{object}	utils.Response	"Bet already settled or cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/bets/{betID}/cancel [post]
func (h *AdminHandler) CancelBet(w http.ResponseWriter, r *http.Request) {
	betID, err := strconv.Atoi(chi.URLParam(r, "betID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid bet id")
		return
	}

	if err := h.betService.CancelAny(r.Context(), betID); err != nil {
		switch {
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

// Jobs godoc
//
//	@Summary		List scheduled jobs
//	@Description	Return every registered background job and whether it is currently running
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.JobInfoDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Router			/api/admin/jobs [get]
func (h *AdminHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.jobs.List()

	resp := make([]dto.JobInfoDTO, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, dto.JobInfoDTO{ID: j.ID, Interval: j.Interval, Running: j.Running})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
