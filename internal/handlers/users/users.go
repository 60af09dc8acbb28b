package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/dto"
	"github.com/mborisov/betpool/internal/service/userservice"
	"github.com/mborisov/betpool/pkg/auth"
	"github.com/mborisov/betpool/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID int) (*domain.User, error)
	Transactions(ctx context.Context, userID, limit int) ([]domain.Transaction, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetBalance godoc
//
//	@Summary		Get balance and wagering stats
//	@Description	Return the authorized user's balance and lifetime statistics
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *UserHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		UserID:          user.ID,
		Username:        user.Username,
		Balance:         user.Balance,
		StartingBalance: user.StartingBalance,
		TotalBets:       user.TotalBets,
		WinningBets:     user.WinningBets,
		LosingBets:      user.LosingBets,
		TotalWinnings:   user.TotalWinnings,
		TotalLosses:     user.TotalLosses,
		BiggestWin:      user.BiggestWin,
		BiggestLoss:     user.BiggestLoss,
	})
}

// GetTransactions godoc
//
//	@Summary		List ledger entries
//	@Description	Return the authorized user's transactions, newest first
//	@Tags			Users
//	@Produce		json
//	@Param			limit	query	int	false	"Maximum entries to return"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.TransactionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *UserHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	txns, err := h.userService.Transactions(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]dto.TransactionResponseDTO, 0, len(txns))
	for _, txn := range txns {
		resp = append(resp, dto.TransactionResponseDTO{
			ID:            txn.ID,
			Type:          txn.Type,
			Amount:        txn.Amount,
			BalanceBefore: txn.BalanceBefore,
			BalanceAfter:  txn.BalanceAfter,
			BetID:         txn.BetID,
			Description:   txn.Description,
			CreatedAt:     txn.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
