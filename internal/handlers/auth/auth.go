package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/dto"
	"github.com/mborisov/betpool/pkg/utils"
)

type Service interface {
	Session(ctx context.Context, externalID, username string) (*domain.User, error)
	GenerateToken(userID int, isAdmin bool) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Session godoc
//
//	@Summary		Open a session for a verified identity
//	@Description	Create or look up the account behind an externally verified identity and return a bearer token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SessionRequestDTO	true	"Verified identity"
//	@Success		200		{object}	dto.SessionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/session [post]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionRequestDTO
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ExternalID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "external_id is required")
		return
	}

	user, err := h.authService.Session(r.Context(), req.ExternalID, req.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	isAdmin := req.IsAdmin || user.IsAdmin
	token, err := h.authService.GenerateToken(user.ID, isAdmin)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionResponseDTO{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Balance:  user.Balance,
	})
}
