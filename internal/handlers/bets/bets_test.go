package bets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mborisov/betpool/internal/domain"
	"github.com/mborisov/betpool/internal/dto"
	"github.com/mborisov/betpool/internal/service/betservice"
	"github.com/mborisov/betpool/pkg/auth"
)

func NewMock(t *testing.T) (*BetHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewReader(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func withBetID(r *http.Request, betID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("betID", betID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPlaceBetHandler(t *testing.T) {
	handler, service := NewMock(t)
	placedAt := time.Now()

	validBody, _ := json.Marshal(dto.PlaceBetRequestDTO{
		GameID:     10,
		TeamPicked: "Kansas City Chiefs",
		Amount:     100,
	})

	tests := []struct {
		name          string
		body          []byte
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful bet placement",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Place(gomock.Any(), 1, 10, "Kansas City Chiefs", 100.0).
					Return(&domain.Bet{
						ID:              5,
						UserID:          1,
						GameID:          10,
						TeamPicked:      "Kansas City Chiefs",
						WagerAmount:     100,
						PotentialPayout: 200,
						Status:          domain.BetStatusPending,
						PlacedAt:        placedAt,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          []byte("{not json"),
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Betting window closed",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Place(gomock.Any(), 1, 10, "Kansas City Chiefs", 100.0).
					Return(nil, &betservice.ValidationError{
						Reason:  betservice.ReasonBettingClosed,
						Message: "this game is no longer available for betting",
					})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "no longer available",
		},
		{
			name: "Duplicate pending bet",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Place(gomock.Any(), 1, 10, "Kansas City Chiefs", 100.0).
					Return(nil, &betservice.ValidationError{
						Reason:  betservice.ReasonDuplicateBet,
						Message: "you already have a pending bet on this game",
					})
			},
			expectedCode:  http.StatusConflict,
			expectedError: "pending bet",
		},
		{
			name: "Game not found",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Place(gomock.Any(), 1, 10, "Kansas City Chiefs", 100.0).
					Return(nil, betservice.ErrGameNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "game not found",
		},
		{
			name: "Internal server error",
			body: validBody,
			prepareMock: func() {
				service.EXPECT().
					Place(gomock.Any(), 1, 10, "Kansas City Chiefs", 100.0).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/bets", tt.body)
			w := httptest.NewRecorder()

			handler.PlaceBet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusCreated {
				var body dto.BetResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.ID)
				assert.Equal(t, "Kansas City Chiefs", body.TeamPicked)
				assert.Equal(t, 200.0, body.PotentialPayout)
			}
		})
	}
}

func TestGetBetsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Successful bet retrieval",
			prepareMock: func() {
				service.EXPECT().
					ListByUser(gomock.Any(), 1).
					Return([]domain.Bet{
						{ID: 5, UserID: 1, GameID: 10, TeamPicked: "Kansas City Chiefs", Status: domain.BetStatusPending},
						{ID: 4, UserID: 1, GameID: 9, TeamPicked: "Buffalo Bills", Status: domain.BetStatusWon},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No bets placed yet",
			prepareMock: func() {
				service.EXPECT().
					ListByUser(gomock.Any(), 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					ListByUser(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, "/api/bets", nil)
			w := httptest.NewRecorder()

			handler.GetBets(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.BetResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestCancelBetHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		betID         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Successful cancellation",
			betID: "5",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 5).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid bet id",
			betID:         "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid bet id",
		},
		{
			name:  "Cancellation window closed",
			betID: "5",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 5).
					Return(&betservice.ValidationError{
						Reason:  betservice.ReasonCancelClosed,
						Message: "cannot cancel bets within 15 minutes before game start",
					})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "cannot cancel",
		},
		{
			name:  "Bet not found",
			betID: "99",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 99).
					Return(betservice.ErrBetNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "bet not found",
		},
		{
			name:  "Bet already settled",
			betID: "5",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 5).
					Return(betservice.ErrBetNotPending)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "not pending",
		},
		{
			name:  "Internal server error",
			betID: "5",
			prepareMock: func() {
				service.EXPECT().
					Cancel(gomock.Any(), 1, 5).
					Return(errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := withBetID(authedRequest(http.MethodPost, "/api/bets/"+tt.betID+"/cancel", nil), tt.betID)
			w := httptest.NewRecorder()

			handler.CancelBet(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, w.Body.String(), "cancelled")
			}
		})
	}
}
