package betservice

import (
	"fmt"
	"math"
	"time"

	"github.com/mborisov/betpool/internal/domain"
)

// Reason enumerates why a wagering request was rejected. These are
// expected outcomes surfaced to the caller, not failures.
type Reason string

const (
	ReasonInvalidAmount       Reason = "invalid_amount"
	ReasonInsufficientBalance Reason = "insufficient_balance"
	ReasonBettingClosed       Reason = "betting_closed"
	ReasonInvalidTeam         Reason = "invalid_team"
	ReasonDuplicateBet        Reason = "duplicate_bet"
	ReasonCancelClosed        Reason = "cancel_closed"
)

type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func reject(reason Reason, format string, args ...any) *ValidationError {
	return &ValidationError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Validator holds the admission rules for placing and cancelling bets.
// It is pure decision logic: no storage access, no side effects.
type Validator struct {
	minBet      float64
	cutoff      time.Duration
	staleBetAge time.Duration
}

func NewValidator(minBet float64, cutoff, staleBetAge time.Duration) *Validator {
	return &Validator{
		minBet:      minBet,
		cutoff:      cutoff,
		staleBetAge: staleBetAge,
	}
}

// ValidatePlacement runs the admission checks in order and returns the
// first failure: amount, timing, team selection, duplicate.
func (v *Validator) ValidatePlacement(user *domain.User, game *domain.Game, teamPicked string, amount float64, hasPending bool, now time.Time) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return reject(ReasonInvalidAmount, "wager amount must be greater than zero")
	}
	if amount < v.minBet {
		return reject(ReasonInvalidAmount, "minimum bet amount is %.2f", v.minBet)
	}
	if amount > user.Balance {
		return reject(ReasonInsufficientBalance, "insufficient balance: you have %.2f", user.Balance)
	}

	if !game.Bettable(now, v.cutoff) {
		return reject(ReasonBettingClosed, "this game is no longer available for betting")
	}

	if teamPicked != game.HomeTeam && teamPicked != game.AwayTeam {
		return reject(ReasonInvalidTeam, "invalid team selection")
	}

	if hasPending {
		return reject(ReasonDuplicateBet, "you already have a pending bet on this game")
	}

	return nil
}

// ValidateCancellation enforces the self-service cancellation window:
// closed from cutoff before kickoff onward. A pending bet on a game
// that already started is still cancellable when the bet itself is
// older than staleBetAge; such bets are stranded by stale schedule
// data, not late cancellations.
func (v *Validator) ValidateCancellation(game *domain.Game, bet *domain.Bet, now time.Time) error {
	cutoffTime := game.GameTime.Add(-v.cutoff)
	if now.Before(cutoffTime) {
		return nil
	}

	started := !now.Before(game.GameTime)
	if started && now.Sub(bet.PlacedAt) >= v.staleBetAge {
		return nil
	}

	return reject(ReasonCancelClosed, "cannot cancel bets within %d minutes before game start", int(v.cutoff.Minutes()))
}
