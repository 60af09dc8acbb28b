package dto

// SessionRequestDTO carries an already-verified external identity.
type SessionRequestDTO struct {
	ExternalID string `json:"external_id" validate:"required"`
	Username   string `json:"username" validate:"max=80"`
	IsAdmin    bool   `json:"is_admin"`
}

type SessionResponseDTO struct {
	Token    string  `json:"token"`
	UserID   int     `json:"user_id"`
	Username string  `json:"username"`
	Balance  float64 `json:"balance"`
}
