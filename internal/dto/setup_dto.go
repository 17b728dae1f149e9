package dto

import (
	"time"

	"github.com/google/uuid"
)

type CompanyDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Industry  string    `json:"industry"`
	CreatedAt time.Time `json:"created_at"`
}

type JobRoleDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CompanyID uuid.UUID `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
}

// StartSessionRequest carries the selected role. RoleID is validated in the service so an
// empty selection is rejected before any store call.
type StartSessionRequest struct {
	RoleID string `json:"role_id"`
}

type SessionDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RoleID    uuid.UUID `json:"role_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StartSessionResponse is returned after a session is created; Next is the interview view route.
type StartSessionResponse struct {
	Session SessionDTO `json:"session"`
	Next    string     `json:"next"`
}
