package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionDTO struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	QuestionType string    `json:"question_type"`
	RoleID       uuid.UUID `json:"role_id"`
}

// InterviewDTO is what the interview view loads. Question is nil when the role has none.
type InterviewDTO struct {
	Session           SessionDTO   `json:"session"`
	Question          *QuestionDTO `json:"question"`
	QuestionAvailable bool         `json:"question_available"`
}

type ResponseDTO struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	QuestionID uuid.UUID `json:"question_id"`
	VideoURL   string    `json:"video_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// StartRecordingRequest reports the outcome of the browser's camera/microphone prompt.
type StartRecordingRequest struct {
	QuestionID string `json:"question_id" binding:"required,uuid"`
	Permission string `json:"permission" binding:"required,oneof=granted denied"`
}

type RecordingStateDTO struct {
	SessionID     uuid.UUID `json:"session_id"`
	State         string    `json:"state"`
	BufferedBytes int       `json:"buffered_bytes"`
	Chunks        int       `json:"chunks"`
}
