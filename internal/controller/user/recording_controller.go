package user

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/internal/controller"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/service"
	"github.com/rs/zerolog/log"
)

// maxChunkBytes bounds a single uploaded media chunk.
const maxChunkBytes = 16 << 20

type RecordingController struct {
	recordingSvc service.RecordingService
}

func NewRecordingController(recordingSvc service.RecordingService) *RecordingController {
	return &RecordingController{recordingSvc: recordingSvc}
}

// StartRecording godoc
// @Summary Start recording an answer
// @Description Reports the camera/microphone prompt outcome. Denied permission returns 403 and leaves the recorder in permission-denied.
// @Tags Recording
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Param request body dto.StartRecordingRequest true "Question and permission outcome"
// @Success 200 {object} dto.RecordingStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Permission denied"
// @Failure 409 {object} dto.ErrorResponse "Already recording"
// @Router /sessions/{session_id}/recording/start [post]
func (ctrl *RecordingController) StartRecording(c *gin.Context) {
	var req dto.StartRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartRecording: Failed to bind JSON")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	state, err := ctrl.recordingSvc.StartRecording(c.Request.Context(), c.Param("session_id"), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AppendChunk godoc
// @Summary Append a media chunk
// @Description Raw body is one recorder chunk. Empty bodies are accepted and ignored.
// @Tags Recording
// @Accept octet-stream
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.RecordingStateDTO
// @Failure 409 {object} dto.ErrorResponse "Not recording"
// @Failure 413 {object} dto.ErrorResponse "Chunk too large"
// @Router /sessions/{session_id}/recording/chunks [put]
func (ctrl *RecordingController) AppendChunk(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxChunkBytes))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: "Chunk too large", Details: []string{err.Error()}})
		return
	}
	state, err := ctrl.recordingSvc.AppendChunk(c.Request.Context(), c.Param("session_id"), body)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// StopRecording godoc
// @Summary Stop and save the recording
// @Description Uploads the finalized video and records it as the answer. On failure the recording is lost.
// @Tags Recording
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 201 {object} dto.ResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Not recording"
// @Failure 502 {object} dto.ErrorResponse "Upload or save failed"
// @Router /sessions/{session_id}/recording/stop [post]
func (ctrl *RecordingController) StopRecording(c *gin.Context) {
	resp, err := ctrl.recordingSvc.StopRecording(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// DiscardRecording godoc
// @Summary Discard the recording
// @Description Releases the device and drops buffered media without saving
// @Tags Recording
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 204
// @Router /sessions/{session_id}/recording [delete]
func (ctrl *RecordingController) DiscardRecording(c *gin.Context) {
	if err := ctrl.recordingSvc.DiscardRecording(c.Request.Context(), c.Param("session_id")); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordingState godoc
// @Summary Current recorder state
// @Tags Recording
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.RecordingStateDTO
// @Router /sessions/{session_id}/recording [get]
func (ctrl *RecordingController) RecordingState(c *gin.Context) {
	state, err := ctrl.recordingSvc.RecordingState(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
