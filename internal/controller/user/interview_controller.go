package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/internal/controller"
	"github.com/lshigami/Rehearse/internal/service"
)

type InterviewController struct {
	interviewSvc service.InterviewService
}

func NewInterviewController(interviewSvc service.InterviewService) *InterviewController {
	return &InterviewController{interviewSvc: interviewSvc}
}

// LoadInterview godoc
// @Summary Load the interview view
// @Description Marks the session in progress and returns its first question. question_available is false when the role has no questions.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.InterviewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid session id"
// @Failure 404 {object} dto.ErrorResponse "Session not found (redirect: /setup)"
// @Failure 500 {object} dto.ErrorResponse "Fetch failure (redirect: /setup)"
// @Router /sessions/{session_id}/interview [get]
func (ctrl *InterviewController) LoadInterview(c *gin.Context) {
	resp, err := ctrl.interviewSvc.LoadInterview(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListResponses godoc
// @Summary List recorded answers
// @Description Responses saved for the session, oldest first
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param session_id path string true "Session ID"
// @Success 200 {array} dto.ResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/responses [get]
func (ctrl *InterviewController) ListResponses(c *gin.Context) {
	resp, err := ctrl.interviewSvc.ListResponses(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
