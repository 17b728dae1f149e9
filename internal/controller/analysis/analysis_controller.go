package analysis

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/internal/controller"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/service"
	"github.com/rs/zerolog/log"
)

// AllowedHeaders are the request headers the analyze endpoint accepts cross-origin.
var AllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

type AnalysisController struct {
	analysisSvc service.AnalysisService
}

func NewAnalysisController(analysisSvc service.AnalysisService) *AnalysisController {
	return &AnalysisController{analysisSvc: analysisSvc}
}

// CORS marks every response of the analyze endpoint as readable from any origin.
func CORS() gin.HandlerFunc {
	headers := strings.Join(AllowedHeaders, ", ")
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", headers)
		c.Next()
	}
}

// Preflight answers the browser's OPTIONS request.
func (ctrl *AnalysisController) Preflight(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// AnalyzeResponse godoc
// @Summary Analyze a recorded answer
// @Description Critiques the transcript and the speaker's expressions with two concurrent LLM calls and derives confidence, clarity and content scores. Any failure, including a malformed body, is a 500.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Transcript and video URL"
// @Success 200 {object} dto.AnalysisResult
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze-response [post]
func (ctrl *AnalysisController) AnalyzeResponse(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("AnalyzeResponse: Failed to bind JSON")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := ctrl.analysisSvc.AnalyzeResponse(c.Request.Context(), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
