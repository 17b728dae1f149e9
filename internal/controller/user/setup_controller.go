package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/auth"
	"github.com/lshigami/Rehearse/internal/controller"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/service"
	"github.com/rs/zerolog/log"
)

type SetupController struct {
	setupSvc service.SetupService
}

func NewSetupController(setupSvc service.SetupService) *SetupController {
	return &SetupController{setupSvc: setupSvc}
}

// ListCompanies godoc
// @Summary List companies
// @Description All companies a candidate can practice for
// @Tags Setup
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CompanyDTO
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (ctrl *SetupController) ListCompanies(c *gin.Context) {
	companies, err := ctrl.setupSvc.ListCompanies(c.Request.Context())
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ListRoles godoc
// @Summary List roles for a company
// @Description Job roles of the selected company. No selection yields an empty list.
// @Tags Setup
// @Produce json
// @Security BearerAuth
// @Param company_id query string false "Company ID"
// @Success 200 {array} dto.JobRoleDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid company id"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /roles [get]
func (ctrl *SetupController) ListRoles(c *gin.Context) {
	companyID := c.Param("company_id")
	if companyID == "" {
		companyID = c.Query("company_id")
	}
	roles, err := ctrl.setupSvc.ListRoles(c.Request.Context(), companyID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// StartSession godoc
// @Summary Start an interview session
// @Description Creates a pending session for the selected role and returns the interview route
// @Tags Setup
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param session body dto.StartSessionRequest true "Selected role"
// @Success 201 {object} dto.StartSessionResponse
// @Failure 400 {object} dto.ErrorResponse "No role selected"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 502 {object} dto.ErrorResponse "Session could not be saved"
// @Router /sessions [post]
func (ctrl *SetupController) StartSession(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("StartSession: Failed to bind JSON")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, ok := auth.UserID(c)
	if !ok {
		controller.RespondError(c, apperr.New(apperr.KindUnauthorized, "Authentication required").WithRedirect(auth.AuthRoute))
		return
	}

	resp, err := ctrl.setupSvc.StartSession(c.Request.Context(), userID, req.RoleID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
