package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/auth"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// RespondError writes err as a dto.ErrorResponse with the status its kind maps to.
func RespondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	resp := dto.ErrorResponse{Error: err.Error()}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
		resp.Redirect = appErr.Redirect
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request failed")
	} else {
		log.Warn().Err(err).Str("path", c.FullPath()).Int("status", status).Msg("Request rejected")
	}
	c.JSON(status, resp)
}

type Controller struct {
	landingSvc service.LandingService
	db         *gorm.DB
}

func NewController(landingSvc service.LandingService, db *gorm.DB) *Controller {
	return &Controller{landingSvc: landingSvc, db: db}
}

// LandingHandler godoc
// @Summary Landing page content
// @Description Feature list plus where the client should go next (/setup when signed in, /auth otherwise)
// @Tags landing
// @Produce json
// @Param Authorization header string false "Bearer session token"
// @Success 200 {object} dto.LandingDTO
// @Router / [get]
func (ctrl *Controller) LandingHandler(c *gin.Context) {
	_, signedIn := auth.UserID(c)
	c.JSON(http.StatusOK, ctrl.landingSvc.Landing(signedIn))
}

// HealthHandler godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} dto.ErrorResponse
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	if ctrl.db != nil {
		sqlDB, err := ctrl.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Error().Err(err).Msg("Health check: database unreachable")
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
