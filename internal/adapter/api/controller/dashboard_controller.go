package controller

import (
	"net/http"
	"time"

	"github.com/driversed/driversed-api/internal/adapter/api/dto"
	"github.com/driversed/driversed-api/internal/config"
	"github.com/driversed/driversed-api/internal/domain/certificate"
	"github.com/driversed/driversed-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// DashboardController serves the dashboard summary figures
type DashboardController struct {
	certificateRepo certificate.Repository
	config          *config.Config
	logger          logger.Logger
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(certificateRepo certificate.Repository, cfg *config.Config, logger logger.Logger) *DashboardController {
	return &DashboardController{
		certificateRepo: certificateRepo,
		config:          cfg,
		logger:          logger,
	}
}

// @Summary Dashboard stats
// @Description Returns the certificate totals, average score, expiring-soon count, monthly histogram and recent certificates
// @Tags Dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	certs, err := c.certificateRepo.ListAll(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load certificates for stats", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to build stats", err.Error()))
		return
	}

	now := time.Now()
	stats := certificate.BuildStats(certs, now, c.config.StatsOptions())

	ctx.JSON(http.StatusOK, dto.NewDashboardStatsResponse(stats, now))
}
