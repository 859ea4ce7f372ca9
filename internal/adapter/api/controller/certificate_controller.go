package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/driversed/driversed-api/internal/adapter/api/dto"
	"github.com/driversed/driversed-api/internal/config"
	"github.com/driversed/driversed-api/internal/domain/certificate"
	"github.com/driversed/driversed-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// CertificateController handles the certificate lifecycle requests
type CertificateController struct {
	certificateRepo certificate.Repository
	config          *config.Config
	logger          logger.Logger
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateRepo certificate.Repository, cfg *config.Config, logger logger.Logger) *CertificateController {
	return &CertificateController{
		certificateRepo: certificateRepo,
		config:          cfg,
		logger:          logger,
	}
}

// @Summary Issue certificate
// @Description Issues a new driver-training certificate
// @Tags Certificates
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param certificate body dto.CertificateRequest true "Certificate data"
// @Success 201 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates [post]
func (c *CertificateController) Create(ctx *gin.Context) {
	var req dto.CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	now := time.Now()
	cert, err := certificate.NewCertificate(certificate.CreateInput{
		Name:            req.Name,
		Surname:         req.Surname,
		City:            req.City,
		Marks:           req.Marks,
		Instructor:      req.Instructor,
		CertificateType: req.CertificateType,
		ExpiryDate:      req.ExpiryDate,
	}, c.config.Defaults(), now)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to issue certificate", err.Error()))
		return
	}

	if err := c.certificateRepo.Create(ctx.Request.Context(), cert); err != nil {
		c.logger.Error("failed to save certificate", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to save certificate", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCertificateResponse(cert, now))
}

// @Summary List certificates
// @Description Lists certificates, newest first, with pagination
// @Tags Certificates
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.CertificateListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	certs, err := c.certificateRepo.List(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("failed to list certificates", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to list certificates", err.Error()))
		return
	}

	total, err := c.certificateRepo.Count(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to count certificates", "error", err.Error())
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "failed to count certificates", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateListResponse(certs, total, pagination.Page, pagination.PageSize, time.Now()))
}

// @Summary Get certificate
// @Description Fetches a certificate by id
// @Tags Certificates
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.CertificateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id} [get]
func (c *CertificateController) Get(ctx *gin.Context) {
	cert, err := c.certificateRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateResponse(cert, time.Now()))
}

// @Summary Verify certificate
// @Description Public verification view of a certificate and its validity state
// @Tags Certificates
// @Produce json
// @Param id path string true "Certificate id or certificate number"
// @Success 200 {object} dto.CertificateResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/verify/{id} [get]
func (c *CertificateController) Verify(ctx *gin.Context) {
	id := ctx.Param("id")

	cert, err := c.certificateRepo.FindByID(ctx.Request.Context(), id)
	if errors.Is(err, certificate.ErrNotFound) {
		// Verification links may carry the human-facing number instead
		cert, err = c.certificateRepo.FindByNumber(ctx.Request.Context(), id)
	}
	if err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateResponse(cert, time.Now()))
}

// @Summary Update certificate
// @Description Applies a partial update to a certificate
// @Tags Certificates
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Certificate id"
// @Param certificate body dto.CertificateUpdateRequest true "Fields to update"
// @Success 200 {object} dto.CertificateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id} [put]
func (c *CertificateController) Update(ctx *gin.Context) {
	var req dto.CertificateUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "invalid request", err.Error()))
		return
	}

	cert, err := c.certificateRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	now := time.Now()
	if err := cert.ApplyUpdate(req.ToInput(), now); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "failed to update certificate", err.Error()))
		return
	}

	if err := c.certificateRepo.Update(ctx.Request.Context(), cert); err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateResponse(cert, now))
}

// @Summary Delete certificate
// @Description Permanently removes a certificate
// @Tags Certificates
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id} [delete]
func (c *CertificateController) Delete(ctx *gin.Context) {
	if err := c.certificateRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("certificate deleted successfully", nil))
}

// @Summary Revoke certificate
// @Description Manually invalidates a certificate regardless of its expiry date
// @Tags Certificates
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.CertificateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id}/revoke [post]
func (c *CertificateController) Revoke(ctx *gin.Context) {
	c.setValidity(ctx, false)
}

// @Summary Reinstate certificate
// @Description Clears a manual invalidation; date-based expiry still applies
// @Tags Certificates
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Certificate id"
// @Success 200 {object} dto.CertificateResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /certificates/{id}/reinstate [post]
func (c *CertificateController) Reinstate(ctx *gin.Context) {
	c.setValidity(ctx, true)
}

func (c *CertificateController) setValidity(ctx *gin.Context, valid bool) {
	cert, err := c.certificateRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	now := time.Now()
	if valid {
		cert.Reinstate(now)
	} else {
		cert.Revoke(now)
	}

	if err := c.certificateRepo.Update(ctx.Request.Context(), cert); err != nil {
		c.respondFetchError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewCertificateResponse(cert, now))
}

// respondFetchError maps repository failures onto the API error taxonomy:
// a missing record is a 404, everything else surfaces as a store failure.
func (c *CertificateController) respondFetchError(ctx *gin.Context, err error) {
	if errors.Is(err, certificate.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "certificate not found", err.Error()))
		return
	}

	c.logger.Error("certificate store operation failed", "error", err.Error())
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "store operation failed", err.Error()))
}
