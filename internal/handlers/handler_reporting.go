package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
	"github.com/jdvries-dev/boekhoud_app/internal/middleware"
)

// reportingHandler handles HTTP requests for the reporting surfaces: the
// quarterly BTW return, the cumulative balance position and the fiscal-year
// audit file.
type reportingHandler struct {
	ledgerService    portssvc.LedgerReportingSvc
	btwService       portssvc.BtwSvc
	auditfileService portssvc.AuditfileSvc
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(ls portssvc.LedgerReportingSvc, bs portssvc.BtwSvc, as portssvc.AuditfileSvc) *reportingHandler {
	return &reportingHandler{
		ledgerService:    ls,
		btwService:       bs,
		auditfileService: as,
	}
}

// registerReportingRoutes registers routes related to financial reports.
func registerReportingRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReportingSvc, btwService portssvc.BtwSvc, auditfileService portssvc.AuditfileSvc) {
	h := newReportingHandler(ledgerService, btwService, auditfileService)

	reports := rg.Group("/reports")
	{
		reports.GET("/btw", h.getBtwReport)
		reports.GET("/balance", h.getBalancePosition)
		reports.GET("/auditfile", h.getAuditfile)
	}
}

// getBtwReport godoc
// @Summary Calculate the quarterly BTW return
// @Description Computes the BTW (Dutch VAT) figures for a calendar quarter from the invoice administration
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param year query int true "Calendar year"
// @Param quarter query int true "Quarter (1-4)"
// @Success 200 {object} dto.BtwReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (token scoped to another company)"
// @Failure 500 {object} map[string]string "Failed to calculate BTW return"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/btw [get]
func (h *reportingHandler) getBtwReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'year' must be a number"})
		return
	}
	quarter, err := strconv.Atoi(c.Query("quarter"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'quarter' must be a number"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.Int("year", year), slog.Int("quarter", quarter))
	logger.Info("Received request for BTW report")

	calc, err := h.btwService.CalculateQuarter(c.Request.Context(), companyID, year, quarter)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid BTW report request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to calculate BTW return", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate BTW return"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBtwReportResponse(calc))
}

// getBalancePosition godoc
// @Summary Get the cumulative balance position
// @Description Computes the balance-sheet position over all final journal lines through the given date
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param asOf query string false "Cutoff date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalancePositionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (token scoped to another company)"
// @Failure 500 {object} map[string]string "Failed to compute balance position"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/balance [get]
func (h *reportingHandler) getBalancePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	asOfStr := c.DefaultQuery("asOf", time.Now().Format("2006-01-02"))
	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		logger.Warn("Invalid asOf date format", slog.String("asOf", asOfStr))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.String("as_of", asOfStr))
	logger.Info("Received request for balance position")

	position, err := h.ledgerService.BalancePosition(c.Request.Context(), companyID, asOf)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Balance position references unknown account", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to compute balance position", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance position"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.BalancePositionResponse{
		AsOf:               asOfStr,
		TotalAssets:        position.TotalAssets,
		TotalLiabilities:   position.TotalLiabilities,
		Equity:             position.Equity,
		PrivateWithdrawals: position.PrivateWithdrawals,
		PrivateDeposits:    position.PrivateDeposits,
	})
}

// getAuditfile godoc
// @Summary Export the fiscal-year audit file
// @Description Serializes a full fiscal year into the statutory audit file and returns it as an XML download
// @Tags reports
// @Produce application/xml
// @Param company_id path string true "Company ID"
// @Param year query int true "Fiscal year"
// @Success 200 {string} string "XML audit file"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (token scoped to another company)"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to export audit file"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/auditfile [get]
func (h *reportingHandler) getAuditfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'year' must be a number"})
		return
	}

	logger = logger.With(slog.String("company_id", companyID), slog.Int("year", year))
	logger.Info("Received request for audit file export")

	document, filename, err := h.auditfileService.ExportYear(c.Request.Context(), companyID, year)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Audit file export failed on missing data", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to export audit file", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export audit file"})
		}
		return
	}

	logger.Info("Audit file exported", slog.String("filename", filename), slog.Int("size_bytes", len(document)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/xml; charset=utf-8", document)
}
