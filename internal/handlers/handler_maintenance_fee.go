package handlers

import (
	"net/http"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// maintenanceFeeHandler handles HTTP requests for maintenance fees.
type maintenanceFeeHandler struct {
	feeService portssvc.MaintenanceFeeSvcFacade
}

// newMaintenanceFeeHandler creates a new maintenanceFeeHandler.
func newMaintenanceFeeHandler(fs portssvc.MaintenanceFeeSvcFacade) *maintenanceFeeHandler {
	return &maintenanceFeeHandler{
		feeService: fs,
	}
}

// registerMaintenanceFeeRoutes registers fee routes under a condominium group.
func registerMaintenanceFeeRoutes(condominiumGroup *gin.RouterGroup, feeService portssvc.MaintenanceFeeSvcFacade) {
	h := newMaintenanceFeeHandler(feeService)

	fees := condominiumGroup.Group("/maintenance-fees")
	{
		fees.POST("", h.createFee)
		fees.GET("", h.listFees)
		fees.GET("/by-period", h.getFeeForPeriod)
		fees.GET("/:fee_id", h.getFee)
		fees.PUT("/:fee_id", h.updateFee)
		fees.DELETE("/:fee_id", h.deleteFee)
	}
}

// parsePeriod converts a YYYY-MM query value to a statement period.
func parsePeriod(raw string) (domain.StatementPeriod, bool) {
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return domain.StatementPeriod{}, false
	}
	return domain.StatementPeriod{Year: t.Year(), Month: int(t.Month())}, true
}

// createFee godoc
// @Summary Create a maintenance fee
// @Description Creates a maintenance fee for a condominium. Admin only.
// @Tags maintenance-fees
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param fee body dto.CreateMaintenanceFeeRequest true "Fee details"
// @Success 201 {object} dto.MaintenanceFeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/maintenance-fees [post]
func (h *maintenanceFeeHandler) createFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var req dto.CreateMaintenanceFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fee, err := h.feeService.CreateMaintenanceFee(c.Request.Context(), condominiumID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create maintenance fee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaintenanceFeeResponse(fee))
}

// listFees godoc
// @Summary List maintenance fees
// @Description Retrieves a paginated list of maintenance fees for a condominium
// @Tags maintenance-fees
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListMaintenanceFeesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/maintenance-fees [get]
func (h *maintenanceFeeHandler) listFees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var params dto.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fees, err := h.feeService.ListMaintenanceFees(c.Request.Context(), condominiumID, userID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list maintenance fees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMaintenanceFeesResponse(fees))
}

// getFeeForPeriod godoc
// @Summary Resolve the fee billed for a month
// @Description Retrieves the maintenance fee that applies to a calendar month (YYYY-MM)
// @Tags maintenance-fees
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param month query string true "Billing month (YYYY-MM)"
// @Success 200 {object} dto.MaintenanceFeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No fee recorded for the month"
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/maintenance-fees/by-period [get]
func (h *maintenanceFeeHandler) getFeeForPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var params dto.FeePeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	period, ok := parsePeriod(params.Month)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be formatted as YYYY-MM"})
		return
	}

	userID, okUser := middleware.GetUserIDFromContext(c)
	if !okUser {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fee, err := h.feeService.GetFeeForPeriod(c.Request.Context(), condominiumID, userID, period)
	if err != nil {
		respondWithError(c, logger, err, "Failed to resolve fee for period")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceFeeResponse(fee))
}

// getFee godoc
// @Summary Get a maintenance fee
// @Description Retrieves a maintenance fee of a condominium
// @Tags maintenance-fees
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param fee_id path string true "Maintenance fee ID"
// @Success 200 {object} dto.MaintenanceFeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/maintenance-fees/{fee_id} [get]
func (h *maintenanceFeeHandler) getFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	feeID := c.Param("fee_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fee, err := h.feeService.GetMaintenanceFeeByID(c.Request.Context(), condominiumID, feeID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve maintenance fee")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceFeeResponse(fee))
}

// updateFee godoc
// @Summary Update a maintenance fee
// @Description Updates a maintenance fee. Admin only.
// @Tags maintenance-fees
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param fee_id path string true "Maintenance fee ID"
// @Param fee body dto.UpdateMaintenanceFeeRequest true "Fields to update"
// @Success 200 {object} dto.MaintenanceFeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/maintenance-fees/{fee_id} [put]
func (h *maintenanceFeeHandler) updateFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	feeID := c.Param("fee_id")

	var req dto.UpdateMaintenanceFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fee, err := h.feeService.UpdateMaintenanceFee(c.Request.Context(), condominiumID, feeID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update maintenance fee")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceFeeResponse(fee))
}

// deleteFee godoc
// @Summary Delete a maintenance fee
// @Description Soft deletes a maintenance fee. Admin only.
// @Tags maintenance-fees
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param fee_id path string true "Maintenance fee ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/maintenance-fees/{fee_id} [delete]
func (h *maintenanceFeeHandler) deleteFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	feeID := c.Param("fee_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.feeService.DeleteMaintenanceFee(c.Request.Context(), condominiumID, feeID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete maintenance fee")
		return
	}

	c.Status(http.StatusNoContent)
}
