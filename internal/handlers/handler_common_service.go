package handlers

import (
	"net/http"

	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// commonServiceHandler handles HTTP requests for common services.
type commonServiceHandler struct {
	commonServiceService portssvc.CommonServiceSvcFacade
}

// newCommonServiceHandler creates a new commonServiceHandler.
func newCommonServiceHandler(cs portssvc.CommonServiceSvcFacade) *commonServiceHandler {
	return &commonServiceHandler{
		commonServiceService: cs,
	}
}

// registerCommonServiceRoutes registers common service routes under a condominium group.
func registerCommonServiceRoutes(condominiumGroup *gin.RouterGroup, commonServiceService portssvc.CommonServiceSvcFacade) {
	h := newCommonServiceHandler(commonServiceService)

	services := condominiumGroup.Group("/common-services")
	{
		services.POST("", h.createCommonService)
		services.GET("", h.listCommonServices)
		services.GET("/:service_id", h.getCommonService)
		services.PUT("/:service_id", h.updateCommonService)
		services.DELETE("/:service_id", h.deleteCommonService)
	}
}

// createCommonService godoc
// @Summary Create a common service
// @Description Creates a recurring common service for a condominium. Admin only.
// @Tags common-services
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param service body dto.CreateCommonServiceRequest true "Service details"
// @Success 201 {object} dto.CommonServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/common-services [post]
func (h *commonServiceHandler) createCommonService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var req dto.CreateCommonServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	service, err := h.commonServiceService.CreateCommonService(c.Request.Context(), condominiumID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create common service")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommonServiceResponse(service))
}

// listCommonServices godoc
// @Summary List common services
// @Description Retrieves a paginated list of common services for a condominium
// @Tags common-services
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListCommonServicesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/common-services [get]
func (h *commonServiceHandler) listCommonServices(c *gin.Context) {
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

	services, err := h.commonServiceService.ListCommonServices(c.Request.Context(), condominiumID, userID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list common services")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCommonServicesResponse(services))
}

// getCommonService godoc
// @Summary Get a common service
// @Description Retrieves a common service of a condominium
// @Tags common-services
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param service_id path string true "Common service ID"
// @Success 200 {object} dto.CommonServiceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/common-services/{service_id} [get]
func (h *commonServiceHandler) getCommonService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	serviceID := c.Param("service_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	service, err := h.commonServiceService.GetCommonServiceByID(c.Request.Context(), condominiumID, serviceID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve common service")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommonServiceResponse(service))
}

// updateCommonService godoc
// @Summary Update a common service
// @Description Updates a common service. Admin only.
// @Tags common-services
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param service_id path string true "Common service ID"
// @Param service body dto.UpdateCommonServiceRequest true "Fields to update"
// @Success 200 {object} dto.CommonServiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/common-services/{service_id} [put]
func (h *commonServiceHandler) updateCommonService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	serviceID := c.Param("service_id")

	var req dto.UpdateCommonServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	service, err := h.commonServiceService.UpdateCommonService(c.Request.Context(), condominiumID, serviceID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update common service")
		return
	}

	c.JSON(http.StatusOK, dto.ToCommonServiceResponse(service))
}

// deleteCommonService godoc
// @Summary Delete a common service
// @Description Soft deletes a common service. Admin only.
// @Tags common-services
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param service_id path string true "Common service ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/common-services/{service_id} [delete]
func (h *commonServiceHandler) deleteCommonService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	serviceID := c.Param("service_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.commonServiceService.DeleteCommonService(c.Request.Context(), condominiumID, serviceID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete common service")
		return
	}

	c.Status(http.StatusNoContent)
}
