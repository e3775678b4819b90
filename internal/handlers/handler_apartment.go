package handlers

import (
	"net/http"

	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// apartmentHandler handles HTTP requests for apartments within a condominium.
type apartmentHandler struct {
	apartmentService portssvc.ApartmentSvcFacade
}

// newApartmentHandler creates a new apartmentHandler.
func newApartmentHandler(as portssvc.ApartmentSvcFacade) *apartmentHandler {
	return &apartmentHandler{
		apartmentService: as,
	}
}

// registerApartmentRoutes registers apartment routes under a condominium group.
func registerApartmentRoutes(condominiumGroup *gin.RouterGroup, apartmentService portssvc.ApartmentSvcFacade) {
	h := newApartmentHandler(apartmentService)

	apartments := condominiumGroup.Group("/apartments")
	{
		apartments.POST("", h.createApartment)
		apartments.GET("", h.listApartments)
		apartments.GET("/:apartment_id", h.getApartment)
		apartments.PUT("/:apartment_id", h.updateApartment)
		apartments.DELETE("/:apartment_id", h.deleteApartment)
	}
}

// createApartment godoc
// @Summary Create an apartment
// @Description Creates an apartment in a condominium. Admin only.
// @Tags apartments
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment body dto.CreateApartmentRequest true "Apartment details"
// @Success 201 {object} dto.ApartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Apartment name already exists"
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments [post]
func (h *apartmentHandler) createApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var req dto.CreateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	apartment, err := h.apartmentService.CreateApartment(c.Request.Context(), condominiumID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create apartment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToApartmentResponse(apartment))
}

// listApartments godoc
// @Summary List apartments
// @Description Retrieves a paginated list of apartments in a condominium
// @Tags apartments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListApartmentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments [get]
func (h *apartmentHandler) listApartments(c *gin.Context) {
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

	apartments, err := h.apartmentService.ListApartments(c.Request.Context(), condominiumID, userID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list apartments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListApartmentsResponse(apartments))
}

// getApartment godoc
// @Summary Get an apartment
// @Description Retrieves an apartment of a condominium
// @Tags apartments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Success 200 {object} dto.ApartmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id} [get]
func (h *apartmentHandler) getApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	apartmentID := c.Param("apartment_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	apartment, err := h.apartmentService.GetApartmentByID(c.Request.Context(), condominiumID, apartmentID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve apartment")
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}

// updateApartment godoc
// @Summary Update an apartment
// @Description Updates an apartment. Admin only.
// @Tags apartments
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Param apartment body dto.UpdateApartmentRequest true "Fields to update"
// @Success 200 {object} dto.ApartmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id} [put]
func (h *apartmentHandler) updateApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	apartmentID := c.Param("apartment_id")

	var req dto.UpdateApartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	apartment, err := h.apartmentService.UpdateApartment(c.Request.Context(), condominiumID, apartmentID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update apartment")
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}

// deleteApartment godoc
// @Summary Delete an apartment
// @Description Soft deletes an apartment. Admin only.
// @Tags apartments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id} [delete]
func (h *apartmentHandler) deleteApartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	apartmentID := c.Param("apartment_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.apartmentService.DeleteApartment(c.Request.Context(), condominiumID, apartmentID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete apartment")
		return
	}

	c.Status(http.StatusNoContent)
}
