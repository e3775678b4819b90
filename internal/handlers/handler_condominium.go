package handlers

import (
	"net/http"

	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// condominiumHandler handles HTTP requests related to condominiums and membership.
type condominiumHandler struct {
	condominiumService portssvc.CondominiumSvcFacade
}

// newCondominiumHandler creates a new condominiumHandler.
func newCondominiumHandler(cs portssvc.CondominiumSvcFacade) *condominiumHandler {
	return &condominiumHandler{
		condominiumService: cs,
	}
}

// registerCondominiumRoutes registers condominium CRUD and membership routes
// and returns the per-condominium subgroup for nested resources.
func registerCondominiumRoutes(rg *gin.RouterGroup, condominiumService portssvc.CondominiumSvcFacade) *gin.RouterGroup {
	h := newCondominiumHandler(condominiumService)

	condominiums := rg.Group("/condominiums")
	{
		condominiums.POST("", h.createCondominium)
		condominiums.GET("", h.listCondominiums)
	}

	single := condominiums.Group("/:condominium_id")
	{
		single.GET("", h.getCondominium)
		single.PUT("", h.updateCondominium)
		single.DELETE("", h.deleteCondominium)
		single.POST("/deactivate", h.deactivateCondominium)
		single.POST("/activate", h.activateCondominium)

		members := single.Group("/members")
		{
			members.GET("", h.listMembers)
			members.POST("", h.addMember)
			members.PUT("/:user_id", h.updateMemberRole)
			members.DELETE("/:user_id", h.removeMember)
		}
	}

	return single
}

// createCondominium godoc
// @Summary Create a condominium
// @Description Creates a condominium with the authenticated user as admin
// @Tags condominiums
// @Accept json
// @Produce json
// @Param condominium body dto.CreateCondominiumRequest true "Condominium details"
// @Success 201 {object} dto.CondominiumResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums [post]
func (h *condominiumHandler) createCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	condominium, err := h.condominiumService.CreateCondominium(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create condominium")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCondominiumResponse(condominium))
}

// listCondominiums godoc
// @Summary List the user's condominiums
// @Description Retrieves condominiums the authenticated user belongs to
// @Tags condominiums
// @Produce json
// @Param include_inactive query bool false "Include inactive condominiums where the user is an admin"
// @Success 200 {object} dto.ListCondominiumsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums [get]
func (h *condominiumHandler) listCondominiums(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	includeInactive := c.Query("include_inactive") == "true"

	condominiums, err := h.condominiumService.ListUserCondominiums(c.Request.Context(), userID, includeInactive)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list condominiums")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCondominiumsResponse(condominiums))
}

// getCondominium godoc
// @Summary Get a condominium
// @Description Retrieves a condominium the authenticated user belongs to
// @Tags condominiums
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Success 200 {object} dto.CondominiumResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id} [get]
func (h *condominiumHandler) getCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	condominium, err := h.condominiumService.GetCondominiumByID(c.Request.Context(), condominiumID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve condominium")
		return
	}

	c.JSON(http.StatusOK, dto.ToCondominiumResponse(condominium))
}

// updateCondominium godoc
// @Summary Update a condominium
// @Description Updates a condominium. Admin only.
// @Tags condominiums
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param condominium body dto.UpdateCondominiumRequest true "Fields to update"
// @Success 200 {object} dto.CondominiumResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id} [put]
func (h *condominiumHandler) updateCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var req dto.UpdateCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	condominium, err := h.condominiumService.UpdateCondominium(c.Request.Context(), condominiumID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update condominium")
		return
	}

	c.JSON(http.StatusOK, dto.ToCondominiumResponse(condominium))
}

// deleteCondominium godoc
// @Summary Delete a condominium
// @Description Soft deletes a condominium. Admin only.
// @Tags condominiums
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id} [delete]
func (h *condominiumHandler) deleteCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.condominiumService.DeleteCondominium(c.Request.Context(), condominiumID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to delete condominium")
		return
	}

	c.Status(http.StatusNoContent)
}

// deactivateCondominium godoc
// @Summary Deactivate a condominium
// @Description Marks a condominium as inactive. Admin only.
// @Tags condominiums
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/deactivate [post]
func (h *condominiumHandler) deactivateCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.condominiumService.DeactivateCondominium(c.Request.Context(), condominiumID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate condominium")
		return
	}

	c.Status(http.StatusNoContent)
}

// activateCondominium godoc
// @Summary Activate a condominium
// @Description Marks an inactive condominium as active again. Admin only.
// @Tags condominiums
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/activate [post]
func (h *condominiumHandler) activateCondominium(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.condominiumService.ActivateCondominium(c.Request.Context(), condominiumID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to activate condominium")
		return
	}

	c.Status(http.StatusNoContent)
}

// listMembers godoc
// @Summary List condominium members
// @Description Retrieves all members of a condominium with their roles
// @Tags condominiums
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Success 200 {object} dto.ListCondominiumMembersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/members [get]
func (h *condominiumHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	members, err := h.condominiumService.ListCondominiumMembers(c.Request.Context(), condominiumID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCondominiumMembersResponse(members))
}

// addMember godoc
// @Summary Add a member
// @Description Adds a user to the condominium with a role. Admin only.
// @Tags condominiums
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param member body dto.AddUserToCondominiumRequest true "User and role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/members [post]
func (h *condominiumHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var req dto.AddUserToCondominiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.condominiumService.AddUserToCondominium(c.Request.Context(), userID, req.UserID, condominiumID, req.Role)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add member")
		return
	}

	c.Status(http.StatusNoContent)
}

// updateMemberRole godoc
// @Summary Update a member's role
// @Description Changes the role of a condominium member. Admin only.
// @Tags condominiums
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param user_id path string true "Member user ID"
// @Param role body dto.UpdateMemberRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/members/{user_id} [put]
func (h *condominiumHandler) updateMemberRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	targetUserID := c.Param("user_id")

	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.condominiumService.UpdateUserCondominiumRole(c.Request.Context(), userID, targetUserID, condominiumID, req.Role)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update member role")
		return
	}

	c.Status(http.StatusNoContent)
}

// removeMember godoc
// @Summary Remove a member
// @Description Marks a condominium member as removed. Admin only.
// @Tags condominiums
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param user_id path string true "Member user ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/members/{user_id} [delete]
func (h *condominiumHandler) removeMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	targetUserID := c.Param("user_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.condominiumService.RemoveUserFromCondominium(c.Request.Context(), userID, targetUserID, condominiumID); err != nil {
		respondWithError(c, logger, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}
