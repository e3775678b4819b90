package handlers

import (
	"bytes"
	"net/http"

	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// statementHandler handles HTTP requests for account and monthly statements.
type statementHandler struct {
	statementService        portssvc.StatementSvcFacade
	monthlyStatementService portssvc.MonthlyStatementSvcFacade
}

// newStatementHandler creates a new statementHandler.
func newStatementHandler(ss portssvc.StatementSvcFacade, ms portssvc.MonthlyStatementSvcFacade) *statementHandler {
	return &statementHandler{
		statementService:        ss,
		monthlyStatementService: ms,
	}
}

// RegisterStatementRoutes registers statement routes under a condominium group.
func RegisterStatementRoutes(condominiumGroup *gin.RouterGroup, statementService portssvc.StatementSvcFacade, monthlyStatementService portssvc.MonthlyStatementSvcFacade) {
	h := newStatementHandler(statementService, monthlyStatementService)

	statements := condominiumGroup.Group("/statements")
	{
		statements.GET("/account", h.getAccountStatement)
		statements.GET("/account/pdf", h.getAccountStatementPDF)
	}

	apartments := condominiumGroup.Group("/apartments/:apartment_id/statements")
	{
		apartments.GET("", h.listMonthlyStatements)
		apartments.GET("/by-period", h.getMonthlyStatement)
		apartments.POST("", h.generateMonthlyStatement)
	}
}

// getAccountStatement godoc
// @Summary Get the account statement for a month
// @Description Reconciles the maintenance fee and payments of a condominium for a calendar month (YYYY-MM)
// @Tags statements
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param month query string true "Statement month (YYYY-MM)"
// @Success 200 {object} dto.AccountStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/statements/account [get]
func (h *statementHandler) getAccountStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var params dto.StatementParams
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

	statement, err := h.statementService.BuildAccountStatement(c.Request.Context(), condominiumID, period, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build account statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountStatementResponse(statement))
}

// getAccountStatementPDF godoc
// @Summary Download the account statement as PDF
// @Description Renders the reconciled month as a PDF document
// @Tags statements
// @Produce application/pdf
// @Param condominium_id path string true "Condominium ID"
// @Param month query string true "Statement month (YYYY-MM)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/statements/account/pdf [get]
func (h *statementHandler) getAccountStatementPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var params dto.StatementParams
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

	// Render into a buffer first so errors still produce a JSON response.
	var buf bytes.Buffer
	if err := h.statementService.RenderAccountStatementPDF(c.Request.Context(), condominiumID, period, userID, &buf); err != nil {
		respondWithError(c, logger, err, "Failed to render account statement")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=account-statement.pdf`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// listMonthlyStatements godoc
// @Summary List apartment monthly statements
// @Description Retrieves the persisted statement history of an apartment, newest first
// @Tags statements
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListMonthlyStatementsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id}/statements [get]
func (h *statementHandler) listMonthlyStatements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	apartmentID := c.Param("apartment_id")

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

	statements, err := h.monthlyStatementService.ListMonthlyStatements(c.Request.Context(), condominiumID, apartmentID, userID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list monthly statements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMonthlyStatementsResponse(statements))
}

// getMonthlyStatement godoc
// @Summary Get an apartment monthly statement
// @Description Retrieves the persisted statement of an apartment for a month (YYYY-MM)
// @Tags statements
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Param month query string true "Statement month (YYYY-MM)"
// @Success 200 {object} dto.MonthlyStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id}/statements/by-period [get]
func (h *statementHandler) getMonthlyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	apartmentID := c.Param("apartment_id")

	var params dto.StatementParams
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

	statement, err := h.monthlyStatementService.GetMonthlyStatement(c.Request.Context(), condominiumID, apartmentID, period, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve monthly statement")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyStatementResponse(statement))
}

// generateMonthlyStatement godoc
// @Summary Generate an apartment monthly statement
// @Description Computes and persists the statement of an apartment for a month, carrying the previous closing balance forward. Admin only.
// @Tags statements
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Param month query string true "Statement month (YYYY-MM)"
// @Success 201 {object} dto.MonthlyStatementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id}/statements [post]
func (h *statementHandler) generateMonthlyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	apartmentID := c.Param("apartment_id")

	var params dto.StatementParams
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

	statement, err := h.monthlyStatementService.GenerateMonthlyStatement(c.Request.Context(), condominiumID, apartmentID, period, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate monthly statement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToMonthlyStatementResponse(statement))
}
