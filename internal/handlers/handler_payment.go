package handlers

import (
	"context"
	"net/http"

	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/CondoSphere/condo_management_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests for payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
	}
}

// RegisterPaymentRoutes registers payment routes under a condominium group.
func RegisterPaymentRoutes(condominiumGroup *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := condominiumGroup.Group("/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:payment_id", h.getPayment)
		payments.POST("/:payment_id/confirm", h.confirmPayment)
		payments.POST("/:payment_id/cancel", h.cancelPayment)
		payments.POST("/:payment_id/refund", h.refundPayment)
	}

	apartments := condominiumGroup.Group("/apartments/:apartment_id")
	{
		apartments.GET("/payments", h.listApartmentPayments)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment against a maintenance fee or common service. A repeated request with the same idempotency key returns the original payment.
// @Tags payments
// @Accept json
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), condominiumID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List condominium payments
// @Description Retrieves a paginated list of payments across all apartments of a condominium
// @Tags payments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param next_token query string false "Opaque cursor from a previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")

	var params dto.CursorPaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payments, nextToken, err := h.paymentService.ListPaymentsByCondominium(c.Request.Context(), condominiumID, userID, params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPagedPaymentsResponse(payments, nextToken))
}

// listApartmentPayments godoc
// @Summary List apartment payments
// @Description Retrieves a paginated list of payments for one apartment
// @Tags payments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param apartment_id path string true "Apartment ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/apartments/{apartment_id}/payments [get]
func (h *paymentHandler) listApartmentPayments(c *gin.Context) {
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

	payments, err := h.paymentService.ListPaymentsByApartment(c.Request.Context(), condominiumID, apartmentID, userID, params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list apartment payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// getPayment godoc
// @Summary Get a payment
// @Description Retrieves a payment of a condominium
// @Tags payments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/payments/{payment_id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	paymentID := c.Param("payment_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), condominiumID, paymentID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// confirmPayment godoc
// @Summary Confirm a payment
// @Description Transitions a PENDING payment to CONFIRMED. Admin only.
// @Tags payments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param payment_id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payment is not PENDING"
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/payments/{payment_id}/confirm [post]
func (h *paymentHandler) confirmPayment(c *gin.Context) {
	h.transition(c, h.paymentService.ConfirmPayment, "Failed to confirm payment")
}

// cancelPayment godoc
// @Summary Cancel a payment
// @Description Transitions a PENDING payment to CANCELED. Admin only.
// @Tags payments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param payment_id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payment is not PENDING"
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/payments/{payment_id}/cancel [post]
func (h *paymentHandler) cancelPayment(c *gin.Context) {
	h.transition(c, h.paymentService.CancelPayment, "Failed to cancel payment")
}

// refundPayment godoc
// @Summary Refund a payment
// @Description Transitions a CONFIRMED payment to REFUNDED. Admin only.
// @Tags payments
// @Produce json
// @Param condominium_id path string true "Condominium ID"
// @Param payment_id path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payment is not CONFIRMED"
// @Security BearerAuth
// @Router /condominiums/{condominium_id}/payments/{payment_id}/refund [post]
func (h *paymentHandler) refundPayment(c *gin.Context) {
	h.transition(c, h.paymentService.RefundPayment, "Failed to refund payment")
}

func (h *paymentHandler) transition(c *gin.Context, op func(ctx context.Context, condominiumID, paymentID, userID string) error, fallbackMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	condominiumID := c.Param("condominium_id")
	paymentID := c.Param("payment_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := op(c.Request.Context(), condominiumID, paymentID, userID); err != nil {
		respondWithError(c, logger, err, fallbackMsg)
		return
	}

	c.Status(http.StatusNoContent)
}
