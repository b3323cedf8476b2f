package handlers

import (
	"errors"
	"net/http"

	request "oficina_xyz/internal/adapter/http/dto/request"
	response "oficina_xyz/internal/adapter/http/dto/response"
	"oficina_xyz/internal/adapter/http/middleware"
	"oficina_xyz/internal/domain/tenant"
	"oficina_xyz/internal/usecase"
	"oficina_xyz/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errMissingTenant       = pkg.NewDomainErrorSimple("MISSING_TENANT", "Request carries no workshop identity", http.StatusUnauthorized)
)

// OrderHandler handles HTTP requests for service orders, including the
// payment endpoint that finalizes an order.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func requireTenant(c *gin.Context) (tenant.Tenant, bool) {
	tn, ok := middleware.TenantFromContext(c)
	if !ok || !tn.Valid() {
		c.JSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
		return tenant.Tenant{}, false
	}
	return tn, true
}

// CreateOrder godoc
// @Summary  Create a service order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order body request.OrderRequest true "Order"
// @Success  201 {object} response.SaveOrderResponse
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateOrder(c.Request.Context(), tn, payload.ToEntity())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSaveOrderResult(res))
}

// UpdateOrder replaces an order document. A transition into CONCLUIDO or
// FINALIZADO triggers the stock decrement; the response reports the outcome.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	o := payload.ToEntity()
	o.ID = c.Param("id")

	res, err := h.usecase.SaveOrder(c.Request.Context(), tn, o)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSaveOrderResult(res))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetOrder(c.Request.Context(), tn, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	orders, err := h.usecase.ListOrders(c.Request.Context(), tn)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteOrder(c.Request.Context(), tn, c.Param("id")); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// RecordPayment godoc
// @Summary  Record a payment and finalize the order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id      path string                 true "Order ID"
// @Param    payment body request.PaymentRequest true "Payment"
// @Success  200 {object} response.PaymentResponse
// @Router   /orders/{id}/payment [post]
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.RecordPayment(
		c.Request.Context(), tn, c.Param("id"),
		payload.ResolveMethod(), payload.DiscountPercent, payload.CardToken,
	)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentResult(res))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderPayload),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidMechanicRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenant):
		return errMissingTenant
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment was rejected by the provider", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnset):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Card payments are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
