package handlers

import (
	"errors"
	"net/http"

	request "oficina_xyz/internal/adapter/http/dto/request"
	response "oficina_xyz/internal/adapter/http/dto/response"
	"oficina_xyz/internal/usecase"
	"oficina_xyz/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStockPayload = pkg.NewDomainErrorSimple("INVALID_STOCK_INPUT", "Invalid stock payload", http.StatusBadRequest)

// StockHandler handles HTTP requests for inventory items and manual
// movements.

type StockHandler struct {
	usecase usecase.IStockUseCase
}

func NewStockHandler(uc usecase.IStockUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

func (h *StockHandler) CreateItem(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.StockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.CreateItem(c.Request.Context(), tn, payload.ToEntity())
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStockItem(item))
}

func (h *StockHandler) GetItem(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	item, err := h.usecase.GetItem(c.Request.Context(), tn, c.Param("id"))
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(item))
}

func (h *StockHandler) ListItems(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	items, err := h.usecase.ListItems(c.Request.Context(), tn)
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItems(items))
}

// ListLowStock returns only items at or below their alert threshold.
func (h *StockHandler) ListLowStock(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	items, err := h.usecase.ListLowStock(c.Request.Context(), tn)
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItems(items))
}

func (h *StockHandler) UpdateItem(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.StockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	item := payload.ToEntity()
	item.ID = c.Param("id")

	updated, err := h.usecase.UpdateItem(c.Request.Context(), tn, item)
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(updated))
}

func (h *StockHandler) DeleteItem(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteItem(c.Request.Context(), tn, c.Param("id")); err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// MoveStock godoc
// @Summary  Register a manual stock movement
// @Tags     stock
// @Accept   json
// @Produce  json
// @Param    id       path string                       true "Item ID"
// @Param    movement body request.StockMovementRequest true "Movement"
// @Success  200 {object} response.StockItemResponse
// @Router   /stock/{id}/movements [post]
func (h *StockHandler) MoveStock(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.StockMovementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStockPayload.HTTPStatus, errInvalidStockPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.MoveStock(
		c.Request.Context(), tn, c.Param("id"),
		payload.ResolveDirection(), payload.Quantity, payload.Reason,
	)
	if err != nil {
		appErr := mapStockError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(item))
}

func mapStockError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStockItemID),
		errors.Is(err, usecase.ErrInvalidStockItem),
		errors.Is(err, usecase.ErrInvalidMoveQuantity),
		errors.Is(err, usecase.ErrInvalidMoveKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenant):
		return errMissingTenant
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock for this movement", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
