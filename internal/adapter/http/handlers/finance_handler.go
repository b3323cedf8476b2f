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

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)

// FinanceHandler handles HTTP requests for the financial ledger. Listings
// include the derived entrada/saida balance.

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

func (h *FinanceHandler) Create(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	tx, err := h.usecase.Create(c.Request.Context(), tn, payload.ToEntity())
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

func (h *FinanceHandler) List(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	txs, err := h.usecase.List(c.Request.Context(), tn)
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TransactionListResponse{
		Transactions: response.FromTransactions(txs),
		Balance:      response.BalanceFromTransactions(txs),
	})
}

func (h *FinanceHandler) Update(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	tx := payload.ToEntity()
	tx.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), tn, tx)
	if err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(updated))
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tn, c.Param("id")); err != nil {
		appErr := mapFinanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapFinanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID), errors.Is(err, usecase.ErrInvalidTransaction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenant):
		return errMissingTenant
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
