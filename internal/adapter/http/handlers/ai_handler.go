package handlers

import (
	"errors"
	"net/http"

	request "oficina_xyz/internal/adapter/http/dto/request"
	"oficina_xyz/internal/usecase"
	"oficina_xyz/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAIPayload = pkg.NewDomainErrorSimple("INVALID_AI_INPUT", "Invalid request payload", http.StatusBadRequest)

// AIHandler fronts the diagnostic assistant endpoints. Input validation lives
// in the use case; the handler only binds payloads and maps errors.

type AIHandler struct {
	usecase usecase.IAIUseCase
}

func NewAIHandler(uc usecase.IAIUseCase) *AIHandler {
	return &AIHandler{usecase: uc}
}

func (h *AIHandler) Diagnose(c *gin.Context) {
	if _, ok := requireTenant(c); !ok {
		return
	}

	var payload request.DiagnoseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAIPayload.HTTPStatus, errInvalidAIPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Diagnose(c.Request.Context(), payload.Symptoms, payload.VehicleHistory)
	if err != nil {
		appErr := mapAIError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) SummarizeOrder(c *gin.Context) {
	if _, ok := requireTenant(c); !ok {
		return
	}

	var payload request.OrderSummaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAIPayload.HTTPStatus, errInvalidAIPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SummarizeOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapAIError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) AnalyzeVehicleHistory(c *gin.Context) {
	if _, ok := requireTenant(c); !ok {
		return
	}

	var payload request.VehicleHistoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAIPayload.HTTPStatus, errInvalidAIPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.AnalyzeVehicleHistory(c.Request.Context(), payload.History, payload.CurrentSymptoms)
	if err != nil {
		appErr := mapAIError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapAIError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSymptomsTooShort):
		return pkg.NewDomainErrorSimple("SYMPTOMS_TOO_SHORT", "Describe the symptoms in more detail", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyVehicleHistory):
		return pkg.NewDomainErrorSimple("EMPTY_HISTORY", "Vehicle history is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyOrderContent):
		return pkg.NewDomainErrorSimple("EMPTY_ORDER", "Order has no services or parts to summarize", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAIServiceUnavailable):
		return pkg.NewDomainErrorSimple("AI_UNAVAILABLE", "The assistant is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
