package handlers

import (
	"net/http"
	"time"

	"oficina_xyz/internal/usecase"
	"oficina_xyz/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only rollups. Aggregates recompute on
// every request; there is no cache between the handler and the stores.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	summary, err := h.usecase.Summary(c.Request.Context(), tn, time.Now().UTC())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) Series(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	series, err := h.usecase.TrailingSeries(c.Request.Context(), tn, time.Now().UTC())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, series)
}
