package handlers

import (
	"net/http"
	"time"

	response "oficina_xyz/internal/adapter/http/dto/response"
	"oficina_xyz/internal/usecase"
	"oficina_xyz/pkg"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetProfile returns the tenant profile with its derived plan. First access
// bootstraps the document, so the trial clock starts at first login.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	view, err := h.usecase.GetProfile(c.Request.Context(), tn, time.Now().UTC())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfileView(view))
}
