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

var errInvalidMechanicPayload = pkg.NewDomainErrorSimple("INVALID_MECHANIC_INPUT", "Invalid mechanic payload", http.StatusBadRequest)

type MechanicHandler struct {
	usecase usecase.IMechanicUseCase
}

func NewMechanicHandler(uc usecase.IMechanicUseCase) *MechanicHandler {
	return &MechanicHandler{usecase: uc}
}

func (h *MechanicHandler) Create(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.Create(c.Request.Context(), tn, payload.ToEntity())
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMechanic(m))
}

func (h *MechanicHandler) Get(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	m, err := h.usecase.Get(c.Request.Context(), tn, c.Param("id"))
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(m))
}

func (h *MechanicHandler) List(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	mechanics, err := h.usecase.List(c.Request.Context(), tn)
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanics(mechanics))
}

func (h *MechanicHandler) Update(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	var payload request.MechanicRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMechanicPayload.HTTPStatus, errInvalidMechanicPayload.ToHTTPError())
		return
	}

	m := payload.ToEntity()
	m.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), tn, m)
	if err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMechanic(updated))
}

func (h *MechanicHandler) Delete(c *gin.Context) {
	tn, ok := requireTenant(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tn, c.Param("id")); err != nil {
		appErr := mapMechanicError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMechanicError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicID), errors.Is(err, usecase.ErrInvalidMechanic):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTenant):
		return errMissingTenant
	case errors.Is(err, usecase.ErrMechanicNotFound):
		return pkg.NewDomainErrorSimple("MECHANIC_NOT_FOUND", "Mechanic not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
