package handlers

import (
	"net/http"

	request "sqv_cleaning/internal/adapter/http/dto/request"
	response "sqv_cleaning/internal/adapter/http/dto/response"
	"sqv_cleaning/internal/adapter/http/middleware"
	"sqv_cleaning/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the estimate page: catalog, live pricing, selection
// commands and the hand-off to the scheduling page.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// GetCatalog godoc
// @Summary  List cleaning services and additional options
// @Tags     estimate
// @Produce  json
// @Success  200 {object} response.CatalogResponse
// @Router   /catalog [get]
func (h *EstimateHandler) GetCatalog(c *gin.Context) {
	cat, err := h.usecase.Catalog(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(cat))
}

// Compute godoc
// @Summary  Price a selection
// @Tags     estimate
// @Accept   json
// @Produce  json
// @Param    body body request.EstimateRequest true "current selection"
// @Success  200 {object} response.PageStateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimate/compute [post]
func (h *EstimateHandler) Compute(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sel, err := h.usecase.ResolveSelection(ctx, payload.Selection.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageState(h.usecase.Compute(ctx, sel)))
}

// ApplyCommand godoc
// @Summary  Apply one selection command and reprice
// @Tags     estimate
// @Accept   json
// @Produce  json
// @Param    body body request.CommandRequest true "selection and command"
// @Success  200 {object} response.PageStateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimate/commands [post]
func (h *EstimateHandler) ApplyCommand(c *gin.Context) {
	var payload request.CommandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sel, err := h.usecase.ResolveSelection(ctx, payload.Selection.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.Apply(ctx, sel, payload.Command.ToCommand())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageState(state))
}

// SaveHandoff godoc
// @Summary  Store the selection for the scheduling page
// @Tags     handoff
// @Accept   json
// @Produce  json
// @Param    body body request.EstimateRequest true "current selection"
// @Success  200 {object} response.HandoffResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /handoff [post]
func (h *EstimateHandler) SaveHandoff(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sel, err := h.usecase.ResolveSelection(ctx, payload.Selection.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rec, err := h.usecase.SaveHandoff(ctx, middleware.SessionID(c), sel)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHandoff(rec))
}

// GetHandoff godoc
// @Summary  Read the session hand-off record (default when absent)
// @Tags     handoff
// @Produce  json
// @Success  200 {object} response.HandoffResponse
// @Router   /handoff [get]
func (h *EstimateHandler) GetHandoff(c *gin.Context) {
	rec := h.usecase.LoadHandoff(c.Request.Context(), middleware.SessionID(c))
	c.JSON(http.StatusOK, response.FromHandoff(rec))
}
