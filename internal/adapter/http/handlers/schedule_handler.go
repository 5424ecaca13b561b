package handlers

import (
	"net/http"
	"strings"

	request "sqv_cleaning/internal/adapter/http/dto/request"
	response "sqv_cleaning/internal/adapter/http/dto/response"
	"sqv_cleaning/internal/adapter/http/middleware"
	"sqv_cleaning/internal/domain/entities"
	"sqv_cleaning/internal/usecase"
	"sqv_cleaning/pkg/logging"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the scheduling page.
type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
	logger  *logging.Logger
}

func NewScheduleHandler(uc usecase.IScheduleUseCase, logger *logging.Logger) *ScheduleHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleHandler{usecase: uc, logger: logger}
}

// Open godoc
// @Summary  Scheduling page state seeded from the hand-off record
// @Tags     schedule
// @Produce  json
// @Success  200 {object} response.ScheduleStateResponse
// @Router   /schedule [get]
func (h *ScheduleHandler) Open(c *gin.Context) {
	state, err := h.usecase.Open(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleState(state))
}

// Compute godoc
// @Summary  Price a selection with the scheduling breakdown
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Param    body body request.EstimateRequest true "current selection"
// @Success  200 {object} response.PageStateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /schedule/compute [post]
func (h *ScheduleHandler) Compute(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sel, err := h.usecase.ResolveSelection(ctx, payload.Selection.ToInput())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageState(h.usecase.Compute(ctx, sel)))
}

// ApplyCommand godoc
// @Summary  Apply one selection command on the scheduling page
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Param    body body request.CommandRequest true "selection and command"
// @Success  200 {object} response.PageStateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /schedule/commands [post]
func (h *ScheduleHandler) ApplyCommand(c *gin.Context) {
	var payload request.CommandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sel, err := h.usecase.ResolveSelection(ctx, payload.Selection.ToInput())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	state, err := h.usecase.Apply(ctx, sel, payload.Command.ToCommand())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPageState(state))
}

// Slots godoc
// @Summary  Candidate times for a date
// @Tags     schedule
// @Produce  json
// @Param    date query string true "YYYY-MM-DD"
// @Success  200 {object} response.SlotsResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /schedule/slots [get]
func (h *ScheduleHandler) Slots(c *gin.Context) {
	date := strings.TrimSpace(c.Query("date"))
	slots, err := h.usecase.Slots(c.Request.Context(), date)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SlotsResponse{Date: date, Slots: slots})
}

// Submit godoc
// @Summary  Validate and package the booking
// @Tags     schedule
// @Accept   json
// @Produce  json
// @Param    body body request.ScheduleSubmitRequest true "selection, date and time"
// @Success  200 {object} response.SubmissionResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /schedule/submit [post]
func (h *ScheduleHandler) Submit(c *gin.Context) {
	var payload request.ScheduleSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSchedulePayload.HTTPStatus, errInvalidSchedulePayload.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	sel, err := h.usecase.ResolveSelection(ctx, payload.Selection.ToInput())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	submission, err := h.usecase.Submit(ctx, entities.ScheduleRequest{Selection: sel, Date: payload.Date, Time: payload.Time})
	if err != nil {
		appErr := mapScheduleError(err)
		h.logger.Info("schedule submit blocked", "session_id", middleware.SessionID(c), "code", appErr.Code)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(submission))
}
