package handlers

import (
	"errors"
	"net/http"

	"sqv_cleaning/internal/usecase"
	"sqv_cleaning/pkg"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errInvalidSchedulePayload = pkg.NewDomainErrorSimple("INVALID_SCHEDULE_INPUT", "Invalid scheduling payload", http.StatusBadRequest)
)

const (
	msgDateTimeRequired = "Please select a preferred date and time for your cleaning."
	msgServiceRequired  = "Please select at least one main cleaning service."
	msgSlotUnavailable  = "The selected time is not available. Please choose another time."
)

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Unknown cleaning service", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownOption):
		return pkg.NewDomainErrorSimple("UNKNOWN_OPTION", "Unknown additional option", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCommand):
		return pkg.NewDomainErrorSimple("INVALID_COMMAND", "Invalid command", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid session", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrScheduleDateTimeRequired):
		return pkg.NewDomainError("DATE_TIME_REQUIRED", msgDateTimeRequired, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrScheduleServiceRequired):
		return pkg.NewDomainError("SERVICE_REQUIRED", msgServiceRequired, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidScheduleDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Date must be formatted as YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidScheduleTime):
		return pkg.NewDomainErrorSimple("INVALID_TIME", "Time must be formatted like 09:00 AM", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrScheduleSlotUnavailable):
		return pkg.NewDomainError("SLOT_UNAVAILABLE", msgSlotUnavailable, err, http.StatusUnprocessableEntity)
	default:
		return mapEstimateError(err)
	}
}
