package v1

import (
	"errors"
	"net/http"

	"github.com/theo886/weekly-time-allocation/internal/allocation"
	"github.com/theo886/weekly-time-allocation/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, allocation.ErrEntryNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrTimesheetOwnership) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

var (
	errUserIDParameter = errors.New("the userId query parameter must be set")
	errWeekTarget      = errors.New("exactly one of offset and week must be set")
)
