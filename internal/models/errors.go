package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrTimesheetOwnership     = errors.New("this timesheet belongs to another user")
	ErrTimesheetWeekNotUnique = errors.New("there already is a timesheet for this user and week")
	ErrTimesheetUserMissing   = errors.New("the user ID of a timesheet must be set")
	ErrTimesheetWeekMissing   = errors.New("the week of a timesheet must be set")
	ErrTimesheetPercentage    = errors.New("percentages must be between 0 and 100")
	ErrProjectUnknown         = errors.New("there is no project with this ID")
)
