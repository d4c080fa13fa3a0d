package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/internal/types"
)

const (
	messageTimesheetCreated = "Timesheet created successfully"
	messageTimesheetUpdated = "Timesheet updated successfully"
)

// TimesheetEntryEditable is one project and its share of the week
type TimesheetEntryEditable struct {
	ProjectID  string `json:"projectId" example:"CP000022"`                    // ID of the project
	Percentage int    `json:"percentage" binding:"min=0,max=100" example:"60"` // Share of the week in percent
}

// TimesheetEditable represents all user configurable parameters
type TimesheetEditable struct {
	ID        uuid.UUID                `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`                        // ID of an existing timesheet. Optional, timesheets are matched by user and week.
	UserID    string                   `json:"userId" binding:"required" example:"a3f1c6e2-0b7e-4c55-a0f4-17c2e1b9d0aa"` // ID of the user
	UserEmail string                   `json:"userEmail" binding:"omitempty,email" example:"jane@example.com"`           // Email address of the user
	UserName  string                   `json:"userName" example:"Jane Doe"`                                              // Display name of the user
	Week      types.Week               `json:"week" swaggertype:"primitive,string" example:"2025-03-10"`                 // Any day of the week, normalized to its Monday
	Entries   []TimesheetEntryEditable `json:"entries" binding:"dive"`                                                   // Entries in display order
}

func (editable TimesheetEditable) model() models.Timesheet {
	entries := make([]models.TimesheetEntry, 0, len(editable.Entries))
	for _, e := range editable.Entries {
		entries = append(entries, models.TimesheetEntry{
			ProjectID:  e.ProjectID,
			Percentage: e.Percentage,
		})
	}

	return models.Timesheet{
		DefaultModel: models.DefaultModel{ID: editable.ID},
		UserID:       editable.UserID,
		UserEmail:    editable.UserEmail,
		UserName:     editable.UserName,
		Week:         editable.Week,
		Entries:      entries,
	}
}

type TimesheetLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/timesheets/65392deb-5e92-4268-b114-297faad6cdce"`        // The timesheet itself
	Summary string `json:"summary" example:"https://example.com/api/v1/summary?userId=a3f1c6e2-0b7e-4c55-a0f4-17c2e1b9d0aa"` // Summary of all timesheets of the user
}

type Timesheet struct {
	models.Timesheet
	WeekRange string         `json:"weekRange" example:"3/10/2025 - 3/16/2025"` // Displayed range of the week
	Links     TimesheetLinks `json:"links"`
}

func newTimesheet(c *gin.Context, model models.Timesheet) Timesheet {
	url := c.GetString(string(models.DBContextURL))

	if model.Entries == nil {
		model.Entries = make([]models.TimesheetEntry, 0)
	}

	return Timesheet{
		Timesheet: model,
		WeekRange: model.Week.Range(),
		Links: TimesheetLinks{
			Self:    fmt.Sprintf("%s/v1/timesheets/%s", url, model.ID),
			Summary: fmt.Sprintf("%s/v1/summary?userId=%s", url, model.UserID),
		},
	}
}

type TimesheetListResponse struct {
	Data  []Timesheet `json:"data"`                                                   // List of Timesheets
	Error *string     `json:"error" example:"the userId query parameter must be set"` // The error, if any occurred
}

type TimesheetResponse struct {
	Data  *Timesheet `json:"data"`                                                      // Data for the Timesheet
	Error *string    `json:"error" example:"there is no timesheet matching your query"` // The error, if any occurred
}

type TimesheetSaveResponse struct {
	Data    *Timesheet `json:"data"`                                             // Data for the Timesheet
	Message string     `json:"message" example:"Timesheet created successfully"` // Confirmation for the user
	Error   *string    `json:"error" example:"Total percentage must equal 100%"` // The error, if any occurred
}

type TimesheetQueryFilter struct {
	UserID string `form:"userId"` // ID of the user
}
