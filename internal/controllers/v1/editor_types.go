package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/theo886/weekly-time-allocation/internal/allocation"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/types"
)

// contextEditors is the context key of the editor registry.
const contextEditors = "tracker-editors"

// useEditors makes the registry available to the handlers of the group.
func useEditors(r *gin.RouterGroup, editors *editor.Registry) {
	r.Use(func(c *gin.Context) {
		c.Set(contextEditors, editors)
		c.Next()
	})
}

// editorsOf returns the registry set by useEditors.
func editorsOf(c *gin.Context) *editor.Registry {
	return c.MustGet(contextEditors).(*editor.Registry)
}

type EditorResponse struct {
	Data  *editor.View `json:"data"`                                           // The state of the editor
	Error *string      `json:"error" example:"there is no entry with this ID"` // The error, if any occurred
}

type EditorSubmitResponse struct {
	Data    *editor.View `json:"data"`                                                // The state of the editor
	Message string       `json:"message" example:"Timesheet submitted successfully!"` // Confirmation for the user
	Error   *string      `json:"error" example:"Total percentage must equal 100%"`    // The error, if any occurred
}

// EntryUpdate sets one field of an entry
type EntryUpdate struct {
	Field allocation.Field `json:"field" binding:"required" example:"percentage"` // Name of the field, projectId or percentage
	Value string           `json:"value" example:"60"`                            // New value of the field
}

// WeekTarget selects the week to show. Exactly one of the fields must be set.
type WeekTarget struct {
	Offset *int        `json:"offset" example:"-1"`                                      // Number of weeks to move, negative values move back
	Week   *types.Week `json:"week" swaggertype:"primitive,string" example:"2025-03-10"` // Any day of the week to show
}

// EditorSubmit carries the user data stored with a submission
type EditorSubmit struct {
	UserEmail string `json:"userEmail" binding:"omitempty,email" example:"jane@example.com"` // Email address of the user
	UserName  string `json:"userName" example:"Jane Doe"`                                    // Display name of the user
}
