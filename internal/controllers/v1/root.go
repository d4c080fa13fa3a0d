package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/httputil"
	"github.com/theo886/weekly-time-allocation/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
// Editor sessions are kept in the registry.
func RegisterRoutes(r *gin.RouterGroup, editors *editor.Registry) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	RegisterProjectRoutes(r.Group("/projects"))
	RegisterTimesheetRoutes(r.Group("/timesheets"), editors)
	RegisterSummaryRoutes(r.Group("/summary"))
	RegisterEditorRoutes(r.Group("/editors"), editors)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Projects   string `json:"projects" example:"https://example.com/api/v1/projects"`     // URL of Project collection endpoint
	Timesheets string `json:"timesheets" example:"https://example.com/api/v1/timesheets"` // URL of Timesheet collection endpoint
	Summary    string `json:"summary" example:"https://example.com/api/v1/summary"`       // URL of the allocation summary endpoint
	Editors    string `json:"editors" example:"https://example.com/api/v1/editors"`       // URL of the editor endpoint, append the user ID
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Projects:   url + "/v1/projects",
			Timesheets: url + "/v1/timesheets",
			Summary:    url + "/v1/summary",
			Editors:    url + "/v1/editors",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
