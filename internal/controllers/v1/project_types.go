package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/theo886/weekly-time-allocation/internal/models"
)

type ProjectLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/projects/CP000022"` // The project itself
	Timesheets string `json:"timesheets" example:"https://example.com/api/v1/timesheets"`  // Timesheets allocating time to projects
}

type Project struct {
	models.Project
	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.DBContextURL))

	return Project{
		Project: model,
		Links: ProjectLinks{
			Self:       fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			Timesheets: fmt.Sprintf("%s/v1/timesheets", url),
		},
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of Projects
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                    // Data for the Project
	Error *string  `json:"error" example:"there is no project matching your query"` // The error, if any occurred
}

type ProjectQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Code     string `form:"code" filterField:"false"`   // By code, as a glob pattern
	Archived bool   `form:"archived"`                   // Is the project archived?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Project returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Projects to return. Defaults to 50.
}

func (f ProjectQueryFilter) model() models.Project {
	return models.Project{
		Archived: f.Archived,
	}
}
