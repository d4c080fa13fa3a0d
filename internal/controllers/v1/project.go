package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/theo886/weekly-time-allocation/internal/httputil"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProjectList)
		r.GET("", GetProjects)
	}

	// Project with ID
	{
		r.OPTIONS("/:id", OptionsProjectDetail)
		r.GET("/:id", GetProject)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/v1/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the project"
// @Router			/v1/projects/{id} [options]
func OptionsProjectDetail(c *gin.Context) {
	var uri URIProject
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Project{}, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get projects
// @Description	Returns a list of projects
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/v1/projects [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			code		query	string	false	"Filter by code. Supports * as wildcard, e.g. RD*"
// @Param			archived	query	bool	false	"Is the project archived?"
// @Param			offset		query	uint	false	"The offset of the first Project returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Projects to return. Defaults to 50."
func GetProjects(c *gin.Context) {
	var filter ProjectQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	if slices.Contains(setFields, "Name") {
		if filter.Name != "" {
			q = q.Where("name LIKE ?", "%"+filter.Name+"%")
		} else {
			q = q.Where("name = ''")
		}
	}

	var projects []models.Project
	err := q.Find(&projects).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectListResponse{
			Error: &s,
		})
		return
	}

	// Codes are matched as globs, which SQL can not do for us
	if slices.Contains(setFields, "Code") {
		matching := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if glob.Glob(filter.Code, p.Code) {
				matching = append(matching, p)
			}
		}
		projects = matching
	}

	// Default to 50 Projects and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	total := len(projects)
	start := min(int(filter.Offset), total)
	end := total
	if limit >= 0 {
		end = min(start+limit, total)
	}

	data := make([]Project, 0)
	for _, p := range projects[start:end] {
		data = append(data, newProject(c, p))
	}

	c.JSON(http.StatusOK, ProjectListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get project
// @Description	Returns a specific project
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Failure		404	{object}	ProjectResponse
// @Failure		500	{object}	ProjectResponse
// @Param			id	path		string	true	"ID of the project"
// @Router			/v1/projects/{id} [get]
func GetProject(c *gin.Context) {
	var uri URIProject
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, "id = ?", uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjectResponse{
			Error: &s,
		})
		return
	}

	data := newProject(c, project)
	c.JSON(http.StatusOK, ProjectResponse{Data: &data})
}
