package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/theo886/weekly-time-allocation/internal/httputil"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/internal/types"
)

// RegisterSummaryRoutes registers the routes for the allocation summary
// with the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSummary)
	r.GET("", GetSummary)
}

type SummaryQueryFilter struct {
	UserID string     `form:"userId"` // ID of the user
	From   types.Week `form:"from"`   // First week to include
	To     types.Week `form:"to"`     // Last week to include
}

type SummaryResponse struct {
	Data  *models.Summary `json:"data"`                                                   // Summary of the allocations
	Error *string         `json:"error" example:"the userId query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/v1/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get summary
// @Description	Returns the allocation history of a user per week and per project
// @Tags			Summary
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			userId	query		string	true	"ID of the user"
// @Param			from	query		string	false	"First week to include, any day of the week in YYYY-MM-DD format"
// @Param			to		query		string	false	"Last week to include, any day of the week in YYYY-MM-DD format"
// @Router			/v1/summary [get]
func GetSummary(c *gin.Context) {
	var filter SummaryQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := httputil.ErrInvalidQuery.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	userID := strings.TrimSpace(filter.UserID)
	if userID == "" {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := models.Summarize(userID, filter.From, filter.To)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
