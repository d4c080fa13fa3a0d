package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/httputil"
	"github.com/theo886/weekly-time-allocation/internal/models"
)

// RegisterTimesheetRoutes registers the routes for timesheets with
// the RouterGroup that is passed.
//
// Changes are announced to the editor sessions in the registry.
func RegisterTimesheetRoutes(r *gin.RouterGroup, editors *editor.Registry) {
	useEditors(r, editors)

	// Root group
	{
		r.OPTIONS("", OptionsTimesheetList)
		r.GET("", GetTimesheets)
		r.POST("", SaveTimesheet)
	}

	// Timesheet with ID
	{
		r.OPTIONS("/:id", OptionsTimesheetDetail)
		r.GET("/:id", GetTimesheet)
		r.DELETE("/:id", DeleteTimesheet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Timesheets
// @Success		204
// @Router			/v1/timesheets [options]
func OptionsTimesheetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Timesheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/timesheets/{id} [options]
func OptionsTimesheetDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.FindTimesheet(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get timesheets
// @Description	Returns all timesheets of a user, newest week first
// @Tags			Timesheets
// @Produce		json
// @Success		200		{object}	TimesheetListResponse
// @Failure		400		{object}	TimesheetListResponse
// @Failure		500		{object}	TimesheetListResponse
// @Param			userId	query		string	true	"ID of the user"
// @Router			/v1/timesheets [get]
func GetTimesheets(c *gin.Context) {
	var filter TimesheetQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	userID := strings.TrimSpace(filter.UserID)
	if userID == "" {
		s := errUserIDParameter.Error()
		c.JSON(http.StatusBadRequest, TimesheetListResponse{
			Error: &s,
		})
		return
	}

	timesheets, err := models.UserTimesheets(userID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TimesheetListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Timesheet, 0, len(timesheets))
	for _, t := range timesheets {
		data = append(data, newTimesheet(c, t))
	}

	c.JSON(http.StatusOK, TimesheetListResponse{Data: data})
}

// @Summary		Save timesheet
// @Description	Creates the timesheet of a user for a week or replaces the existing one
// @Tags			Timesheets
// @Accept			json
// @Produce		json
// @Success		200			{object}	TimesheetSaveResponse
// @Success		201			{object}	TimesheetSaveResponse
// @Failure		400			{object}	TimesheetSaveResponse
// @Failure		403			{object}	TimesheetSaveResponse
// @Failure		500			{object}	TimesheetSaveResponse
// @Param			timesheet	body		TimesheetEditable	true	"Timesheet"
// @Router			/v1/timesheets [post]
func SaveTimesheet(c *gin.Context) {
	var editable TimesheetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TimesheetSaveResponse{
			Error: &s,
		})
		return
	}

	timesheet := editable.model()
	created, err := models.SaveTimesheet(&timesheet)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TimesheetSaveResponse{
			Error: &s,
		})
		return
	}

	countSubmission(sourceAPI, created)

	// Editor sessions showing this week need to pick up the new entries
	err = editorsOf(c).Forget(timesheet.UserID, timesheet.Week)
	if err != nil {
		log.Warn().Err(err).Str("user", timesheet.UserID).Msg("could not refresh editor session")
	}

	code := http.StatusOK
	message := messageTimesheetUpdated
	if created {
		code = http.StatusCreated
		message = messageTimesheetCreated
	}

	saved, err := models.FindTimesheet(timesheet.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TimesheetSaveResponse{
			Error: &s,
		})
		return
	}

	data := newTimesheet(c, saved)
	c.JSON(code, TimesheetSaveResponse{
		Data:    &data,
		Message: message,
	})
}

// @Summary		Get timesheet
// @Description	Returns a specific timesheet
// @Tags			Timesheets
// @Produce		json
// @Success		200	{object}	TimesheetResponse
// @Failure		400	{object}	TimesheetResponse
// @Failure		404	{object}	TimesheetResponse
// @Failure		500	{object}	TimesheetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/timesheets/{id} [get]
func GetTimesheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TimesheetResponse{
			Error: &s,
		})
		return
	}

	timesheet, err := models.FindTimesheet(uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TimesheetResponse{
			Error: &s,
		})
		return
	}

	data := newTimesheet(c, timesheet)
	c.JSON(http.StatusOK, TimesheetResponse{Data: &data})
}

// @Summary		Delete timesheet
// @Description	Deletes a timesheet and its entries
// @Tags			Timesheets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/timesheets/{id} [delete]
func DeleteTimesheet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	timesheet, err := models.FindTimesheet(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteTimesheet(timesheet)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = editorsOf(c).Forget(timesheet.UserID, timesheet.Week)
	if err != nil {
		log.Warn().Err(err).Str("user", timesheet.UserID).Msg("could not refresh editor session")
	}

	c.JSON(http.StatusNoContent, nil)
}
