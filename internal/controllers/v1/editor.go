package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/httputil"
	"github.com/theo886/weekly-time-allocation/internal/types"
)

// RegisterEditorRoutes registers the routes for editor sessions with
// the RouterGroup that is passed. Sessions are kept in the registry.
func RegisterEditorRoutes(r *gin.RouterGroup, editors *editor.Registry) {
	useEditors(r, editors)

	// Session of a user
	{
		r.OPTIONS("/:userId", OptionsEditor)
		r.GET("/:userId", GetEditor)
	}

	// Entries
	{
		r.OPTIONS("/:userId/entries", OptionsEditorPost)
		r.POST("/:userId/entries", AddEditorEntry)
		r.OPTIONS("/:userId/entries/:entryId", OptionsEditorEntry)
		r.PATCH("/:userId/entries/:entryId", UpdateEditorEntry)
		r.DELETE("/:userId/entries/:entryId", RemoveEditorEntry)
	}

	// Actions
	{
		r.OPTIONS("/:userId/pin", OptionsEditorPost)
		r.POST("/:userId/pin", ToggleEditorPin)
		r.OPTIONS("/:userId/week", OptionsEditorPost)
		r.POST("/:userId/week", MoveEditorWeek)
		r.OPTIONS("/:userId/submit", OptionsEditorPost)
		r.POST("/:userId/submit", SubmitEditor)
	}
}

// session returns the editor session for the user in the URI. If it
// can not be opened, the error response is sent and nil is returned.
func session(c *gin.Context) *editor.Session {
	var uri URIUser
	err := c.ShouldBindUri(&uri)
	if err == nil && strings.TrimSpace(uri.UserID) == "" {
		err = errUserIDParameter
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditorResponse{
			Error: &s,
		})
		return nil
	}

	s, err := editorsOf(c).Open(strings.TrimSpace(uri.UserID))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EditorResponse{
			Error: &e,
		})
		return nil
	}

	return s
}

// respond sends the view, together with the error if there is one.
func respond(c *gin.Context, successStatus int, view editor.View, err error) {
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditorResponse{
			Data:  &view,
			Error: &s,
		})
		return
	}

	c.JSON(successStatus, EditorResponse{Data: &view})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Editors
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/editors/{userId} [options]
func OptionsEditor(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Editors
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/editors/{userId}/entries [options]
// @Router			/v1/editors/{userId}/pin [options]
// @Router			/v1/editors/{userId}/week [options]
// @Router			/v1/editors/{userId}/submit [options]
func OptionsEditorPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Editors
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Param			entryId	path	string	true	"ID of the entry"
// @Router			/v1/editors/{userId}/entries/{entryId} [options]
func OptionsEditorEntry(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Get editor
// @Description	Returns the editor state of a user. New sessions start at the current week.
// @Tags			Editors
// @Produce		json
// @Success		200		{object}	EditorResponse
// @Failure		500		{object}	EditorResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/editors/{userId} [get]
func GetEditor(c *gin.Context) {
	s := session(c)
	if s == nil {
		return
	}

	respond(c, http.StatusOK, s.View(), nil)
}

// @Summary		Add entry
// @Description	Adds an entry. The percentages of entries that have not been set manually are redistributed.
// @Tags			Editors
// @Produce		json
// @Success		201		{object}	EditorResponse
// @Failure		500		{object}	EditorResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/editors/{userId}/entries [post]
func AddEditorEntry(c *gin.Context) {
	s := session(c)
	if s == nil {
		return
	}

	respond(c, http.StatusCreated, s.AddEntry(), nil)
}

// @Summary		Update entry
// @Description	Sets the project or the percentage of an entry
// @Tags			Editors
// @Accept			json
// @Produce		json
// @Success		200		{object}	EditorResponse
// @Failure		400		{object}	EditorResponse
// @Failure		404		{object}	EditorResponse
// @Failure		500		{object}	EditorResponse
// @Param			userId	path		string		true	"ID of the user"
// @Param			entryId	path		string		true	"ID of the entry"
// @Param			update	body		EntryUpdate	true	"Field and value"
// @Router			/v1/editors/{userId}/entries/{entryId} [patch]
func UpdateEditorEntry(c *gin.Context) {
	var uri URIEntry
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditorResponse{
			Error: &s,
		})
		return
	}

	var update EntryUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditorResponse{
			Error: &s,
		})
		return
	}

	s := session(c)
	if s == nil {
		return
	}

	view, err := s.UpdateEntry(uri.EntryID, update.Field, update.Value)
	respond(c, http.StatusOK, view, err)
}

// @Summary		Remove entry
// @Description	Removes an entry. The last remaining entry can not be removed.
// @Tags			Editors
// @Produce		json
// @Success		200		{object}	EditorResponse
// @Failure		404		{object}	EditorResponse
// @Failure		500		{object}	EditorResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			entryId	path		string	true	"ID of the entry"
// @Router			/v1/editors/{userId}/entries/{entryId} [delete]
func RemoveEditorEntry(c *gin.Context) {
	var uri URIEntry
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditorResponse{
			Error: &s,
		})
		return
	}

	s := session(c)
	if s == nil {
		return
	}

	view, err := s.RemoveEntry(uri.EntryID)
	respond(c, http.StatusOK, view, err)
}

// @Summary		Toggle pin mode
// @Description	Switches pin mode on or off. In pin mode, the entries are carried over when moving to another week.
// @Tags			Editors
// @Produce		json
// @Success		200		{object}	EditorResponse
// @Failure		500		{object}	EditorResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/editors/{userId}/pin [post]
func ToggleEditorPin(c *gin.Context) {
	s := session(c)
	if s == nil {
		return
	}

	respond(c, http.StatusOK, s.TogglePin(), nil)
}

// @Summary		Change week
// @Description	Moves the editor by a number of weeks or to a specific week
// @Tags			Editors
// @Accept			json
// @Produce		json
// @Success		200		{object}	EditorResponse
// @Failure		400		{object}	EditorResponse
// @Failure		500		{object}	EditorResponse
// @Param			userId	path		string		true	"ID of the user"
// @Param			target	body		WeekTarget	true	"Offset or week"
// @Router			/v1/editors/{userId}/week [post]
func MoveEditorWeek(c *gin.Context) {
	var target WeekTarget
	err := httputil.BindData(c, &target)
	if err == nil && (target.Offset == nil) == (target.Week == nil || target.Week.IsZero()) {
		err = errWeekTarget
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), EditorResponse{
			Error: &s,
		})
		return
	}

	s := session(c)
	if s == nil {
		return
	}

	var view editor.View
	if target.Offset != nil {
		view, err = s.Navigate(*target.Offset)
	} else {
		view, err = s.GoTo(*target.Week)
	}

	respond(c, http.StatusOK, view, err)
}

// @Summary		Submit week
// @Description	Stores the entries of the current week as the timesheet of the user
// @Tags			Editors
// @Accept			json
// @Produce		json
// @Success		200		{object}	EditorSubmitResponse
// @Failure		400		{object}	EditorSubmitResponse
// @Failure		500		{object}	EditorSubmitResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			user	body		EditorSubmit	false	"User data"
// @Router			/v1/editors/{userId}/submit [post]
func SubmitEditor(c *gin.Context) {
	var data EditorSubmit
	err := httputil.BindData(c, &data)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), EditorSubmitResponse{
			Error: &s,
		})
		return
	}

	s := session(c)
	if s == nil {
		return
	}

	message, view, err := s.Submit(types.User{
		Email: data.UserEmail,
		Name:  data.UserName,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EditorSubmitResponse{
			Data:  &view,
			Error: &e,
		})
		return
	}

	countSubmission(sourceEditor, message == editor.MessageSubmitted)

	c.JSON(http.StatusOK, EditorSubmitResponse{
		Data:    &view,
		Message: message,
	})
}
