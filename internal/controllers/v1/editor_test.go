package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/theo886/weekly-time-allocation/internal/controllers/v1"
	"github.com/theo886/weekly-time-allocation/internal/editor"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/test"
)

// editorRequest sends a request to the editor of the user and returns the
// decoded response.
func editorRequest(t *testing.T, method, userID, path string, body any, expectedStatus int) v1.EditorResponse {
	r := test.Request(t, method, fmt.Sprintf("http://example.com/v1/editors/%s%s", userID, path), body)
	test.AssertHTTPStatus(t, &r, expectedStatus)

	var response v1.EditorResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func percentages(v *editor.View) []string {
	p := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		p = append(p, e.Percentage)
	}

	return p
}

// fillEditor moves the editor of the user to the week of 2025-03-10 and
// allocates 60 percent to CP000022 and 40 percent to RD000026.
func fillEditor(t *testing.T, userID string) v1.EditorResponse {
	editorRequest(t, http.MethodPost, userID, "/week", map[string]any{"week": "2025-03-12"}, http.StatusOK)

	r := editorRequest(t, http.MethodPost, userID, "/entries", "", http.StatusCreated)
	require.Len(t, r.Data.Entries, 2)
	first, second := r.Data.Entries[0].ID, r.Data.Entries[1].ID

	editorRequest(t, http.MethodPatch, userID, "/entries/"+first, v1.EntryUpdate{Field: "projectId", Value: "CP000022"}, http.StatusOK)
	editorRequest(t, http.MethodPatch, userID, "/entries/"+second, v1.EntryUpdate{Field: "projectId", Value: "RD000026"}, http.StatusOK)
	return editorRequest(t, http.MethodPatch, userID, "/entries/"+first, v1.EntryUpdate{Field: "percentage", Value: "60"}, http.StatusOK)
}

func (suite *TestSuiteStandard) TestEditorGet() {
	r := editorRequest(suite.T(), http.MethodGet, uuid.NewString(), "", "", http.StatusOK)

	suite.Require().NotNil(r.Data)
	suite.Assert().Equal([]string{"100"}, percentages(r.Data))
	suite.Assert().Equal(100, r.Data.Total)
	suite.Assert().Equal(editor.StatusSubmit, r.Data.Status)
	suite.Assert().False(r.Data.CanSubmit)
	suite.Assert().False(r.Data.Pinned)
}

func (suite *TestSuiteStandard) TestEditorSubmit() {
	userID := uuid.NewString()

	r := fillEditor(suite.T(), userID)
	suite.Assert().Equal([]string{"60", "40"}, percentages(r.Data))
	suite.Assert().Equal("2025-03-10", r.Data.Week.String())
	suite.Assert().True(r.Data.CanSubmit)

	rec := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/editors/%s/submit", userID), v1.EditorSubmit{UserEmail: "jane@example.com", UserName: "Jane Doe"})
	test.AssertHTTPStatus(suite.T(), &rec, http.StatusOK)

	var submit v1.EditorSubmitResponse
	test.DecodeResponse(suite.T(), &rec, &submit)
	suite.Assert().Equal("Timesheet submitted successfully!", submit.Message)
	suite.Assert().Equal(editor.StatusSubmitted, submit.Data.Status)
	suite.Require().Len(submit.Data.SubmittedWeeks, 1)
	suite.Assert().Equal("2025-03-10", submit.Data.SubmittedWeeks[0].String())

	// The submission is stored as a timesheet
	rec = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/timesheets?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &rec, http.StatusOK)

	var timesheets v1.TimesheetListResponse
	test.DecodeResponse(suite.T(), &rec, &timesheets)
	suite.Require().Len(timesheets.Data, 1)
	suite.Assert().Equal("jane@example.com", timesheets.Data[0].UserEmail)
	suite.Assert().Equal("2025-03-10", timesheets.Data[0].Week.String())
	suite.Require().Len(timesheets.Data[0].Entries, 2)
	suite.Assert().Equal(60, timesheets.Data[0].Entries[0].Percentage)
	suite.Assert().Equal("Sales Orders", timesheets.Data[0].Entries[1].ProjectName)

	// Unchanged weeks can not be submitted again
	rec = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/editors/%s/submit", userID), "")
	test.AssertHTTPStatus(suite.T(), &rec, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &rec, &submit)
	suite.Assert().Equal(editor.ErrUnchanged.Error(), *submit.Error)

	// After a change, the submission is an update
	editorRequest(suite.T(), http.MethodPatch, userID, "/entries/"+r.Data.Entries[1].ID, v1.EntryUpdate{Field: "projectId", Value: "VO000008"}, http.StatusOK)
	rec = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/editors/%s/submit", userID), "")
	test.AssertHTTPStatus(suite.T(), &rec, http.StatusOK)
	test.DecodeResponse(suite.T(), &rec, &submit)
	suite.Assert().Equal("Timesheet updated successfully!", submit.Message)
}

func (suite *TestSuiteStandard) TestEditorSubmitFails() {
	userID := uuid.NewString()

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Default entry has no project", "", http.StatusBadRequest, "Please select a project for all entries"},
		{"Invalid email", v1.EditorSubmit{UserEmail: "jane"}, http.StatusBadRequest, "Invalid email format"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/editors/%s/submit", userID), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.EditorSubmitResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Error)
			assert.Empty(t, response.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestEditorEntryFails() {
	userID := uuid.NewString()
	r := editorRequest(suite.T(), http.MethodGet, userID, "", "", http.StatusOK)
	id := r.Data.Entries[0].ID

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		err    string
	}{
		{"Unknown entry", http.MethodPatch, "/entries/unknown", v1.EntryUpdate{Field: "percentage", Value: "10"}, http.StatusNotFound, "there is no entry with this ID"},
		{"Unknown field", http.MethodPatch, "/entries/" + id, v1.EntryUpdate{Field: "color", Value: "red"}, http.StatusBadRequest, "the field must be one of projectId, percentage"},
		{"No field", http.MethodPatch, "/entries/" + id, map[string]string{"value": "10"}, http.StatusBadRequest, "Field is required"},
		{"No body", http.MethodPatch, "/entries/" + id, "", http.StatusBadRequest, "the request body must not be empty"},
		{"Remove unknown entry", http.MethodDelete, "/entries/unknown", "", http.StatusNotFound, "there is no entry with this ID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := editorRequest(t, tt.method, userID, tt.path, tt.body, tt.status)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestEditorEditing() {
	userID := uuid.NewString()
	r := fillEditor(suite.T(), userID)

	// Exceeding 100 percent is reported, but not rejected
	r = editorRequest(suite.T(), http.MethodPatch, userID, "/entries/"+r.Data.Entries[1].ID, v1.EntryUpdate{Field: "percentage", Value: "70"}, http.StatusOK)
	suite.Assert().Equal([]string{"60", "70"}, percentages(r.Data))
	suite.Assert().Equal("Total percentage exceeds 100%", r.Data.Error)
	suite.Assert().False(r.Data.CanSubmit)

	r = editorRequest(suite.T(), http.MethodDelete, userID, "/entries/"+r.Data.Entries[1].ID, "", http.StatusOK)
	suite.Assert().Equal([]string{"60"}, percentages(r.Data))

	// The last entry can not be removed
	r = editorRequest(suite.T(), http.MethodDelete, userID, "/entries/"+r.Data.Entries[0].ID, "", http.StatusOK)
	suite.Assert().Len(r.Data.Entries, 1)
}

func (suite *TestSuiteStandard) TestEditorWeek() {
	userID := uuid.NewString()
	fillEditor(suite.T(), userID)

	rec := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/editors/%s/submit", userID), "")
	test.AssertHTTPStatus(suite.T(), &rec, http.StatusOK)

	r := editorRequest(suite.T(), http.MethodPost, userID, "/week", map[string]int{"offset": 1}, http.StatusOK)
	suite.Assert().Equal("2025-03-17", r.Data.Week.String())
	suite.Assert().Equal("3/17/2025 - 3/23/2025", r.Data.WeekRange)
	suite.Assert().Equal([]string{"100"}, percentages(r.Data))
	suite.Assert().Equal(editor.StatusSubmit, r.Data.Status)

	r = editorRequest(suite.T(), http.MethodPost, userID, "/week", map[string]int{"offset": -1}, http.StatusOK)
	suite.Assert().Equal("2025-03-10", r.Data.Week.String())
	suite.Assert().Equal([]string{"60", "40"}, percentages(r.Data))
	suite.Assert().Equal(editor.StatusSubmitted, r.Data.Status)

	// Pinned entries are carried over
	r = editorRequest(suite.T(), http.MethodPost, userID, "/pin", "", http.StatusOK)
	suite.Assert().True(r.Data.Pinned)

	r = editorRequest(suite.T(), http.MethodPost, userID, "/week", map[string]string{"week": "2025-04-02"}, http.StatusOK)
	suite.Assert().Equal("2025-03-31", r.Data.Week.String())
	suite.Assert().Equal([]string{"60", "40"}, percentages(r.Data))
	suite.Assert().Equal(editor.StatusSubmit, r.Data.Status)
	suite.Assert().True(r.Data.CanSubmit)

	r = editorRequest(suite.T(), http.MethodPost, userID, "/pin", "", http.StatusOK)
	suite.Assert().False(r.Data.Pinned)
}

func (suite *TestSuiteStandard) TestEditorWeekFails() {
	userID := uuid.NewString()

	tests := []struct {
		name string
		body any
		err  string
	}{
		{"No body", "", "the request body must not be empty"},
		{"Neither offset nor week", map[string]string{}, "exactly one of offset and week must be set"},
		{"Offset and week", map[string]any{"offset": 1, "week": "2025-03-10"}, "exactly one of offset and week must be set"},
		{"Broken week", map[string]string{"week": "March"}, "the body of your request contains invalid or un-parseable data. Please check and try again"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			response := editorRequest(t, http.MethodPost, userID, "/week", tt.body, http.StatusBadRequest)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

// TestEditorFollowsTimesheets verifies that changes through the timesheet
// endpoints are visible in the editor.
func (suite *TestSuiteStandard) TestEditorFollowsTimesheets() {
	userID := uuid.NewString()
	editorRequest(suite.T(), http.MethodPost, userID, "/week", map[string]string{"week": "2025-03-10"}, http.StatusOK)

	ts := createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID, Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 30, "VO000008", 70)})

	r := editorRequest(suite.T(), http.MethodGet, userID, "", "", http.StatusOK)
	suite.Assert().Equal([]string{"30", "70"}, percentages(r.Data))
	suite.Assert().Equal(editor.StatusSubmitted, r.Data.Status)

	rec := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/timesheets/%s", ts.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &rec, http.StatusNoContent)

	r = editorRequest(suite.T(), http.MethodGet, userID, "", "", http.StatusOK)
	suite.Assert().Equal([]string{"100"}, percentages(r.Data))
	suite.Assert().Equal(editor.StatusSubmit, r.Data.Status)
}

// registryRequest sends a request to an engine serving the v1 routes with
// the registry.
func registryRequest(t *testing.T, editors *editor.Registry, method, path string) v1.EditorResponse {
	e := gin.New()
	v1.RegisterRoutes(e.Group("/v1"), editors)

	req, err := http.NewRequest(method, "http://example.com/v1/editors/"+path, http.NoBody)
	require.Nil(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var response v1.EditorResponse
	test.DecodeResponse(t, rec, &response)
	return response
}

func (suite *TestSuiteStandard) TestEditorRegistriesAreIsolated() {
	userID := uuid.NewString()
	a := editor.NewRegistry(models.TimesheetStore{})
	b := editor.NewRegistry(models.TimesheetStore{})

	r := registryRequest(suite.T(), a, http.MethodPost, userID+"/entries")
	suite.Assert().Len(r.Data.Entries, 2)

	r = registryRequest(suite.T(), b, http.MethodGet, userID)
	suite.Assert().Len(r.Data.Entries, 1, "Sessions of another registry are not visible")

	r = registryRequest(suite.T(), a, http.MethodGet, userID)
	suite.Assert().Len(r.Data.Entries, 2)

	// Requests through the shared test registry do not see either
	shared := editorRequest(suite.T(), http.MethodGet, userID, "", "", http.StatusOK)
	suite.Assert().Len(shared.Data.Entries, 1)
}

func (suite *TestSuiteStandard) TestEditorOptions() {
	userID := uuid.NewString()

	tests := []struct {
		path  string
		allow string
	}{
		{"", "OPTIONS, GET"},
		{"/entries", "OPTIONS, POST"},
		{"/entries/some-entry", "OPTIONS, PATCH, DELETE"},
		{"/pin", "OPTIONS, POST"},
		{"/week", "OPTIONS, POST"},
		{"/submit", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/editors/%s%s", userID, tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestEditorDBClosed() {
	suite.CloseDB()

	r := editorRequest(suite.T(), http.MethodGet, uuid.NewString(), "", "", http.StatusInternalServerError)
	suite.Assert().Contains(*r.Error, "an error occurred on the server")
	suite.Assert().Nil(r.Data)
}
