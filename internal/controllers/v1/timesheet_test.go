package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/theo886/weekly-time-allocation/internal/controllers/v1"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/internal/types"
	"github.com/theo886/weekly-time-allocation/test"
)

func mustWeek(s string) types.Week {
	w, err := types.ParseWeek(s)
	if err != nil {
		panic(err)
	}

	return w
}

func entries(pairs ...any) []v1.TimesheetEntryEditable {
	var e []v1.TimesheetEntryEditable
	for i := 0; i < len(pairs); i += 2 {
		e = append(e, v1.TimesheetEntryEditable{
			ProjectID:  pairs[i].(string),
			Percentage: pairs[i+1].(int),
		})
	}

	return e
}

func createTestTimesheet(t *testing.T, ts v1.TimesheetEditable, expectedStatus ...int) v1.TimesheetSaveResponse {
	if ts.UserID == "" {
		ts.UserID = uuid.NewString()
	}

	if ts.Week.IsZero() {
		ts.Week = mustWeek("2025-03-10")
	}

	if ts.Entries == nil {
		ts.Entries = entries("CP000022", 100)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/timesheets", ts)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TimesheetSaveResponse
	test.DecodeResponse(t, &r, &response)

	return response
}

func (suite *TestSuiteStandard) TestTimesheetsCreateAndUpdate() {
	userID := uuid.NewString()

	created := createTestTimesheet(suite.T(), v1.TimesheetEditable{
		UserID:    userID,
		UserEmail: "jane@example.com",
		UserName:  "Jane Doe",
		Week:      mustWeek("2025-03-13"),
		Entries:   entries("CP000022", 60, "RD000026", 40),
	})

	suite.Assert().Equal("Timesheet created successfully", created.Message)
	suite.Require().NotNil(created.Data)
	suite.Assert().Equal("2025-03-10", created.Data.Week.String())
	suite.Assert().Equal("3/10/2025 - 3/16/2025", created.Data.WeekRange)
	suite.Assert().Equal(100, created.Data.Total)
	suite.Require().Len(created.Data.Entries, 2)
	suite.Assert().Equal("Sales Orders", created.Data.Entries[1].ProjectName)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/timesheets/%s", created.Data.ID), created.Data.Links.Self)

	updated := createTestTimesheet(suite.T(), v1.TimesheetEditable{
		UserID:  userID,
		Week:    mustWeek("2025-03-10"),
		Entries: entries("VO000008", 100),
	}, http.StatusOK)

	suite.Assert().Equal("Timesheet updated successfully", updated.Message)
	suite.Assert().Equal(created.Data.ID, updated.Data.ID)
	suite.Require().Len(updated.Data.Entries, 1)
	suite.Assert().Equal("Water Sales Support", updated.Data.Entries[0].ProjectName)
}

func (suite *TestSuiteStandard) TestTimesheetsCreateFails() {
	owned := createTestTimesheet(suite.T(), v1.TimesheetEditable{})

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `{ "userId": 2 }`, http.StatusBadRequest, "cannot unmarshal number"},
		{"No user", v1.TimesheetEditable{Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 100)}, http.StatusBadRequest, "UserID is required"},
		{"Invalid email", v1.TimesheetEditable{UserID: "u", UserEmail: "jane", Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 100)}, http.StatusBadRequest, "Invalid email format"},
		{"Percentage too high", v1.TimesheetEditable{UserID: "u", Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 101)}, http.StatusBadRequest, "Percentage must be at most 100"},
		{"No week", v1.TimesheetEditable{UserID: "u", Entries: entries("CP000022", 100)}, http.StatusBadRequest, models.ErrTimesheetWeekMissing.Error()},
		{"Total below 100", v1.TimesheetEditable{UserID: "u", Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 90)}, http.StatusBadRequest, "Total percentage must equal 100%"},
		{"Missing project", v1.TimesheetEditable{UserID: "u", Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 50, "", 50)}, http.StatusBadRequest, "Please select a project for all entries"},
		{"Duplicate project", v1.TimesheetEditable{UserID: "u", Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 50, "CP000022", 50)}, http.StatusBadRequest, "Duplicate projects are not allowed"},
		{"Unknown project", v1.TimesheetEditable{UserID: "u", Week: mustWeek("2025-03-10"), Entries: entries("XX000001", 100)}, http.StatusBadRequest, "there is no project with this ID: XX000001"},
		{"Foreign timesheet", v1.TimesheetEditable{ID: owned.Data.ID, UserID: "u", Week: mustWeek("2025-03-10"), Entries: entries("CP000022", 100)}, http.StatusForbidden, models.ErrTimesheetOwnership.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/timesheets", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TimesheetSaveResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestTimesheetsGetList() {
	userID := uuid.NewString()
	for _, w := range []string{"2025-03-10", "2025-03-24", "2025-03-17"} {
		createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID, Week: mustWeek(w)})
	}
	createTestTimesheet(suite.T(), v1.TimesheetEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/timesheets?userId=%s", userID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TimesheetListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("2025-03-24", response.Data[0].Week.String())
	suite.Assert().Equal("2025-03-17", response.Data[1].Week.String())
	suite.Assert().Equal("2025-03-10", response.Data[2].Week.String())

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/timesheets?userId=nobody", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 0)
	suite.Assert().NotNil(response.Data, "An empty list is returned, not null")
}

func (suite *TestSuiteStandard) TestTimesheetsGetListNeedsUser() {
	for _, query := range []string{"", "?userId=", "?userId=%20%20"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/timesheets"+query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.TimesheetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, "the userId query parameter must be set", *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTimesheetsGetSingle() {
	ts := createTestTimesheet(suite.T(), v1.TimesheetEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Timesheet", ts.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Timesheet with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE No Timesheet with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/timesheets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TimesheetResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, ts.Data.ID, response.Data.ID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTimesheetsDelete() {
	ts := createTestTimesheet(suite.T(), v1.TimesheetEditable{})
	path := fmt.Sprintf("http://example.com/v1/timesheets/%s", ts.Data.ID)

	r := test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The week can be submitted again
	again := createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: ts.Data.UserID, Week: ts.Data.Week})
	suite.Assert().Equal("Timesheet created successfully", again.Message)
}

func (suite *TestSuiteStandard) TestTimesheetsOptions() {
	ts := createTestTimesheet(suite.T(), v1.TimesheetEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Existing timesheet", "/" + ts.Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, DELETE"},
		{"No Timesheet with this ID", "/" + uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "/NotParseableAsUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/timesheets"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestTimesheetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTimesheetsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTimesheet(t, v1.TimesheetEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				r := test.Request(t, http.MethodGet, "http://example.com/v1/timesheets?userId=user-1", "")
				test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)

				var response v1.TimesheetListResponse
				test.DecodeResponse(t, &r, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
