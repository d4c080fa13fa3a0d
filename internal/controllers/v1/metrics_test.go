package v1_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	v1 "github.com/theo886/weekly-time-allocation/internal/controllers/v1"
	"github.com/theo886/weekly-time-allocation/test"
)

func (suite *TestSuiteStandard) TestSubmissionCount() {
	count := func(source, result string) float64 {
		return testutil.ToFloat64(v1.SubmissionCount.WithLabelValues(source, result))
	}

	apiCreated := count("api", "created")
	apiUpdated := count("api", "updated")
	editorCreated := count("editor", "created")

	userID := uuid.NewString()
	createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID})
	createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID}, http.StatusOK)

	// Failed saves are not counted
	createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID, Entries: entries("CP000022", 90)}, http.StatusBadRequest)

	suite.Assert().Equal(apiCreated+1, count("api", "created"))
	suite.Assert().Equal(apiUpdated+1, count("api", "updated"))

	editorUser := uuid.NewString()
	fillEditor(suite.T(), editorUser)
	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/editors/%s/submit", editorUser), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Assert().Equal(editorCreated+1, count("editor", "created"))
}
