package v1_test

import (
	"net/http"

	v1 "github.com/theo886/weekly-time-allocation/internal/controllers/v1"
	"github.com/theo886/weekly-time-allocation/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal(v1.Links{
		Projects:   "http://example.com/v1/projects",
		Timesheets: "http://example.com/v1/timesheets",
		Summary:    "http://example.com/v1/summary",
		Editors:    "http://example.com/v1/editors",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
