package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	v1 "github.com/theo886/weekly-time-allocation/internal/controllers/v1"
	"github.com/theo886/weekly-time-allocation/test"
)

func (suite *TestSuiteStandard) TestSummary() {
	userID := uuid.NewString()
	createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID, Week: mustWeek("2025-03-03"), Entries: entries("CP000022", 50, "RD000026", 50)})
	createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID, Week: mustWeek("2025-03-10"), Entries: entries("RD000026", 100)})
	createTestTimesheet(suite.T(), v1.TimesheetEditable{UserID: userID, Week: mustWeek("2025-03-17"), Entries: entries("CP000022", 25, "VO000008", 75)})

	tests := []struct {
		name     string
		query    string
		weeks    []string
		projects map[string]string // Average per project ID
	}{
		{"All weeks", "", []string{"2025-03-03", "2025-03-10", "2025-03-17"}, map[string]string{"CP000022": "25", "RD000026": "50", "VO000008": "25"}},
		{"From", "&from=2025-03-12", []string{"2025-03-10", "2025-03-17"}, map[string]string{"CP000022": "12.5", "RD000026": "50", "VO000008": "37.5"}},
		{"To", "&to=2025-03-09", []string{"2025-03-03"}, map[string]string{"CP000022": "50", "RD000026": "50"}},
		{"From and to", "&from=2025-03-10&to=2025-03-10", []string{"2025-03-10"}, map[string]string{"RD000026": "100"}},
		{"Nothing in range", "&from=2026-01-01", []string{}, map[string]string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/summary?userId=%s%s", userID, tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SummaryResponse
			test.DecodeResponse(t, &r, &response)

			weeks := make([]string, 0)
			for _, w := range response.Data.Weeks {
				weeks = append(weeks, w.Week.String())
			}
			assert.Equal(t, tt.weeks, weeks)

			averages := make(map[string]string)
			for _, p := range response.Data.Projects {
				averages[p.ProjectID] = p.Average.String()
			}
			assert.Equal(t, tt.projects, averages)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryFails() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"No user", "", "the userId query parameter must be set"},
		{"Blank user", "?userId=%20", "the userId query parameter must be set"},
		{"Broken week", "?userId=u&from=March", "the query string contains unparseable data. Please check the values"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/summary"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SummaryResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.err, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}
