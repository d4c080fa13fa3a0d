package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/theo886/weekly-time-allocation/internal/models"
	"github.com/theo886/weekly-time-allocation/internal/types"
)

func (suite *TestSuiteStandard) TestSummarize() {
	suite.createTestTimesheet(models.Timesheet{
		UserID:  "user-1",
		Week:    week("2025-03-17"),
		Entries: entries("RD000026", 40, "CP000022", 60),
	})

	suite.createTestTimesheet(models.Timesheet{
		UserID:  "user-1",
		Week:    week("2025-03-10"),
		Entries: entries("CP000022", 100),
	})

	suite.createTestTimesheet(models.Timesheet{
		UserID:  "user-1",
		Week:    week("2025-03-24"),
		Entries: entries("VO000008", 67, "RD000026", 33),
	})

	// Other users are not included
	suite.createTestTimesheet(models.Timesheet{
		UserID:  "user-2",
		Week:    week("2025-03-10"),
		Entries: entries("WD000009", 100),
	})

	summary, err := models.Summarize("user-1", types.Week{}, types.Week{})
	suite.Require().Nil(err)

	suite.Require().Len(summary.Weeks, 3)
	suite.Assert().Equal("2025-03-10", summary.Weeks[0].Week.String())
	suite.Assert().Equal("3/10/2025 - 3/16/2025", summary.Weeks[0].Range)
	suite.Assert().Equal("2025-03-17", summary.Weeks[1].Week.String())
	suite.Assert().Equal("RD000026", summary.Weeks[1].Entries[0].ProjectID)
	suite.Assert().Equal("2025-03-24", summary.Weeks[2].Week.String())

	suite.Require().Len(summary.Projects, 3)

	// Sorted by name
	suite.Assert().Equal("General R&D Infrastructure", summary.Projects[0].Name)
	suite.Assert().Equal("Sales Orders", summary.Projects[1].Name)
	suite.Assert().Equal("Water Sales Support", summary.Projects[2].Name)

	general := summary.Projects[0]
	suite.Assert().Equal("CP000022", general.ProjectID)
	suite.Assert().Equal("#2E7AB8", general.Color)
	suite.Assert().Equal(2, general.Weeks)
	suite.Assert().Equal(160, general.Points)
	suite.Assert().True(decimal.RequireFromString("53.33").Equal(general.Average), "Average is %s", general.Average)

	sales := summary.Projects[1]
	suite.Assert().Equal(73, sales.Points)
	suite.Assert().True(decimal.RequireFromString("24.33").Equal(sales.Average), "Average is %s", sales.Average)
}

func (suite *TestSuiteStandard) TestSummarizeRange() {
	for _, w := range []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24"} {
		suite.createTestTimesheet(models.Timesheet{
			UserID:  "user-1",
			Week:    week(w),
			Entries: entries("CP000022", 100),
		})
	}

	summary, err := models.Summarize("user-1", week("2025-03-10"), week("2025-03-17"))
	suite.Require().Nil(err)
	suite.Require().Len(summary.Weeks, 2)
	suite.Assert().Equal("2025-03-10", summary.Weeks[0].Week.String())
	suite.Assert().Equal("2025-03-17", summary.Weeks[1].Week.String())

	summary, err = models.Summarize("user-1", week("2025-03-17"), types.Week{})
	suite.Require().Nil(err)
	suite.Assert().Len(summary.Weeks, 2)
	suite.Require().Len(summary.Projects, 1)
	suite.Assert().True(decimal.NewFromInt(100).Equal(summary.Projects[0].Average))
}

func (suite *TestSuiteStandard) TestSummarizeEmpty() {
	summary, err := models.Summarize("nobody", types.Week{}, types.Week{})
	suite.Require().Nil(err)
	suite.Assert().Empty(summary.Weeks)
	suite.Assert().NotNil(summary.Weeks)
	suite.Assert().Empty(summary.Projects)
	suite.Assert().NotNil(summary.Projects)
}
