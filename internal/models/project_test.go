package models_test

import (
	"github.com/theo886/weekly-time-allocation/internal/models"
)

func (suite *TestSuiteStandard) TestSeedProjectsIsIdempotent() {
	var archived models.Project
	suite.Require().Nil(models.DB.First(&archived, "id = ?", "RD000026").Error)
	suite.Require().Nil(models.DB.Model(&archived).Update("archived", true).Error)

	// Seeded again, e.g. on the next start
	suite.Require().Nil(models.SeedProjects())

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Project{}).Count(&count).Error)
	suite.Assert().Equal(int64(len(models.OfficialProjects)), count)

	var p models.Project
	suite.Require().Nil(models.DB.First(&p, "id = ?", "RD000026").Error)
	suite.Assert().Equal("Sales Orders", p.Name)
	suite.Assert().Equal("#0072B2", p.Color)
	suite.Assert().True(p.Archived, "Seeding must not reset the archived flag")
}

func (suite *TestSuiteStandard) TestProjectNotFound() {
	var p models.Project
	err := models.DB.First(&p, "id = ?", "XX999999").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no project matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	suite.CloseDB()

	err := models.SeedProjects()
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
