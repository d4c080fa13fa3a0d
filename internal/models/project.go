package models

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Project is a project that time can be allocated to.
type Project struct {
	ID       string `json:"id" gorm:"primaryKey" example:"CP000022"`                   // ID of the project
	Name     string `json:"name" gorm:"not null" example:"General R&D Infrastructure"` // Display name
	Code     string `json:"code" gorm:"index" example:"CP000022"`                      // Accounting code of the project
	Color    string `json:"color" example:"#2E7AB8"`                                   // Color used for the project in charts
	Archived bool   `json:"archived" example:"false" default:"false"`                  // Archived projects can not be selected for new allocations
	Timestamps
}

// OfficialProjects is the list of projects every installation starts with.
var OfficialProjects = []Project{
	{ID: "CP000022", Name: "General R&D Infrastructure", Code: "CP000022", Color: "#2E7AB8"},
	{ID: "CP000038", Name: "Stld Changeover Costs", Code: "CP000038", Color: "#D55E00"},
	{ID: "CP000039", Name: "Unapplied Engineering Time", Code: "CP000039", Color: "#009E73"},
	{ID: "MS000002", Name: "NPI ST PX Series", Code: "MS000002", Color: "#CC79A7"},
	{ID: "PE000005", Name: "ENG MFG Support", Code: "PE000005", Color: "#F0E442"},
	{ID: "RD000026", Name: "Sales Orders", Code: "RD000026", Color: "#0072B2"},
	{ID: "RD000027", Name: "PMO-025 - PXG V3", Code: "RD000027", Color: "#E69F00"},
	{ID: "RD000042", Name: "PX G 1300 Product Support", Code: "RD000042", Color: "#56B4E9"},
	{ID: "RD000043", Name: "PX G Controls", Code: "RD000043", Color: "#8B2E2E"},
	{ID: "RD000047", Name: "PX Pump Train II", Code: "RD000047", Color: "#44AA99"},
	{ID: "RD000048", Name: "DOE - PXG for Heat Pump", Code: "RD000048", Color: "#882255"},
	{ID: "VO000008", Name: "Water Sales Support", Code: "VO000008", Color: "#117733"},
	{ID: "VO000009", Name: "PX, Turbo, Pump, Support", Code: "VO000009", Color: "#DDCC77"},
	{ID: "VO000010", Name: "IPD Evaluation, PX Cost Reduction", Code: "VO000010", Color: "#CC6677"},
	{ID: "VO000011", Name: "HP pump improvements", Code: "VO000011", Color: "#AA4499"},
	{ID: "VO000012", Name: "PX Power Improvements", Code: "VO000012", Color: "#4477AA"},
	{ID: "VO000013", Name: "PX Q500 Development", Code: "VO000013", Color: "#999933"},
	{ID: "WD000007", Name: "PX Q400 COGS Reduction", Code: "WD000007", Color: "#661100"},
	{ID: "WD000009", Name: "Turbo Std 550 and 875", Code: "WD000009", Color: "#88CCEE"},
}

// SeedProjects inserts the official projects. Existing projects are
// updated, so seeding can run on every start.
func SeedProjects() error {
	projects := make([]Project, len(OfficialProjects))
	copy(projects, OfficialProjects)

	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "code", "color", "updated_at"}),
	}).Create(&projects).Error
	if err != nil {
		return fmt.Errorf("could not seed projects: %w", err)
	}

	return nil
}

// projectNames returns the names of the projects with the given IDs.
//
// If any ID does not identify a project, ErrProjectUnknown is returned.
func projectNames(tx *gorm.DB, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	var projects []Project
	err := tx.Where("id IN ?", ids).Find(&projects).Error
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		names[p.ID] = p.Name
	}

	for _, id := range ids {
		if _, ok := names[id]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrProjectUnknown, id)
		}
	}

	return names, nil
}
