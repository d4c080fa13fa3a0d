package models

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/theo886/weekly-time-allocation/internal/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// WeekSummary is the allocation of one submitted week.
type WeekSummary struct {
	Week    types.Week       `json:"week" swaggertype:"primitive,string" example:"2025-03-10"` // Monday of the week
	Range   string           `json:"range" example:"3/10/2025 - 3/16/2025"`                    // Displayed range of the week
	Total   int              `json:"total" example:"100"`                                      // Sum of all percentages
	Entries []TimesheetEntry `json:"entries"`                                                  // Entries in submission order
}

// ProjectSummary aggregates the share of one project over all summarized
// weeks.
type ProjectSummary struct {
	ProjectID string          `json:"projectId" example:"CP000022"`
	Name      string          `json:"name" example:"General R&D Infrastructure"`
	Color     string          `json:"color" example:"#2E7AB8"`
	Weeks     int             `json:"weeks" example:"3"`                           // Number of weeks the project appears in
	Points    int             `json:"points" example:"150"`                        // Sum of the percentages over all weeks
	Average   decimal.Decimal `json:"average" swaggertype:"string" example:"37.5"` // Average share per summarized week, rounded to two places
}

// Summary is the allocation history of a user.
type Summary struct {
	Weeks    []WeekSummary    `json:"weeks"`
	Projects []ProjectSummary `json:"projects"`
}

// Summarize returns the allocation history of the user. Zero weeks for
// from or to leave the range open on that side.
func Summarize(userID string, from, to types.Week) (Summary, error) {
	q := DB.
		Preload("Entries", orderedEntries).
		Where("user_id = ?", userID).
		Order("week ASC")

	if !from.IsZero() {
		q = q.Where("week >= ?", from)
	}

	if !to.IsZero() {
		q = q.Where("week <= ?", to)
	}

	var timesheets []Timesheet
	if err := q.Find(&timesheets).Error; err != nil {
		return Summary{}, err
	}

	var projects []Project
	if err := DB.Find(&projects).Error; err != nil {
		return Summary{}, err
	}

	colors := make(map[string]string, len(projects))
	names := make(map[string]string, len(projects))
	for _, p := range projects {
		colors[p.ID] = p.Color
		names[p.ID] = p.Name
	}

	summary := Summary{
		Weeks:    make([]WeekSummary, 0, len(timesheets)),
		Projects: make([]ProjectSummary, 0),
	}

	index := make(map[string]int)
	for _, t := range timesheets {
		summary.Weeks = append(summary.Weeks, WeekSummary{
			Week:    t.Week,
			Range:   t.Week.Range(),
			Total:   t.Total,
			Entries: t.Entries,
		})

		for _, e := range t.Entries {
			i, ok := index[e.ProjectID]
			if !ok {
				name, known := names[e.ProjectID]
				if !known {
					name = e.ProjectName
				}

				i = len(summary.Projects)
				index[e.ProjectID] = i
				summary.Projects = append(summary.Projects, ProjectSummary{
					ProjectID: e.ProjectID,
					Name:      name,
					Color:     colors[e.ProjectID],
				})
			}

			summary.Projects[i].Weeks++
			summary.Projects[i].Points += e.Percentage
		}
	}

	weeks := decimal.NewFromInt(int64(len(timesheets)))
	for i := range summary.Projects {
		summary.Projects[i].Average = decimal.NewFromInt(int64(summary.Projects[i].Points)).Div(weeks).Round(2)
	}

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(summary.Projects, func(i, j int) bool {
		return c.CompareString(summary.Projects[i].Name, summary.Projects[j].Name) < 0
	})

	return summary, nil
}
