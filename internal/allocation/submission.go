package allocation

// SubmittedEntry is one row of a Submission.
type SubmittedEntry struct {
	ProjectID   string `json:"projectId" example:"CP000022"`
	ProjectName string `json:"projectName" example:"General R&D Infrastructure"`
	Percentage  string `json:"percentage" example:"60"`
}

// Submission is what is handed to persistence when a week is submitted.
type Submission struct {
	WeekKey string           `json:"weekKey" example:"3/10/2025 - 3/16/2025"`
	Entries []SubmittedEntry `json:"entries"`
	Total   int              `json:"total" example:"100"`
}

// Submission returns the submission of the set for the week with the given
// key. names maps project IDs to display names; unknown projects get an
// empty name.
//
// The submission gate is not checked here, call Submittable first.
func (s Set) Submission(weekKey string, names map[string]string) Submission {
	entries := make([]SubmittedEntry, 0, len(s))
	for _, e := range s {
		entries = append(entries, SubmittedEntry{
			ProjectID:   e.ProjectID,
			ProjectName: names[e.ProjectID],
			Percentage:  e.Percentage,
		})
	}

	return Submission{
		WeekKey: weekKey,
		Entries: entries,
		Total:   s.Total(),
	}
}

// Set returns the entries of the submission as an allocation set with
// fresh IDs.
func (sub Submission) Set() Set {
	stored := make([]Stored, 0, len(sub.Entries))
	for _, e := range sub.Entries {
		stored = append(stored, Stored{ProjectID: e.ProjectID, Percentage: e.Percentage})
	}

	return FromStored(stored)
}
