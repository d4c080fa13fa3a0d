package allocation

import "errors"

var (
	ErrTotalExceeded    = errors.New("Total percentage exceeds 100%")
	ErrDuplicateProject = errors.New("Duplicate projects are not allowed")
	ErrMissingProject   = errors.New("Please select a project for all entries")
	ErrTotalNotHundred  = errors.New("Total percentage must equal 100%")
)

var (
	ErrEntryNotFound = errors.New("there is no entry with this ID")
	ErrUnknownField  = errors.New("the field must be one of projectId, percentage")
)

// Total sums the percentages of all entries. Unparseable values count as 0.
func (s Set) Total() int {
	total := 0
	for _, e := range s {
		total += e.Value()
	}

	return total
}

// Validate checks the set while it is being edited.
//
// A total above 100 is reported first, then duplicate projects. A total
// below 100 is not an error while editing.
func (s Set) Validate() error {
	if s.Total() > Full {
		return ErrTotalExceeded
	}

	if s.hasDuplicateProjects() {
		return ErrDuplicateProject
	}

	return nil
}

// Submittable checks whether the set can be submitted. The first failing
// rule is returned: the total must be exactly 100, every entry needs a
// project and no project may be used twice.
func (s Set) Submittable() error {
	if s.Total() != Full {
		return ErrTotalNotHundred
	}

	for _, e := range s {
		if e.ProjectID == "" {
			return ErrMissingProject
		}
	}

	if s.hasDuplicateProjects() {
		return ErrDuplicateProject
	}

	return nil
}

// hasDuplicateProjects reports whether a non-empty project ID is used by
// more than one entry.
func (s Set) hasDuplicateProjects() bool {
	seen := make(map[string]struct{}, len(s))
	for _, e := range s {
		if e.ProjectID == "" {
			continue
		}

		if _, ok := seen[e.ProjectID]; ok {
			return true
		}
		seen[e.ProjectID] = struct{}{}
	}

	return false
}
