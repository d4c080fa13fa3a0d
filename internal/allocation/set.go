package allocation

// Set is the ordered list of entries for one user's week.
//
// All methods leave the receiver untouched and return a new Set.
type Set []Entry

// New returns the allocation of a week without any data: a single
// automatically balanced entry holding the full week.
func New() Set {
	return Set{
		{ID: newID(), Percentage: format(Full)},
	}
}

// FromStored builds a Set from persisted entries.
//
// IDs are regenerated and no entry is manually set, so the next edit
// rebalances the loaded values. An empty list yields New().
func FromStored(stored []Stored) Set {
	if len(stored) == 0 {
		return New()
	}

	s := make(Set, 0, len(stored))
	for _, e := range stored {
		s = append(s, Entry{
			ID:         newID(),
			ProjectID:  e.ProjectID,
			Percentage: e.Percentage,
		})
	}

	return s
}

// Clone copies the set with fresh IDs. Values are kept, the manual flags
// are cleared.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for i, e := range s {
		e.ID = newID()
		e.ManuallySet = false
		c[i] = e
	}

	return c
}

// Stored returns the persistence representation of the set.
func (s Set) Stored() []Stored {
	stored := make([]Stored, 0, len(s))
	for _, e := range s {
		stored = append(stored, Stored{ProjectID: e.ProjectID, Percentage: e.Percentage})
	}

	return stored
}

// Find returns the index of the entry with the given ID, or -1.
func (s Set) Find(id string) int {
	for i, e := range s {
		if e.ID == id {
			return i
		}
	}

	return -1
}

func (s Set) copy() Set {
	c := make(Set, len(s))
	copy(c, s)
	return c
}

// manualSum sums the percentages of all manually set entries and the
// entry with the pivot ID, if any.
func (s Set) manualSum(pivot string) int {
	sum := 0
	for _, e := range s {
		if e.ManuallySet || (pivot != "" && e.ID == pivot) {
			sum += e.Value()
		}
	}

	return sum
}

// Add appends a new automatically balanced entry.
//
// The share left over by manual entries is split evenly across all
// automatic entries including the new one, which is last in the list and
// therefore receives the rounding remainder.
func (s Set) Add() Set {
	n := append(s.copy(), Entry{ID: newID()})

	return distributeRemainderToLast(n, remaining(s.manualSum("")), func(e Entry) bool {
		return !e.ManuallySet
	})
}

// Remove deletes the entry with the given ID and rebalances the
// automatic entries.
//
// Removing the only entry of a set is a no-op.
func (s Set) Remove(id string) (Set, error) {
	i := s.Find(id)
	if i < 0 {
		return s, ErrEntryNotFound
	}

	if len(s) <= 1 {
		return s, nil
	}

	n := make(Set, 0, len(s)-1)
	n = append(n, s[:i]...)
	n = append(n, s[i+1:]...)

	return n.rebalance(""), nil
}

// Update sets one field of the entry with the given ID.
//
// Setting the percentage marks the entry as manually set and redistributes
// the remaining share across the automatic entries. Setting the project
// changes nothing else.
func (s Set) Update(id string, field Field, value string) (Set, error) {
	i := s.Find(id)
	if i < 0 {
		return s, ErrEntryNotFound
	}

	n := s.copy()

	switch field {
	case FieldProjectID:
		n[i].ProjectID = value
		return n, nil
	case FieldPercentage:
		n[i].Percentage = value
		n[i].ManuallySet = true
		return n.Redistribute(id), nil
	}

	return s, ErrUnknownField
}

// Redistribute recomputes the automatic entries after the entry with
// changedID was edited. That entry is treated as manual and keeps its
// value even if it exceeds 100.
func (s Set) Redistribute(changedID string) Set {
	return s.copy().rebalance(changedID)
}

// rebalance splits the share left by manual entries (and the pivot) across
// the remaining automatic entries. It modifies s in place.
func (s Set) rebalance(pivot string) Set {
	adjustable := func(e Entry) bool {
		return !e.ManuallySet && e.ID != pivot
	}

	return distributeRemainderToLast(s, remaining(s.manualSum(pivot)), adjustable)
}

func remaining(manualSum int) int {
	return max(0, Full-manualSum)
}

// distributeRemainderToLast assigns every adjustable entry an equal,
// floored share of total. The last adjustable entry in list order also
// receives the rounding remainder so the adjustable entries add up to
// exactly total.
//
// If no entry is adjustable, s is returned unchanged. s is modified in
// place.
func distributeRemainderToLast(s Set, total int, adjustable func(Entry) bool) Set {
	last := -1
	count := 0
	for i, e := range s {
		if adjustable(e) {
			last = i
			count++
		}
	}

	if count == 0 {
		return s
	}

	share := total / count
	remainder := total - share*count

	for i, e := range s {
		if !adjustable(e) {
			continue
		}

		value := share
		if i == last {
			value += remainder
		}
		s[i].Percentage = format(value)
	}

	return s
}
