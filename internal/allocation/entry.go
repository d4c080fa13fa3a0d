// Package allocation implements the rules that keep a weekly allocation
// summing to 100 percent while entries are added, removed and edited.
package allocation

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Full is the percentage a complete week adds up to.
const Full = 100

// maxMagnitude bounds parsed percentages so that totals can not overflow.
const maxMagnitude = math.MaxInt32

// Field names an editable field of an Entry.
type Field string

const (
	FieldProjectID  Field = "projectId"
	FieldPercentage Field = "percentage"
)

// Entry is one project/percentage row of a weekly allocation.
type Entry struct {
	ID          string `json:"id" example:"2b9c1c0e-8c0a-4a51-9f1e-0d6f4a7f3c21"` // Opaque ID, regenerated whenever a set is loaded or cloned
	ProjectID   string `json:"projectId" example:"CP000022"`                      // Selected project, empty if none is selected yet
	Percentage  string `json:"percentage" example:"50"`                           // Raw percentage as entered
	ManuallySet bool   `json:"isManuallySet" example:"false"`                     // Set when the percentage was typed by the user
}

// Value returns the percentage of the entry as an integer.
func (e Entry) Value() int {
	return ParsePercentage(e.Percentage)
}

// Stored is the shape in which entries are exchanged with persistence.
type Stored struct {
	ProjectID  string `json:"projectId" example:"CP000022"`
	Percentage string `json:"percentage" example:"50"`
}

// ParsePercentage parses s leniently.
//
// Leading whitespace and an optional sign are accepted, then as many
// decimal digits as follow. Anything that does not start with a digit
// after that yields 0, so "50abc" is 50 and "abc" or "" are 0. Numbers
// too large to represent are clamped to math.MaxInt32 with their sign.
func ParsePercentage(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")

	sign := 1
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) || n > maxMagnitude {
		n = maxMagnitude
	} else if err != nil {
		return 0
	}

	return sign * n
}

func newID() string {
	return uuid.NewString()
}

func format(n int) string {
	return strconv.Itoa(n)
}
