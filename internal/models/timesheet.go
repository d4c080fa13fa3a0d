package models

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/theo886/weekly-time-allocation/internal/allocation"
	"github.com/theo886/weekly-time-allocation/internal/types"
	"gorm.io/gorm"
)

// Timesheet is the submitted allocation of one user for one week.
type Timesheet struct {
	DefaultModel
	UserID    string           `json:"userId" gorm:"uniqueIndex:timesheet_user_week;not null" example:"a3f1c6e2-0b7e-4c55-a0f4-17c2e1b9d0aa"`
	UserEmail string           `json:"userEmail" example:"jane@example.com"`
	UserName  string           `json:"userName" example:"Jane Doe"`
	Week      types.Week       `json:"week" gorm:"uniqueIndex:timesheet_user_week;not null" swaggertype:"primitive,string" example:"2025-03-10"`
	Total     int              `json:"total" example:"100"`
	Entries   []TimesheetEntry `json:"entries" gorm:"constraint:OnDelete:CASCADE"`
}

// TimesheetEntry is one project and its share in a Timesheet.
type TimesheetEntry struct {
	DefaultModel
	TimesheetID uuid.UUID `json:"-" gorm:"type:uuid;index;not null"`
	Position    int       `json:"-"`
	ProjectID   string    `json:"projectId" example:"CP000022"`
	ProjectName string    `json:"projectName" example:"General R&D Infrastructure"`
	Percentage  int       `json:"percentage" example:"60"`
}

// BeforeSave trims user data, computes the total and enforces the
// submission rules.
func (t *Timesheet) BeforeSave(_ *gorm.DB) error {
	t.UserID = strings.TrimSpace(t.UserID)
	t.UserEmail = strings.TrimSpace(t.UserEmail)
	t.UserName = strings.TrimSpace(t.UserName)

	if t.UserID == "" {
		return ErrTimesheetUserMissing
	}

	if t.Week.IsZero() {
		return ErrTimesheetWeekMissing
	}

	for _, e := range t.Entries {
		if e.Percentage < 0 || e.Percentage > allocation.Full {
			return ErrTimesheetPercentage
		}
	}

	set := make(allocation.Set, 0, len(t.Entries))
	for _, e := range t.Entries {
		set = append(set, allocation.Entry{
			ProjectID:  strings.TrimSpace(e.ProjectID),
			Percentage: strconv.Itoa(e.Percentage),
		})
	}
	t.Total = set.Total()

	return set.Submittable()
}

// Stored returns the entries in the order they were submitted.
func (t Timesheet) Stored() []allocation.Stored {
	stored := make([]allocation.Stored, 0, len(t.Entries))
	for _, e := range t.Entries {
		stored = append(stored, allocation.Stored{
			ProjectID:  e.ProjectID,
			Percentage: strconv.Itoa(e.Percentage),
		})
	}

	return stored
}

// EntriesFromSubmission converts a submission to timesheet entries.
// Project names are filled in when the timesheet is saved.
func EntriesFromSubmission(sub allocation.Submission) []TimesheetEntry {
	entries := make([]TimesheetEntry, 0, len(sub.Entries))
	for _, e := range sub.Entries {
		entries = append(entries, TimesheetEntry{
			ProjectID:  strings.TrimSpace(e.ProjectID),
			Percentage: allocation.ParsePercentage(e.Percentage),
		})
	}

	return entries
}

// orderedEntries preloads entries in submission order.
func orderedEntries(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// FindTimesheet returns the timesheet with the given ID including its
// entries.
func FindTimesheet(id uuid.UUID) (Timesheet, error) {
	var t Timesheet
	err := DB.Preload("Entries", orderedEntries).First(&t, "id = ?", id).Error
	return t, err
}

// UserTimesheets returns all timesheets of a user, newest week first.
func UserTimesheets(userID string) ([]Timesheet, error) {
	var timesheets []Timesheet
	err := DB.
		Preload("Entries", orderedEntries).
		Where("user_id = ?", userID).
		Order("week DESC").
		Find(&timesheets).Error

	return timesheets, err
}

// SaveTimesheet creates the timesheet or, if the user already has one for
// the week, replaces it. The returned bool is true if it was created.
//
// If the timesheet has an ID of a timesheet that belongs to another user,
// ErrTimesheetOwnership is returned.
func SaveTimesheet(t *Timesheet) (bool, error) {
	created := false

	err := transaction(func(tx *gorm.DB) error {
		// Rule violations are reported before anything is looked up
		if err := t.BeforeSave(tx); err != nil {
			return err
		}

		if t.ID != uuid.Nil {
			var byID Timesheet
			err := tx.First(&byID, "id = ?", t.ID).Error
			if err == nil && byID.UserID != t.UserID {
				return ErrTimesheetOwnership
			}

			if err != nil && !errors.Is(err, ErrResourceNotFound) {
				return err
			}
		}

		ids := make([]string, 0, len(t.Entries))
		for i := range t.Entries {
			t.Entries[i].ID = uuid.Nil
			t.Entries[i].Position = i
			if t.Entries[i].ProjectID != "" {
				ids = append(ids, t.Entries[i].ProjectID)
			}
		}

		names, err := projectNames(tx, ids)
		if err != nil {
			return err
		}

		for i := range t.Entries {
			t.Entries[i].ProjectName = names[t.Entries[i].ProjectID]
		}

		var existing Timesheet
		err = tx.Where("user_id = ? AND week = ?", t.UserID, t.Week).First(&existing).Error
		if errors.Is(err, ErrResourceNotFound) {
			created = true
			t.ID = uuid.Nil
			return tx.Create(t).Error
		}

		if err != nil {
			return err
		}

		t.ID = existing.ID
		t.CreatedAt = existing.CreatedAt

		err = tx.Where("timesheet_id = ?", existing.ID).Delete(&TimesheetEntry{}).Error
		if err != nil {
			return err
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(t).Error
	})

	return created, err
}

// DeleteTimesheet deletes the timesheet and its entries.
func DeleteTimesheet(t Timesheet) error {
	return transaction(func(tx *gorm.DB) error {
		err := tx.Where("timesheet_id = ?", t.ID).Delete(&TimesheetEntry{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&t).Error
	})
}

// TimesheetStore persists editor submissions as timesheets.
type TimesheetStore struct{}

// Load returns the stored entries of the user's timesheet for the week.
// The bool is false if the week has not been submitted.
func (TimesheetStore) Load(userID string, week types.Week) ([]allocation.Stored, bool, error) {
	var t Timesheet
	err := DB.
		Preload("Entries", orderedEntries).
		Where("user_id = ? AND week = ?", userID, week).
		First(&t).Error

	if errors.Is(err, ErrResourceNotFound) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, err
	}

	return t.Stored(), true, nil
}

// Save stores the set as the user's timesheet for the week.
func (TimesheetStore) Save(user types.User, week types.Week, set allocation.Set) error {
	_, err := SaveTimesheet(&Timesheet{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		Week:      week,
		Entries:   EntriesFromSubmission(set.Submission(week.Range(), nil)),
	})

	return err
}
