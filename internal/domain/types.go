package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	UserAlice   = "Alice"
	UserBob     = "Bob"
	UserCharlie = "Charlie"
	UserAdmin   = "Admin"

	// ImportSentinelUser replaces the user of every row brought in by bulk upload.
	ImportSentinelUser = "Uploaded"
)

const (
	CategoryInternal = "Internal"
	CategoryCustomer = "Customer"
	CategoryTraining = "Training"
)

const (
	WorkTypeDesign        = "Design"
	WorkTypeReview        = "Review"
	WorkTypeTesting       = "Testing"
	WorkTypeDocumentation = "Documentation"
)

const (
	DaysPerWeek = 6
	MinDayHours = 0
	MaxDayHours = 24
)

const (
	ColumnUser        = "User"
	ColumnTask        = "Task"
	ColumnProjectCode = "Project Code"
	ColumnCategory    = "Category"
	ColumnWorkType    = "Work Type"
	ColumnTotal       = "Total"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidUser  = fmt.Errorf("invalid user: %w", ErrValidation)
	ErrInvalidEnum  = fmt.Errorf("invalid choice: %w", ErrValidation)
	ErrInvalidHours = fmt.Errorf("invalid hours: %w", ErrValidation)
	ErrUnauthorized = errors.New("unauthorized")
	ErrImportParse  = errors.New("import parse failed")
)

// ImportParseError carries the reason reported by the spreadsheet reader.
type ImportParseError struct {
	Reason string
}

func (e *ImportParseError) Error() string {
	return e.Reason
}

func (e *ImportParseError) Unwrap() error {
	return ErrImportParse
}

func NewImportParseError(err error) *ImportParseError {
	if err == nil {
		return &ImportParseError{Reason: "unknown error"}
	}
	return &ImportParseError{Reason: err.Error()}
}

// DayColumns lists the per-day spreadsheet columns, Monday first.
var DayColumns = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// SheetColumns is the column shape shared by entries and import files.
var SheetColumns = []string{
	ColumnUser, ColumnTask, ColumnProjectCode, ColumnCategory, ColumnWorkType,
	"Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	ColumnTotal,
}

func Users() []string {
	return []string{UserAlice, UserBob, UserCharlie, UserAdmin}
}

func Categories() []string {
	return []string{CategoryInternal, CategoryCustomer, CategoryTraining}
}

func WorkTypes() []string {
	return []string{WorkTypeDesign, WorkTypeReview, WorkTypeTesting, WorkTypeDocumentation}
}

type WeekHours [DaysPerWeek]int

type Entry struct {
	User        string    `json:"user"`
	Task        string    `json:"task"`
	ProjectCode string    `json:"project_code"`
	Category    string    `json:"category"`
	WorkType    string    `json:"work_type"`
	Hours       WeekHours `json:"hours"`
	Total       int       `json:"total"`
	// Cells holds the raw text of an imported row, keyed by header name.
	Cells map[string]string `json:"cells,omitempty"`
}

func (e Entry) Imported() bool {
	return e.Cells != nil
}

type FormState struct {
	Task        string    `json:"task"`
	ProjectCode string    `json:"project_code"`
	Category    string    `json:"category"`
	WorkType    string    `json:"work_type"`
	Hours       WeekHours `json:"hours"`
}

func DefaultFormState() FormState {
	return FormState{
		Category: CategoryInternal,
		WorkType: WorkTypeDesign,
	}
}

// SheetRow maps header names to cell text for one spreadsheet data row.
type SheetRow map[string]string

func ValidateUser(user string) error {
	for _, known := range Users() {
		if user == known {
			return nil
		}
	}
	return fmt.Errorf("user %q is not a known user: %w", user, ErrInvalidUser)
}

func ValidateCategory(category string) error {
	switch category {
	case CategoryInternal, CategoryCustomer, CategoryTraining:
		return nil
	default:
		return fmt.Errorf("category %q is not one of %s: %w", category, strings.Join(Categories(), ", "), ErrInvalidEnum)
	}
}

func ValidateWorkType(workType string) error {
	switch workType {
	case WorkTypeDesign, WorkTypeReview, WorkTypeTesting, WorkTypeDocumentation:
		return nil
	default:
		return fmt.Errorf("work type %q is not one of %s: %w", workType, strings.Join(WorkTypes(), ", "), ErrInvalidEnum)
	}
}

func ValidateDayHours(day string, hours int) error {
	if hours < MinDayHours || hours > MaxDayHours {
		return fmt.Errorf("%s hours must be between %d and %d, got %d: %w", day, MinDayHours, MaxDayHours, hours, ErrInvalidHours)
	}
	return nil
}

func ValidateWeekHours(hours WeekHours) error {
	for idx, value := range hours {
		if err := ValidateDayHours(DayColumns[idx], value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateChoices checks the user, then the category, then the work type.
func ValidateChoices(user, category, workType string) error {
	if err := ValidateUser(user); err != nil {
		return err
	}
	if err := ValidateCategory(category); err != nil {
		return err
	}
	return ValidateWorkType(workType)
}

// NewEntry builds a manually submitted entry. The per-day bound is enforced
// but the weekly total is not capped.
func NewEntry(user, task, projectCode, category, workType string, hours WeekHours) (Entry, error) {
	if err := ValidateChoices(user, category, workType); err != nil {
		return Entry{}, err
	}
	if err := ValidateWeekHours(hours); err != nil {
		return Entry{}, err
	}

	return Entry{
		User:        user,
		Task:        task,
		ProjectCode: projectCode,
		Category:    category,
		WorkType:    workType,
		Hours:       hours,
		Total:       SumHours(hours),
	}, nil
}

// NewImportedEntry builds an entry from a spreadsheet row without validating
// it. The user column is always replaced with ImportSentinelUser and the
// total is taken from the file as-is.
func NewImportedEntry(row SheetRow) Entry {
	cells := make(map[string]string, len(row))
	for column, value := range row {
		cells[column] = value
	}

	entry := Entry{
		User:        ImportSentinelUser,
		Task:        row[ColumnTask],
		ProjectCode: row[ColumnProjectCode],
		Category:    row[ColumnCategory],
		WorkType:    row[ColumnWorkType],
		Total:       CoerceHours(row[ColumnTotal]),
		Cells:       cells,
	}
	for idx, column := range DayColumns {
		entry.Hours[idx] = CoerceHours(row[column])
	}
	cells[ColumnUser] = ImportSentinelUser

	return entry
}
