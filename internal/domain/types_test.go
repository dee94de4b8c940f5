package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEntryComputesTotal(t *testing.T) {
	entry, err := NewEntry(UserAlice, "Design review", "P1", CategoryInternal, WorkTypeReview, WeekHours{8, 8, 8, 8, 8, 0})
	if err != nil {
		t.Fatalf("new entry: %v", err)
	}
	if entry.Total != 40 {
		t.Fatalf("expected total 40, got %d", entry.Total)
	}
	if entry.User != UserAlice || entry.Task != "Design review" || entry.ProjectCode != "P1" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Imported() {
		t.Fatal("manual entry must not be marked as imported")
	}
}

func TestNewEntryAllowsEmptyTextAndUncappedTotal(t *testing.T) {
	entry, err := NewEntry(UserBob, "", "", CategoryTraining, WorkTypeTesting, WeekHours{24, 24, 24, 24, 24, 24})
	if err != nil {
		t.Fatalf("expected empty task and project code to pass, got %v", err)
	}
	if entry.Total != 144 {
		t.Fatalf("expected total 144, got %d", entry.Total)
	}
}

func TestNewEntryValidation(t *testing.T) {
	valid := WeekHours{1, 2, 3, 4, 5, 6}
	tests := []struct {
		name     string
		user     string
		category string
		workType string
		hours    WeekHours
		want     error
	}{
		{name: "unknown user", user: "Mallory", category: CategoryInternal, workType: WorkTypeDesign, hours: valid, want: ErrInvalidUser},
		{name: "empty user", user: "", category: CategoryInternal, workType: WorkTypeDesign, hours: valid, want: ErrInvalidUser},
		{name: "sentinel is not a user", user: ImportSentinelUser, category: CategoryInternal, workType: WorkTypeDesign, hours: valid, want: ErrInvalidUser},
		{name: "unknown category", user: UserAlice, category: "Sales", workType: WorkTypeDesign, hours: valid, want: ErrInvalidEnum},
		{name: "category is case sensitive", user: UserAlice, category: "internal", workType: WorkTypeDesign, hours: valid, want: ErrInvalidEnum},
		{name: "unknown work type", user: UserAlice, category: CategoryCustomer, workType: "Coding", hours: valid, want: ErrInvalidEnum},
		{name: "hours above bound", user: UserBob, category: CategoryCustomer, workType: WorkTypeDesign, hours: WeekHours{25, 0, 0, 0, 0, 0}, want: ErrInvalidHours},
		{name: "negative hours", user: UserBob, category: CategoryCustomer, workType: WorkTypeDesign, hours: WeekHours{0, 0, 0, 0, 0, -1}, want: ErrInvalidHours},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEntry(tc.user, "task", "code", tc.category, tc.workType, tc.hours)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewEntryChecksUserBeforeHours(t *testing.T) {
	_, err := NewEntry("Nobody", "", "", "Bogus", WorkTypeDesign, WeekHours{99})
	if !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected invalid user first, got %v", err)
	}
}

func TestValidateChoicesOrder(t *testing.T) {
	if err := ValidateChoices(UserBob, CategoryCustomer, WorkTypeTesting); err != nil {
		t.Fatalf("expected valid choices, got %v", err)
	}
	if err := ValidateChoices("Nobody", "Bogus", "Bogus"); !errors.Is(err, ErrInvalidUser) {
		t.Fatalf("expected invalid user first, got %v", err)
	}
	if err := ValidateChoices(UserBob, "Bogus", "Bogus"); !errors.Is(err, ErrInvalidEnum) || !strings.Contains(err.Error(), "category") {
		t.Fatalf("expected invalid category before work type, got %v", err)
	}
}

func TestNewImportedEntryOverridesUserAndSkipsValidation(t *testing.T) {
	entry := NewImportedEntry(SheetRow{
		"User":         "Alice",
		"Task":         "Migration",
		"Project Code": "X9",
		"Category":     "Sales",
		"Work Type":    "Coding",
		"Mon":          "30",
		"Tue":          "7.5",
		"Wed":          "n/a",
		"Total":        "999",
		"Notes":        "extra column",
	})

	if entry.User != ImportSentinelUser {
		t.Fatalf("expected sentinel user, got %q", entry.User)
	}
	if entry.Category != "Sales" || entry.WorkType != "Coding" {
		t.Fatalf("expected enums to pass through, got %+v", entry)
	}
	if entry.Hours != (WeekHours{30, 7, 0, 0, 0, 0}) {
		t.Fatalf("unexpected coerced hours: %v", entry.Hours)
	}
	if entry.Total != 999 {
		t.Fatalf("expected total from file, got %d", entry.Total)
	}
	if entry.Cells["Notes"] != "extra column" || entry.Cells["Wed"] != "n/a" {
		t.Fatalf("expected raw cells to be kept, got %v", entry.Cells)
	}
	if entry.Cells["User"] != ImportSentinelUser {
		t.Fatalf("expected raw user cell to be overwritten, got %q", entry.Cells["User"])
	}
	if !entry.Imported() {
		t.Fatal("expected imported entry")
	}
}

func TestNewImportedEntryMissingColumns(t *testing.T) {
	entry := NewImportedEntry(SheetRow{"Task": "only task"})
	if entry.User != ImportSentinelUser || entry.Task != "only task" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.Total != 0 || entry.Hours != (WeekHours{}) {
		t.Fatalf("expected zero hours for missing columns, got %+v", entry)
	}
}

func TestDefaultFormState(t *testing.T) {
	form := DefaultFormState()
	if form.Task != "" || form.ProjectCode != "" {
		t.Fatalf("expected empty text fields, got %+v", form)
	}
	if form.Category != Categories()[0] || form.WorkType != WorkTypes()[0] {
		t.Fatalf("expected first enumeration members, got %+v", form)
	}
	if form.Hours != (WeekHours{}) {
		t.Fatalf("expected zero hours, got %v", form.Hours)
	}
}

func TestImportParseError(t *testing.T) {
	var err error = NewImportParseError(errors.New("zip: not a valid zip file"))
	if !errors.Is(err, ErrImportParse) {
		t.Fatalf("expected import parse sentinel, got %v", err)
	}
	var parseErr *ImportParseError
	if !errors.As(err, &parseErr) || parseErr.Reason != "zip: not a valid zip file" {
		t.Fatalf("expected reason to be kept, got %v", err)
	}
}
