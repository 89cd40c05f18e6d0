package validation

import (
	"testing"
	"time"

	"github.com/taskreports/task-api/internal/entity"
)

func strPtr(s string) *string { return &s }

func TestValidateCreateAppliesDefaults(t *testing.T) {
	in := &CreateTaskInput{
		Title:          strPtr("Test Task"),
		Description:    strPtr("Test Description"),
		AssignedMember: strPtr("alice"),
	}

	req, errs := ValidateCreate(in)
	if errs != nil {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	if req.Status != entity.StatusPending {
		t.Errorf("Expected default status %s, got %s", entity.StatusPending, req.Status)
	}
	if req.Priority != entity.PriorityMedium {
		t.Errorf("Expected default priority %s, got %s", entity.PriorityMedium, req.Priority)
	}
	if req.DueDate != nil {
		t.Errorf("Expected nil dueDate, got %v", req.DueDate)
	}
}

func TestValidateCreateShortTitle(t *testing.T) {
	in := &CreateTaskInput{
		Title:          strPtr("ab"),
		Description:    strPtr("Test Description"),
		AssignedMember: strPtr("alice"),
	}

	req, errs := ValidateCreate(in)
	if req != nil {
		t.Errorf("Expected nil request, got %v", req)
	}
	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(errs))
	}
	if errs[0].Field != "title" {
		t.Errorf("Expected error on field title, got %s", errs[0].Field)
	}
}

func TestValidateCreateMissingRequiredFields(t *testing.T) {
	req, errs := ValidateCreate(&CreateTaskInput{})
	if req != nil {
		t.Errorf("Expected nil request, got %v", req)
	}

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}

	for _, want := range []string{"title", "description", "assignedMember"} {
		if !fields[want] {
			t.Errorf("Expected error for field %s, got %v", want, errs)
		}
	}
}

func TestValidateCreateInvalidEnums(t *testing.T) {
	in := &CreateTaskInput{
		Title:          strPtr("Test Task"),
		Description:    strPtr("Test Description"),
		AssignedMember: strPtr("alice"),
		Priority:       strPtr("urgent"),
		Status:         strPtr("done"),
	}

	_, errs := ValidateCreate(in)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %v", errs)
	}
	if errs[0].Field != "priority" {
		t.Errorf("Expected error on field priority, got %s", errs[0].Field)
	}
	if errs[1].Field != "status" {
		t.Errorf("Expected error on field status, got %s", errs[1].Field)
	}
}

func TestValidateCreateDueDateFormats(t *testing.T) {
	for _, raw := range []string{"2024-01-15", "2024-01-15T10:30:00Z"} {
		in := &CreateTaskInput{
			Title:          strPtr("Test Task"),
			Description:    strPtr("Test Description"),
			AssignedMember: strPtr("alice"),
			DueDate:        strPtr(raw),
		}

		req, errs := ValidateCreate(in)
		if errs != nil {
			t.Fatalf("Expected no errors for %q, got %v", raw, errs)
		}
		if req.DueDate == nil {
			t.Fatalf("Expected parsed dueDate for %q", raw)
		}
	}

	in := &CreateTaskInput{
		Title:          strPtr("Test Task"),
		Description:    strPtr("Test Description"),
		AssignedMember: strPtr("alice"),
		DueDate:        strPtr("not-a-date"),
	}
	_, errs := ValidateCreate(in)
	if len(errs) != 1 || errs[0].Field != "dueDate" {
		t.Errorf("Expected dueDate error, got %v", errs)
	}
}

func TestValidateUpdate(t *testing.T) {
	if _, errs := ValidateUpdate(&UpdateStatusInput{}); len(errs) != 1 || errs[0].Field != "status" {
		t.Errorf("Expected status required error, got %v", errs)
	}

	if _, errs := ValidateUpdate(&UpdateStatusInput{Status: strPtr("cancelled")}); len(errs) != 1 {
		t.Errorf("Expected invalid status error, got %v", errs)
	}

	req, errs := ValidateUpdate(&UpdateStatusInput{Status: strPtr("in progress")})
	if errs != nil {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if req.Status != entity.StatusInProgress {
		t.Errorf("Expected status %s, got %s", entity.StatusInProgress, req.Status)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("Expected %v, got %v", want, d)
	}

	if _, err := ParseDate("31/01/2024"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
