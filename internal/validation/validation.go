package validation

import (
	"time"
	"unicode/utf8"

	"github.com/taskreports/task-api/internal/entity"
)

// CreateTaskInput - сырой payload создания задачи. Указатели, чтобы
// отличать отсутствующее поле от пустого значения.
type CreateTaskInput struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	DueDate        *string `json:"dueDate"`
	Priority       *string `json:"priority"`
	AssignedMember *string `json:"assignedMember"`
	Status         *string `json:"status"`
}

// UpdateStatusInput - сырой payload обновления статуса
type UpdateStatusInput struct {
	Status *string `json:"status"`
}

const (
	minTextLen = 3
	maxTextLen = 100
)

// ValidateCreate проверяет payload создания и применяет дефолты.
// Либо нормализованный запрос, либо список ошибок по полям - до
// хранилища невалидный payload не доходит.
func ValidateCreate(in *CreateTaskInput) (*entity.CreateTaskRequest, []entity.FieldError) {
	var errs []entity.FieldError

	req := &entity.CreateTaskRequest{
		Priority: entity.PriorityMedium,
		Status:   entity.StatusPending,
	}

	switch {
	case in.Title == nil:
		errs = append(errs, entity.FieldError{Field: "title", Message: "is required"})
	case utf8.RuneCountInString(*in.Title) < minTextLen:
		errs = append(errs, entity.FieldError{Field: "title", Message: "must be at least 3 characters long"})
	case utf8.RuneCountInString(*in.Title) > maxTextLen:
		errs = append(errs, entity.FieldError{Field: "title", Message: "must be at most 100 characters long"})
	default:
		req.Title = *in.Title
	}

	if in.Description == nil || *in.Description == "" {
		errs = append(errs, entity.FieldError{Field: "description", Message: "is required"})
	} else {
		req.Description = *in.Description
	}

	if in.DueDate != nil {
		due, err := ParseDate(*in.DueDate)
		if err != nil {
			errs = append(errs, entity.FieldError{Field: "dueDate", Message: "must be a valid date"})
		} else {
			req.DueDate = &due
		}
	}

	if in.Priority != nil {
		p := entity.TaskPriority(*in.Priority)
		if !p.Valid() {
			errs = append(errs, entity.FieldError{Field: "priority", Message: "must be one of [low, medium, high]"})
		} else {
			req.Priority = p
		}
	}

	switch {
	case in.AssignedMember == nil:
		errs = append(errs, entity.FieldError{Field: "assignedMember", Message: "is required"})
	case utf8.RuneCountInString(*in.AssignedMember) < minTextLen:
		errs = append(errs, entity.FieldError{Field: "assignedMember", Message: "must be at least 3 characters long"})
	case utf8.RuneCountInString(*in.AssignedMember) > maxTextLen:
		errs = append(errs, entity.FieldError{Field: "assignedMember", Message: "must be at most 100 characters long"})
	default:
		req.AssignedMember = *in.AssignedMember
	}

	if in.Status != nil {
		s := entity.TaskStatus(*in.Status)
		if !s.Valid() {
			errs = append(errs, entity.FieldError{Field: "status", Message: "must be one of [pending, in progress, complete]"})
		} else {
			req.Status = s
		}
	}

	if errs != nil {
		return nil, errs
	}
	return req, nil
}

// ValidateUpdate проверяет payload обновления статуса
func ValidateUpdate(in *UpdateStatusInput) (*entity.UpdateStatusRequest, []entity.FieldError) {
	if in.Status == nil {
		return nil, []entity.FieldError{{Field: "status", Message: "is required"}}
	}
	s := entity.TaskStatus(*in.Status)
	if !s.Valid() {
		return nil, []entity.FieldError{{Field: "status", Message: "must be one of [pending, in progress, complete]"}}
	}
	return &entity.UpdateStatusRequest{Status: s}, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate принимает RFC 3339 или просто дату YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
