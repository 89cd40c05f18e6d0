package entity

import "time"

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in progress"
	StatusComplete   TaskStatus = "complete"
)

// Valid проверяет, что статус из допустимого набора
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusComplete:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID             string       `json:"id" bson:"_id,omitempty"`
	Title          string       `json:"title" bson:"title"`
	Description    string       `json:"description" bson:"description"`
	DueDate        *time.Time   `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Priority       TaskPriority `json:"priority" bson:"priority"`
	AssignedMember string       `json:"assignedMember" bson:"assignedMember"`
	Status         TaskStatus   `json:"status" bson:"status"`
	CreatedAt      time.Time    `json:"createdAt" bson:"createdAt"`
	CompletedAt    *time.Time   `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// CreateTaskRequest - нормализованный payload создания (дефолты уже применены валидацией)
type CreateTaskRequest struct {
	Title          string
	Description    string
	DueDate        *time.Time
	Priority       TaskPriority
	AssignedMember string
	Status         TaskStatus
}

// UpdateStatusRequest - статус это единственное изменяемое поле задачи
type UpdateStatusRequest struct {
	Status TaskStatus
}

// FieldError - ошибка валидации одного поля, уходит клиенту как есть
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ReportFilter - параметры отчета за период. Диапазон дат применяется
// только когда заданы обе границы.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Member    string
}

type SummaryReport struct {
	TotalTasks int    `json:"totalTasks"`
	TimeAvg    string `json:"timeAvg"`
}
