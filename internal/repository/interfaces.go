package repository

import (
	"context"
	"time"

	"github.com/taskreports/task-api/internal/entity"
)

// TaskFilter - фильтр для List. Нулевое значение = все задачи.
// Диапазон по completed_at применяется только если заданы обе границы.
type TaskFilter struct {
	Status         entity.TaskStatus
	AssignedMember string
	CompletedFrom  *time.Time
	CompletedTo    *time.Time
}

// ITaskRepository - контракт документного хранилища задач.
// GetById возвращает (nil, nil), если задачи нет.
type ITaskRepository interface {
	Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error)
	GetById(ctx context.Context, id string) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) (*entity.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]entity.Task, error)
}
