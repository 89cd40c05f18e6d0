package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/taskreports/task-api/internal/entity"
	"github.com/taskreports/task-api/internal/repository"
)

// memoryTaskRepo - in-memory замена документного хранилища для тестов
type memoryTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]entity.Task
}

var _ repository.ITaskRepository = (*memoryTaskRepo)(nil)

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: map[string]entity.Task{}}
}

func (r *memoryTaskRepo) Create(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := entity.Task{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		Priority:       req.Priority,
		AssignedMember: req.AssignedMember,
		Status:         req.Status,
		CreatedAt:      time.Now().UTC(),
	}
	r.tasks[task.ID] = task
	return &task, nil
}

func (r *memoryTaskRepo) GetById(ctx context.Context, id string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *memoryTaskRepo) Update(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = *task
	updated := *task
	return &updated, nil
}

func (r *memoryTaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := []entity.Task{}
	for _, task := range r.tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.AssignedMember != "" && task.AssignedMember != filter.AssignedMember {
			continue
		}
		if filter.CompletedFrom != nil && filter.CompletedTo != nil {
			if task.CompletedAt == nil {
				continue
			}
			if task.CompletedAt.Before(*filter.CompletedFrom) || task.CompletedAt.After(*filter.CompletedTo) {
				continue
			}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// seed кладет задачу в хранилище напрямую, мимо валидации
func (r *memoryTaskRepo) seed(task entity.Task) entity.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	r.tasks[task.ID] = task
	return task
}

func (r *memoryTaskRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
