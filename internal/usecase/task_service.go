package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/taskreports/task-api/internal/entity"
	"github.com/taskreports/task-api/internal/repository"
)

// EventPublisher - интерфейс для публикации событий жизненного цикла задач
type EventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *entity.TaskEvent) error
}

// NopPublisher используется, когда брокер не сконфигурирован
type NopPublisher struct{}

func (NopPublisher) PublishTaskEvent(ctx context.Context, event *entity.TaskEvent) error {
	return nil
}

type TaskService struct {
	taskRepo repository.ITaskRepository
	events   EventPublisher
}

func NewTaskService(taskRepo repository.ITaskRepository, events EventPublisher) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		events:   events,
	}
}

// ListTasks - все задачи без фильтрации и пагинации
func (s *TaskService) ListTasks(ctx context.Context) ([]entity.Task, error) {
	return s.taskRepo.List(ctx, repository.TaskFilter{})
}

// CreateTask сохраняет уже нормализованный валидацией запрос.
// id и createdAt назначает хранилище.
func (s *TaskService) CreateTask(ctx context.Context, req *entity.CreateTaskRequest) (*entity.Task, error) {
	task, err := s.taskRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.sendTaskEvent(entity.EventTaskCreated, task)

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*entity.Task, error) {
	task, err := s.taskRepo.GetById(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	return task, nil
}

// UpdateStatus - единственная операция мутации. Переход в complete
// ставит completedAt заново, даже если задача уже была завершена;
// обратного перехода completedAt не чистит.
func (s *TaskService) UpdateStatus(ctx context.Context, taskID string, req *entity.UpdateStatusRequest) (*entity.Task, error) {
	task, err := s.taskRepo.GetById(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, entity.ErrTaskNotFound
	}

	task.Status = req.Status
	if task.Status == entity.StatusComplete {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}

	updatedTask, err := s.taskRepo.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	s.sendTaskEvent(entity.EventTaskStatusChanged, updatedTask)

	return updatedTask, nil
}

// Асинхронная отправка события, ошибка брокера не валит запрос
func (s *TaskService) sendTaskEvent(action entity.EventAction, task *entity.Task) {
	event := &entity.TaskEvent{
		EventID:        uuid.NewString(),
		Action:         action,
		TaskID:         task.ID,
		Status:         task.Status,
		AssignedMember: task.AssignedMember,
		Timestamp:      time.Now().UTC(),
	}

	go func() {
		if err := s.events.PublishTaskEvent(context.Background(), event); err != nil {
			log.Printf("Ошибка отправки события %s для задачи ID=%s: %v", action, task.ID, err)
		}
	}()
}
