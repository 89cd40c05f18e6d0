package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskreports/task-api/internal/entity"
	"github.com/taskreports/task-api/internal/usecase"
	"github.com/taskreports/task-api/internal/validation"
)

type TaskHandler struct {
	taskService *usecase.TaskService
}

func NewTaskHandler(taskService *usecase.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// создаем новую задачу
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {

	var in validation.CreateTaskInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrors(w, http.StatusBadRequest, []entity.FieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	// до хранилища невалидный payload не доходит
	req, fieldErrs := validation.ValidateCreate(&in)
	if fieldErrs != nil {
		respondErrors(w, http.StatusBadRequest, fieldErrs)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req)
	if err != nil {
		// отказ хранилища на записи отдаем как клиентскую ошибку,
		// это политика исходного API
		respondErrors(w, http.StatusBadRequest, err.Error())
		return
	}

	respondData(w, http.StatusCreated, task)
}

func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	task, err := h.taskService.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, entity.ErrTaskNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		respondErrors(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, http.StatusOK, task)
}

func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "id")

	var in validation.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrors(w, http.StatusBadRequest, []entity.FieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	req, fieldErrs := validation.ValidateUpdate(&in)
	if fieldErrs != nil {
		respondErrors(w, http.StatusBadRequest, fieldErrs)
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), taskID, req)
	if err != nil {
		if errors.Is(err, entity.ErrTaskNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		// любой отказ хранилища на пути обновления - 400 с деталью
		respondErrors(w, http.StatusBadRequest, err.Error())
		return
	}

	respondData(w, http.StatusOK, task)
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		respondErrors(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondData(w, http.StatusOK, tasks)
}
