package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskreports/task-api/internal/api/handlers"
	"github.com/taskreports/task-api/internal/usecase"
)

func NewRouter(taskService *usecase.TaskService, reportService *usecase.ReportService) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	taskHandler := handlers.NewTaskHandler(taskService)
	reportHandler := handlers.NewReportHandler(reportService)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", taskHandler.GetTask)
			r.Put("/", taskHandler.UpdateTaskStatus)
		})
	})

	r.Route("/report", func(r chi.Router) {
		r.Post("/period", reportHandler.ReportByPeriod)
		r.Post("/summary", reportHandler.Summary)
	})

	return r
}
