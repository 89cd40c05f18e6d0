package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/taskreports/task-api/internal/entity"
	"github.com/taskreports/task-api/internal/repository"
)

type ReportService struct {
	taskRepo repository.ITaskRepository
}

func NewReportService(taskRepo repository.ITaskRepository) *ReportService {
	return &ReportService{
		taskRepo: taskRepo,
	}
}

// ByPeriod - завершенные задачи за период и/или по исполнителю.
// Без фильтров возвращает все завершенные задачи.
func (s *ReportService) ByPeriod(ctx context.Context, filter *entity.ReportFilter) ([]entity.Task, error) {
	repoFilter := repository.TaskFilter{
		Status: entity.StatusComplete,
	}

	if filter.StartDate != nil && filter.EndDate != nil {
		repoFilter.CompletedFrom = filter.StartDate
		repoFilter.CompletedTo = filter.EndDate
	}
	if filter.Member != "" {
		repoFilter.AssignedMember = filter.Member
	}

	return s.taskRepo.List(ctx, repoFilter)
}

// Summary - количество завершенных задач и средний плановый срок.
// Срок считается как dueDate - createdAt (плановый интервал задачи),
// а не как фактическое время до завершения.
func (s *ReportService) Summary(ctx context.Context) (*entity.SummaryReport, error) {
	completedTasks, err := s.taskRepo.List(ctx, repository.TaskFilter{Status: entity.StatusComplete})
	if err != nil {
		return nil, err
	}

	totalTasks := len(completedTasks)
	if totalTasks == 0 {
		return &entity.SummaryReport{
			TotalTasks: 0,
			TimeAvg:    formatTimeAvg(0),
		}, nil
	}

	var sumMs float64
	for _, task := range completedTasks {
		// задача без dueDate дает нулевой вклад, но считается в total
		if task.DueDate != nil {
			sumMs += float64(task.DueDate.Sub(task.CreatedAt).Milliseconds())
		}
	}

	avgHours := sumMs / float64(totalTasks) / (1000 * 60 * 60)

	return &entity.SummaryReport{
		TotalTasks: totalTasks,
		TimeAvg:    formatTimeAvg(avgHours),
	}, nil
}

// formatTimeAvg раскладывает средние часы в строку "<d> days, <h> hours, <m> minutes".
// Разложение ненормализованное: часы и минуты берутся по модулю от среднего.
func formatTimeAvg(avgHours float64) string {
	days := int(math.Floor(avgHours / 24))
	hours := int(math.Floor(math.Mod(avgHours, 24)))
	minutes := int(math.Floor(math.Mod(avgHours*60, 60)))

	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}
