package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/taskreports/task-api/internal/entity"
	"github.com/taskreports/task-api/internal/usecase"
	"github.com/taskreports/task-api/internal/validation"
)

type ReportHandler struct {
	reportService *usecase.ReportService
}

func NewReportHandler(reportService *usecase.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

type periodInput struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Member    *string `json:"member"`
}

type summaryResponse struct {
	Status     bool   `json:"status"`
	TotalTasks int    `json:"totalTasks"`
	TimeAvg    string `json:"timeAvg"`
}

// ReportByPeriod - завершенные задачи за период и/или по исполнителю
func (h *ReportHandler) ReportByPeriod(w http.ResponseWriter, r *http.Request) {

	var in periodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondErrors(w, http.StatusBadRequest, []entity.FieldError{{Field: "body", Message: "invalid JSON"}})
		return
	}

	filter := &entity.ReportFilter{}
	var fieldErrs []entity.FieldError

	if in.StartDate != nil {
		start, err := validation.ParseDate(*in.StartDate)
		if err != nil {
			fieldErrs = append(fieldErrs, entity.FieldError{Field: "startDate", Message: "must be a valid date"})
		} else {
			filter.StartDate = &start
		}
	}
	if in.EndDate != nil {
		end, err := validation.ParseDate(*in.EndDate)
		if err != nil {
			fieldErrs = append(fieldErrs, entity.FieldError{Field: "endDate", Message: "must be a valid date"})
		} else {
			filter.EndDate = &end
		}
	}
	if in.Member != nil {
		filter.Member = *in.Member
	}

	if fieldErrs != nil {
		respondErrors(w, http.StatusBadRequest, fieldErrs)
		return
	}

	tasks, err := h.reportService.ByPeriod(r.Context(), filter)
	if err != nil {
		// деталь ошибки хранилища клиенту не отдаем, только маркер
		respondErrors(w, http.StatusInternalServerError, "error")
		return
	}

	respondData(w, http.StatusOK, tasks)
}

// Summary - количество завершенных задач и средний плановый срок
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Summary(r.Context())
	if err != nil {
		respondErrors(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		Status:     true,
		TotalTasks: report.TotalTasks,
		TimeAvg:    report.TimeAvg,
	})
}
