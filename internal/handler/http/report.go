package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/domain/user"
	"github.com/shiftwise/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyPDF(w http.ResponseWriter, r *http.Request)
	MonthlyXLSX(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// reportFilter builds the filter from the query. Employees can only pull
// their own report; the user_id parameter is forced to the token's subject.
func reportFilter(r *http.Request) report.MonthlyReportFilter {
	filter := report.MonthlyReportFilter{
		UserID: r.URL.Query().Get("user_id"),
		Month:  r.URL.Query().Get("month"),
	}

	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return filter
	}
	roleStr, _ := claims["role"].(string)
	if user.Role(roleStr) == user.RoleEmployee {
		if ownID, ok := claims["user_id"].(string); ok {
			filter.UserID = ownID
		}
	}
	if filter.UserID == "" {
		if ownID, ok := claims["user_id"].(string); ok {
			filter.UserID = ownID
		}
	}

	return filter
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Monthly(r.Context(), reportFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// MonthlyPDF implements ReportHandler.
func (h *reportHandlerImpl) MonthlyPDF(w http.ResponseWriter, r *http.Request) {
	filter := reportFilter(r)

	data, err := h.reportService.MonthlyPDF(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s.pdf"`, filter.Month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// MonthlyXLSX implements ReportHandler.
func (h *reportHandlerImpl) MonthlyXLSX(w http.ResponseWriter, r *http.Request) {
	filter := reportFilter(r)

	data, err := h.reportService.MonthlyXLSX(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="attendance-%s.xlsx"`, filter.Month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
