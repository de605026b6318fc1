package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
	"github.com/pontoflow/ponto-backend-go/internal/handler/http/response"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

type SummaryHandler interface {
	GetDaily(w http.ResponseWriter, r *http.Request)
	ListDailyRange(w http.ResponseWriter, r *http.Request)
	GetMonthly(w http.ResponseWriter, r *http.Request)
	ListCompanyToday(w http.ResponseWriter, r *http.Request)
	RecalculateDaily(w http.ResponseWriter, r *http.Request)
	RecalculateMonthly(w http.ResponseWriter, r *http.Request)
}

type SummaryHandlerImpl struct {
	summaryService summary.SummaryService
}

func NewSummaryHandler(summaryService summary.SummaryService) SummaryHandler {
	return &SummaryHandlerImpl{summaryService: summaryService}
}

// identity resolves the company and target employee of a summary request.
// Admins may address another employee through the employee_id query
// parameter; everyone else reads their own summaries.
func identity(r *http.Request) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", err
	}
	companyID, _ = claims["company_id"].(string)
	employeeID, _ = claims["employee_id"].(string)

	if target := r.URL.Query().Get("employee_id"); target != "" {
		if role, _ := claims["role"].(string); role == "admin" {
			employeeID = target
		}
	}
	return companyID, employeeID, nil
}

// GetDaily implements SummaryHandler.
func (h *SummaryHandlerImpl) GetDaily(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	companyID, employeeID, err := identity(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	daily, err := h.summaryService.GetDaily(r.Context(), companyID, employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, daily.ToResponse())
}

// ListDailyRange implements SummaryHandler.
func (h *SummaryHandlerImpl) ListDailyRange(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	_, startOK := validator.IsValidDate(startDate)
	_, endOK := validator.IsValidDate(endDate)
	if !startOK || !endOK {
		response.BadRequest(w, "start_date and end_date must be YYYY-MM-DD", nil)
		return
	}

	companyID, employeeID, err := identity(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	dailies, err := h.summaryService.ListDailyRange(r.Context(), companyID, employeeID, startDate, endDate)
	if err != nil {
		slog.Error("List daily summaries error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]summary.DailySummaryResponse, 0, len(dailies))
	for _, d := range dailies {
		responses = append(responses, d.ToResponse())
	}
	response.Success(w, responses)
}

// GetMonthly implements SummaryHandler.
func (h *SummaryHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	companyID, employeeID, err := identity(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	monthly, err := h.summaryService.GetMonthly(r.Context(), companyID, employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly.ToResponse())
}

// ListCompanyToday implements SummaryHandler.
func (h *SummaryHandlerImpl) ListCompanyToday(w http.ResponseWriter, r *http.Request) {
	companyID, _, err := identity(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, ok := validator.IsValidDate(date); !ok {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	dailies, err := h.summaryService.ListCompanyDaily(r.Context(), companyID, date)
	if err != nil {
		slog.Error("List company daily summaries error", "error", err)
		response.HandleError(w, err)
		return
	}

	responses := make([]summary.DailySummaryResponse, 0, len(dailies))
	for _, d := range dailies {
		responses = append(responses, d.ToResponse())
	}
	response.Success(w, responses)
}

type recalculateDailyRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
}

// RecalculateDaily implements SummaryHandler.
func (h *SummaryHandlerImpl) RecalculateDaily(w http.ResponseWriter, r *http.Request) {
	var req recalculateDailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	_, dateOK := validator.IsValidDate(req.Date)
	if req.EmployeeID == "" || !dateOK {
		response.BadRequest(w, "employee_id and a YYYY-MM-DD date are required", nil)
		return
	}

	companyID, _, err := identity(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	daily, err := h.summaryService.RecalculateDaily(r.Context(), companyID, req.EmployeeID, date)
	if err != nil {
		slog.Error("Recalculate daily summary error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily summary recalculated", daily.ToResponse())
}

type recalculateMonthlyRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
}

// RecalculateMonthly implements SummaryHandler.
func (h *SummaryHandlerImpl) RecalculateMonthly(w http.ResponseWriter, r *http.Request) {
	var req recalculateMonthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	_, monthOK := validator.IsValidMonth(req.Month)
	if req.EmployeeID == "" || !monthOK {
		response.BadRequest(w, "employee_id and a YYYY-MM month are required", nil)
		return
	}

	companyID, _, err := identity(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	parsed, _ := time.Parse("2006-01", req.Month)
	monthly, err := h.summaryService.RecalculateMonthly(r.Context(), companyID, req.EmployeeID, parsed.Year(), parsed.Month())
	if err != nil {
		slog.Error("Recalculate monthly summary error", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Monthly summary recalculated", monthly.ToResponse())
}
