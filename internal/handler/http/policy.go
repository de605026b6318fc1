package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/handler/http/response"
)

type PolicyHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	GetScheduleOverride(w http.ResponseWriter, r *http.Request)
	UpdateScheduleOverride(w http.ResponseWriter, r *http.Request)
}

type PolicyHandlerImpl struct {
	policyService policy.PolicyService
}

func NewPolicyHandler(policyService policy.PolicyService) PolicyHandler {
	return &PolicyHandlerImpl{policyService: policyService}
}

// Get implements PolicyHandler.
func (h *PolicyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	policyResponse, err := h.policyService.GetPolicy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, policyResponse)
}

// Update implements PolicyHandler.
func (h *PolicyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq policy.UpdatePolicyRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update policy decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	policyResponse, err := h.policyService.UpdatePolicy(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update policy service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance policy updated", "company_id", policyResponse.CompanyID)
	response.SuccessWithMessage(w, "Attendance policy updated", policyResponse)
}

// GetScheduleOverride implements PolicyHandler.
func (h *PolicyHandlerImpl) GetScheduleOverride(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee id is required", nil)
		return
	}

	schedule, err := h.policyService.GetScheduleOverride(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"employee_id": employeeID,
		"schedule":    schedule,
	})
}

// UpdateScheduleOverride implements PolicyHandler.
func (h *PolicyHandlerImpl) UpdateScheduleOverride(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee id is required", nil)
		return
	}

	var updateReq policy.UpdateScheduleOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update schedule override decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.EmployeeID = employeeID

	if err := h.policyService.UpdateScheduleOverride(r.Context(), updateReq); err != nil {
		slog.Error("Update schedule override service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule override updated", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Schedule override updated", nil)
}
