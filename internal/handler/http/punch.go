package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Invalidate(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Record implements PunchHandler.
func (h *PunchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq punch.RecordPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResponse, err := h.punchService.Record(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record punch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", punchResponse)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := punch.ListPunchFilter{}

	query := r.URL.Query()
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	listResponse, err := h.punchService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List punches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int(listResponse.TotalCount) / listResponse.Limit
	if int(listResponse.TotalCount)%listResponse.Limit > 0 {
		totalPages++
	}
	response.SuccessWithMeta(w, listResponse.Punches, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages,
	})
}

// Invalidate implements PunchHandler.
func (h *PunchHandlerImpl) Invalidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Punch event id is required", nil)
		return
	}

	if err := h.punchService.Invalidate(r.Context(), id); err != nil {
		slog.Error("Invalidate punch service error", "error", err, "punch_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Punch event invalidated", "punch_id", id)
	response.SuccessWithMessage(w, "Punch event invalidated", nil)
}
