package punch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/utils"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	policy.PolicyRepository
	summaryService summary.SummaryService
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	policyRepo policy.PolicyRepository,
	summaryService summary.SummaryService,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:  punchRepo,
		PolicyRepository: policyRepo,
		summaryService:   summaryService,
	}
}

func claimsFromContext(ctx context.Context) (companyID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return companyID, employeeID, nil
}

// Record implements punch.PunchService.
func (p *PunchServiceImpl) Record(ctx context.Context, req punch.RecordPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	punchedAt := time.Now().UTC()
	if req.PunchedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PunchedAt)
		if err != nil {
			return punch.PunchResponse{}, fmt.Errorf("failed to parse punched_at: %w", err)
		}
		punchedAt = parsed.UTC()
	}

	workMode := punch.WorkMode(req.WorkMode)
	if workMode == "" {
		workMode = punch.WorkModeOnsite
	}

	pol, err := p.PolicyRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, policy.ErrPolicyNotFound) {
			return punch.PunchResponse{}, fmt.Errorf("failed to get company policy: %w", err)
		}
		pol = policy.Default(companyID)
	}

	event := punch.PunchEvent{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		EmployeeID:   employeeID,
		PunchedAt:    punchedAt,
		Kind:         punch.NormalizeKind(req.Label),
		RawLabel:     req.Label,
		Status:       punch.StatusActive,
		WorkMode:     workMode,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		InsideRadius: geofenceVerdict(pol, req.Latitude, req.Longitude),
	}

	created, err := p.PunchRepository.Create(ctx, event)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	p.recalculate(ctx, companyID, employeeID, punchedAt)

	return toPunchResponse(created), nil
}

// geofenceVerdict computes the inside_radius flag at record time. It stays
// nil when the policy does not require location, has no anchor point or the
// punch carries no coordinates. The flag is attached, never a rejection.
func geofenceVerdict(pol policy.Policy, lat, lon *float64) *bool {
	if !pol.RequireLocation || pol.Latitude == nil || pol.Longitude == nil {
		return nil
	}
	if lat == nil || lon == nil {
		// Location required but not provided counts as outside.
		inside := false
		return &inside
	}
	distance := utils.CalculateHaversineDistance(*pol.Latitude, *pol.Longitude, *lat, *lon)
	inside := distance <= float64(pol.RadiusMeters)
	return &inside
}

// recalculate refreshes the summaries affected by a punch write. The punch is
// already persisted at this point, so a recalculation failure is logged and
// does not fail the request; the nightly rebuild converges the summaries.
func (p *PunchServiceImpl) recalculate(ctx context.Context, companyID, employeeID string, punchedAt time.Time) {
	if _, err := p.summaryService.RecalculateDaily(ctx, companyID, employeeID, punchedAt); err != nil {
		slog.Error("Failed to recalculate daily summary after punch",
			"employee_id", employeeID, "date", punchedAt.Format("2006-01-02"), "error", err)
		return
	}
	if _, err := p.summaryService.RecalculateMonthly(ctx, companyID, employeeID, punchedAt.Year(), punchedAt.Month()); err != nil {
		slog.Error("Failed to recalculate monthly summary after punch",
			"employee_id", employeeID, "month", punchedAt.Format("2006-01"), "error", err)
	}
}

// List implements punch.PunchService.
func (p *PunchServiceImpl) List(ctx context.Context, filter punch.ListPunchFilter) (punch.ListPunchResponse, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return punch.ListPunchResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	events, total, err := p.PunchRepository.List(ctx, filter, companyID)
	if err != nil {
		return punch.ListPunchResponse{}, fmt.Errorf("failed to list punch events: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, toPunchResponse(event))
	}

	return punch.ListPunchResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Punches:    responses,
	}, nil
}

// Invalidate implements punch.PunchService.
func (p *PunchServiceImpl) Invalidate(ctx context.Context, id string) error {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	event, err := p.PunchRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, punch.ErrPunchNotFound) {
			return err
		}
		return fmt.Errorf("failed to get punch event: %w", err)
	}

	if event.Status != punch.StatusActive {
		return punch.ErrPunchAlreadyProcessed
	}

	if err := p.PunchRepository.SetStatus(ctx, id, companyID, punch.StatusInvalidated); err != nil {
		return fmt.Errorf("failed to invalidate punch event: %w", err)
	}

	p.recalculate(ctx, event.CompanyID, event.EmployeeID, event.PunchedAt)

	return nil
}

func toPunchResponse(event punch.PunchEvent) punch.PunchResponse {
	return punch.PunchResponse{
		ID:           event.ID,
		EmployeeID:   event.EmployeeID,
		PunchedAt:    event.PunchedAt.Format(time.RFC3339),
		Kind:         string(event.Kind),
		RawLabel:     event.RawLabel,
		Status:       string(event.Status),
		WorkMode:     string(event.WorkMode),
		Latitude:     event.Latitude,
		Longitude:    event.Longitude,
		InsideRadius: event.InsideRadius,
	}
}
