package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/database"
)

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}

// GetByCompanyID implements policy.PolicyRepository.
func (r *policyRepository) GetByCompanyID(ctx context.Context, companyID string) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, weekly_schedule, tolerance_before, tolerance_after,
			   round_to_nearest, break_mode, break_duration, count_early_as_extra,
			   compensate_balance, compensation_mode, compensation_monthly_limit,
			   require_location, latitude, longitude, radius_meters,
			   created_at, updated_at
		FROM company_policies
		WHERE company_id = $1
	`

	var pol policy.Policy
	var scheduleJSON []byte
	err := q.QueryRow(ctx, query, companyID).Scan(
		&pol.CompanyID, &scheduleJSON, &pol.ToleranceBefore, &pol.ToleranceAfter,
		&pol.RoundToNearest, &pol.BreakMode, &pol.BreakDuration, &pol.CountEarlyAsExtra,
		&pol.CompensateBalance, &pol.CompensationMode, &pol.CompensationMonthlyLimit,
		&pol.RequireLocation, &pol.Latitude, &pol.Longitude, &pol.RadiusMeters,
		&pol.CreatedAt, &pol.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Policy{}, policy.ErrPolicyNotFound
		}
		return policy.Policy{}, fmt.Errorf("failed to get company policy: %w", err)
	}

	if err := json.Unmarshal(scheduleJSON, &pol.WeeklySchedule); err != nil {
		return policy.Policy{}, fmt.Errorf("failed to decode weekly schedule: %w", err)
	}

	return pol, nil
}

// Upsert implements policy.PolicyRepository.
func (r *policyRepository) Upsert(ctx context.Context, pol policy.Policy) (policy.Policy, error) {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(pol.WeeklySchedule)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to encode weekly schedule: %w", err)
	}

	query := `
		INSERT INTO company_policies (
			company_id, weekly_schedule, tolerance_before, tolerance_after,
			round_to_nearest, break_mode, break_duration, count_early_as_extra,
			compensate_balance, compensation_mode, compensation_monthly_limit,
			require_location, latitude, longitude, radius_meters
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		ON CONFLICT (company_id) DO UPDATE SET
			weekly_schedule = EXCLUDED.weekly_schedule,
			tolerance_before = EXCLUDED.tolerance_before,
			tolerance_after = EXCLUDED.tolerance_after,
			round_to_nearest = EXCLUDED.round_to_nearest,
			break_mode = EXCLUDED.break_mode,
			break_duration = EXCLUDED.break_duration,
			count_early_as_extra = EXCLUDED.count_early_as_extra,
			compensate_balance = EXCLUDED.compensate_balance,
			compensation_mode = EXCLUDED.compensation_mode,
			compensation_monthly_limit = EXCLUDED.compensation_monthly_limit,
			require_location = EXCLUDED.require_location,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			radius_meters = EXCLUDED.radius_meters,
			updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		pol.CompanyID, scheduleJSON, pol.ToleranceBefore, pol.ToleranceAfter,
		pol.RoundToNearest, pol.BreakMode, pol.BreakDuration, pol.CountEarlyAsExtra,
		pol.CompensateBalance, pol.CompensationMode, pol.CompensationMonthlyLimit,
		pol.RequireLocation, pol.Latitude, pol.Longitude, pol.RadiusMeters,
	).Scan(&pol.CreatedAt, &pol.UpdatedAt)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to upsert company policy: %w", err)
	}

	return pol, nil
}
