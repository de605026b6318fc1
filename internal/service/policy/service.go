package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
	employee.EmployeeRepository
}

func NewPolicyService(
	policyRepo policy.PolicyRepository,
	employeeRepo employee.EmployeeRepository,
) policy.PolicyService {
	return &PolicyServiceImpl{
		PolicyRepository:   policyRepo,
		EmployeeRepository: employeeRepo,
	}
}

func companyFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

// GetPolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) GetPolicy(ctx context.Context) (policy.PolicyResponse, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	pol, err := s.PolicyRepository.GetByCompanyID(ctx, companyID)
	if err != nil {
		if errors.Is(err, policy.ErrPolicyNotFound) {
			return policy.Default(companyID).ToResponse(), nil
		}
		return policy.PolicyResponse{}, fmt.Errorf("failed to get company policy: %w", err)
	}

	return pol.ToResponse(), nil
}

// UpdatePolicy implements policy.PolicyService.
func (s *PolicyServiceImpl) UpdatePolicy(ctx context.Context, req policy.UpdatePolicyRequest) (policy.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.PolicyResponse{}, err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return policy.PolicyResponse{}, err
	}

	updated, err := s.PolicyRepository.Upsert(ctx, req.ToPolicy(companyID))
	if err != nil {
		return policy.PolicyResponse{}, fmt.Errorf("failed to upsert company policy: %w", err)
	}

	return updated.ToResponse(), nil
}

// GetScheduleOverride implements policy.PolicyService.
func (s *PolicyServiceImpl) GetScheduleOverride(ctx context.Context, employeeID string) (policy.WeeklySchedule, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp.CustomSchedule, nil
}

// UpdateScheduleOverride implements policy.PolicyService.
func (s *PolicyServiceImpl) UpdateScheduleOverride(ctx context.Context, req policy.UpdateScheduleOverrideRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	companyID, err := companyFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.EmployeeRepository.UpdateCustomSchedule(ctx, req.EmployeeID, companyID, req.Schedule); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to update schedule override: %w", err)
	}

	return nil
}
