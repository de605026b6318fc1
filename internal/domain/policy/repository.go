package policy

import "context"

// PolicyRepository defines data access for company attendance policies.
// Policies are read-only to the calculation engine; only the policy service
// writes them.
type PolicyRepository interface {
	// GetByCompanyID retrieves the policy for a company.
	// Returns ErrPolicyNotFound when none is configured.
	GetByCompanyID(ctx context.Context, companyID string) (Policy, error)

	// Upsert creates or fully replaces the policy for a company.
	Upsert(ctx context.Context, p Policy) (Policy, error)
}
