package summary

import (
	"context"
	"testing"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/policy"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeSummaryRepo struct {
	daily   map[string]summary.DailySummary
	monthly map[string]summary.MonthlySummary
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{
		daily:   make(map[string]summary.DailySummary),
		monthly: make(map[string]summary.MonthlySummary),
	}
}

func (f *fakeSummaryRepo) UpsertDaily(_ context.Context, s summary.DailySummary) error {
	f.daily[s.EmployeeID+"|"+s.Date] = s
	return nil
}

func (f *fakeSummaryRepo) GetDaily(_ context.Context, _, employeeID, date string) (summary.DailySummary, error) {
	s, ok := f.daily[employeeID+"|"+date]
	if !ok {
		return summary.DailySummary{}, summary.ErrDailySummaryNotFound
	}
	return s, nil
}

func (f *fakeSummaryRepo) ListDailyRange(_ context.Context, _, employeeID, startDate, endDate string) ([]summary.DailySummary, error) {
	var out []summary.DailySummary
	for _, s := range f.daily {
		if s.EmployeeID == employeeID && s.Date >= startDate && s.Date <= endDate {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSummaryRepo) ListDailyForMonth(_ context.Context, _, employeeID, month string) ([]summary.DailySummary, error) {
	var out []summary.DailySummary
	for _, s := range f.daily {
		if s.EmployeeID == employeeID && len(s.Date) >= 7 && s.Date[:7] == month {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSummaryRepo) ListDailyForCompanyDate(_ context.Context, companyID, date string) ([]summary.DailySummary, error) {
	var out []summary.DailySummary
	for _, s := range f.daily {
		if s.CompanyID == companyID && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSummaryRepo) UpsertMonthly(_ context.Context, m summary.MonthlySummary) error {
	f.monthly[m.EmployeeID+"|"+m.Month] = m
	return nil
}

func (f *fakeSummaryRepo) GetMonthly(_ context.Context, _, employeeID, month string) (summary.MonthlySummary, error) {
	m, ok := f.monthly[employeeID+"|"+month]
	if !ok {
		return summary.MonthlySummary{}, summary.ErrMonthlySummaryNotFound
	}
	return m, nil
}

type fakePunchRepo struct {
	events []punch.PunchEvent
}

func (f *fakePunchRepo) Create(_ context.Context, e punch.PunchEvent) (punch.PunchEvent, error) {
	f.events = append(f.events, e)
	return e, nil
}

func (f *fakePunchRepo) GetByID(_ context.Context, id string, _ string) (punch.PunchEvent, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return punch.PunchEvent{}, punch.ErrPunchNotFound
}

func (f *fakePunchRepo) ListActiveForDay(_ context.Context, _, employeeID string, dayStart, dayEnd time.Time) ([]punch.PunchEvent, error) {
	var out []punch.PunchEvent
	for _, e := range f.events {
		if e.EmployeeID == employeeID && e.Status == punch.StatusActive &&
			!e.PunchedAt.Before(dayStart) && e.PunchedAt.Before(dayEnd) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) List(_ context.Context, _ punch.ListPunchFilter, _ string) ([]punch.PunchEvent, int64, error) {
	return f.events, int64(len(f.events)), nil
}

func (f *fakePunchRepo) SetStatus(_ context.Context, id string, _ string, status punch.Status) error {
	for i := range f.events {
		if f.events[i].ID == id {
			f.events[i].Status = status
			return nil
		}
	}
	return punch.ErrPunchNotFound
}

type fakePolicyRepo struct {
	policies map[string]policy.Policy
}

func (f *fakePolicyRepo) GetByCompanyID(_ context.Context, companyID string) (policy.Policy, error) {
	p, ok := f.policies[companyID]
	if !ok {
		return policy.Policy{}, policy.ErrPolicyNotFound
	}
	return p, nil
}

func (f *fakePolicyRepo) Upsert(_ context.Context, p policy.Policy) (policy.Policy, error) {
	if f.policies == nil {
		f.policies = make(map[string]policy.Policy)
	}
	f.policies[p.CompanyID] = p
	return p, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, _ string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) UpdateCustomSchedule(_ context.Context, id string, _ string, schedule policy.WeeklySchedule) error {
	e, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.CustomSchedule = schedule
	f.employees[id] = e
	return nil
}

// ===== SERVICE TESTS =====

func newTestService(pol *policy.Policy, emp *employee.Employee, events []punch.PunchEvent) (summary.SummaryService, *fakeSummaryRepo) {
	summaryRepo := newFakeSummaryRepo()
	punchRepo := &fakePunchRepo{events: events}
	policyRepo := &fakePolicyRepo{policies: map[string]policy.Policy{}}
	if pol != nil {
		policyRepo.policies[pol.CompanyID] = *pol
	}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
	if emp != nil {
		employeeRepo.employees[emp.ID] = *emp
	}
	svc := NewSummaryService(summaryRepo, punchRepo, policyRepo, employeeRepo)
	return svc, summaryRepo
}

func TestSummaryService_RecalculateDaily_ComputesAndPersists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pol := testPolicy()

	svc, repo := newTestService(&pol, nil, []punch.PunchEvent{
		punchAt(punch.KindEntry, "08:07"),
		punchAt(punch.KindExit, "17:03"),
	})

	result, err := svc.RecalculateDaily(ctx, "company-1", "employee-1", testDay)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-12", result.Date)
	assert.Equal(t, "normal", string(result.Status))
	assert.Equal(t, 480, result.WorkedMinutes)

	persisted, err := repo.GetDaily(ctx, "company-1", "employee-1", "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, result, persisted)
}

func TestSummaryService_RecalculateDaily_FallsBackToDefaultPolicy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// No policy configured for the company: the default applies, with its
	// Monday to Friday 08:00-17:00 schedule.
	svc, _ := newTestService(nil, nil, []punch.PunchEvent{
		punchAt(punch.KindEntry, "08:03"),
		punchAt(punch.KindExit, "17:00"),
	})

	result, err := svc.RecalculateDaily(ctx, "company-1", "employee-1", testDay)
	require.NoError(t, err)

	require.NotNil(t, result.ScheduledStart)
	assert.Equal(t, "08:00", *result.ScheduledStart)
	// Default tolerance is 5 minutes and break mode manual.
	assert.Equal(t, 0, result.DelayMinutes)
	assert.Equal(t, 540, result.ExpectedMinutes)
}

func TestSummaryService_RecalculateDaily_UsesEmployeeOverride(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pol := testPolicy()
	emp := employee.Employee{
		ID:        "employee-1",
		CompanyID: "company-1",
		IsActive:  true,
		CustomSchedule: policy.WeeklySchedule{
			"wednesday": {Start: "12:00", End: "18:00", WorkDay: true},
		},
	}

	svc, _ := newTestService(&pol, &emp, []punch.PunchEvent{
		punchAt(punch.KindEntry, "12:00"),
		punchAt(punch.KindExit, "18:00"),
	})

	result, err := svc.RecalculateDaily(ctx, "company-1", "employee-1", testDay)
	require.NoError(t, err)

	require.NotNil(t, result.ScheduledStart)
	assert.Equal(t, "12:00", *result.ScheduledStart)
	assert.Equal(t, 300, result.ExpectedMinutes) // 360 minus automatic break
}

func TestSummaryService_RecalculateDaily_OverrideMissingWeekdayUsesCompanySchedule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pol := testPolicy()
	emp := employee.Employee{
		ID:        "employee-1",
		CompanyID: "company-1",
		IsActive:  true,
		CustomSchedule: policy.WeeklySchedule{
			"wednesday": {Start: "12:00", End: "18:00", WorkDay: true},
		},
	}

	svc, _ := newTestService(&pol, &emp, nil)

	// Thursday is not in the override, so the company window applies and a
	// day without punches is an absence, not a day off.
	thursday := testDay.AddDate(0, 0, 1)
	result, err := svc.RecalculateDaily(ctx, "company-1", "employee-1", thursday)
	require.NoError(t, err)

	require.NotNil(t, result.ScheduledStart)
	assert.Equal(t, "08:00", *result.ScheduledStart)
	assert.Equal(t, 480, result.ExpectedMinutes)
	assert.Equal(t, summary.DayStatusAbsent, result.Status)
	assert.Equal(t, -480, result.BalanceMinutes)
}

func TestSummaryService_RecalculateMonthly_FoldsDailySummaries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pol := testPolicy()

	svc, repo := newTestService(&pol, nil, []punch.PunchEvent{
		punchAt(punch.KindEntry, "08:00"),
		punchAt(punch.KindExit, "17:00"),
	})

	_, err := svc.RecalculateDaily(ctx, "company-1", "employee-1", testDay)
	require.NoError(t, err)

	monthly, err := svc.RecalculateMonthly(ctx, "company-1", "employee-1", 2025, time.March)
	require.NoError(t, err)

	assert.Equal(t, "2025-03", monthly.Month)
	assert.Equal(t, 480, monthly.WorkedMinutes)
	assert.Equal(t, 1, monthly.DaysWorked)
	assert.Equal(t, "balanced", string(monthly.Status))

	persisted, err := repo.GetMonthly(ctx, "company-1", "employee-1", "2025-03")
	require.NoError(t, err)
	assert.Equal(t, monthly, persisted)
}

func TestSummaryService_GetDaily_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pol := testPolicy()
	svc, _ := newTestService(&pol, nil, nil)

	_, err := svc.GetDaily(ctx, "company-1", "employee-1", "2025-03-12")
	assert.ErrorIs(t, err, summary.ErrDailySummaryNotFound)
}
