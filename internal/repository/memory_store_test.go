package repository

import (
	"sync"
	"testing"

	"governance-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func newTestStore(totalBudget, allocatedBudget, spentBudget int64) *MemoryStore {
	return NewMemoryStore(models.NationalStats{
		TotalBudget:     totalBudget,
		AllocatedBudget: allocatedBudget,
		SpentBudget:     spentBudget,
	})
}

func mustAddPayment(t *testing.T, store *MemoryStore, payment models.PaymentRequest) models.PaymentRequest {
	t.Helper()
	added, err := store.AddPaymentRequest(payment)
	require.NoError(t, err)
	return added
}

func validProjectInput() models.CreateProjectInput {
	return models.CreateProjectInput{
		Title:       "Provincial Hospital Upgrade",
		Description: "Ward expansion and equipment",
		Budget:      2_000_000_000,
		Size:        models.SizeMedium,
		Priority:    models.PriorityHigh,
		Province:    "Gandaki",
		LocalUnit:   "Pokhara Metropolitan",
		StartDate:   "2024-03-01",
		EndDate:     "2026-03-01",
		CreatedBy:   models.LevelProvincial,
	}
}

// ============================================================================
// PROJECT REGISTRY
// ============================================================================

func TestCreateProject_RoundTrip(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	input := validProjectInput()

	created, err := store.CreateProject(input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.ProjectPlanning, created.Status)
	assert.Equal(t, int64(0), created.SpentAmount)
	assert.Equal(t, 0, created.Progress)

	fetched, err := store.GetProjectByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)

	assert.Equal(t, input.Title, fetched.Title)
	assert.Equal(t, input.Budget, fetched.Budget)
	assert.Equal(t, input.Size, fetched.Size)
	assert.Equal(t, input.CreatedBy, fetched.CreatedBy)
}

func TestCreateProject_IncrementsProjectCounter(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	before := store.GetNationalStats().TotalProjects

	_, err := store.CreateProject(validProjectInput())
	require.NoError(t, err)

	assert.Equal(t, before+1, store.GetNationalStats().TotalProjects)
}

func TestCreateProject_UnauthorizedSizeRejectedWithoutMutation(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	input := validProjectInput()
	input.CreatedBy = models.LevelLocal // LOCAL may not create MEDIUM

	_, err := store.CreateProject(input)
	assert.ErrorIs(t, err, models.ErrUnauthorizedSize)
	assert.Empty(t, store.GetProjects(models.ProjectFilters{}))
	assert.Equal(t, 0, store.GetNationalStats().TotalProjects)
}

func TestCreateProject_BudgetOutOfRangeRejected(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	input := validProjectInput()
	input.Budget = 50_000_000 // below the MEDIUM minimum

	_, err := store.CreateProject(input)
	assert.ErrorIs(t, err, models.ErrBudgetOutOfRange)
}

func TestCreateProject_EndBeforeStartRejected(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	input := validProjectInput()
	input.StartDate = "2025-01-01"
	input.EndDate = "2024-01-01"

	_, err := store.CreateProject(input)
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestUpdateProject_NotFound(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)

	_, err := store.UpdateProject("missing", models.UpdateProjectInput{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateProject_MergesPartialFields(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	created, err := store.CreateProject(validProjectInput())
	require.NoError(t, err)

	status := models.ProjectInProgress
	progress := 35
	updated, err := store.UpdateProject(created.ID, models.UpdateProjectInput{
		Status:   &status,
		Progress: &progress,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectInProgress, updated.Status)
	assert.Equal(t, 35, updated.Progress)
	// Untouched fields survive the merge.
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Budget, updated.Budget)
}

func TestUpdateProject_RevalidatesMutatedBudget(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	created, err := store.CreateProject(validProjectInput())
	require.NoError(t, err)

	badBudget := int64(10_000_000_000) // above the MEDIUM maximum
	_, err = store.UpdateProject(created.ID, models.UpdateProjectInput{Budget: &badBudget})
	assert.ErrorIs(t, err, models.ErrBudgetOutOfRange)

	unchanged, err := store.GetProjectByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Budget, unchanged.Budget)
}

func TestUpdateProject_RejectsSizeBeyondAuthority(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	created, err := store.CreateProject(validProjectInput())
	require.NoError(t, err)

	// A provincial project cannot grow to LARGE even with a matching budget.
	size := models.SizeLarge
	budget := int64(6_000_000_000)
	_, err = store.UpdateProject(created.ID, models.UpdateProjectInput{Size: &size, Budget: &budget})
	assert.ErrorIs(t, err, models.ErrUnauthorizedSize)
}

func TestUpdateProject_ProgressBounds(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 0, 0)
	created, err := store.CreateProject(validProjectInput())
	require.NoError(t, err)

	over := 150
	_, err = store.UpdateProject(created.ID, models.UpdateProjectInput{Progress: &over})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestGetProjects_FiltersAreANDed(t *testing.T) {
	store := NewSeededStore()

	all := store.GetProjects(models.ProjectFilters{})
	assert.Len(t, all, 3)
	// Insertion order is stable.
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
	assert.Equal(t, "3", all[2].ID)

	bagmati := store.GetProjects(models.ProjectFilters{Province: "Bagmati"})
	assert.Len(t, bagmati, 2)

	bagmatiLarge := store.GetProjects(models.ProjectFilters{Province: "Bagmati", Size: "LARGE"})
	assert.Len(t, bagmatiLarge, 1)
	assert.Equal(t, "Kathmandu-Terai Fast Track", bagmatiLarge[0].Title)

	none := store.GetProjects(models.ProjectFilters{Province: "Bagmati", Status: "COMPLETED"})
	assert.Empty(t, none)
}

// ============================================================================
// ALLOCATION LEDGER
// ============================================================================

func TestAllocateBudget_InsufficientFundsLeavesAggregateUntouched(t *testing.T) {
	store := newTestStore(100, 90, 0)

	_, err := store.AllocateBudget(models.AllocateBudgetInput{
		Recipient: "Bagmati Province", RecipientType: models.RecipientProvince,
		Amount: 20, Purpose: "Roads", FiscalYear: "2080/81", AllocatedBy: "admin",
	})

	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, int64(90), store.GetNationalStats().AllocatedBudget)
	assert.Empty(t, store.GetAllocations(models.AllocationFilters{}))
}

func TestAllocateBudget_SuccessUpdatesAggregate(t *testing.T) {
	store := newTestStore(100, 90, 0)

	allocation, err := store.AllocateBudget(models.AllocateBudgetInput{
		Recipient: "Bagmati Province", RecipientType: models.RecipientProvince,
		Amount: 5, Purpose: "Roads", FiscalYear: "2080/81", AllocatedBy: "admin",
	})

	require.NoError(t, err)
	assert.Equal(t, models.AllocationAllocated, allocation.Status)
	assert.NotEmpty(t, allocation.ID)
	assert.NotEmpty(t, allocation.AllocatedDate)
	assert.Equal(t, int64(95), store.GetNationalStats().AllocatedBudget)
}

func TestAllocateBudget_ExactRemainderSucceeds(t *testing.T) {
	store := newTestStore(100, 90, 0)

	_, err := store.AllocateBudget(models.AllocateBudgetInput{
		Recipient: "Karnali Province", RecipientType: models.RecipientProvince,
		Amount: 10, Purpose: "Bridges", FiscalYear: "2080/81",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), store.GetNationalStats().AllocatedBudget)
}

func TestAllocateBudget_NonPositiveAmountRejected(t *testing.T) {
	store := newTestStore(100, 0, 0)

	_, err := store.AllocateBudget(models.AllocateBudgetInput{Amount: 0})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = store.AllocateBudget(models.AllocateBudgetInput{Amount: -5})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestAllocateBudget_ConcurrentRequestsNeverOverdraw(t *testing.T) {
	store := newTestStore(1000, 0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.AllocateBudget(models.AllocateBudgetInput{
				Recipient: "Province", RecipientType: models.RecipientProvince,
				Amount: 15, Purpose: "Stress", FiscalYear: "2080/81",
			})
		}()
	}
	wg.Wait()

	stats := store.GetNationalStats()
	assert.LessOrEqual(t, stats.AllocatedBudget, stats.TotalBudget)
	// 66 allocations of 15 fit into 1000; the 67th must have failed.
	assert.Equal(t, int64(990), stats.AllocatedBudget)
	assert.Len(t, store.GetAllocations(models.AllocationFilters{}), 66)
}

func TestGetAllocations_Filters(t *testing.T) {
	store := NewSeededStore()

	provinces := store.GetAllocations(models.AllocationFilters{RecipientType: "PROVINCE"})
	assert.Len(t, provinces, 2)

	year := store.GetAllocations(models.AllocationFilters{FiscalYear: "2080/81"})
	assert.Len(t, year, 3)
}

// ============================================================================
// POLICY DECISIONS
// ============================================================================

func TestDecidePolicy_Approve(t *testing.T) {
	store := NewSeededStore()

	decided, err := store.DecidePolicy("1", models.PolicyDecisionInput{
		Status: models.PolicyApproved, DecidedBy: "PM Office",
	})

	require.NoError(t, err)
	assert.Equal(t, models.PolicyApproved, decided.Status)
	assert.Equal(t, "PM Office", decided.DecidedBy)
	assert.NotEmpty(t, decided.DecidedDate)
}

func TestDecidePolicy_Terminal(t *testing.T) {
	store := NewSeededStore()

	_, err := store.DecidePolicy("1", models.PolicyDecisionInput{
		Status: models.PolicyApproved, DecidedBy: "PM Office",
	})
	require.NoError(t, err)

	_, err = store.DecidePolicy("1", models.PolicyDecisionInput{
		Status: models.PolicyRejected, DecidedBy: "Cabinet",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyDecided)

	// Status is unchanged by the failed second decision.
	policies := store.GetPolicies("APPROVED")
	var found bool
	for _, p := range policies {
		if p.ID == "1" {
			found = true
			assert.Equal(t, "PM Office", p.DecidedBy)
		}
	}
	assert.True(t, found)
}

func TestDecidePolicy_NotFound(t *testing.T) {
	store := NewSeededStore()

	_, err := store.DecidePolicy("missing", models.PolicyDecisionInput{Status: models.PolicyApproved})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDecidePolicy_RejectsPendingStatus(t *testing.T) {
	store := NewSeededStore()

	_, err := store.DecidePolicy("1", models.PolicyDecisionInput{Status: models.PolicyPending})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

// ============================================================================
// PAYMENT SETTLEMENT
// ============================================================================

func TestProcessPayment_ApprovalDebitsBothAggregates(t *testing.T) {
	store := NewSeededStore()
	projectBefore, _ := store.GetProjectByID("1")
	statsBefore := store.GetNationalStats()

	payment, err := store.ProcessPayment("1", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentApproved, payment.Status)

	projectAfter, _ := store.GetProjectByID("1")
	statsAfter := store.GetNationalStats()
	assert.Equal(t, projectBefore.SpentAmount+payment.Amount, projectAfter.SpentAmount)
	assert.Equal(t, statsBefore.SpentBudget+payment.Amount, statsAfter.SpentBudget)
}

func TestProcessPayment_ExactlyOnce(t *testing.T) {
	store := NewSeededStore()

	first, err := store.ProcessPayment("1", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})
	require.NoError(t, err)

	_, err = store.ProcessPayment("1", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})
	assert.ErrorIs(t, err, models.ErrAlreadyProcessed)

	// The debit applied exactly once.
	project, _ := store.GetProjectByID(first.ProjectID)
	assert.Equal(t, int64(28_000_000_000)+first.Amount, project.SpentAmount)
	assert.Equal(t, int64(45_000_000_000)+first.Amount, store.GetNationalStats().SpentBudget)
}

func TestProcessPayment_RejectionSkipsDebit(t *testing.T) {
	store := NewSeededStore()
	statsBefore := store.GetNationalStats()

	payment, err := store.ProcessPayment("2", models.PaymentProcessInput{
		Status: models.PaymentRejected, ApprovedBy: "Finance Ministry",
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, payment.Status)
	assert.Equal(t, statsBefore.SpentBudget, store.GetNationalStats().SpentBudget)

	project, _ := store.GetProjectByID("3")
	assert.Equal(t, int64(3_200_000_000), project.SpentAmount)
}

func TestProcessPayment_MissingProjectIsHardFailure(t *testing.T) {
	store := NewSeededStore()
	mustAddPayment(t, store, models.PaymentRequest{
		ID: "orphan", ProjectID: "no-such-project", Requester: "Ghost", Amount: 100,
	})

	_, err := store.ProcessPayment("orphan", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})

	assert.ErrorIs(t, err, models.ErrNotFound)
	// No partial approval: the request stays pending and settleable.
	pending := store.GetPaymentRequests("PENDING")
	var stillPending bool
	for _, p := range pending {
		if p.ID == "orphan" {
			stillPending = true
		}
	}
	assert.True(t, stillPending)
}

func TestProcessPayment_OverProjectBudgetRejected(t *testing.T) {
	store := NewSeededStore()
	// Project 2 is fully spent (25B of 25B); any further debit overruns it.
	mustAddPayment(t, store, models.PaymentRequest{
		ID: "extra", ProjectID: "2", Requester: "Gandaki Province", Amount: 1_000_000,
	})

	_, err := store.ProcessPayment("extra", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})

	assert.ErrorIs(t, err, models.ErrBudgetExceeded)
	project, _ := store.GetProjectByID("2")
	assert.Equal(t, int64(25_000_000_000), project.SpentAmount)
}

func TestProcessPayment_SpendCannotExceedAllocated(t *testing.T) {
	store := newTestStore(1_000_000_000_000, 100, 90)
	_, err := store.CreateProject(validProjectInput())
	require.NoError(t, err)
	projects := store.GetProjects(models.ProjectFilters{})
	mustAddPayment(t, store, models.PaymentRequest{
		ID: "p1", ProjectID: projects[0].ID, Requester: "Gandaki Province", Amount: 20,
	})

	_, err = store.ProcessPayment("p1", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})

	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, int64(90), store.GetNationalStats().SpentBudget)
}

func TestAddPaymentRequest_AssignsIDAndForcesPending(t *testing.T) {
	store := NewSeededStore()

	added := mustAddPayment(t, store, models.PaymentRequest{
		ProjectID: "3", Requester: "Bagmati Province", Amount: 50_000_000,
		Status: models.PaymentApproved, // intake always starts PENDING
	})

	assert.NotEmpty(t, added.ID)
	assert.Equal(t, models.PaymentPending, added.Status)
	assert.NotEmpty(t, added.RequestDate)
}

func TestAddPaymentRequest_DuplicateIDRejected(t *testing.T) {
	store := NewSeededStore()

	// Seeded request "1" already exists; a second "1" would be unreachable.
	_, err := store.AddPaymentRequest(models.PaymentRequest{
		ID: "1", ProjectID: "1", Requester: "Imposter", Amount: 100,
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	// The original request is untouched and still settleable.
	processed, err := store.ProcessPayment("1", models.PaymentProcessInput{
		Status: models.PaymentApproved, ApprovedBy: "Finance Ministry",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bagmati Province", processed.Requester)
}

// ============================================================================
// READ-SIDE QUERIES
// ============================================================================

func TestGetContractors_Filters(t *testing.T) {
	store := NewSeededStore()

	all := store.GetContractors(models.ContractorFilters{})
	assert.Len(t, all, 3)

	verified := true
	assert.Len(t, store.GetContractors(models.ContractorFilters{Verified: &verified}), 3)

	roads := store.GetContractors(models.ContractorFilters{Specialization: "road"})
	assert.Len(t, roads, 1)
	assert.Equal(t, "c1", roads[0].ID)
}

func TestGetContractorByID(t *testing.T) {
	store := NewSeededStore()

	contractor, err := store.GetContractorByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Ram Kumar Shrestha", contractor.Name)

	_, err = store.GetContractorByID("missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGetProjectsByContractor(t *testing.T) {
	store := NewSeededStore()

	history := store.GetProjectsByContractor("c1")
	require.Len(t, history, 1)
	assert.Equal(t, "Kathmandu-Terai Fast Track", history[0].Title)

	assert.Empty(t, store.GetProjectsByContractor("missing"))
}

func TestGetQualityReports_ByProject(t *testing.T) {
	store := NewSeededStore()

	assert.Len(t, store.GetQualityReports(""), 2)

	scoped := store.GetQualityReports("1")
	assert.Len(t, scoped, 1)
	assert.Equal(t, "qr1", scoped[0].ID)
}

func TestGetProvinceStats_Seeded(t *testing.T) {
	store := NewSeededStore()

	provinces := store.GetProvinceStats()
	assert.Len(t, provinces, 7)
	assert.Equal(t, "Koshi", provinces[0].Name)
}
