package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/shared"
)

func mustAccount(t *testing.T, repo *GormBillingAccountRepository, customerID uuid.UUID, number string) *billing.BillingAccount {
	account, err := billing.NewBillingAccount(customerID, number)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), account))
	return account
}

func mustBill(t *testing.T, repo *GormBillRepository, accountID uuid.UUID, month string, status billing.BillStatus, amount string) *billing.Bill {
	bill, err := billing.NewBill(accountID, month, status)
	require.NoError(t, err)
	bill.AddAmount(decimal.RequireFromString(amount))
	require.NoError(t, repo.Save(context.Background(), bill))
	return bill
}

func TestGormBillingAccountRepository_FindByNumber(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)
	accounts := NewGormBillingAccountRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, "Ana Horvat", "", "")
	require.NoError(t, customers.Save(ctx, customer))
	account := mustAccount(t, accounts, customer.ID, "9001242277")

	t.Run("finds by account number", func(t *testing.T) {
		found, err := accounts.FindByNumber(ctx, "9001242277")
		require.NoError(t, err)
		assert.Equal(t, account.ID, found.ID)
		assert.Equal(t, customer.ID, found.CustomerID)
		assert.Equal(t, billing.AccountStatusActive, found.Status)
	})

	t.Run("unknown account number", func(t *testing.T) {
		found, err := accounts.FindByNumber(ctx, "9009999999")
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormBillingAccountRepository_FindByCustomer(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)
	accounts := NewGormBillingAccountRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, "Ana Horvat", "", "")
	require.NoError(t, customers.Save(ctx, customer))
	mustAccount(t, accounts, customer.ID, "9005550002")
	mustAccount(t, accounts, customer.ID, "9005550001")

	found, err := accounts.FindByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "9005550001", found[0].AccountNumber)
	assert.Equal(t, "9005550002", found[1].AccountNumber)
}

func TestGormBillRepository_FindOpenByAccount(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)
	accounts := NewGormBillingAccountRepository(db)
	bills := NewGormBillRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, "Ana Horvat", "", "")
	require.NoError(t, customers.Save(ctx, customer))
	account := mustAccount(t, accounts, customer.ID, "9001242277")

	mustBill(t, bills, account.ID, "2024-11", billing.BillStatusPaid, "29.99")
	mustBill(t, bills, account.ID, "2024-12", billing.BillStatusOverdue, "31.49")
	mustBill(t, bills, account.ID, "2025-01", billing.BillStatusPending, "29.99")

	open, err := bills.FindOpenByAccount(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, open, 2, "paid bills are not open")

	// newest month first
	assert.Equal(t, "2025-01", open[0].BillMonth)
	assert.Equal(t, "2024-12", open[1].BillMonth)
	assert.True(t, open[0].TotalAmount.Equal(decimal.RequireFromString("29.99")))
}

func TestGormBillRepository_FindLatestOpenByAccount(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)
	accounts := NewGormBillingAccountRepository(db)
	bills := NewGormBillRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, "Ana Horvat", "", "")
	require.NoError(t, customers.Save(ctx, customer))
	account := mustAccount(t, accounts, customer.ID, "9001242277")

	t.Run("no open bills", func(t *testing.T) {
		latest, err := bills.FindLatestOpenByAccount(ctx, account.ID)
		assert.Nil(t, latest)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	mustBill(t, bills, account.ID, "2024-12", billing.BillStatusPending, "29.99")
	latest2501 := mustBill(t, bills, account.ID, "2025-01", billing.BillStatusOverdue, "45.20")
	mustBill(t, bills, account.ID, "2025-02", billing.BillStatusPaid, "29.99")

	t.Run("picks newest open month, ignoring paid", func(t *testing.T) {
		latest, err := bills.FindLatestOpenByAccount(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, latest2501.ID, latest.ID)
		assert.Equal(t, "2025-01", latest.BillMonth)
	})
}

func TestGormInvoiceItemRepository_FindByBill(t *testing.T) {
	db := setupTestDB(t)
	customers := NewGormCustomerRepository(db)
	accounts := NewGormBillingAccountRepository(db)
	bills := NewGormBillRepository(db)
	items := NewGormInvoiceItemRepository(db)
	plans := NewGormPlanRepository(db)
	ctx := context.Background()

	customer := mustCustomer(t, "Ana Horvat", "", "")
	require.NoError(t, customers.Save(ctx, customer))
	account := mustAccount(t, accounts, customer.ID, "9001242277")
	bill := mustBill(t, bills, account.ID, "2025-01", billing.BillStatusPending, "0.00")

	plan, err := billing.NewPlan("Unlimited 5G", "Unlimited data", decimal.RequireFromString("29.99"))
	require.NoError(t, err)
	require.NoError(t, plans.Save(ctx, plan))

	charge, err := billing.NewPlanCharge(bill.ID, plan.ID, plan.MonthlyPrice)
	require.NoError(t, err)
	require.NoError(t, items.Save(ctx, charge))

	extra, err := billing.NewExtraCost(bill.ID, "SMS Parking", "Zone 1 parking", decimal.RequireFromString("1.50"))
	require.NoError(t, err)
	require.NoError(t, items.Save(ctx, extra))

	found, err := items.FindByBill(ctx, bill.ID)
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, billing.InvoiceItemTypePlan, found[0].ItemType)
	require.NotNil(t, found[0].PlanID)
	assert.Equal(t, plan.ID, *found[0].PlanID)
	assert.Equal(t, billing.InvoiceItemTypeExtraCost, found[1].ItemType)
	assert.Equal(t, "SMS Parking", found[1].ExtraCostType)
	assert.True(t, found[1].Amount.Equal(decimal.RequireFromString("1.50")))

	resolved, err := plans.FindByID(ctx, *found[0].PlanID)
	require.NoError(t, err)
	assert.Equal(t, "Unlimited 5G", resolved.Name)
}

func TestBillingRepositories_InterfaceCompliance(t *testing.T) {
	var _ billing.BillingAccountRepository = NewGormBillingAccountRepository(nil)
	var _ billing.BillRepository = NewGormBillRepository(nil)
	var _ billing.InvoiceItemRepository = NewGormInvoiceItemRepository(nil)
	var _ billing.PlanRepository = NewGormPlanRepository(nil)
}
