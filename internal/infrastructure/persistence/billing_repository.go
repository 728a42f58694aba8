package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// openBillStatuses are the statuses that leave a bill awaiting payment
var openBillStatuses = []string{
	string(billing.BillStatusPending),
	string(billing.BillStatusOverdue),
}

// GormBillingAccountRepository implements BillingAccountRepository using GORM
type GormBillingAccountRepository struct {
	db *gorm.DB
}

// NewGormBillingAccountRepository creates a new GormBillingAccountRepository
func NewGormBillingAccountRepository(db *gorm.DB) *GormBillingAccountRepository {
	return &GormBillingAccountRepository{db: db}
}

// FindByID finds a billing account by its ID
func (r *GormBillingAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.BillingAccount, error) {
	var model models.BillingAccountModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a billing account by its account number
func (r *GormBillingAccountRepository) FindByNumber(ctx context.Context, accountNumber string) (*billing.BillingAccount, error) {
	var model models.BillingAccountModel
	if err := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer returns all billing accounts owned by a customer
func (r *GormBillingAccountRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]billing.BillingAccount, error) {
	var accountModels []models.BillingAccountModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("account_number ASC").
		Find(&accountModels).Error
	if err != nil {
		return nil, err
	}

	accounts := make([]billing.BillingAccount, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = *model.ToDomain()
	}
	return accounts, nil
}

// Save creates or updates a billing account
func (r *GormBillingAccountRepository) Save(ctx context.Context, account *billing.BillingAccount) error {
	var model models.BillingAccountModel
	model.FromDomain(account)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes a billing account; its bills cascade
func (r *GormBillingAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BillingAccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormBillRepository implements BillRepository using GORM
type GormBillRepository struct {
	db *gorm.DB
}

// NewGormBillRepository creates a new GormBillRepository
func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

// FindByID finds a bill by its ID
func (r *GormBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindOpenByAccount returns an account's open bills, newest month first.
// Months are zero-padded so the string ordering is chronological.
func (r *GormBillRepository) FindOpenByAccount(ctx context.Context, accountID uuid.UUID) ([]billing.Bill, error) {
	var billModels []models.BillModel
	err := r.db.WithContext(ctx).
		Where("billing_account_id = ? AND status IN ?", accountID, openBillStatuses).
		Order("bill_month DESC").
		Find(&billModels).Error
	if err != nil {
		return nil, err
	}

	bills := make([]billing.Bill, len(billModels))
	for i, model := range billModels {
		bills[i] = *model.ToDomain()
	}
	return bills, nil
}

// FindLatestOpenByAccount returns the most recent open bill for an account
func (r *GormBillRepository) FindLatestOpenByAccount(ctx context.Context, accountID uuid.UUID) (*billing.Bill, error) {
	var model models.BillModel
	err := r.db.WithContext(ctx).
		Where("billing_account_id = ? AND status IN ?", accountID, openBillStatuses).
		Order("bill_month DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a bill
func (r *GormBillRepository) Save(ctx context.Context, bill *billing.Bill) error {
	var model models.BillModel
	model.FromDomain(bill)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes a bill; its invoice items cascade
func (r *GormBillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BillModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormInvoiceItemRepository implements InvoiceItemRepository using GORM
type GormInvoiceItemRepository struct {
	db *gorm.DB
}

// NewGormInvoiceItemRepository creates a new GormInvoiceItemRepository
func NewGormInvoiceItemRepository(db *gorm.DB) *GormInvoiceItemRepository {
	return &GormInvoiceItemRepository{db: db}
}

// FindByBill returns all invoice items on a bill
func (r *GormInvoiceItemRepository) FindByBill(ctx context.Context, billID uuid.UUID) ([]billing.InvoiceItem, error) {
	var itemModels []models.InvoiceItemModel
	err := r.db.WithContext(ctx).
		Where("bill_id = ?", billID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	items := make([]billing.InvoiceItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Save creates or updates an invoice item
func (r *GormInvoiceItemRepository) Save(ctx context.Context, item *billing.InvoiceItem) error {
	var model models.InvoiceItemModel
	model.FromDomain(item)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormPlanRepository implements PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GormPlanRepository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// FindByID finds a plan by its ID
func (r *GormPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns the whole plan catalog
func (r *GormPlanRepository) FindAll(ctx context.Context) ([]billing.Plan, error) {
	var planModels []models.PlanModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]billing.Plan, len(planModels))
	for i, model := range planModels {
		plans[i] = *model.ToDomain()
	}
	return plans, nil
}

// Save creates or updates a plan
func (r *GormPlanRepository) Save(ctx context.Context, plan *billing.Plan) error {
	var model models.PlanModel
	model.FromDomain(plan)
	return r.db.WithContext(ctx).Save(&model).Error
}
