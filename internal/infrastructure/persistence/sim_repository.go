package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/domain/subscriber"
	"github.com/telco/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSimRepository implements SimRepository using GORM
type GormSimRepository struct {
	db *gorm.DB
}

// NewGormSimRepository creates a new GormSimRepository
func NewGormSimRepository(db *gorm.DB) *GormSimRepository {
	return &GormSimRepository{db: db}
}

// FindByID finds a SIM by its ID
func (r *GormSimRepository) FindByID(ctx context.Context, id uuid.UUID) (*subscriber.Sim, error) {
	var model models.SimModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByICCID finds a SIM by its card identifier
func (r *GormSimRepository) FindByICCID(ctx context.Context, iccid string) (*subscriber.Sim, error) {
	var model models.SimModel
	if err := r.db.WithContext(ctx).Where("iccid = ?", iccid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all SIMs matching the filter
func (r *GormSimRepository) FindAll(ctx context.Context, filter shared.Filter) ([]subscriber.Sim, error) {
	var simModels []models.SimModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SimModel{}), filter, true)

	if err := query.Find(&simModels).Error; err != nil {
		return nil, err
	}

	sims := make([]subscriber.Sim, len(simModels))
	for i, model := range simModels {
		sims[i] = *model.ToDomain()
	}
	return sims, nil
}

// Count counts SIMs matching the filter
func (r *GormSimRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SimModel{}), filter, false)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a SIM
func (r *GormSimRepository) Save(ctx context.Context, sim *subscriber.Sim) error {
	var model models.SimModel
	model.FromDomain(sim)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes a SIM; its assignments cascade
func (r *GormSimRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SimModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormSimRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "carrier":
			if s, ok := value.(string); ok && s != "" {
				query = query.Where("LOWER(carrier) LIKE ?", "%"+strings.ToLower(s)+"%")
			}
		case "unassigned":
			if value == true {
				query = query.Where("id NOT IN (?)",
					r.db.Model(&models.AssignmentModel{}).Distinct("sim_id"))
			}
		}
	}

	if !paginate {
		return query
	}

	query = query.Order("iccid ASC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// GormSimTypeRepository implements SimTypeRepository using GORM
type GormSimTypeRepository struct {
	db *gorm.DB
}

// NewGormSimTypeRepository creates a new GormSimTypeRepository
func NewGormSimTypeRepository(db *gorm.DB) *GormSimTypeRepository {
	return &GormSimTypeRepository{db: db}
}

// FindAll returns the whole SIM type catalog in insertion order
func (r *GormSimTypeRepository) FindAll(ctx context.Context) ([]subscriber.SimType, error) {
	var typeModels []models.SimTypeModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}

	simTypes := make([]subscriber.SimType, len(typeModels))
	for i, model := range typeModels {
		simTypes[i] = *model.ToDomain()
	}
	return simTypes, nil
}

// Save creates or updates a SIM type
func (r *GormSimTypeRepository) Save(ctx context.Context, simType *subscriber.SimType) error {
	var model models.SimTypeModel
	model.FromDomain(simType)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormAssignmentRepository implements AssignmentRepository using GORM
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// FindByCustomer returns a customer's assignments joined with their SIMs,
// oldest assignment first.
func (r *GormAssignmentRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]subscriber.AssignedSim, error) {
	var assignmentModels []models.AssignmentModel
	err := r.db.WithContext(ctx).
		Preload("Sim").
		Where("customer_id = ?", customerID).
		Order("assigned_at ASC").
		Find(&assignmentModels).Error
	if err != nil {
		return nil, err
	}

	assigned := make([]subscriber.AssignedSim, 0, len(assignmentModels))
	for _, model := range assignmentModels {
		if model.Sim == nil {
			continue
		}
		assigned = append(assigned, subscriber.AssignedSim{
			Assignment: *model.ToDomain(),
			Sim:        *model.Sim.ToDomain(),
		})
	}
	return assigned, nil
}

// ExistsByPair reports whether the SIM is already assigned to the customer
func (r *GormAssignmentRepository) ExistsByPair(ctx context.Context, customerID, simID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AssignmentModel{}).
		Where("customer_id = ? AND sim_id = ?", customerID, simID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an assignment
func (r *GormAssignmentRepository) Save(ctx context.Context, assignment *subscriber.Assignment) error {
	var model models.AssignmentModel
	model.FromDomain(assignment)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete removes an assignment
func (r *GormAssignmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AssignmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
