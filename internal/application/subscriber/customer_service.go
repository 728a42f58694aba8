package subscriber

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/domain/subscriber"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo   subscriber.CustomerRepository
	assignmentRepo subscriber.AssignmentRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo subscriber.CustomerRepository,
	assignmentRepo subscriber.AssignmentRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo:   customerRepo,
		assignmentRepo: assignmentRepo,
	}
}

// List returns a page of customers, optionally filtered by a name/email
// substring search.
func (s *CustomerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CustomerResponse], error) {
	customers, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.customerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]CustomerResponse, len(customers))
	for i := range customers {
		items[i] = *toCustomerResponse(&customers[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// GetByID returns one customer
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Update applies a partial update to a customer. Email changes are checked
// for uniqueness against all other customers before anything is written.
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := customer.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		taken, err := s.customerRepo.ExistsByEmailExcluding(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, shared.ErrAlreadyExists
		}
		if err := customer.ChangeEmail(email); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// ListAssignedSims returns the SIMs assigned to a customer, optionally
// narrowed by exact status and carrier substring (case-insensitive).
func (s *CustomerService) ListAssignedSims(ctx context.Context, customerID uuid.UUID, status, carrier string) ([]AssignedSimResponse, error) {
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]AssignedSimResponse, 0, len(assignments))
	for _, a := range assignments {
		if status != "" && string(a.Sim.Status) != status {
			continue
		}
		if carrier != "" && !strings.Contains(strings.ToLower(a.Sim.Carrier), strings.ToLower(carrier)) {
			continue
		}
		items = append(items, toAssignedSimResponse(a))
	}
	return items, nil
}
