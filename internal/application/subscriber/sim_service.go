package subscriber

import (
	"context"

	"github.com/telco/backend/internal/domain/shared"
	"github.com/telco/backend/internal/domain/subscriber"
)

// SimService handles SIM inventory queries
type SimService struct {
	simRepo subscriber.SimRepository
}

// NewSimService creates a new SimService
func NewSimService(simRepo subscriber.SimRepository) *SimService {
	return &SimService{simRepo: simRepo}
}

// List returns a page of SIMs. Filter keys understood by the repository:
// "status" (exact), "carrier" (substring), "unassigned" (bool).
func (s *SimService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SimResponse], error) {
	sims, err := s.simRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.simRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]SimResponse, len(sims))
	for i := range sims {
		items[i] = toSimResponse(&sims[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}
