// Package seed populates the database with demo subscribers, SIM inventory
// and billing history for local development and the conversational assistant.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/telco/backend/internal/domain/billing"
	"github.com/telco/backend/internal/domain/subscriber"
	"github.com/telco/backend/internal/infrastructure/persistence"
	"github.com/telco/backend/internal/infrastructure/persistence/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	Customers int
	Seed      uint64 // faker seed, 0 means random
}

// DefaultOptions returns a data set sized for local development.
func DefaultOptions() Options {
	return Options{
		Customers: 25,
		Seed:      1,
	}
}

// Seeder writes demo data through the domain constructors so every record
// satisfies the same validation rules as production input.
type Seeder struct {
	db     *gorm.DB
	faker  *gofakeit.Faker
	logger *zap.Logger
	opts   Options

	// generated values for columns with unique indexes
	used map[string]struct{}

	customers   *persistence.GormCustomerRepository
	sims        *persistence.GormSimRepository
	simTypes    *persistence.GormSimTypeRepository
	assignments *persistence.GormAssignmentRepository
	accounts    *persistence.GormBillingAccountRepository
	bills       *persistence.GormBillRepository
	items       *persistence.GormInvoiceItemRepository
	plans       *persistence.GormPlanRepository
}

// New creates a seeder over the given database handle.
func New(db *gorm.DB, logger *zap.Logger, opts Options) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Customers <= 0 {
		opts.Customers = DefaultOptions().Customers
	}

	return &Seeder{
		db:          db,
		faker:       gofakeit.New(opts.Seed),
		logger:      logger,
		opts:        opts,
		used:        make(map[string]struct{}),
		customers:   persistence.NewGormCustomerRepository(db),
		sims:        persistence.NewGormSimRepository(db),
		simTypes:    persistence.NewGormSimTypeRepository(db),
		assignments: persistence.NewGormAssignmentRepository(db),
		accounts:    persistence.NewGormBillingAccountRepository(db),
		bills:       persistence.NewGormBillRepository(db),
		items:       persistence.NewGormInvoiceItemRepository(db),
		plans:       persistence.NewGormPlanRepository(db),
	}
}

// Reset removes all seeded data. Tables are cleared child-first so foreign
// keys never block the wipe.
func (s *Seeder) Reset(ctx context.Context) error {
	tables := []any{
		&models.InvoiceItemModel{},
		&models.BillModel{},
		&models.BillingAccountModel{},
		&models.AssignmentModel{},
		&models.SimModel{},
		&models.SimTypeModel{},
		&models.PlanModel{},
		&models.CustomerModel{},
	}

	for _, table := range tables {
		if err := s.db.WithContext(ctx).Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", table, err)
		}
	}

	s.logger.Info("Database cleared")
	return nil
}

// Run seeds the database. It is idempotent: a database that already holds
// customers is left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.CustomerModel{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if existing > 0 {
		s.logger.Info("Database already seeded, skipping",
			zap.Int64("customers", existing))
		return nil
	}

	simTypes, err := s.seedSimTypes(ctx)
	if err != nil {
		return err
	}

	plans, err := s.seedPlans(ctx)
	if err != nil {
		return err
	}

	for i := 0; i < s.opts.Customers; i++ {
		if err := s.seedCustomer(ctx, simTypes, plans); err != nil {
			return err
		}
	}

	s.logger.Info("Seed complete",
		zap.Int("customers", s.opts.Customers),
		zap.Int("sim_types", len(simTypes)),
		zap.Int("plans", len(plans)))
	return nil
}

func (s *Seeder) seedSimTypes(ctx context.Context) ([]subscriber.SimType, error) {
	catalog := []struct {
		name        string
		description string
		price       string
	}{
		{"Standard SIM", "Regular plastic SIM card in triple-cut format", "0.00"},
		{"eSIM", "Embedded SIM profile delivered by QR code", "0.00"},
		{"Data SIM", "Data-only SIM for tablets and routers", "2.00"},
		{"IoT SIM", "Industrial SIM for telemetry devices", "1.50"},
	}

	types := make([]subscriber.SimType, 0, len(catalog))
	for _, c := range catalog {
		st, err := subscriber.NewSimType(c.name, c.description, decimal.RequireFromString(c.price))
		if err != nil {
			return nil, fmt.Errorf("failed to build sim type %q: %w", c.name, err)
		}
		if err := s.simTypes.Save(ctx, st); err != nil {
			return nil, fmt.Errorf("failed to save sim type %q: %w", c.name, err)
		}
		types = append(types, *st)
	}
	return types, nil
}

func (s *Seeder) seedPlans(ctx context.Context) ([]billing.Plan, error) {
	catalog := []struct {
		name        string
		description string
		price       string
	}{
		{"Start 5", "5 GB data, unlimited calls to national networks", "11.99"},
		{"Smart 20", "20 GB data, unlimited calls and SMS", "17.99"},
		{"Max Unlimited", "Unlimited data, calls and SMS, EU roaming included", "29.99"},
		{"Data 50", "50 GB data-only plan", "14.99"},
	}

	plans := make([]billing.Plan, 0, len(catalog))
	for _, c := range catalog {
		p, err := billing.NewPlan(c.name, c.description, decimal.RequireFromString(c.price))
		if err != nil {
			return nil, fmt.Errorf("failed to build plan %q: %w", c.name, err)
		}
		if err := s.plans.Save(ctx, p); err != nil {
			return nil, fmt.Errorf("failed to save plan %q: %w", c.name, err)
		}
		plans = append(plans, *p)
	}
	return plans, nil
}

// seedCustomer creates one customer with an OIB, one or two assigned SIMs,
// a billing account and a few months of billing history.
func (s *Seeder) seedCustomer(ctx context.Context, simTypes []subscriber.SimType, plans []billing.Plan) error {
	name := s.faker.Name()
	email := s.unique(func() string { return s.faker.Email() })

	oib := s.unique(func() string {
		v, _ := subscriber.GenerateOIB(s.digits(10))
		return v
	})

	customer, err := subscriber.NewCustomer(name, email, oib)
	if err != nil {
		return fmt.Errorf("failed to build customer %q: %w", name, err)
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return fmt.Errorf("failed to save customer %q: %w", name, err)
	}

	simCount := 1 + s.faker.Number(0, 1)
	for i := 0; i < simCount; i++ {
		sim, err := s.seedSim(ctx, simTypes)
		if err != nil {
			return err
		}

		assignment, err := subscriber.NewAssignment(customer.ID, sim.ID, "")
		if err != nil {
			return fmt.Errorf("failed to build assignment: %w", err)
		}
		assignment.AssignedAt = s.faker.DateRange(
			time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
		if err := s.assignments.Save(ctx, assignment); err != nil {
			return fmt.Errorf("failed to save assignment: %w", err)
		}
	}

	return s.seedBilling(ctx, customer, plans)
}

func (s *Seeder) seedSim(ctx context.Context, simTypes []subscriber.SimType) (*subscriber.Sim, error) {
	status := subscriber.SimStatusActive
	if s.faker.Number(1, 10) == 1 {
		status = subscriber.SimStatusInactive
	}

	sim, err := subscriber.NewSim(s.iccid(), s.msisdn(), s.carrier(), status)
	if err != nil {
		return nil, fmt.Errorf("failed to build sim: %w", err)
	}
	sim.SetType(simTypes[s.faker.Number(0, len(simTypes)-1)].ID)

	if err := s.sims.Save(ctx, sim); err != nil {
		return nil, fmt.Errorf("failed to save sim: %w", err)
	}
	return sim, nil
}

func (s *Seeder) seedBilling(ctx context.Context, customer *subscriber.Customer, plans []billing.Plan) error {
	account, err := billing.NewBillingAccount(customer.ID, s.accountNumber())
	if err != nil {
		return fmt.Errorf("failed to build billing account: %w", err)
	}
	if err := s.accounts.Save(ctx, account); err != nil {
		return fmt.Errorf("failed to save billing account: %w", err)
	}

	plan := plans[s.faker.Number(0, len(plans)-1)]
	months := s.faker.Number(3, 6)
	now := time.Now().UTC()

	for i := months; i >= 1; i-- {
		month := now.AddDate(0, -i, 0)
		status := billing.BillStatusPaid
		if i == 1 {
			status = billing.BillStatusPending
		} else if i == 2 && s.faker.Number(1, 4) == 1 {
			status = billing.BillStatusOverdue
		}

		bill, err := billing.NewBill(account.ID, month.Format("2006-01"), status)
		if err != nil {
			return fmt.Errorf("failed to build bill: %w", err)
		}
		bill.IssueDate = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 4)
		bill.SetDueDate(bill.IssueDate.AddDate(0, 0, 15))
		if err := s.bills.Save(ctx, bill); err != nil {
			return fmt.Errorf("failed to save bill: %w", err)
		}

		charge, err := billing.NewPlanCharge(bill.ID, plan.ID, plan.MonthlyPrice)
		if err != nil {
			return fmt.Errorf("failed to build plan charge: %w", err)
		}
		if err := s.items.Save(ctx, charge); err != nil {
			return fmt.Errorf("failed to save plan charge: %w", err)
		}
		bill.AddAmount(charge.Amount)

		for _, extra := range s.extraCosts(bill.ID) {
			if err := s.items.Save(ctx, extra); err != nil {
				return fmt.Errorf("failed to save extra cost: %w", err)
			}
			bill.AddAmount(extra.Amount)
		}

		if err := s.bills.Save(ctx, bill); err != nil {
			return fmt.Errorf("failed to update bill total: %w", err)
		}
	}
	return nil
}

// extraCosts returns zero to two occasional charges for a bill.
func (s *Seeder) extraCosts(billID uuid.UUID) []*billing.InvoiceItem {
	catalog := []struct {
		costType    string
		description string
		min, max    float64
	}{
		{"SMS Parking", "Parking paid by SMS", 0.5, 4.0},
		{"Roaming", "Calls and data outside the EU", 1.0, 15.0},
		{"Premium SMS", "Donations and voting services", 0.6, 5.0},
		{"International Calls", "Calls to international numbers", 0.8, 9.0},
	}

	count := s.faker.Number(0, 2)
	items := make([]*billing.InvoiceItem, 0, count)
	for i := 0; i < count; i++ {
		c := catalog[s.faker.Number(0, len(catalog)-1)]
		amount := decimal.NewFromFloat(s.faker.Float64Range(c.min, c.max)).Round(2)

		item, err := billing.NewExtraCost(billID, c.costType, c.description, amount)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// unique retries a generator until it produces a value not handed out before.
// Seeded volumes are far below the value space of every generator used here.
func (s *Seeder) unique(gen func() string) string {
	for {
		v := gen()
		if _, taken := s.used[v]; !taken {
			s.used[v] = struct{}{}
			return v
		}
	}
}

// iccid mints a 19-digit card number with the Croatian 89 385 prefix and a
// trailing Luhn digit.
func (s *Seeder) iccid() string {
	return s.unique(func() string {
		body := "89385" + s.digits(13)
		return body + fmt.Sprintf("%d", subscriber.LuhnChecksum(body))
	})
}

// msisdn returns a Croatian mobile number in international format.
func (s *Seeder) msisdn() string {
	prefixes := []string{"91", "92", "95", "97", "98", "99"}
	return s.unique(func() string {
		return "+385" + prefixes[s.faker.Number(0, len(prefixes)-1)] + s.digits(7)
	})
}

func (s *Seeder) carrier() string {
	carriers := []string{"ht", "a1", "telemach"}
	return carriers[s.faker.Number(0, len(carriers)-1)]
}

// accountNumber mints a 10-digit billing account number with the 900 prefix.
func (s *Seeder) accountNumber() string {
	return s.unique(func() string { return "900" + s.digits(7) })
}

func (s *Seeder) digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + s.faker.Number(0, 9))
	}
	return string(b)
}
