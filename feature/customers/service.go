package customers

import (
	"context"

	"customer-importer/feature/customers/models"
	"customer-importer/feature/customers/store"

	"go.uber.org/zap"
)

// Service exposes stored customers to the HTTP layer.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a new customers service.
func NewService(s *store.Store, logger *zap.Logger) *Service {
	return &Service{store: s, logger: logger}
}

// ListCustomers returns the summary view of every stored customer.
func (s *Service) ListCustomers(ctx context.Context) ([]models.CustomerSummary, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.CustomerSummary, 0, len(all))
	for _, c := range all {
		out = append(out, c.ToSummary())
	}
	return out, nil
}

// GetCustomer returns the detail view of one customer, or store.ErrNotFound.
func (s *Service) GetCustomer(ctx context.Context, id uint) (*models.CustomerDetail, error) {
	c, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := c.ToDetail()
	return &detail, nil
}
