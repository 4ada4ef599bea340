package store

import (
	"context"
	"errors"
	"fmt"

	"customer-importer/feature/customers/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Get when no customer has the requested id.
var ErrNotFound = errors.New("customer not found")

// Store is the gorm-backed customer storage handle.
type Store struct {
	db *gorm.DB
}

// New creates a store over an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates the customers table and its unique email index when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Customer{}); err != nil {
		return fmt.Errorf("failed to create customers table: %w", err)
	}
	return nil
}

// FindByEmail returns the customer with exactly this email, or nil when there is none.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Where("email = ?", email).Limit(1).Take(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer by email: %w", err)
	}
	return &customer, nil
}

// Commit writes all pending customers in a single transaction. New customers
// (zero ID) are inserted and receive their ID; existing ones are fully overwritten.
// Nothing is written if any statement fails.
func (s *Store) Commit(ctx context.Context, pending []*models.Customer) error {
	if len(pending) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range pending {
			if c.ID == 0 {
				if err := tx.Create(c).Error; err != nil {
					return fmt.Errorf("insert %s: %w", c.Email, err)
				}
				continue
			}
			if err := tx.Save(c).Error; err != nil {
				return fmt.Errorf("update %s: %w", c.Email, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit customers: %w", err)
	}
	return nil
}

// List returns every stored customer ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("id").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Get returns the customer with the given id or ErrNotFound.
func (s *Store) Get(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).First(&customer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return &customer, nil
}

// Count returns the number of stored customers.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return n, nil
}
