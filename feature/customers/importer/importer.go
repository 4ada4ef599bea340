package importer

import (
	"context"
	"fmt"

	"customer-importer/core/utils"
	"customer-importer/feature/customers/models"
	"customer-importer/feature/customers/provider"

	"go.uber.org/zap"
)

// DefaultCount is used when Import is called with a non-positive count.
const DefaultCount = 100

// Store is the storage the importer reconciles against.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	Commit(ctx context.Context, pending []*models.Customer) error
}

// Summary describes the outcome of one import.
type Summary struct {
	// Fetched is the number of raw records the provider returned.
	Fetched int
	// Inserted is the number of customers created.
	Inserted int
	// Updated is the number of records applied to an already known customer.
	Updated int
	// Skipped is the number of records without an email.
	Skipped int
}

// Importer upserts provider records into the store keyed by email.
type Importer struct {
	provider     provider.DataProvider
	store        Store
	hasher       PasswordHasher
	archiver     Archiver
	defaultCount int
	logger       *zap.Logger
}

// Option customizes an Importer.
type Option func(*Importer)

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h PasswordHasher) Option {
	return func(i *Importer) { i.hasher = h }
}

// WithArchiver stores each fetched batch before it is processed.
func WithArchiver(a Archiver) Option {
	return func(i *Importer) { i.archiver = a }
}

// WithDefaultCount changes the count used for non-positive requests.
func WithDefaultCount(n int) Option {
	return func(i *Importer) {
		if n > 0 {
			i.defaultCount = n
		}
	}
}

// New creates an importer reading from p and writing to s.
func New(p provider.DataProvider, s Store, logger *zap.Logger, opts ...Option) *Importer {
	i := &Importer{
		provider:     p,
		store:        s,
		hasher:       NewBcryptHasher(0),
		defaultCount: DefaultCount,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import fetches up to count records and returns how many new customers were
// inserted. Updates are not counted. Provider failures and malformed payloads
// import nothing and return (0, nil); only storage failures return an error.
func (i *Importer) Import(ctx context.Context, count int) (int, error) {
	summary, err := i.ImportWithSummary(ctx, count)
	if err != nil {
		return 0, err
	}
	return summary.Inserted, nil
}

// ImportWithSummary is Import with the full breakdown of what happened.
func (i *Importer) ImportWithSummary(ctx context.Context, count int) (Summary, error) {
	if count <= 0 {
		count = i.defaultCount
	}

	records, err := i.provider.Fetch(ctx, count)
	if err != nil {
		i.logger.Warn("Customer fetch failed, nothing imported", zap.Int("count", count), zap.Error(err))
		return Summary{}, nil
	}

	summary := Summary{Fetched: len(records)}
	if len(records) == 0 {
		i.logger.Info("Provider returned no customers")
		return summary, nil
	}

	i.archive(ctx, records)

	// Records sharing an email reuse the same instance, so the last one wins.
	inProgress := make(map[string]*models.Customer, len(records))
	pending := make([]*models.Customer, 0, len(records))

	for _, rec := range records {
		email := utils.StringAt(rec, "email", "")
		if email == "" {
			summary.Skipped++
			continue
		}

		customer, seen := inProgress[email]
		if !seen {
			existing, err := i.store.FindByEmail(ctx, email)
			if err != nil {
				return Summary{}, err
			}
			if existing == nil {
				customer = &models.Customer{Email: email}
				summary.Inserted++
			} else {
				customer = existing
				summary.Updated++
			}
			inProgress[email] = customer
			pending = append(pending, customer)
		} else {
			summary.Updated++
		}

		if err := i.apply(customer, rec); err != nil {
			return Summary{}, err
		}
	}

	if len(pending) > 0 {
		if err := i.store.Commit(ctx, pending); err != nil {
			return Summary{}, err
		}
	}

	i.logger.Info("Customer import finished",
		zap.Int("fetched", summary.Fetched),
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
		zap.Int("skipped", summary.Skipped),
	)
	return summary, nil
}

// apply overwrites every mutable field from the raw record. Absent paths become
// empty strings; nothing is merged with previous values.
func (i *Importer) apply(c *models.Customer, rec provider.Record) error {
	hash, err := i.hasher.Hash(utils.StringAt(rec, "login.password", ""))
	if err != nil {
		return fmt.Errorf("failed to hash password for %s: %w", c.Email, err)
	}

	c.FirstName = utils.StringAt(rec, "name.first", "")
	c.LastName = utils.StringAt(rec, "name.last", "")
	c.Username = utils.StringAt(rec, "login.username", "")
	c.Gender = utils.StringAt(rec, "gender", "")
	c.Country = utils.StringAt(rec, "location.country", "")
	c.City = utils.StringAt(rec, "location.city", "")
	c.Phone = utils.StringAt(rec, "phone", "")
	c.Password = hash
	return nil
}

func (i *Importer) archive(ctx context.Context, records []provider.Record) {
	if i.archiver == nil {
		return
	}
	key, err := i.archiver.Archive(ctx, records)
	if err != nil {
		i.logger.Warn("Failed to archive fetched customers", zap.Error(err))
		return
	}
	i.logger.Debug("Archived fetched customers", zap.String("object", key))
}
