package store_test

import (
	"context"
	"testing"

	"customer-importer/core/database"
	"customer-importer/feature/customers/models"
	"customer-importer/feature/customers/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	s := store.New(db)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// setupMockDB creates a mock GORM DB for testing SQL shape and failures.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestStore_CommitAssignsIDs(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	alice := &models.Customer{Email: "alice@example.com", FirstName: "Alice"}
	bob := &models.Customer{Email: "bob@example.com", FirstName: "Bob"}
	require.NoError(t, s.Commit(ctx, []*models.Customer{alice, bob}))

	assert.NotZero(t, alice.ID)
	assert.NotZero(t, bob.ID)
	assert.NotEqual(t, alice.ID, bob.ID)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestStore_CommitOverwritesExisting(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	original := &models.Customer{Email: "a@x.com", FirstName: "John", LastName: "Doe", City: "Sydney"}
	require.NoError(t, s.Commit(ctx, []*models.Customer{original}))
	id := original.ID

	found, err := s.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	found.FirstName = "Jonathan"
	found.LastName = ""
	found.City = "Melbourne"
	require.NoError(t, s.Commit(ctx, []*models.Customer{found}))

	stored, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, stored.ID)
	assert.Equal(t, "Jonathan", stored.FirstName)
	assert.Equal(t, "", stored.LastName)
	assert.Equal(t, "Melbourne", stored.City)
}

func TestStore_CommitIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	require.NoError(t, s.Commit(ctx, []*models.Customer{{Email: "taken@example.com"}}))

	err := s.Commit(ctx, []*models.Customer{
		{Email: "fresh@example.com"},
		{Email: "taken@example.com"}, // violates the unique email index
	})
	require.Error(t, err)

	fresh, err := s.FindByEmail(ctx, "fresh@example.com")
	require.NoError(t, err)
	assert.Nil(t, fresh)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_CommitEmptyIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	s := store.New(db)

	assert.NoError(t, s.Commit(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByEmail(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	missing, err := s.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, s.Commit(ctx, []*models.Customer{{Email: "Case@Example.com"}}))

	found, err := s.FindByEmail(ctx, "Case@Example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Case@Example.com", found.Email)
}

func TestStore_ListAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, s.Commit(ctx, []*models.Customer{
		{Email: "first@example.com"},
		{Email: "second@example.com"},
	}))

	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first@example.com", list[0].Email)
	assert.Less(t, list[0].ID, list[1].ID)

	got, err := s.Get(ctx, list[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", got.Email)

	_, err = s.Get(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_MySQLFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Lookup Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `customers` WHERE email = \\?").WillReturnError(assert.AnError)

		_, err := store.New(db).FindByEmail(ctx, "a@x.com")
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Commit Rolls Back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `customers`").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO `customers`").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := store.New(db).Commit(ctx, []*models.Customer{
			{Email: "one@example.com"},
			{Email: "two@example.com"},
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.ErrorContains(t, err, "two@example.com")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Commit Updates By Primary Key", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `customers` SET .* WHERE `id` = \\?").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.New(db).Commit(ctx, []*models.Customer{{ID: 3, Email: "three@example.com"}})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
