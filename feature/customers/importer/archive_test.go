package importer

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"customer-importer/core/storage/mocks"
	"customer-importer/feature/customers/models"
	"customer-importer/feature/customers/provider"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestObjectArchiver_Archive(t *testing.T) {
	client := new(mocks.Client)
	a := NewObjectArchiver(client, "customer-imports", "imports")
	a.now = func() time.Time { return time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC) }

	var body []byte
	client.On("PutObject", mock.Anything, "customer-imports",
		mock.MatchedBy(func(name string) bool { return len(name) > len("imports/2024/03/09/") }),
		mock.Anything, mock.Anything,
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" }),
	).Run(func(args mock.Arguments) {
		var err error
		body, err = io.ReadAll(args.Get(3).(io.Reader))
		require.NoError(t, err)
	}).Return(minio.UploadInfo{}, nil)

	records := []provider.Record{{
		"email": "john.doe@example.com",
		"login": map[string]any{"username": "johndoe", "password": "secret123", "sha256": "abc"},
	}}

	key, err := a.Archive(context.Background(), records)
	require.NoError(t, err)
	assert.Regexp(t, `^imports/2024/03/09/[0-9a-f-]{36}\.json$`, key)
	client.AssertExpectations(t)

	var doc struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	require.Len(t, doc.Results, 1)
	assert.Equal(t, "john.doe@example.com", doc.Results[0]["email"])
	assert.Equal(t, map[string]any{"username": "johndoe"}, doc.Results[0]["login"])
	assert.NotContains(t, string(body), "secret123")

	// The caller's records are left untouched.
	assert.Equal(t, "secret123", records[0]["login"].(map[string]any)["password"])
}

func TestObjectArchiver_UploadError(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "b", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	_, err := NewObjectArchiver(client, "b", "imports").Archive(context.Background(), []provider.Record{{"email": "a@x.com"}})
	assert.ErrorIs(t, err, assert.AnError)
}

type memoryStore struct {
	saved []*models.Customer
}

func (s *memoryStore) FindByEmail(context.Context, string) (*models.Customer, error) {
	return nil, nil
}

func (s *memoryStore) Commit(_ context.Context, pending []*models.Customer) error {
	s.saved = append(s.saved, pending...)
	return nil
}

func TestImporter_ArchiveFailureDoesNotStopImport(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "b", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	st := &memoryStore{}
	imp := New(provider.NewFixture([]provider.Record{{"email": "a@x.com"}}), st, zap.NewNop(),
		WithHasher(NewBcryptHasher(bcrypt.MinCost)),
		WithArchiver(NewObjectArchiver(client, "b", "imports")),
	)

	n, err := imp.Import(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, st.saved, 1)
	client.AssertNumberOfCalls(t, "PutObject", 1)
}

func TestImporter_SkipsArchiveForEmptyBatch(t *testing.T) {
	client := new(mocks.Client)
	imp := New(provider.NewFixture([]provider.Record{}), &memoryStore{}, zap.NewNop(),
		WithArchiver(NewObjectArchiver(client, "b", "imports")),
	)

	n, err := imp.Import(context.Background(), 5)
	require.NoError(t, err)
	assert.Zero(t, n)
	client.AssertNumberOfCalls(t, "PutObject", 0)
}
