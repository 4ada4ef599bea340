package storage_test

import (
	"context"
	"testing"

	"customer-importer/core/storage"
	"customer-importer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := storage.NewClient(storage.Config{
		Endpoint:  "http://localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "imports").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "imports", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates Missing", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "imports").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "imports", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "imports", "us-east-1"))
		m.AssertExpectations(t)
	})

	t.Run("Check Fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "imports").Return(false, assert.AnError)

		err := storage.EnsureBucket(ctx, m, "imports", "")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("Create Fails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "imports").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "imports", mock.Anything).Return(assert.AnError)

		err := storage.EnsureBucket(ctx, m, "imports", "")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
