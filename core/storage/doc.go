// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (AWS S3 or self-hosted MinIO) behind a narrow Client
// interface. The customer importer uses it to archive every fetched batch as a JSON
// object, so a past import can be inspected or replayed with the fixture provider.
//
// # Client Interface
//
// The Client interface makes storage interactions mockable in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
