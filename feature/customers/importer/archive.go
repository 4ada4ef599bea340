package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"customer-importer/core/storage"
	"customer-importer/feature/customers/provider"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// Archiver keeps a copy of each fetched batch and returns where it was put.
type Archiver interface {
	Archive(ctx context.Context, records []provider.Record) (string, error)
}

// ObjectArchiver writes batches to object storage as randomuser-shaped JSON,
// so an archived batch can be replayed with the fixture provider.
type ObjectArchiver struct {
	client storage.Client
	bucket string
	prefix string
	now    func() time.Time
}

// NewObjectArchiver creates an archiver writing under prefix in bucket.
func NewObjectArchiver(client storage.Client, bucket, prefix string) *ObjectArchiver {
	return &ObjectArchiver{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// Archive uploads the batch as <prefix>/<yyyy>/<mm>/<dd>/<uuid>.json.
// Credentials are removed first; only login.username is kept from the login group.
func (a *ObjectArchiver) Archive(ctx context.Context, records []provider.Record) (string, error) {
	redacted := make([]provider.Record, len(records))
	for i, rec := range records {
		redacted[i] = redact(rec)
	}

	body, err := json.Marshal(map[string]any{"results": redacted})
	if err != nil {
		return "", fmt.Errorf("failed to encode archive: %w", err)
	}

	name := path.Join(a.prefix, a.now().UTC().Format("2006/01/02"), uuid.NewString()+".json")
	_, err = a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload archive %s: %w", name, err)
	}
	return name, nil
}

func redact(rec provider.Record) provider.Record {
	if rec == nil {
		return nil
	}
	out := make(provider.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	if login, ok := rec["login"].(map[string]any); ok {
		kept := map[string]any{}
		if username, ok := login["username"]; ok {
			kept["username"] = username
		}
		out["login"] = kept
	}
	return out
}
