package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"craft-calculator/core/storage"

	"github.com/minio/minio-go/v7"
)

// ObjectStore keeps the catalog as one JSON object in a storage bucket,
// in the same interchange format as FileStore.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates an object-storage-backed catalog store.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// LoadAll fetches and parses the catalog object.
func (s *ObjectStore) LoadAll(ctx context.Context) (*Snapshot, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching catalog object %s: %w", s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("reading catalog object %s: %w", s.object, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog object %s: %w", s.object, err)
	}
	return FromFile(&f), nil
}

// Persist uploads the snapshot, replacing the stored object.
func (s *ObjectStore) Persist(ctx context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap.ToFile(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.object,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("uploading catalog object %s: %w", s.object, err)
	}
	return nil
}
