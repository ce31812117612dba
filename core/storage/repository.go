package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"roster-manager/core/roster"

	"github.com/minio/minio-go/v7"
)

// RosterRepository persists the roster directory as a single JSON object.
// A PutObject replaces the whole object, so readers see either the old or the
// new roster.
type RosterRepository struct {
	client Client
	bucket string
	object string
}

// NewRosterRepository returns a repository for bucket/object.
func NewRosterRepository(client Client, bucket, object string) *RosterRepository {
	return &RosterRepository{client: client, bucket: bucket, object: object}
}

// Load downloads and decodes the roster object. A missing object yields an
// empty directory.
func (r *RosterRepository) Load(ctx context.Context) (*roster.Directory, error) {
	obj, err := r.client.GetObject(ctx, r.bucket, r.object, minio.GetObjectOptions{})
	if err != nil {
		if IsNotFound(err) {
			return roster.NewDirectory(), nil
		}
		return nil, fmt.Errorf("failed to get roster object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// minio reports a missing key on first read
		if IsNotFound(err) {
			return roster.NewDirectory(), nil
		}
		return nil, fmt.Errorf("failed to read roster object: %w", err)
	}

	dir, err := roster.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster object %s: %w", r.object, err)
	}
	return dir, nil
}

// Save encodes and uploads the directory.
func (r *RosterRepository) Save(ctx context.Context, dir *roster.Directory) error {
	data, err := roster.Encode(dir)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	_, err = r.client.PutObject(ctx, r.bucket, r.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload roster object: %w", err)
	}
	return nil
}
