// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface so callers can
// be tested against core/storage/mocks. Both AWS S3 and self-hosted MinIO work.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks used by the structure check and image upload.
//   - PutObject / GetObject: roster object persistence and image upload.
//   - StatObject: presence checks for uploaded images.
//   - ListObjects: prefix listing for the structure check.
//
// # Roster persistence
//
// RosterRepository implements roster.Repository on top of a single JSON object.
// A missing object loads as an empty directory.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	repo := storage.NewRosterRepository(client, cfg.Storage.Bucket, cfg.Roster.ObjectName)
//	dir, err := repo.Load(ctx)
package storage
