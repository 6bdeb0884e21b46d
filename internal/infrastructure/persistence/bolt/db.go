// Package bolt stores validation requests in a single-file bbolt database.
// It serves deployments without Postgres and local development.
package bolt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"
)

var bucketRequests = []byte("validation_requests")

type DB struct {
	bolt   *bbolt.DB
	logger *slog.Logger
}

// Open opens (or creates) the database at path and ensures the requests bucket exists.
func Open(path string, logger *slog.Logger) (*DB, error) {
	db, err := bbolt.Open(path, 0o640, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRequests)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: init bucket: %w", err)
	}

	logger.Info("opened bolt store", "path", path)
	return &DB{bolt: db, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("closing bolt store")
	return db.bolt.Close()
}

// Ping checks that the requests bucket is readable.
func (db *DB) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return db.bolt.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketRequests) == nil {
			return fmt.Errorf("bolt: bucket %s missing", bucketRequests)
		}
		return nil
	})
}
