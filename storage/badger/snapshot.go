// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/vecshuffle/core"
	"github.com/poiesic/vecshuffle/storage"
)

// SnapshotRepository implements storage.SnapshotRepository for BadgerDB.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(backend *Backend) *SnapshotRepository {
	return &SnapshotRepository{
		backend: backend,
	}
}

// Close releases resources. SnapshotRepository has no resources to release.
func (r *SnapshotRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *SnapshotRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SaveSnapshot persists a snapshot of a placeholder at a training step.
func (r *SnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *core.Snapshot) error {
	if err := core.ValidateSnapshot(snapshot); err != nil {
		return err
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		snapshot.UpdatedAt = time.Now().UTC()
		key := makeSnapshotKey(snapshot.PlaceholderId, snapshot.Step)
		value := storage.MarshalSnapshot(snapshot)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetSnapshot retrieves the snapshot for a placeholder at a step.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, placeholderID core.ID, step int) (*core.Snapshot, error) {
	var snapshot *core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeSnapshotKey(placeholderID, step))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		return item.Value(func(val []byte) error {
			var unmarshalErr error
			snapshot, unmarshalErr = storage.UnmarshalSnapshot(val)
			return unmarshalErr
		})
	}, false)
	return snapshot, err
}

// ListSnapshots retrieves all snapshots for a placeholder, ordered by step
// ascending. The snapshot keys encode the step big-endian, so iteration
// order is step order.
func (r *SnapshotRepository) ListSnapshots(ctx context.Context, placeholderID core.ID) ([]*core.Snapshot, error) {
	var results []*core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSnapshotKey(placeholderID)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var snapshot *core.Snapshot
			err := iter.Item().Value(func(val []byte) error {
				var err error
				snapshot, err = storage.UnmarshalSnapshot(val)
				return err
			})
			if err != nil {
				return err
			}
			if snapshot != nil {
				results = append(results, snapshot)
			}
		}
		return nil
	}, false)
	return results, err
}

// LatestSnapshot retrieves the snapshot with the highest step for a placeholder.
func (r *SnapshotRepository) LatestSnapshot(ctx context.Context, placeholderID core.ID) (*core.Snapshot, error) {
	var snapshot *core.Snapshot
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Iterate in reverse from the end of this placeholder's key range
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialSnapshotKey(placeholderID)
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible step for this placeholder
		seek := makeSnapshotKey(placeholderID, -1) // step bits all set
		for iter.Seek(seek); iter.Valid(); iter.Next() {
			return iter.Item().Value(func(val []byte) error {
				var err error
				snapshot, err = storage.UnmarshalSnapshot(val)
				return err
			})
		}
		return storage.ErrNotFound
	}, false)
	return snapshot, err
}

// deleteSnapshots removes all snapshots for a placeholder within a transaction.
func deleteSnapshots(tx *badger.Txn, placeholderID core.ID) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = makePartialSnapshotKey(placeholderID)
	opts.PrefetchValues = false
	iter := tx.NewIterator(opts)

	// Collect keys first; deleting while iterating is undefined
	var keys [][]byte
	for iter.Rewind(); iter.Valid(); iter.Next() {
		keys = append(keys, iter.Item().KeyCopy(nil))
	}
	iter.Close()

	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
