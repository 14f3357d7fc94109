package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/vecshuffle/core"
	"github.com/poiesic/vecshuffle/storage"
)

// PlaceholderRepository implements storage.PlaceholderRepository for BadgerDB.
type PlaceholderRepository struct {
	backend *Backend
}

var _ storage.PlaceholderRepository = (*PlaceholderRepository)(nil)

// NewPlaceholderRepository creates a new PlaceholderRepository.
func NewPlaceholderRepository(backend *Backend) (*PlaceholderRepository, error) {
	return &PlaceholderRepository{
		backend: backend,
	}, nil
}

// Close releases resources. PlaceholderRepository has no resources to release.
func (r *PlaceholderRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *PlaceholderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// FindSimilar delegates to the backend.
func (r *PlaceholderRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*storage.SimilarMatch, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// AddPlaceholders adds one or more placeholders to storage.
func (r *PlaceholderRepository) AddPlaceholders(ctx context.Context, placeholders ...*core.Placeholder) ([]*core.Placeholder, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, placeholder := range placeholders {
			// Use content-based ID if not set
			if placeholder.Id == 0 {
				placeholder.Id = core.IDFromContent(placeholder.Token)
			}

			// Reject a token already claimed by another record
			existingID, err := readTokenIndex(tx, placeholder.Token)
			if err != nil {
				return err
			}
			if existingID != 0 && existingID != placeholder.Id {
				return storage.ErrDuplicateToken
			}

			// Set timestamps
			placeholder.InsertedAt = time.Now().UTC()
			placeholder.UpdatedAt = placeholder.InsertedAt

			// Store primary record
			key := makePlaceholderKey(placeholder.Id)
			value := storage.MarshalPlaceholder(placeholder)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store token index
			tokenKey := makeTokenKey(placeholder.Token)
			if err := tx.Set(tokenKey, storage.MarshalID(placeholder.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return placeholders, err
}

// UpdatePlaceholders updates existing placeholders.
func (r *PlaceholderRepository) UpdatePlaceholders(ctx context.Context, placeholders ...*core.Placeholder) ([]*core.Placeholder, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, placeholder := range placeholders {
			key := makePlaceholderKey(placeholder.Id)

			// Read old record to detect changes
			old, err := readPlaceholder(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Update timestamp
			placeholder.UpdatedAt = time.Now().UTC()

			// Store updated record
			value := storage.MarshalPlaceholder(placeholder)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update token index if token changed
			if old.Token != placeholder.Token {
				if err := tx.Delete(makeTokenKey(old.Token)); err != nil {
					return err
				}
				newTokenKey := makeTokenKey(placeholder.Token)
				if err := tx.Set(newTokenKey, storage.MarshalID(placeholder.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return placeholders, err
}

// DeletePlaceholders removes placeholders by their IDs.
// Associated token index entries and snapshots are removed as well.
func (r *PlaceholderRepository) DeletePlaceholders(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePlaceholderKey(id)

			// Read record to get the token for index cleanup
			placeholder, err := readPlaceholder(tx, key)
			if err != nil {
				return err
			}
			if placeholder == nil {
				return storage.ErrNotFound
			}

			// Delete from token index
			if err := tx.Delete(makeTokenKey(placeholder.Token)); err != nil {
				return err
			}

			// Delete snapshots
			if err := deleteSnapshots(tx, id); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPlaceholder retrieves a single placeholder by ID.
func (r *PlaceholderRepository) GetPlaceholder(ctx context.Context, id core.ID) (*core.Placeholder, error) {
	var result *core.Placeholder
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePlaceholderKey(id)
		var err error
		result, err = readPlaceholder(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetPlaceholderByToken retrieves a placeholder by its token.
func (r *PlaceholderRepository) GetPlaceholderByToken(ctx context.Context, token string) (*core.Placeholder, error) {
	var result *core.Placeholder
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		id, err := readTokenIndex(tx, token)
		if err != nil {
			return err
		}
		if id == 0 {
			return storage.ErrNotFound
		}

		result, err = readPlaceholder(tx, makePlaceholderKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListPlaceholders retrieves all placeholders, ordered by token.
func (r *PlaceholderRepository) ListPlaceholders(ctx context.Context) ([]*core.Placeholder, error) {
	var results []*core.Placeholder
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// The token index iterates in token order
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(tokenIndexPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var id core.ID
			err := iter.Item().Value(func(val []byte) error {
				var err error
				id, err = storage.UnmarshalID(val)
				return err
			})
			if err != nil {
				return err
			}

			placeholder, err := readPlaceholder(tx, makePlaceholderKey(id))
			if err != nil {
				return err
			}
			if placeholder != nil {
				results = append(results, placeholder)
			}
		}
		return nil
	}, false)
	return results, err
}

// readPlaceholder reads a placeholder by key within a transaction.
// Returns nil, nil if the key doesn't exist.
func readPlaceholder(tx *badger.Txn, key []byte) (*core.Placeholder, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var placeholder *core.Placeholder
	err = item.Value(func(val []byte) error {
		var err error
		placeholder, err = storage.UnmarshalPlaceholder(val)
		return err
	})
	return placeholder, err
}

// readTokenIndex resolves a token to its placeholder ID.
// Returns 0, nil if the token is unclaimed.
func readTokenIndex(tx *badger.Txn, token string) (core.ID, error) {
	item, err := tx.Get(makeTokenKey(token))
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return 0, nil
		}
		return 0, err
	}

	var id core.ID
	err = item.Value(func(val []byte) error {
		var err error
		id, err = storage.UnmarshalID(val)
		return err
	})
	return id, err
}
