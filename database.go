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


package vecshuffle

import (
	"log/slog"

	"github.com/poiesic/vecshuffle/ai"
	"github.com/poiesic/vecshuffle/ai/openai"
	"github.com/poiesic/vecshuffle/curriculum"
	"github.com/poiesic/vecshuffle/seed"
	"github.com/poiesic/vecshuffle/storage"
	"github.com/poiesic/vecshuffle/storage/badger"
)

type Database struct {
	backend         *badger.Backend
	placeholderRepo storage.PlaceholderRepository
	snapshotRepo    storage.SnapshotRepository
	provider        ai.AIProvider
	logger          *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create placeholder repository
	placeholderRepo, err := badger.NewPlaceholderRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create snapshot repository
	snapshotRepo := badger.NewSnapshotRepository(backend)

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		placeholderRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:         backend,
		placeholderRepo: placeholderRepo,
		snapshotRepo:    snapshotRepo,
		provider:        provider,
		logger:          slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.placeholderRepo.Close(); err != nil {
		db.logger.Error("error closing placeholder repository", "err", err)
		return err
	}
	if err := db.snapshotRepo.Close(); err != nil {
		db.logger.Error("error closing snapshot repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) PlaceholderRepository() storage.PlaceholderRepository {
	return db.placeholderRepo
}

func (db *Database) SnapshotRepository() storage.SnapshotRepository {
	return db.snapshotRepo
}

func (db *Database) NewSeeder(opts ...seed.Option) (*seed.Seeder, error) {
	return seed.NewSeeder(db.provider.Embedder(), opts...)
}

func (db *Database) NewApplier(mode any, opts ...curriculum.Option) (*curriculum.Applier, error) {
	return curriculum.NewApplier(mode, opts...)
}
