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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/vecshuffle/ai"
	"github.com/poiesic/vecshuffle/ai/openai"
	"github.com/poiesic/vecshuffle/core"
	"github.com/poiesic/vecshuffle/seed"
	"github.com/poiesic/vecshuffle/shuffle"
	"github.com/poiesic/vecshuffle/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "vecshuffle",
		Usage: "Placeholder embedding store with shuffle policies for textual inversion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before:   setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Seed a new placeholder from initializer text and store it",
				Action: initCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Placeholder token, e.g. <my-concept>",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "initializer",
						Aliases:  []string{"i"},
						Usage:    "Initializer text whose embedding seeds the vectors",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "num-vectors",
						Usage: "Number of vectors for the placeholder",
						Value: 1,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for embedding calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "shuffle",
				Usage:  "Apply a shuffle policy to a stored placeholder's embedding",
				Action: shuffleCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Placeholder token",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "Shuffle mode (off, all, trailing, leading, between, progressive, dynamic)",
						Value:   "all",
					},
					&cli.IntFlag{
						Name:  "num-vectors",
						Usage: "Active vector count; 0 means all rows",
						Value: 0,
					},
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "Seed the permutation source for reproducible output",
					},
					&cli.IntFlag{
						Name:  "step",
						Usage: "Training step recorded when storing a snapshot",
						Value: 0,
					},
					&cli.BoolFlag{
						Name:  "store",
						Usage: "Store the shuffled embedding as a snapshot",
					},
				},
			},
			{
				Name:   "show",
				Usage:  "Show a stored placeholder",
				Action: showCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Placeholder token",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "vectors",
						Usage: "Print the embedding rows",
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored placeholders",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "snapshots",
				Usage:  "List or show training snapshots for a placeholder",
				Action: snapshotsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Placeholder token",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "step",
						Usage: "Show the snapshot at this step instead of listing",
						Value: -1,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func initCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPlaceholderRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	seeder, err := seed.NewSeeder(embedder,
		seed.WithMaxRetries(c.Int("max-retries")),
		seed.WithRetryBaseDelay(c.Duration("retry-delay")),
	)
	if err != nil {
		return fmt.Errorf("failed to create seeder: %w", err)
	}

	placeholder, err := seeder.Seed(ctx, c.String("token"), c.String("initializer"), c.Int("num-vectors"))
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	stored, err := repo.AddPlaceholders(ctx, placeholder)
	if err != nil {
		return fmt.Errorf("failed to store placeholder: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Seeded %s (id %d): %d vectors, dim %d\n",
		stored[0].Token, stored[0].Id, stored[0].Embedding.NumVectors(), stored[0].Embedding.Dim())
	return nil
}

func shuffleCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPlaceholderRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	placeholder, err := repo.GetPlaceholderByToken(ctx, c.String("token"))
	if err != nil {
		return fmt.Errorf("failed to load placeholder: %w", err)
	}

	mode := shuffle.ParseMode(c.String("mode"))

	shuffler := shuffle.New()
	if c.IsSet("seed") {
		s := c.Uint64("seed")
		shuffler = shuffle.New(shuffle.WithSource(shuffle.NewPCGSource(s, s+1)))
	}

	shuffled := shuffler.Get(mode)(placeholder.Embedding, c.Int("num-vectors"))

	if c.Bool("store") {
		snapshots := badger.NewSnapshotRepository(backend)
		defer snapshots.Close()

		snapshot := &core.Snapshot{
			PlaceholderId: placeholder.Id,
			Step:          c.Int("step"),
			NumVectors:    shuffled.NumVectors(),
			Embedding:     shuffled,
			UpdatedAt:     time.Now(),
		}
		if err := snapshots.SaveSnapshot(ctx, snapshot); err != nil {
			return fmt.Errorf("failed to store snapshot: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Stored snapshot for %s at step %d\n", placeholder.Token, snapshot.Step)
		return nil
	}

	fmt.Printf("%s mode=%s rows=%d\n", placeholder.Token, mode, shuffled.NumVectors())
	printEmbedding(shuffled)
	return nil
}

func showCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPlaceholderRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	placeholder, err := repo.GetPlaceholderByToken(ctx, c.String("token"))
	if err != nil {
		return fmt.Errorf("failed to load placeholder: %w", err)
	}

	fmt.Printf("Token:       %s\n", placeholder.Token)
	fmt.Printf("Id:          %d\n", placeholder.Id)
	fmt.Printf("Initializer: %s\n", placeholder.InitializerText)
	fmt.Printf("Vectors:     %d x %d\n", placeholder.Embedding.NumVectors(), placeholder.Embedding.Dim())
	fmt.Printf("Inserted:    %s\n", placeholder.InsertedAt.Format(time.RFC3339))
	fmt.Printf("Updated:     %s\n", placeholder.UpdatedAt.Format(time.RFC3339))
	for k, v := range placeholder.Metadata {
		fmt.Printf("Meta %s: %s\n", k, v)
	}

	if c.Bool("vectors") {
		printEmbedding(placeholder.Embedding)
	}
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPlaceholderRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	placeholders, err := repo.ListPlaceholders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list placeholders: %w", err)
	}

	for _, p := range placeholders {
		fmt.Printf("%-24s %d x %d  (id %d)\n", p.Token, p.Embedding.NumVectors(), p.Embedding.Dim(), p.Id)
	}
	fmt.Fprintf(os.Stderr, "%d placeholders\n", len(placeholders))
	return nil
}

func snapshotsCommand(c *cli.Context) error {
	ctx := context.Background()

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewPlaceholderRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	placeholder, err := repo.GetPlaceholderByToken(ctx, c.String("token"))
	if err != nil {
		return fmt.Errorf("failed to load placeholder: %w", err)
	}

	snapshots := badger.NewSnapshotRepository(backend)
	defer snapshots.Close()

	if step := c.Int("step"); step >= 0 {
		snapshot, err := snapshots.GetSnapshot(ctx, placeholder.Id, step)
		if err != nil {
			return fmt.Errorf("failed to load snapshot: %w", err)
		}
		fmt.Printf("%s step=%d active=%d updated=%s\n",
			placeholder.Token, snapshot.Step, snapshot.NumVectors, snapshot.UpdatedAt.Format(time.RFC3339))
		printEmbedding(snapshot.Embedding)
		return nil
	}

	all, err := snapshots.ListSnapshots(ctx, placeholder.Id)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	for _, s := range all {
		fmt.Printf("step %-8d active=%d rows=%d updated=%s\n",
			s.Step, s.NumVectors, s.Embedding.NumVectors(), s.UpdatedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(os.Stderr, "%d snapshots for %s\n", len(all), placeholder.Token)
	return nil
}

func printEmbedding(emb core.Embedding) {
	for i, row := range emb {
		fmt.Printf("row %d:", i)
		for _, v := range row {
			fmt.Printf(" %.6f", v)
		}
		fmt.Println()
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
