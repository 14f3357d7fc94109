package core

import (
	"errors"
	"testing"
)

func TestValidateEmbedding(t *testing.T) {
	tests := []struct {
		name      string
		embedding Embedding
		wantErr   error
	}{
		{
			name:      "empty embedding is valid",
			embedding: nil,
			wantErr:   nil,
		},
		{
			name:      "uniform rows",
			embedding: Embedding{{1, 2, 3}, {4, 5, 6}},
			wantErr:   nil,
		},
		{
			name:      "single row",
			embedding: Embedding{{1}},
			wantErr:   nil,
		},
		{
			name:      "empty row",
			embedding: Embedding{{1, 2}, {}},
			wantErr:   ErrEmptyRow,
		},
		{
			name:      "ragged rows",
			embedding: Embedding{{1, 2}, {3, 4, 5}},
			wantErr:   ErrRaggedEmbedding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmbedding(tt.embedding)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEmbedding() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmbedding() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidEmbedding) {
				t.Errorf("ValidateEmbedding() error should wrap ErrInvalidEmbedding, got %v", err)
			}
		})
	}
}

func TestValidatePlaceholder(t *testing.T) {
	tests := []struct {
		name        string
		placeholder *Placeholder
		wantErr     error
	}{
		{
			name: "valid placeholder",
			placeholder: &Placeholder{
				Token:     "<my-token>",
				Embedding: Embedding{{0.1, 0.2}, {0.3, 0.4}},
			},
			wantErr: nil,
		},
		{
			name: "valid placeholder without embedding",
			placeholder: &Placeholder{
				Token: "<my-token>",
			},
			wantErr: nil,
		},
		{
			name: "valid placeholder with ID 0",
			placeholder: &Placeholder{
				Id:        0,
				Token:     "<my-token>",
				Embedding: Embedding{{0.1}},
			},
			wantErr: nil,
		},
		{
			name:        "nil placeholder",
			placeholder: nil,
			wantErr:     ErrInvalidPlaceholder,
		},
		{
			name: "empty token",
			placeholder: &Placeholder{
				Embedding: Embedding{{0.1}},
			},
			wantErr: ErrEmptyToken,
		},
		{
			name: "ragged embedding",
			placeholder: &Placeholder{
				Token:     "<my-token>",
				Embedding: Embedding{{0.1, 0.2}, {0.3}},
			},
			wantErr: ErrRaggedEmbedding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlaceholder(tt.placeholder)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePlaceholder() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePlaceholder() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSnapshot(t *testing.T) {
	embedding := Embedding{{1, 2}, {3, 4}, {5, 6}}

	tests := []struct {
		name     string
		snapshot *Snapshot
		wantErr  error
	}{
		{
			name: "valid snapshot",
			snapshot: &Snapshot{
				PlaceholderId: 1,
				Step:          100,
				NumVectors:    2,
				Embedding:     embedding,
			},
			wantErr: nil,
		},
		{
			name: "full vector count",
			snapshot: &Snapshot{
				PlaceholderId: 1,
				Step:          0,
				NumVectors:    3,
				Embedding:     embedding,
			},
			wantErr: nil,
		},
		{
			name:     "nil snapshot",
			snapshot: nil,
			wantErr:  ErrInvalidSnapshot,
		},
		{
			name: "negative step",
			snapshot: &Snapshot{
				PlaceholderId: 1,
				Step:          -1,
				NumVectors:    1,
				Embedding:     embedding,
			},
			wantErr: ErrInvalidStep,
		},
		{
			name: "zero vector count",
			snapshot: &Snapshot{
				PlaceholderId: 1,
				Step:          0,
				NumVectors:    0,
				Embedding:     embedding,
			},
			wantErr: ErrInvalidVectorCount,
		},
		{
			name: "vector count exceeds rows",
			snapshot: &Snapshot{
				PlaceholderId: 1,
				Step:          0,
				NumVectors:    4,
				Embedding:     embedding,
			},
			wantErr: ErrInvalidVectorCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshot(tt.snapshot)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSnapshot() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSnapshot() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
