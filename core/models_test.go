package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "token content",
			content: "<my-token>",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "a placeholder token name that is much longer than usual but should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("<token-a>")
	id2 := IDFromContent("<token-b>")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestEmbedding_Dimensions(t *testing.T) {
	tests := []struct {
		name        string
		embedding   Embedding
		wantVectors int
		wantDim     int
	}{
		{
			name:        "nil embedding",
			embedding:   nil,
			wantVectors: 0,
			wantDim:     0,
		},
		{
			name:        "single row",
			embedding:   Embedding{{1, 2, 3}},
			wantVectors: 1,
			wantDim:     3,
		},
		{
			name:        "multiple rows",
			embedding:   Embedding{{1, 2}, {3, 4}, {5, 6}},
			wantVectors: 3,
			wantDim:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.embedding.NumVectors(); got != tt.wantVectors {
				t.Errorf("NumVectors() = %d, want %d", got, tt.wantVectors)
			}
			if got := tt.embedding.Dim(); got != tt.wantDim {
				t.Errorf("Dim() = %d, want %d", got, tt.wantDim)
			}
		})
	}
}

func TestEmbedding_Clone(t *testing.T) {
	original := Embedding{{1, 2}, {3, 4}}
	clone := original.Clone()

	// Mutating the clone must not affect the original
	clone[0][0] = 99

	if original[0][0] != 1 {
		t.Errorf("Clone() shares row storage with the original")
	}

	if clone.NumVectors() != original.NumVectors() || clone.Dim() != original.Dim() {
		t.Errorf("Clone() changed shape: %dx%d vs %dx%d",
			clone.NumVectors(), clone.Dim(), original.NumVectors(), original.Dim())
	}
}

func TestEmbedding_CloneNil(t *testing.T) {
	var e Embedding
	if e.Clone() != nil {
		t.Errorf("Clone() of nil embedding should be nil")
	}
}
