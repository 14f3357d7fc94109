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


package storage

import (
	"fmt"

	"github.com/poiesic/vecshuffle/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: id: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalPlaceholder serializes a Placeholder to bytes.
func MarshalPlaceholder(placeholder *core.Placeholder) []byte {
	buf := make([]byte, core.PlaceholderMUS.Size(*placeholder))
	core.PlaceholderMUS.Marshal(*placeholder, buf)
	return buf
}

// UnmarshalPlaceholder deserializes a Placeholder from bytes.
func UnmarshalPlaceholder(data []byte) (*core.Placeholder, error) {
	placeholder, _, err := core.PlaceholderMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: placeholder: %w", ErrSerializationFailed, err)
	}
	return &placeholder, nil
}

// MarshalSnapshot serializes a Snapshot to bytes.
func MarshalSnapshot(snapshot *core.Snapshot) []byte {
	buf := make([]byte, core.SnapshotMUS.Size(*snapshot))
	core.SnapshotMUS.Marshal(*snapshot, buf)
	return buf
}

// UnmarshalSnapshot deserializes a Snapshot from bytes.
func UnmarshalSnapshot(data []byte) (*core.Snapshot, error) {
	snapshot, _, err := core.SnapshotMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot: %w", ErrSerializationFailed, err)
	}
	return &snapshot, nil
}
