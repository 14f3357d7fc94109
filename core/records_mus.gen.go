// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	mapK3aCHΔwMiQuwemmcuRxtgAΞΞ   = ord.NewMapSer[string, string](ord.String, ord.String)
	sliceE5QEeGcsmnoTs1ΣcdQOfvQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceoMwwVΔau7TZjkqCYRt8qggΞΞ = ord.NewSliceSer[[]float32](sliceE5QEeGcsmnoTs1ΣcdQOfvQΞΞ)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var EmbeddingMUS = embeddingMUS{}

type embeddingMUS struct{}

func (s embeddingMUS) Marshal(v Embedding, bs []byte) (n int) {
	return sliceoMwwVΔau7TZjkqCYRt8qggΞΞ.Marshal([][]float32(v), bs)
}

func (s embeddingMUS) Unmarshal(bs []byte) (v Embedding, n int, err error) {
	tmp, n, err := sliceoMwwVΔau7TZjkqCYRt8qggΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Embedding(tmp)
	return
}

func (s embeddingMUS) Size(v Embedding) (size int) {
	return sliceoMwwVΔau7TZjkqCYRt8qggΞΞ.Size([][]float32(v))
}

func (s embeddingMUS) Skip(bs []byte) (n int, err error) {
	return sliceoMwwVΔau7TZjkqCYRt8qggΞΞ.Skip(bs)
}

var PlaceholderMUS = placeholderMUS{}

type placeholderMUS struct{}

func (s placeholderMUS) Marshal(v Placeholder, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Token, bs[n:])
	n += ord.String.Marshal(v.InitializerText, bs[n:])
	n += EmbeddingMUS.Marshal(v.Embedding, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
	return n + mapK3aCHΔwMiQuwemmcuRxtgAΞΞ.Marshal(v.Metadata, bs[n:])
}

func (s placeholderMUS) Unmarshal(bs []byte) (v Placeholder, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Token, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InitializerText, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = EmbeddingMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = mapK3aCHΔwMiQuwemmcuRxtgAΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s placeholderMUS) Size(v Placeholder) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Token)
	size += ord.String.Size(v.InitializerText)
	size += EmbeddingMUS.Size(v.Embedding)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	size += raw.TimeUnixMicro.Size(v.UpdatedAt)
	return size + mapK3aCHΔwMiQuwemmcuRxtgAΞΞ.Size(v.Metadata)
}

func (s placeholderMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EmbeddingMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = mapK3aCHΔwMiQuwemmcuRxtgAΞΞ.Skip(bs[n:])
	n += n1
	return
}

var SnapshotMUS = snapshotMUS{}

type snapshotMUS struct{}

func (s snapshotMUS) Marshal(v Snapshot, bs []byte) (n int) {
	n = IDMUS.Marshal(v.PlaceholderId, bs)
	n += varint.Int.Marshal(v.Step, bs[n:])
	n += varint.Int.Marshal(v.NumVectors, bs[n:])
	n += EmbeddingMUS.Marshal(v.Embedding, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s snapshotMUS) Unmarshal(bs []byte) (v Snapshot, n int, err error) {
	v.PlaceholderId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Step, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.NumVectors, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = EmbeddingMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s snapshotMUS) Size(v Snapshot) (size int) {
	size = IDMUS.Size(v.PlaceholderId)
	size += varint.Int.Size(v.Step)
	size += varint.Int.Size(v.NumVectors)
	size += EmbeddingMUS.Size(v.Embedding)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s snapshotMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = EmbeddingMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
