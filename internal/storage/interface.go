//go:generate mockgen -destination ../mocks/mock_storage.go -package mocks github.com/danilovkiri/dk_go_hashids/internal/storage RecordStorage

// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/danilovkiri/dk_go_hashids/internal/storage/modelstorage"
)

// RecordSetter defines a set of methods for types implementing RecordSetter.
type RecordSetter interface {
	Dump(ctx context.Context, entity string, payload string) (id int64, err error)
	DumpWithID(ctx context.Context, entity string, id int64, payload string) error
}

// RecordGetter defines a set of methods for types implementing RecordGetter.
type RecordGetter interface {
	Retrieve(ctx context.Context, entity string, id int64) (record modelstorage.Record, err error)
}

// RecordGetterByEntity defines a set of methods for types implementing RecordGetterByEntity.
type RecordGetterByEntity interface {
	RetrieveByEntity(ctx context.Context, entity string) (records []modelstorage.Record, err error)
}

// RecordDeleter defines a set of methods for types implementing RecordDeleter.
type RecordDeleter interface {
	Delete(ctx context.Context, entity string, id int64) error
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// RecordStorage defines a set of embedded interfaces for types implementing RecordStorage.
type RecordStorage interface {
	RecordSetter
	RecordGetter
	RecordGetterByEntity
	RecordDeleter
	Pinger
	Closer
}
