// Package hashider provides interfaces for types to be in compliance with.
package hashider

import (
	"context"

	"github.com/danilovkiri/dk_go_hashids/internal/service/modelrecord"
)

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Encode(entity string, id int64) (hashid string, err error)
	Decode(entity string, hashid string) (id int64, err error)
	Create(ctx context.Context, entity string, payload string) (record modelrecord.Record, err error)
	Import(ctx context.Context, entity string, id int64, payload string) (record modelrecord.Record, err error)
	FindByHashid(ctx context.Context, entity string, hashid string) (record modelrecord.Record, err error)
	List(ctx context.Context, entity string) (records []modelrecord.Record, err error)
	Delete(ctx context.Context, entity string, hashid string) error
	PingDB() error
}
