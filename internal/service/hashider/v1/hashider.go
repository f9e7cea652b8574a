// Package hashider provides functionality for storing records under integer IDs while exposing
// them as salted hashids.
package hashider

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/hashid"
	serviceErrors "github.com/danilovkiri/dk_go_hashids/internal/service/errors"
	"github.com/danilovkiri/dk_go_hashids/internal/service/hashider"
	"github.com/danilovkiri/dk_go_hashids/internal/service/modelrecord"
	"github.com/danilovkiri/dk_go_hashids/internal/storage"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ hashider.Processor = (*Hashider)(nil)
)

// entityCodec pairs a resolved bundle with the codec built from it.
type entityCodec struct {
	bundle config.Bundle
	codec  hashid.Codec
}

// Hashider struct defines data structure handling and provides support for adding new implementations.
type Hashider struct {
	RecordStorage storage.RecordStorage
	defaults      entityCodec
	entities      map[string]entityCodec
}

// InitHashider initializes a Hashider object, validating every bundle and building its codec once.
func InitHashider(s storage.RecordStorage, cfg *config.HashidConfig) (*Hashider, error) {
	if s == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	if cfg == nil {
		cfg = &config.HashidConfig{}
	}
	defaults, err := newEntityCodec("", cfg.Defaults)
	if err != nil {
		return nil, err
	}
	entities := make(map[string]entityCodec, len(cfg.Entities))
	for entity := range cfg.Entities {
		ec, err := newEntityCodec(entity, cfg.For(entity))
		if err != nil {
			return nil, err
		}
		entities[entity] = ec
	}
	log.WithFields(log.Fields{"entities": len(entities), "algorithm": defaults.bundle.Algorithm}).Info("Hashider initialized")
	return &Hashider{
		RecordStorage: s,
		defaults:      defaults,
		entities:      entities,
	}, nil
}

func newEntityCodec(entity string, bundle config.Bundle) (entityCodec, error) {
	if err := bundle.Validate(); err != nil {
		return entityCodec{}, &serviceErrors.ServiceInitHashError{Entity: entity, Msg: err.Error()}
	}
	codec, err := hashid.NewCodec(bundle.CodecOptions())
	if err != nil {
		return entityCodec{}, &serviceErrors.ServiceInitHashError{Entity: entity, Msg: err.Error()}
	}
	return entityCodec{bundle: bundle, codec: codec}, nil
}

// codecFor returns the codec of entity, or the default one for entities without overrides.
func (h *Hashider) codecFor(entity string) entityCodec {
	if ec, ok := h.entities[entity]; ok {
		return ec
	}
	return h.defaults
}

// Encode converts id into the formatted hashid of entity.
func (h *Hashider) Encode(entity string, id int64) (string, error) {
	ec := h.codecFor(entity)
	hash := ec.codec.Encode(id)
	if hash == "" {
		return "", &serviceErrors.ServiceNotEncodableError{Entity: entity, ID: id}
	}
	return hashid.Format(hash, ec.bundle.Prefix, ec.bundle.Suffix, ec.bundle.Separator), nil
}

// Decode converts a formatted hashid of entity back into its integer ID.
func (h *Hashider) Decode(entity string, formatted string) (int64, error) {
	ec := h.codecFor(entity)
	hash := hashid.Unformat(formatted, ec.bundle.Prefix, ec.bundle.Suffix, ec.bundle.Separator)
	id, ok := ec.codec.Decode(hash)
	if !ok {
		return 0, &serviceErrors.ServiceInvalidHashidError{Entity: entity, Hashid: formatted}
	}
	return id, nil
}

// Create stores payload under a new ID and returns the record with its hashid.
func (h *Hashider) Create(ctx context.Context, entity string, payload string) (record modelrecord.Record, err error) {
	if entity == "" {
		return record, &serviceErrors.ServiceIncorrectInput{Msg: "entity must not be empty"}
	}
	id, err := h.RecordStorage.Dump(ctx, entity, payload)
	if err != nil {
		return record, err
	}
	return h.toRecord(modelstorage.Record{ID: id, Entity: entity, Payload: payload})
}

// Import stores payload under an ID issued elsewhere and returns the record with its hashid.
func (h *Hashider) Import(ctx context.Context, entity string, id int64, payload string) (record modelrecord.Record, err error) {
	if entity == "" {
		return record, &serviceErrors.ServiceIncorrectInput{Msg: "entity must not be empty"}
	}
	if id < 0 {
		return record, &serviceErrors.ServiceNotEncodableError{Entity: entity, ID: id}
	}
	err = h.RecordStorage.DumpWithID(ctx, entity, id, payload)
	if err != nil {
		return record, err
	}
	return h.toRecord(modelstorage.Record{ID: id, Entity: entity, Payload: payload})
}

// FindByHashid decodes hashid and retrieves the record stored under the resulting ID.
func (h *Hashider) FindByHashid(ctx context.Context, entity string, hash string) (record modelrecord.Record, err error) {
	id, err := h.Decode(entity, hash)
	if err != nil {
		return record, err
	}
	stored, err := h.RecordStorage.Retrieve(ctx, entity, id)
	if err != nil {
		return record, err
	}
	return h.toRecord(stored)
}

// List returns every record of entity ordered by ID.
func (h *Hashider) List(ctx context.Context, entity string) (records []modelrecord.Record, err error) {
	stored, err := h.RecordStorage.RetrieveByEntity(ctx, entity)
	if err != nil {
		return nil, err
	}
	records = make([]modelrecord.Record, 0, len(stored))
	for _, s := range stored {
		record, err := h.toRecord(s)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Delete decodes hashid and removes the record stored under the resulting ID.
func (h *Hashider) Delete(ctx context.Context, entity string, hash string) error {
	id, err := h.Decode(entity, hash)
	if err != nil {
		return err
	}
	return h.RecordStorage.Delete(ctx, entity, id)
}

func (h *Hashider) PingDB() error {
	return h.RecordStorage.PingDB()
}

// toRecord replaces the storage ID with its hashid.
func (h *Hashider) toRecord(s modelstorage.Record) (modelrecord.Record, error) {
	hash, err := h.Encode(s.Entity, s.ID)
	if err != nil {
		return modelrecord.Record{}, err
	}
	return modelrecord.Record{Hashid: hash, Entity: s.Entity, Payload: s.Payload}, nil
}
