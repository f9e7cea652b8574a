// Package inmemory provides functionality for dumping/retrieving records to/from local
// storage implemented as a map.
package inmemory

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_hashids/internal/storage/errors"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.RecordStorage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu     sync.Mutex
	DB     map[int64]modelstorage.Record
	lastID int64
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage() *Storage {
	db := make(map[int64]modelstorage.Record)
	return &Storage{DB: db}
}

// Retrieve returns the record stored under entity and id.
func (s *Storage) Retrieve(ctx context.Context, entity string, id int64) (record modelstorage.Record, err error) {
	// create channels for listening to the go routine result
	retrieveDone := make(chan modelstorage.Record, 1)
	retrieveError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		entry, ok := s.DB[id]
		if !ok || entry.Entity != entity {
			retrieveError <- &storageErrors.NotFoundError{Entity: entity, ID: id}
			return
		}
		retrieveDone <- entry
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Retrieving record:", ctx.Err())
		return record, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case rtrvError := <-retrieveError:
		log.Println("Retrieving record:", rtrvError.Error())
		return record, rtrvError
	case record := <-retrieveDone:
		log.Println("Retrieving record:", entity, id)
		return record, nil
	}
}

// RetrieveByEntity returns all records of one entity ordered by ID.
func (s *Storage) RetrieveByEntity(ctx context.Context, entity string) (records []modelstorage.Record, err error) {
	// create channels for listening to the go routine result
	retrieveDone := make(chan []modelstorage.Record, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		var records []modelstorage.Record
		for _, entry := range s.DB {
			if entry.Entity == entity {
				records = append(records, entry)
			}
		}
		sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
		retrieveDone <- records
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Retrieving records by entity:", ctx.Err())
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case records := <-retrieveDone:
		log.Println("Retrieving records by entity:", entity, len(records))
		return records, nil
	}
}

// Dump stores a payload under the next free ID and returns that ID.
func (s *Storage) Dump(ctx context.Context, entity string, payload string) (id int64, err error) {
	// create channels for listening to the go routine result
	dumpDone := make(chan int64, 1)
	dumpError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// nothing is committed once the caller has given up
		if ctx.Err() != nil {
			dumpError <- &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
			return
		}
		s.lastID++
		s.DB[s.lastID] = modelstorage.Record{ID: s.lastID, Entity: entity, Payload: payload}
		dumpDone <- s.lastID
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Dumping record:", ctx.Err())
		return 0, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case dmpError := <-dumpError:
		log.Println("Dumping record:", dmpError.Error())
		return 0, dmpError
	case id := <-dumpDone:
		log.Println("Dumping record:", entity, "as", id)
		return id, nil
	}
}

// DumpWithID stores a payload under an ID issued elsewhere.
func (s *Storage) DumpWithID(ctx context.Context, entity string, id int64, payload string) error {
	// create channels for listening to the go routine result
	dumpDone := make(chan bool, 1)
	dumpError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ctx.Err() != nil {
			dumpError <- &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
			return
		}
		if _, ok := s.DB[id]; ok {
			dumpError <- &storageErrors.AlreadyExistsError{Entity: entity, ID: id}
			return
		}
		s.DB[id] = modelstorage.Record{ID: id, Entity: entity, Payload: payload}
		if id > s.lastID {
			s.lastID = id
		}
		dumpDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Dumping record:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case dmpError := <-dumpError:
		log.Println("Dumping record:", dmpError.Error())
		return dmpError
	case <-dumpDone:
		log.Println("Dumping record:", entity, "as", id)
		return nil
	}
}

// Delete removes the record stored under entity and id.
func (s *Storage) Delete(ctx context.Context, entity string, id int64) error {
	// create channels for listening to the go routine result
	deleteDone := make(chan bool, 1)
	deleteError := make(chan error, 1)
	go func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ctx.Err() != nil {
			deleteError <- &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
			return
		}
		entry, ok := s.DB[id]
		if !ok || entry.Entity != entity {
			deleteError <- &storageErrors.NotFoundError{Entity: entity, ID: id}
			return
		}
		delete(s.DB, id)
		deleteDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		log.Println("Deleting record:", ctx.Err())
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case dltError := <-deleteError:
		log.Println("Deleting record:", dltError.Error())
		return dltError
	case <-deleteDone:
		log.Println("Deleting record:", entity, id)
		return nil
	}
}

// PingDB is a mock for SQL DB pinger.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for SQL DB closer.
func (s *Storage) CloseDB() error {
	return nil
}
