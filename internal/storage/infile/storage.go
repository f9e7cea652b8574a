// Package infile provides data types and methods for local file storage operations.
package infile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/config"
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
	mu      sync.Mutex
	Cfg     *config.StorageConfig
	DB      map[int64]modelstorage.Record
	Encoder *json.Encoder
	file    *os.File
	lastID  int64
}

// InitStorage initializes a Storage object, restores records from file and starts a listener
// closing the file on ctx cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.StorageConfig) (*Storage, error) {
	db := make(map[int64]modelstorage.Record)
	st := Storage{
		Cfg: cfg,
		DB:  db,
	}
	err := st.restore()
	if err != nil {
		return nil, err
	}
	// open file outside goroutine since this operation might not finish prior to encoding operations
	file, err := os.OpenFile(st.Cfg.FileStoragePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	st.file = file
	st.Encoder = json.NewEncoder(file)
	// start a goroutine to listen for ctx cancellation followed by file storage closure,
	// use sync.WaitGroup to prevent goroutine premature termination when main exits
	go func() {
		defer wg.Done()
		<-ctx.Done()
		err := st.CloseDB()
		if err != nil {
			log.Println("File storage closure failed:", err)
			return
		}
		log.Println("File storage closed successfully")
	}()
	return &st, nil
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

// Dump stores a payload under the next free ID and appends it to the file.
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
		record := modelstorage.Record{ID: s.lastID + 1, Entity: entity, Payload: payload}
		err := s.addToFileDB(modelstorage.RecordFileEntry{Record: record})
		if err != nil {
			dumpError <- &storageErrors.FileWriteError{Err: err}
			return
		}
		s.lastID = record.ID
		s.DB[record.ID] = record
		dumpDone <- record.ID
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

// DumpWithID stores a payload under an ID issued elsewhere and appends it to the file.
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
		record := modelstorage.Record{ID: id, Entity: entity, Payload: payload}
		err := s.addToFileDB(modelstorage.RecordFileEntry{Record: record})
		if err != nil {
			dumpError <- &storageErrors.FileWriteError{Err: err}
			return
		}
		s.DB[id] = record
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

// Delete removes the record stored under entity and id and appends a tombstone to the file.
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
		err := s.addToFileDB(modelstorage.RecordFileEntry{Record: entry, Deleted: true})
		if err != nil {
			deleteError <- &storageErrors.FileWriteError{Err: err}
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

// restore fills the tmpfs DB with records from file storage, replaying tombstones.
func (s *Storage) restore() error {
	file, err := os.OpenFile(s.Cfg.FileStoragePath, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer file.Close()
	// entries are decoded as a stream, so a single line is not bounded by a scanner buffer
	decoder := json.NewDecoder(file)
	for {
		var entry modelstorage.RecordFileEntry
		err := decoder.Decode(&entry)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if entry.ID > s.lastID {
			s.lastID = entry.ID
		}
		if entry.Deleted {
			delete(s.DB, entry.ID)
			continue
		}
		s.DB[entry.ID] = entry.Record
	}
	log.WithFields(log.Fields{"records": len(s.DB)}).Info("DB was restored")
	return nil
}

// addToFileDB appends one entry to a file DB.
func (s *Storage) addToFileDB(entry modelstorage.RecordFileEntry) error {
	return s.Encoder.Encode(entry)
}

// PingDB is a mock for SQL DB pinger.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB closes the underlying file.
func (s *Storage) CloseDB() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
