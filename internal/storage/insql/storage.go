// Package insql provides data types and methods for SQL storage operations over PostgreSQL (pgx)
// or SQLite (sqlite3).
package insql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib" // registers the pgx driver for database/sql
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/storage"
	storageErrors "github.com/danilovkiri/dk_go_hashids/internal/storage/errors"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/modelstorage"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Check interface implementation explicitly
var (
	_ storage.RecordStorage = (*Storage)(nil)
)

var createTableQueries = map[string]string{
	DriverPostgres: `CREATE TABLE IF NOT EXISTS records (
		id bigserial primary key,
		entity text not null,
		payload text not null
	);`,
	DriverSQLite: `CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entity TEXT NOT NULL,
		payload TEXT NOT NULL
	);`,
}

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	Cfg    *config.StorageConfig
	DB     *sqlx.DB
	driver string
}

// InitStorage initializes a Storage object, creates the records table and starts a listener
// closing the connection on ctx cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.StorageConfig) (*Storage, error) {
	driver := cfg.DatabaseDriver
	if driver == "" {
		driver = DriverPostgres
	}
	if _, ok := createTableQueries[driver]; !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sqlx.Open(driver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// every connection to an in-memory SQLite database sees its own database
		db.SetMaxOpenConns(1)
	}
	st := Storage{
		Cfg:    cfg,
		DB:     db,
		driver: driver,
	}
	err = st.createTable(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		err := st.CloseDB()
		if err != nil {
			log.Println("SQL DB connection closure failed:", err)
			return
		}
		log.Println("SQL DB connection closed successfully")
	}()
	return &st, nil
}

// Retrieve returns the record stored under entity and id.
func (s *Storage) Retrieve(ctx context.Context, entity string, id int64) (record modelstorage.Record, err error) {
	query := s.DB.Rebind("SELECT id, entity, payload FROM records WHERE id = ? AND entity = ?")
	err = s.DB.GetContext(ctx, &record, query, id, entity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return record, &storageErrors.NotFoundError{Entity: entity, ID: id, Err: err}
		}
		return record, s.wrapError(ctx, err)
	}
	log.Println("Retrieving record:", entity, id)
	return record, nil
}

// RetrieveByEntity returns all records of one entity ordered by ID.
func (s *Storage) RetrieveByEntity(ctx context.Context, entity string) (records []modelstorage.Record, err error) {
	query := s.DB.Rebind("SELECT id, entity, payload FROM records WHERE entity = ? ORDER BY id")
	err = s.DB.SelectContext(ctx, &records, query, entity)
	if err != nil {
		return nil, s.wrapError(ctx, err)
	}
	log.Println("Retrieving records by entity:", entity, len(records))
	return records, nil
}

// Dump stores a payload under the next ID of the sequence and returns that ID.
func (s *Storage) Dump(ctx context.Context, entity string, payload string) (id int64, err error) {
	switch s.driver {
	case DriverPostgres:
		// pgx does not report LastInsertId
		query := "INSERT INTO records (entity, payload) VALUES ($1, $2) RETURNING id"
		err = s.DB.QueryRowxContext(ctx, query, entity, payload).Scan(&id)
		if err != nil {
			return 0, s.wrapError(ctx, err)
		}
	default:
		query := s.DB.Rebind("INSERT INTO records (entity, payload) VALUES (?, ?)")
		result, err := s.DB.ExecContext(ctx, query, entity, payload)
		if err != nil {
			return 0, s.wrapError(ctx, err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, &storageErrors.ExecutionSQLError{Err: err}
		}
	}
	log.Println("Dumping record:", entity, "as", id)
	return id, nil
}

// DumpWithID stores a payload under an ID issued elsewhere.
func (s *Storage) DumpWithID(ctx context.Context, entity string, id int64, payload string) error {
	stmt, err := s.DB.PreparexContext(ctx, s.DB.Rebind("INSERT INTO records (id, entity, payload) VALUES (?, ?, ?)"))
	if err != nil {
		return &storageErrors.StatementSQLError{Err: err}
	}
	defer stmt.Close()
	_, err = stmt.ExecContext(ctx, id, entity, payload)
	if err != nil {
		if isUniqueViolation(err) {
			return &storageErrors.AlreadyExistsError{Entity: entity, ID: id, Err: err}
		}
		return s.wrapError(ctx, err)
	}
	if s.driver == DriverPostgres {
		// keep the sequence ahead of imported IDs
		_, err = s.DB.ExecContext(ctx, "SELECT setval(pg_get_serial_sequence('records', 'id'), GREATEST((SELECT MAX(id) FROM records), 1))")
		if err != nil {
			return s.wrapError(ctx, err)
		}
	}
	log.Println("Dumping record:", entity, "as", id)
	return nil
}

// Delete removes the record stored under entity and id.
func (s *Storage) Delete(ctx context.Context, entity string, id int64) error {
	query := s.DB.Rebind("DELETE FROM records WHERE id = ? AND entity = ?")
	result, err := s.DB.ExecContext(ctx, query, id, entity)
	if err != nil {
		return s.wrapError(ctx, err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return &storageErrors.ExecutionSQLError{Err: err}
	}
	if rowsDeleted == 0 {
		return &storageErrors.NotFoundError{Entity: entity, ID: id}
	}
	log.Println("Deleting record:", entity, id)
	return nil
}

// PingDB checks the DB connection.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

// createTable creates a table for SQL DB storage if not exist.
func (s *Storage) createTable(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, createTableQueries[s.driver])
	return err
}

// wrapError converts a driver error into a storage error.
func (s *Storage) wrapError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	}
	return &storageErrors.ExecutionSQLError{Err: err}
}

// isUniqueViolation reports whether err is a primary key or unique constraint violation of
// either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
