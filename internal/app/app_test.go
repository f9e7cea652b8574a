package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/infile"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/insql"
)

// Tests

func TestNewStorage(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.StorageConfig
		want interface{}
	}{
		{name: "in memory", cfg: config.StorageConfig{}, want: &inmemory.Storage{}},
		{name: "file", cfg: config.StorageConfig{FileStoragePath: filepath.Join(t.TempDir(), "records.json")}, want: &infile.Storage{}},
		{name: "sql", cfg: config.StorageConfig{DatabaseDSN: ":memory:", DatabaseDriver: insql.DriverSQLite}, want: &insql.Storage{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			wg := &sync.WaitGroup{}
			st, err := NewStorage(ctx, wg, &tt.cfg)
			require.NoError(t, err)
			assert.IsType(t, tt.want, st)
			cancel()
			wg.Wait()
		})
	}
}

func TestNewStorage_Fail(t *testing.T) {
	wg := &sync.WaitGroup{}
	_, err := NewStorage(context.Background(), wg, &config.StorageConfig{DatabaseDSN: "dsn", DatabaseDriver: "oracle"})
	assert.Error(t, err)
	wg.Wait()
}

func TestRun(t *testing.T) {
	cfg := &config.Config{
		ServerConfig:  config.ServerConfig{ServerAddress: "127.0.0.1:0"},
		StorageConfig: config.StorageConfig{FileStoragePath: filepath.Join(t.TempDir(), "records.json")},
		HashidConfig:  config.HashidConfig{Defaults: config.Bundle{Salt: "salt", Length: 8}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg)
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_InvalidBundle(t *testing.T) {
	cfg := &config.Config{
		HashidConfig: config.HashidConfig{Defaults: config.Bundle{Alphabet: "abc"}},
	}
	assert.Error(t, Run(context.Background(), cfg))
}
