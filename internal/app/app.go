// Package app wires configuration, storage, service and REST server into a running hashids daemon.
package app

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/acme/autocert"

	"github.com/danilovkiri/dk_go_hashids/internal/api/rest"
	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/service/hashider/v1"
	"github.com/danilovkiri/dk_go_hashids/internal/storage"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/infile"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/insql"
)

// ShutdownTimeout bounds graceful server shutdown.
const ShutdownTimeout = 5 * time.Second

// certCacheDir keeps certificates obtained by autocert between restarts.
const certCacheDir = "cert-cache"

// NewStorage selects a storage: a DSN selects SQL, else a file path selects file storage, else
// records live in memory. Persistent storages register themselves in wg and close on ctx
// cancellation.
func NewStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.StorageConfig) (storage.RecordStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		wg.Add(1)
		st, err := insql.InitStorage(ctx, wg, cfg)
		if err != nil {
			wg.Done()
			return nil, err
		}
		log.WithFields(log.Fields{"driver": st.Cfg.DatabaseDriver}).Info("SQL storage initialized")
		return st, nil
	case cfg.FileStoragePath != "":
		wg.Add(1)
		st, err := infile.InitStorage(ctx, wg, cfg)
		if err != nil {
			wg.Done()
			return nil, err
		}
		log.WithFields(log.Fields{"path": cfg.FileStoragePath}).Info("File storage initialized")
		return st, nil
	default:
		log.Info("In-memory storage initialized")
		return inmemory.InitStorage(), nil
	}
}

// Run serves the hashids API until ctx is cancelled, then shuts the server down and waits for
// storages to close.
func Run(ctx context.Context, cfg *config.Config) error {
	storageCtx, cancelStorage := context.WithCancel(context.Background())
	defer cancelStorage()
	wg := &sync.WaitGroup{}
	st, err := NewStorage(storageCtx, wg, &cfg.StorageConfig)
	if err != nil {
		return err
	}
	service, err := hashider.InitHashider(st, &cfg.HashidConfig)
	if err != nil {
		cancelStorage()
		wg.Wait()
		return err
	}
	server, err := rest.InitServer(cfg, service)
	if err != nil {
		cancelStorage()
		wg.Wait()
		return err
	}
	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{"address": server.Addr, "https": cfg.ServerConfig.EnableHTTPS}).Info("Server start attempted")
		serveErr <- serve(server, &cfg.ServerConfig)
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		log.Info("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancelTO()
		err = server.Shutdown(ctxTO)
		if serveErrValue := <-serveErr; err == nil {
			err = serveErrValue
		}
	}
	// storages are closed only after in-flight requests are done
	cancelStorage()
	wg.Wait()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if err == nil {
		log.Info("Server shutdown succeeded")
	}
	return err
}

// serve listens on plain HTTP, or on HTTPS with certificates from Let's Encrypt when enabled.
func serve(server *http.Server, cfg *config.ServerConfig) error {
	if !cfg.EnableHTTPS {
		return server.ListenAndServe()
	}
	manager := &autocert.Manager{
		Cache:  autocert.DirCache(certCacheDir),
		Prompt: autocert.AcceptTOS,
	}
	if u, err := url.Parse(cfg.BaseURL); err == nil && u.Hostname() != "" {
		manager.HostPolicy = autocert.HostWhitelist(u.Hostname())
	}
	server.TLSConfig = manager.TLSConfig()
	return server.ListenAndServeTLS("", "")
}
