// Package rest provides functionality for initializing a server for the hashids service.
package rest

import (
	"expvar"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/danilovkiri/dk_go_hashids/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_hashids/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/service/hashider"
)

var (
	serverStart = time.Now()
	publishOnce sync.Once
)

// uptime returns time in seconds since the server start-up.
func uptime() interface{} {
	return int64(time.Since(serverStart).Seconds())
}

// NewRouter wires the record and codec endpoints of processor into a chi router.
func NewRouter(cfg *config.ServerConfig, processor hashider.Processor) (*chi.Mux, error) {
	recordHandler, err := handlers.InitRecordHandler(processor)
	if err != nil {
		return nil, err
	}
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Get("/ping", recordHandler.HandlePingDB())
	r.Route("/api/{entity}", func(r chi.Router) {
		r.Get("/", recordHandler.HandleList())
		r.Post("/", recordHandler.HandleCreate())
		r.Group(func(r chi.Router) {
			// clients choosing their own IDs are limited to the trusted subnet when one is set
			if cfg.TrustedSubnet != "" {
				r.Use(middleware.NewTrustedNetHandler(cfg).TrustedNetworkHandler)
			}
			r.Post("/import", recordHandler.HandleImport())
		})
		r.Get("/{hashid}", recordHandler.HandleGet())
		r.Delete("/{hashid}", recordHandler.HandleDelete())
	})
	r.Get("/codec/{entity}/encode/{id}", recordHandler.HandleEncode())
	r.Get("/codec/{entity}/decode/{hashid}", recordHandler.HandleDecode())
	r.Mount("/debug", chiMiddleware.Profiler())
	publishOnce.Do(func() {
		expvar.Publish("system.uptime", expvar.Func(uptime))
	})
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, processor hashider.Processor) (server *http.Server, err error) {
	r, err := NewRouter(&cfg.ServerConfig, processor)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:         cfg.ServerConfig.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
