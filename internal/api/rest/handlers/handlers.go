// Package handlers provides http.HandlerFunc handler functions to be used for endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"

	"github.com/danilovkiri/dk_go_hashids/internal/api/rest/modeldto"
	serviceErrors "github.com/danilovkiri/dk_go_hashids/internal/service/errors"
	"github.com/danilovkiri/dk_go_hashids/internal/service/hashider"
	storageErrors "github.com/danilovkiri/dk_go_hashids/internal/storage/errors"
)

// DefaultTimeout bounds storage operations of a single request.
const DefaultTimeout = 500 * time.Millisecond

// RecordHandler defines data structure handling and provides support for adding new implementations.
type RecordHandler struct {
	processor hashider.Processor
	timeout   time.Duration
}

// InitRecordHandler initializes a RecordHandler object and sets its attributes.
func InitRecordHandler(processor hashider.Processor) (*RecordHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Hashider Service was passed to Record Handler initializer")
	}
	return &RecordHandler{processor: processor, timeout: DefaultTimeout}, nil
}

// HandleCreate stores {"payload": ...} under a new ID and responds with the record and its hashid.
func (h *RecordHandler) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		entity := chi.URLParam(r, "entity")
		var post modeldto.RequestCreate
		if err := decodeBody(r, &post); err != nil {
			writeError(w, "HandleCreate", err, http.StatusBadRequest)
			return
		}
		record, err := h.processor.Create(ctx, entity, post.Payload)
		if err != nil {
			writeError(w, "HandleCreate", err, statusFor(err))
			return
		}
		log.Println("HandleCreate: stored", entity, "as", record.Hashid)
		writeJSON(w, http.StatusCreated, record)
	}
}

// HandleImport stores {"id": n, "payload": ...} under an ID issued elsewhere.
func (h *RecordHandler) HandleImport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		entity := chi.URLParam(r, "entity")
		var post modeldto.RequestImport
		if err := decodeBody(r, &post); err != nil {
			writeError(w, "HandleImport", err, http.StatusBadRequest)
			return
		}
		if post.ID == nil {
			writeError(w, "HandleImport", errors.New("id is required"), http.StatusBadRequest)
			return
		}
		record, err := h.processor.Import(ctx, entity, *post.ID, post.Payload)
		if err != nil {
			writeError(w, "HandleImport", err, statusFor(err))
			return
		}
		log.Println("HandleImport: stored", entity, *post.ID, "as", record.Hashid)
		writeJSON(w, http.StatusCreated, record)
	}
}

// HandleGet responds with the record addressed by its hashid.
func (h *RecordHandler) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		entity := chi.URLParam(r, "entity")
		hash := chi.URLParam(r, "hashid")
		record, err := h.processor.FindByHashid(ctx, entity, hash)
		if err != nil {
			writeError(w, "HandleGet", err, statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// HandleList responds with every record of an entity.
func (h *RecordHandler) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		entity := chi.URLParam(r, "entity")
		records, err := h.processor.List(ctx, entity)
		if err != nil {
			writeError(w, "HandleList", err, statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, records)
	}
}

// HandleDelete removes the record addressed by its hashid.
func (h *RecordHandler) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		entity := chi.URLParam(r, "entity")
		hash := chi.URLParam(r, "hashid")
		if err := h.processor.Delete(ctx, entity, hash); err != nil {
			writeError(w, "HandleDelete", err, statusFor(err))
			return
		}
		log.Println("HandleDelete: deleted", entity, hash)
		w.WriteHeader(http.StatusOK)
	}
}

// HandleEncode responds with the hashid of an integer ID without touching storage.
func (h *RecordHandler) HandleEncode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity := chi.URLParam(r, "entity")
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, "HandleEncode", err, http.StatusBadRequest)
			return
		}
		hash, err := h.processor.Encode(entity, id)
		if err != nil {
			writeError(w, "HandleEncode", err, statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseEncode{Hashid: hash})
	}
}

// HandleDecode responds with the integer ID of a hashid without touching storage.
func (h *RecordHandler) HandleDecode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity := chi.URLParam(r, "entity")
		id, err := h.processor.Decode(entity, chi.URLParam(r, "hashid"))
		if err != nil {
			writeError(w, "HandleDecode", err, statusFor(err))
			return
		}
		writeJSON(w, http.StatusOK, modeldto.ResponseDecode{ID: id})
	}
}

// HandlePingDB checks the storage connection.
func (h *RecordHandler) HandlePingDB() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.processor.PingDB(); err != nil {
			writeError(w, "HandlePingDB", err, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// statusFor maps service and storage errors onto HTTP status codes.
func statusFor(err error) int {
	var invalidHashid *serviceErrors.ServiceInvalidHashidError
	var notEncodable *serviceErrors.ServiceNotEncodableError
	var incorrectInput *serviceErrors.ServiceIncorrectInput
	var notFound *storageErrors.NotFoundError
	var exists *storageErrors.AlreadyExistsError
	var timeout *storageErrors.ContextTimeoutExceededError
	switch {
	case errors.As(err, &invalidHashid), errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &exists):
		return http.StatusConflict
	case errors.As(err, &notEncodable), errors.As(err, &incorrectInput):
		return http.StatusBadRequest
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v interface{}) error {
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	resBody, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(resBody)
}

func writeError(w http.ResponseWriter, handler string, err error, code int) {
	log.Println(handler+":", err)
	writeJSON(w, code, modeldto.ResponseError{Error: err.Error()})
}
