package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/danilovkiri/dk_go_hashids/internal/api/rest/modeldto"
	"github.com/danilovkiri/dk_go_hashids/internal/config"
	"github.com/danilovkiri/dk_go_hashids/internal/hashid"
	"github.com/danilovkiri/dk_go_hashids/internal/mocks"
	"github.com/danilovkiri/dk_go_hashids/internal/service/hashider/v1"
	"github.com/danilovkiri/dk_go_hashids/internal/service/modelrecord"
	storageErrors "github.com/danilovkiri/dk_go_hashids/internal/storage/errors"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/inmemory"
	"github.com/danilovkiri/dk_go_hashids/internal/storage/modelstorage"
)

type HandlersTestSuite struct {
	suite.Suite
	service       *hashider.Hashider
	recordHandler *RecordHandler
	router        *chi.Mux
	ts            *httptest.Server
	client        *resty.Client
}

func (suite *HandlersTestSuite) SetupTest() {
	prefix := "ord"
	cfg := &config.HashidConfig{
		Defaults: config.Bundle{
			Salt:      "test-key-for-hashids-testing",
			Length:    8,
			Alphabet:  hashid.DefaultAlphabet,
			Separator: "-",
			Algorithm: hashid.AlgorithmClassic,
		},
		Entities: map[string]config.Override{"orders": {Prefix: &prefix}},
	}
	var err error
	suite.service, err = hashider.InitHashider(inmemory.InitStorage(), cfg)
	require.NoError(suite.T(), err)
	suite.recordHandler, err = InitRecordHandler(suite.service)
	require.NoError(suite.T(), err)
	suite.router = chi.NewRouter()
	suite.router.Get("/ping", suite.recordHandler.HandlePingDB())
	suite.router.Post("/api/{entity}", suite.recordHandler.HandleCreate())
	suite.router.Post("/api/{entity}/import", suite.recordHandler.HandleImport())
	suite.router.Get("/api/{entity}", suite.recordHandler.HandleList())
	suite.router.Get("/api/{entity}/{hashid}", suite.recordHandler.HandleGet())
	suite.router.Delete("/api/{entity}/{hashid}", suite.recordHandler.HandleDelete())
	suite.router.Get("/codec/{entity}/encode/{id}", suite.recordHandler.HandleEncode())
	suite.router.Get("/codec/{entity}/decode/{hashid}", suite.recordHandler.HandleDecode())
	suite.ts = httptest.NewServer(suite.router)
	suite.client = resty.New()
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.ts.Close()
}

// TestHandlersTestSuite initializes test suite for being accessible
func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) TestInitRecordHandler() {
	_, err := InitRecordHandler(nil)
	assert.Error(suite.T(), err)
}

func (suite *HandlersTestSuite) TestHandlePingDB() {
	res, err := suite.client.R().Get(suite.ts.URL + "/ping")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleCreate() {
	type want struct {
		code int
	}
	tests := []struct {
		name string
		body string
		want want
	}{
		{
			name: "Correct POST query",
			body: `{"payload":"` + uuid.New().String() + `"}`,
			want: want{code: http.StatusCreated},
		},
		{
			name: "Invalid POST query (malformed JSON)",
			body: `{"payload":`,
			want: want{code: http.StatusBadRequest},
		},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := suite.client.R().SetHeader("Content-Type", "application/json").SetBody(tt.body).Post(suite.ts.URL + "/api/users")
			if err != nil {
				t.Fatalf(err.Error())
			}
			assert.Equal(t, tt.want.code, res.StatusCode())
		})
	}
}

func (suite *HandlersTestSuite) TestHandleCreateThenGet() {
	payload := uuid.New().String()
	var created modelrecord.Record
	res, err := suite.client.R().SetBody(modeldto.RequestCreate{Payload: payload}).SetResult(&created).Post(suite.ts.URL + "/api/orders")
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), http.StatusCreated, res.StatusCode())
	assert.Equal(suite.T(), "orders", created.Entity)
	assert.Equal(suite.T(), payload, created.Payload)
	assert.Len(suite.T(), created.Hashid, len("ord-")+8)

	var found modelrecord.Record
	res, err = suite.client.R().SetResult(&found).Get(suite.ts.URL + "/api/orders/" + created.Hashid)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), created, found)

	// hashids are entity-scoped
	res, err = suite.client.R().Get(suite.ts.URL + "/api/users/" + created.Hashid)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusNotFound, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleImport() {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "import", body: `{"id":42,"payload":"x"}`, code: http.StatusCreated},
		{name: "duplicate", body: `{"id":42,"payload":"y"}`, code: http.StatusConflict},
		{name: "negative id", body: `{"id":-1,"payload":"x"}`, code: http.StatusBadRequest},
		{name: "missing id", body: `{"payload":"x"}`, code: http.StatusBadRequest},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := suite.client.R().SetHeader("Content-Type", "application/json").SetBody(tt.body).Post(suite.ts.URL + "/api/users/import")
			if err != nil {
				t.Fatalf(err.Error())
			}
			assert.Equal(t, tt.code, res.StatusCode())
		})
	}
	hash, err := suite.service.Encode("users", 42)
	require.NoError(suite.T(), err)
	res, err := suite.client.R().Get(suite.ts.URL + "/api/users/" + hash)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
}

func (suite *HandlersTestSuite) TestHandleList() {
	for i := 0; i < 3; i++ {
		_, err := suite.service.Create(context.Background(), "users", uuid.New().String())
		require.NoError(suite.T(), err)
	}
	var records []modelrecord.Record
	res, err := suite.client.R().SetResult(&records).Get(suite.ts.URL + "/api/users")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Len(suite.T(), records, 3)

	res, err = suite.client.R().Get(suite.ts.URL + "/api/nothing")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.JSONEq(suite.T(), `[]`, string(res.Body()))
}

func (suite *HandlersTestSuite) TestHandleDelete() {
	record, err := suite.service.Create(context.Background(), "users", "alice")
	require.NoError(suite.T(), err)
	codes := []int{http.StatusOK, http.StatusNotFound}
	for _, code := range codes {
		res, err := suite.client.R().Delete(suite.ts.URL + "/api/users/" + record.Hashid)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), code, res.StatusCode())
	}
}

func (suite *HandlersTestSuite) TestHandleEncodeDecode() {
	var encoded modeldto.ResponseEncode
	res, err := suite.client.R().SetResult(&encoded).Get(suite.ts.URL + "/codec/orders/encode/" + strconv.Itoa(5))
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), http.StatusOK, res.StatusCode())

	var decoded modeldto.ResponseDecode
	res, err = suite.client.R().SetResult(&decoded).Get(suite.ts.URL + "/codec/orders/decode/" + encoded.Hashid)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), http.StatusOK, res.StatusCode())
	assert.Equal(suite.T(), int64(5), decoded.ID)

	tests := []struct {
		name string
		path string
		code int
	}{
		{name: "non-numeric id", path: "/codec/users/encode/abc", code: http.StatusBadRequest},
		{name: "negative id", path: "/codec/users/encode/-5", code: http.StatusBadRequest},
		{name: "invalid hashid", path: "/codec/users/decode/ab!c", code: http.StatusNotFound},
	}
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			res, err := suite.client.R().Get(suite.ts.URL + tt.path)
			if err != nil {
				t.Fatalf(err.Error())
			}
			assert.Equal(t, tt.code, res.StatusCode())
			var body modeldto.ResponseError
			assert.NoError(t, json.Unmarshal(res.Body(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
}

// Status mapping of storage failures is exercised through a mocked storage.

func TestHandleGet_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockRecordStorage(ctrl)
	service, err := hashider.InitHashider(s, &config.HashidConfig{Defaults: config.Bundle{Salt: "salt", Length: 8}})
	require.NoError(t, err)
	hash, _ := service.Encode("users", 1)
	s.EXPECT().Retrieve(gomock.Any(), "users", int64(1)).Return(modelstorage.Record{}, &storageErrors.ContextTimeoutExceededError{Err: context.DeadlineExceeded}).AnyTimes()
	handler, _ := InitRecordHandler(service)
	router := chi.NewRouter()
	router.Get("/api/{entity}/{hashid}", handler.HandleGet())
	ts := httptest.NewServer(router)
	defer ts.Close()
	res, err := resty.New().R().Get(ts.URL + "/api/users/" + hash)
	require.NoError(t, err)
	assert.Equal(t, http.StatusGatewayTimeout, res.StatusCode())
}

// Benchmarks

func BenchmarkRecordHandler_HandleEncode(b *testing.B) {
	service, _ := hashider.InitHashider(inmemory.InitStorage(), &config.HashidConfig{Defaults: config.Bundle{Salt: "salt", Length: 8}})
	handler, _ := InitRecordHandler(service)
	router := chi.NewRouter()
	router.Get("/codec/{entity}/encode/{id}", handler.HandleEncode())
	ts := httptest.NewServer(router)
	defer ts.Close()
	client := resty.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = client.R().Get(ts.URL + "/codec/users/encode/" + strconv.Itoa(i))
	}
}
