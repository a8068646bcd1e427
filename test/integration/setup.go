package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mini-shop/internal/demo"
	"mini-shop/internal/handler"
	"mini-shop/internal/platform"
	"mini-shop/internal/router"
	"mini-shop/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// TestServer is a fully wired API over an in-memory platform.
type TestServer struct {
	Handler  http.Handler
	Platform *platform.Platform
}

// SetupTestServer wires the API over a platform with the given policy. When
// seed is true the walkthrough users and products are registered.
func SetupTestServer(t *testing.T, policy platform.Policy, seed bool) *TestServer {
	t.Helper()

	logger := zerolog.Nop()

	p := platform.New(platform.WithPolicy(policy), platform.WithLogger(logger))
	if seed {
		demo.Seed(p)
	}

	shop := service.NewShop(p)

	productHandler := handler.NewProductHandler(service.NewProductService(shop, logger), logger)
	userHandler := handler.NewUserHandler(service.NewUserService(shop, logger), logger)
	orderHandler := handler.NewOrderHandler(service.NewOrderService(shop, logger), logger)

	return &TestServer{
		Handler:  router.New(productHandler, userHandler, orderHandler, logger),
		Platform: p,
	}
}

// Do sends a request with an optional JSON body and returns the recorder.
func (s *TestServer) Do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	s.Handler.ServeHTTP(w, req)
	return w
}

// DecodeJSON decodes the recorder body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v))
}
