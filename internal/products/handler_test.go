package products

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/stockpilot/stockpilot/internal/platform/httpx"
	"github.com/stockpilot/stockpilot/internal/upstream"
)

type backendCall struct {
	method string
	path   string
	body   string
}

// fakeInventory mimics the backend /products collection.
type fakeInventory struct {
	mu    sync.Mutex
	calls []backendCall
	items string
}

func (f *fakeInventory) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.calls = append(f.calls, backendCall{method: r.Method, path: r.URL.Path, body: string(raw)})
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			_, _ = w.Write([]byte(f.items))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}
}

func (f *fakeInventory) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestRouter(t *testing.T) (*chi.Mux, *fakeInventory) {
	t.Helper()
	backend := &fakeInventory{items: `[{"_id": "p1", "name": "Widget", "sku": "W-1", "price": 9.5, "stock": 3}]`}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := upstream.NewClient(server.URL, 0, logger, nil)
	handler := NewHandler(logger, NewService(logger, client))

	router := chi.NewRouter()
	router.Route("/api/products", handler.MountRoutes)
	return router, backend
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) httpx.ProblemDetail {
	t.Helper()
	var problem httpx.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func TestListProducts(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var records []Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	require.Equal(t, "p1", records[0].ID)
	require.Equal(t, "Widget", records[0].Name)
}

func TestCreateProduct(t *testing.T) {
	router, backend := newTestRouter(t)

	body := `{"name": "Bolt", "sku": "B-1", "price": 1.25, "stock": 10}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, backend.callCount())
	require.Equal(t, http.MethodPost, backend.calls[0].method)
	require.JSONEq(t, body, backend.calls[0].body)
}

func TestCreateProductValidationShortCircuits(t *testing.T) {
	router, backend := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"sku": "B-1"}`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Name is required", decodeProblem(t, rec).Detail)
	require.Zero(t, backend.callCount(), "invalid payload must not reach the backend")
}

func TestCreateProductRejectsMalformedJSON(t *testing.T) {
	router, backend := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{nope`)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid JSON body", decodeProblem(t, rec).Detail)
	require.Zero(t, backend.callCount())
}

func TestUpdateProductTrimsInput(t *testing.T) {
	router, backend := newTestRouter(t)

	body := `{"name": "  Bolt  ", "sku": " B-1 ", "price": 1, "stock": 1}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/products/p1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, backend.callCount())

	var sent ProductForm
	require.NoError(t, json.Unmarshal([]byte(backend.calls[0].body), &sent))
	require.Equal(t, "Bolt", sent.Name)
	require.Equal(t, "B-1", sent.SKU)
}

func TestDeleteProductRequiresConfirmation(t *testing.T) {
	router, backend := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/p1", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Confirmation Required", decodeProblem(t, rec).Title)
	require.Zero(t, backend.callCount(), "unconfirmed delete must not reach the backend")
}

func TestDeleteProductConfirmed(t *testing.T) {
	router, backend := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/products/p1?confirm=true", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.GreaterOrEqual(t, backend.callCount(), 2, "delete should be followed by a refetch")
	require.Equal(t, http.MethodDelete, backend.calls[0].method)
	require.Equal(t, "/products/p1", backend.calls[0].path)
}

func TestShowProductNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := upstream.NewClient(server.URL, 0, logger, nil)
	handler := NewHandler(logger, NewService(logger, client))
	router := chi.NewRouter()
	router.Route("/api/products", handler.MountRoutes)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
