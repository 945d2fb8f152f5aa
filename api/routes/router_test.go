package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/neonmart/neonmart-backend/internal/cart"
	"github.com/neonmart/neonmart-backend/internal/catalog"
	"github.com/neonmart/neonmart-backend/internal/media"
	"github.com/neonmart/neonmart-backend/internal/orders"
	"github.com/neonmart/neonmart-backend/internal/session"
	"github.com/neonmart/neonmart-backend/internal/team"
	"github.com/neonmart/neonmart-backend/pkg/config"
	"github.com/neonmart/neonmart-backend/pkg/ids"
	"github.com/neonmart/neonmart-backend/pkg/types"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Get(_ context.Context, collection string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[collection]
	return value, ok, nil
}

func (m *memStore) Set(_ context.Context, collection string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, collection string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, collection)
	return nil
}

func (m *memStore) Ping(context.Context) error { return nil }

func (m *memStore) Close() error { return nil }

func newTestHandler(t *testing.T) (http.Handler, *memStore) {
	t.Helper()

	store := newMemStore()
	gen := ids.NewGenerator()

	catalogSvc, err := catalog.NewService(catalog.NewRepository(store), gen)
	if err != nil {
		t.Fatalf("catalog service: %v", err)
	}
	ordersSvc, err := orders.NewService(orders.NewRepository(store))
	if err != nil {
		t.Fatalf("orders service: %v", err)
	}
	teamRepo := team.NewRepository(store)
	teamSvc, err := team.NewService(teamRepo, gen)
	if err != nil {
		t.Fatalf("team service: %v", err)
	}
	sessionSvc, err := session.NewService(session.ServiceParams{
		TeamRepo:    teamRepo,
		SessionRepo: session.NewRepository(store),
		IDs:         gen,
		Bootstrap:   config.BootstrapConfig{HostUsername: "admin", HostPassword: "admin123"},
	})
	if err != nil {
		t.Fatalf("session service: %v", err)
	}
	cartSvc, err := cart.NewService(cart.ServiceParams{
		Catalog: catalogSvc,
		Orders:  ordersSvc,
		IDs:     gen,
	})
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}

	handler := NewRouter(Deps{
		Config:   &config.Config{},
		Store:    store,
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Orders:   ordersSvc,
		Team:     teamSvc,
		Sessions: sessionSvc,
		Images:   media.NewResolver(config.MediaConfig{MaxImageBytes: 1 << 20}),
	})
	return handler, store
}

func TestHealthEndpoints(t *testing.T) {
	handler, _ := newTestHandler(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestListProductsServesSeededCatalog(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("expected the two seeded products, got %d", len(envelope.Data))
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginThenAdminAccess(t *testing.T) {
	handler, store := newTestHandler(t)

	// First run: no host exists, so the default credential cannot log in.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"username":"admin","password":"admin123"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before provisioning, got %d", rec.Code)
	}

	// Provision the host the way process startup does.
	gen := ids.NewGenerator()
	sessionSvc, err := session.NewService(session.ServiceParams{
		TeamRepo:    team.NewRepository(store),
		SessionRepo: session.NewRepository(store),
		IDs:         gen,
		Bootstrap:   config.BootstrapConfig{HostUsername: "admin", HostPassword: "admin123"},
	})
	if err != nil {
		t.Fatalf("session service: %v", err)
	}
	if _, provisioned, err := sessionSvc.EnsureHost(context.Background()); err != nil || !provisioned {
		t.Fatalf("expected host provisioning, got provisioned=%v err=%v", provisioned, err)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with provisioned session, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCheckoutFlow(t *testing.T) {
	handler, _ := newTestHandler(t)

	add := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)))
		return rec
	}

	if rec := add(`{"productId":1}`); rec.Code != http.StatusOK {
		t.Fatalf("cart add: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := add(`{"productId":1}`); rec.Code != http.StatusOK {
		t.Fatalf("cart add: expected 200, got %d", rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"name":"Ada","contact":"555-0100","address":"1 Main St","nationalId":"8-123-456"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data orders.Order `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Items) != 2 {
		t.Fatalf("expected two items on the order, got %d", len(envelope.Data.Items))
	}
	if !envelope.Data.Total.Equal(types.MustMoney("399.98")) {
		t.Fatalf("expected total 399.98, got %s", envelope.Data.Total)
	}

	// Cart must be empty after a successful checkout.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	var view struct {
		Data cart.View `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Data.Count != 0 {
		t.Fatalf("expected emptied cart, got %d entries", view.Data.Count)
	}
}

func TestEmptyCartCheckoutRejected(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/checkout",
		strings.NewReader(`{"name":"Ada","contact":"555-0100","address":"1 Main St","nationalId":"8-123-456"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d", rec.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Message != "cart is empty" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}
