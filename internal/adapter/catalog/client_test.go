package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestHTTPClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "Summer School Shirt", "price": 24.99, "images": []string{"a.jpg"}, "stock": 8},
			{"id": 2, "name": "Winter Uniform Set", "price": 149.99, "image": "b.jpg", "school": "St. Mary's School", "stock": "In Stock"},
		})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	products, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[1].SchoolName != "St. Mary's School" {
		t.Fatalf("expected school alias decoded, got %q", products[1].SchoolName)
	}
	if len(products[1].Images) != 1 || products[1].Images[0] != "b.jpg" {
		t.Fatalf("expected image alias decoded, got %v", products[1].Images)
	}
	if !products[1].Stock.Available() {
		t.Fatal("expected label stock to be available")
	}
}

func TestHTTPClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/7":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Sports Uniform", "price": 79.99, "stock": 12})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	product, err := client.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Name != "Sports Uniform" {
		t.Fatalf("unexpected product: %+v", product)
	}

	if _, err := client.Get(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHTTPClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := client.List(context.Background()); err == nil {
		t.Fatal("expected error for server failure")
	}
}

type clientStub struct {
	list func(ctx context.Context) ([]model.Product, error)
	get  func(ctx context.Context, id int64) (*model.Product, error)
}

func (s *clientStub) List(ctx context.Context) ([]model.Product, error) { return s.list(ctx) }
func (s *clientStub) Get(ctx context.Context, id int64) (*model.Product, error) {
	return s.get(ctx, id)
}

func TestServiceProductsFallsBack(t *testing.T) {
	svc := NewService(&clientStub{
		list: func(context.Context) ([]model.Product, error) { return nil, errors.New("connection refused") },
	}, testLogger())

	products, degraded, err := svc.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !degraded {
		t.Fatal("expected degraded flag")
	}
	if len(products) != len(SampleProducts()) {
		t.Fatalf("expected sample set, got %d products", len(products))
	}
}

func TestServiceProductsLive(t *testing.T) {
	live := []model.Product{{ID: 9, Name: "Live Product", Price: 10}}
	svc := NewService(&clientStub{
		list: func(context.Context) ([]model.Product, error) { return live, nil },
	}, testLogger())

	products, degraded, err := svc.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if degraded {
		t.Fatal("unexpected degraded flag")
	}
	if len(products) != 1 || products[0].ID != 9 {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestServiceProductFallsBackToSample(t *testing.T) {
	svc := NewService(&clientStub{
		get: func(context.Context, int64) (*model.Product, error) { return nil, errors.New("connection refused") },
	}, testLogger())

	product, degraded, err := svc.Product(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !degraded {
		t.Fatal("expected degraded flag")
	}
	if product.Name != "Winter School Blazer" {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestServiceProductMissEverywhere(t *testing.T) {
	svc := NewService(&clientStub{
		get: func(context.Context, int64) (*model.Product, error) { return nil, domainErrors.ErrNotFound },
	}, testLogger())

	if _, _, err := svc.Product(context.Background(), 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
