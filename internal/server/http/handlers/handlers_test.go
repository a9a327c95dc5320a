package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/monisha-uniforms/storefront/internal/domain/errors"
	"github.com/monisha-uniforms/storefront/internal/domain/model"
	"github.com/monisha-uniforms/storefront/internal/server/http/dto"
	"github.com/monisha-uniforms/storefront/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type catalogFacadeStub struct {
	products []model.Product
	degraded bool
	err      error
}

func (s *catalogFacadeStub) Products(ctx context.Context) ([]model.Product, bool, error) {
	return s.products, s.degraded, s.err
}

func (s *catalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, bool, error) {
	if s.err != nil {
		return nil, s.degraded, s.err
	}
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, s.degraded, nil
		}
	}
	return nil, s.degraded, domainErrors.ErrNotFound
}

func (s *catalogFacadeStub) RecentProducts(ctx context.Context, limit int) ([]model.Product, bool, error) {
	return s.products, s.degraded, s.err
}

func (s *catalogFacadeStub) TopRatedProducts(ctx context.Context, limit int) ([]model.Product, bool, error) {
	return s.products, s.degraded, s.err
}

func TestCatalogListMarksDegradedResponses(t *testing.T) {
	handler := NewCatalogHandler(&catalogFacadeStub{
		products: []model.Product{{ID: 1, Name: "Winter School Blazer"}},
		degraded: true,
	})
	engine := gin.New()
	engine.GET("/api/products", handler.List)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if resp.Header().Get(FallbackHeader) != "true" {
		t.Fatal("expected fallback header")
	}
	var products []model.Product
	if err := json.Unmarshal(resp.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestCatalogGetMissingProduct(t *testing.T) {
	handler := NewCatalogHandler(&catalogFacadeStub{})
	engine := gin.New()
	engine.GET("/api/products/:id", handler.Get)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products/42", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", resp.Code)
	}
}

type cartFacadeStub struct {
	items   []model.CartItem
	summary *model.CartSummary
	err     error
}

func (s *cartFacadeStub) Cart(ctx context.Context) ([]model.CartItem, error) {
	return s.items, s.err
}

func (s *cartFacadeStub) AddToCart(ctx context.Context, item model.CartItem) ([]model.CartItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items, item)
	return s.items, nil
}

func (s *cartFacadeStub) UpdateCartQuantity(ctx context.Context, productID int64, size string, quantity int) ([]model.CartItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *cartFacadeStub) RemoveFromCart(ctx context.Context, productID int64, size string) ([]model.CartItem, error) {
	return s.items, s.err
}

func (s *cartFacadeStub) ClearCart(ctx context.Context) error { return s.err }

func (s *cartFacadeStub) CartSummary(ctx context.Context) (*model.CartSummary, error) {
	return s.summary, s.err
}

func TestCartAdd(t *testing.T) {
	stub := &cartFacadeStub{}
	handler := NewCartHandler(stub)
	engine := gin.New()
	engine.POST("/api/cart", handler.Add)

	payload := `{"id":1,"name":"Summer School Shirt","price":24.99,"size":"M","quantity":2}`
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if len(stub.items) != 1 || stub.items[0].ProductID != 1 || stub.items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", stub.items)
	}

	resp = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString("{bad"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed payload, got %d", resp.Code)
	}
}

func TestCartUpdateMissingEntry(t *testing.T) {
	handler := NewCartHandler(&cartFacadeStub{err: domainErrors.ErrNotFound})
	engine := gin.New()
	engine.PATCH("/api/cart/:id", handler.Update)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/cart/7?size=M", bytes.NewBufferString(`{"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

type wishlistFacadeStub struct {
	items []model.WishlistItem
	cart  []model.CartItem
	err   error
}

func (s *wishlistFacadeStub) Wishlist(ctx context.Context) ([]model.WishlistItem, error) {
	return s.items, s.err
}

func (s *wishlistFacadeStub) AddToWishlist(ctx context.Context, item model.WishlistItem) ([]model.WishlistItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items, item)
	return s.items, nil
}

func (s *wishlistFacadeStub) RemoveFromWishlist(ctx context.Context, productID int64) ([]model.WishlistItem, error) {
	return s.items, s.err
}

func (s *wishlistFacadeStub) MoveWishlistItemToCart(ctx context.Context, productID int64) ([]model.CartItem, error) {
	return s.cart, s.err
}

func TestWishlistAddDuplicateConflicts(t *testing.T) {
	handler := NewWishlistHandler(&wishlistFacadeStub{err: domainErrors.ErrAlreadyExists})
	engine := gin.New()
	engine.POST("/api/wishlist", handler.Add)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist", bytes.NewBufferString(`{"id":1}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

type orderFacadeStub struct {
	record *model.OrderRecord
	parent *model.ParentOrder
	err    error
}

func (s *orderFacadeStub) SubmitBulkOrder(ctx context.Context, in usecase.BulkOrderInput) (*model.OrderRecord, error) {
	return s.record, s.err
}

func (s *orderFacadeStub) BulkOrders(ctx context.Context) ([]model.OrderRecord, error) {
	if s.record == nil {
		return nil, s.err
	}
	return []model.OrderRecord{*s.record}, s.err
}

func (s *orderFacadeStub) BulkOrder(ctx context.Context, id string) (*model.OrderRecord, error) {
	return s.record, s.err
}

func (s *orderFacadeStub) CancelBulkOrder(ctx context.Context, id string) (*model.OrderRecord, error) {
	return s.record, s.err
}

func (s *orderFacadeStub) SubmitParentOrder(ctx context.Context, in usecase.ParentOrderInput) (*model.ParentOrder, error) {
	return s.parent, s.err
}

func (s *orderFacadeStub) ParentOrders(ctx context.Context) ([]model.ParentOrder, error) {
	if s.parent == nil {
		return nil, s.err
	}
	return []model.ParentOrder{*s.parent}, s.err
}

func (s *orderFacadeStub) CancelParentOrder(ctx context.Context, id string) (*model.ParentOrder, error) {
	return s.parent, s.err
}

func TestBulkOrderSubmitValidationFailure(t *testing.T) {
	handler := NewOrderHandler(&orderFacadeStub{err: domainErrors.FieldErrors{
		"name": "school name is required",
	}})
	engine := gin.New()
	engine.POST("/api/orders/bulk", handler.SubmitBulk)

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/bulk", bytes.NewBufferString(`{"location":"Hyderabad"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Fields["name"] == "" {
		t.Fatalf("expected field map in response, got %+v", body)
	}
}

func TestBulkOrderSubmitAccepted(t *testing.T) {
	handler := NewOrderHandler(&orderFacadeStub{record: &model.OrderRecord{
		ID:          "o1",
		SchoolName:  "Greenwood High",
		Status:      model.OrderStatusPending,
		TotalAmount: 70,
	}})
	engine := gin.New()
	engine.POST("/api/orders/bulk", handler.SubmitBulk)

	payload := `{"name":"Greenwood High","location":"Hyderabad","contact":{"person":"A. Rao","phone":"9000000000","email":"rao@example.com"},"level":"o_level"}`
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/bulk", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", resp.Code, resp.Body.String())
	}
	var record model.OrderRecord
	if err := json.Unmarshal(resp.Body.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record.Status != model.OrderStatusPending {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestBulkOrderCancelConflict(t *testing.T) {
	handler := NewOrderHandler(&orderFacadeStub{err: domainErrors.ErrInvalidTransition})
	engine := gin.New()
	engine.POST("/api/orders/bulk/:id/cancel", handler.CancelBulk)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/orders/bulk/o1/cancel", nil))

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

type schoolFacadeStub struct {
	schools []model.School
	queries []string
	err     error
}

func (s *schoolFacadeStub) Schools(ctx context.Context, query string) ([]model.School, error) {
	s.queries = append(s.queries, query)
	return s.schools, s.err
}

func (s *schoolFacadeStub) AddSchool(ctx context.Context, school model.School) error { return s.err }

func TestSchoolSearchPassesQuery(t *testing.T) {
	stub := &schoolFacadeStub{schools: []model.School{{ID: "1", Name: "Greenwood High"}}}
	handler := NewSchoolHandler(stub)
	engine := gin.New()
	engine.GET("/api/schools/search", handler.Search)

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/schools/search?q=green", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if len(stub.queries) != 1 || stub.queries[0] != "green" {
		t.Fatalf("query not forwarded: %v", stub.queries)
	}
}
