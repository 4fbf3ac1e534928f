package handler_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/api-productos/products-api/internal/api/handler"
	"github.com/api-productos/products-api/internal/api/middleware"
	"github.com/api-productos/products-api/internal/auth"
	"github.com/api-productos/products-api/internal/core/domain"
	"github.com/api-productos/products-api/internal/core/ports"
)

type stubProductService struct {
	createFn     func(ctx context.Context, input ports.CreateProductInput, ownerID string) (*domain.Product, error)
	listFn       func(ctx context.Context, filters ports.ProductFilters) ([]domain.Product, error)
	getFn        func(ctx context.Context, id string) (*domain.Product, error)
	updateFn     func(ctx context.Context, id string, input ports.UpdateProductInput, callerID, callerRole string) (*domain.Product, error)
	softDeleteFn func(ctx context.Context, id, callerID, callerRole string) error
	hardDeleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput, ownerID string) (*domain.Product, error) {
	return s.createFn(ctx, input, ownerID)
}

func (s *stubProductService) List(ctx context.Context, filters ports.ProductFilters) ([]domain.Product, error) {
	return s.listFn(ctx, filters)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput, callerID, callerRole string) (*domain.Product, error) {
	return s.updateFn(ctx, id, input, callerID, callerRole)
}

func (s *stubProductService) SoftDelete(ctx context.Context, id, callerID, callerRole string) error {
	return s.softDeleteFn(ctx, id, callerID, callerRole)
}

func (s *stubProductService) HardDelete(ctx context.Context, id string) error {
	return s.hardDeleteFn(ctx, id)
}

// mountProducts wires the product routes the way the router does, including
// the token middleware and the admin gate on the permanent delete.
func mountProducts(e *echo.Echo, svc ports.ProductService, codec *auth.TokenCodec) {
	h := handler.NewProductHandler(svc)
	authn := middleware.Authenticate(codec, zerolog.Nop())

	g := e.Group("/api/v1/products")
	g.POST("", h.Create, authn)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update, authn)
	g.DELETE("/:id", h.Delete, authn)
	g.DELETE("/:id/permanent", h.PermanentDelete, authn, middleware.Authorize(domain.RoleAdmin))
}

func issueToken(t *testing.T, codec *auth.TokenCodec, userID, role string) string {
	t.Helper()
	token, err := codec.Issue(userID, userID+"@b.com", role)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func TestProductHandler_Create(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput, ownerID string) (*domain.Product, error) {
			if ownerID != "user-1" {
				t.Fatalf("owner must come from the token, got %q", ownerID)
			}
			return &domain.Product{
				ID: "prod-1", Name: input.Name, Price: input.Price,
				Stock: input.Stock, Category: input.Category,
				IsActive: true, UserID: ownerID,
			}, nil
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "user-1", domain.RoleUser)

	rec := doJSON(e, http.MethodPost, "/api/v1/products",
		`{"name":"Laptop","price":899.99,"stock":10,"category":"electronica"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Producto creado exitosamente" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}

	// Without a token the route is closed.
	rec = doJSON(e, http.MethodPost, "/api/v1/products",
		`{"name":"Laptop","price":899.99,"stock":10,"category":"electronica"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProductHandler_Create_ZeroPriceBinds(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput, _ string) (*domain.Product, error) {
			if input.Price != 0 || input.Stock != 0 {
				t.Fatalf("zero values must survive binding: %+v", input)
			}
			return &domain.Product{ID: "prod-1", Name: input.Name, IsActive: true}, nil
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "user-1", domain.RoleUser)

	rec := doJSON(e, http.MethodPost, "/api/v1/products",
		`{"name":"Gratis","price":0,"stock":0,"category":"promo"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 for explicit zero price, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Omitting the price entirely is still a validation error.
	rec = doJSON(e, http.MethodPost, "/api/v1/products",
		`{"name":"Gratis","stock":0,"category":"promo"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing price, got %d", rec.Code)
	}
}

func TestProductHandler_Create_NegativePrice(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		createFn: func(_ context.Context, _ ports.CreateProductInput, _ string) (*domain.Product, error) {
			return nil, domain.ErrNegativePrice
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "user-1", domain.RoleUser)

	rec := doJSON(e, http.MethodPost, "/api/v1/products",
		`{"name":"Laptop","price":-5,"stock":10,"category":"electronica"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	msg, _ := resp["message"].(string)
	if !strings.Contains(strings.ToLower(msg), "precio") {
		t.Fatalf("message should mention the price: %q", msg)
	}
}

func TestProductHandler_List_Filters(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	var got ports.ProductFilters
	stub := &stubProductService{
		listFn: func(_ context.Context, filters ports.ProductFilters) ([]domain.Product, error) {
			got = filters
			return []domain.Product{{ID: "prod-1"}, {ID: "prod-2"}}, nil
		},
	}
	mountProducts(e, stub, codec)

	rec := doJSON(e, http.MethodGet,
		"/api/v1/products?category=electronica&minPrice=10&maxPrice=99.5&isActive=true&userId=user-1", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if got.Category != "electronica" || got.UserID != "user-1" {
		t.Fatalf("string filters not parsed: %+v", got)
	}
	if got.MinPrice == nil || *got.MinPrice != 10 {
		t.Fatalf("minPrice not parsed: %+v", got)
	}
	if got.MaxPrice == nil || *got.MaxPrice != 99.5 {
		t.Fatalf("maxPrice not parsed: %+v", got)
	}
	if got.IsActive == nil || !*got.IsActive {
		t.Fatalf("isActive not parsed: %+v", got)
	}

	resp := decodeEnvelope(t, rec)
	if resp["count"] != float64(2) {
		t.Fatalf("expected count=2, got %v", resp["count"])
	}
}

func TestProductHandler_List_NoFilters(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	var got ports.ProductFilters
	stub := &stubProductService{
		listFn: func(_ context.Context, filters ports.ProductFilters) ([]domain.Product, error) {
			got = filters
			return nil, nil
		},
	}
	mountProducts(e, stub, codec)

	rec := doJSON(e, http.MethodGet, "/api/v1/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.MinPrice != nil || got.MaxPrice != nil || got.IsActive != nil {
		t.Fatalf("absent params must stay nil: %+v", got)
	}
	resp := decodeEnvelope(t, rec)
	if resp["count"] != float64(0) {
		t.Fatalf("expected count=0, got %v", resp["count"])
	}
}

func TestProductHandler_List_BadPrice(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		listFn: func(_ context.Context, _ ports.ProductFilters) ([]domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	mountProducts(e, stub, codec)

	rec := doJSON(e, http.MethodGet, "/api/v1/products?minPrice=abc", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "El parámetro minPrice no es un número" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_List_BadBool(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		listFn: func(_ context.Context, _ ports.ProductFilters) ([]domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	mountProducts(e, stub, codec)

	rec := doJSON(e, http.MethodGet, "/api/v1/products?isActive=maybe", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "El parámetro isActive no es un booleano" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		getFn: func(_ context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	mountProducts(e, stub, codec)

	rec := doJSON(e, http.MethodGet, "/api/v1/products/missing", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["success"] != false || resp["message"] != domain.ErrProductNotFound.Error() {
		t.Fatalf("unexpected envelope: %v", resp)
	}
}

func TestProductHandler_Update_Forbidden(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		updateFn: func(_ context.Context, _ string, _ ports.UpdateProductInput, callerID, callerRole string) (*domain.Product, error) {
			if callerID != "intruder" || callerRole != domain.RoleUser {
				t.Fatalf("caller identity must come from the token: %s/%s", callerID, callerRole)
			}
			return nil, domain.ErrForbidden
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "intruder", domain.RoleUser)

	rec := doJSON(e, http.MethodPut, "/api/v1/products/prod-1", `{"price":1}`, token)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != domain.ErrForbidden.Error() {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_Update_Success(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, input ports.UpdateProductInput, _, _ string) (*domain.Product, error) {
			if id != "prod-1" {
				t.Fatalf("unexpected id %q", id)
			}
			if input.Price == nil || *input.Price != 499.99 {
				t.Fatalf("price not bound: %+v", input)
			}
			if input.Name != nil || input.Stock != nil {
				t.Fatalf("absent fields must bind to nil: %+v", input)
			}
			return &domain.Product{ID: id, Name: "Laptop", Price: *input.Price, IsActive: true}, nil
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "owner-1", domain.RoleUser)

	rec := doJSON(e, http.MethodPut, "/api/v1/products/prod-1", `{"price":499.99}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Producto actualizado exitosamente" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

// An explicit JSON null on the nullable fields must arrive at the service as
// provided, not be collapsed into "absent".
func TestProductHandler_Update_NullFields(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	var got ports.UpdateProductInput
	stub := &stubProductService{
		updateFn: func(_ context.Context, _ string, input ports.UpdateProductInput, _, _ string) (*domain.Product, error) {
			got = input
			return &domain.Product{ID: "prod-1"}, nil
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "owner-1", domain.RoleUser)

	rec := doJSON(e, http.MethodPut, "/api/v1/products/prod-1",
		`{"description":null,"image":null}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !got.DescriptionSet || got.Description != nil {
		t.Fatalf("null description must arrive as provided-and-nil: %+v", got)
	}
	if !got.ImageSet || got.Image != nil {
		t.Fatalf("null image must arrive as provided-and-nil: %+v", got)
	}

	// Omitted keys stay unmarked.
	rec = doJSON(e, http.MethodPut, "/api/v1/products/prod-1", `{"price":1}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.DescriptionSet || got.ImageSet {
		t.Fatalf("absent keys must not be marked provided: %+v", got)
	}
}

func TestProductHandler_SoftDelete(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	stub := &stubProductService{
		softDeleteFn: func(_ context.Context, id, callerID, callerRole string) error {
			if id != "prod-1" || callerID != "owner-1" {
				t.Fatalf("unexpected call: %s by %s", id, callerID)
			}
			return nil
		},
	}
	mountProducts(e, stub, codec)
	token := issueToken(t, codec, "owner-1", domain.RoleUser)

	rec := doJSON(e, http.MethodDelete, "/api/v1/products/prod-1", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Producto eliminado exitosamente" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestProductHandler_PermanentDelete_AdminGate(t *testing.T) {
	e := newEcho()
	codec := auth.NewTokenCodec("secret", time.Hour)
	deleted := false
	stub := &stubProductService{
		hardDeleteFn: func(_ context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	mountProducts(e, stub, codec)

	// A regular user is rejected by the role gate before the service runs.
	userToken := issueToken(t, codec, "user-1", domain.RoleUser)
	rec := doJSON(e, http.MethodDelete, "/api/v1/products/prod-1/permanent", "", userToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if deleted {
		t.Fatalf("service must not run for non-admins")
	}

	adminToken := issueToken(t, codec, "admin-1", domain.RoleAdmin)
	rec = doJSON(e, http.MethodDelete, "/api/v1/products/prod-1/permanent", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !deleted {
		t.Fatalf("service not invoked for admin")
	}
	resp := decodeEnvelope(t, rec)
	if resp["message"] != "Producto eliminado permanentemente" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
