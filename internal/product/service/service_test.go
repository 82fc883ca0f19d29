package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"catalog-console/internal/product"
	"catalog-console/internal/product/service"
	"catalog-console/pkg/catalogapi"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockAPI struct {
	products  []catalogapi.Product
	product   *catalogapi.Product
	err       error
	gotUpdate catalogapi.UpdateProductRequest
	updates   int
	gotAdd    catalogapi.AddProductRequest
}

func (m *mockAPI) ListProducts(ctx context.Context) ([]catalogapi.Product, error) {
	return m.products, m.err
}
func (m *mockAPI) GetProduct(ctx context.Context, id int) (*catalogapi.Product, error) {
	return m.product, m.err
}
func (m *mockAPI) AddProduct(ctx context.Context, req catalogapi.AddProductRequest) error {
	m.gotAdd = req
	return m.err
}
func (m *mockAPI) UpdateProduct(ctx context.Context, id int, req catalogapi.UpdateProductRequest) error {
	m.gotUpdate = req
	m.updates++
	return m.err
}
func (m *mockAPI) DeleteProduct(ctx context.Context, id int) error {
	return m.err
}

func TestErrorMapping(t *testing.T) {
	ctx := context.Background()
	notFound := &catalogapi.APIError{Op: "x", StatusCode: http.StatusNotFound}
	serverErr := &catalogapi.APIError{Op: "x", StatusCode: http.StatusInternalServerError}
	transport := errors.New("connection refused")
	title := "x"

	tcs := []struct {
		name string
		call func(s product.Service) error
		err  error
		want error
	}{
		{"list server error", func(s product.Service) error { _, err := s.List(ctx); return err }, serverErr, product.ErrRead},
		{"list transport", func(s product.Service) error { _, err := s.List(ctx); return err }, transport, product.ErrRead},
		{"detail 404", func(s product.Service) error { _, err := s.Detail(ctx, 1); return err }, notFound, product.ErrNotFound},
		{"detail 500", func(s product.Service) error { _, err := s.Detail(ctx, 1); return err }, serverErr, product.ErrRead},
		{"create", func(s product.Service) error { return s.Create(ctx, product.CreateInput{}) }, serverErr, product.ErrWrite},
		{"update 404", func(s product.Service) error { return s.Update(ctx, 1, product.UpdateInput{Title: &title}) }, notFound, product.ErrWrite},
		{"delete 404", func(s product.Service) error { return s.Delete(ctx, 1) }, notFound, product.ErrNotFound},
		{"delete transport", func(s product.Service) error { return s.Delete(ctx, 1) }, transport, product.ErrWrite},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.New(&mockAPI{err: tc.err}, &mockLogger{})
			err := tc.call(svc)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestListNoPartialData(t *testing.T) {
	api := &mockAPI{products: []catalogapi.Product{{ID: 1}}, err: errors.New("boom")}
	products, err := service.New(api, &mockLogger{}).List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if products != nil {
		t.Errorf("expected no data on failure, got %+v", products)
	}
}

func TestCreateAndUpdatePayloads(t *testing.T) {
	api := &mockAPI{}
	svc := service.New(api, &mockLogger{})
	ctx := context.Background()

	err := svc.Create(ctx, product.CreateInput{Title: "Lamp", Price: 10, Stock: 2, Images: []string{"a.png"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.gotAdd.Title != "Lamp" || api.gotAdd.Stock != 2 || len(api.gotAdd.Images) != 1 {
		t.Errorf("unexpected add request: %+v", api.gotAdd)
	}

	price := 12.5
	if err := svc.Update(ctx, 3, product.UpdateInput{Price: &price}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.gotUpdate.Price == nil || *api.gotUpdate.Price != 12.5 || api.gotUpdate.Title != nil {
		t.Errorf("unexpected update request: %+v", api.gotUpdate)
	}
}

func TestUpdateWithoutFields(t *testing.T) {
	api := &mockAPI{err: errors.New("must not be called")}
	svc := service.New(api, &mockLogger{})

	if err := svc.Update(context.Background(), 3, product.UpdateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.updates != 0 {
		t.Errorf("expected no API call, got %d", api.updates)
	}
}

func TestDetailIsStableWithoutWrites(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(catalogapi.Product{
			ID: 7, Title: "Phone", Price: 549, Rating: 4.69, Stock: 94,
			Images: []string{"1.jpg", "2.jpg"},
		})
	}))
	defer ts.Close()

	svc := service.New(catalogapi.NewClient(ts.URL), &mockLogger{})
	ctx := context.Background()

	first, err := svc.Detail(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Detail(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected equal products, got %+v and %+v", first, second)
	}
}
