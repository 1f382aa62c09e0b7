package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"shopkart/internal/domain"
	"shopkart/internal/middleware"
	"shopkart/internal/repository"
	"shopkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Mock repositories for testing

type mockUserRepository struct {
	users []*domain.User
	err   error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.User, len(m.users))
	copy(out, m.users)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.users), m.err
}

func (m *mockUserRepository) DeleteAll(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.users = nil
	return nil
}

type mockProductRepository struct {
	products []*domain.Product
	err      error
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	m.products = append(m.products, product)
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, p := range m.products {
		if p.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (m *mockProductRepository) Count(ctx context.Context) (int, error) {
	return len(m.products), m.err
}

func (m *mockProductRepository) DeleteAll(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.products = nil
	return nil
}

type mockOrderRepository struct {
	orders []*domain.Order
	buyers map[uuid.UUID]*domain.User
	err    error
}

func (m *mockOrderRepository) Count(ctx context.Context) (int, error) {
	return len(m.orders), m.err
}

func (m *mockOrderRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, o := range m.orders {
		if o.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	total := 0.0
	for _, o := range m.orders {
		if o.Status != domain.OrderStatusCancelled {
			total += o.TotalAmount
		}
	}
	return total, nil
}

func (m *mockOrderRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RecentOrder, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []*domain.RecentOrder{}
	for _, o := range m.orders {
		if len(out) == limit {
			break
		}
		recent := &domain.RecentOrder{Order: *o}
		if buyer, ok := m.buyers[o.UserID]; ok {
			recent.BuyerName = buyer.Name
			recent.BuyerEmail = buyer.Email
		}
		out = append(out, recent)
	}
	return out, nil
}

type mockCategoryRepository struct {
	categories []*domain.Category
	err        error
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.err != nil {
		return m.err
	}
	m.categories = append(m.categories, category)
	return nil
}

func (m *mockCategoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.categories), m.err
}

func (m *mockCategoryRepository) DeleteAll(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.categories = nil
	return nil
}

// adminContext injects an authenticated admin principal, standing in for
// the JWT middleware which has its own tests.
func adminContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserIDKey, uuid.NewString())
		ctx = context.WithValue(ctx, middleware.UserRoleKey, domain.RoleAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type handlerFixture struct {
	users    *mockUserRepository
	products *mockProductRepository
	orders   *mockOrderRepository
	router   chi.Router
}

func newHandlerFixture() *handlerFixture {
	f := &handlerFixture{
		users:    &mockUserRepository{},
		products: &mockProductRepository{},
		orders:   &mockOrderRepository{buyers: map[uuid.UUID]*domain.User{}},
	}

	adminService := service.NewAdminService(f.users, f.products, f.orders, &mockCategoryRepository{}, service.AdminCredentials{
		Email:    "admin@shopkart.com",
		Password: "testPassword123!",
	})

	handler := NewAdminHandler(adminService, zap.NewNop())
	f.router = chi.NewRouter()
	handler.RegisterRoutes(f.router, adminContext, nil)
	return f
}

func TestDashboardResponseShape(t *testing.T) {
	f := newHandlerFixture()

	buyer := &domain.User{ID: uuid.New(), Name: "Buyer", Email: "buyer@example.com", Role: domain.RoleCustomer}
	f.users.users = append(f.users.users, buyer)
	f.orders.buyers[buyer.ID] = buyer
	f.orders.orders = []*domain.Order{
		{ID: uuid.New(), UserID: buyer.ID, TotalAmount: 499.50, Status: domain.OrderStatusPending, CreatedAt: time.Now()},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stats struct {
			TotalUsers    int     `json:"totalUsers"`
			TotalProducts int     `json:"totalProducts"`
			TotalOrders   int     `json:"totalOrders"`
			PendingOrders int     `json:"pendingOrders"`
			TotalRevenue  float64 `json:"totalRevenue"`
		} `json:"stats"`
		RecentOrders []map[string]interface{} `json:"recentOrders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Stats.TotalUsers)
	assert.Equal(t, 1, body.Stats.TotalOrders)
	assert.Equal(t, 1, body.Stats.PendingOrders)
	assert.Equal(t, 499.50, body.Stats.TotalRevenue)
	require.Len(t, body.RecentOrders, 1)

	// Recent orders use camelCase keys like the stats block
	assert.Equal(t, "buyer@example.com", body.RecentOrders[0]["buyerEmail"])
	assert.Equal(t, "Buyer", body.RecentOrders[0]["buyerName"])
	assert.Equal(t, 499.50, body.RecentOrders[0]["totalAmount"])
	assert.Equal(t, "pending", body.RecentOrders[0]["status"])
	assert.Contains(t, body.RecentOrders[0], "createdAt")
}

func TestListUsersNeverExposesCredentials(t *testing.T) {
	f := newHandlerFixture()
	f.users.users = append(f.users.users, &domain.User{
		ID:           uuid.New(),
		Name:         "Priya",
		Email:        "priya@example.com",
		PasswordHash: "$2a$10$secret",
		Role:         domain.RoleCustomer,
		CreatedAt:    time.Now(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "$2a$10$secret")

	var users []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "priya@example.com", users[0]["email"])
	assert.Equal(t, "customer", users[0]["role"])
}

func TestListUsersNewestFirst(t *testing.T) {
	f := newHandlerFixture()
	now := time.Now()
	f.users.users = append(f.users.users,
		&domain.User{ID: uuid.New(), Name: "Old", Email: "old@example.com", Role: domain.RoleCustomer, CreatedAt: now.Add(-time.Hour)},
		&domain.User{ID: uuid.New(), Name: "New", Email: "new@example.com", Role: domain.RoleCustomer, CreatedAt: now},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "new@example.com", users[0].Email)
	assert.Equal(t, "old@example.com", users[1].Email)
}

func TestUpdateUserRole(t *testing.T) {
	f := newHandlerFixture()
	user := &domain.User{ID: uuid.New(), Name: "Priya", Email: "priya@example.com", Role: domain.RoleCustomer}
	f.users.users = append(f.users.users, user)

	body := bytes.NewBufferString(`{"role":"seller"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/users/%s/role", user.ID), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "seller", profile.Role)
	assert.Equal(t, domain.RoleSeller, user.Role)
}

func TestUpdateUserRoleRejectsInvalidRole(t *testing.T) {
	f := newHandlerFixture()
	user := &domain.User{ID: uuid.New(), Role: domain.RoleCustomer}
	f.users.users = append(f.users.users, user)

	body := bytes.NewBufferString(`{"role":"superadmin"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/users/%s/role", user.ID), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.RoleCustomer, user.Role)
}

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	f := newHandlerFixture()

	body := bytes.NewBufferString(`{"role":"admin"}`)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/admin/users/%s/role", uuid.New()), body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "user not found")
}

func TestUpdateUserRoleMalformedID(t *testing.T) {
	f := newHandlerFixture()

	body := bytes.NewBufferString(`{"role":"admin"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/admin/users/not-a-uuid/role", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	f := newHandlerFixture()
	product := &domain.Product{ID: uuid.New(), Name: "Galaxy S24 Ultra"}
	f.products.products = append(f.products.products, product)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/products/%s", product.ID), nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted")
	assert.Empty(t, f.products.products)
}

func TestDeleteProductUnknownIDStillSucceeds(t *testing.T) {
	f := newHandlerFixture()

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/admin/products/%s", uuid.New()), nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product deleted")
}

func TestSeedCatalog(t *testing.T) {
	f := newHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Data seeded! 8 categories, 62 products, 2 users", resp.Message)
}

func TestSeedCatalogSurfacesFailureDetail(t *testing.T) {
	f := newHandlerFixture()
	f.users.err = fmt.Errorf("relation \"users\" does not exist")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Seed error:")
	assert.Contains(t, rec.Body.String(), "does not exist")
}

func TestStoreFailuresReturnGenericServerError(t *testing.T) {
	f := newHandlerFixture()
	f.users.err = fmt.Errorf("dial tcp 10.0.0.5:5432: connect: connection refused")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server error")
	assert.NotContains(t, rec.Body.String(), "10.0.0.5", "internal detail must not leak")
}
