package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shopkart/internal/domain"
	"shopkart/internal/repository"
	"shopkart/internal/seed"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

const (
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10

	// RecentOrderLimit caps how many orders the dashboard shows
	RecentOrderLimit = 5
)

var (
	ErrInvalidRole = errors.New("invalid role")
)

// DashboardStats holds the aggregate counters shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	PendingOrders int     `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// DashboardSummary is the full dashboard payload.
type DashboardSummary struct {
	Stats        DashboardStats        `json:"stats"`
	RecentOrders []*domain.RecentOrder `json:"recentOrders"`
}

// SeedResult reports what the seed routine created.
type SeedResult struct {
	Categories int
	Products   int
	Users      int
}

// AdminService defines the administrative operations
type AdminService interface {
	DashboardSummary(ctx context.Context) (*DashboardSummary, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUserRole(ctx context.Context, id uuid.UUID, role string) (*domain.User, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	SeedCatalog(ctx context.Context) (*SeedResult, error)
}

// AdminCredentials carries the configured credentials for the seeded
// administrator account.
type AdminCredentials struct {
	Email    string
	Password string
}

type adminService struct {
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	categoryRepo repository.CategoryRepository
	admin        AdminCredentials
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	categoryRepo repository.CategoryRepository,
	admin AdminCredentials,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		categoryRepo: categoryRepo,
		admin:        admin,
	}
}

// DashboardSummary gathers the dashboard counters and the five most recent
// orders. The reads are independent, so they are issued concurrently and
// composed once all of them finish. Any failure discards the whole summary.
func (s *adminService) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		summary.Stats.TotalUsers, err = s.userRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Stats.TotalProducts, err = s.productRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Stats.TotalOrders, err = s.orderRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Stats.PendingOrders, err = s.orderRepo.CountByStatus(ctx, domain.OrderStatusPending)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Stats.TotalRevenue, err = s.orderRepo.TotalRevenue(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.RecentOrders, err = s.orderRepo.ListRecent(ctx, RecentOrderLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
	}

	return summary, nil
}

// ListUsers returns all users, most recently created first.
func (s *adminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUserRole overwrites the user's role after validating it against the
// known role set, and returns the updated record.
func (s *adminService) UpdateUserRole(ctx context.Context, id uuid.UUID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.UpdateRole(ctx, id, role)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	return user, nil
}

// DeleteProduct deletes the product if it exists. A missing product is not
// an error: the delete is idempotent from the caller's point of view.
func (s *adminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrProductNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// SeedCatalog truncates categories, products, and users and repopulates
// them with the fixed demo data set. The steps are strictly sequential:
// later inserts reference identifiers produced by earlier ones. There is no
// rollback; a mid-sequence failure leaves partial state behind.
func (s *adminService) SeedCatalog(ctx context.Context) (*SeedResult, error) {
	if err := s.categoryRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear categories: %w", err)
	}
	if err := s.productRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear products: %w", err)
	}
	if err := s.userRepo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear users: %w", err)
	}

	now := time.Now()

	categoryIDs := make([]uuid.UUID, len(seed.Categories))
	for i, c := range seed.Categories {
		category := &domain.Category{
			ID:          uuid.New(),
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			Image:       c.Image,
			CreatedAt:   now,
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to seed category %q: %w", c.Name, err)
		}
		categoryIDs[i] = category.ID
	}

	adminUser, err := s.newSeedUser("Admin", s.admin.Email, s.admin.Password, domain.RoleAdmin, now)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, adminUser); err != nil {
		return nil, fmt.Errorf("failed to seed admin user: %w", err)
	}

	sellerUser, err := s.newSeedUser("Sanjana", "seller@shopkart.com", "sellerDemoPassword123!", domain.RoleSeller, now)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, sellerUser); err != nil {
		return nil, fmt.Errorf("failed to seed seller user: %w", err)
	}

	for i, p := range seed.Products {
		// First SellerProductCount products belong to the demo seller,
		// the rest to the admin.
		sellerID := adminUser.ID
		if i < seed.SellerProductCount {
			sellerID = sellerUser.ID
		}

		product := &domain.Product{
			ID:            uuid.New(),
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			CategoryID:    categoryIDs[p.Category],
			Images:        []string{p.Image},
			Stock:         p.Stock,
			Rating:        p.Rating,
			NumReviews:    p.NumReviews,
			Brand:         p.Brand,
			SellerID:      sellerID,
			IsFeatured:    p.IsFeatured,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return nil, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}

	return &SeedResult{
		Categories: len(seed.Categories),
		Products:   len(seed.Products),
		Users:      2,
	}, nil
}

func (s *adminService) newSeedUser(name, email, password, role string, now time.Time) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	return &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
