package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopkart/internal/domain"
)

// OrderRepository defines the read-only order access the admin API needs
type OrderRepository interface {
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.RecentOrder, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Count returns the total number of orders
func (r *orderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of orders with the given status
func (r *orderRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return count, nil
}

// TotalRevenue sums total_amount over all non-cancelled orders,
// returning 0 when no such orders exist.
func (r *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status <> $1
	`

	var total float64
	err := r.db.QueryRowContext(ctx, query, domain.OrderStatusCancelled).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum order revenue: %w", err)
	}
	return total, nil
}

// ListRecent returns the most recently created orders, newest first,
// each enriched with the buyer's name and email.
func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]*domain.RecentOrder, error) {
	query := `
		SELECT o.id, o.user_id, o.total_amount, o.status, o.created_at, u.name, u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.RecentOrder{}
	for rows.Next() {
		order := &domain.RecentOrder{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
			&order.BuyerName,
			&order.BuyerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent orders: %w", err)
	}

	return orders, nil
}
