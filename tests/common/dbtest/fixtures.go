//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// CreateTestProduct inserts an active product with the given price and stock.
// Weight stays in the lightest shipping band.
func CreateTestProduct(t *testing.T, db DBLike, name string, priceCents int64, stock int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	sku := "SKU-" + strings.ToUpper(productID.String()[:8])
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, sku, price_cents, weight_grams, stock) VALUES ($1, $2, $3, $4, 500, $5)",
		productID, name, sku, priceCents, stock)
	require.NoError(t, err)
	return productID
}

// CreateGuestCart creates a cart owned by a session id and fills it with one
// line per product. quantities maps product id to quantity; unit prices are
// copied from the product row.
func CreateGuestCart(t *testing.T, db DBLike, sessionID string, quantities map[uuid.UUID]int) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	cartID := uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO carts (id, session_id) VALUES ($1, $2)", cartID, sessionID)
	require.NoError(t, err)
	addCartItems(t, db, cartID, quantities)
	return cartID
}

func CreateUserCart(t *testing.T, db DBLike, userID uuid.UUID, quantities map[uuid.UUID]int) uuid.UUID {
	t.Helper()

	cartID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO carts (id, user_id) VALUES ($1, $2)", cartID, userID)
	require.NoError(t, err)
	addCartItems(t, db, cartID, quantities)
	return cartID
}

func addCartItems(t *testing.T, db DBLike, cartID uuid.UUID, quantities map[uuid.UUID]int) {
	t.Helper()

	for productID, qty := range quantities {
		_, err := db.Exec(context.Background(), `
			INSERT INTO cart_items (cart_id, product_id, quantity, unit_price_cents)
			SELECT $1, id, $3, price_cents FROM products WHERE id = $2`,
			cartID, productID, qty)
		require.NoError(t, err)
	}
}

// CreatePercentCoupon inserts an active coupon with no usage limit.
func CreatePercentCoupon(t *testing.T, db DBLike, code string, percent float64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, percent_off) VALUES ($1, $2, $3)",
		couponID, code, percent)
	require.NoError(t, err)
	return couponID
}

func ProductStock(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var stock int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT stock FROM products WHERE id = $1", productID).Scan(&stock))
	return stock
}

// ReservationQuantity sums holds of one product in the given status.
func ReservationQuantity(t *testing.T, db DBLike, productID uuid.UUID, status string) int {
	t.Helper()

	var qty int
	require.NoError(t, db.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(quantity), 0) FROM stock_reservations
		WHERE product_id = $1 AND status = $2`,
		productID, status).Scan(&qty))
	return qty
}

func CountOrders(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM orders").Scan(&n))
	return n
}

// SeedReferenceData restores the tax and shipping tables wiped by ResetDB.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tax_rates (region, basis_points) VALUES ('TR', 1000)
		ON CONFLICT (region) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO shipping_rates (region, min_weight_grams, max_weight_grams, price_cents)
		SELECT * FROM (VALUES
		    ('TR', 0, 1000, 3990::bigint),
		    ('TR', 1001, 5000, 5990::bigint),
		    ('TR', 5001, NULL::integer, 9990::bigint)
		) AS v(region, min_w, max_w, price)
		WHERE NOT EXISTS (SELECT 1 FROM shipping_rates WHERE region = 'TR');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
