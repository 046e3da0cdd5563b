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

	"commerce-core/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Well-known catalog rows recreated by SeedReferenceData after every reset.
var (
	SeedOptionTeeID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	SeedOptionMugID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

const (
	SeedStockQuantity    = int64(50)
	SeedStockMaxQuantity = int64(100)

	// Password shared by all users created through CreateTestUser.
	TestUserPassword = "Password123!"
)

var (
	testHashOnce sync.Once
	testHash     string
)

// bcrypt is deliberately slow, so all test users share one hash.
func testPasswordHash(t *testing.T) string {
	t.Helper()
	testHashOnce.Do(func() {
		h, err := password.HashPassword(TestUserPassword)
		require.NoError(t, err)
		testHash = h
	})
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t))
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestProductOption(t *testing.T, db DBLike, productName, optionName string, price int64) uuid.UUID {
	t.Helper()

	optionID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO product_options (id, product_name, option_name, price) VALUES ($1, $2, $3, $4)",
		optionID, productName, optionName, price)
	require.NoError(t, err)

	return optionID
}

func CreateTestStock(t *testing.T, db DBLike, optionID uuid.UUID, quantity, maxQuantity int64) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO stocks (option_id, quantity, reserved, max_quantity) VALUES ($1, $2, 0, $3)",
		optionID, quantity, maxQuantity)
	require.NoError(t, err)
}

func GetStockRow(t *testing.T, db DBLike, optionID uuid.UUID) (quantity, reserved, maxQuantity int64) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT quantity, reserved, max_quantity FROM stocks WHERE option_id = $1", optionID).
		Scan(&quantity, &reserved, &maxQuantity)
	require.NoError(t, err)
	return quantity, reserved, maxQuantity
}

// inserts a coupon row plus its ticket pool, bypassing the creation
// endpoint so expired and not-yet-started windows can be staged
func CreateTestCoupon(t *testing.T, db DBLike, validFrom, validUntil time.Time, totalQuantity int) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO coupons (id, discount_type, discount_value, valid_from, valid_until, total_quantity)
		 VALUES ($1, 'PERCENT', 10, $2, $3, $4)`,
		couponID, validFrom, validUntil, totalQuantity)
	require.NoError(t, err)

	for range totalQuantity {
		_, err = db.Exec(ctx,
			"INSERT INTO coupon_tickets (id, coupon_id, status) VALUES ($1, $2, 'AVAILABLE')",
			uuid.New(), couponID)
		require.NoError(t, err)
	}

	return couponID
}

func CountAvailableTickets(t *testing.T, db DBLike, couponID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM coupon_tickets WHERE coupon_id = $1 AND status = 'AVAILABLE'", couponID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts catalog and stock rows shared by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO product_options (id, product_name, option_name, price) VALUES
		    ($1, 'Classic Tee', 'Black / L', 2500),
		    ($2, 'Stoneware Mug', 'White', 1800)
		ON CONFLICT (id) DO NOTHING;
	`, SeedOptionTeeID, SeedOptionMugID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO stocks (option_id, quantity, reserved, max_quantity) VALUES
		    ($1, $3, 0, $4),
		    ($2, $3, 0, $4)
		ON CONFLICT (option_id) DO NOTHING;
	`, SeedOptionTeeID, SeedOptionMugID, SeedStockQuantity, SeedStockMaxQuantity)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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
