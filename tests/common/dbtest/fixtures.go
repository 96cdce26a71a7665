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

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/pkg/ptr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both a pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestCar inserts c and returns its new id. c.ID is ignored.
func CreateTestCar(t *testing.T, db DBLike, c *car.Car) int64 {
	t.Helper()

	images, features := c.ImageURLs, c.Features
	if images == nil {
		images = []string{}
	}
	if features == nil {
		features = []string{}
	}

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO cars (make, model, year, category, transmission, seats, daily_price_cents, location,
		    image_urls, features, availability_status, availability_message, soft_lock_expires_at,
		    is_under_maintenance, maintenance_status, is_rented, rental_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		c.Make, c.Model, c.Year, c.Category, c.Transmission, c.Seats, c.DailyPriceCents, c.Location,
		images, features, ptr.TextToPgtype(c.AvailabilityStatus), ptr.TextToPgtype(c.AvailabilityMessage),
		ptr.TimeToPgtype(c.SoftLockExpiresAt), c.IsUnderMaintenance, ptr.TextToPgtype(c.MaintenanceStatus),
		c.IsRented, ptr.TextToPgtype(c.RentalStatus),
	).Scan(&id)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
