package repository

import (
	"context"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/infra"
	"carrental-storefront/internal/pkg/pgconv"
	"carrental-storefront/internal/pkg/ptr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const carColumns = `id, make, model, year, category, transmission, seats, daily_price_cents, location,
	image_urls, features, availability_status, availability_message, soft_lock_expires_at,
	is_under_maintenance, maintenance_status, is_rented, rental_status, created_at, updated_at`

const (
	selectCarByID = `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	selectAllCars = `SELECT ` + carColumns + ` FROM cars ORDER BY id`
	insertCar     = `INSERT INTO cars (make, model, year, category, transmission, seats, daily_price_cents, location,
	image_urls, features, availability_status, availability_message, soft_lock_expires_at,
	is_under_maintenance, maintenance_status, is_rented, rental_status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
RETURNING id`
	updateCar = `UPDATE cars SET make = $2, model = $3, year = $4, category = $5, transmission = $6, seats = $7,
	daily_price_cents = $8, location = $9, image_urls = $10, features = $11, availability_status = $12,
	availability_message = $13, soft_lock_expires_at = $14, is_under_maintenance = $15,
	maintenance_status = $16, is_rented = $17, rental_status = $18, updated_at = $19
WHERE id = $1`
)

type CarRepository struct {
	db  DBTX
	now func() time.Time
}

func NewCarRepository(db DBTX) *CarRepository {
	return &CarRepository{db: db, now: time.Now}
}

func (r *CarRepository) GetByID(ctx context.Context, id int64) (*car.Car, error) {
	c, err := scanCar(r.db.QueryRow(ctx, selectCarByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("car not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find car by ID", err)
	}
	return c, nil
}

func (r *CarRepository) GetAll(ctx context.Context) ([]*car.Car, error) {
	rows, err := r.db.Query(ctx, selectAllCars)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cars", err)
	}
	defer rows.Close()

	cars := make([]*car.Car, 0)
	for rows.Next() {
		c, scanErr := scanCar(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan car", scanErr)
		}
		cars = append(cars, c)
	}
	if err = rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cars", err)
	}
	return cars, nil
}

func (r *CarRepository) Create(ctx context.Context, c *car.Car) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertCar,
		c.Make, c.Model, c.Year, c.Category, c.Transmission, c.Seats, c.DailyPriceCents, c.Location,
		nonNil(c.ImageURLs), nonNil(c.Features),
		ptr.TextToPgtype(c.AvailabilityStatus), ptr.TextToPgtype(c.AvailabilityMessage), ptr.TimeToPgtype(c.SoftLockExpiresAt),
		c.IsUnderMaintenance, ptr.TextToPgtype(c.MaintenanceStatus), c.IsRented, ptr.TextToPgtype(c.RentalStatus),
	).Scan(&id)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return 0, infra.WrapRepoErr("car already exists", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to create car", err)
	}
	return id, nil
}

func (r *CarRepository) Update(ctx context.Context, c *car.Car) error {
	tag, err := r.db.Exec(ctx, updateCar,
		c.ID, c.Make, c.Model, c.Year, c.Category, c.Transmission, c.Seats, c.DailyPriceCents, c.Location,
		nonNil(c.ImageURLs), nonNil(c.Features),
		ptr.TextToPgtype(c.AvailabilityStatus), ptr.TextToPgtype(c.AvailabilityMessage), ptr.TimeToPgtype(c.SoftLockExpiresAt),
		c.IsUnderMaintenance, ptr.TextToPgtype(c.MaintenanceStatus), c.IsRented, ptr.TextToPgtype(c.RentalStatus),
		r.now(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update car", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("car not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCar(row pgx.Row) (*car.Car, error) {
	var (
		c                                    car.Car
		status, message, maintenance, rental pgtype.Text
		softLockExpiresAt                    pgtype.Timestamptz
	)
	err := row.Scan(
		&c.ID, &c.Make, &c.Model, &c.Year, &c.Category, &c.Transmission, &c.Seats, &c.DailyPriceCents, &c.Location,
		&c.ImageURLs, &c.Features, &status, &message, &softLockExpiresAt,
		&c.IsUnderMaintenance, &maintenance, &c.IsRented, &rental, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.AvailabilityStatus = ptr.TextFromPgtype(status)
	c.AvailabilityMessage = ptr.TextFromPgtype(message)
	c.SoftLockExpiresAt = ptr.TimeFromPgtype(softLockExpiresAt)
	c.MaintenanceStatus = ptr.TextFromPgtype(maintenance)
	c.RentalStatus = ptr.TextFromPgtype(rental)
	return &c, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
