//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// idRow scans a fixed id, or fails with err.
type idRow struct {
	id  int64
	err error
}

func (r idRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

func sampleCar() *car.Car {
	return &car.Car{
		ID:              42,
		Make:            "Toyota",
		Model:           "Prado",
		Year:            2022,
		DailyPriceCents: 850000,
		Location:        "Westlands",
	}
}

func TestCarRepository_GetByID(t *testing.T) {
	tests := []struct {
		name     string
		scanErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "missing row", scanErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", scanErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("QueryRow", mock.Anything, selectCarByID, mock.Anything).Return(idRow{err: tt.scanErr})

			_, err := NewCarRepository(db).GetByID(context.Background(), 42)

			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tt.wantKind))
			db.AssertExpectations(t)
		})
	}
}

func TestCarRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, insertCar, mock.Anything).Return(idRow{id: 7})

		id, err := NewCarRepository(db).Create(context.Background(), sampleCar())

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		db.AssertExpectations(t)
	})

	t.Run("nil slices are stored as empty arrays", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, insertCar, mock.MatchedBy(func(args []any) bool {
			images, ok1 := args[8].([]string)
			features, ok2 := args[9].([]string)
			return ok1 && ok2 && images != nil && features != nil
		})).Return(idRow{id: 8})

		_, err := NewCarRepository(db).Create(context.Background(), sampleCar())

		require.NoError(t, err)
		db.AssertExpectations(t)
	})

	t.Run("unique violation", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, insertCar, mock.Anything).Return(idRow{err: &pgconn.PgError{Code: "23505"}})

		_, err := NewCarRepository(db).Create(context.Background(), sampleCar())

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestCarRepository_Update(t *testing.T) {
	fixed := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		wantErr  bool
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: pgconn.NewCommandTag("UPDATE 1")},
		{name: "no such car", tag: pgconn.NewCommandTag("UPDATE 0"), wantErr: true, wantKind: infra.KindNotFound},
		{name: "database error", tag: pgconn.CommandTag{}, execErr: errors.New("conn reset"), wantErr: true, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, updateCar, mock.MatchedBy(func(args []any) bool {
				return args[0] == int64(42) && args[len(args)-1] == fixed
			})).Return(tt.tag, tt.execErr)

			repo := NewCarRepository(db)
			repo.now = func() time.Time { return fixed }
			err := repo.Update(context.Background(), sampleCar())

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
			}
			db.AssertExpectations(t)
		})
	}
}
