package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cruisehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func cruiseRows(id uuid.UUID, code string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "version",
		"code", "name", "description", "departure_port", "departure_date",
		"duration_nights", "base_price", "currency", "status",
	}).AddRow(
		id, now, now, 1,
		code, "Mediterranean Explorer", "", "Barcelona", now.Add(60*24*time.Hour),
		7, decimal.NewFromInt(1000), "USD", "active",
	)
}

func TestGormCruiseRepository_FindByID(t *testing.T) {
	t.Run("finds existing cruise", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCruiseRepository(db)

		cruiseID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "cruises" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(cruiseID, 1).
			WillReturnRows(cruiseRows(cruiseID, "MED-2026"))

		cruise, err := repo.FindByID(context.Background(), cruiseID)

		assert.NoError(t, err)
		require.NotNil(t, cruise)
		assert.Equal(t, cruiseID, cruise.ID)
		assert.Equal(t, "MED-2026", cruise.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps record-not-found to domain error", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCruiseRepository(db)

		cruiseID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "cruises" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(cruiseID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		cruise, err := repo.FindByID(context.Background(), cruiseID)

		assert.Nil(t, cruise)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCruiseRepository_FindByCode(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCruiseRepository(db)

	cruiseID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "cruises" WHERE code = \$1 ORDER BY .* LIMIT .*`).
		WithArgs("MED-2026", 1).
		WillReturnRows(cruiseRows(cruiseID, "MED-2026"))

	// Lookup upper-cases the code before querying
	cruise, err := repo.FindByCode(context.Background(), " med-2026 ")

	assert.NoError(t, err)
	require.NotNil(t, cruise)
	assert.Equal(t, "MED-2026", cruise.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCruiseRepository_ExistsByCode(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormCruiseRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "cruises" WHERE code = \$1`).
		WithArgs("MED-2026").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByCode(context.Background(), "med-2026")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCruiseRepository_Delete(t *testing.T) {
	t.Run("returns not found when nothing deleted", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCruiseRepository(db)

		cruiseID := uuid.New()
		mock.ExpectExec(`DELETE FROM "cruises" WHERE id = \$1`).
			WithArgs(cruiseID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), cruiseID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
