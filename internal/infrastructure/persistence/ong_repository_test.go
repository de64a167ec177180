package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ongcloud/backend/internal/domain/shared"
)

// newMockOngRepository creates a GormOngRepository with a mocked SQL connection
func newMockOngRepository(t *testing.T) (*GormOngRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormOngRepository(gormDB), mock, mockDB
}

func TestGormOngRepository_FindByID(t *testing.T) {
	t.Run("finds existing NGO", func(t *testing.T) {
		repo, mock, mockDB := newMockOngRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "nombre"}).
			AddRow(1, "ONG Esperanza")

		mock.ExpectQuery(`SELECT \* FROM "ongs" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(1, 1).
			WillReturnRows(rows)

		org, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		require.NotNil(t, org)
		assert.Equal(t, uint(1), org.ID)
		assert.Equal(t, "ONG Esperanza", org.Nombre)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing NGO to not found", func(t *testing.T) {
		repo, mock, mockDB := newMockOngRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "ongs" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(99, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), 99)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOngRepository_ExistsByName(t *testing.T) {
	t.Run("reports existing name", func(t *testing.T) {
		repo, mock, mockDB := newMockOngRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "ongs" WHERE nombre = \$1`).
			WithArgs("ONG Esperanza").
			WillReturnRows(rows)

		exists, err := repo.ExistsByName(context.Background(), "ONG Esperanza")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports unknown name", func(t *testing.T) {
		repo, mock, mockDB := newMockOngRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"count"}).AddRow(0)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "ongs" WHERE nombre = \$1`).
			WithArgs("Desconocida").
			WillReturnRows(rows)

		exists, err := repo.ExistsByName(context.Background(), "Desconocida")

		assert.NoError(t, err)
		assert.False(t, exists)
	})
}
