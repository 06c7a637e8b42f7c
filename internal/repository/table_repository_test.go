package repository

import (
	"testing"

	"restaurant_platform/internal/models"
	"restaurant_platform/internal/schema"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tables"`).
		WithArgs(uint(1), 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "tables"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	table := &models.Table{BranchID: 1, TableNumber: 4, Capacity: 2, Status: "available"}
	require.NoError(t, repo.Create(table))
	assert.Equal(t, uint(10), table.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_Create_DuplicateNumberInBranch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "tables"`).
		WithArgs(uint(1), 4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Create(&models.Table{BranchID: 1, TableNumber: 4, Capacity: 6, Status: "available"})

	var violation *schema.UniquenessViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "tables", violation.Entity)
	assert.Equal(t, []string{"branch_id", "table_number"}, violation.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTableRepository_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTableRepository(db)

	err := repo.UpdateStatus(10, "free")

	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
