package repository

import (
	"context"
	"regexp"
	"testing"

	"backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillMarkPaidReturnsMatchedRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	rows := sqlmock.NewRows([]string{"id", "bill_number", "status", "items"}).
		AddRow(1, "BILL-2026-001", "paid", []byte(`[]`)).
		AddRow(3, "BILL-2026-003", "paid", []byte(`[{"name":"Steel Rod","quantity":"10","rate":"120"}]`))

	// RETURNING makes this a query, not an exec
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "bills" SET`)).
		WithArgs(model.BillPaid, sqlmock.AnyArg(), 1, 3).
		WillReturnRows(rows)

	bills, err := repo.MarkPaid(context.Background(), []uint{1, 3})
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, model.BillPaid, bills[0].Status)
	assert.Equal(t, "BILL-2026-003", bills[1].BillNumber)
	require.Len(t, bills[1].Items, 1)
	assert.Equal(t, "Steel Rod", bills[1].Items[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillMarkPaidNoMatches(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE "bills" SET`)).
		WithArgs(model.BillPaid, sqlmock.AnyArg(), 9999).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bill_number", "status", "items"}))

	bills, err := repo.MarkPaid(context.Background(), []uint{9999})
	require.NoError(t, err)
	assert.NotNil(t, bills)
	assert.Empty(t, bills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillListEmptyTableYieldsEmptySlice(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bills" ORDER BY bill_date DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "bill_number", "status", "items"}))

	bills, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bills)
	assert.Empty(t, bills)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillListOrdersByBillDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	rows := sqlmock.NewRows([]string{"id", "bill_number", "status", "items"}).
		AddRow(2, "BILL-2026-002", "unpaid", []byte(`[]`)).
		AddRow(1, "BILL-2026-001", "paid", []byte(`[]`))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "bills" ORDER BY bill_date DESC`)).
		WillReturnRows(rows)

	bills, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "BILL-2026-002", bills[0].BillNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBillCount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "bills"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
