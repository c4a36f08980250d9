package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresTableRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresTableRepository(db), mock
}

func TestSelectAll_PlainTable(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM clients")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("c1", "Acme").
			AddRow("c2", "Globex"))

	rows, err := repo.SelectAll(context.Background(), TableClients)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "c1", rows[0]["id"])
	assert.Equal(t, "Globex", rows[1]["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectAll_ContractsJoinsClientName(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT t\.\*, c\.name AS client_name\s+FROM contracts t LEFT JOIN clients c ON c\.id = t\.client_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "value", "client_name"}).
			AddRow("ct1", "c1", 100.0, "Acme"))

	rows, err := repo.SelectAll(context.Background(), TableContracts)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0]["client_name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectAll_UnknownTable(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.SelectAll(context.Background(), "no_such_table")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown table")
}

func TestInsert_SortedColumnsReturningRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	// 列按名称排序，SQL确定
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clients (name, status) VALUES ($1, $2) RETURNING *")).
		WithArgs("Acme", "active").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "status"}).
			AddRow("gen-1", "Acme", "active"))

	row, err := repo.Insert(context.Background(), TableClients, map[string]any{
		"status": "active",
		"name":   "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "gen-1", row["id"])
	assert.Equal(t, "Acme", row["name"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_EmptyValues(t *testing.T) {
	repo, _ := newMockRepo(t)

	_, err := repo.Insert(context.Background(), TableClients, map[string]any{})
	require.Error(t, err)
}

func TestInsert_StringSliceAsArray(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contracts (services, title) VALUES ($1, $2) RETURNING *")).
		WithArgs(sqlmock.AnyArg(), "Maintenance").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ct1"))

	_, err := repo.Insert(context.Background(), TableContracts, map[string]any{
		"title":    "Maintenance",
		"services": []string{"hvac", "electrical"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_SortedColumnsByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET invoice_id = $2, invoiced = $3 WHERE id = $1")).
		WithArgs("o1", "inv-1", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), TableOrders, "o1", map[string]any{
		"invoiced":   true,
		"invoice_id": "inv-1",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_EmptyValuesNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.Update(context.Background(), TableOrders, "o1", map[string]any{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs("o1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), TableOrders, "o1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectAll_NormalizesColumnValues(t *testing.T) {
	repo, mock := newMockRepo(t)

	issued := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("id").OfType("TEXT", ""),
		sqlmock.NewColumn("items").OfType("JSONB", []byte{}),
		sqlmock.NewColumn("subtotal").OfType("NUMERIC", []byte{}),
		sqlmock.NewColumn("issue_date").OfType("TIMESTAMPTZ", time.Time{}),
	).AddRow(
		"inv-1",
		[]byte(`[{"id":"i1","totalPrice":100}]`),
		[]byte("180.00"),
		issued,
	)

	mock.ExpectQuery(`SELECT i\.\*, c\.name AS client_name`).WillReturnRows(rows)

	out, err := repo.SelectAll(context.Background(), TableInvoices)
	require.NoError(t, err)
	require.Len(t, out, 1)
	row := out[0]

	assert.Equal(t, 180.0, row["subtotal"])
	assert.Equal(t, "2026-08-15T10:00:00Z", row["issue_date"])

	items, ok := row["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelectAll_NormalizesTextArray(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRowsWithColumnDefinition(
		sqlmock.NewColumn("id").OfType("TEXT", ""),
		sqlmock.NewColumn("service_history").OfType("_TEXT", []byte{}),
	).AddRow("c1", []byte(`{install,repair}`))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM clients")).WillReturnRows(rows)

	out, err := repo.SelectAll(context.Background(), TableClients)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"install", "repair"}, out[0]["service_history"])
}
