package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryRepository_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQueryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO query_history (username, query) VALUES ($1, $2)")).
		WithArgs("alice", "constitutional rights").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Record(context.Background(), "alice", "constitutional rights")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRepository_RecordError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQueryRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO query_history")).
		WillReturnError(errors.New("connection refused"))

	err = repo.Record(context.Background(), "alice", "theft")
	assert.ErrorContains(t, err, "failed to record query")
}

func TestQueryRepository_ListByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQueryRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "username", "query", "created_at"}).
		AddRow(int64(1), "alice", "first question", now).
		AddRow(int64(2), "alice", "second question", now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM query_history")).
		WithArgs("alice").
		WillReturnRows(rows)

	records, err := repo.ListByUsername(context.Background(), "alice", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first question", records[0].Query)
	assert.Equal(t, int64(2), records[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRepository_ListByUsernameWithLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewQueryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2")).
		WithArgs("bob", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "query", "created_at"}))

	records, err := repo.ListByUsername(context.Background(), "bob", 10)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryRepository_CreateSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS query_history")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewQueryRepository(db).CreateSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
